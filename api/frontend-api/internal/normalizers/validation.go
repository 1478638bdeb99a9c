// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrInvalidCharacters = errors.New("normalizer: invalid characters")

	// errEmptyText stops the pipeline with an empty result.
	errEmptyText = errors.New("normalizer: empty text")
)

// allowedSymbols are the non alphanumeric characters accepted besides whitespace.
const allowedSymbols = `.,!?%₹:/-+×÷“”"'₩©®™`

func isAllowedRune(r rune) bool {
	switch {
	case isGujaratiBlock(r), unicode.IsSpace(r):
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune(allowedSymbols, r)
}

// IsValidText reports whether every character is allowed and no whitespace
// separated token mixes Latin letters with Gujarati script.
func IsValidText(text string) bool {
	for _, r := range text {
		if !isAllowedRune(r) {
			return false
		}
	}
	for _, token := range strings.Fields(text) {
		if strings.ContainsFunc(token, isLatinLetter) && strings.ContainsFunc(token, isGujaratiBlock) {
			return false
		}
	}
	return true
}

func isLatinLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

type validationRule struct{}

// NewValidationRule stops the pipeline on empty or unsupported input.
func NewValidationRule() Rule { return &validationRule{} }

func (r *validationRule) Name() string    { return RuleValidate }
func (r *validationRule) After() []string { return []string{RuleUnicode} }

func (r *validationRule) Apply(doc *Document) (int, error) {
	text := doc.String()
	if strings.TrimSpace(text) == "" {
		return 0, errEmptyText
	}
	if !IsValidText(text) {
		return 0, ErrInvalidCharacters
	}
	return 0, nil
}
