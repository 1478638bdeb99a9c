// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

// Package internal_phonemizer converts Gujarati script into phoneme tokens
// with a single left to right pass and one character of lookahead.
package internal_phonemizer

import (
	"context"
	"errors"
	"time"
	"unicode"

	internal_type "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/type"
	"github.com/rapidaai/gujarati-frontend/pkg/commons"
)

// ErrorMarker is the only token returned for input outside the alphabet.
const ErrorMarker = "[Error: Invalid characters]"

var ErrInvalidCharacters = errors.New("phonemizer: invalid characters")

// SyllableState tracks whether the scanner sits at the start of a syllable
// group or inside a consonant cluster that already received its schwa.
type SyllableState uint8

const (
	SyllableStart SyllableState = iota
	MidCluster
)

// conjunctException overrides the general consonant rule for a fixed
// grapheme sequence.
type conjunctException struct {
	name    string
	trigger []rune
	emit    []Phoneme
}

var conjunctExceptions = []conjunctException{
	{
		name:    "geminated-dha",
		trigger: []rune{'ધ', viramaRune, 'ધ'},
		emit:    []Phoneme{"/d̪/", "/d̪ʱ/"},
	},
}

func (c conjunctException) matches(text []rune, i int) bool {
	if i+len(c.trigger) > len(text) {
		return false
	}
	for j, r := range c.trigger {
		if text[i+j] != r {
			return false
		}
	}
	return true
}

type phonemizer struct {
	logger commons.Logger
}

// NewPhonemizer returns a Phonemizer. It holds no mutable state and may be shared.
func NewPhonemizer(logger commons.Logger) internal_type.Phonemizer {
	return &phonemizer{logger: logger}
}

func (p *phonemizer) Phonemize(ctx context.Context, text string) []string {
	tokens, err := p.Analyze(ctx, text)
	if err != nil {
		return []string{ErrorMarker}
	}
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.Phoneme)
	}
	return out
}

func (p *phonemizer) Analyze(ctx context.Context, text string) ([]internal_type.Token, error) {
	start := time.Now()
	defer func() {
		p.logger.Benchmark("phonemizer.Analyze", time.Since(start))
	}()

	runes := []rune(text)
	for _, r := range runes {
		if unicode.IsSpace(r) || IsValid(r) {
			continue
		}
		p.logger.Debugf("phonemizer: rejecting input, invalid character %q", r)
		return nil, ErrInvalidCharacters
	}
	return scan(runes), nil
}

func scan(text []rune) []internal_type.Token {
	tokens := make([]internal_type.Token, 0, len(text))
	emit := func(grapheme string, phoneme Phoneme, kind internal_type.PhonemeKind) {
		tokens = append(tokens, internal_type.Token{Grapheme: grapheme, Phoneme: string(phoneme), Kind: kind})
	}

	state := SyllableStart
	last := len(text) - 1
	for i := 0; i < len(text); {
		r := text[i]
		class := ClassOf(r)

		if unicode.IsSpace(r) || class == ClassIgnoredPunctuation {
			state = SyllableStart
			i++
			continue
		}
		if class == ClassOutputPunctuation {
			emit(string(r), Phoneme(r), internal_type.PhonemePunctuation)
			state = SyllableStart
			i++
			continue
		}
		// the virama silences the inherent vowel and leaves the state alone
		if class == ClassVirama {
			i++
			continue
		}
		if c, ok := matchConjunct(text, i); ok {
			grapheme := string(c.trigger)
			for _, e := range c.emit {
				emit(grapheme, e, internal_type.PhonemeConsonant)
			}
			state = SyllableStart
			i += len(c.trigger)
			continue
		}

		phoneme, _ := phonemeTable[r].Primary()
		switch class {
		case ClassIndependentVowel:
			emit(string(r), phoneme, internal_type.PhonemeVowel)
			state = SyllableStart
		case ClassDigit:
			emit(string(r), phoneme, internal_type.PhonemeDigit)
			state = SyllableStart
		case ClassVowelSign, ClassNasalization:
			if class == ClassNasalization && i == last && i > 0 && ClassOf(text[i-1]) == ClassVowelSign {
				break
			}
			emit(string(r), phoneme, internal_type.PhonemeVowelSign)
			state = SyllableStart
		case ClassConsonant:
			emit(string(r), phoneme, internal_type.PhonemeConsonant)
			if state == MidCluster {
				state = SyllableStart
				break
			}
			if i < last && IsConsonant(text[i+1]) {
				emit("", Schwa, internal_type.PhonemeSchwa)
				state = MidCluster
			}
		}
		i++
	}
	return tokens
}

func matchConjunct(text []rune, i int) (conjunctException, bool) {
	for _, c := range conjunctExceptions {
		if c.matches(text, i) {
			return c, true
		}
	}
	return conjunctException{}, false
}
