// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_type

import (
	"context"
	"fmt"
)

// =============================================================================
// Phonemizer Interface
// =============================================================================

// Phonemizer converts Gujarati text into an ordered phoneme sequence.
type Phonemizer interface {
	// Phonemize returns phoneme tokens such as "/k/", literal "/" and "-",
	// and ASCII digits. Invalid input yields a single marker token.
	Phonemize(ctx context.Context, text string) []string

	// Analyze returns the same sequence with the grapheme and kind of every token.
	Analyze(ctx context.Context, text string) ([]Token, error)
}

// PhonemeKind is the coarse category of an emitted token.
type PhonemeKind uint8

const (
	PhonemeVowel PhonemeKind = iota
	// PhonemeVowelSign covers dependent vowel signs and nasalization marks.
	PhonemeVowelSign
	PhonemeConsonant
	// PhonemeSchwa is the inherent vowel inserted inside a consonant cluster.
	PhonemeSchwa
	PhonemeDigit
	PhonemePunctuation
)

func (k PhonemeKind) String() string {
	switch k {
	case PhonemeVowel:
		return "vowel"
	case PhonemeVowelSign:
		return "vowel-sign"
	case PhonemeConsonant:
		return "consonant"
	case PhonemeSchwa:
		return "schwa"
	case PhonemeDigit:
		return "digit"
	case PhonemePunctuation:
		return "punctuation"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind by name in JSON payloads.
func (k PhonemeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (k *PhonemeKind) UnmarshalText(text []byte) error {
	for candidate := PhonemeVowel; candidate <= PhonemePunctuation; candidate++ {
		if candidate.String() == string(text) {
			*k = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown phoneme kind %q", text)
}

// Token is one emitted phoneme together with the grapheme it came from.
type Token struct {
	Grapheme string      `json:"grapheme"`
	Phoneme  string      `json:"phoneme"`
	Kind     PhonemeKind `json:"kind"`
}
