// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_phonemizer

// CharacterClass is the role a character plays in the scanner.
type CharacterClass uint8

const (
	ClassOther CharacterClass = iota
	ClassIndependentVowel
	ClassVowelSign
	ClassConsonant
	ClassVirama
	ClassNasalization
	ClassDigit
	// ClassOutputPunctuation is copied to the output as is.
	ClassOutputPunctuation
	// ClassIgnoredPunctuation only ends the current syllable group.
	ClassIgnoredPunctuation
)

var classNames = [...]string{
	ClassOther:              "other",
	ClassIndependentVowel:   "independent-vowel",
	ClassVowelSign:          "vowel-sign",
	ClassConsonant:          "consonant",
	ClassVirama:             "virama",
	ClassNasalization:       "nasalization",
	ClassDigit:              "digit",
	ClassOutputPunctuation:  "output-punctuation",
	ClassIgnoredPunctuation: "ignored-punctuation",
}

func (c CharacterClass) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return classNames[ClassOther]
}

// ClassOf classifies r. Characters outside the alphabet are ClassOther.
func ClassOf(r rune) CharacterClass {
	if c, ok := classes[r]; ok {
		return c
	}
	return ClassOther
}

// IsValid reports whether r may appear in phonemizer input, whitespace aside.
func IsValid(r rune) bool {
	return ClassOf(r) != ClassOther
}

// IsConsonant reports whether r is a consonant letter.
func IsConsonant(r rune) bool { return ClassOf(r) == ClassConsonant }
