// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_tokenizer

import (
	"context"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	internal_phonemizer "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/phonemizer"
	internal_type "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/type"
	"github.com/rapidaai/gujarati-frontend/pkg/commons"
	"golang.org/x/text/unicode/norm"
)

var (
	sentenceDelimiter = regexp.MustCompile(`[।!?.]`)
	ignoredInWords    = regexp.MustCompile(`[,;:()]`)
)

type tokenizer struct {
	logger commons.Logger
}

// NewTokenizer splits Gujarati text into sentences, words, characters and aksharas.
func NewTokenizer(logger commons.Logger) internal_type.Tokenizer {
	return &tokenizer{logger: logger}
}

func (t *tokenizer) Tokenize(ctx context.Context, text string) internal_type.Tokenization {
	sentences := Sentences(text)
	result := internal_type.Tokenization{
		Sentences: sentences,
		Words:     make([]string, 0),
		Graphemes: make([][]string, 0),
		Aksharas:  make([][]string, 0),
	}
	for _, s := range sentences {
		for _, w := range Words(s.Text) {
			result.Words = append(result.Words, w)
			result.Graphemes = append(result.Graphemes, Graphemes(w))
			result.Aksharas = append(result.Aksharas, Aksharas(w))
		}
	}
	t.logger.Debugf("tokenizer: %d sentence(s), %d word(s)", len(result.Sentences), len(result.Words))
	return result
}

// Sentences splits text at danda, full stop, question and exclamation marks.
// The mark that closes a sentence decides its type.
func Sentences(text string) []internal_type.Sentence {
	sentences := make([]internal_type.Sentence, 0)
	add := func(fragment string, delimiter string) {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			return
		}
		sentences = append(sentences, internal_type.Sentence{Text: fragment, Type: SentenceTypeOf(delimiter)})
	}

	last := 0
	for _, loc := range sentenceDelimiter.FindAllStringIndex(text, -1) {
		if isDecimalPoint(text, loc[0], loc[1]) {
			continue
		}
		add(text[last:loc[0]], text[loc[0]:loc[1]])
		last = loc[1]
	}
	add(text[last:], "")
	return sentences
}

// isDecimalPoint reports whether the full stop at text[start:end] sits between two digits.
func isDecimalPoint(text string, start, end int) bool {
	if text[start:end] != "." {
		return false
	}
	before, _ := utf8.DecodeLastRuneInString(text[:start])
	after, _ := utf8.DecodeRuneInString(text[end:])
	return unicode.IsDigit(before) && unicode.IsDigit(after)
}

// SentenceTypeOf maps a closing mark to a sentence type.
func SentenceTypeOf(delimiter string) internal_type.SentenceType {
	switch delimiter {
	case "?":
		return internal_type.SentenceQuestion
	case "!":
		return internal_type.SentenceExclamation
	default:
		return internal_type.SentenceStatement
	}
}

// Words drops , ; : ( ) and splits on whitespace.
func Words(sentence string) []string {
	return strings.Fields(ignoredInWords.ReplaceAllString(sentence, ""))
}

// Graphemes returns the characters of a word after NFC composition.
func Graphemes(word string) []string {
	word = norm.NFC.String(word)
	out := make([]string, 0, len(word))
	for _, r := range word {
		out = append(out, string(r))
	}
	return out
}

// Aksharas groups a word into written syllables: a consonant cluster joined
// by viramas, or an independent vowel, followed by its vowel sign and
// nasalization marks.
func Aksharas(word string) []string {
	rs := []rune(norm.NFC.String(word))
	out := make([]string, 0, len(rs))
	for i := 0; i < len(rs); {
		start := i
		switch internal_phonemizer.ClassOf(rs[i]) {
		case internal_phonemizer.ClassConsonant:
			i++
			for i+1 < len(rs) &&
				internal_phonemizer.ClassOf(rs[i]) == internal_phonemizer.ClassVirama &&
				internal_phonemizer.IsConsonant(rs[i+1]) {
				i += 2
			}
			i = attachMarks(rs, i)
		case internal_phonemizer.ClassIndependentVowel:
			i = attachMarks(rs, i+1)
		default:
			i++
		}
		out = append(out, string(rs[start:i]))
	}
	return out
}

// attachMarks consumes a trailing virama or vowel sign and any nasalization marks.
func attachMarks(rs []rune, i int) int {
	if i < len(rs) {
		switch internal_phonemizer.ClassOf(rs[i]) {
		case internal_phonemizer.ClassVowelSign, internal_phonemizer.ClassVirama:
			i++
		}
	}
	for i < len(rs) && internal_phonemizer.ClassOf(rs[i]) == internal_phonemizer.ClassNasalization {
		i++
	}
	return i
}
