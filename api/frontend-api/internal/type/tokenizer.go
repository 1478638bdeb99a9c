// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_type

import "context"

// SentenceType selects the intonation contour of a sentence.
type SentenceType string

const (
	SentenceStatement   SentenceType = "statement"
	SentenceQuestion    SentenceType = "question"
	SentenceExclamation SentenceType = "exclamation"
)

// SentenceTypeFromStr maps a name to a SentenceType, defaulting to a statement.
func SentenceTypeFromStr(label string) SentenceType {
	switch SentenceType(label) {
	case SentenceQuestion:
		return SentenceQuestion
	case SentenceExclamation:
		return SentenceExclamation
	default:
		return SentenceStatement
	}
}

// Sentence is one delimited sentence of the input.
type Sentence struct {
	Text string       `json:"text"`
	Type SentenceType `json:"type"`
}

// Tokenization is the sentence, word and grapheme breakdown of a text.
type Tokenization struct {
	Sentences []Sentence `json:"sentences"`
	Words     []string   `json:"words"`
	// Graphemes holds the characters of each word, in word order.
	Graphemes [][]string `json:"graphemes"`
	// Aksharas holds the written syllables of each word, in word order.
	Aksharas [][]string `json:"aksharas"`
}

// Tokenizer splits text for analysis.
type Tokenizer interface {
	Tokenize(ctx context.Context, text string) Tokenization
}
