// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_tokenizer

import (
	"context"
	"testing"

	internal_type "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/type"
	"github.com/rapidaai/gujarati-frontend/pkg/commons"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []internal_type.Sentence
	}{
		{
			name:  "question and exclamation",
			input: "હેલો, તમે કેમ છો? મને ગમે છે!",
			expected: []internal_type.Sentence{
				{Text: "હેલો, તમે કેમ છો", Type: internal_type.SentenceQuestion},
				{Text: "મને ગમે છે", Type: internal_type.SentenceExclamation},
			},
		},
		{
			name:  "danda and unterminated tail",
			input: "આજે હવામાન સારું છે। કાલે વરસાદ",
			expected: []internal_type.Sentence{
				{Text: "આજે હવામાન સારું છે", Type: internal_type.SentenceStatement},
				{Text: "કાલે વરસાદ", Type: internal_type.SentenceStatement},
			},
		},
		{
			name:  "decimal point does not end a sentence",
			input: "કિંમત ૩.૫ છે. બરાબર",
			expected: []internal_type.Sentence{
				{Text: "કિંમત ૩.૫ છે", Type: internal_type.SentenceStatement},
				{Text: "બરાબર", Type: internal_type.SentenceStatement},
			},
		},
		{
			name:     "only delimiters",
			input:    "...?!",
			expected: []internal_type.Sentence{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sentences(tt.input))
		})
	}
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"હેલો", "તમે", "કેમ", "છો"}, Words("હેલો, તમે (કેમ) છો;"))
	assert.Empty(t, Words("  ,; "))
}

func TestGraphemes(t *testing.T) {
	assert.Equal(t, []string{"ક", "્", "ષ", "ા"}, Graphemes("ક્ષા"))
}

func TestAksharas(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"ક્રમ", []string{"ક્ર", "મ"}},
		{"શ્રદ્ધા", []string{"શ્ર", "દ્ધા"}},
		{"કુંભ", []string{"કું", "ભ"}},
		{"અઃ", []string{"અઃ"}},
		{"વિદ્યાર્થી", []string{"વિ", "દ્યા", "ર્થી"}},
		{"સત્", []string{"સ", "ત્"}},
		{"૧૨", []string{"૧", "૨"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Aksharas(tt.input), "input %q", tt.input)
	}
}

func TestTokenize(t *testing.T) {
	logger, err := commons.NewApplicationLogger(commons.WithLevel("error"))
	require.NoError(t, err)

	result := NewTokenizer(logger).Tokenize(context.Background(), "તમે કેમ છો? સારું.")
	require.Len(t, result.Sentences, 2)
	assert.Equal(t, internal_type.SentenceQuestion, result.Sentences[0].Type)
	assert.Equal(t, []string{"તમે", "કેમ", "છો", "સારું"}, result.Words)
	assert.Len(t, result.Graphemes, 4)
	assert.Equal(t, []string{"સા", "રું"}, result.Aksharas[3])
}
