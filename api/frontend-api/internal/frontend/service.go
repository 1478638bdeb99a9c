// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

// Package internal_frontend ties the normalizer, phonemizer, tokenizer and
// prosody scorer together behind one service used by the API and the CLI.
package internal_frontend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	internal_cache "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/cache"
	internal_normalizers "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/normalizers"
	internal_numerals "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/numerals"
	internal_phonemizer "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/phonemizer"
	internal_prosody "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/prosody"
	internal_tokenizer "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/tokenizer"
	internal_type "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/type"
	"github.com/rapidaai/gujarati-frontend/pkg/commons"
)

// ErrInvalidCharacters is returned for input either engine rejects.
var ErrInvalidCharacters = errors.New("frontend: invalid characters")

const defaultConcurrency = 4

// Service is safe for concurrent use.
type Service struct {
	logger      commons.Logger
	normalizer  internal_type.TracingNormalizer
	phonemizer  internal_type.Phonemizer
	tokenizer   internal_type.Tokenizer
	scorer      internal_type.ProsodyScorer
	cache       internal_cache.Cache
	concurrency int

	// normalizeNamespace is scoped to the normalizer's rule list.
	normalizeNamespace string
}

type Option func(*Service)

// WithCache stores normalize and phonemize results.
func WithCache(c internal_cache.Cache) Option {
	return func(s *Service) { s.cache = c }
}

// WithConcurrency bounds how many batch items run at once.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithNormalizer replaces the default normalizer pipeline.
func WithNormalizer(n internal_type.TracingNormalizer) Option {
	return func(s *Service) { s.normalizer = n }
}

func NewService(logger commons.Logger, opts ...Option) (*Service, error) {
	s := &Service{
		logger:      logger,
		phonemizer:  internal_phonemizer.NewPhonemizer(logger),
		tokenizer:   internal_tokenizer.NewTokenizer(logger),
		scorer:      internal_prosody.NewScorer(logger),
		cache:       internal_cache.NewNoopCache(),
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.normalizer == nil {
		p, err := internal_normalizers.NewDefaultPipeline(logger)
		if err != nil {
			return nil, fmt.Errorf("failed to build normalizer pipeline: %w", err)
		}
		s.normalizer = p
	}
	s.normalizeNamespace = internal_cache.NamespaceNormalize
	if named, ok := s.normalizer.(interface{ Rules() []string }); ok {
		s.normalizeNamespace = internal_cache.ScopedNamespace(internal_cache.NamespaceNormalize, named.Rules())
	}
	return s, nil
}

// =============================================================================
// Normalize
// =============================================================================

type NormalizeResult struct {
	ID         string                          `json:"id"`
	Text       string                          `json:"text"`
	Normalized string                          `json:"normalized"`
	Rules      []internal_type.RuleApplication `json:"rules"`
	Cached     bool                            `json:"cached"`
	Error      string                          `json:"error,omitempty"`
}

// Normalize returns the spoken form of text. Invalid input returns the
// marker text together with ErrInvalidCharacters.
func (s *Service) Normalize(ctx context.Context, text string) (NormalizeResult, error) {
	start := time.Now()
	defer func() {
		s.logger.Benchmark("frontend.Normalize", time.Since(start))
	}()

	result := NormalizeResult{ID: uuid.NewString(), Text: text, Rules: []internal_type.RuleApplication{}}
	if cached, ok := s.cache.Get(ctx, s.normalizeNamespace, text); ok {
		result.Normalized = cached
		result.Cached = true
		return result, nil
	}

	normalized, trace, err := s.normalizer.NormalizeWithTrace(ctx, text)
	result.Normalized = normalized
	result.Rules = trace
	if err != nil {
		result.Error = err.Error()
		return result, fmt.Errorf("%w: %v", ErrInvalidCharacters, err)
	}
	s.cache.Set(ctx, s.normalizeNamespace, text, normalized)
	return result, nil
}

// NormalizeBatch normalizes texts concurrently and returns results in input
// order. Invalid items carry their error and do not fail the batch.
func (s *Service) NormalizeBatch(ctx context.Context, texts []string) ([]NormalizeResult, error) {
	results := make([]NormalizeResult, len(texts))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			r, err := s.Normalize(gCtx, text)
			if err != nil && !errors.Is(err, ErrInvalidCharacters) {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch normalize failed: %w", err)
	}
	return results, nil
}

// =============================================================================
// Phonemize
// =============================================================================

type PhonemizeResult struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Normalized string   `json:"normalized,omitempty"`
	Phonemes   []string `json:"phonemes"`
	Cached     bool     `json:"cached"`
}

// Phonemize converts text to phonemes, normalizing it first when asked to.
func (s *Service) Phonemize(ctx context.Context, text string, normalize bool) (PhonemizeResult, error) {
	start := time.Now()
	defer func() {
		s.logger.Benchmark("frontend.Phonemize", time.Since(start))
	}()

	result := PhonemizeResult{ID: uuid.NewString(), Text: text}
	input := text
	if normalize {
		n, err := s.Normalize(ctx, text)
		if err != nil {
			result.Phonemes = []string{internal_phonemizer.ErrorMarker}
			return result, err
		}
		result.Normalized = n.Normalized
		input = n.Normalized
	}

	if cached, ok := s.cache.Get(ctx, internal_cache.NamespacePhonemize, input); ok {
		var phonemes []string
		if err := json.Unmarshal([]byte(cached), &phonemes); err == nil {
			result.Phonemes = phonemes
			result.Cached = true
			return result, nil
		}
		s.logger.Warnf("frontend: dropping unreadable cached phonemes for %q", input)
	}

	tokens, err := s.phonemizer.Analyze(ctx, input)
	if err != nil {
		result.Phonemes = []string{internal_phonemizer.ErrorMarker}
		return result, fmt.Errorf("%w: %v", ErrInvalidCharacters, err)
	}
	result.Phonemes = phonemeStrings(tokens)
	if encoded, err := json.Marshal(result.Phonemes); err == nil {
		s.cache.Set(ctx, internal_cache.NamespacePhonemize, input, string(encoded))
	}
	return result, nil
}

func phonemeStrings(tokens []internal_type.Token) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.Phoneme)
	}
	return out
}

// =============================================================================
// Analyze
// =============================================================================

type SentenceAnalysis struct {
	Text       string                     `json:"text"`
	Normalized string                     `json:"normalized"`
	Type       internal_type.SentenceType `json:"type"`
	Tokens     []internal_type.Token      `json:"tokens"`
	Prosody    internal_type.Prosody      `json:"prosody"`
}

type Analysis struct {
	ID           string                     `json:"id"`
	Text         string                     `json:"text"`
	Tokenization internal_type.Tokenization `json:"tokenization"`
	Sentences    []SentenceAnalysis         `json:"sentences"`
}

// Analyze splits text into sentences and runs every sentence through the
// normalizer, the phonemizer and the prosody scorer. An empty sentenceType
// keeps the type implied by each sentence's closing mark.
func (s *Service) Analyze(ctx context.Context, text string, sentenceType internal_type.SentenceType) (Analysis, error) {
	start := time.Now()
	defer func() {
		s.logger.Benchmark("frontend.Analyze", time.Since(start))
	}()

	tokenization := s.tokenizer.Tokenize(ctx, text)
	analysis := Analysis{
		ID:           uuid.NewString(),
		Text:         text,
		Tokenization: tokenization,
		Sentences:    make([]SentenceAnalysis, 0, len(tokenization.Sentences)),
	}
	for _, sentence := range tokenization.Sentences {
		normalized, _, err := s.normalizer.NormalizeWithTrace(ctx, sentence.Text)
		if err != nil {
			return analysis, fmt.Errorf("%w: %v", ErrInvalidCharacters, err)
		}
		tokens, err := s.phonemizer.Analyze(ctx, normalized)
		if err != nil {
			return analysis, fmt.Errorf("%w: %v", ErrInvalidCharacters, err)
		}
		kind := sentence.Type
		if sentenceType != "" {
			kind = sentenceType
		}
		analysis.Sentences = append(analysis.Sentences, SentenceAnalysis{
			Text:       sentence.Text,
			Normalized: normalized,
			Type:       kind,
			Tokens:     tokens,
			Prosody:    s.scorer.Score(ctx, tokens, kind),
		})
	}
	return analysis, nil
}

// =============================================================================
// Numerals
// =============================================================================

type NumeralReading struct {
	Value        string `json:"value"`
	Cardinal     string `json:"cardinal"`
	Ordinal      string `json:"ordinal"`
	DigitByDigit string `json:"digit_by_digit"`
	English      string `json:"english"`
}

// Numeral reads a digit string in every supported way.
func (s *Service) Numeral(value string) (NumeralReading, error) {
	n, err := internal_numerals.Parse(value)
	if err != nil {
		return NumeralReading{}, err
	}
	digits, err := internal_numerals.DigitByDigit(value)
	if err != nil {
		return NumeralReading{}, err
	}
	return NumeralReading{
		Value:        value,
		Cardinal:     internal_numerals.NumberToWords(n),
		Ordinal:      internal_numerals.OrdinalWords(n, internal_numerals.OrdinalSuffix),
		DigitByDigit: digits,
		English:      internal_numerals.Gloss(n),
	}, nil
}
