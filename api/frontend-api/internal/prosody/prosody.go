// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

// Package internal_prosody assigns stress, duration and pitch multipliers to
// phonemes using fixed positional and sentence level rules.
package internal_prosody

import (
	"context"
	"math"

	internal_type "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/type"
	"github.com/rapidaai/gujarati-frontend/pkg/commons"
	"github.com/rapidaai/gujarati-frontend/pkg/utils"
)

const basePitch = 1.0

var stressByPosition = map[internal_type.Position]float32{
	internal_type.PositionInitial:     1.2,
	internal_type.PositionMedial:      1.0,
	internal_type.PositionPenultimate: 1.15,
	internal_type.PositionFinal:       1.3,
}

var durationByKind = map[internal_type.UnitKind]float32{
	internal_type.UnitVowel:          1.2,
	internal_type.UnitConsonant:      0.8,
	internal_type.UnitConsonantVowel: 1.0,
}

// contours take the relative position in the sentence, 0 to 1.
var contours = map[internal_type.SentenceType]func(x float64) float64{
	internal_type.SentenceStatement: func(x float64) float64 {
		return 0.9 + 0.2*math.Sin(x*math.Pi)
	},
	internal_type.SentenceQuestion: func(x float64) float64 {
		return 1.0 + 0.3*math.Sin(x*math.Pi*1.5)
	},
	internal_type.SentenceExclamation: func(x float64) float64 {
		return 1.2 + 0.4*math.Sin(x*math.Pi*0.8)
	},
}

type scorer struct {
	logger commons.Logger
}

func NewScorer(logger commons.Logger) internal_type.ProsodyScorer {
	return &scorer{logger: logger}
}

// Score groups tokens into units and scores them. Punctuation and digits are
// not scored. The result is deterministic.
func (s *scorer) Score(ctx context.Context, tokens []internal_type.Token, sentenceType internal_type.SentenceType) internal_type.Prosody {
	contour, ok := contours[sentenceType]
	if !ok {
		s.logger.Debugf("prosody: unknown sentence type %q, using statement", sentenceType)
		sentenceType = internal_type.SentenceStatement
		contour = contours[sentenceType]
	}

	units := Units(tokens)
	n := len(units)
	durations := make([]float32, n)
	pitches := make([]float32, n)
	for i := range units {
		u := &units[i]
		u.Position = PositionOf(i, n)
		u.Stress = stressByPosition[u.Position]
		u.Duration = durationByKind[u.Kind]

		x := 0.5
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		u.Pitch = float32(basePitch*contour(x)) * u.Stress

		durations[i] = u.Duration
		pitches[i] = u.Pitch
	}

	rhythm := internal_type.Rhythm{
		AverageDuration:  utils.AverageFloat32(durations),
		DurationVariance: utils.VarianceFloat32(durations),
		AveragePitch:     utils.AverageFloat32(pitches),
		PitchRange:       utils.RangeFloat32(pitches),
	}
	if total := utils.SumFloat32(durations); total > 0 {
		rhythm.SpeechRate = float32(n) / total
	}

	return internal_type.Prosody{
		SentenceType: sentenceType,
		Units:        units,
		Rhythm:       rhythm,
	}
}

// PositionOf places unit i of n.
func PositionOf(i, n int) internal_type.Position {
	switch {
	case i == 0:
		return internal_type.PositionInitial
	case i == n-1:
		return internal_type.PositionFinal
	case i == n-2:
		return internal_type.PositionPenultimate
	default:
		return internal_type.PositionMedial
	}
}

// Units pairs every consonant with the vowel that follows it, either a vowel
// sign or an inserted schwa. Other sounding tokens stand alone.
func Units(tokens []internal_type.Token) []internal_type.ProsodicUnit {
	units := make([]internal_type.ProsodicUnit, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		switch t.Kind {
		case internal_type.PhonemeConsonant:
			if i+1 < len(tokens) && isVowelLike(tokens[i+1].Kind) {
				next := tokens[i+1]
				units = append(units, internal_type.ProsodicUnit{
					Grapheme: t.Grapheme + next.Grapheme,
					Phonemes: []string{t.Phoneme, next.Phoneme},
					Kind:     internal_type.UnitConsonantVowel,
				})
				i++
				continue
			}
			units = append(units, internal_type.ProsodicUnit{
				Grapheme: t.Grapheme,
				Phonemes: []string{t.Phoneme},
				Kind:     internal_type.UnitConsonant,
			})
		case internal_type.PhonemeVowel, internal_type.PhonemeVowelSign, internal_type.PhonemeSchwa:
			units = append(units, internal_type.ProsodicUnit{
				Grapheme: t.Grapheme,
				Phonemes: []string{t.Phoneme},
				Kind:     internal_type.UnitVowel,
			})
		}
	}
	return units
}

func isVowelLike(k internal_type.PhonemeKind) bool {
	return k == internal_type.PhonemeVowelSign || k == internal_type.PhonemeSchwa
}
