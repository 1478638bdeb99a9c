// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_type

import "context"

// =============================================================================
// Prosody
// =============================================================================

// Position is where a unit sits in its sentence.
type Position string

const (
	PositionInitial     Position = "initial"
	PositionMedial      Position = "medial"
	PositionPenultimate Position = "penultimate"
	PositionFinal       Position = "final"
)

// UnitKind groups phonemes for duration scoring.
type UnitKind string

const (
	UnitVowel          UnitKind = "vowel"
	UnitConsonant      UnitKind = "consonant"
	UnitConsonantVowel UnitKind = "consonant-vowel"
)

// ProsodicUnit is a scored phoneme or consonant-vowel pair.
type ProsodicUnit struct {
	Grapheme string   `json:"grapheme"`
	Phonemes []string `json:"phonemes"`
	Kind     UnitKind `json:"kind"`
	Position Position `json:"position"`
	Stress   float32  `json:"stress"`
	Duration float32  `json:"duration"`
	Pitch    float32  `json:"pitch"`
}

type Rhythm struct {
	AverageDuration  float32 `json:"avg_duration"`
	DurationVariance float32 `json:"duration_variance"`
	AveragePitch     float32 `json:"avg_pitch"`
	PitchRange       float32 `json:"pitch_range"`
	SpeechRate       float32 `json:"speech_rate"`
}

type Prosody struct {
	SentenceType SentenceType   `json:"sentence_type"`
	Units        []ProsodicUnit `json:"units"`
	Rhythm       Rhythm         `json:"rhythm"`
}

// ProsodyScorer assigns stress, duration and pitch to analyzed tokens.
type ProsodyScorer interface {
	Score(ctx context.Context, tokens []Token, sentenceType SentenceType) Prosody
}

// =============================================================================
// Waveform
// =============================================================================

// WaveformSynthesizer renders scored units to audio. The front end stops at
// prosody; synthesizers are provided by the speech pipeline that consumes it.
type WaveformSynthesizer interface {
	Synthesize(ctx context.Context, prosody Prosody) ([]byte, error)
}
