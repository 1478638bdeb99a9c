// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_type

import (
	"context"
)

// =============================================================================
// Text Normalizer Interface
// =============================================================================

// TextNormalizer turns raw Gujarati or mixed script text into its spoken form.
// Input outside the supported alphabet yields the invalid characters marker
// instead of an error.
type TextNormalizer interface {
	// Normalize transforms text for speech output.
	Normalize(ctx context.Context, text string) string
}

// TracingNormalizer additionally reports which rules rewrote the text.
type TracingNormalizer interface {
	TextNormalizer

	// NormalizeWithTrace returns the normalized text and one entry per rule
	// that changed it. Invalid input returns the marker text and an error.
	NormalizeWithTrace(ctx context.Context, text string) (string, []RuleApplication, error)
}

// RuleApplication records how many rewrites a named rule made.
type RuleApplication struct {
	Rule  string `json:"name"`
	Count int    `json:"count"`
}
