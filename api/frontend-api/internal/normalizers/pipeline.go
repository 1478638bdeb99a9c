// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

// Package internal_normalizers turns raw Gujarati text into its spoken form:
// numbers, dates, times, amounts and abbreviations become Gujarati words.
package internal_normalizers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	internal_type "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/type"
	"github.com/rapidaai/gujarati-frontend/pkg/commons"
)

// ErrorMarker is returned by Normalize for unsupported input.
const ErrorMarker = "[Error: Invalid characters]"

// =============================================================================
// Pipeline
// =============================================================================

// Pipeline runs its rules in order. It holds only compiled patterns and is
// safe for concurrent use.
type Pipeline struct {
	logger commons.Logger
	rules  []Rule
}

// NewPipeline checks that rule names are unique and that every rule runs
// after the rules it names in After, when those are present.
func NewPipeline(logger commons.Logger, rules ...Rule) (*Pipeline, error) {
	position := make(map[string]int, len(rules))
	for i, r := range rules {
		if _, ok := position[r.Name()]; ok {
			return nil, fmt.Errorf("normalizer: duplicate rule %q", r.Name())
		}
		position[r.Name()] = i
	}
	for i, r := range rules {
		for _, dep := range r.After() {
			if j, ok := position[dep]; ok && j > i {
				return nil, fmt.Errorf("normalizer: rule %q must run after %q", r.Name(), dep)
			}
		}
	}
	return &Pipeline{logger: logger, rules: rules}, nil
}

// DefaultRules returns the complete rule list in pipeline order.
func DefaultRules(logger commons.Logger) []Rule {
	return []Rule{
		NewUnicodeRule(logger),
		NewValidationRule(),
		NewDigitCommaRule(),
		NewAbbreviationRule(logger),
		NewPinRule(logger),
		NewDateRule(logger),
		NewMultiplyRule(logger),
		NewDivideRule(logger),
		NewCurrencyRule(logger),
		NewPercentRule(logger),
		NewSignedRule(logger),
		NewTimeRule(logger),
		NewDecimalRule(logger),
		NewFractionRule(logger),
		NewOrdinalRule(logger),
		NewCardinalRule(logger),
		NewPunctuationRule(),
		NewSuffixArtifactRule(),
		NewWhitespaceRule(),
	}
}

// NewDefaultPipeline returns the full Gujarati normalizer.
func NewDefaultPipeline(logger commons.Logger) (*Pipeline, error) {
	return NewPipeline(logger, DefaultRules(logger)...)
}

// Rules returns the rule names in order.
func (p *Pipeline) Rules() []string {
	names := make([]string, 0, len(p.rules))
	for _, r := range p.rules {
		names = append(names, r.Name())
	}
	return names
}

func (p *Pipeline) Normalize(ctx context.Context, text string) string {
	out, _, _ := p.NormalizeWithTrace(ctx, text)
	return out
}

func (p *Pipeline) NormalizeWithTrace(ctx context.Context, text string) (string, []internal_type.RuleApplication, error) {
	start := time.Now()
	defer func() {
		p.logger.Benchmark("normalizer.Normalize", time.Since(start))
	}()

	doc := NewDocument(text)
	trace := make([]internal_type.RuleApplication, 0, len(p.rules))
	for _, rule := range p.rules {
		n, err := rule.Apply(doc)
		if errors.Is(err, errEmptyText) {
			return "", trace, nil
		}
		if err != nil {
			p.logger.Debugf("normalizer: %s rejected input: %v", rule.Name(), err)
			return ErrorMarker, trace, err
		}
		if n > 0 {
			p.logger.Debugf("normalizer: %s applied %d time(s)", rule.Name(), n)
			trace = append(trace, internal_type.RuleApplication{Rule: rule.Name(), Count: n})
		}
	}
	return doc.String(), trace, nil
}

// =============================================================================
// Named pipelines
// =============================================================================

// BuildNormalizerPipeline builds a pipeline from rule names, in the given
// order. Unknown names are skipped with a warning.
func BuildNormalizerPipeline(logger commons.Logger, names []string) (*Pipeline, error) {
	rules := make([]Rule, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(strings.ToLower(name))
		var rule Rule

		switch name {
		case RuleUnicode:
			rule = NewUnicodeRule(logger)
		case RuleValidate, "validation":
			rule = NewValidationRule()
		case RuleDigitComma:
			rule = NewDigitCommaRule()
		case RuleAbbreviation, "abbreviations":
			rule = NewAbbreviationRule(logger)
		case RulePin:
			rule = NewPinRule(logger)
		case RuleDate:
			rule = NewDateRule(logger)
		case RuleMultiply:
			rule = NewMultiplyRule(logger)
		case RuleDivide:
			rule = NewDivideRule(logger)
		case RuleCurrency:
			rule = NewCurrencyRule(logger)
		case RulePercent:
			rule = NewPercentRule(logger)
		case RuleSigned:
			rule = NewSignedRule(logger)
		case RuleTime:
			rule = NewTimeRule(logger)
		case RuleDecimal:
			rule = NewDecimalRule(logger)
		case RuleFraction:
			rule = NewFractionRule(logger)
		case RuleOrdinal:
			rule = NewOrdinalRule(logger)
		case RuleCardinal, "number":
			rule = NewCardinalRule(logger)
		case RulePunctuation:
			rule = NewPunctuationRule()
		case RuleSuffixArtifact:
			rule = NewSuffixArtifactRule()
		case RuleWhitespace:
			rule = NewWhitespaceRule()
		default:
			logger.Warnf("normalizer: unknown rule '%s', skipping", name)
			continue
		}
		rules = append(rules, rule)
	}
	return NewPipeline(logger, rules...)
}
