// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"regexp"

	"github.com/rapidaai/gujarati-frontend/pkg/commons"
)

// Rule is one named stage of the normalizer pipeline.
type Rule interface {
	Name() string
	// After lists rules that must run earlier when they are part of the same pipeline.
	After() []string
	// Apply rewrites the document and returns the number of rewrites.
	Apply(doc *Document) (int, error)
}

// patternRule rewrites regular expression matches guarded by their neighbours.
// Replacements are frozen so later rules never read them again.
type patternRule struct {
	logger  commons.Logger
	name    string
	after   []string
	pattern *regexp.Regexp
	guard   Guard
	replace func(groups []string) (string, error)
}

func (r *patternRule) Name() string    { return r.name }
func (r *patternRule) After() []string { return r.after }

func (r *patternRule) Apply(doc *Document) (int, error) {
	return doc.Rewrite(r.pattern, r.guard, func(groups []string) (string, bool) {
		out, err := r.replace(groups)
		if err != nil {
			r.logger.Debugf("normalizer: %s kept %q: %v", r.name, groups[0], err)
			return "", false
		}
		return out, true
	}), nil
}

// textRule rewrites the whole text, used by the stages that run after all
// recognizers.
type textRule struct {
	name      string
	after     []string
	transform func(string) string
}

func (r *textRule) Name() string    { return r.name }
func (r *textRule) After() []string { return r.after }

func (r *textRule) Apply(doc *Document) (int, error) {
	return doc.Transform(r.transform), nil
}
