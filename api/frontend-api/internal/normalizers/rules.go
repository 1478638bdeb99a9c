// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"regexp"
	"strings"
	"unicode"

	internal_numerals "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/numerals"
	"github.com/rapidaai/gujarati-frontend/pkg/commons"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	RuleUnicode        = "unicode"
	RuleValidate       = "validate"
	RuleDigitComma     = "digit-comma"
	RuleAbbreviation   = "abbreviation"
	RulePin            = "pin"
	RuleDate           = "date"
	RuleMultiply       = "multiply"
	RuleDivide         = "divide"
	RuleCurrency       = "currency"
	RulePercent        = "percent"
	RuleSigned         = "signed"
	RuleTime           = "time"
	RuleDecimal        = "decimal"
	RuleFraction       = "fraction"
	RuleOrdinal        = "ordinal"
	RuleCardinal       = "cardinal"
	RulePunctuation    = "punctuation"
	RuleSuffixArtifact = "suffix-artifact"
	RuleWhitespace     = "whitespace"
)

// digits matches one ASCII or Gujarati digit.
const digits = `[0-9૦-૯]`

// =============================================================================
// Script cleanup
// =============================================================================

var zeroWidthJoiners = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x200C, Hi: 0x200D, Stride: 1}},
}

type unicodeRule struct {
	logger commons.Logger
}

// NewUnicodeRule composes the text to NFC and drops zero width (non) joiners.
func NewUnicodeRule(logger commons.Logger) Rule {
	return &unicodeRule{logger: logger}
}

func (r *unicodeRule) Name() string    { return RuleUnicode }
func (r *unicodeRule) After() []string { return nil }

func (r *unicodeRule) Apply(doc *Document) (int, error) {
	return doc.Transform(func(s string) string {
		t := transform.Chain(norm.NFC, runes.Remove(runes.In(zeroWidthJoiners)))
		out, _, err := transform.String(t, s)
		if err != nil {
			r.logger.Warnf("normalizer: unicode cleanup failed, keeping input: %v", err)
			return s
		}
		return out
	}), nil
}

type digitCommaRule struct{}

// NewDigitCommaRule removes thousands separators, a comma between two digits.
func NewDigitCommaRule() Rule { return &digitCommaRule{} }

func (r *digitCommaRule) Name() string    { return RuleDigitComma }
func (r *digitCommaRule) After() []string { return []string{RuleValidate} }

func (r *digitCommaRule) Apply(doc *Document) (int, error) {
	return doc.MapOpen(dropDigitCommas), nil
}

func dropDigitCommas(s string) string {
	if !strings.Contains(s, ",") {
		return s
	}
	rs := []rune(s)
	var sb strings.Builder
	sb.Grow(len(s))
	for i, c := range rs {
		if c == ',' && i > 0 && i < len(rs)-1 && unicode.IsDigit(rs[i-1]) && unicode.IsDigit(rs[i+1]) {
			continue
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

// =============================================================================
// Abbreviations
// =============================================================================

type abbreviation struct {
	short    string
	expanded string
}

// abbreviations are applied in order. Longer forms come before any shorter
// form they contain.
var abbreviations = []abbreviation{
	{"અ.મ્યુ.કો.", "અમદાવાદ મ્યુનિસિપલ કોર્પોરેશન"},
	{"ગુ.યુની.", "ગુજરાત યુનિવર્સિટી"},
	{"કિ.ગ્રા.", "કિલોગ્રામ"},
	{"કિ.ગ્રા", "કિલોગ્રામ"},
	{"કિ.મી.", "કિલોમીટર"},
	{"શ્રીમતી.", "શ્રીમતી"},
	{"શ્રી.", "શ્રીમાન"},
	{"ડૉ.", "ડોક્ટર"},
	{"પ્રો.", "પ્રોફેસર"},
	{"ગ્રા.", "ગ્રામ"},
	{"કુ.", "કુમારી"},
	{"તા.", "તારીખ "},
}

type abbreviationRule struct {
	logger commons.Logger
}

func NewAbbreviationRule(logger commons.Logger) Rule {
	return &abbreviationRule{logger: logger}
}

func (r *abbreviationRule) Name() string    { return RuleAbbreviation }
func (r *abbreviationRule) After() []string { return []string{RuleValidate} }

func (r *abbreviationRule) Apply(doc *Document) (int, error) {
	total := 0
	for _, a := range abbreviations {
		if n := doc.ReplaceLiteral(a.short, a.expanded); n > 0 {
			r.logger.Debugf("normalizer: expanded %q %d time(s)", a.short, n)
			total += n
		}
	}
	return total, nil
}

// =============================================================================
// Numeric recognizers
// =============================================================================

var (
	pinPattern      = regexp.MustCompile(`(પિન:\s*)(` + digits + `+)`)
	datePattern     = regexp.MustCompile(`(` + digits + `{1,2})[/-](` + digits + `{1,2})[/-](` + digits + `{2,4})`)
	multiplyPattern = regexp.MustCompile(`×\s*(` + digits + `+)`)
	dividePattern   = regexp.MustCompile(`÷\s*(` + digits + `+)`)
	currencyPattern = regexp.MustCompile(`₹\s*(` + digits + `+(?:\.` + digits + `+)?(?:/-)?)([^\s\p{Z}\p{Nd}]*)`)
	percentPattern  = regexp.MustCompile(`(` + digits + `+(?:\.` + digits + `+)?)%`)
	signedPattern   = regexp.MustCompile(`([+\-])\s*(` + digits + `+)`)
	timePattern     = regexp.MustCompile(`(` + digits + `{1,2}):(` + digits + `{1,2})(\s*વાગ્યે)?`)
	decimalPattern  = regexp.MustCompile(`(` + digits + `+)\.(` + digits + `+)`)
	fractionPattern = regexp.MustCompile(`(` + digits + `+)/(` + digits + `+)`)
	ordinalPattern  = regexp.MustCompile(`(` + digits + `+)(` + strings.Join(internal_numerals.OrdinalSuffixes, "|") + `)`)
	cardinalPattern = regexp.MustCompile(digits + `+(?:,` + digits + `+)*`)
)

// NewPinRule reads the digits after "પિન:" one by one.
func NewPinRule(logger commons.Logger) Rule {
	return &patternRule{
		logger:  logger,
		name:    RulePin,
		after:   []string{RuleDigitComma, RuleAbbreviation},
		pattern: pinPattern,
		replace: func(g []string) (string, error) {
			spoken, err := internal_numerals.DigitByDigit(g[2])
			if err != nil {
				return "", err
			}
			return g[1] + spoken, nil
		},
	}
}

// NewDateRule reads day/month/year and day-month-year dates.
func NewDateRule(logger commons.Logger) Rule {
	return &patternRule{
		logger:  logger,
		name:    RuleDate,
		after:   []string{RuleAbbreviation, RulePin},
		pattern: datePattern,
		replace: func(g []string) (string, error) {
			return internal_numerals.DateWords(g[1], g[2], g[3])
		},
	}
}

func NewMultiplyRule(logger commons.Logger) Rule {
	return operatorRule(logger, RuleMultiply, multiplyPattern, internal_numerals.WordTimes)
}

func NewDivideRule(logger commons.Logger) Rule {
	return operatorRule(logger, RuleDivide, dividePattern, internal_numerals.WordDividedBy)
}

func operatorRule(logger commons.Logger, name string, pattern *regexp.Regexp, word string) Rule {
	return &patternRule{
		logger:  logger,
		name:    name,
		after:   []string{RuleDate},
		pattern: pattern,
		replace: func(g []string) (string, error) {
			spoken, err := internal_numerals.CardinalToken(g[1])
			if err != nil {
				return "", err
			}
			return word + " " + spoken, nil
		},
	}
}

// NewCurrencyRule reads rupee amounts together with the word glued to them.
func NewCurrencyRule(logger commons.Logger) Rule {
	return &patternRule{
		logger:  logger,
		name:    RuleCurrency,
		after:   []string{RuleDigitComma, RuleDate},
		pattern: currencyPattern,
		replace: func(g []string) (string, error) {
			return internal_numerals.CurrencyWords(g[1], g[2])
		},
	}
}

func NewPercentRule(logger commons.Logger) Rule {
	return &patternRule{
		logger:  logger,
		name:    RulePercent,
		after:   []string{RuleCurrency},
		pattern: percentPattern,
		replace: func(g []string) (string, error) {
			return internal_numerals.PercentWords(g[1])
		},
	}
}

// NewSignedRule reads a leading plus or minus sign.
func NewSignedRule(logger commons.Logger) Rule {
	return &patternRule{
		logger:  logger,
		name:    RuleSigned,
		after:   []string{RuleDate, RuleCurrency},
		pattern: signedPattern,
		replace: func(g []string) (string, error) {
			spoken, err := internal_numerals.CardinalToken(g[2])
			if err != nil {
				return "", err
			}
			if g[1] == "+" {
				return internal_numerals.WordPlus + " " + spoken, nil
			}
			return internal_numerals.WordMinus + " " + spoken, nil
		},
	}
}

// NewTimeRule reads hour:minute, absorbing a following "વાગ્યે".
func NewTimeRule(logger commons.Logger) Rule {
	return &patternRule{
		logger:  logger,
		name:    RuleTime,
		after:   []string{RuleDate, RuleSigned},
		pattern: timePattern,
		guard:   boundaryBefore,
		replace: func(g []string) (string, error) {
			hour, err := internal_numerals.Parse(g[1])
			if err != nil {
				return "", err
			}
			minute, err := internal_numerals.Parse(g[2])
			if err != nil {
				return "", err
			}
			return internal_numerals.TimeWords(hour, minute), nil
		},
	}
}

func NewDecimalRule(logger commons.Logger) Rule {
	return &patternRule{
		logger:  logger,
		name:    RuleDecimal,
		after:   []string{RuleCurrency, RulePercent, RuleTime},
		pattern: decimalPattern,
		guard:   boundaryAround,
		replace: func(g []string) (string, error) {
			return internal_numerals.DecimalWords(g[1], g[2])
		},
	}
}

func NewFractionRule(logger commons.Logger) Rule {
	return &patternRule{
		logger:  logger,
		name:    RuleFraction,
		after:   []string{RuleDate, RuleCurrency},
		pattern: fractionPattern,
		guard:   boundaryAround,
		replace: func(g []string) (string, error) {
			return internal_numerals.FractionWords(g[1], g[2])
		},
	}
}

// NewOrdinalRule reads a number followed by an ordinal suffix.
func NewOrdinalRule(logger commons.Logger) Rule {
	return &patternRule{
		logger:  logger,
		name:    RuleOrdinal,
		after:   []string{RuleDate, RuleDecimal},
		pattern: ordinalPattern,
		guard:   standaloneOrdinal,
		replace: func(g []string) (string, error) {
			n, err := internal_numerals.Parse(g[1])
			if err != nil {
				return "", err
			}
			return internal_numerals.OrdinalWords(n, g[2]), nil
		},
	}
}

// NewCardinalRule reads every remaining standalone number.
func NewCardinalRule(logger commons.Logger) Rule {
	return &patternRule{
		logger: logger,
		name:   RuleCardinal,
		after: []string{
			RulePin, RuleDate, RuleMultiply, RuleDivide, RuleCurrency, RulePercent,
			RuleSigned, RuleTime, RuleDecimal, RuleFraction, RuleOrdinal,
		},
		pattern: cardinalPattern,
		guard:   boundaryAround,
		replace: func(g []string) (string, error) {
			spoken, err := internal_numerals.CardinalToken(g[0])
			if err != nil {
				return "", err
			}
			if n, perr := internal_numerals.Parse(strings.ReplaceAll(g[0], ",", "")); perr == nil {
				logger.Debugf("normalizer: cardinal %s (%s) -> %s", g[0], internal_numerals.Gloss(n), spoken)
			}
			return spoken, nil
		},
	}
}

// =============================================================================
// Final cleanup
// =============================================================================

var (
	ellipsisPattern        = regexp.MustCompile(`\.{2,}`)
	droppedMarksPattern    = regexp.MustCompile(`[!?']`)
	quotesPattern          = regexp.MustCompile(`[“”"]`)
	trailingPeriodsPattern = regexp.MustCompile(`[\s\p{Z}]*\.+[\s\p{Z}]*$`)
)

// NewPunctuationRule drops punctuation that is not spoken.
func NewPunctuationRule() Rule {
	return &textRule{
		name:  RulePunctuation,
		after: []string{RuleCurrency, RuleDecimal, RuleCardinal},
		transform: func(s string) string {
			s = ellipsisPattern.ReplaceAllString(s, " ")
			s = droppedMarksPattern.ReplaceAllString(s, "")
			s = quotesPattern.ReplaceAllString(s, "")
			s = strings.ReplaceAll(s, ",", "")
			return trailingPeriodsPattern.ReplaceAllString(s, "")
		},
	}
}

// kilogramArtifactPattern matches the "મ" doubled when "કિ.ગ્રામ" expands.
// A "મ" carrying a vowel sign or other mark starts a real syllable, as in
// "કિલોગ્રામમાં", and is left alone.
var kilogramArtifactPattern = regexp.MustCompile(`કિલોગ્રામમ([^\x{0A81}-\x{0A83}\x{0ABC}-\x{0ACD}]|$)`)

// NewSuffixArtifactRule repairs a doubled final letter left after "કિલોગ્રામ".
func NewSuffixArtifactRule() Rule {
	return &textRule{
		name:  RuleSuffixArtifact,
		after: []string{RuleAbbreviation},
		transform: func(s string) string {
			return kilogramArtifactPattern.ReplaceAllString(s, "કિલોગ્રામ$1")
		},
	}
}

// NewWhitespaceRule collapses runs of whitespace and trims the text.
func NewWhitespaceRule() Rule {
	return &textRule{
		name:  RuleWhitespace,
		after: []string{RulePunctuation},
		transform: func(s string) string {
			return strings.Join(strings.Fields(s), " ")
		},
	}
}
