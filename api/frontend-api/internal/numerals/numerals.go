// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

// Package internal_numerals renders numbers as Gujarati words using the
// Indian numbering system (hundred, thousand, lakh, crore, arab).
//
// All functions are pure and safe for concurrent use. String based helpers
// accept ASCII and Gujarati digits and return ErrNotANumber when a token
// cannot be parsed; callers fall back to the original text in that case.
package internal_numerals

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	ntw "moul.io/number-to-words"
)

var ErrNotANumber = errors.New("numerals: not a number")

var digitFolder = strings.NewReplacer(
	"૦", "0", "૧", "1", "૨", "2", "૩", "3", "૪", "4",
	"૫", "5", "૬", "6", "૭", "7", "૮", "8", "૯", "9",
)

// ToASCIIDigits replaces Gujarati digits with their ASCII counterparts.
func ToASCIIDigits(s string) string {
	return digitFolder.Replace(s)
}

// IsGujaratiDigit reports whether r is one of ૦-૯.
func IsGujaratiDigit(r rune) bool {
	return r >= '૦' && r <= '૯'
}

// Parse reads a digit string in either digit family.
func Parse(s string) (uint64, error) {
	n, err := strconv.ParseUint(ToASCIIDigits(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return n, nil
}

// =============================================================================
// Cardinals
// =============================================================================

// NumberToWords renders n as a Gujarati cardinal.
func NumberToWords(n uint64) string {
	if n < 100 {
		return cardinals[n]
	}

	parts := make([]string, 0, 6)
	rest := n
	for _, s := range scales {
		count := rest / s.divisor
		rest %= s.divisor
		if count == 0 {
			continue
		}
		switch s.divisor {
		case 10000000:
			parts = append(parts, crores(count))
		case 100:
			if count == 1 && rest == 0 {
				parts = append(parts, WordHundred)
			} else {
				parts = append(parts, cardinals[count]+WordHundred)
			}
		default:
			parts = append(parts, NumberToWords(count)+" "+s.word)
		}
	}
	if rest > 0 {
		parts = append(parts, cardinals[rest])
	}
	return strings.Join(parts, " ")
}

// crores renders a crore count; counts of a hundred or more are read in arab first.
func crores(count uint64) string {
	if count < 100 {
		return cardinals[count] + " " + WordCrore
	}
	result := NumberToWords(count/100) + " " + WordArab
	if rem := count % 100; rem > 0 {
		result += " " + cardinals[rem] + " " + WordCrore
	}
	return result
}

// CardinalToken reads a bare number token as it appears in running text.
// Commas are ignored, long Gujarati digit runs are spelled out digit by digit.
func CardinalToken(token string) (string, error) {
	clean := strings.ReplaceAll(token, ",", "")
	if clean == digitByDigitException {
		return digitByDigitExceptionReadings, nil
	}
	if isGujaratiDigits(clean) &&
		utf8.RuneCountInString(clean) >= digitByDigitMinLength &&
		!strings.Contains(token, ",") {
		return DigitByDigit(clean)
	}
	n, err := Parse(clean)
	if err != nil {
		return "", err
	}
	return NumberToWords(n), nil
}

// DigitByDigit speaks every digit on its own, as used for PIN codes.
func DigitByDigit(digits string) (string, error) {
	if digits == "" {
		return "", fmt.Errorf("%w: empty digit string", ErrNotANumber)
	}
	words := make([]string, 0, utf8.RuneCountInString(digits))
	for _, r := range ToASCIIDigits(digits) {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: %q", ErrNotANumber, digits)
		}
		words = append(words, cardinals[r-'0'])
	}
	return strings.Join(words, " "), nil
}

func isGujaratiDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsGujaratiDigit(r) {
			return false
		}
	}
	return true
}

// =============================================================================
// Ordinals and fractions
// =============================================================================

// IsAttachedSuffix reports whether an ordinal suffix selects the first
// rendering of the 1, 2, 3 and 100 exceptions.
func IsAttachedSuffix(suffix string) bool {
	_, ok := attachedSuffixes[suffix]
	return ok
}

// OrdinalWords renders n as an ordinal. suffix is the spelling attached to the
// number in the source text, or empty.
func OrdinalWords(n uint64, suffix string) string {
	if forms, ok := ordinalExceptions[n]; ok {
		if IsAttachedSuffix(suffix) {
			return forms.attached
		}
		return forms.plain
	}
	return NumberToWords(n) + OrdinalSuffix
}

// DayWords renders the day of a date.
func DayWords(day uint64) string {
	if w, ok := dayExceptions[day]; ok {
		return w
	}
	return NumberToWords(day) + OrdinalSuffix
}

// FractionWords renders num/den, using the idiomatic word when one exists.
func FractionWords(num, den string) (string, error) {
	key := fractionKey{numerator: ToASCIIDigits(num), denominator: ToASCIIDigits(den)}
	if w, ok := fractionExceptions[key]; ok {
		return w, nil
	}
	n, err := Parse(num)
	if err != nil {
		return "", err
	}
	d, err := Parse(den)
	if err != nil {
		return "", err
	}
	return NumberToWords(n) + "/" + NumberToWords(d), nil
}

// =============================================================================
// Amounts
// =============================================================================

// CurrencyWords renders a rupee amount such as "૧૨૩.૫" or "100/-".
// A single fractional digit is read as tenths of a rupee.
func CurrencyWords(amount, suffix string) (string, error) {
	amount = strings.ReplaceAll(amount, "/-", "")
	rupeesPart, paisePart, hasPaise := strings.Cut(amount, ".")

	var rupees uint64
	if rupeesPart != "" {
		n, err := Parse(rupeesPart)
		if err != nil {
			return "", err
		}
		rupees = n
	}

	result := WordRupees + " " + NumberToWords(rupees)
	if hasPaise && paisePart != "" {
		paise, err := Parse(paisePart)
		if err != nil {
			return "", err
		}
		if paise > 0 {
			if utf8.RuneCountInString(paisePart) == 1 {
				paise *= 10
			}
			label := WordPaise
			if paise == 1 {
				label = WordPaisa
			}
			result += " " + WordAnd + " " + NumberToWords(paise) + " " + label
		}
	}

	if suffix != "" && !strings.HasPrefix(suffix, " ") {
		return result + " " + suffix, nil
	}
	return result + suffix, nil
}

// DecimalWords reads integer.fraction. Integers of nine or more digits are
// amounts and are read as rupees and paise instead.
func DecimalWords(integer, fraction string) (string, error) {
	i, err := Parse(integer)
	if err != nil {
		return "", err
	}
	f, err := Parse(fraction)
	if err != nil {
		return "", err
	}
	if utf8.RuneCountInString(integer) >= decimalAsCurrencyMinDigits {
		return NumberToWords(i) + " " + WordAnd + " " + NumberToWords(f) + " " + WordPaise, nil
	}
	return NumberToWords(i) + " " + WordPoint + " " + NumberToWords(f), nil
}

// PercentWords reads an amount followed by a percent sign.
func PercentWords(amount string) (string, error) {
	integer, fraction, ok := strings.Cut(amount, ".")
	i, err := Parse(strings.ReplaceAll(integer, ",", ""))
	if err != nil {
		return "", err
	}
	if !ok {
		return NumberToWords(i) + " " + WordPercent, nil
	}
	f, err := Parse(fraction)
	if err != nil {
		return "", err
	}
	return NumberToWords(i) + " " + WordPoint + " " + NumberToWords(f) + " " + WordPercent, nil
}

// =============================================================================
// Calendar and clock
// =============================================================================

// MonthName returns the name of month 1-12.
func MonthName(month uint64) (string, bool) {
	if month < 1 || month > 12 {
		return "", false
	}
	return months[month], true
}

// DateWords reads a day, month and year. An out of range month is kept as written.
func DateWords(day, month, year string) (string, error) {
	d, err := Parse(day)
	if err != nil {
		return "", err
	}
	m, err := Parse(month)
	if err != nil {
		return "", err
	}
	y, err := Parse(year)
	if err != nil {
		return "", err
	}
	monthWords, ok := MonthName(m)
	if !ok {
		monthWords = month
	}
	return DayWords(d) + " " + monthWords + " " + NumberToWords(y), nil
}

// TimeWords reads a clock time, naming midnight and noon and marking evening hours.
func TimeWords(hour, minute uint64) string {
	switch {
	case hour == 0 && minute == 0:
		return WordMidnight
	case hour == 0:
		return WordMidnight + " " + NumberToWords(minute) + " " + WordMinutes
	case hour == 12 && minute == 0:
		return WordNoon
	case hour == 12:
		return WordNoon + " " + NumberToWords(minute) + " " + WordMinutes
	}

	prefix := ""
	if hour >= 18 {
		hour -= 12
		prefix = WordAtNight + " "
	}
	return prefix + NumberToWords(hour) + " " + WordOClock + " " + NumberToWords(minute) + " " + WordMinutes
}

// =============================================================================
// Diagnostics
// =============================================================================

// Gloss returns the English reading of n, used in logs and the numerals endpoint.
func Gloss(n uint64) string {
	if n > math.MaxInt64 {
		return strconv.FormatUint(n, 10)
	}
	return ntw.IntegerToEnUs(int(n))
}
