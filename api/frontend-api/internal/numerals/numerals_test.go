// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_numerals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberToWords_BelowHundredUsesTable(t *testing.T) {
	for n := uint64(0); n < 100; n++ {
		assert.Equal(t, cardinals[n], NumberToWords(n), "n=%d", n)
	}
}

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		name     string
		input    uint64
		expected string
	}{
		{"hundred", 100, "સો"},
		{"hundred and one", 101, "એકસો એક"},
		{"two hundred", 200, "બેસો"},
		{"thousand", 1000, "એક હજાર"},
		{"year", 2024, "બે હજાર ચોવીસ"},
		{"lakh grouping", 123456, "એક લાખ ત્રેવીસ હજાર ચારસો છપ્પન"},
		{"ten crore", 100000000, "દસ કરોડ"},
		{"largest below arab", 999999999, "નવ્વાણું કરોડ નવ્વાણું લાખ નવ્વાણું હજાર નવસો નવ્વાણું"},
		{"one arab", 1000000000, "એક અબજ"},
		{"ten arab", 10000000000, "દસ અબજ"},
		{"arab with crore", 1050000000, "એક અબજ પાંચ કરોડ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NumberToWords(tt.input))
		})
	}
}

func TestParse(t *testing.T) {
	n, err := Parse("૨૦૨૪")
	require.NoError(t, err)
	assert.Equal(t, uint64(2024), n)

	n, err = Parse("2024")
	require.NoError(t, err)
	assert.Equal(t, uint64(2024), n)

	_, err = Parse("")
	assert.ErrorIs(t, err, ErrNotANumber)

	_, err = Parse("12a")
	assert.ErrorIs(t, err, ErrNotANumber)
}

func TestToASCIIDigits(t *testing.T) {
	assert.Equal(t, "0123456789", ToASCIIDigits("૦૧૨૩૪૫૬૭૮૯"))
	assert.Equal(t, "પિન: 380001", ToASCIIDigits("પિન: ૩૮૦૦૦૧"))
}

func TestCardinalToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"indian grouping", "1,00,000", "એક લાખ"},
		{"gujarati digits", "૧૨૫", "એકસો પચ્ચીસ"},
		{"triple nine", "૯૯૯", "નવ નવ નવ નવ નવ"},
		{"long gujarati run", "૧૨૩૪૫૬૭૮૯૦", "એક બે ત્રણ ચાર પાંચ છ સાત આઠ નવ શૂન્ય"},
		{"long ascii run is a cardinal", "1000000000", "એક અબજ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CardinalToken(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := CardinalToken("abc")
	assert.ErrorIs(t, err, ErrNotANumber)
}

func TestDigitByDigit(t *testing.T) {
	got, err := DigitByDigit("૩૮૦૦૦૧")
	require.NoError(t, err)
	assert.Equal(t, "ત્રણ આઠ શૂન્ય શૂન્ય શૂન્ય એક", got)

	_, err = DigitByDigit("")
	assert.ErrorIs(t, err, ErrNotANumber)

	_, err = DigitByDigit("12x")
	assert.ErrorIs(t, err, ErrNotANumber)
}

func TestOrdinalWords(t *testing.T) {
	tests := []struct {
		n        uint64
		suffix   string
		expected string
	}{
		{1, "લો", "પહેલા"},
		{1, "મી", "પહેલો"},
		{2, "જી", "બીજી"},
		{2, "", "બીજો"},
		{3, "જું", "ત્રીજી"},
		{100, "મો", "સોમો"},
		{100, "મી", "સો"},
		{5, "મી", "પાંચમી"},
		{21, "મો", "એકવીસમી"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, OrdinalWords(tt.n, tt.suffix), "n=%d suffix=%q", tt.n, tt.suffix)
	}
}

func TestOrdinalSuffixes_AttachedClass(t *testing.T) {
	for _, s := range OrdinalSuffixes {
		assert.Equal(t, s != "મી", IsAttachedSuffix(s), "suffix %q", s)
	}
}

func TestDayWords(t *testing.T) {
	assert.Equal(t, "પહેલી", DayWords(1))
	assert.Equal(t, "ત્રીજી", DayWords(3))
	assert.Equal(t, "પંદરમી", DayWords(15))
}

func TestFractionWords(t *testing.T) {
	got, err := FractionWords("1", "2")
	require.NoError(t, err)
	assert.Equal(t, "અડધો", got)

	got, err = FractionWords("૩", "૪")
	require.NoError(t, err)
	assert.Equal(t, "પોણો", got)

	got, err = FractionWords("2", "3")
	require.NoError(t, err)
	assert.Equal(t, "બે/ત્રણ", got)
}

func TestCurrencyWords(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		suffix   string
		expected string
	}{
		{"whole rupees", "500", "", "રૂપિયા પાંચસો"},
		{"slash dash", "100/-", "", "રૂપિયા સો"},
		{"one fractional digit is tenths", "૧૨૩.૫", "", "રૂપિયા એકસો ત્રેવીસ અને પચાસ પૈસા"},
		{"single paisa", "5.01", "ની", "રૂપિયા પાંચ અને એક પૈસો ની"},
		{"zero paise dropped", "7.00", "", "રૂપિયા સાત"},
		{"suffix keeps its space", "10", " માં", "રૂપિયા દસ માં"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CurrencyWords(tt.amount, tt.suffix)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDecimalWords(t *testing.T) {
	got, err := DecimalWords("3", "14")
	require.NoError(t, err)
	assert.Equal(t, "ત્રણ દશમલવ ચૌદ", got)

	got, err = DecimalWords("123456789", "50")
	require.NoError(t, err)
	assert.Equal(t, "બાર કરોડ ચોત્રીસ લાખ છપ્પન હજાર સાતસો નેવ્યાસી અને પચાસ પૈસા", got)
}

func TestPercentWords(t *testing.T) {
	got, err := PercentWords("50")
	require.NoError(t, err)
	assert.Equal(t, "પચાસ ટકા", got)

	got, err = PercentWords("૧૨.૫")
	require.NoError(t, err)
	assert.Equal(t, "બાર દશમલવ પાંચ ટકા", got)
}

func TestDateWords(t *testing.T) {
	got, err := DateWords("15", "08", "2023")
	require.NoError(t, err)
	assert.Equal(t, "પંદરમી ઑગસ્ટ બે હજાર ત્રેવીસ", got)

	got, err = DateWords("1", "13", "2020")
	require.NoError(t, err)
	assert.Equal(t, "પહેલી 13 બે હજાર વીસ", got)
}

func TestTimeWords(t *testing.T) {
	tests := []struct {
		hour, minute uint64
		expected     string
	}{
		{0, 0, "મધરાત"},
		{0, 15, "મધરાત પંદર મિનિટે"},
		{12, 0, "બપોર"},
		{12, 30, "બપોર ત્રીસ મિનિટે"},
		{9, 5, "નવ વાગ્યા પાંચ મિનિટે"},
		{18, 30, "રાત્રે છ વાગ્યા ત્રીસ મિનિટે"},
		{10, 0, "દસ વાગ્યા શૂન્ય મિનિટે"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, TimeWords(tt.hour, tt.minute), "%d:%d", tt.hour, tt.minute)
	}
}

func TestGloss(t *testing.T) {
	assert.Equal(t, "forty-two", Gloss(42))
}
