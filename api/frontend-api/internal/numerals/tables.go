// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_numerals

// cardinals holds the Gujarati word for every integer below one hundred.
// The forms are irregular and must never be synthesized from tens and ones.
var cardinals = [100]string{
	"શૂન્ય", "એક", "બે", "ત્રણ", "ચાર", "પાંચ", "છ", "સાત", "આઠ", "નવ",
	"દસ", "અગિયાર", "બાર", "તેર", "ચૌદ", "પંદર", "સોળ", "સત્તર", "અઢાર", "ઉન્નીસ",
	"વીસ", "એકવીસ", "બાવીસ", "ત્રેવીસ", "ચોવીસ", "પચ્ચીસ", "છવીસ", "સત્તાવીસ", "અઠ્ઠાવીસ", "ઓગણત્રીસ",
	"ત્રીસ", "એકત્રીસ", "બત્રીસ", "ત્રેત્રીસ", "ચોત્રીસ", "પાંત્રીસ", "છત્રીસ", "સાડત્રીસ", "આડત્રીસ", "ઓગણચાલીસ",
	"ચાલીસ", "એકતાલીસ", "બેતાલીસ", "તેતાલીસ", "ચુંમાલીસ", "પિસ્તાલીસ", "છેતાલીસ", "સુડતાલીસ", "અડતાલીસ", "ઓગણપચાસ",
	"પચાસ", "એકાવન", "બાવન", "ત્રેપન", "ચોપ્પન", "પંચાવન", "છપ્પન", "સત્તાવન", "અઠ્ઠાવન", "ઓગણસાઠ",
	"સાઠ", "એકસઠ", "બાસઠ", "ત્રેસઠ", "ચોસઠ", "પાંસઠ", "છાસઠ", "સડસઠ", "અડસઠ", "ઓગણસિત્તેર",
	"સિત્તેર", "એકોતેર", "બોતેર", "તોતેર", "ચુમોતેર", "પંચોતેર", "છોતેર", "સિત્યોતેર", "ઇઠ્યોતેર", "ઓગણાએંસી",
	"એંસી", "એક્યાસી", "બ્યાસી", "ત્ર્યાસી", "ચોર્યાસી", "પંચ્યાસી", "છ્યાસી", "સત્ત્યાસી", "અઢ્યાસી", "નેવ્યાસી",
	"નેવું", "એકાણું", "બાણું", "ત્રાણું", "ચોરાણું", "પંચાણું", "છન્નું", "સત્તાણું", "અઠ્ઠાણું", "નવ્વાણું",
}

type scale struct {
	divisor uint64
	word    string
}

// scales are extracted most significant first.
var scales = []scale{
	{divisor: 10000000, word: WordCrore},
	{divisor: 100000, word: WordLakh},
	{divisor: 1000, word: WordThousand},
	{divisor: 100, word: WordHundred},
}

const (
	WordCrore    = "કરોડ"
	WordLakh     = "લાખ"
	WordThousand = "હજાર"
	WordHundred  = "સો"
	WordArab     = "અબજ"

	WordRupees    = "રૂપિયા"
	WordPaisa     = "પૈસો"
	WordPaise     = "પૈસા"
	WordAnd       = "અને"
	WordPoint     = "દશમલવ"
	WordPercent   = "ટકા"
	WordOClock    = "વાગ્યા"
	WordMinutes   = "મિનિટે"
	WordMidnight  = "મધરાત"
	WordNoon      = "બપોર"
	WordAtNight   = "રાત્રે"
	WordPlus      = "પ્લસ"
	WordMinus     = "માઈનસ"
	WordTimes     = "ગુણા"
	WordDividedBy = "ભાગ"
	OrdinalSuffix = "મી"
)

type ordinalForms struct {
	// attached is used when the source suffix belongs to the attached class.
	attached string
	plain    string
}

var ordinalExceptions = map[uint64]ordinalForms{
	1:   {attached: "પહેલા", plain: "પહેલો"},
	2:   {attached: "બીજી", plain: "બીજો"},
	3:   {attached: "ત્રીજી", plain: "ત્રીજો"},
	100: {attached: "સોમો", plain: "સો"},
}

// OrdinalSuffixes is the closed set of suffix spellings recognized after a number.
var OrdinalSuffixes = []string{"મી", "લો", "જી", "જું", "મો", "લા"}

// attachedSuffixes select the first rendering of an ordinal exception.
var attachedSuffixes = map[string]struct{}{
	"લો": {}, "લા": {}, "જું": {}, "જી": {}, "મો": {},
}

// dayExceptions are the feminine ordinals used for the day of a date.
var dayExceptions = map[uint64]string{
	1: "પહેલી",
	2: "બીજી",
	3: "ત્રીજી",
}

type fractionKey struct {
	numerator   string
	denominator string
}

// fractionExceptions are keyed by ASCII digit strings.
var fractionExceptions = map[fractionKey]string{
	{"1", "2"}:    "અડધો",
	{"1", "4"}:    "પા",
	{"3", "4"}:    "પોણો",
	{"1", "1.5"}:  "દોઢ",
	{"1", "1.25"}: "સવા",
	{"1", "1.75"}: "પોણા બે",
}

var months = [13]string{
	"",
	"જાન્યુઆરી",
	"ફેબ્રુઆરી",
	"માર્ચ",
	"એપ્રિલ",
	"મે",
	"જૂન",
	"જુલાઈ",
	"ઑગસ્ટ",
	"સપ્ટેમ્બર",
	"ઓક્ટોબર",
	"નવેમ્બર",
	"ડિસેમ્બર",
}

// digitByDigitException is a known token read as five nines rather than three.
const (
	digitByDigitException         = "૯૯૯"
	digitByDigitExceptionReadings = "નવ નવ નવ નવ નવ"
)

// digitByDigitMinLength is the length from which Gujarati digit runs are spelled out.
const digitByDigitMinLength = 10

// decimalAsCurrencyMinDigits is the integer length from which a decimal is read as rupees and paise.
const decimalAsCurrencyMinDigits = 9
