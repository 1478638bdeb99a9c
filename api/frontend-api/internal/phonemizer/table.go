// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_phonemizer

// Phoneme is an IPA symbol wrapped in slashes, or a bare ASCII digit.
type Phoneme string

// Mapping lists the readings of a grapheme, preferred first. An empty
// mapping means the grapheme produces no sound of its own.
type Mapping struct {
	Alternatives []Phoneme
}

// Primary returns the preferred reading.
func (m Mapping) Primary() (Phoneme, bool) {
	if len(m.Alternatives) == 0 {
		return "", false
	}
	return m.Alternatives[0], true
}

// Schwa is the inherent vowel inserted between clustered consonants.
const Schwa Phoneme = "/ə/"

const viramaRune = '્'

type entry struct {
	grapheme rune
	class    CharacterClass
	phonemes []Phoneme
}

func ph(p ...Phoneme) []Phoneme { return p }

// entries is the alphabet. Each grapheme appears exactly once.
var entries = []entry{
	// independent vowels
	{'અ', ClassIndependentVowel, ph("/ə/")},
	{'આ', ClassIndependentVowel, ph("/aː/")},
	{'ઇ', ClassIndependentVowel, ph("/i/")},
	{'ઈ', ClassIndependentVowel, ph("/iː/")},
	{'ઉ', ClassIndependentVowel, ph("/u/")},
	{'ઊ', ClassIndependentVowel, ph("/uː/")},
	{'ઋ', ClassIndependentVowel, ph("/ɾ̩/")},
	{'ૠ', ClassIndependentVowel, ph("/ɾ̩ː/")},
	{'એ', ClassIndependentVowel, ph("/eː/")},
	{'ઐ', ClassIndependentVowel, ph("/əi/")},
	{'ઓ', ClassIndependentVowel, ph("/oː/")},
	{'ઔ', ClassIndependentVowel, ph("/əu/")},

	// vowel signs
	{'ા', ClassVowelSign, ph("/aː/")},
	{'િ', ClassVowelSign, ph("/i/")},
	{'ી', ClassVowelSign, ph("/iː/")},
	{'ુ', ClassVowelSign, ph("/u/")},
	{'ૂ', ClassVowelSign, ph("/uː/")},
	{'ૃ', ClassVowelSign, ph("/ɾ̩/")},
	{'ૄ', ClassVowelSign, ph("/ɾ̩ː/")},
	{'ે', ClassVowelSign, ph("/eː/")},
	{'ૈ', ClassVowelSign, ph("/əi/")},
	{'ો', ClassVowelSign, ph("/oː/")},
	{'ૌ', ClassVowelSign, ph("/əu/")},

	// anusvara, visarga, candrabindu
	{'ં', ClassNasalization, ph("/ŋ/")},
	{'ઃ', ClassNasalization, ph("/h/")},
	{'ઁ', ClassNasalization, ph("/˜/")},

	// consonants
	{'ક', ClassConsonant, ph("/k/")},
	{'ખ', ClassConsonant, ph("/kʰ/")},
	{'ગ', ClassConsonant, ph("/ɡ/")},
	{'ઘ', ClassConsonant, ph("/ɡʱ/")},
	{'ઙ', ClassConsonant, ph("/ŋ/")},
	{'ચ', ClassConsonant, ph("/tʃ/")},
	{'છ', ClassConsonant, ph("/tʃʰ/")},
	{'જ', ClassConsonant, ph("/dʒ/")},
	{'ઝ', ClassConsonant, ph("/dʒʱ/")},
	{'ઞ', ClassConsonant, ph("/ɲ/")},
	{'ટ', ClassConsonant, ph("/ʈ/")},
	{'ઠ', ClassConsonant, ph("/ʈʰ/")},
	{'ડ', ClassConsonant, ph("/ɖ/")},
	{'ઢ', ClassConsonant, ph("/ɖʱ/")},
	{'ણ', ClassConsonant, ph("/ɳ/")},
	{'ત', ClassConsonant, ph("/t/")},
	{'થ', ClassConsonant, ph("/t̪ʰ/")},
	{'દ', ClassConsonant, ph("/d̪/")},
	{'ધ', ClassConsonant, ph("/d̪ʱ/")},
	{'ન', ClassConsonant, ph("/n/")},
	{'પ', ClassConsonant, ph("/p/")},
	{'ફ', ClassConsonant, ph("/f/", "/pʰ/")},
	{'બ', ClassConsonant, ph("/b/")},
	{'ભ', ClassConsonant, ph("/bʱ/")},
	{'મ', ClassConsonant, ph("/m/")},
	{'ય', ClassConsonant, ph("/j/")},
	{'ર', ClassConsonant, ph("/ɾ/")},
	{'લ', ClassConsonant, ph("/l/")},
	{'ળ', ClassConsonant, ph("/ɭ/")},
	{'વ', ClassConsonant, ph("/ʋ/")},
	{'શ', ClassConsonant, ph("/ʃ/")},
	{'ષ', ClassConsonant, ph("/ʂ/")},
	{'સ', ClassConsonant, ph("/s/")},
	{'હ', ClassConsonant, ph("/h/")},

	{viramaRune, ClassVirama, nil},

	// digits read as ASCII
	{'૦', ClassDigit, ph("0")},
	{'૧', ClassDigit, ph("1")},
	{'૨', ClassDigit, ph("2")},
	{'૩', ClassDigit, ph("3")},
	{'૪', ClassDigit, ph("4")},
	{'૫', ClassDigit, ph("5")},
	{'૬', ClassDigit, ph("6")},
	{'૭', ClassDigit, ph("7")},
	{'૮', ClassDigit, ph("8")},
	{'૯', ClassDigit, ph("9")},

	// punctuation
	{'/', ClassOutputPunctuation, nil},
	{'-', ClassOutputPunctuation, nil},
	{'?', ClassIgnoredPunctuation, nil},
	{'!', ClassIgnoredPunctuation, nil},
	{',', ClassIgnoredPunctuation, nil},
	{'.', ClassIgnoredPunctuation, nil},
	{';', ClassIgnoredPunctuation, nil},
	{':', ClassIgnoredPunctuation, nil},
}

var (
	phonemeTable map[rune]Mapping
	classes      map[rune]CharacterClass
)

func init() {
	phonemeTable = make(map[rune]Mapping, len(entries))
	classes = make(map[rune]CharacterClass, len(entries))
	for _, e := range entries {
		classes[e.grapheme] = e.class
		if e.class == ClassOutputPunctuation || e.class == ClassIgnoredPunctuation {
			continue
		}
		phonemeTable[e.grapheme] = Mapping{Alternatives: e.phonemes}
	}
}

// Lookup returns the mapping of a grapheme of the alphabet.
func Lookup(r rune) (Mapping, bool) {
	m, ok := phonemeTable[r]
	return m, ok
}
