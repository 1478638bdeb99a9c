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
	"unicode/utf8"
)

// noRune stands for a missing neighbour at either end of the text.
const noRune rune = -1

// =============================================================================
// Document
// =============================================================================

type segment struct {
	text string
	// frozen segments were produced by a recognizer and are never matched again.
	frozen bool
}

// Document is text under normalization. It is a sequence of open segments,
// which later rules may still rewrite, and frozen segments holding the
// spoken form produced by an earlier rule.
type Document struct {
	segments []segment
}

func NewDocument(text string) *Document {
	return &Document{segments: []segment{{text: text}}}
}

func (d *Document) String() string {
	if len(d.segments) == 1 {
		return d.segments[0].text
	}
	var sb strings.Builder
	for _, s := range d.segments {
		sb.WriteString(s.text)
	}
	return sb.String()
}

// Guard decides whether a match may be rewritten given the rune right before
// it and the rune right after it. Either may be noRune.
type Guard func(prev, next rune) bool

// Rewrite replaces every non-overlapping match of re found inside open
// segments. Neighbours are read across segment borders from the text as it
// was before this call. When the guard rejects a match the search resumes one
// rune after the match start. fn returns false to keep the matched text as is.
// Returns the number of replacements fn accepted.
func (d *Document) Rewrite(re *regexp.Regexp, guard Guard, fn func(groups []string) (string, bool)) int {
	out := make([]segment, 0, len(d.segments))
	count := 0
	for k, seg := range d.segments {
		if seg.frozen {
			out = append(out, seg)
			continue
		}
		before, after := d.neighbours(k)
		text := seg.text
		last, pos := 0, 0
		for pos <= len(text) {
			loc := re.FindStringSubmatchIndex(text[pos:])
			if loc == nil {
				break
			}
			for i := range loc {
				if loc[i] >= 0 {
					loc[i] += pos
				}
			}
			start, end := loc[0], loc[1]

			if guard != nil && !guard(runeBefore(text, start, before), runeAfter(text, end, after)) {
				_, size := utf8.DecodeRuneInString(text[start:])
				if size == 0 {
					break
				}
				pos = start + size
				continue
			}

			replacement, ok := fn(submatches(text, loc))
			if !ok {
				replacement = text[start:end]
			} else {
				count++
			}
			if start > last {
				out = append(out, segment{text: text[last:start]})
			}
			out = append(out, segment{text: replacement, frozen: true})
			last = end

			if end > start {
				pos = end
				continue
			}
			_, size := utf8.DecodeRuneInString(text[end:])
			if size == 0 {
				break
			}
			pos = end + size
		}
		if last < len(text) {
			out = append(out, segment{text: text[last:]})
		}
	}
	d.segments = compact(out)
	return count
}

// ReplaceLiteral replaces every occurrence of old inside open segments with a
// frozen copy of replacement.
func (d *Document) ReplaceLiteral(old, replacement string) int {
	if old == "" {
		return 0
	}
	re := regexp.MustCompile(regexp.QuoteMeta(old))
	return d.Rewrite(re, nil, func([]string) (string, bool) { return replacement, true })
}

// MapOpen applies fn to every open segment and returns how many changed.
func (d *Document) MapOpen(fn func(string) string) int {
	count := 0
	for i, s := range d.segments {
		if s.frozen {
			continue
		}
		if t := fn(s.text); t != s.text {
			d.segments[i].text = t
			count++
		}
	}
	return count
}

// Transform rewrites the whole text, frozen parts included, and leaves a
// single open segment. It returns 1 when the text changed.
func (d *Document) Transform(fn func(string) string) int {
	before := d.String()
	after := fn(before)
	d.segments = []segment{{text: after}}
	if after != before {
		return 1
	}
	return 0
}

// neighbours returns the last rune before segment k and the first rune after it.
func (d *Document) neighbours(k int) (rune, rune) {
	before, after := noRune, noRune
	for i := k - 1; i >= 0; i-- {
		if r, size := utf8.DecodeLastRuneInString(d.segments[i].text); size > 0 {
			before = r
			break
		}
	}
	for i := k + 1; i < len(d.segments); i++ {
		if r, size := utf8.DecodeRuneInString(d.segments[i].text); size > 0 {
			after = r
			break
		}
	}
	return before, after
}

// compact drops empty segments and merges adjacent open ones.
func compact(segments []segment) []segment {
	out := segments[:0]
	for _, s := range segments {
		if s.text == "" {
			continue
		}
		if n := len(out); n > 0 && !s.frozen && !out[n-1].frozen {
			out[n-1].text += s.text
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return []segment{{text: ""}}
	}
	return out
}

func runeBefore(text string, i int, fallback rune) rune {
	if i == 0 {
		return fallback
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return r
}

func runeAfter(text string, i int, fallback rune) rune {
	if i >= len(text) {
		return fallback
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return r
}

func submatches(text string, loc []int) []string {
	groups := make([]string, len(loc)/2)
	for i := range groups {
		if loc[2*i] >= 0 {
			groups[i] = text[loc[2*i]:loc[2*i+1]]
		}
	}
	return groups
}

// =============================================================================
// Guards
// =============================================================================

// isWordRune matches the characters a regular expression word boundary
// treats as part of a word. Combining vowel signs are not word runes.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isGujaratiBlock(r rune) bool {
	return r >= 0x0A80 && r <= 0x0AFF
}

// boundaryBefore requires a word boundary before the match.
func boundaryBefore(prev, _ rune) bool {
	return !isWordRune(prev)
}

// boundaryAround requires word boundaries on both sides of the match.
func boundaryAround(prev, next rune) bool {
	return !isWordRune(prev) && !isWordRune(next)
}

// standaloneOrdinal rejects numbers glued to other digits, Gujarati text or a
// thousands comma on the left, and to digits or Gujarati text on the right.
func standaloneOrdinal(prev, next rune) bool {
	if unicode.IsDigit(prev) || isGujaratiBlock(prev) || prev == ',' {
		return false
	}
	return !unicode.IsDigit(next) && !isGujaratiBlock(next)
}
