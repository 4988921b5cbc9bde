package stringy

import (
	"math/rand"
	"regexp"
	"strings"

	"github.com/tsatke/stringy/internal/translit"
)

var (
	swapCaseMap = mustMap("a-zA-Z", "A-Za-z")
	rot13Map    = mustMap("a-zA-Z", "n-za-mN-ZA-M")
)

func mustMap(from, to string) translit.Map {
	m, err := translit.NewMap(from, to)
	if err != nil {
		panic(err)
	}
	return m
}

// Repeat replaces the payload with itself concatenated n times. For n <= 0
// the payload becomes empty.
func (s *String) Repeat(n int) *String {
	if n < 0 {
		n = 0
	}
	s.value = strings.Repeat(s.value, n)
	return s
}

// Times is equivalent to Repeat.
func (s *String) Times(n int) *String {
	return s.Repeat(n)
}

// EnsureLeft prepends prefix unless the payload already starts with it.
// Like StartsWith, the check interprets prefix as a regular expression.
func (s *String) EnsureLeft(prefix string) *String {
	if !s.StartsWith(prefix) {
		s.value = prefix + s.value
	}
	return s
}

// EnsureRight appends suffix unless the payload already ends with it.
// Like EndsWith, the check interprets suffix as a regular expression.
func (s *String) EnsureRight(suffix string) *String {
	if !s.EndsWith(suffix) {
		s.value = s.value + suffix
	}
	return s
}

// Prefix prepends the concatenation of all given parts.
func (s *String) Prefix(parts ...string) *String {
	s.value = strings.Join(parts, "") + s.value
	return s
}

// Concat appends the concatenation of all given parts.
func (s *String) Concat(parts ...string) *String {
	s.value = s.value + strings.Join(parts, "")
	return s
}

// Suffix is equivalent to Concat.
func (s *String) Suffix(parts ...string) *String {
	return s.Concat(parts...)
}

// Reverse reverses the payload's code points.
func (s *String) Reverse() *String {
	runes := []rune(s.value)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	s.value = string(runes)
	return s
}

// ReplaceAll replaces every occurrence of find with replace. find is a
// literal substring, not a pattern.
func (s *String) ReplaceAll(find, replace string) *String {
	s.value = strings.ReplaceAll(s.value, find, replace)
	return s
}

// PadLeft pads the payload on the left with ch until it is n characters
// long. A payload that is already long enough is left untouched.
func (s *String) PadLeft(n int, ch rune) *String {
	if deficit := n - s.Length(); deficit > 0 {
		s.value = strings.Repeat(string(ch), deficit) + s.value
	}
	return s
}

// PadRight pads the payload on the right with ch until it is n characters
// long. A payload that is already long enough is left untouched.
func (s *String) PadRight(n int, ch rune) *String {
	if deficit := n - s.Length(); deficit > 0 {
		s.value = s.value + strings.Repeat(string(ch), deficit)
	}
	return s
}

// Pad center-pads the payload with ch to a total of n characters. The left
// side receives 1 + deficit/2 characters and the right side the remainder,
// so an odd deficit favors the left. A payload that is already long enough
// is left untouched.
func (s *String) Pad(n int, ch rune) *String {
	length := s.Length()
	if length >= n {
		return s
	}
	left := 1 + (n-length)/2
	right := n - length - left
	s.value = strings.Repeat(string(ch), left) + s.value + strings.Repeat(string(ch), right)
	return s
}

// QuoteMeta escapes all regular-expression metacharacters so the payload
// can be used as a literal pattern.
func (s *String) QuoteMeta() *String {
	s.value = regexp.QuoteMeta(s.value)
	return s
}

// Rot13 rotates ASCII letters by 13 positions, preserving case. Applying
// it twice restores the original payload.
func (s *String) Rot13() *String {
	s.value = rot13Map.Apply(s.value)
	return s
}

// Transliterate maps every character of the from set positionally onto the
// corresponding character of the to set. Both sets are character-range
// specs such as "a-z"; malformed or misaligned specs yield an error that
// wraps translit.ErrInvalidRangeSpec.
func (s *String) Transliterate(from, to string) (*String, error) {
	m, err := translit.NewMap(from, to)
	if err != nil {
		return nil, err
	}
	s.value = m.Apply(s.value)
	return s, nil
}

// Squeeze collapses every run of consecutive identical characters to a
// single occurrence. Characters in the keep set, a character-range spec,
// are exempt; pass "" to squeeze everything.
//
// Note that the exemption covers only the kept characters themselves, not
// the rest of the payload: squeezing "balls" with keep "a" still collapses
// "ll". This rule is preserved deliberately.
func (s *String) Squeeze(keep string) (*String, error) {
	squeezed, err := translit.Squeeze(s.value, keep)
	if err != nil {
		return nil, err
	}
	s.value = squeezed
	return s, nil
}

// Shuffle randomly permutes the payload's code points, drawing from the
// source injected with WithRand or the process-wide one.
func (s *String) Shuffle() *String {
	runes := []rune(s.value)
	swap := func(i, j int) {
		runes[i], runes[j] = runes[j], runes[i]
	}
	if s.rand != nil {
		s.rand.Shuffle(len(runes), swap)
	} else {
		rand.Shuffle(len(runes), swap)
	}
	s.value = string(runes)
	return s
}
