// Package translit implements positional character transliteration and run
// squeezing over character-range specifications such as "a-z".
//
// The specification syntax is parsed by an explicit parser; it is never
// evaluated. See Expand for the accepted syntax.
package translit

import (
	"fmt"
	"strings"
)

// Map is a positional rune-to-rune substitution table.
type Map map[rune]rune

// NewMap builds a Map from two aligned range specs. The n-th rune denoted by
// from is mapped to the n-th rune denoted by to, so both specs must expand
// to the same number of runes.
func NewMap(from, to string) (Map, error) {
	fromRunes, err := Expand(from)
	if err != nil {
		return nil, fmt.Errorf("expand from-set: %w", err)
	}
	toRunes, err := Expand(to)
	if err != nil {
		return nil, fmt.Errorf("expand to-set: %w", err)
	}
	if len(fromRunes) != len(toRunes) {
		return nil, fmt.Errorf("%w: from-set expands to %d runes, to-set to %d", ErrInvalidRangeSpec, len(fromRunes), len(toRunes))
	}

	m := make(Map, len(fromRunes))
	for i, r := range fromRunes {
		m[r] = toRunes[i]
	}
	return m, nil
}

// Apply substitutes every rune of s that has a mapping. Unmapped runes are
// copied through unchanged.
func (m Map) Apply(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if mapped, ok := m[r]; ok {
			b.WriteRune(mapped)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Squeeze collapses every run of consecutive identical runes in s to a
// single occurrence. Runes denoted by the keep spec are exempt and their
// runs are copied through as-is.
func Squeeze(s, keep string) (string, error) {
	keepRunes, err := Expand(keep)
	if err != nil {
		return "", fmt.Errorf("expand keep-set: %w", err)
	}
	kept := make(map[rune]bool, len(keepRunes))
	for _, r := range keepRunes {
		kept[r] = true
	}

	var b strings.Builder
	b.Grow(len(s))
	var prev rune
	first := true
	for _, r := range s {
		if first || r != prev || kept[r] {
			b.WriteRune(r)
		}
		prev = r
		first = false
	}
	return b.String(), nil
}
