package stringy

import (
	"strings"
	"unicode"
)

// ToLower lowercases the whole payload using Unicode case mapping.
func (s *String) ToLower() *String {
	s.value = strings.ToLower(s.value)
	return s
}

// ToUpper uppercases the whole payload using Unicode case mapping.
func (s *String) ToUpper() *String {
	s.value = strings.ToUpper(s.value)
	return s
}

// ToLowerFirst lowercases only the first code point and leaves the rest of
// the payload untouched.
func (s *String) ToLowerFirst() *String {
	s.value = mapFirst(s.value, unicode.ToLower)
	return s
}

// ToUpperFirst uppercases only the first code point and leaves the rest of
// the payload untouched.
func (s *String) ToUpperFirst() *String {
	s.value = mapFirst(s.value, unicode.ToUpper)
	return s
}

// Capitalize lowercases the whole payload and then uppercases its first
// code point. Unlike ToUpperFirst, an already-uppercase remainder is forced
// to lowercase.
func (s *String) Capitalize() *String {
	return s.ToLower().ToUpperFirst()
}

// IsLower reports whether the payload equals its fully lowercased form.
func (s *String) IsLower() bool {
	return s.value == strings.ToLower(s.value)
}

// IsUpper reports whether the payload equals its fully uppercased form.
func (s *String) IsUpper() bool {
	return s.value == strings.ToUpper(s.value)
}

// SwapCase exchanges the case of ASCII letters only. Letters outside a-z
// and A-Z are left untouched.
func (s *String) SwapCase() *String {
	s.value = swapCaseMap.Apply(s.value)
	return s
}

func mapFirst(s string, mapping func(rune) rune) string {
	for i, r := range s {
		mapped := mapping(r)
		if mapped == r {
			return s
		}
		var b strings.Builder
		b.Grow(len(s))
		b.WriteRune(mapped)
		b.WriteString(s[i+len(string(r)):])
		return b.String()
	}
	return s
}
