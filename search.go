package stringy

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// IndexLeft returns the code-point index of the first occurrence of sub at
// or after pos, or NotFound. pos is clamped into the payload.
func (s *String) IndexLeft(sub string, pos int) int {
	runes := []rune(s.value)
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	idx := strings.Index(string(runes[pos:]), sub)
	if idx < 0 {
		return NotFound
	}
	return pos + utf8.RuneCountInString(string(runes[pos:])[:idx])
}

// IndexRight returns the code-point index of the last occurrence of sub
// that starts at or before pos, or NotFound. A negative pos means "search
// from the end of the payload".
func (s *String) IndexRight(sub string, pos int) int {
	runes := []rune(s.value)
	if pos < 0 || pos > len(runes) {
		pos = len(runes)
	}
	subLen := utf8.RuneCountInString(sub)
	limit := pos + subLen
	if limit > len(runes) {
		limit = len(runes)
	}
	prefix := string(runes[:limit])
	idx := strings.LastIndex(prefix, sub)
	if idx < 0 {
		return NotFound
	}
	return utf8.RuneCountInString(prefix[:idx])
}

// Count returns the number of non-overlapping matches of pattern,
// interpreted as a regular expression. An invalid pattern counts as zero
// matches.
func (s *String) Count(pattern string) int {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return 0
	}
	return len(re.FindAllStringIndex(s.value, -1))
}

// CountWords cleans a copy of the payload and returns the number of
// whitespace-separated tokens in it. The payload itself is not modified.
func (s *String) CountWords() int {
	return len(strings.Fields(s.transient(s.value).Clean().Value()))
}

// Left returns the first n characters. A negative n mirrors the direction
// and returns the last |n| characters. n is clamped to the payload length.
func (s *String) Left(n int) *String {
	if n < 0 {
		return s.Right(-n)
	}
	runes := []rune(s.value)
	if n > len(runes) {
		n = len(runes)
	}
	s.value = string(runes[:n])
	return s
}

// Right returns the last n characters. A negative n mirrors the direction
// and returns the first |n| characters. n is clamped to the payload length.
func (s *String) Right(n int) *String {
	if n < 0 {
		n = -n
		runes := []rune(s.value)
		if n > len(runes) {
			n = len(runes)
		}
		s.value = string(runes[:n])
		return s
	}
	runes := []rune(s.value)
	if n > len(runes) {
		n = len(runes)
	}
	s.value = string(runes[len(runes)-n:])
	return s
}
