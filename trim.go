package stringy

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// trimCutset covers literal space and tab only, not the full Unicode
// whitespace class.
const trimCutset = " \t"

var spaceRunRE = regexp.MustCompile(`[ \t]+`)

// TrimLeft removes the leading run of space and tab characters.
func (s *String) TrimLeft() *String {
	s.value = strings.TrimLeft(s.value, trimCutset)
	return s
}

// TrimRight removes the trailing run of space and tab characters.
func (s *String) TrimRight() *String {
	s.value = strings.TrimRight(s.value, trimCutset)
	return s
}

// Trim removes both the leading and the trailing run of space and tab
// characters.
func (s *String) Trim() *String {
	s.value = strings.Trim(s.value, trimCutset)
	return s
}

// Clean collapses every run of space and tab characters into a single
// space, then trims.
func (s *String) Clean() *String {
	s.value = spaceRunRE.ReplaceAllString(s.value, " ")
	return s.Trim()
}

// CollapseWhitespace is equivalent to Clean.
func (s *String) CollapseWhitespace() *String {
	return s.Clean()
}

// ChompLeft removes exactly one leading space or tab character, if present.
func (s *String) ChompLeft() *String {
	if strings.HasPrefix(s.value, " ") || strings.HasPrefix(s.value, "\t") {
		s.value = s.value[1:]
	}
	return s
}

// ChompRight removes exactly one trailing space or tab character, if
// present.
func (s *String) ChompRight() *String {
	if strings.HasSuffix(s.value, " ") || strings.HasSuffix(s.value, "\t") {
		s.value = s.value[:len(s.value)-1]
	}
	return s
}

// ChopLeft unconditionally removes the first character. On an empty
// payload it is a no-op.
func (s *String) ChopLeft() *String {
	if s.value == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s.value)
	s.value = s.value[size:]
	return s
}

// ChopRight unconditionally removes the last character. On an empty
// payload it is a no-op.
func (s *String) ChopRight() *String {
	if s.value == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s.value)
	s.value = s.value[:len(s.value)-size]
	return s
}
