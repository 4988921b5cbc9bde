package stringy

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	numericRE      = regexp.MustCompile(`^[0-9]+$`)
	alphaRE        = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphaNumericRE = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

	truthyRE = regexp.MustCompile(`(?i)^(?:on|yes|true)$`)
	falsyRE  = regexp.MustCompile(`(?i)^(?:off|no|false)$`)
)

// StartsWith reports whether the payload begins with a match of pattern,
// interpreted as a regular expression, not a literal substring. An invalid
// pattern reports false.
func (s *String) StartsWith(pattern string) bool {
	matched, err := regexp.MatchString(`^(?:`+pattern+`)`, s.value)
	return err == nil && matched
}

// EndsWith reports whether the payload ends with a match of pattern,
// interpreted as a regular expression. An invalid pattern reports false.
func (s *String) EndsWith(pattern string) bool {
	matched, err := regexp.MatchString(`(?:`+pattern+`)$`, s.value)
	return err == nil && matched
}

// NotFound is the index returned by Contains, IndexLeft and IndexRight when
// there is no match.
const NotFound = -1

// Contains returns the code-point index of the first match of pattern,
// interpreted as a regular expression, or NotFound. Index 0 is a valid
// match position; callers must compare against NotFound, never against
// zero.
func (s *String) Contains(pattern string) int {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return NotFound
	}
	loc := re.FindStringIndex(s.value)
	if loc == nil {
		return NotFound
	}
	return utf8.RuneCountInString(s.value[:loc[0]])
}

// Include is equivalent to Contains.
func (s *String) Include(pattern string) int {
	return s.Contains(pattern)
}

// IsNumeric reports whether the payload consists of one or more ASCII
// digits and nothing else.
func (s *String) IsNumeric() bool {
	return numericRE.MatchString(s.value)
}

// IsAlpha reports whether the payload consists of one or more ASCII
// letters and nothing else.
func (s *String) IsAlpha() bool {
	return alphaRE.MatchString(s.value)
}

// IsAlphaNumeric reports whether the payload consists of one or more ASCII
// letters and digits and nothing else.
func (s *String) IsAlphaNumeric() bool {
	return alphaNumericRE.MatchString(s.value)
}

// IsEmpty reports whether the payload is the empty string or contains a
// whitespace character anywhere.
//
// Note the second half: "a a" is considered empty because of the inner
// space, even though the payload is clearly not blank. This surprising rule
// is preserved deliberately.
func (s *String) IsEmpty() bool {
	return s.value == "" || strings.IndexFunc(s.value, unicode.IsSpace) >= 0
}

// ToBoolean matches the payload case-insensitively against on/yes/true and
// off/no/false. Anything else yields BoolUnknown.
func (s *String) ToBoolean() Bool {
	switch {
	case truthyRE.MatchString(s.value):
		return BoolTrue
	case falsyRE.MatchString(s.value):
		return BoolFalse
	default:
		return BoolUnknown
	}
}

// ToBool is equivalent to ToBoolean.
func (s *String) ToBool() Bool {
	return s.ToBoolean()
}
