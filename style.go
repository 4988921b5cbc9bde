package stringy

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	wordSeparatorMap = mustMap(" -", "__")
	dashMap          = mustMap("_", "-")

	leadingUpperRE    = regexp.MustCompile(`^[A-Z]`)
	acronymBoundaryRE = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	camelBoundaryRE   = regexp.MustCompile(`([a-z\d])([A-Z])`)
	punctuationRE     = regexp.MustCompile(`[[:punct:]]`)
)

// escapePairs holds the HTML replacements in application order. '&' must
// come first so the entities introduced by the later replacements are not
// escaped again; unescaping applies the inverse pairs in the same order.
var escapePairs = [...][2]string{
	{"&", "&amp;"},
	{`"`, "&quot;"},
	{"'", "&#39;"},
	{"<", "&lt;"},
	{">", "&gt;"},
}

// latiniseTransform performs a compatibility decomposition and strips all
// non-spacing marks, removing diacritics while keeping the base letters.
var latiniseTransform = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Underscore converts the payload to snake_case. Spaces and hyphens become
// underscores, '::' namespace separators become '/', a leading uppercase
// letter gains a leading underscore, and underscores are inserted at
// acronym and camel boundaries before the result is lowercased. The passes
// run in exactly this order; each operates on the output of the previous
// one.
func (s *String) Underscore() *String {
	v := wordSeparatorMap.Apply(s.value)
	v = strings.ReplaceAll(v, "::", "/")
	if leadingUpperRE.MatchString(v) {
		v = "_" + v
	}
	v = acronymBoundaryRE.ReplaceAllString(v, "${1}_${2}")
	v = camelBoundaryRE.ReplaceAllString(v, "${1}_${2}")
	s.value = strings.ToLower(v)
	return s
}

// Underscored is equivalent to Underscore.
func (s *String) Underscored() *String {
	return s.Underscore()
}

// Dasherize converts the payload to dash-case: Underscore, then every
// underscore becomes a hyphen.
func (s *String) Dasherize() *String {
	s.Underscore()
	s.value = dashMap.Apply(s.value)
	return s
}

// Camelize converts the payload to camelCase. It works on the underscored
// form: '/' separates namespace segments (joined back with '::'), '_'
// separates words within a segment, and every word is capitalized before
// joining. If the underscored form does not start with an underscore, the
// very first character of the result is lowercased; a leading underscore
// keeps it capitalized.
func (s *String) Camelize() *String {
	underscored := s.transient(s.value).Underscore().Value()
	capitalized := strings.HasPrefix(underscored, "_")

	segments := strings.Split(strings.TrimPrefix(underscored, "_"), "/")
	for i, segment := range segments {
		words := strings.Split(segment, "_")
		for j, word := range words {
			words[j] = mapFirst(word, unicode.ToUpper)
		}
		segments[i] = strings.Join(words, "")
	}

	result := strings.Join(segments, "::")
	if !capitalized {
		result = mapFirst(result, unicode.ToLower)
	}
	s.value = result
	return s
}

// Latinise removes diacritics: the payload is decomposed (NFKD) and all
// non-spacing marks are stripped, keeping the base letters.
func (s *String) Latinise() *String {
	latinised, _, err := transform.String(latiniseTransform, s.value)
	if err == nil {
		s.value = latinised
	}
	return s
}

// EscapeHTML escapes &, ", ', < and > as HTML entities, ampersand first.
func (s *String) EscapeHTML() *String {
	for _, pair := range escapePairs {
		s.value = strings.ReplaceAll(s.value, pair[0], pair[1])
	}
	return s
}

// UnescapeHTML reverses EscapeHTML, replacing the entities in the same
// order the escape introduced them.
func (s *String) UnescapeHTML() *String {
	for _, pair := range escapePairs {
		s.value = strings.ReplaceAll(s.value, pair[1], pair[0])
	}
	return s
}

// StripPunctuation removes all punctuation characters.
func (s *String) StripPunctuation() *String {
	s.value = punctuationRE.ReplaceAllString(s.value, "")
	return s
}

// Humanize turns the payload into a human-readable sentence: Underscore,
// underscores become spaces, then trim and capitalize.
func (s *String) Humanize() *String {
	return s.Underscore().ReplaceAll("_", " ").Trim().Capitalize()
}

// Slugify produces a URL-safe slug: trim, humanize, strip diacritics and
// punctuation, lowercase, dasherize.
func (s *String) Slugify() *String {
	return s.Trim().Humanize().Latinise().StripPunctuation().ToLower().Dasherize()
}

// Titleize capitalizes every word: the payload is cleaned and stripped of
// punctuation, each space-separated token is capitalized independently,
// and the tokens are rejoined with single spaces.
func (s *String) Titleize() *String {
	cleaned := s.transient(s.value).Clean().StripPunctuation().Value()
	words := strings.Split(cleaned, " ")
	for i, word := range words {
		words[i] = s.transient(word).Capitalize().Value()
	}
	s.value = strings.Join(words, " ")
	return s
}

// Titlecase is equivalent to Titleize.
func (s *String) Titlecase() *String {
	return s.Titleize()
}
