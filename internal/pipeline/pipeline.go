// Package pipeline resolves CLI input and applies named chains of string
// operations to it.
package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"github.com/tsatke/stringy"
)

// ops maps CLI operation names to the zero-argument chainable operations.
var ops = map[string]func(*stringy.String) *stringy.String{
	"lower":             (*stringy.String).ToLower,
	"upper":             (*stringy.String).ToUpper,
	"lower-first":       (*stringy.String).ToLowerFirst,
	"upper-first":       (*stringy.String).ToUpperFirst,
	"capitalize":        (*stringy.String).Capitalize,
	"swapcase":          (*stringy.String).SwapCase,
	"trim":              (*stringy.String).Trim,
	"trim-left":         (*stringy.String).TrimLeft,
	"trim-right":        (*stringy.String).TrimRight,
	"clean":             (*stringy.String).Clean,
	"chomp-left":        (*stringy.String).ChompLeft,
	"chomp-right":       (*stringy.String).ChompRight,
	"chop-left":         (*stringy.String).ChopLeft,
	"chop-right":        (*stringy.String).ChopRight,
	"reverse":           (*stringy.String).Reverse,
	"quote-meta":        (*stringy.String).QuoteMeta,
	"rot13":             (*stringy.String).Rot13,
	"shuffle":           (*stringy.String).Shuffle,
	"underscore":        (*stringy.String).Underscore,
	"dasherize":         (*stringy.String).Dasherize,
	"camelize":          (*stringy.String).Camelize,
	"latinise":          (*stringy.String).Latinise,
	"escape-html":       (*stringy.String).EscapeHTML,
	"unescape-html":     (*stringy.String).UnescapeHTML,
	"strip-punctuation": (*stringy.String).StripPunctuation,
	"humanize":          (*stringy.String).Humanize,
	"slugify":           (*stringy.String).Slugify,
	"titleize":          (*stringy.String).Titleize,
	"next":              (*stringy.String).Next,
}

// Names returns the available operation names, sorted.
func Names() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Input resolves the text to operate on. A non-empty file wins and is read
// through fs, then the text flag (textSet reports whether it was supplied
// at all, so an explicit empty text is a valid payload), then the words
// remaining after a "--" separator, joined with single spaces.
func Input(fs afero.Fs, file, text string, textSet bool, words []string) (string, error) {
	if file != "" {
		content, err := afero.ReadFile(fs, file)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(content), nil
	}
	if textSet {
		return text, nil
	}
	if len(words) > 0 {
		return stringy.MakeString(words...).Value(), nil
	}
	return "", fmt.Errorf("no input: provide --file, --text or words after --")
}

// Run applies the named operations to input, in order, and returns the
// final payload.
func Run(input string, opNames []string) (string, error) {
	s := stringy.New(input)
	for _, name := range opNames {
		op, ok := ops[name]
		if !ok {
			return "", fmt.Errorf("unknown operation %q (available: %s)", name, strings.Join(Names(), ", "))
		}
		s = op(s)
	}
	return s.Value(), nil
}
