// Package stringy provides a fluent, chainable string-manipulation type.
//
// A String wraps one mutable text payload. Every transforming method
// changes the payload in place and returns the same *String, so calls can
// be chained:
//
//	s := stringy.New("  En été, il fera chaud  ").Slugify().Value()
//	// "en-ete-il-fera-chaud"
//
// Observer methods (Value, Length, the predicates, the index and count
// operations) return plain results instead of the receiver and terminate a
// chain.
package stringy

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"unicode/utf8"
)

// String holds one textual payload. The zero value is not usable; create
// instances with New or MakeString.
type String struct {
	value string

	// rand is the source used by Shuffle. If nil, the process-wide
	// math/rand source is used.
	rand *rand.Rand
	// out is the writer that Say writes to.
	out io.Writer
}

// New creates a String holding value verbatim, already applying all given
// options. By default, Say writes to os.Stdout and Shuffle draws from the
// process-wide math/rand source.
func New(value string, opts ...Option) *String {
	s := &String{
		value: value,
		out:   os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MakeString joins the given parts with a single space and wraps the
// result. Zero parts yield the empty string.
func MakeString(parts ...string) *String {
	return New(strings.Join(parts, " "))
}

// Value returns the current payload.
func (s *String) Value() string {
	return s.value
}

// String returns the current payload. It is equivalent to Value and makes
// *String satisfy fmt.Stringer.
func (s *String) String() string {
	return s.Value()
}

// Length returns the number of code points in the payload, not the number
// of bytes.
func (s *String) Length() int {
	return utf8.RuneCountInString(s.value)
}

// Say writes the payload followed by a newline to the configured output
// writer.
func (s *String) Say() {
	_, _ = fmt.Fprintln(s.out, s.value)
}

// transient creates a String that shares the receiver's configuration but
// holds a different payload. Used by operations that transform parts of the
// payload through other operations.
func (s *String) transient(value string) *String {
	return &String{value: value, rand: s.rand, out: s.out}
}
