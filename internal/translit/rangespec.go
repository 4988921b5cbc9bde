package translit

import (
	"errors"
	"fmt"
)

// ErrInvalidRangeSpec is wrapped by every error that this package returns
// for a malformed character-range specification. Use errors.Is to detect it.
var ErrInvalidRangeSpec = errors.New("invalid range spec")

// Expand parses a character-range specification and returns the sequence of
// runes it denotes. A spec is a concatenation of literal characters and
// inclusive ranges of the form 'a-z'. A '-' at the very beginning or end of
// the spec is a literal hyphen.
//
//	Expand("a-e")   -> ['a' 'b' 'c' 'd' 'e']
//	Expand("a-cx")  -> ['a' 'b' 'c' 'x']
//	Expand("-a")    -> ['-' 'a']
//
// A reversed range such as "z-a" is rejected.
func Expand(spec string) ([]rune, error) {
	runes := []rune(spec)
	var expanded []rune

	for i := 0; i < len(runes); i++ {
		// a '-' forms a range only if it has a rune on both sides
		if runes[i] == '-' && len(expanded) > 0 && i+1 < len(runes) {
			lo := expanded[len(expanded)-1]
			hi := runes[i+1]
			if hi < lo {
				return nil, fmt.Errorf("%w: reversed range '%s-%s' in %q", ErrInvalidRangeSpec, string(lo), string(hi), spec)
			}
			// lo is already in the result, append its successors
			for r := lo + 1; r <= hi; r++ {
				expanded = append(expanded, r)
			}
			i++ // consume the range end
			continue
		}
		expanded = append(expanded, runes[i])
	}

	return expanded, nil
}
