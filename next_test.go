package stringy

import "testing"

func TestNext(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single letter", "a", "b"},
		{"single digit", "3", "4"},
		{"wrap lower", "z", "aa"},
		{"wrap upper", "Z", "AA"},
		{"wrap digit", "9", "10"},
		{"carry into letter", "Az", "Ba"},
		{"double wrap", "zz", "aaa"},
		{"mixed case wrap", "Zz", "AAa"},
		{"digit carry", "a9", "b0"},
		{"no carry", "ab", "ac"},
		{"carry stops", "ay", "az"},
		{"trailing punctuation skipped", "a9!", "b0!"},
		{"inner punctuation skipped", "a-9", "b-0"},
		{"no alnum is a no-op", "!!", "!!"},
		{"empty is a no-op", "", ""},
		{"number with carry", "199", "200"},
		{"all nines lengthen", "99", "100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.input).Next().Value(); got != tt.want {
				t.Errorf("Next(%q) got = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
