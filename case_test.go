package stringy

import "testing"

func TestCaseTransforms(t *testing.T) {
	tests := []struct {
		name  string
		op    func(*String) *String
		input string
		want  string
	}{
		{"lower", (*String).ToLower, "Hello WORLD", "hello world"},
		{"lower unicode", (*String).ToLower, "ÉTÉ", "été"},
		{"upper", (*String).ToUpper, "Hello world", "HELLO WORLD"},
		{"upper unicode", (*String).ToUpper, "été", "ÉTÉ"},
		{"lower first", (*String).ToLowerFirst, "HELLO", "hELLO"},
		{"lower first empty", (*String).ToLowerFirst, "", ""},
		{"upper first", (*String).ToUpperFirst, "hello World", "Hello World"},
		{"upper first unicode", (*String).ToUpperFirst, "été", "Été"},
		{"capitalize", (*String).Capitalize, "hello", "Hello"},
		{"capitalize forces remainder lower", (*String).Capitalize, "HELLO WORLD", "Hello world"},
		{"capitalize empty", (*String).Capitalize, "", ""},
		{"swapcase", (*String).SwapCase, "Hello, World!", "hELLO, wORLD!"},
		{"swapcase ascii only", (*String).SwapCase, "Été", "ÉTé"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op(New(tt.input)).Value(); got != tt.want {
				t.Errorf("got = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsLower(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"hello", true},
		{"hello world 123", true},
		{"Hello", false},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := New(tt.input).IsLower(); got != tt.want {
				t.Errorf("IsLower(%q) got = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsUpper(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"HELLO", true},
		{"HELLO WORLD 123", true},
		{"Hello", false},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := New(tt.input).IsUpper(); got != tt.want {
				t.Errorf("IsUpper(%q) got = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCaseRoundTrip(t *testing.T) {
	inputs := []string{"", "hello", "Hello, World!", "MiXeD 123"}
	for _, input := range inputs {
		got := New(input).ToUpper().ToLower().Value()
		want := New(input).ToLower().Value()
		if got != want {
			t.Errorf("upper-then-lower of %q got = %q, want %q", input, got, want)
		}
	}
}
