package stringy

//go:generate stringer -type=Bool

// Bool is the tri-state result of ToBoolean. Payloads that spell neither a
// truthy nor a falsy word map to BoolUnknown.
type Bool uint8

const (
	BoolUnknown Bool = iota
	BoolFalse
	BoolTrue
)
