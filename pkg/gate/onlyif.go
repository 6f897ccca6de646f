package gate

import "github.com/dmitrymomot/guardkit/pkg/guarantee"

// One-shot variants for gating a callback on a single condition. Each
// invokes fn with the value only when the named condition holds. A nil
// fn is a no-op.

func Nil(v *string, fn Action) {
	if fn != nil && v == nil {
		fn(v)
	}
}

func NotNil(v *string, fn Action) {
	if fn != nil && v != nil {
		fn(v)
	}
}

func Empty(v *string, fn Action) {
	if fn != nil && guarantee.IsNilOrEmpty(v) {
		fn(v)
	}
}

func NotEmpty(v *string, fn Action) {
	if fn != nil && !guarantee.IsNilOrEmpty(v) {
		fn(v)
	}
}

func Blank(v *string, fn Action) {
	if fn != nil && guarantee.IsNilOrBlank(v) {
		fn(v)
	}
}

func NotBlank(v *string, fn Action) {
	if fn != nil && !guarantee.IsNilOrBlank(v) {
		fn(v)
	}
}
