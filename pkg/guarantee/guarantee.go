// Package guarantee provides stateless string predicates and
// default-value substitution helpers for plain and optional strings.
//
// An optional string is modeled as *string, with nil meaning absent. The
// NotXxx helpers return the value when it passes the named condition and
// the fallback otherwise, which keeps call sites to a single expression:
//
//	name := guarantee.NotBlank(req.DisplayName, "anonymous")
package guarantee

import (
	"unicode"

	"github.com/samber/lo"
)

// IsEmpty reports whether s has zero length.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank reports whether s is empty or contains only whitespace, per
// unicode.IsSpace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNilOrEmpty reports whether s is absent or has zero length.
func IsNilOrEmpty(s *string) bool {
	return s == nil || len(*s) == 0
}

// IsNilOrBlank reports whether s is absent, empty, or whitespace-only.
func IsNilOrBlank(s *string) bool {
	return s == nil || IsBlank(*s)
}

// NotNil returns the pointed-to value, or fallback when v is absent.
func NotNil(v *string, fallback string) string {
	return lo.FromPtrOr(v, fallback)
}

// NotEmpty returns v, or fallback when v is empty.
func NotEmpty(v, fallback string) string {
	if IsEmpty(v) {
		return fallback
	}
	return v
}

// NotBlank returns v, or fallback when v is blank.
func NotBlank(v, fallback string) string {
	if IsBlank(v) {
		return fallback
	}
	return v
}

// NotNilOrEmpty returns the pointed-to value, or fallback when v is
// absent or empty.
func NotNilOrEmpty(v *string, fallback string) string {
	return NotEmpty(lo.FromPtr(v), fallback)
}

// NotNilOrBlank returns the pointed-to value, or fallback when v is
// absent or blank.
func NotNilOrBlank(v *string, fallback string) string {
	return NotBlank(lo.FromPtr(v), fallback)
}

// Ptr returns a pointer to s, for building optional values inline.
func Ptr(s string) *string {
	return &s
}
