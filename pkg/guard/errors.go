package guard

import "errors"

// Category classifies why a check failed.
type Category int

const (
	// Missing marks a value that was required but absent.
	Missing Category = iota
	// Invalid marks a present value that violates a shape constraint.
	Invalid
	// Assertion marks a violated boolean expectation.
	Assertion
)

func (c Category) String() string {
	switch c {
	case Missing:
		return "missing"
	case Invalid:
		return "invalid"
	case Assertion:
		return "assertion"
	default:
		return "unknown"
	}
}

// Error is raised by failing checks under the standard failure strategy.
// The message may be empty when the failing check was given none.
type Error struct {
	Category Category
	Message  string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	switch e.Category {
	case Missing:
		return "required value is missing"
	case Invalid:
		return "value violates a constraint"
	case Assertion:
		return "assertion failed"
	default:
		return "check failed"
	}
}

// IsMissing reports whether err is a guard failure for an absent value.
func IsMissing(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Category == Missing
}

// IsInvalid reports whether err is a guard failure for a present value
// that violates a shape constraint.
func IsInvalid(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Category == Invalid
}

// IsAssertion reports whether err is a guard failure for a violated
// boolean expectation.
func IsAssertion(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Category == Assertion
}
