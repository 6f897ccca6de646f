// Package guard provides a fluent, declarative style of argument checking
// for function preconditions. Each check tests one condition against one
// value and, on failure, immediately raises a typed error by panicking,
// so the rest of the statement never runs. Passing checks return the same
// chain handle, allowing several values to be verified in one statement:
//
//	guard.IfNil(conn).
//		IfEmpty(req.ID).
//		IfBlank(req.Name)
//
// # Failure taxonomy
//
// Every failure carries a Category: Missing for a value that was required
// but absent, Invalid for a present value that violates a shape
// constraint (empty, blank, unexpected presence), and Assertion for a
// violated boolean expectation. For the empty and blank checks, absence
// is tested first and raises Missing; the shape test applies only to
// present values and raises Invalid. Detect categories with the IsMissing,
// IsInvalid, and IsAssertion predicates, which see through wrapping.
//
// # Absence model
//
// IfNil and IfNotNil accept any value; a nil interface or a typed nil
// pointer, map, slice, func, or channel counts as absent. The string
// shape checks accept *string so that an optional string can be absent
// (nil) as well as empty or blank. A string is blank when it is absent or
// every rune is whitespace per unicode.IsSpace.
//
// # Message templates
//
// WithMessage installs a format string shared by all checks on the chain.
// Checks then take positional arguments instead of a literal message, and
// the template is rendered only when a check actually fails:
//
//	guard.WithMessage("%s is required").
//		IfNil(conn, "conn").
//		IfEmpty(req.ID, "request id")
//
// A template that cannot absorb its arguments degrades to an empty
// message rather than compounding the failure being reported.
//
// # Custom failure strategy
//
// WithError installs a factory that builds the raised error from the
// composed message, replacing the standard category errors:
//
//	guard.WithError(func(msg string) error { return &AuthError{msg} }).
//		IfEmpty(token, "token must be set").
//		IfFalse(authorized, "caller is not authorized")
//
// A nil factory, a factory returning nil, or a factory that panics falls
// back silently to the standard mapping for the failing check's category.
// The boolean checks IfTrue and IfFalse are available only on this chain
// form and raise the Assertion category under the fallback.
//
// # Error handling
//
// These checks are guards against programmer error, in the spirit of the
// Must* convention: a failure panics with an error value (never a bare
// string). Callers that need to observe failures recover the panic and
// inspect the error with the category predicates or errors.As. Nothing is
// retried or accumulated; the first failing check wins.
//
// The package is stateless and goroutine-safe; chains are meant to be
// built and consumed within a single expression.
package guard
