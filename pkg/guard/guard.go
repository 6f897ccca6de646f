package guard

import (
	"reflect"

	"github.com/dmitrymomot/guardkit/pkg/guarantee"
)

// ErrorFactory builds the error raised on a failing check under a custom
// failure strategy. The composed message is its only input.
type ErrorFactory func(message string) error

// Chain is the continuation handle returned by every check so further
// checks can be appended. A failing check panics with the composed error,
// which unwinds the whole statement; checks written after it never run.
type Chain struct {
	factory ErrorFactory
}

// std is the shared handle for the standard failure strategy. It carries
// no state, so every standard chain can reuse it.
var std = &Chain{}

// IfNil fails with Missing when v is nil, including a typed nil pointer,
// map, slice, func, or channel.
func IfNil(v any, msg ...string) *Chain { return std.IfNil(v, msg...) }

// IfNotNil fails with Invalid when v is present.
func IfNotNil(v any, msg ...string) *Chain { return std.IfNotNil(v, msg...) }

// IfEmpty fails with Missing when s is nil and with Invalid when the
// pointed-to string has zero length.
func IfEmpty(s *string, msg ...string) *Chain { return std.IfEmpty(s, msg...) }

// IfNotEmpty fails with Invalid when s is present and non-empty.
func IfNotEmpty(s *string, msg ...string) *Chain { return std.IfNotEmpty(s, msg...) }

// IfBlank fails with Missing when s is nil and with Invalid when the
// pointed-to string is empty or whitespace-only.
func IfBlank(s *string, msg ...string) *Chain { return std.IfBlank(s, msg...) }

// IfNotBlank fails with Invalid when s is present and contains at least
// one non-whitespace character. An absent value counts as blank and
// passes.
func IfNotBlank(s *string, msg ...string) *Chain { return std.IfNotBlank(s, msg...) }

// WithMessage starts a chain whose checks share a message template. See
// Messenger.
func WithMessage(format string) *Messenger { return std.WithMessage(format) }

// WithError starts a chain with a custom failure strategy: on a failing
// check the factory builds the raised error from the composed message. A
// nil factory, a factory that returns nil, or a factory that panics falls
// back silently to the standard mapping for the check's category.
func WithError(factory ErrorFactory) *CustomChain {
	return &CustomChain{Chain{factory: factory}}
}

func (c *Chain) IfNil(v any, msg ...string) *Chain {
	if isNil(v) {
		c.missing(first(msg))
	}
	return c
}

func (c *Chain) IfNotNil(v any, msg ...string) *Chain {
	if !isNil(v) {
		c.invalid(first(msg))
	}
	return c
}

func (c *Chain) IfEmpty(s *string, msg ...string) *Chain {
	if s == nil {
		c.missing(first(msg))
	}
	if len(*s) == 0 {
		c.invalid(first(msg))
	}
	return c
}

func (c *Chain) IfNotEmpty(s *string, msg ...string) *Chain {
	if s != nil && len(*s) != 0 {
		c.invalid(first(msg))
	}
	return c
}

func (c *Chain) IfBlank(s *string, msg ...string) *Chain {
	if s == nil {
		c.missing(first(msg))
	}
	if guarantee.IsBlank(*s) {
		c.invalid(first(msg))
	}
	return c
}

func (c *Chain) IfNotBlank(s *string, msg ...string) *Chain {
	if s != nil && !guarantee.IsBlank(*s) {
		c.invalid(first(msg))
	}
	return c
}

// WithMessage installs a shared message template on the chain, keeping
// its failure strategy.
func (c *Chain) WithMessage(format string) *Messenger {
	return &Messenger{chain: c, format: format}
}

// CustomChain is a Chain with a custom failure strategy installed. It
// additionally exposes the boolean expectation checks.
type CustomChain struct {
	Chain
}

// IfTrue fails with Assertion when expr is true.
func (c *CustomChain) IfTrue(expr bool, msg ...string) *CustomChain {
	if expr {
		c.assertion(first(msg))
	}
	return c
}

// IfFalse fails with Assertion when expr is false.
func (c *CustomChain) IfFalse(expr bool, msg ...string) *CustomChain {
	if !expr {
		c.assertion(first(msg))
	}
	return c
}

func (c *Chain) missing(msg string)   { c.raise(Missing, msg) }
func (c *Chain) invalid(msg string)   { c.raise(Invalid, msg) }
func (c *Chain) assertion(msg string) { c.raise(Assertion, msg) }

// raise panics with the factory-built error when one is available,
// otherwise with the standard error for the category. It never returns.
func (c *Chain) raise(cat Category, msg string) {
	if c.factory != nil {
		if err := build(c.factory, msg); err != nil {
			panic(err)
		}
	}
	panic(&Error{Category: cat, Message: msg})
}

// build shields the chain from a misbehaving factory: a panic inside the
// factory yields nil, which triggers the standard fallback.
func build(factory ErrorFactory, msg string) (err error) {
	defer func() {
		if recover() != nil {
			err = nil
		}
	}()
	return factory(msg)
}

func first(msg []string) string {
	if len(msg) > 0 {
		return msg[0]
	}
	return ""
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
