package gate

import "github.com/dmitrymomot/guardkit/pkg/guarantee"

// Predicate tests the gated value. The value pointer is passed through
// as-is, so a predicate can distinguish an absent value from an empty
// one.
type Predicate func(*string) bool

// Action consumes the gated value once every predicate has held.
type Action func(*string)

// Gate evaluates a chain of predicates against a single value and runs a
// callback only when every predicate held. The first failing predicate
// permanently short-circuits the chain: every later call becomes a no-op
// and Then never fires. Running the callback is the only side effect a
// gate produces.
type Gate interface {
	IsNil() Gate
	IsNotNil() Gate
	IsEmpty() Gate
	IsNotEmpty() Gate
	IsBlank() Gate
	IsNotBlank() Gate

	// IsEqualTo holds when both values are absent, or both are present
	// with equal contents.
	IsEqualTo(other *string) Gate

	// IsNotEqualTo holds when the pointers differ or the contents differ.
	// Note that two distinct pointers to equal contents therefore still
	// hold; only the same pointer, or an explicit content match against a
	// present other, defeats this check.
	IsNotEqualTo(other *string) Gate

	IsTrue(p Predicate) Gate
	IsFalse(p Predicate) Gate

	// Then invokes fn with the original value if the chain is still
	// active. On a short-circuited chain it does nothing.
	Then(fn Action)
}

// When starts a gate around target, which may be nil.
func When(target *string) Gate {
	return active{target: target}
}

// WhenValue starts a gate around a value known to be present.
func WhenValue(s string) Gate {
	return When(&s)
}

// active does the actual predicate work while the chain is still viable.
type active struct {
	target *string
}

func (g active) IsNil() Gate {
	return g.holds(g.target == nil)
}

func (g active) IsNotNil() Gate {
	return g.holds(g.target != nil)
}

func (g active) IsEmpty() Gate {
	return g.holds(guarantee.IsNilOrEmpty(g.target))
}

func (g active) IsNotEmpty() Gate {
	return g.holds(!guarantee.IsNilOrEmpty(g.target))
}

func (g active) IsBlank() Gate {
	return g.holds(guarantee.IsNilOrBlank(g.target))
}

func (g active) IsNotBlank() Gate {
	return g.holds(!guarantee.IsNilOrBlank(g.target))
}

func (g active) IsEqualTo(other *string) Gate {
	return g.holds(g.target == other || (g.target != nil && other != nil && *g.target == *other))
}

func (g active) IsNotEqualTo(other *string) Gate {
	return g.holds(g.target != other || (other != nil && !(g.target != nil && *g.target == *other)))
}

func (g active) IsTrue(p Predicate) Gate {
	return g.holds(p(g.target))
}

func (g active) IsFalse(p Predicate) Gate {
	return g.holds(!p(g.target))
}

func (g active) Then(fn Action) {
	fn(g.target)
}

func (g active) holds(ok bool) Gate {
	if ok {
		return g
	}
	return inert{}
}

// inert is the terminal sink state reached on the first failed
// predicate. It holds nothing and there is no way back to active.
type inert struct{}

func (g inert) IsNil() Gate               { return g }
func (g inert) IsNotNil() Gate            { return g }
func (g inert) IsEmpty() Gate             { return g }
func (g inert) IsNotEmpty() Gate          { return g }
func (g inert) IsBlank() Gate             { return g }
func (g inert) IsNotBlank() Gate          { return g }
func (g inert) IsEqualTo(*string) Gate    { return g }
func (g inert) IsNotEqualTo(*string) Gate { return g }
func (g inert) IsTrue(Predicate) Gate     { return g }
func (g inert) IsFalse(Predicate) Gate    { return g }
func (inert) Then(Action)                 {}
