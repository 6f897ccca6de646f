// Package gate conditionally executes a callback after a chain of
// predicate checks against a single optional string value.
//
// A gate starts active, holding the value. Each predicate either keeps
// the chain active or, on the first failure, swaps it for a shared inert
// handle: a terminal sink on which every further predicate is a no-op and
// the callback never runs. The swap is one-way and happens at most once
// per chain.
//
//	gate.WhenValue("123").
//		IsNotBlank().
//		IsEqualTo(expected).
//		IsTrue(func(s *string) bool { return len(*s) == 3 }).
//		Then(func(s *string) { process(*s) })
//
// Invoking the Then callback is the gate's only side effect; a gate never
// returns an error and never panics on a failed predicate.
//
// Values are modeled as *string so a gate can hold an absent value: IsNil
// and friends distinguish nil from empty. The package-level one-shot
// helpers (Nil, NotNil, Empty, NotEmpty, Blank, NotBlank) cover the
// common single-condition case without building a chain.
package gate
