package gate_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/guardkit/pkg/gate"
)

func TestWhen(t *testing.T) {
	t.Run("callback runs when every predicate holds", func(t *testing.T) {
		var got []string
		gate.WhenValue("123").
			IsNotNil().
			IsNotEmpty().
			IsNotBlank().
			IsEqualTo(lo.ToPtr("123")).
			IsNotEqualTo(lo.ToPtr("456")).
			IsTrue(func(s *string) bool { return *s == "123" }).
			IsTrue(func(s *string) bool { return len(*s) == 3 }).
			IsFalse(func(s *string) bool { return *s == "456" }).
			IsFalse(func(s *string) bool { return len(*s) == 4 }).
			Then(func(s *string) { got = append(got, *s) })

		assert.Equal(t, []string{"123"}, got, "callback must run exactly once with the original value")
	})

	t.Run("callback never runs after a failed predicate", func(t *testing.T) {
		called := false
		gate.When(nil).
			IsNotNil().
			Then(func(*string) { called = true })
		assert.False(t, called)
	})

	t.Run("first failure short-circuits the rest of the chain", func(t *testing.T) {
		evaluated := false
		called := false
		gate.WhenValue("x").
			IsEmpty(). // fails: "x" is not empty
			IsTrue(func(*string) bool { evaluated = true; return true }).
			IsNotNil().
			Then(func(*string) { called = true })

		assert.False(t, evaluated, "predicates after the failure must not run")
		assert.False(t, called)
	})

	t.Run("callback receives an absent value as nil", func(t *testing.T) {
		var seen *string = lo.ToPtr("sentinel")
		gate.When(nil).
			IsNil().
			Then(func(s *string) { seen = s })
		assert.Nil(t, seen)
	})

	t.Run("passing predicates keep the same active handle", func(t *testing.T) {
		start := gate.WhenValue("x")
		end := start.IsNotNil().IsNotEmpty().IsNotBlank()
		assert.Equal(t, start, end)
	})
}

func TestNilAndEmptyPredicates(t *testing.T) {
	t.Run("IsNil holds only for absent values", func(t *testing.T) {
		assert.True(t, fires(gate.When(nil).IsNil()))
		assert.False(t, fires(gate.WhenValue("").IsNil()))
	})

	t.Run("IsNotNil holds for present values including empty", func(t *testing.T) {
		assert.True(t, fires(gate.WhenValue("").IsNotNil()))
		assert.False(t, fires(gate.When(nil).IsNotNil()))
	})

	t.Run("IsEmpty treats absent as empty", func(t *testing.T) {
		assert.True(t, fires(gate.When(nil).IsEmpty()))
		assert.True(t, fires(gate.WhenValue("").IsEmpty()))
		assert.False(t, fires(gate.WhenValue(" ").IsEmpty()))
	})

	t.Run("IsNotEmpty fails for absent and zero-length values", func(t *testing.T) {
		assert.False(t, fires(gate.When(nil).IsNotEmpty()))
		assert.False(t, fires(gate.WhenValue("").IsNotEmpty()))
		assert.True(t, fires(gate.WhenValue(" ").IsNotEmpty()))
	})

	t.Run("IsBlank treats absent, empty, and whitespace as blank", func(t *testing.T) {
		assert.True(t, fires(gate.When(nil).IsBlank()))
		assert.True(t, fires(gate.WhenValue("").IsBlank()))
		assert.True(t, fires(gate.WhenValue(" \t").IsBlank()))
		assert.False(t, fires(gate.WhenValue("123").IsBlank()))
	})

	t.Run("IsNotBlank fails for whitespace-only content", func(t *testing.T) {
		assert.False(t, fires(gate.WhenValue(" ").IsNotBlank()))
		assert.False(t, fires(gate.WhenValue("").IsNotBlank()))
		assert.True(t, fires(gate.WhenValue("123").IsNotBlank()))
	})
}

func TestEquality(t *testing.T) {
	t.Run("IsEqualTo holds for two absent values", func(t *testing.T) {
		assert.True(t, fires(gate.When(nil).IsEqualTo(nil)))
	})

	t.Run("IsEqualTo holds for equal contents", func(t *testing.T) {
		assert.True(t, fires(gate.WhenValue("").IsEqualTo(lo.ToPtr(""))))
		assert.True(t, fires(gate.WhenValue("123").IsEqualTo(lo.ToPtr("123"))))
	})

	t.Run("IsEqualTo fails across absence and differing contents", func(t *testing.T) {
		assert.False(t, fires(gate.When(nil).IsEqualTo(lo.ToPtr("123"))))
		assert.False(t, fires(gate.WhenValue("123").IsEqualTo(nil)))
		assert.False(t, fires(gate.WhenValue("456").IsEqualTo(lo.ToPtr("123"))))
	})

	t.Run("IsNotEqualTo holds for differing contents and absence mismatches", func(t *testing.T) {
		assert.True(t, fires(gate.When(nil).IsNotEqualTo(lo.ToPtr("456"))))
		assert.True(t, fires(gate.WhenValue("").IsNotEqualTo(lo.ToPtr("456"))))
		assert.True(t, fires(gate.WhenValue("123").IsNotEqualTo(lo.ToPtr("456"))))
	})

	t.Run("IsNotEqualTo fails for the same pointer", func(t *testing.T) {
		p := lo.ToPtr("456")
		assert.False(t, fires(gate.When(p).IsNotEqualTo(p)))
	})

	t.Run("IsNotEqualTo holds for distinct pointers to equal contents", func(t *testing.T) {
		// Documented quirk: pointer identity governs first, so two
		// separate pointers to "456" still count as not-equal.
		assert.True(t, fires(gate.WhenValue("456").IsNotEqualTo(lo.ToPtr("456"))))
	})
}

func TestCustomPredicates(t *testing.T) {
	t.Run("predicates see the absent value", func(t *testing.T) {
		assert.True(t, fires(gate.When(nil).IsTrue(func(s *string) bool { return s == nil })))
		assert.False(t, fires(gate.When(nil).IsTrue(func(s *string) bool { return s != nil })))
		assert.True(t, fires(gate.When(nil).IsFalse(func(s *string) bool { return s != nil })))
		assert.False(t, fires(gate.When(nil).IsFalse(func(s *string) bool { return s == nil })))
	})
}

// fires reports whether the gate still invokes its callback.
func fires(g gate.Gate) bool {
	called := false
	g.Then(func(*string) { called = true })
	return called
}
