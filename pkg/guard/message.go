package guard

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/guardkit/pkg/guarantee"
)

// Messenger carries a shared message template across a chain of checks.
// Check methods take positional arguments for the template instead of a
// literal message. The template is rendered only at the moment a check
// fails, with the arguments passed to that check.
type Messenger struct {
	chain  *Chain
	format string
}

func (m *Messenger) IfNil(v any, args ...any) *Messenger {
	if isNil(v) {
		m.chain.missing(m.render(args))
	}
	return m
}

func (m *Messenger) IfNotNil(v any, args ...any) *Messenger {
	if !isNil(v) {
		m.chain.invalid(m.render(args))
	}
	return m
}

func (m *Messenger) IfEmpty(s *string, args ...any) *Messenger {
	if s == nil {
		m.chain.missing(m.render(args))
	}
	if len(*s) == 0 {
		m.chain.invalid(m.render(args))
	}
	return m
}

func (m *Messenger) IfNotEmpty(s *string, args ...any) *Messenger {
	if s != nil && len(*s) != 0 {
		m.chain.invalid(m.render(args))
	}
	return m
}

func (m *Messenger) IfBlank(s *string, args ...any) *Messenger {
	if s == nil {
		m.chain.missing(m.render(args))
	}
	if guarantee.IsBlank(*s) {
		m.chain.invalid(m.render(args))
	}
	return m
}

func (m *Messenger) IfNotBlank(s *string, args ...any) *Messenger {
	if s != nil && !guarantee.IsBlank(*s) {
		m.chain.invalid(m.render(args))
	}
	return m
}

// render substitutes args into the template. fmt reports substitution
// problems inline with "%!" markers instead of failing; any such marker
// degrades the whole message to an empty string so a bad template never
// replaces the failure being reported with a garbled one.
func (m *Messenger) render(args []any) string {
	msg := fmt.Sprintf(m.format, args...)
	if strings.Contains(msg, "%!") {
		return ""
	}
	return msg
}
