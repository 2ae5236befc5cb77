// Package formdown is the module's one deliberate extension point: a
// registrable strategy slot for parsing form markup into field and action
// definitions. An external parser can be swapped in at runtime; without a
// registration a minimal built-in parser handles the common cases.
package formdown

import (
	"sync"

	"github.com/iyulab/u-widgets-sub002/pkg/model"
)

// Result is what parsing a formdown document produces.
type Result struct {
	Fields  []model.FieldDefinition `json:"fields,omitempty"`
	Actions []model.Action          `json:"actions,omitempty"`
}

// Parser is the capability interface an external formdown implementation
// satisfies. Swap-in composition, not inheritance: implementations are
// complete parsers, and the last registration wins.
type Parser interface {
	// Parse turns formdown text into fields and actions.
	Parse(text string) (Result, error)
	// SetDefaults supplies parser-wide defaults (e.g. the fallback field type).
	SetDefaults(defaults map[string]any)
	// InputFields returns only the field definitions of text.
	InputFields(text string) []model.FieldDefinition
	// Actions returns only the action definitions of text.
	Actions(text string) []model.Action
}

var (
	mu     sync.RWMutex
	active Parser
)

// RegisterParser installs p as the process-wide formdown parser. Registering
// nil removes the override, restoring the built-in parser.
func RegisterParser(p Parser) {
	mu.Lock()
	defer mu.Unlock()
	active = p
}

// ActiveParser returns the currently registered parser, falling back to the
// built-in minimal parser when none is registered.
func ActiveParser() Parser {
	mu.RLock()
	defer mu.RUnlock()
	if active != nil {
		return active
	}
	return builtin
}

// Parse runs text through the active parser.
func Parse(text string) (Result, error) {
	return ActiveParser().Parse(text)
}

// Reset clears any registered parser and restores the built-in parser's
// defaults. Tests call this to stay isolated.
func Reset() {
	mu.Lock()
	active = nil
	mu.Unlock()
	builtin.SetDefaults(nil)
}
