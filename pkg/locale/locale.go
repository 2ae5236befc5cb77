// Package locale holds the process-wide table of localized UI strings and
// number formatting conventions. The registry is explicit, last-write-wins
// state with a Reset hook for test isolation; nothing is registered as a
// module-load side effect beyond the built-in "en" table.
package locale

import (
	"fmt"
	"strings"
	"sync"
)

// NumberConventions carries the separators the value formatter consults.
type NumberConventions struct {
	Grouping string
	Decimal  string
}

// Table is one locale's strings plus its formatting conventions.
type Table struct {
	Strings        map[string]string
	Number         NumberConventions
	CurrencySymbol string
}

// BuiltinTag names the locale that is always registered and used as the
// final fallback.
const BuiltinTag = "en"

func builtinTable() Table {
	return Table{
		Strings: map[string]string{
			"form.submit":    "Submit",
			"form.reset":     "Reset",
			"confirm.ok":     "OK",
			"confirm.cancel": "Cancel",
			"table.empty":    "No data",
			"table.rows":     "{0} of {1} rows",
		},
		Number:         NumberConventions{Grouping: ",", Decimal: "."},
		CurrencySymbol: "$",
	}
}

var (
	mu         sync.RWMutex
	tables     map[string]Table
	defaultTag string
)

func init() {
	Reset()
}

// Reset restores the registry to its initial state: only the built-in "en"
// table, which is also the default. Tests call this to stay isolated.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	tables = map[string]Table{BuiltinTag: builtinTable()}
	defaultTag = BuiltinTag
}

// Register adds or replaces the table for tag. Last registration wins.
// Missing conventions fall back to the built-in ones so a strings-only
// registration stays usable by the formatter.
func Register(tag string, table Table) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return
	}
	builtin := builtinTable()
	if table.Number.Grouping == "" {
		table.Number.Grouping = builtin.Number.Grouping
	}
	if table.Number.Decimal == "" {
		table.Number.Decimal = builtin.Number.Decimal
	}
	if table.CurrencySymbol == "" {
		table.CurrencySymbol = builtin.CurrencySymbol
	}

	mu.Lock()
	defer mu.Unlock()
	tables[tag] = table
}

// DefaultLocale returns the tag used when a call passes no locale.
func DefaultLocale() string {
	mu.RLock()
	defer mu.RUnlock()
	return defaultTag
}

// SetDefaultLocale changes the process-wide default. Unregistered tags are
// ignored so the default always resolves.
func SetDefaultLocale(tag string) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := tables[tag]; ok {
		defaultTag = tag
	}
}

// EffectiveLocale returns the tag that ResolveLocale would use for the given
// request tag: the tag itself when registered, its language prefix when that
// is, otherwise the default.
func EffectiveLocale(tag string) string {
	mu.RLock()
	defer mu.RUnlock()
	return effectiveLocked(tag)
}

func effectiveLocked(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag != "" {
		if _, ok := tables[tag]; ok {
			return tag
		}
		// "en-US" falls back to "en".
		if idx := strings.IndexAny(tag, "-_"); idx > 0 {
			prefix := tag[:idx]
			if _, ok := tables[prefix]; ok {
				return prefix
			}
		}
	}
	if _, ok := tables[defaultTag]; ok {
		return defaultTag
	}
	return BuiltinTag
}

// ResolveLocale returns the table for tag, following the fallback chain
// exact tag -> language prefix -> default -> built-in.
func ResolveLocale(tag string) Table {
	mu.RLock()
	defer mu.RUnlock()
	if table, ok := tables[effectiveLocked(tag)]; ok {
		return table
	}
	return builtinTable()
}

// Strings returns the resolved string table for tag.
func Strings(tag string) map[string]string {
	return ResolveLocale(tag).Strings
}

// FormatTemplate looks up key in the resolved table and substitutes
// positional {0}, {1}, ... placeholders with the supplied arguments. A
// missing key degrades to the key itself so callers always get something
// renderable.
func FormatTemplate(tag, key string, args ...any) string {
	template, ok := ResolveLocale(tag).Strings[key]
	if !ok {
		template = key
	}
	for i, arg := range args {
		placeholder := fmt.Sprintf("{%d}", i)
		template = strings.ReplaceAll(template, placeholder, fmt.Sprint(arg))
	}
	return template
}
