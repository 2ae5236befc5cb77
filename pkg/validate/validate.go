// Package validate checks arbitrary input against the widget spec structural
// contract. Validation is collect-all: every violation is reported with a
// path locating it, and nothing ever panics or returns an error value. The
// caller asked for a verdict; the Result is the verdict.
package validate

import (
	"fmt"
	"sort"

	"github.com/iyulab/u-widgets-sub002/pkg/model"
	"github.com/iyulab/u-widgets-sub002/pkg/suggest"
)

// Issue is a single validation finding with an optional path locating it
// inside the spec (e.g. "fields[2].type").
type Issue struct {
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

// Result captures the outcome of validating one spec. Warnings never affect
// Valid; they flag constructs that are tolerated but probably unintended.
type Result struct {
	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty"`
}

// Spec validates loosely-typed input (as produced by JSON or YAML decoding)
// against the WidgetSpec contract. Unknown keys are tolerated for forward
// compatibility; reserved keys with the wrong shape are errors.
func Spec(input any) Result {
	v := &visitor{}
	v.spec(input, "")
	return Result{
		Valid:    len(v.errors) == 0,
		Errors:   v.errors,
		Warnings: v.warnings,
	}
}

// IsWidgetSpec reports whether input passes validation. Narrowing predicate
// for callers that do not care about diagnostics.
func IsWidgetSpec(input any) bool {
	return Spec(input).Valid
}

type visitor struct {
	errors   []Issue
	warnings []Issue
}

func (v *visitor) errorf(path, format string, args ...any) {
	v.errors = append(v.errors, Issue{Path: path, Message: fmt.Sprintf(format, args...)})
}

func (v *visitor) warnf(path, format string, args ...any) {
	v.warnings = append(v.warnings, Issue{Path: path, Message: fmt.Sprintf(format, args...)})
}

func (v *visitor) spec(input any, prefix string) {
	raw, ok := asMap(input)
	if !ok {
		v.errorf(prefix, "widget spec must be an object")
		return
	}

	v.widget(raw, prefix)
	if value, present := raw["mapping"]; present {
		v.mapping(value, join(prefix, "mapping"))
	}
	if value, present := raw["fields"]; present {
		v.fields(value, join(prefix, "fields"))
	}
	if value, present := raw["columns"]; present {
		v.columns(value, join(prefix, "columns"))
	}
	if value, present := raw["actions"]; present {
		v.actions(value, join(prefix, "actions"))
	}
	v.children(raw, prefix)
	if value, present := raw["layout"]; present {
		v.layout(value, join(prefix, "layout"))
	}
	if value, present := raw["options"]; present {
		if _, ok := asMap(value); !ok {
			v.errorf(join(prefix, "options"), "options must be an object")
		}
	}
	if value, present := raw["events"]; present {
		v.events(value, join(prefix, "events"))
	}
}

func (v *visitor) widget(raw map[string]any, prefix string) {
	path := join(prefix, "widget")
	value, present := raw["widget"]
	if !present {
		v.errorf(path, "widget is required")
		return
	}
	name, ok := value.(string)
	if !ok {
		v.errorf(path, "widget must be a string")
		return
	}
	if model.IsWidgetType(name) {
		return
	}
	if hint, ok := suggest.Widget(name); ok {
		v.errorf(path, "unknown widget type %q (did you mean %q?)", name, hint)
		return
	}
	v.errorf(path, "unknown widget type %q (no suggestion available)", name)
}

func (v *visitor) mapping(value any, path string) {
	// A bare string is shorthand for {value: <key>}; the normalizer expands it.
	if _, ok := value.(string); ok {
		return
	}
	raw, ok := asMap(value)
	if !ok {
		v.errorf(path, "mapping must be an object or a string")
		return
	}
	roles := make([]string, 0, len(raw))
	for role := range raw {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	for _, role := range roles {
		if _, ok := raw[role].(string); !ok {
			v.errorf(path+"."+role, "mapping values must be strings")
		}
	}
}

func (v *visitor) fields(value any, path string) {
	items, ok := asSlice(value)
	if !ok {
		v.errorf(path, "fields must be an array")
		return
	}
	for i, item := range items {
		at := fmt.Sprintf("%s[%d]", path, i)
		raw, ok := asMap(item)
		if !ok {
			v.errorf(at, "field definition must be an object")
			continue
		}
		if name, ok := raw["name"].(string); !ok || name == "" {
			v.errorf(at+".name", "field name is required")
		}
		v.fieldType(raw, at)
		if options, present := raw["options"]; present {
			if _, ok := asSlice(options); !ok {
				v.errorf(at+".options", "options must be an array")
			}
		}
		if required, present := raw["required"]; present {
			if _, ok := required.(bool); !ok {
				v.errorf(at+".required", "required must be a boolean")
			}
		}
		v.optionalString(raw, at, "label")
		v.optionalString(raw, at, "placeholder")
		v.optionalString(raw, at, "message")
		if attrs, present := raw["attributes"]; present {
			if _, ok := asMap(attrs); !ok {
				v.errorf(at+".attributes", "attributes must be an object")
			}
		}
	}
}

func (v *visitor) fieldType(raw map[string]any, at string) {
	value, present := raw["type"]
	if !present {
		v.errorf(at+".type", "field type is required")
		return
	}
	name, ok := value.(string)
	if !ok {
		v.errorf(at+".type", "field type must be a string")
		return
	}
	if !model.IsFieldType(name) {
		v.errorf(at+".type", "unknown field type %q", name)
		return
	}
	if model.FieldType(name).RequiresOptions() {
		if _, present := raw["options"]; !present {
			v.warnf(at+".options", "field type %q usually carries an options list", name)
		}
	}
}

func (v *visitor) columns(value any, path string) {
	items, ok := asSlice(value)
	if !ok {
		v.errorf(path, "columns must be an array")
		return
	}
	for i, item := range items {
		at := fmt.Sprintf("%s[%d]", path, i)
		if key, ok := item.(string); ok {
			if key == "" {
				v.errorf(at, "column key is required")
			}
			continue
		}
		raw, ok := asMap(item)
		if !ok {
			v.errorf(at, "column definition must be an object or a string")
			continue
		}
		if key, ok := raw["key"].(string); !ok || key == "" {
			v.errorf(at+".key", "column key is required")
		}
		v.optionalString(raw, at, "label")
		v.optionalString(raw, at, "format")
	}
}

func (v *visitor) actions(value any, path string) {
	items, ok := asSlice(value)
	if !ok {
		v.errorf(path, "actions must be an array")
		return
	}
	for i, item := range items {
		at := fmt.Sprintf("%s[%d]", path, i)
		raw, ok := asMap(item)
		if !ok {
			v.errorf(at, "action must be an object")
			continue
		}
		if label, ok := raw["label"].(string); !ok || label == "" {
			v.errorf(at+".label", "action label is required")
		}
		if action, ok := raw["action"].(string); !ok || action == "" {
			v.errorf(at+".action", "action identifier is required")
		}
		if style, present := raw["style"]; present {
			name, ok := style.(string)
			if !ok || !model.IsActionStyle(name) {
				v.errorf(at+".style", "action style must be one of primary, danger, default")
			}
		}
	}
}

func (v *visitor) children(raw map[string]any, prefix string) {
	path := join(prefix, "children")
	value, present := raw["children"]

	widget, _ := raw["widget"].(string)
	if widget == string(model.WidgetCompose) {
		items, ok := asSlice(value)
		if !present || !ok || len(items) == 0 {
			v.errorf(path, "compose requires a non-empty children array")
			if !present || !ok {
				return
			}
		}
	}
	if !present {
		return
	}

	items, ok := asSlice(value)
	if !ok {
		v.errorf(path, "children must be an array")
		return
	}
	for i, item := range items {
		v.spec(item, fmt.Sprintf("%s[%d]", path, i))
	}
}

func (v *visitor) layout(value any, path string) {
	name, ok := value.(string)
	if !ok || !model.IsLayout(name) {
		v.errorf(path, "layout must be one of stack, row, grid")
	}
}

func (v *visitor) events(value any, path string) {
	items, ok := asSlice(value)
	if !ok {
		v.errorf(path, "events must be an array")
		return
	}
	for i, item := range items {
		at := fmt.Sprintf("%s[%d]", path, i)
		raw, ok := asMap(item)
		if !ok {
			v.errorf(at, "event must be an object")
			continue
		}
		if name, ok := raw["name"].(string); !ok || name == "" {
			v.errorf(at+".name", "event name is required")
		}
		if payload, present := raw["payload"]; present {
			if _, ok := asMap(payload); !ok {
				v.errorf(at+".payload", "event payload must be an object")
			}
		}
	}
}

func (v *visitor) optionalString(raw map[string]any, at, key string) {
	if value, present := raw[key]; present {
		if _, ok := value.(string); !ok {
			v.errorf(at+"."+key, "%s must be a string", key)
		}
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, value := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = value
		}
		return out, true
	default:
		return nil, false
	}
}

func asSlice(v any) ([]any, bool) {
	items, ok := v.([]any)
	return items, ok
}
