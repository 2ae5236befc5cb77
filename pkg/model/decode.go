package model

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNotMapping indicates the input is not an object/mapping at the top
	// level and cannot be decoded into a WidgetSpec.
	ErrNotMapping = errors.New("model: widget spec must be a mapping")

	// ErrWidgetMissing indicates the input carries no widget key.
	ErrWidgetMissing = errors.New("model: widget is required")
)

// DecodeBytes parses a YAML or JSON document (YAML is a superset of JSON)
// and decodes it into a WidgetSpec. Enumeration membership is not checked
// here; run the result through validation for a verdict.
func DecodeBytes(raw []byte) (WidgetSpec, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return WidgetSpec{}, fmt.Errorf("model: decode spec: %w", err)
	}
	return Decode(doc)
}

// Decode converts loosely-typed input (maps, slices, scalars as produced by
// JSON or YAML decoding) into a WidgetSpec. Unknown keys are dropped for
// forward compatibility; the bare-string mapping shorthand is expanded to
// {value: <key>}. Decode is structural only: it errors when a reserved key
// cannot be given its declared shape, never on enum membership.
func Decode(input any) (WidgetSpec, error) {
	raw, ok := toStringMap(input)
	if !ok {
		return WidgetSpec{}, ErrNotMapping
	}

	widget, ok := raw["widget"].(string)
	if !ok || widget == "" {
		return WidgetSpec{}, ErrWidgetMissing
	}

	spec := WidgetSpec{Widget: WidgetType(widget)}
	spec.Data = raw["data"]

	if v, present := raw["mapping"]; present {
		mapping, err := decodeMapping(v)
		if err != nil {
			return WidgetSpec{}, err
		}
		spec.Mapping = mapping
	}
	if v, present := raw["fields"]; present {
		fields, err := decodeFields(v)
		if err != nil {
			return WidgetSpec{}, err
		}
		spec.Fields = fields
	}
	if v, present := raw["columns"]; present {
		columns, err := decodeColumns(v)
		if err != nil {
			return WidgetSpec{}, err
		}
		spec.Columns = columns
	}
	if v, present := raw["actions"]; present {
		actions, err := decodeActions(v)
		if err != nil {
			return WidgetSpec{}, err
		}
		spec.Actions = actions
	}
	if v, present := raw["children"]; present {
		items, ok := toSlice(v)
		if !ok {
			return WidgetSpec{}, errors.New("model: children must be a sequence")
		}
		children := make([]WidgetSpec, 0, len(items))
		for i, item := range items {
			child, err := Decode(item)
			if err != nil {
				return WidgetSpec{}, fmt.Errorf("model: children[%d]: %w", i, err)
			}
			children = append(children, child)
		}
		spec.Children = children
	}
	if v, present := raw["layout"]; present {
		layout, ok := v.(string)
		if !ok {
			return WidgetSpec{}, errors.New("model: layout must be a string")
		}
		spec.Layout = Layout(layout)
	}
	if v, present := raw["options"]; present {
		options, ok := toStringMap(v)
		if !ok {
			return WidgetSpec{}, errors.New("model: options must be a mapping")
		}
		spec.Options = options
	}
	if v, present := raw["events"]; present {
		events, err := decodeEvents(v)
		if err != nil {
			return WidgetSpec{}, err
		}
		spec.Events = events
	}

	return spec, nil
}

func decodeMapping(v any) (Mapping, error) {
	// Bare-string shorthand: "revenue" targets the value role.
	if key, ok := v.(string); ok {
		return Mapping{RoleValue: key}, nil
	}
	raw, ok := toStringMap(v)
	if !ok {
		return nil, errors.New("model: mapping must be a mapping or a string")
	}
	mapping := make(Mapping, len(raw))
	for role, target := range raw {
		key, ok := target.(string)
		if !ok {
			return nil, fmt.Errorf("model: mapping.%s must be a string", role)
		}
		mapping[role] = key
	}
	return mapping, nil
}

func decodeFields(v any) ([]FieldDefinition, error) {
	items, ok := toSlice(v)
	if !ok {
		return nil, errors.New("model: fields must be a sequence")
	}
	fields := make([]FieldDefinition, 0, len(items))
	for i, item := range items {
		raw, ok := toStringMap(item)
		if !ok {
			return nil, fmt.Errorf("model: fields[%d] must be a mapping", i)
		}
		field := FieldDefinition{
			Name:        stringAt(raw, "name"),
			Type:        FieldType(stringAt(raw, "type")),
			Label:       stringAt(raw, "label"),
			Placeholder: stringAt(raw, "placeholder"),
			Message:     stringAt(raw, "message"),
		}
		if required, ok := raw["required"].(bool); ok {
			field.Required = required
		}
		if options, present := raw["options"]; present {
			list, ok := toSlice(options)
			if !ok {
				return nil, fmt.Errorf("model: fields[%d].options must be a sequence", i)
			}
			field.Options = list
		}
		if attrs, present := raw["attributes"]; present {
			m, ok := toStringMap(attrs)
			if !ok {
				return nil, fmt.Errorf("model: fields[%d].attributes must be a mapping", i)
			}
			field.Attributes = m
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func decodeColumns(v any) ([]ColumnDefinition, error) {
	items, ok := toSlice(v)
	if !ok {
		return nil, errors.New("model: columns must be a sequence")
	}
	columns := make([]ColumnDefinition, 0, len(items))
	for i, item := range items {
		// A bare string column is shorthand for {key: <string>}.
		if key, ok := item.(string); ok {
			columns = append(columns, ColumnDefinition{Key: key})
			continue
		}
		raw, ok := toStringMap(item)
		if !ok {
			return nil, fmt.Errorf("model: columns[%d] must be a mapping or a string", i)
		}
		columns = append(columns, ColumnDefinition{
			Key:    stringAt(raw, "key"),
			Label:  stringAt(raw, "label"),
			Format: stringAt(raw, "format"),
		})
	}
	return columns, nil
}

func decodeActions(v any) ([]Action, error) {
	items, ok := toSlice(v)
	if !ok {
		return nil, errors.New("model: actions must be a sequence")
	}
	actions := make([]Action, 0, len(items))
	for i, item := range items {
		raw, ok := toStringMap(item)
		if !ok {
			return nil, fmt.Errorf("model: actions[%d] must be a mapping", i)
		}
		actions = append(actions, Action{
			Label:  stringAt(raw, "label"),
			Action: stringAt(raw, "action"),
			Style:  ActionStyle(stringAt(raw, "style")),
		})
	}
	return actions, nil
}

func decodeEvents(v any) ([]Event, error) {
	items, ok := toSlice(v)
	if !ok {
		return nil, errors.New("model: events must be a sequence")
	}
	events := make([]Event, 0, len(items))
	for i, item := range items {
		raw, ok := toStringMap(item)
		if !ok {
			return nil, fmt.Errorf("model: events[%d] must be a mapping", i)
		}
		event := Event{Name: stringAt(raw, "name")}
		if payload, present := raw["payload"]; present {
			m, ok := toStringMap(payload)
			if !ok {
				return nil, fmt.Errorf("model: events[%d].payload must be a mapping", i)
			}
			event.Payload = make(map[string]string, len(m))
			for k, val := range m {
				if s, ok := val.(string); ok {
					event.Payload[k] = s
				}
			}
		}
		events = append(events, event)
	}
	return events, nil
}

// toStringMap accepts the two mapping shapes decoders produce: map[string]any
// (yaml.v3, encoding/json) and map[any]any (legacy YAML decoders).
func toStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Mapping:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func toSlice(v any) ([]any, bool) {
	items, ok := v.([]any)
	return items, ok
}

func stringAt(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return s
}
