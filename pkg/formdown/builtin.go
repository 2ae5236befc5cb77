package formdown

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/iyulab/u-widgets-sub002/pkg/model"
)

// builtin is the fallback parser used when nothing is registered.
var builtin = newBuiltinParser()

// NewBuiltinParser returns a fresh instance of the minimal built-in parser.
// It understands two line shapes and ignores everything else as prose:
//
//	@name(Label)*: [type required placeholder="..." options="a,b,c"]
//	[submit "Save Changes"]
//
// The marker after the field name (*) flags the field as required. Labels
// and placeholders are hand-authored, so inline markup is stripped before
// they reach the rendering layer.
func NewBuiltinParser() Parser {
	return newBuiltinParser()
}

func newBuiltinParser() *builtinParser {
	return &builtinParser{
		defaultType: model.FieldText,
		sanitizer:   bluemonday.StrictPolicy(),
	}
}

type builtinParser struct {
	mu          sync.Mutex
	defaultType model.FieldType
	sanitizer   *bluemonday.Policy
}

func (p *builtinParser) Parse(text string) (Result, error) {
	var result Result
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "@"):
			if field, ok := p.parseField(line); ok {
				result.Fields = append(result.Fields, field)
			}
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			if action, ok := p.parseAction(line); ok {
				result.Actions = append(result.Actions, action)
			}
		}
	}
	return result, nil
}

func (p *builtinParser) SetDefaults(defaults map[string]any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if defaults == nil {
		p.defaultType = model.FieldText
		return
	}
	if t, ok := defaults["type"].(string); ok && model.IsFieldType(t) {
		p.defaultType = model.FieldType(t)
	}
}

func (p *builtinParser) InputFields(text string) []model.FieldDefinition {
	result, _ := p.Parse(text)
	return result.Fields
}

func (p *builtinParser) Actions(text string) []model.Action {
	result, _ := p.Parse(text)
	return result.Actions
}

// parseField handles "@name(Label)*: [attrs]" lines.
func (p *builtinParser) parseField(line string) (model.FieldDefinition, bool) {
	head, block := line, ""
	if idx := strings.Index(line, ":"); idx >= 0 {
		head, block = line[:idx], strings.TrimSpace(line[idx+1:])
	}

	head = strings.TrimPrefix(head, "@")
	required := strings.HasSuffix(head, "*")
	head = strings.TrimSuffix(head, "*")

	label := ""
	if open := strings.Index(head, "("); open >= 0 {
		if close := strings.LastIndex(head, ")"); close > open {
			label = head[open+1 : close]
		}
		head = head[:open]
	}

	name := strings.TrimSpace(head)
	if name == "" {
		return model.FieldDefinition{}, false
	}

	p.mu.Lock()
	field := model.FieldDefinition{
		Name:     name,
		Type:     p.defaultType,
		Required: required,
		Label:    p.clean(label),
	}
	p.mu.Unlock()

	for _, token := range tokenize(trimBrackets(block)) {
		key, value, hasValue := strings.Cut(token, "=")
		value = unquote(value)
		switch {
		case !hasValue && key == "required":
			field.Required = true
		case !hasValue && model.IsFieldType(key):
			field.Type = model.FieldType(key)
		case key == "label":
			field.Label = p.clean(value)
		case key == "placeholder":
			field.Placeholder = p.clean(value)
		case key == "message":
			field.Message = p.clean(value)
		case key == "options":
			for _, option := range strings.Split(value, ",") {
				if option = strings.TrimSpace(option); option != "" {
					field.Options = append(field.Options, option)
				}
			}
		case hasValue:
			if field.Attributes == nil {
				field.Attributes = make(map[string]any)
			}
			field.Attributes[key] = value
		}
	}
	return field, true
}

// parseAction handles "[submit \"Save\"]" lines. Only submit/button/reset
// blocks become actions; other bracket lines are prose.
func (p *builtinParser) parseAction(line string) (model.Action, bool) {
	tokens := tokenize(trimBrackets(line))
	if len(tokens) == 0 {
		return model.Action{}, false
	}

	kind := tokens[0]
	switch kind {
	case "submit", "button", "reset":
	default:
		return model.Action{}, false
	}

	action := model.Action{Action: kind}
	for _, token := range tokens[1:] {
		key, value, hasValue := strings.Cut(token, "=")
		switch {
		case !hasValue && strings.HasPrefix(token, `"`):
			action.Label = p.clean(unquote(token))
		case key == "style" && model.IsActionStyle(unquote(value)):
			action.Style = model.ActionStyle(unquote(value))
		case key == "action" && hasValue:
			action.Action = unquote(value)
		}
	}
	if action.Label == "" {
		action.Label = strings.ToUpper(kind[:1]) + kind[1:]
	}
	return action, true
}

// clean strips inline markup from hand-authored text, then unescapes the
// entities bluemonday introduced so plain labels stay plain.
func (p *builtinParser) clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(p.sanitizer.Sanitize(s)))
}

func trimBrackets(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	return s
}

// tokenize splits on spaces while keeping quoted runs (and quoted attribute
// values) intact.
func tokenize(s string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes := false
	for _, r := range s {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case r == ' ' && !inQuotes:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
