// Package schema publishes the widget spec structural contract in two
// machine-consumable forms: a JSON Schema document for external tooling and
// a compiled kin-openapi schema for in-process structural checks. The
// authoritative enumerations live in pkg/model; a test pins the document to
// them so the contract cannot drift.
package schema

import (
	_ "embed"
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/iyulab/u-widgets-sub002/pkg/model"
	"github.com/iyulab/u-widgets-sub002/pkg/validate"
)

//go:embed widgetspec.json
var document []byte

// Document returns the JSON Schema document describing the WidgetSpec
// contract, with a $defs section per sub-structure and the widgetType enum
// at the top.
func Document() []byte {
	out := make([]byte, len(document))
	copy(out, document)
	return out
}

var (
	compileOnce sync.Once
	compiled    *openapi3.Schema
)

// Compiled returns the WidgetSpec contract as a kin-openapi schema, built
// once from the model enumerations. The children property references the
// spec schema itself, mirroring the recursive $ref in the document.
func Compiled() *openapi3.Schema {
	compileOnce.Do(func() {
		compiled = buildCompiled()
	})
	return compiled
}

// Check validates decoded JSON (maps, slices, scalars) against the compiled
// contract and reports every violation. It is the contract-level counterpart
// to pkg/validate: same shape of findings, but driven by the published
// schema instead of the hand-maintained walker.
func Check(value any) []validate.Issue {
	err := Compiled().VisitJSON(value, openapi3.MultiErrors())
	if err == nil {
		return nil
	}

	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		issues := make([]validate.Issue, 0, len(multi))
		for _, item := range multi {
			issues = append(issues, issueFrom(item))
		}
		return issues
	}
	return []validate.Issue{issueFrom(err)}
}

func issueFrom(err error) validate.Issue {
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		return validate.Issue{
			Path:    pointerPath(schemaErr.JSONPointer()),
			Message: schemaErr.Reason,
		}
	}
	return validate.Issue{Message: err.Error()}
}

// pointerPath renders a JSON pointer segment list in the dotted/indexed
// style the validator uses: ["children","0","widget"] -> "children[0].widget".
func pointerPath(segments []string) string {
	var b strings.Builder
	for _, segment := range segments {
		if _, err := strconv.Atoi(segment); err == nil {
			b.WriteString("[" + segment + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(segment)
	}
	return b.String()
}

func buildCompiled() *openapi3.Schema {
	str := func() *openapi3.Schema {
		return &openapi3.Schema{Type: &openapi3.Types{"string"}}
	}
	object := func() *openapi3.Schema {
		return &openapi3.Schema{Type: &openapi3.Types{"object"}, Properties: openapi3.Schemas{}}
	}
	array := func(items *openapi3.Schema) *openapi3.Schema {
		return &openapi3.Schema{
			Type:  &openapi3.Types{"array"},
			Items: openapi3.NewSchemaRef("", items),
		}
	}
	enum := func(values []string) *openapi3.Schema {
		s := str()
		s.Enum = make([]any, len(values))
		for i, v := range values {
			s.Enum[i] = v
		}
		return s
	}

	widgetType := enum(widgetTypeNames())
	fieldType := enum(fieldTypeNames())

	mapping := &openapi3.Schema{
		OneOf: openapi3.SchemaRefs{
			openapi3.NewSchemaRef("", str()),
			openapi3.NewSchemaRef("", &openapi3.Schema{
				Type: &openapi3.Types{"object"},
				AdditionalProperties: openapi3.AdditionalProperties{
					Schema: openapi3.NewSchemaRef("", str()),
				},
			}),
		},
	}

	field := object()
	field.Required = []string{"name", "type"}
	field.Properties["name"] = openapi3.NewSchemaRef("", str())
	field.Properties["type"] = openapi3.NewSchemaRef("", fieldType)
	field.Properties["label"] = openapi3.NewSchemaRef("", str())
	field.Properties["required"] = openapi3.NewSchemaRef("", &openapi3.Schema{Type: &openapi3.Types{"boolean"}})
	field.Properties["placeholder"] = openapi3.NewSchemaRef("", str())
	field.Properties["options"] = openapi3.NewSchemaRef("", &openapi3.Schema{Type: &openapi3.Types{"array"}})
	field.Properties["message"] = openapi3.NewSchemaRef("", str())
	field.Properties["attributes"] = openapi3.NewSchemaRef("", &openapi3.Schema{Type: &openapi3.Types{"object"}})

	columnObject := object()
	columnObject.Required = []string{"key"}
	columnObject.Properties["key"] = openapi3.NewSchemaRef("", str())
	columnObject.Properties["label"] = openapi3.NewSchemaRef("", str())
	columnObject.Properties["format"] = openapi3.NewSchemaRef("", str())
	column := &openapi3.Schema{
		OneOf: openapi3.SchemaRefs{
			openapi3.NewSchemaRef("", str()),
			openapi3.NewSchemaRef("", columnObject),
		},
	}

	action := object()
	action.Required = []string{"label", "action"}
	action.Properties["label"] = openapi3.NewSchemaRef("", str())
	action.Properties["action"] = openapi3.NewSchemaRef("", str())
	action.Properties["style"] = openapi3.NewSchemaRef("", enum([]string{
		string(model.ActionPrimary), string(model.ActionDanger), string(model.ActionDefault),
	}))

	event := object()
	event.Required = []string{"name"}
	event.Properties["name"] = openapi3.NewSchemaRef("", str())
	event.Properties["payload"] = openapi3.NewSchemaRef("", &openapi3.Schema{
		Type: &openapi3.Types{"object"},
		AdditionalProperties: openapi3.AdditionalProperties{
			Schema: openapi3.NewSchemaRef("", str()),
		},
	})

	spec := object()
	spec.Required = []string{"widget"}
	spec.Properties["widget"] = openapi3.NewSchemaRef("", widgetType)
	spec.Properties["data"] = openapi3.NewSchemaRef("", &openapi3.Schema{})
	spec.Properties["mapping"] = openapi3.NewSchemaRef("", mapping)
	spec.Properties["fields"] = openapi3.NewSchemaRef("", array(field))
	spec.Properties["columns"] = openapi3.NewSchemaRef("", array(column))
	spec.Properties["actions"] = openapi3.NewSchemaRef("", array(action))
	spec.Properties["children"] = openapi3.NewSchemaRef("", array(spec))
	spec.Properties["layout"] = openapi3.NewSchemaRef("", enum([]string{
		string(model.LayoutStack), string(model.LayoutRow), string(model.LayoutGrid),
	}))
	spec.Properties["options"] = openapi3.NewSchemaRef("", &openapi3.Schema{Type: &openapi3.Types{"object"}})
	spec.Properties["events"] = openapi3.NewSchemaRef("", array(event))

	return spec
}

func widgetTypeNames() []string {
	types := model.WidgetTypes()
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func fieldTypeNames() []string {
	types := model.FieldTypes()
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}
