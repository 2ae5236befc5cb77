// Package uwidgets turns loosely-typed widget specifications into validated,
// normalized, strongly-shaped specs a rendering layer can consume without
// defensive checks, and infers specs from raw data when no spec exists. The
// root package re-exports the main entry points; the pkg/* packages carry
// the full surface.
package uwidgets

import (
	"github.com/iyulab/u-widgets-sub002/pkg/format"
	"github.com/iyulab/u-widgets-sub002/pkg/infer"
	"github.com/iyulab/u-widgets-sub002/pkg/model"
	"github.com/iyulab/u-widgets-sub002/pkg/normalize"
	"github.com/iyulab/u-widgets-sub002/pkg/suggest"
	"github.com/iyulab/u-widgets-sub002/pkg/validate"
)

// WidgetSpec is the canonical widget description; alias exported via the
// root package for convenience.
type WidgetSpec = model.WidgetSpec

// WidgetType is the closed widget type enumeration.
type WidgetType = model.WidgetType

// Mapping assigns data keys to visual roles.
type Mapping = model.Mapping

// ValidationResult is the verdict returned by Validate.
type ValidationResult = validate.Result

// Validate checks loosely-typed input against the widget spec contract,
// reporting every violation with a path locating it.
func Validate(input any) ValidationResult {
	return validate.Spec(input)
}

// IsWidgetSpec reports whether input passes validation.
func IsWidgetSpec(input any) bool {
	return validate.IsWidgetSpec(input)
}

// DecodeSpec parses a YAML or JSON document into a WidgetSpec without
// normalizing it.
func DecodeSpec(raw []byte) (WidgetSpec, error) {
	return model.DecodeBytes(raw)
}

// Normalize decodes loosely-typed input and returns its canonical form:
// defaults filled, shorthand expanded. Structural errors surface from the
// decode step; run Validate first for full diagnostics.
func Normalize(input any) (WidgetSpec, error) {
	spec, err := model.Decode(input)
	if err != nil {
		return WidgetSpec{}, err
	}
	return normalize.Spec(spec), nil
}

// NormalizeSpec returns the canonical form of an already-typed spec.
func NormalizeSpec(spec WidgetSpec) WidgetSpec {
	return normalize.Spec(spec)
}

// AutoSpec infers a widget type and mapping from raw data alone and returns
// a normalized, ready-to-render spec.
func AutoSpec(data any) WidgetSpec {
	return infer.AutoSpec(data)
}

// SuggestWidget proposes the closest known widget type for an unrecognized
// type string. Exact matches never suggest.
func SuggestWidget(input string) (string, bool) {
	return suggest.Widget(input)
}

// FormatValue renders a raw value as a display string using the process
// default locale. An empty kind means plain string coercion.
func FormatValue(v any, kind format.Kind) string {
	return format.Value(v, kind)
}
