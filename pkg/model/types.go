package model

import "strings"

// WidgetType names one of the closed set of widget kinds the rendering layer
// understands. Free-form strings never survive normalization; unknown values
// are rejected by validation and routed through typo suggestion instead.
type WidgetType string

const (
	WidgetMetric    WidgetType = "metric"
	WidgetStatGroup WidgetType = "stat-group"
	WidgetGauge     WidgetType = "gauge"
	WidgetProgress  WidgetType = "progress"

	WidgetTable WidgetType = "table"
	WidgetList  WidgetType = "list"

	WidgetChartBar       WidgetType = "chart.bar"
	WidgetChartLine      WidgetType = "chart.line"
	WidgetChartArea      WidgetType = "chart.area"
	WidgetChartPie       WidgetType = "chart.pie"
	WidgetChartScatter   WidgetType = "chart.scatter"
	WidgetChartRadar     WidgetType = "chart.radar"
	WidgetChartHeatmap   WidgetType = "chart.heatmap"
	WidgetChartBox       WidgetType = "chart.box"
	WidgetChartFunnel    WidgetType = "chart.funnel"
	WidgetChartWaterfall WidgetType = "chart.waterfall"
	WidgetChartTreemap   WidgetType = "chart.treemap"

	WidgetForm    WidgetType = "form"
	WidgetConfirm WidgetType = "confirm"

	WidgetMarkdown WidgetType = "markdown"
	WidgetImage    WidgetType = "image"
	WidgetCallout  WidgetType = "callout"

	WidgetCompose WidgetType = "compose"
)

// widgetTypes is the canonical ordered list. Order matters: typo suggestion
// breaks distance ties by first occurrence in this list.
var widgetTypes = []WidgetType{
	WidgetMetric, WidgetStatGroup, WidgetGauge, WidgetProgress,
	WidgetTable, WidgetList,
	WidgetChartBar, WidgetChartLine, WidgetChartArea, WidgetChartPie,
	WidgetChartScatter, WidgetChartRadar, WidgetChartHeatmap, WidgetChartBox,
	WidgetChartFunnel, WidgetChartWaterfall, WidgetChartTreemap,
	WidgetForm, WidgetConfirm,
	WidgetMarkdown, WidgetImage, WidgetCallout,
	WidgetCompose,
}

// WidgetTypes returns the canonical widget type list in canonical order. The
// slice is a copy; callers may reorder or filter it freely.
func WidgetTypes() []WidgetType {
	out := make([]WidgetType, len(widgetTypes))
	copy(out, widgetTypes)
	return out
}

// IsWidgetType reports whether value names a known widget type.
func IsWidgetType(value string) bool {
	for _, t := range widgetTypes {
		if string(t) == value {
			return true
		}
	}
	return false
}

// IsChart reports whether t belongs to the chart.* family.
func (t WidgetType) IsChart() bool {
	return strings.HasPrefix(string(t), "chart.")
}

// FieldType is the closed enumeration of form input kinds.
type FieldType string

const (
	FieldText        FieldType = "text"
	FieldEmail       FieldType = "email"
	FieldPassword    FieldType = "password"
	FieldTel         FieldType = "tel"
	FieldURL         FieldType = "url"
	FieldTextarea    FieldType = "textarea"
	FieldNumber      FieldType = "number"
	FieldSelect      FieldType = "select"
	FieldMultiselect FieldType = "multiselect"
	FieldDate        FieldType = "date"
	FieldDatetime    FieldType = "datetime"
	FieldTime        FieldType = "time"
	FieldToggle      FieldType = "toggle"
	FieldRange       FieldType = "range"
	FieldRadio       FieldType = "radio"
	FieldCheckbox    FieldType = "checkbox"
)

var fieldTypes = []FieldType{
	FieldText, FieldEmail, FieldPassword, FieldTel, FieldURL, FieldTextarea,
	FieldNumber, FieldSelect, FieldMultiselect, FieldDate, FieldDatetime,
	FieldTime, FieldToggle, FieldRange, FieldRadio, FieldCheckbox,
}

// FieldTypes returns the canonical field type list.
func FieldTypes() []FieldType {
	out := make([]FieldType, len(fieldTypes))
	copy(out, fieldTypes)
	return out
}

// IsFieldType reports whether value names a known field type.
func IsFieldType(value string) bool {
	for _, t := range fieldTypes {
		if string(t) == value {
			return true
		}
	}
	return false
}

// RequiresOptions reports whether the field type only makes sense with an
// options list (select/multiselect/radio). Validation treats a missing list
// as a warning rather than a hard failure.
func (t FieldType) RequiresOptions() bool {
	return t == FieldSelect || t == FieldMultiselect || t == FieldRadio
}

// ActionStyle is the closed enumeration of action button styles.
type ActionStyle string

const (
	ActionPrimary ActionStyle = "primary"
	ActionDanger  ActionStyle = "danger"
	ActionDefault ActionStyle = "default"
)

// IsActionStyle reports whether value names a known action style.
func IsActionStyle(value string) bool {
	switch ActionStyle(value) {
	case ActionPrimary, ActionDanger, ActionDefault:
		return true
	default:
		return false
	}
}

// Layout is the closed enumeration of compose container layouts.
type Layout string

const (
	LayoutStack Layout = "stack"
	LayoutRow   Layout = "row"
	LayoutGrid  Layout = "grid"
)

// IsLayout reports whether value names a known layout.
func IsLayout(value string) bool {
	switch Layout(value) {
	case LayoutStack, LayoutRow, LayoutGrid:
		return true
	default:
		return false
	}
}

// Mapping assigns data keys to visual roles (e.g. "x" -> "month"). Roles not
// present are simply unmapped; two roles may point at the same data key.
type Mapping map[string]string

// Well-known mapping roles. Renderers may understand more; these are the ones
// the inference engine assigns.
const (
	RoleX        = "x"
	RoleY        = "y"
	RoleLabel    = "label"
	RoleValue    = "value"
	RoleAvatar   = "avatar"
	RoleTrailing = "trailing"
)

// FieldDefinition describes a single input inside a form widget.
type FieldDefinition struct {
	Name        string         `json:"name" yaml:"name"`
	Type        FieldType      `json:"type" yaml:"type"`
	Label       string         `json:"label,omitempty" yaml:"label,omitempty"`
	Required    bool           `json:"required,omitempty" yaml:"required,omitempty"`
	Placeholder string         `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Options     []any          `json:"options,omitempty" yaml:"options,omitempty"`
	Message     string         `json:"message,omitempty" yaml:"message,omitempty"`
	Attributes  map[string]any `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// ColumnDefinition describes one column of a table or list widget. Format
// names a formatter kind (see pkg/format); empty means raw string coercion.
type ColumnDefinition struct {
	Key    string `json:"key" yaml:"key"`
	Label  string `json:"label,omitempty" yaml:"label,omitempty"`
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// Action describes an interactive button attached to a widget. Label and
// Action are required; Style defaults to "default" during normalization.
type Action struct {
	Label  string      `json:"label" yaml:"label"`
	Action string      `json:"action" yaml:"action"`
	Style  ActionStyle `json:"style,omitempty" yaml:"style,omitempty"`
}

// Event declares something a widget can emit after interaction. The core
// never dispatches events; this is a declarative contract for the rendering
// layer. Payload maps field names to type names.
type Event struct {
	Name    string            `json:"name" yaml:"name"`
	Payload map[string]string `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// WidgetSpec is the canonical description of what to render and how data maps
// onto it. Instances produced by the normalizer are treated as immutable
// value records; children form a tree, never a graph.
type WidgetSpec struct {
	Widget   WidgetType         `json:"widget" yaml:"widget"`
	Data     any                `json:"data,omitempty" yaml:"data,omitempty"`
	Mapping  Mapping            `json:"mapping,omitempty" yaml:"mapping,omitempty"`
	Fields   []FieldDefinition  `json:"fields,omitempty" yaml:"fields,omitempty"`
	Columns  []ColumnDefinition `json:"columns,omitempty" yaml:"columns,omitempty"`
	Actions  []Action           `json:"actions,omitempty" yaml:"actions,omitempty"`
	Children []WidgetSpec       `json:"children,omitempty" yaml:"children,omitempty"`
	Layout   Layout             `json:"layout,omitempty" yaml:"layout,omitempty"`
	Options  map[string]any     `json:"options,omitempty" yaml:"options,omitempty"`
	Events   []Event            `json:"events,omitempty" yaml:"events,omitempty"`
}
