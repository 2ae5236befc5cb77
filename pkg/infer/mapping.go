package infer

import (
	"github.com/iyulab/u-widgets-sub002/pkg/model"
	"github.com/iyulab/u-widgets-sub002/pkg/normalize"
)

// Confidence is a coarse qualitative score describing how unambiguous a
// field-role assignment was. It is not a calibrated probability.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Candidate is one proposed widget/mapping pair for a block of data.
type Candidate struct {
	Widget     model.WidgetType         `json:"widget"`
	Mapping    model.Mapping            `json:"mapping,omitempty"`
	Columns    []model.ColumnDefinition `json:"columns,omitempty"`
	Confidence Confidence               `json:"confidence"`
}

// SuggestMapping proposes ranked widget/mapping candidates for data. The
// first candidate is the inferred best fit; a table candidate is appended as
// the universal fallback when the best fit is something else.
func SuggestMapping(data any) []Candidate {
	inferred := WidgetType(data)

	rows := tabularRows(data)
	var stats []fieldStat
	if rows != nil {
		stats = collectStats(rows)
	}

	candidates := []Candidate{candidateFor(inferred, data, stats)}
	if inferred != model.WidgetTable && stats != nil {
		candidates = append(candidates, Candidate{
			Widget:     model.WidgetTable,
			Columns:    tableColumns(stats),
			Confidence: ConfidenceLow,
		})
	}
	return candidates
}

// AutoSpec assembles a ready-to-use spec end to end: infer the widget type,
// propose a mapping, attach the data, and normalize. The result always
// passes validation for well-formed tabular or object data.
func AutoSpec(data any) model.WidgetSpec {
	candidates := SuggestMapping(data)
	return SpecFrom(data, candidates[0])
}

// SpecFrom builds a normalized spec from a chosen candidate. Useful when a
// caller (or an interactive tool) picked something other than the first
// suggestion.
func SpecFrom(data any, candidate Candidate) model.WidgetSpec {
	return normalize.Spec(model.WidgetSpec{
		Widget:  candidate.Widget,
		Data:    data,
		Mapping: candidate.Mapping,
		Columns: candidate.Columns,
	})
}

func candidateFor(widget model.WidgetType, data any, stats []fieldStat) Candidate {
	switch widget {
	case model.WidgetChartBar:
		return chartCandidate(widget, categoricalFields(stats), numericFields(stats))
	case model.WidgetChartLine:
		return chartCandidate(widget, temporalFields(stats), numericFields(stats))
	case model.WidgetTable:
		c := Candidate{Widget: widget, Confidence: ConfidenceHigh}
		if stats != nil {
			c.Columns = tableColumns(stats)
		}
		return c
	case model.WidgetMetric:
		c := Candidate{Widget: widget, Confidence: ConfidenceHigh}
		if obj, ok := asMap(data); ok {
			if _, present := obj["value"]; present {
				c.Mapping = model.Mapping{model.RoleValue: "value"}
			}
		}
		return c
	default:
		return Candidate{Widget: widget, Confidence: ConfidenceHigh}
	}
}

// chartCandidate assigns the first axis field and the first numeric field,
// degrading confidence once per role that had competing candidates.
func chartCandidate(widget model.WidgetType, axis, series []fieldStat) Candidate {
	c := Candidate{Widget: widget, Mapping: model.Mapping{}}

	ambiguity := 0
	if len(axis) > 0 {
		c.Mapping[model.RoleX] = axis[0].key
		if len(axis) > 1 {
			ambiguity++
		}
	}
	if len(series) > 0 {
		c.Mapping[model.RoleY] = series[0].key
		if len(series) > 1 {
			ambiguity++
		}
	}

	switch ambiguity {
	case 0:
		c.Confidence = ConfidenceHigh
	case 1:
		c.Confidence = ConfidenceMedium
	default:
		c.Confidence = ConfidenceLow
	}
	return c
}

// tableColumns derives ready-to-render column definitions: humanized labels
// plus a formatter kind for numeric and temporal fields.
func tableColumns(stats []fieldStat) []model.ColumnDefinition {
	columns := make([]model.ColumnDefinition, 0, len(stats))
	for _, s := range stats {
		column := model.ColumnDefinition{Key: s.key, Label: humanize(s.key)}
		switch {
		case s.allNumeric():
			column.Format = "number"
		case s.isTemporal():
			column.Format = "date"
		}
		columns = append(columns, column)
	}
	return columns
}

func tabularRows(data any) []map[string]any {
	items, ok := asSlice(data)
	if !ok || len(items) == 0 {
		return nil
	}
	rows, _ := splitRows(items)
	if len(rows) != len(items) {
		return nil
	}
	return rows
}

// humanize turns "created_at" into "Created At".
func humanize(key string) string {
	out := make([]rune, 0, len(key))
	upper := true
	for _, r := range key {
		if r == '_' || r == '-' || r == '.' {
			out = append(out, ' ')
			upper = true
			continue
		}
		if upper && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		upper = false
		out = append(out, r)
	}
	return string(out)
}
