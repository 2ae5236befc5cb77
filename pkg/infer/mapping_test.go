package infer_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iyulab/u-widgets-sub002/pkg/infer"
	"github.com/iyulab/u-widgets-sub002/pkg/model"
	"github.com/iyulab/u-widgets-sub002/pkg/validate"
)

func barRows() []any {
	return []any{
		map[string]any{"name": "A", "count": 1},
		map[string]any{"name": "B", "count": 2},
		map[string]any{"name": "C", "count": 3},
	}
}

func TestSuggestMapping_SingleNumericIsHighConfidence(t *testing.T) {
	candidates := infer.SuggestMapping(barRows())
	require.NotEmpty(t, candidates)

	best := candidates[0]
	assert.Equal(t, model.WidgetChartBar, best.Widget)
	assert.Equal(t, model.Mapping{model.RoleX: "name", model.RoleY: "count"}, best.Mapping)
	assert.Equal(t, infer.ConfidenceHigh, best.Confidence)

	// A table candidate trails as the universal fallback.
	last := candidates[len(candidates)-1]
	assert.Equal(t, model.WidgetTable, last.Widget)
	assert.Equal(t, infer.ConfidenceLow, last.Confidence)
	assert.NotEmpty(t, last.Columns)
}

func TestSuggestMapping_CompetingSeriesDegradesConfidence(t *testing.T) {
	rows := []any{
		map[string]any{"name": "A", "count": 1, "total": 10},
		map[string]any{"name": "B", "count": 2, "total": 20},
		map[string]any{"name": "C", "count": 3, "total": 30},
	}
	best := infer.SuggestMapping(rows)[0]
	assert.Equal(t, model.WidgetChartBar, best.Widget)
	assert.Equal(t, infer.ConfidenceMedium, best.Confidence)
	// First qualifying field in deterministic (sorted) order wins the role.
	assert.Equal(t, "count", best.Mapping[model.RoleY])
}

func TestSuggestMapping_TemporalAxis(t *testing.T) {
	rows := []any{
		map[string]any{"date": "2025-01-01", "sales": 10},
		map[string]any{"date": "2025-01-02", "sales": 12},
		map[string]any{"date": "2025-01-03", "sales": 9},
	}
	best := infer.SuggestMapping(rows)[0]
	assert.Equal(t, model.WidgetChartLine, best.Widget)
	assert.Equal(t, model.Mapping{model.RoleX: "date", model.RoleY: "sales"}, best.Mapping)
}

func TestSuggestMapping_MetricObject(t *testing.T) {
	best := infer.SuggestMapping(map[string]any{"value": 42, "unit": "ms"})[0]
	assert.Equal(t, model.WidgetMetric, best.Widget)
	assert.Equal(t, model.Mapping{model.RoleValue: "value"}, best.Mapping)
	assert.Equal(t, infer.ConfidenceHigh, best.Confidence)
}

func TestAutoSpec_TableColumns(t *testing.T) {
	rows := []any{
		map[string]any{"file_name": "a.txt", "size": 120, "modified_at": "2025-01-01"},
		map[string]any{"file_name": "b.txt", "size": 340, "modified_at": "2025-01-02"},
	}
	spec := infer.AutoSpec(rows)
	require.Equal(t, model.WidgetTable, spec.Widget)

	byKey := make(map[string]model.ColumnDefinition, len(spec.Columns))
	for _, column := range spec.Columns {
		byKey[column.Key] = column
	}
	assert.Equal(t, "File Name", byKey["file_name"].Label)
	assert.Equal(t, "number", byKey["size"].Format)
	assert.Equal(t, "date", byKey["modified_at"].Format)
}

// Round-trip property: whatever AutoSpec assembles must pass validation once
// reduced back to plain decoded JSON.
func TestAutoSpec_AlwaysValidates(t *testing.T) {
	inputs := []any{
		42,
		"ready",
		map[string]any{"value": 3.14, "unit": "s"},
		map[string]any{"users": 10, "errors": 2},
		[]any{1, 2, 3},
		[]any{"a", "b"},
		barRows(),
		[]any{
			map[string]any{"date": "2025-01-01", "sales": 10},
			map[string]any{"date": "2025-01-02", "sales": 12},
			map[string]any{"date": "2025-01-03", "sales": 9},
		},
		[]any{
			map[string]any{"id": "x", "status": "open"},
			map[string]any{"id": "y", "status": "done"},
		},
	}

	for _, data := range inputs {
		spec := infer.AutoSpec(data)

		payload, err := json.Marshal(spec)
		require.NoError(t, err)
		var decoded any
		require.NoError(t, json.Unmarshal(payload, &decoded))

		result := validate.Spec(decoded)
		assert.True(t, result.Valid, "AutoSpec(%#v) failed validation: %+v", data, result.Errors)
	}
}
