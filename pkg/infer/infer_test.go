package infer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iyulab/u-widgets-sub002/pkg/infer"
	"github.com/iyulab/u-widgets-sub002/pkg/model"
)

func TestWidgetType_DecisionOrder(t *testing.T) {
	cases := []struct {
		name string
		data any
		want model.WidgetType
	}{
		{"bare number", 42, model.WidgetMetric},
		{"bare string", "ok", model.WidgetMetric},
		{"bare bool", true, model.WidgetMetric},
		{"value object", map[string]any{"value": 99.5}, model.WidgetMetric},
		{"value with unit", map[string]any{"value": 99.5, "unit": "ms"}, model.WidgetMetric},
		{"value with extras", map[string]any{"value": 1, "trend": "up"}, model.WidgetTable},
		{"numeric object", map[string]any{"users": 1204, "errors": 3}, model.WidgetStatGroup},
		{"array of scalars", []any{1, 2, 3}, model.WidgetList},
		{"array of strings", []any{"a", "b"}, model.WidgetList},
		{
			"categorical plus numeric over three rows",
			[]any{
				map[string]any{"name": "A", "v": 1},
				map[string]any{"name": "B", "v": 2},
				map[string]any{"name": "C", "v": 3},
			},
			model.WidgetChartBar,
		},
		{
			"two rows stay tabular",
			[]any{
				map[string]any{"name": "A", "v": 1},
				map[string]any{"name": "B", "v": 2},
			},
			model.WidgetTable,
		},
		{
			"temporal axis prefers a line chart",
			[]any{
				map[string]any{"date": "2025-01-01", "sales": 10},
				map[string]any{"date": "2025-01-02", "sales": 12},
				map[string]any{"date": "2025-01-03", "sales": 9},
			},
			model.WidgetChartLine,
		},
		{
			"no numeric field falls back to table",
			[]any{
				map[string]any{"name": "A", "status": "open"},
				map[string]any{"name": "B", "status": "open"},
				map[string]any{"name": "C", "status": "done"},
			},
			model.WidgetTable,
		},
		{"empty array", []any{}, model.WidgetTable},
		{"mixed array", []any{map[string]any{"a": 1}, 2}, model.WidgetTable},
		{"nil", nil, model.WidgetTable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, infer.WidgetType(tc.data))
		})
	}
}

func TestWidgetType_TemporalValuesWithoutNameHint(t *testing.T) {
	data := []any{
		map[string]any{"when": "2025-01-01", "n": 1},
		map[string]any{"when": "2025-01-02", "n": 2},
		map[string]any{"when": "2025-01-03", "n": 3},
	}
	// "when" is ISO-shaped in every row, so it counts as temporal, not
	// categorical, and the bar rule cannot claim it.
	assert.Equal(t, model.WidgetChartLine, infer.WidgetType(data))
}
