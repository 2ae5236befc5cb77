// Package infer derives widget types and field mappings from raw data shape
// alone. Inference is a fixed decision order, not a scored ranking: the first
// matching rule wins, which keeps behaviour predictable and testable. There
// is no randomness and no learned state.
package infer

import (
	"sort"
	"strings"

	"github.com/iyulab/u-widgets-sub002/pkg/model"
)

// WidgetType infers the single best-fit widget type for data.
//
// Decision order: bare scalar or {value, unit?} object -> metric; object of
// two or more numeric entries -> stat-group; array of scalars -> list; one
// categorical plus one numeric field over at least three rows -> chart.bar;
// a temporal axis plus a numeric series over at least three rows ->
// chart.line; anything else -> table. The chart rules run before the generic
// table rule so they stay reachable; fewer than three rows is never enough
// evidence for a chart.
func WidgetType(data any) model.WidgetType {
	switch data.(type) {
	case nil:
		return model.WidgetTable
	case string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return model.WidgetMetric
	}

	if obj, ok := asMap(data); ok {
		if isMetricObject(obj) {
			return model.WidgetMetric
		}
		if isStatGroup(obj) {
			return model.WidgetStatGroup
		}
		return model.WidgetTable
	}

	items, ok := asSlice(data)
	if !ok || len(items) == 0 {
		return model.WidgetTable
	}

	rows, scalars := splitRows(items)
	if scalars == len(items) {
		return model.WidgetList
	}
	if len(rows) != len(items) {
		return model.WidgetTable
	}

	stats := collectStats(rows)
	numerics := numericFields(stats)
	categoricals := categoricalFields(stats)
	temporals := temporalFields(stats)

	if len(rows) >= 3 {
		if len(categoricals) >= 1 && len(numerics) >= 1 {
			return model.WidgetChartBar
		}
		if len(temporals) >= 1 && len(numerics) >= 1 {
			return model.WidgetChartLine
		}
	}
	return model.WidgetTable
}

// isMetricObject matches the {value, unit?} shape.
func isMetricObject(obj map[string]any) bool {
	if _, ok := obj["value"]; !ok {
		return false
	}
	for key := range obj {
		if key != "value" && key != "unit" {
			return false
		}
	}
	return true
}

// isStatGroup matches an object whose entries are all numeric scalars, e.g.
// {"users": 1204, "errors": 3}.
func isStatGroup(obj map[string]any) bool {
	if len(obj) < 2 {
		return false
	}
	for _, v := range obj {
		if !isNumeric(v) {
			return false
		}
	}
	return true
}

// fieldStat accumulates per-key shape evidence across rows.
type fieldStat struct {
	key      string
	total    int
	numeric  int
	strings  int
	unique   int
	temporal int
	nameHint bool
}

// collectStats walks rows and summarises each key. Keys are visited in
// sorted order: map iteration order is not stable, and role assignment
// depends on which qualifying field comes first.
func collectStats(rows []map[string]any) []fieldStat {
	index := make(map[string]int)
	var stats []fieldStat
	seen := make(map[string]map[string]struct{})

	keys := make([]string, 0)
	for _, row := range rows {
		for key := range row {
			if _, ok := index[key]; !ok {
				index[key] = -1
				keys = append(keys, key)
			}
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		index[key] = len(stats)
		stats = append(stats, fieldStat{key: key, nameHint: temporalName(key)})
		seen[key] = make(map[string]struct{})
	}

	for _, row := range rows {
		for key, value := range row {
			stat := &stats[index[key]]
			stat.total++
			if isNumeric(value) {
				stat.numeric++
			}
			if s, ok := value.(string); ok {
				stat.strings++
				if _, dup := seen[key][s]; !dup {
					seen[key][s] = struct{}{}
					stat.unique++
				}
				if temporalValue(s) {
					stat.temporal++
				}
			}
		}
	}
	return stats
}

func (s fieldStat) allNumeric() bool {
	return s.total > 0 && s.numeric == s.total
}

// categorical means all-string, mostly unique, and not temporal-shaped.
func (s fieldStat) categorical() bool {
	if s.total == 0 || s.strings != s.total {
		return false
	}
	if s.isTemporal() {
		return false
	}
	return s.unique*2 > s.total
}

func (s fieldStat) isTemporal() bool {
	if s.nameHint {
		return true
	}
	return s.total > 0 && s.temporal*2 > s.total
}

func numericFields(stats []fieldStat) []fieldStat {
	var out []fieldStat
	for _, s := range stats {
		if s.allNumeric() {
			out = append(out, s)
		}
	}
	return out
}

func categoricalFields(stats []fieldStat) []fieldStat {
	var out []fieldStat
	for _, s := range stats {
		if s.categorical() {
			out = append(out, s)
		}
	}
	return out
}

func temporalFields(stats []fieldStat) []fieldStat {
	var out []fieldStat
	for _, s := range stats {
		if s.isTemporal() {
			out = append(out, s)
		}
	}
	return out
}

func temporalName(key string) bool {
	lower := strings.ToLower(key)
	for _, hint := range []string{"date", "time", "timestamp", "created", "updated"} {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return strings.HasSuffix(lower, "_at")
}

// temporalValue matches ISO-8601-shaped strings (at least YYYY-MM-DD).
func temporalValue(s string) bool {
	if len(s) < 10 {
		return false
	}
	for i := 0; i < 10; i++ {
		if i == 4 || i == 7 {
			if s[i] != '-' {
				return false
			}
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isNumeric(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	default:
		return false
	}
}

func splitRows(items []any) ([]map[string]any, int) {
	rows := make([]map[string]any, 0, len(items))
	scalars := 0
	for _, item := range items {
		if row, ok := asMap(item); ok {
			rows = append(rows, row)
			continue
		}
		switch item.(type) {
		case []any:
		default:
			scalars++
		}
	}
	return rows, scalars
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
