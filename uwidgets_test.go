package uwidgets_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	uwidgets "github.com/iyulab/u-widgets-sub002"
	"github.com/iyulab/u-widgets-sub002/pkg/model"
)

func TestValidateThenNormalizePipeline(t *testing.T) {
	input := map[string]any{
		"widget":  "confirm",
		"actions": []any{map[string]any{"label": "OK", "action": "confirm"}},
	}

	result := uwidgets.Validate(input)
	if !result.Valid {
		t.Fatalf("expected valid input, got %+v", result.Errors)
	}

	spec, err := uwidgets.Normalize(input)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if spec.Actions[0].Style != model.ActionDefault {
		t.Fatalf("style must default, got %q", spec.Actions[0].Style)
	}
}

func TestAutoSpecPipeline(t *testing.T) {
	data := []any{
		map[string]any{"name": "A", "v": 1},
		map[string]any{"name": "B", "v": 2},
		map[string]any{"name": "C", "v": 3},
	}

	spec := uwidgets.AutoSpec(data)
	if spec.Widget != model.WidgetChartBar {
		t.Fatalf("widget = %q", spec.Widget)
	}
	want := uwidgets.Mapping{"x": "name", "y": "v"}
	if diff := cmp.Diff(want, spec.Mapping); diff != "" {
		t.Errorf("mapping mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeSpecRoundTrip(t *testing.T) {
	raw := []byte("widget: metric\nmapping: revenue\n")
	spec, err := uwidgets.DecodeSpec(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	normalized := uwidgets.NormalizeSpec(spec)
	if normalized.Mapping["value"] != "revenue" {
		t.Fatalf("shorthand expansion lost, got %+v", normalized.Mapping)
	}
}

func TestSuggestWidgetAndFormatValue(t *testing.T) {
	if got, ok := uwidgets.SuggestWidget("chart.barr"); !ok || got != "chart.bar" {
		t.Fatalf("got %q, %v", got, ok)
	}
	if got := uwidgets.FormatValue(1536, "bytes"); got != "1.5 KB" {
		t.Fatalf("got %q", got)
	}
}
