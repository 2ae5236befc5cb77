package normalize_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iyulab/u-widgets-sub002/pkg/model"
	"github.com/iyulab/u-widgets-sub002/pkg/normalize"
)

func TestSpec_FillsDefaults(t *testing.T) {
	spec := model.WidgetSpec{
		Widget: model.WidgetCompose,
		Children: []model.WidgetSpec{
			{
				Widget: model.WidgetConfirm,
				Actions: []model.Action{
					{Label: "OK", Action: "confirm", Style: model.ActionPrimary},
					{Label: "Cancel", Action: "dismiss"},
				},
			},
		},
	}

	got := normalize.Spec(spec)

	if got.Layout != model.LayoutStack {
		t.Fatalf("compose layout must default to stack, got %q", got.Layout)
	}
	actions := got.Children[0].Actions
	if actions[0].Style != model.ActionPrimary {
		t.Fatalf("explicit style must be preserved, got %q", actions[0].Style)
	}
	if actions[1].Style != model.ActionDefault {
		t.Fatalf("missing style must default, got %q", actions[1].Style)
	}
}

func TestSpec_DoesNotMutateInput(t *testing.T) {
	spec := model.WidgetSpec{
		Widget:  model.WidgetConfirm,
		Actions: []model.Action{{Label: "OK", Action: "confirm"}},
	}
	_ = normalize.Spec(spec)

	if spec.Actions[0].Style != "" {
		t.Fatal("normalization must not write through to the input slice")
	}
}

func TestSpec_NonComposeLayoutUntouched(t *testing.T) {
	got := normalize.Spec(model.WidgetSpec{Widget: model.WidgetMetric})
	if got.Layout != "" {
		t.Fatalf("non-compose widgets get no layout default, got %q", got.Layout)
	}
}

func TestSpec_Idempotent(t *testing.T) {
	specs := []model.WidgetSpec{
		{Widget: model.WidgetMetric, Data: map[string]any{"value": 7}},
		{
			Widget:  model.WidgetChartBar,
			Mapping: model.Mapping{model.RoleX: "name", model.RoleY: "count"},
			Data:    []any{map[string]any{"name": "A", "count": 1}},
		},
		{
			Widget: model.WidgetCompose,
			Children: []model.WidgetSpec{
				{Widget: model.WidgetMetric},
				{
					Widget:  model.WidgetForm,
					Fields:  []model.FieldDefinition{{Name: "email", Type: model.FieldEmail}},
					Actions: []model.Action{{Label: "Save", Action: "submit"}},
				},
			},
		},
	}

	for _, spec := range specs {
		once := normalize.Spec(spec)
		twice := normalize.Spec(once)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("normalize must be idempotent (-once +twice):\n%s", diff)
		}
	}
}
