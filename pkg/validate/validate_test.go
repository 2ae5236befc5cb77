package validate_test

import (
	"strings"
	"testing"

	"github.com/iyulab/u-widgets-sub002/pkg/validate"
)

func TestSpec_ValidSpecs(t *testing.T) {
	cases := map[string]any{
		"minimal metric": map[string]any{
			"widget": "metric",
			"data":   map[string]any{"value": 42, "unit": "ms"},
		},
		"chart with mapping": map[string]any{
			"widget":  "chart.bar",
			"mapping": map[string]any{"x": "name", "y": "count"},
			"data":    []any{},
		},
		"string mapping shorthand": map[string]any{
			"widget":  "metric",
			"mapping": "revenue",
		},
		"form": map[string]any{
			"widget": "form",
			"fields": []any{
				map[string]any{"name": "email", "type": "email", "required": true},
				map[string]any{
					"name":    "role",
					"type":    "select",
					"options": []any{"admin", "editor"},
				},
			},
			"actions": []any{
				map[string]any{"label": "Save", "action": "submit", "style": "primary"},
			},
		},
		"compose": map[string]any{
			"widget": "compose",
			"layout": "grid",
			"children": []any{
				map[string]any{"widget": "metric"},
				map[string]any{"widget": "table", "columns": []any{"name", map[string]any{"key": "size", "format": "bytes"}}},
			},
		},
		"unknown extras tolerated": map[string]any{
			"widget":       "markdown",
			"x-experiment": true,
		},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			result := validate.Spec(input)
			if !result.Valid {
				t.Fatalf("expected valid, got errors: %+v", result.Errors)
			}
			if !validate.IsWidgetSpec(input) {
				t.Fatal("IsWidgetSpec must agree with Spec")
			}
		})
	}
}

func TestSpec_ReportsEveryViolationWithPath(t *testing.T) {
	input := map[string]any{
		"widget": "chart.barr",
		"fields": []any{
			map[string]any{"name": "ok", "type": "text"},
			map[string]any{"name": "bad"},
			map[string]any{"name": "worse", "type": "dropdown"},
		},
		"actions": []any{
			map[string]any{"action": "submit"},
		},
		"layout": "diagonal",
	}

	result := validate.Spec(input)
	if result.Valid {
		t.Fatal("expected invalid")
	}

	wantPaths := []string{
		"widget",
		"fields[1].type",
		"fields[2].type",
		"actions[0].label",
		"layout",
	}
	got := make(map[string]string, len(result.Errors))
	for _, issue := range result.Errors {
		got[issue.Path] = issue.Message
	}
	for _, path := range wantPaths {
		if _, ok := got[path]; !ok {
			t.Errorf("missing error at %q, got %+v", path, result.Errors)
		}
	}
	if len(result.Errors) != len(wantPaths) {
		t.Errorf("expected %d errors, got %d: %+v", len(wantPaths), len(result.Errors), result.Errors)
	}
}

func TestSpec_UnknownWidgetSuggestsTypo(t *testing.T) {
	result := validate.Spec(map[string]any{"widget": "metrc"})
	if result.Valid {
		t.Fatal("expected invalid")
	}
	if !strings.Contains(result.Errors[0].Message, `did you mean "metric"`) {
		t.Fatalf("expected a typo suggestion, got %q", result.Errors[0].Message)
	}

	result = validate.Spec(map[string]any{"widget": "xyzabc"})
	if !strings.Contains(result.Errors[0].Message, "no suggestion available") {
		t.Fatalf("expected no-suggestion message, got %q", result.Errors[0].Message)
	}
}

func TestSpec_ComposeRequiresChildren(t *testing.T) {
	result := validate.Spec(map[string]any{"widget": "compose"})
	if result.Valid {
		t.Fatal("expected invalid")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %+v", result.Errors)
	}
	if result.Errors[0].Path != "children" {
		t.Fatalf("expected path %q, got %q", "children", result.Errors[0].Path)
	}

	empty := validate.Spec(map[string]any{"widget": "compose", "children": []any{}})
	if empty.Valid {
		t.Fatal("empty children must be invalid for compose")
	}
}

func TestSpec_NestedChildrenPaths(t *testing.T) {
	input := map[string]any{
		"widget": "compose",
		"children": []any{
			map[string]any{"widget": "metric"},
			map[string]any{"widget": "nope"},
			map[string]any{
				"widget":   "compose",
				"children": []any{map[string]any{}},
			},
		},
	}
	result := validate.Spec(input)
	if result.Valid {
		t.Fatal("expected invalid")
	}

	paths := make([]string, 0, len(result.Errors))
	for _, issue := range result.Errors {
		paths = append(paths, issue.Path)
	}
	for _, want := range []string{"children[1].widget", "children[2].children[0].widget"} {
		found := false
		for _, path := range paths {
			if path == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing error at %q, got %v", want, paths)
		}
	}
}

func TestSpec_SelectWithoutOptionsWarns(t *testing.T) {
	result := validate.Spec(map[string]any{
		"widget": "form",
		"fields": []any{
			map[string]any{"name": "role", "type": "select"},
		},
	})
	if !result.Valid {
		t.Fatalf("missing options must not fail validation: %+v", result.Errors)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected one warning, got %+v", result.Warnings)
	}
	if result.Warnings[0].Path != "fields[0].options" {
		t.Fatalf("unexpected warning path %q", result.Warnings[0].Path)
	}
}

func TestSpec_NonObjectInput(t *testing.T) {
	for _, input := range []any{nil, "metric", 42, []any{map[string]any{"widget": "metric"}}} {
		if validate.IsWidgetSpec(input) {
			t.Errorf("expected %#v to be rejected", input)
		}
	}
}

func TestSpec_ReservedKeyWrongType(t *testing.T) {
	result := validate.Spec(map[string]any{
		"widget":  "table",
		"columns": "name,size",
		"options": []any{"compact"},
	})
	if result.Valid {
		t.Fatal("expected invalid")
	}
	got := make(map[string]bool, len(result.Errors))
	for _, issue := range result.Errors {
		got[issue.Path] = true
	}
	if !got["columns"] || !got["options"] {
		t.Fatalf("expected errors at columns and options, got %+v", result.Errors)
	}
}
