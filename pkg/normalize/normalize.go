// Package normalize turns well-formed widget specs into canonical ones:
// defaults filled, shorthand expanded, children normalized recursively. It
// never fails and never repairs structural damage; a verdict on malformed
// input belongs to pkg/validate.
package normalize

import "github.com/iyulab/u-widgets-sub002/pkg/model"

// Spec returns the canonical form of spec. The input is not mutated; slices
// that change are rebuilt. Idempotent: Spec(Spec(x)) is structurally equal to
// Spec(x) for any valid x.
func Spec(spec model.WidgetSpec) model.WidgetSpec {
	out := spec

	if len(spec.Actions) > 0 {
		actions := make([]model.Action, len(spec.Actions))
		for i, action := range spec.Actions {
			if action.Style == "" {
				action.Style = model.ActionDefault
			}
			actions[i] = action
		}
		out.Actions = actions
	}

	if spec.Widget == model.WidgetCompose && spec.Layout == "" {
		out.Layout = model.LayoutStack
	}

	if len(spec.Children) > 0 {
		children := make([]model.WidgetSpec, len(spec.Children))
		for i, child := range spec.Children {
			children[i] = Spec(child)
		}
		out.Children = children
	}

	return out
}
