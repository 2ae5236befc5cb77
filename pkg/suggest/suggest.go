// Package suggest bridges free-form author input into the closed widget type
// enumeration: given an unrecognized type string it proposes the closest
// known identifier by edit distance.
package suggest

import (
	"strings"
	"unicode/utf8"

	"github.com/iyulab/u-widgets-sub002/pkg/model"
)

// Widget returns the canonical widget type closest to input, if any is close
// enough to be a plausible typo. The threshold is min(3, len(input)/2); an
// exact match never suggests because the caller already recognizes it. Ties
// are broken by first occurrence in the canonical type list, keeping the
// result deterministic.
func Widget(input string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return "", false
	}

	limit := utf8.RuneCountInString(needle) / 2
	if limit > 3 {
		limit = 3
	}
	if limit == 0 {
		return "", false
	}

	best := ""
	bestDistance := limit + 1
	for _, candidate := range model.WidgetTypes() {
		d := Distance(needle, string(candidate))
		if d == 0 {
			return "", false
		}
		if d < bestDistance {
			best = string(candidate)
			bestDistance = d
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}
