// Package format renders raw values as display strings. Formatting never
// fails: unparseable input for a numeric-dependent kind degrades to the
// original string, and nil always becomes the empty string.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iyulab/u-widgets-sub002/pkg/locale"
)

// Kind selects a formatting rule. Unknown kinds fall back to plain string
// coercion, matching the formatter's degrade-gracefully contract.
type Kind string

const (
	KindNumber   Kind = "number"
	KindCurrency Kind = "currency"
	KindPercent  Kind = "percent"
	KindDate     Kind = "date"
	KindDatetime Kind = "datetime"
	KindBytes    Kind = "bytes"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// Value formats v using the process default locale. An empty kind means
// plain string coercion.
func Value(v any, kind Kind) string {
	return ValueLocalized(v, kind, "")
}

// ValueLocalized formats v for the given locale tag. The tag follows the
// locale package's fallback chain; an empty tag uses the default locale.
func ValueLocalized(v any, kind Kind, tag string) string {
	if v == nil {
		return ""
	}
	table := locale.ResolveLocale(tag)

	switch kind {
	case KindNumber:
		return formatNumber(v, table)
	case KindCurrency:
		s, ok := decimalString(v)
		if !ok {
			return coerce(v)
		}
		return table.CurrencySymbol + groupDecimal(s, table)
	case KindPercent:
		s, ok := decimalString(v)
		if !ok {
			return coerce(v)
		}
		return s + "%"
	case KindDate:
		return formatDate(v)
	case KindDatetime:
		return formatDatetime(v)
	case KindBytes:
		return formatBytes(v, table)
	default:
		return coerce(v)
	}
}

func formatNumber(v any, table locale.Table) string {
	s, ok := decimalString(v)
	if !ok {
		return coerce(v)
	}
	return groupDecimal(s, table)
}

// groupDecimal inserts the grouping separator into the integer part of a
// plain decimal string, preserving sign and the input's own precision.
func groupDecimal(s string, table locale.Table) string {
	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}
	intPart, fracPart := s, ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart, fracPart = s[:idx], s[idx+1:]
	}

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteString(table.Number.Grouping)
		}
		grouped.WriteRune(r)
	}

	out := sign + grouped.String()
	if fracPart != "" {
		out += table.Number.Decimal + fracPart
	}
	return out
}

func formatDate(v any) string {
	s := coerce(v)
	if isISODate(s) {
		return s[:10]
	}
	return s
}

func formatDatetime(v any) string {
	s := coerce(v)
	if isISODatetime(s) {
		return s[:10] + " " + s[11:16]
	}
	if isISODate(s) {
		return s[:10]
	}
	return s
}

func formatBytes(v any, table locale.Table) string {
	f, ok := floatValue(v)
	if !ok {
		return coerce(v)
	}

	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}

	unit := 0
	for f >= 1024 && unit < len(byteUnits)-1 {
		f /= 1024
		unit++
	}

	// Bytes stay whole; KB and up always carry one decimal place.
	var magnitude string
	if unit == 0 {
		magnitude = strconv.FormatFloat(f, 'f', 0, 64)
	} else {
		magnitude = strconv.FormatFloat(f, 'f', 1, 64)
		if table.Number.Decimal != "." {
			magnitude = strings.Replace(magnitude, ".", table.Number.Decimal, 1)
		}
	}
	return sign + magnitude + " " + byteUnits[unit]
}

// decimalString reduces v to a plain decimal string ("-1234.5") when it is
// numeric or a numeric-looking string. String input keeps its own precision;
// it is never reparsed through a float.
func decimalString(v any) (string, bool) {
	switch n := v.(type) {
	case string:
		if isPlainDecimal(n) {
			return n, true
		}
		return "", false
	default:
		f, ok := floatValue(v)
		if !ok {
			return "", false
		}
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
}

func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		if !isPlainDecimal(n) {
			return 0, false
		}
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// isPlainDecimal matches [+-]?digits[.digits]. Scientific notation and
// anything else passes through unformatted.
func isPlainDecimal(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '+' || s[0] == '-' {
		i++
	}
	digits, dot := 0, false
	for ; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits > 0
}

func isISODate(s string) bool {
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

func isISODatetime(s string) bool {
	if len(s) < 16 || !isISODate(s) {
		return false
	}
	if s[10] != 'T' && s[10] != ' ' {
		return false
	}
	for _, i := range []int{11, 12, 14, 15} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s[13] == ':'
}

func coerce(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}
