package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// WriteText writes a line-oriented rendering. In a {"data": x, "meta": y}
// envelope only x is printed. Lists print one element per line; objects inside lists print
// their values tab-separated in key order; objects print "key: value" lines.
func WriteText(w io.Writer, v any) error {
	x, err := toGeneric(v)
	if err != nil {
		return err
	}
	if m, ok := x.(map[string]any); ok {
		if d, ok := m["data"]; ok {
			x = d
		}
	}

	var lines []string
	switch t := x.(type) {
	case []any:
		for _, it := range t {
			lines = append(lines, textRow(it))
		}
	case map[string]any:
		for _, k := range sortedKeys(t) {
			lines = append(lines, k+": "+textRow(t[k]))
		}
	default:
		lines = append(lines, textScalar(x))
	}
	if len(lines) == 0 {
		return nil
	}
	_, err = fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func textRow(v any) string {
	switch t := v.(type) {
	case map[string]any:
		parts := make([]string, 0, len(t))
		for _, k := range sortedKeys(t) {
			parts = append(parts, textScalar(t[k]))
		}
		return strings.Join(parts, "\t")
	case []any:
		parts := make([]string, 0, len(t))
		for _, it := range t {
			parts = append(parts, textScalar(it))
		}
		return strings.Join(parts, " ")
	default:
		return textScalar(v)
	}
}

func textScalar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return formatNumber(t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
