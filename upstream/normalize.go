package upstream

import (
	"math"
	"strconv"
	"strings"
)

// Field normalization helpers. Every upstream response is untrusted input:
// each canonical field is read through an ordered list of aliases and falls
// back to an explicit zero default when no alias is present.

// pickString returns the first alias present, stringifying numeric ids the
// Commerce Service emits.
func pickString(raw map[string]any, aliases ...string) string {
	for _, alias := range aliases {
		v, ok := raw[alias]
		if !ok || v == nil {
			continue
		}
		switch s := v.(type) {
		case string:
			return s
		case float64:
			if s == math.Trunc(s) {
				return strconv.FormatInt(int64(s), 10)
			}
			return strconv.FormatFloat(s, 'f', -1, 64)
		case bool:
			return strconv.FormatBool(s)
		}
	}
	return ""
}

// pickFloat coerces numbers and numeric strings to float64. Currency fields
// always go through here so string/number ambiguity never leaks past the
// boundary.
func pickFloat(raw map[string]any, aliases ...string) float64 {
	for _, alias := range aliases {
		v, ok := raw[alias]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
				return f
			}
		}
	}
	return 0
}

func pickInt(raw map[string]any, aliases ...string) int {
	return int(pickFloat(raw, aliases...))
}

func pickBool(raw map[string]any, aliases ...string) bool {
	for _, alias := range aliases {
		v, ok := raw[alias]
		if !ok || v == nil {
			continue
		}
		switch b := v.(type) {
		case bool:
			return b
		case string:
			if parsed, err := strconv.ParseBool(b); err == nil {
				return parsed
			}
		case float64:
			return b != 0
		}
	}
	return false
}

func pickStringSlice(raw map[string]any, aliases ...string) []string {
	for _, alias := range aliases {
		v, ok := raw[alias]
		if !ok || v == nil {
			continue
		}
		items, ok := v.([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
