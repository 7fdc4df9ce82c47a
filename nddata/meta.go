package nddata

import (
	"log/slog"
	"sort"
	"strings"
)

var pkgLogger *slog.Logger

// SetLogger redirects package warnings to l.
// Passing nil restores the process default logger.
func SetLogger(l *slog.Logger) { pkgLogger = l }

func logger() *slog.Logger {
	if pkgLogger != nil {
		return pkgLogger
	}
	return slog.Default()
}

// Meta maps string keys to arbitrary values.
type Meta map[string]any

// Clone returns a deep copy of the mapping. Nested map[string]any, Meta and
// []any values are copied recursively; all other values are shared.
func (m Meta) Clone() Meta {
	if m == nil {
		return nil
	}
	out := make(Meta, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Meta:
		return t.Clone()
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// MergeMeta combines a and b into a new mapping built from deep copies of
// both inputs. Keys present in both inputs are dropped from the result and
// reported through the package logger as a comma-joined list.
// Neither input is mutated.
func MergeMeta(a, b Meta) Meta {
	var duplicates []string
	for k := range a {
		if _, ok := b[k]; ok {
			duplicates = append(duplicates, k)
		}
	}

	out := a.Clone()
	if out == nil {
		out = make(Meta, len(b))
	}
	for k, v := range b {
		out[k] = cloneValue(v)
	}
	for _, k := range duplicates {
		delete(out, k)
	}

	if len(duplicates) > 0 {
		sort.Strings(duplicates)
		logger().Warn("removing duplicate keys found in metadata",
			"keys", strings.Join(duplicates, ","))
	}
	return out
}
