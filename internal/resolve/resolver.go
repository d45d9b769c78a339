// Package resolve implements the ordered field lookup used to reconcile a
// logical field from multiple differently-shaped transaction sources.
package resolve

import "strings"

// Resolve looks up a logical field across the three sources in fixed
// priority order: envelope fields by exact name, then detail fields, then
// raw fields. Candidate names containing a dot are only walked against the
// raw payload, segment by segment. The first present value wins; numeric 0
// counts as present, nil and empty strings do not. Never errors: a miss is
// (nil, false).
func Resolve(envelope, detail, raw map[string]any, names []string) (any, bool) {
	for _, source := range []map[string]any{envelope, detail, raw} {
		if source == nil {
			continue
		}
		for _, name := range names {
			if strings.Contains(name, ".") {
				continue
			}
			if v, ok := source[name]; ok && Present(v) {
				return v, true
			}
		}
	}

	// Dotted paths are a last resort against the raw payload only.
	if raw != nil {
		for _, name := range names {
			if !strings.Contains(name, ".") {
				continue
			}
			if v, ok := walk(raw, name); ok && Present(v) {
				return v, true
			}
		}
	}

	return nil, false
}

// walk descends the raw payload one path segment at a time, bailing out as
// soon as a segment is missing or not an object.
func walk(raw map[string]any, path string) (any, bool) {
	var current any = raw
	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Present reports whether a value counts as resolved. Numeric zero is
// present; nil and empty or whitespace-only strings are not.
func Present(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(val) != ""
	default:
		return true
	}
}
