package embed

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// defaultIframeAttrs is the fixed default attribute set, in emission
// order. Caller overrides replace a default's value but keep its position.
var defaultIframeAttrs = []struct {
	name  string
	value any
}{
	{"width", 600},
	{"height", 450},
	{"frameborder", 0},
	{"style", "border:0"},
	{"allowfullscreen", true},
	{"loading", "lazy"},
	{"referrerpolicy", "no-referrer-when-downgrade"},
}

// Iframe serializes an iframe tag for the given embed URL. It is pure and
// independent of any Builder.
//
// The src attribute is rendered first, then the defaults in their fixed
// order, then any caller attributes not present in the defaults, sorted by
// name for deterministic output. Boolean attributes render as a bare name
// when true and are omitted entirely when false; every other value is
// HTML-attribute escaped.
func Iframe(src string, attrs map[string]any) string {
	var sb strings.Builder
	sb.WriteString(`<iframe src="`)
	sb.WriteString(html.EscapeString(src))
	sb.WriteString(`"`)

	rendered := make(map[string]bool, len(defaultIframeAttrs))
	for _, def := range defaultIframeAttrs {
		rendered[def.name] = true
		value := def.value
		if override, ok := attrs[def.name]; ok {
			value = override
		}
		writeAttr(&sb, def.name, value)
	}

	extra := make([]string, 0, len(attrs))
	for name := range attrs {
		if name == "src" || rendered[name] {
			continue
		}
		extra = append(extra, name)
	}
	sort.Strings(extra)
	for _, name := range extra {
		writeAttr(&sb, name, attrs[name])
	}

	sb.WriteString("></iframe>")
	return sb.String()
}

// writeAttr appends one attribute. True booleans render bare, false ones
// not at all.
func writeAttr(sb *strings.Builder, name string, value any) {
	if v, ok := value.(bool); ok {
		if v {
			sb.WriteString(" " + name)
		}
		return
	}
	sb.WriteString(" " + name + `="`)
	sb.WriteString(html.EscapeString(fmt.Sprintf("%v", value)))
	sb.WriteString(`"`)
}
