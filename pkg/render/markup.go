package render

import (
	"fmt"
	"sort"
	"strings"
)

// renderTag serializes a tag with its attributes. Attributes are emitted
// sorted by name for byte-identical output across runs; empty values are
// omitted entirely. Values are written verbatim - declared attribute values
// are trusted application input, not user content.
func renderTag(tag string, closing bool, attrs map[string]string) string {
	pairs := make([]string, 0, len(attrs))
	for name, val := range attrs {
		if val == "" {
			continue
		}
		pairs = append(pairs, fmt.Sprintf(`%s="%s"`, name, val))
	}
	sort.Strings(pairs)

	var b strings.Builder
	b.WriteString("<")
	b.WriteString(tag)
	b.WriteString(" ")
	b.WriteString(strings.Join(pairs, " "))
	if !closing {
		b.WriteString(" />")
		return b.String()
	}
	b.WriteString("></")
	b.WriteString(tag)
	b.WriteString(">")
	return b.String()
}
