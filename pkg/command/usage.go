package command

import (
	"fmt"
	"strings"
)

// Usage renders a command tree as indented help text, one node per line.
func Usage(tree []Sub) string {
	var b strings.Builder
	writeUsage(&b, tree, 0)
	return b.String()
}

func writeUsage(b *strings.Builder, tree []Sub, depth int) {
	for _, sub := range tree {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(sub.Name)
		if sub.Description != "" {
			_, _ = fmt.Fprintf(b, " - %s", sub.Description)
		}
		if len(sub.Tags) != 0 {
			_, _ = fmt.Fprintf(b, " (requires tag: %s)", strings.Join(sub.Tags, ", "))
		}
		b.WriteByte('\n')
		writeUsage(b, sub.Subs, depth+1)
	}
}
