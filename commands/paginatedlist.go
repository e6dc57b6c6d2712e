package commands

import (
	"sort"
	"strings"
)

// ChunkSize is the number of names rendered per line.
const ChunkSize = 5

// SortedNames returns the keys of m in ascending order.
func SortedNames(m map[string]*CommandDescriptor) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatChunks renders names as quoted entries, size per line, each line
// indented by two spaces and preceded by a newline.
func FormatChunks(names []string, size int) string {
	if size <= 0 {
		size = ChunkSize
	}

	var b strings.Builder
	for i := 0; i < len(names); i += size {
		end := i + size
		if end > len(names) {
			end = len(names)
		}
		b.WriteString("\n  ")
		b.WriteString(QuoteJoin(names[i:end], ",\t\t"))
	}
	return b.String()
}

// QuoteJoin wraps every name in backticks and joins them with sep.
func QuoteJoin(names []string, sep string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "`" + n + "`"
	}
	return strings.Join(quoted, sep)
}
