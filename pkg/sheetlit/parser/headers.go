package parser

import (
	"fmt"
	"slices"
	"strings"
)

// NormalizeHeaders turns a raw header row into unique column names.
// Blank cells become "Unnamed: <i>" and repeats get a ".N" suffix,
// so "a", "a" reads as "a", "a.1".
func NormalizeHeaders(raw []string) []string {
	columns := make([]string, len(raw))
	seen := make(map[string]int, len(raw))

	for i, cell := range raw {
		name := strings.TrimSpace(cell)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		columns[i] = name
	}

	for i, name := range columns {
		n, dup := seen[name]
		if !dup {
			seen[name] = 0
			continue
		}
		// Skip suffixes that collide with a literal column name.
		var candidate string
		for {
			n++
			candidate = fmt.Sprintf("%s.%d", name, n)
			if _, taken := seen[candidate]; !taken && !slices.Contains(columns[i+1:], candidate) {
				break
			}
		}
		seen[name] = n
		seen[candidate] = 0
		columns[i] = candidate
	}

	return columns
}
