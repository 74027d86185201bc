// Package input resolves file-pattern arguments and captures stdin into
// synthetic source units.
package input

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Resolve expands glob-style patterns against the file system, in the
// order given, concatenating matches. Duplicates across overlapping
// patterns are preserved. A pattern without glob metacharacters passes
// through verbatim even when nothing matches, so existence validation
// can report it; a non-matching magic pattern contributes nothing. An
// empty result is not an error — it signals the stdin fallback.
func Resolve(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 && !hasMeta(pattern) {
			files = append(files, pattern)
			continue
		}
		files = append(files, matches...)
	}
	return files, nil
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, `*?[\`)
}
