package engine

import (
	"fmt"
	"hash/crc32"
	"strings"
	"unicode"

	"github.com/loopcontext/msgtool"
)

// slug length cap keeps underscored keys usable as identifiers.
const maxSlugLen = 50

// DeriveKey turns a message pattern into a stable identifier using the
// named strategy. Unknown strategies fall back to the literal pattern,
// matching the pass-through contract of the orchestration layer.
func DeriveKey(keyType string, pattern string) string {
	switch keyType {
	case msgtool.KeyNormalized:
		return normalize(pattern)
	case msgtool.KeyUnderscored:
		return underscore(pattern)
	case msgtool.KeyUnderscoredCRC32:
		sum := crc32.ChecksumIEEE([]byte(normalize(pattern)))
		return fmt.Sprintf("%s_%08x", underscore(pattern), sum)
	default:
		return pattern
	}
}

// normalize collapses all interior whitespace runs to single spaces.
func normalize(pattern string) string {
	return strings.Join(strings.Fields(pattern), " ")
}

// underscore lowercases the normalized pattern and maps every run of
// non-alphanumeric characters to a single underscore, capped at
// maxSlugLen runes.
func underscore(pattern string) string {
	var b strings.Builder
	pending := false
	count := 0
	for _, r := range strings.ToLower(normalize(pattern)) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			if b.Len() > 0 {
				pending = true
			}
			continue
		}
		if pending {
			if count+1 >= maxSlugLen {
				break
			}
			b.WriteRune('_')
			count++
			pending = false
		}
		if count >= maxSlugLen {
			break
		}
		b.WriteRune(r)
		count++
	}
	return b.String()
}
