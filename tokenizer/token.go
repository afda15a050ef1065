// Package tokenizer segments normalized Korean text into an ordered,
// non-overlapping sequence of tagged morphemes using dictionary lookups and a
// scored shortest-path search over candidate segmentations.
package tokenizer

import (
	"fmt"

	"github.com/kotext/kotext/pos"
)

// KoreanToken is one morphological unit of the normalized input. Offset and
// Length are rune positions in the normalized text; the concatenation of all
// token spans (including Space tokens) reconstructs the input exactly.
type KoreanToken struct {
	Text    string
	Pos     pos.Pos
	Offset  int
	Length  int
	Unknown bool // no dictionary entry justified this token
	Stem    string
}

func (t KoreanToken) String() string {
	if t.Unknown {
		return fmt.Sprintf("%s(%s(unknown): %d, %d)", t.Text, t.Pos, t.Offset, t.Length)
	}
	return fmt.Sprintf("%s(%s: %d, %d)", t.Text, t.Pos, t.Offset, t.Length)
}

// Strings projects tokens to their surface forms. Space tokens are dropped
// unless keepSpace is set.
func Strings(tokens []KoreanToken, keepSpace bool) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !keepSpace && t.Pos == pos.Space {
			continue
		}
		out = append(out, t.Text)
	}
	return out
}
