package tokenizer

import (
	"strings"

	"github.com/kotext/kotext/hangul"
	"github.com/kotext/kotext/pos"
)

// Tags that attach to the preceding word without a space.
var attachTags = pos.Of(pos.Josa, pos.Eomi, pos.PreEomi, pos.Suffix)

// Leading syllables of 하다-style support verbs, which attach to the noun
// they verbalize (공부 + 했어요 -> 공부했어요).
var supportVerbHeads = map[rune]bool{
	'하': true, '했': true, '해': true, '합': true, '함': true, '할': true,
}

// Detokenize reconstructs a displayable string from already-segmented words.
// Words join with single spaces except for trailing particles, conjugation
// endings, suffixes, punctuation, and noun-attached support verbs. This is a
// best-effort re-join, not an inverse of tokenization.
func (t *Tokenizer) Detokenize(words []string) string {
	var b strings.Builder
	prevTags := pos.Set(0)
	wrote := false
	for _, w := range words {
		if w == "" {
			continue
		}
		tags := t.dict.Lookup(w)
		if wrote && !t.attaches(w, tags, prevTags) {
			b.WriteByte(' ')
		}
		b.WriteString(w)
		prevTags = tags
		wrote = true
	}
	return b.String()
}

func (t *Tokenizer) attaches(w string, tags, prevTags pos.Set) bool {
	if tags&attachTags != 0 {
		return true
	}
	first := []rune(w)[0]
	if hangul.Classify(first) == hangul.ClassPunctuation {
		return true
	}
	if prevTags.Has(pos.Noun) && supportVerbHeads[first] && t.isInflected(w) {
		return true
	}
	return false
}

// isInflected reports whether w parses as a single inflected verb form.
func (t *Tokenizer) isInflected(w string) bool {
	runes := []rune(w)
	for _, inf := range t.inflections(runes) {
		if inf.length == len(runes) {
			return true
		}
	}
	return false
}
