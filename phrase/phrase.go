// Package phrase groups adjacent tokens into noun and verb phrases using a
// POS-sequence grammar. Each token belongs to at most one emitted phrase and
// phrases appear in input order.
package phrase

import (
	"strings"

	"github.com/kotext/kotext/dictionary"
	"github.com/kotext/kotext/pos"
	"github.com/kotext/kotext/tokenizer"
)

// Shortest phrase worth emitting, in runes. Single-syllable fragments carry
// too little information.
const minPhraseRunes = 2

// Options controls extraction behavior. The zero value keeps everything.
type Options struct {
	FilterSpam      bool
	IncludeHashtags bool
}

// KoreanPhrase is a contiguous, grammar-justified grouping of tokens headed
// by a Noun or Verb. Offset and Length are rune positions in the tokenized
// text.
type KoreanPhrase struct {
	Tokens     []tokenizer.KoreanToken
	Text       string
	Offset     int
	Length     int
	Pos        pos.Pos
	IsCompound bool
}

// Extractor extracts phrases from token sequences. The dictionary supplies
// the spam denylist.
type Extractor struct {
	dict *dictionary.Dictionary
}

// New creates an extractor backed by the given dictionary.
func New(dict *dictionary.Dictionary) *Extractor {
	return &Extractor{dict: dict}
}

// Tags a phrase may start with.
var startTags = pos.Of(
	pos.Noun, pos.Number, pos.Determiner, pos.Modifier, pos.Adjective,
	pos.VerbPrefix, pos.Adverb, pos.Verb,
)

// allowed encodes which tag may follow which inside one phrase.
var allowed = map[pos.Pos]pos.Set{
	pos.Determiner: pos.Of(pos.Noun, pos.Number, pos.Determiner, pos.Adjective),
	pos.Modifier:   pos.Of(pos.Noun, pos.Number),
	pos.Adjective:  pos.Of(pos.Noun, pos.Number, pos.Adjective),
	pos.VerbPrefix: pos.Of(pos.Verb, pos.Noun),
	pos.Adverb:     pos.Of(pos.Verb, pos.Adverb),
	pos.Noun:       pos.Of(pos.Noun, pos.Number, pos.Suffix, pos.Space),
	pos.Number:     pos.Of(pos.Noun, pos.Number, pos.Suffix, pos.Space),
	pos.Suffix:     pos.Of(pos.Space),
	// a single space may join two noun groups into one compound phrase
	pos.Space: pos.Of(pos.Noun, pos.Number, pos.Determiner, pos.Modifier, pos.Adjective),
}

// Extract scans tokens left to right, greedily extending each phrase while
// the grammar permits adjacency. Trailing spaces are trimmed; a phrase is
// emitted only when it carries a Noun, Number, or Verb head.
func (e *Extractor) Extract(tokens []tokenizer.KoreanToken, opts Options) []KoreanPhrase {
	var out []KoreanPhrase
	for i := 0; i < len(tokens); {
		tok := tokens[i]

		if tok.Pos == pos.Hashtag {
			if opts.IncludeHashtags {
				if p, ok := e.hashtagPhrase(tok, opts); ok {
					out = append(out, p)
				}
			}
			i++
			continue
		}

		if !startTags.Has(tok.Pos) {
			i++
			continue
		}

		j := i + 1
		for j < len(tokens) && allowed[tokens[j-1].Pos].Has(tokens[j].Pos) {
			j++
		}
		run := tokens[i:j]
		for len(run) > 0 && run[len(run)-1].Pos == pos.Space {
			run = run[:len(run)-1]
		}
		if p, ok := e.buildPhrase(run, opts); ok {
			out = append(out, p)
		}
		i = j
	}
	return out
}

func (e *Extractor) buildPhrase(run []tokenizer.KoreanToken, opts Options) (KoreanPhrase, bool) {
	if len(run) == 0 {
		return KoreanPhrase{}, false
	}
	head := pos.Unknown
	content := 0
	var b strings.Builder
	for _, t := range run {
		b.WriteString(t.Text)
		switch t.Pos {
		case pos.Noun, pos.Number:
			content++
			if head == pos.Unknown {
				head = pos.Noun
			}
		case pos.Verb:
			content++
			head = pos.Verb
		}
	}
	if content == 0 {
		return KoreanPhrase{}, false
	}
	text := b.String()
	length := run[len(run)-1].Offset + run[len(run)-1].Length - run[0].Offset
	if len([]rune(text)) < minPhraseRunes {
		return KoreanPhrase{}, false
	}
	if opts.FilterSpam && e.isSpam(text) {
		return KoreanPhrase{}, false
	}
	return KoreanPhrase{
		Tokens:     append([]tokenizer.KoreanToken(nil), run...),
		Text:       text,
		Offset:     run[0].Offset,
		Length:     length,
		Pos:        head,
		IsCompound: content > 1,
	}, true
}

// hashtagPhrase treats the hashtag body (marker stripped) as a noun head.
func (e *Extractor) hashtagPhrase(tok tokenizer.KoreanToken, opts Options) (KoreanPhrase, bool) {
	text := strings.TrimPrefix(tok.Text, "#")
	if len([]rune(text)) < minPhraseRunes {
		return KoreanPhrase{}, false
	}
	if opts.FilterSpam && e.isSpam(text) {
		return KoreanPhrase{}, false
	}
	return KoreanPhrase{
		Tokens:     []tokenizer.KoreanToken{tok},
		Text:       text,
		Offset:     tok.Offset,
		Length:     tok.Length,
		Pos:        pos.Noun,
		IsCompound: false,
	}, true
}

func (e *Extractor) isSpam(text string) bool {
	for _, w := range e.dict.SpamWords() {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
