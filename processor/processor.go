// Package processor is the single entry point over the pipeline: it wires the
// shared dictionary into the normalizer, tokenizer, and phrase extractor and
// exposes the public operation set.
package processor

import (
	"github.com/kotext/kotext/dictionary"
	"github.com/kotext/kotext/normalizer"
	"github.com/kotext/kotext/phrase"
	"github.com/kotext/kotext/pos"
	"github.com/kotext/kotext/sentence"
	"github.com/kotext/kotext/tokenizer"
)

// Processor bundles the pipeline components around one shared dictionary.
// All methods are safe for concurrent use; dictionary mutations apply to all
// subsequent calls.
type Processor struct {
	dict *dictionary.Dictionary
	norm *normalizer.Normalizer
	tok  *tokenizer.Tokenizer
	phr  *phrase.Extractor
}

// New creates a processor seeded with the embedded base lexicon.
func New() (*Processor, error) {
	dict, err := dictionary.NewKorean()
	if err != nil {
		return nil, err
	}
	return NewWithDictionary(dict), nil
}

// NewWithDictionary creates a processor over a caller-supplied dictionary.
func NewWithDictionary(dict *dictionary.Dictionary) *Processor {
	return &Processor{
		dict: dict,
		norm: normalizer.New(dict),
		tok:  tokenizer.New(dict),
		phr:  phrase.New(dict),
	}
}

// Dictionary returns the shared word store.
func (p *Processor) Dictionary() *dictionary.Dictionary { return p.dict }

// Normalize rewrites informal spellings and elongations into canonical form.
func (p *Processor) Normalize(text string) string {
	return p.norm.Normalize(text)
}

// Tokenize normalizes text and segments it into tagged morphemes. Token
// offsets are rune positions in the normalized text; Space tokens are
// included so the spans cover it exactly.
func (p *Processor) Tokenize(text string) []tokenizer.KoreanToken {
	return p.tok.Tokenize(p.norm.Normalize(text))
}

// TokenStrings projects tokens to surface strings, dropping Space tokens
// unless keepSpace is set.
func (p *Processor) TokenStrings(tokens []tokenizer.KoreanToken, keepSpace bool) []string {
	return tokenizer.Strings(tokens, keepSpace)
}

// SplitSentences partitions raw text into sentence spans. Offsets are rune
// positions in the original (pre-normalization) text.
func (p *Processor) SplitSentences(text string) []sentence.Sentence {
	return sentence.Split(text)
}

// ExtractPhrases groups tokens into noun/verb phrases.
func (p *Processor) ExtractPhrases(tokens []tokenizer.KoreanToken, filterSpam, includeHashtags bool) []phrase.KoreanPhrase {
	return p.phr.Extract(tokens, phrase.Options{FilterSpam: filterSpam, IncludeHashtags: includeHashtags})
}

// Detokenize reconstructs a displayable string from segmented words.
func (p *Processor) Detokenize(words []string) string {
	return p.tok.Detokenize(words)
}

// AddWords inserts user words under the given tag. Words containing
// whitespace are silently ignored.
func (p *Processor) AddWords(tag pos.Pos, words ...string) error {
	if !tag.Valid() {
		return pos.ErrInvalidPos
	}
	p.dict.Add(tag, words...)
	return nil
}

// RemoveWords deletes user words from the given tag's set.
func (p *Processor) RemoveWords(tag pos.Pos, words ...string) error {
	if !tag.Valid() {
		return pos.ErrInvalidPos
	}
	p.dict.Remove(tag, words...)
	return nil
}
