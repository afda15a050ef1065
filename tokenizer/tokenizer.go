package tokenizer

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kotext/kotext/dictionary"
	"github.com/kotext/kotext/pos"
)

// Segmentations of repeated chunks are memoized. At a few hundred bytes per
// entry this stays well under 10MB.
const cacheSize = 10_000

// Tokenizer segments normalized text against a shared dictionary.
type Tokenizer struct {
	dict *dictionary.Dictionary

	mu    sync.Mutex
	cache *lru.Cache[string, []KoreanToken]
	gen   uint64
}

// New creates a tokenizer backed by the given dictionary.
func New(dict *dictionary.Dictionary) *Tokenizer {
	cache, _ := lru.New[string, []KoreanToken](cacheSize)
	return &Tokenizer{dict: dict, cache: cache, gen: dict.Generation()}
}

// Tokenize segments text into an ordered, non-overlapping token sequence.
// Empty input yields an empty sequence.
func (t *Tokenizer) Tokenize(text string) []KoreanToken {
	if text == "" {
		return nil
	}
	var out []KoreanToken
	for _, c := range chunkText(text) {
		switch c.tag {
		case pos.Korean:
			for _, tok := range t.segment(c.text) {
				tok.Offset += c.offset
				out = append(out, tok)
			}
		case pos.Unknown:
			out = append(out, KoreanToken{
				Text:    c.text,
				Pos:     pos.Unknown,
				Offset:  c.offset,
				Length:  len([]rune(c.text)),
				Unknown: true,
			})
		default:
			out = append(out, KoreanToken{
				Text:   c.text,
				Pos:    c.tag,
				Offset: c.offset,
				Length: len([]rune(c.text)),
			})
		}
	}
	return out
}

// segment runs the chunk parser through the LRU cache. Cached entries are
// dropped wholesale whenever the dictionary generation moves. The generation
// is captured before parsing and rechecked before the insert, so a result
// parsed against an older dictionary is never cached into a newer generation.
func (t *Tokenizer) segment(text string) []KoreanToken {
	t.mu.Lock()
	gen := t.dict.Generation()
	if gen != t.gen {
		t.cache.Purge()
		t.gen = gen
	}
	cached, ok := t.cache.Get(text)
	t.mu.Unlock()
	if ok {
		return cached
	}

	tokens := t.parseChunk(text)

	t.mu.Lock()
	if t.dict.Generation() == gen {
		t.cache.Add(text, tokens)
	}
	t.mu.Unlock()
	return tokens
}
