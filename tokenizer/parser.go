package tokenizer

import (
	"math"

	"github.com/kotext/kotext/pos"
)

// Integer costs keep the search deterministic across platforms. A known word
// costs costScale/length, so longer dictionary matches are cheaper; an
// out-of-vocabulary syllable costs strictly more than any known word.
const (
	costScale      = 1000
	unknownPenalty = 2000
)

// Adjacent tag pairs forming known morphological patterns, each with its
// cost discount. Right-attachments bind tighter than left-attachments: for
// 한국어 the Noun+Josa reading 한국+어 must beat the Determiner+Noun reading
// 한+국어, and for 밥이 the discount resolves 이 as a Josa rather than a
// Determiner.
var patternPairs = map[[2]pos.Pos]int{
	{pos.Noun, pos.Josa}:       100,
	{pos.Noun, pos.Suffix}:     100,
	{pos.Suffix, pos.Josa}:     100,
	{pos.Verb, pos.Eomi}:       100,
	{pos.Adjective, pos.Eomi}:  100,
	{pos.PreEomi, pos.Eomi}:    100,
	{pos.Determiner, pos.Noun}: 30,
	{pos.Modifier, pos.Noun}:   30,
	{pos.VerbPrefix, pos.Verb}: 30,
	{pos.Adverb, pos.Verb}:     30,
}

// Tags a dictionary word may be emitted under, in preference order when the
// costs tie.
var contentTags = []pos.Pos{
	pos.Noun, pos.Verb, pos.Adjective, pos.Adverb, pos.Determiner,
	pos.Exclamation, pos.Josa, pos.Eomi, pos.PreEomi, pos.Conjunction,
	pos.Modifier, pos.VerbPrefix, pos.Suffix,
}

// pathNode is the best segmentation of the chunk prefix ending at a position.
type pathNode struct {
	cost    int
	count   int // tokens on the path; fewer wins on equal cost
	prev    int // start of the token ending here
	tag     pos.Pos
	stem    string
	unknown bool
}

// parseChunk finds the minimum-cost segmentation of a Hangul chunk.
// Ties break by fewer tokens, then by the longer incoming token, then by tag
// order, which keeps the output reproducible.
func (t *Tokenizer) parseChunk(text string) []KoreanToken {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return nil
	}

	route := make([]pathNode, n+1)
	for j := 1; j <= n; j++ {
		route[j].cost = math.MaxInt32
	}
	route[0].tag = pos.Unknown

	relax := func(i, l int, tag pos.Pos, stem string, unknown bool, tokCost int) {
		from := route[i]
		cost := from.cost + tokCost - patternPairs[[2]pos.Pos{from.tag, tag}]
		count := from.count + 1
		cur := &route[i+l]
		better := cost < cur.cost ||
			(cost == cur.cost && count < cur.count) ||
			(cost == cur.cost && count == cur.count && l > (i+l)-cur.prev)
		if better {
			*cur = pathNode{cost: cost, count: count, prev: i, tag: tag, stem: stem, unknown: unknown}
		}
	}

	for i := 0; i < n; i++ {
		if route[i].cost == math.MaxInt32 {
			continue
		}
		// out-of-vocabulary fallback, one syllable at a time; adjacent
		// unknown steps merge after backtracking
		relax(i, 1, pos.Noun, "", true, unknownPenalty)

		for _, m := range t.dict.PrefixMatches(runes, i) {
			for _, tag := range contentTags {
				if m.Tags.Has(tag) {
					relax(i, m.Length, tag, "", false, costScale/m.Length)
				}
			}
		}

		for _, inf := range t.inflections(runes[i:]) {
			relax(i, inf.length, inf.tag, inf.stem, false, costScale/inf.length)
		}
	}

	// Backtrack, then merge adjacent unknown syllables into single tokens.
	var rev []KoreanToken
	for j := n; j > 0; {
		nd := route[j]
		rev = append(rev, KoreanToken{
			Text:    string(runes[nd.prev:j]),
			Pos:     nd.tag,
			Offset:  nd.prev,
			Length:  j - nd.prev,
			Unknown: nd.unknown,
			Stem:    nd.stem,
		})
		j = nd.prev
	}

	tokens := make([]KoreanToken, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		tok := rev[i]
		if tok.Unknown && len(tokens) > 0 && tokens[len(tokens)-1].Unknown {
			last := &tokens[len(tokens)-1]
			last.Text += tok.Text
			last.Length += tok.Length
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
