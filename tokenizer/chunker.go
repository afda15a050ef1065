package tokenizer

import (
	"regexp"
	"sort"

	"github.com/kotext/kotext/hangul"
	"github.com/kotext/kotext/pos"
)

// chunk is a run of text belonging to one lexical class. Korean chunks go
// through the dictionary segmenter; every other class maps directly to a
// token.
type chunk struct {
	text   string
	offset int // rune offset into the input
	tag    pos.Pos
}

// Fixed-grammar scanners, in priority order. These are unambiguous lexical
// classes and take precedence over dictionary lookup at a boundary.
var structuralScanners = []struct {
	re  *regexp.Regexp
	tag pos.Pos
}{
	{regexp.MustCompile(`(?i)https?://[^\s]+|www\.[^\s]+\.[^\s]+`), pos.URL},
	{regexp.MustCompile(`[0-9a-zA-Z._%+-]+@[0-9a-zA-Z-]+(?:\.[a-zA-Z]{2,})+`), pos.Email},
	{regexp.MustCompile(`@[0-9a-zA-Z_]+`), pos.ScreenName},
	{regexp.MustCompile(`#[0-9a-zA-Z_\x{AC00}-\x{D7A3}-]+`), pos.Hashtag},
	{regexp.MustCompile(`\$[a-zA-Z]{1,6}`), pos.CashTag},
	{regexp.MustCompile(`[0-9]+(?:,[0-9]{3})*(?:\.[0-9]+)?[조억만]?[원년월일시분초번명개%]?`), pos.Number},
}

type span struct {
	start, end int // byte offsets
	tag        pos.Pos
}

// chunkText splits text into class chunks: structural matches first, then
// rune-class runs for the gaps. Chunks cover the input exactly, in order.
func chunkText(text string) []chunk {
	if text == "" {
		return nil
	}

	var spans []span
	for _, s := range structuralScanners {
		for _, loc := range s.re.FindAllStringIndex(text, -1) {
			if !overlaps(spans, loc[0], loc[1]) {
				spans = append(spans, span{loc[0], loc[1], s.tag})
			}
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	runeAt := byteToRuneOffsets(text)
	var chunks []chunk
	cursor := 0
	for _, s := range spans {
		chunks = append(chunks, classifyGap(text[cursor:s.start], runeAt[cursor])...)
		chunks = append(chunks, chunk{text[s.start:s.end], runeAt[s.start], s.tag})
		cursor = s.end
	}
	chunks = append(chunks, classifyGap(text[cursor:], runeAt[cursor])...)
	return chunks
}

func overlaps(spans []span, start, end int) bool {
	for _, s := range spans {
		if start < s.end && s.start < end {
			return true
		}
	}
	return false
}

// classifyGap splits unmatched text into runs of a single chunk class.
func classifyGap(text string, offset int) []chunk {
	var chunks []chunk
	var run []rune
	runTag := pos.Unknown
	flush := func() {
		if len(run) > 0 {
			chunks = append(chunks, chunk{string(run), offset, runTag})
			offset += len(run)
			run = run[:0]
		}
	}
	for _, r := range text {
		tag := chunkClass(r)
		if tag != runTag {
			flush()
			runTag = tag
		}
		run = append(run, r)
	}
	flush()
	return chunks
}

func chunkClass(r rune) pos.Pos {
	switch hangul.Classify(r) {
	case hangul.ClassSyllable:
		return pos.Korean
	case hangul.ClassJamo, hangul.ClassParticle:
		return pos.KoreanParticle
	case hangul.ClassAlpha:
		return pos.Alpha
	case hangul.ClassNumber:
		return pos.Number
	case hangul.ClassSpace:
		return pos.Space
	case hangul.ClassPunctuation, hangul.ClassHashtagMarker,
		hangul.ClassScreenNameMarker, hangul.ClassCashTagMarker:
		return pos.Punctuation
	case hangul.ClassForeign:
		return pos.Foreign
	default:
		return pos.Unknown
	}
}

// byteToRuneOffsets maps every rune-start byte index (and len(text)) to its
// rune offset.
func byteToRuneOffsets(text string) map[int]int {
	m := make(map[int]int, len(text)+1)
	n := 0
	for i := range text {
		m[i] = n
		n++
	}
	m[len(text)] = n
	return m
}
