// Package sentence partitions raw text into sentence spans using terminal
// punctuation with quote and parenthesis balance tracking. It consumes the
// original (pre-normalization) text and reports offsets against it.
package sentence

import (
	"fmt"
	"unicode"
)

// Sentence is one span of the input. Start and End are rune offsets into the
// original text; spans are ordered, non-overlapping, and together with the
// trimmed whitespace cover the input.
type Sentence struct {
	Text  string
	Start int
	End   int
}

func (s Sentence) String() string {
	return fmt.Sprintf("%s(%d,%d)", s.Text, s.Start, s.End)
}

var closing = map[rune]rune{
	')': '(',
	']': '[',
	'}': '{',
	'」': '「',
	'』': '『',
	'》': '《',
	'〉': '〈',
	'”': '“',
	'’': '‘',
}

var opening = map[rune]bool{
	'(': true, '[': true, '{': true,
	'「': true, '『': true, '《': true, '〈': true,
	'“': true, '‘': true,
}

func isTerminal(r rune) bool {
	switch r {
	case '.', '!', '?', '…', '‼', '⁇', '⁈', '⁉', '！', '？', '。', '｡':
		return true
	}
	return false
}

// Split partitions text into sentences. Terminal punctuation inside balanced
// quotes or brackets does not end a sentence.
func Split(text string) []Sentence {
	runes := []rune(text)
	var out []Sentence

	// Straight double quotes toggle; apostrophes are left alone since a
	// contraction (don't) would otherwise swallow every later split.
	var stack []rune
	inDouble := false
	balanced := func() bool { return len(stack) == 0 && !inDouble }

	start := -1 // first non-space rune of the current sentence
	flush := func(end int) {
		if start < 0 {
			return
		}
		// drop trailing whitespace
		for end > start && unicode.IsSpace(runes[end-1]) {
			end--
		}
		if end > start {
			out = append(out, Sentence{Text: string(runes[start:end]), Start: start, End: end})
		}
		start = -1
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if start < 0 && !unicode.IsSpace(r) {
			start = i
		}

		switch {
		case r == '"':
			inDouble = !inDouble
		case opening[r]:
			stack = append(stack, r)
		case closing[r] != 0:
			if len(stack) > 0 && stack[len(stack)-1] == closing[r] {
				stack = stack[:len(stack)-1]
			}
		}

		if start >= 0 && isTerminal(r) && balanced() {
			// consume the whole terminal run plus trailing closers
			j := i + 1
			for j < len(runes) && (isTerminal(runes[j]) || closing[runes[j]] != 0 || runes[j] == '"' || runes[j] == '\'') {
				if runes[j] == '"' {
					inDouble = false
				}
				j++
			}
			flush(j)
			i = j - 1
		}
	}
	flush(len(runes))
	return out
}
