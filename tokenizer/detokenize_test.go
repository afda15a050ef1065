package tokenizer

import (
	"testing"

	"github.com/kotext/kotext/dictionary"
	"github.com/kotext/kotext/pos"
)

func newDetokenizerDict() *dictionary.Dictionary {
	dict := dictionary.New()
	dict.Add(pos.Noun, "한국", "공부", "밥")
	dict.Add(pos.Josa, "어", "을")
	dict.Add(pos.Verb, "하", "먹")
	dict.Add(pos.PreEomi, "었")
	dict.Add(pos.Eomi, "어요", "어", "다")
	dict.Add(pos.Exclamation, "그래")
	return dict
}

func TestDetokenize(t *testing.T) {
	tok := New(newDetokenizerDict())

	tests := []struct {
		words []string
		want  string
	}{
		{[]string{"한국", "어", "공부", "했어요"}, "한국어 공부했어요"},
		{[]string{"밥", "을", "먹었다"}, "밥을 먹었다"},
		{[]string{"그래", "!"}, "그래!"},
		{[]string{"공부", "한국"}, "공부 한국"},
		{[]string{"한국"}, "한국"},
		{nil, ""},
		{[]string{"", "한국", ""}, "한국"},
	}
	for _, tt := range tests {
		if got := tok.Detokenize(tt.words); got != tt.want {
			t.Errorf("Detokenize(%v) = %q, want %q", tt.words, got, tt.want)
		}
	}
}

func TestDetokenizeSupportVerb(t *testing.T) {
	tok := New(newDetokenizerDict())

	// 했어요 attaches to a preceding noun only when it parses as an
	// inflected form
	if got := tok.Detokenize([]string{"공부", "했어요"}); got != "공부했어요" {
		t.Errorf("Detokenize = %q, want 공부했어요", got)
	}
	// an arbitrary 하-initial word that does not inflect stays separate
	if got := tok.Detokenize([]string{"공부", "하늘"}); got != "공부 하늘" {
		t.Errorf("Detokenize = %q, want '공부 하늘'", got)
	}
}
