package tokenizer

import (
	"reflect"
	"sync"
	"testing"

	"github.com/kotext/kotext/dictionary"
	"github.com/kotext/kotext/pos"
)

func TestTokenizeKorean(t *testing.T) {
	dict := dictionary.New()
	// Seeded by hand so both readings of 한국어 are available: the Noun+Josa
	// reading 한국+어 must beat the Determiner+Noun reading 한+국어.
	dict.Add(pos.Noun, "한국", "국어")
	dict.Add(pos.Determiner, "한")
	dict.Add(pos.Josa, "어")
	dict.Add(pos.Eomi, "어")

	tok := New(dict)
	got := tok.Tokenize("한국어")
	want := []KoreanToken{
		{Text: "한국", Pos: pos.Noun, Offset: 0, Length: 2},
		{Text: "어", Pos: pos.Josa, Offset: 2, Length: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize(한국어) = %v, want %v", got, want)
	}
}

func TestTokenizeUnknownRun(t *testing.T) {
	tok := New(dictionary.New())
	got := tok.Tokenize("프로그램")
	want := []KoreanToken{
		{Text: "프로그램", Pos: pos.Noun, Offset: 0, Length: 4, Unknown: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize(프로그램) = %v, want %v", got, want)
	}
}

func TestTokenizeMixedClasses(t *testing.T) {
	dict := dictionary.New()
	dict.Add(pos.Noun, "한국")

	tok := New(dict)
	got := tok.Tokenize("한국 abc 123")
	want := []KoreanToken{
		{Text: "한국", Pos: pos.Noun, Offset: 0, Length: 2},
		{Text: " ", Pos: pos.Space, Offset: 2, Length: 1},
		{Text: "abc", Pos: pos.Alpha, Offset: 3, Length: 3},
		{Text: " ", Pos: pos.Space, Offset: 6, Length: 1},
		{Text: "123", Pos: pos.Number, Offset: 7, Length: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeStructural(t *testing.T) {
	tok := New(dictionary.New())
	got := tok.Tokenize("@user #한국어 $AAPL http://example.com")
	want := []KoreanToken{
		{Text: "@user", Pos: pos.ScreenName, Offset: 0, Length: 5},
		{Text: " ", Pos: pos.Space, Offset: 5, Length: 1},
		{Text: "#한국어", Pos: pos.Hashtag, Offset: 6, Length: 4},
		{Text: " ", Pos: pos.Space, Offset: 10, Length: 1},
		{Text: "$AAPL", Pos: pos.CashTag, Offset: 11, Length: 5},
		{Text: " ", Pos: pos.Space, Offset: 16, Length: 1},
		{Text: "http://example.com", Pos: pos.URL, Offset: 17, Length: 18},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeEmail(t *testing.T) {
	tok := New(dictionary.New())
	got := tok.Tokenize("test@example.com")
	want := []KoreanToken{
		{Text: "test@example.com", Pos: pos.Email, Offset: 0, Length: 16},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeNumberWithUnit(t *testing.T) {
	tok := New(dictionary.New())
	got := tok.Tokenize("1,000원")
	want := []KoreanToken{
		{Text: "1,000원", Pos: pos.Number, Offset: 0, Length: 6},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeStemming(t *testing.T) {
	dict := dictionary.New()
	dict.Add(pos.Verb, "먹")
	dict.Add(pos.PreEomi, "었")
	dict.Add(pos.Eomi, "다")

	tok := New(dict)
	got := tok.Tokenize("먹었다")
	want := []KoreanToken{
		{Text: "먹었다", Pos: pos.Verb, Offset: 0, Length: 3, Stem: "먹다"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize(먹었다) = %v, want %v", got, want)
	}
}

func TestTokenizeContraction(t *testing.T) {
	dict := dictionary.New()
	dict.Add(pos.Verb, "하")
	dict.Add(pos.PreEomi, "었")
	dict.Add(pos.Eomi, "어요", "어")

	tok := New(dict)
	got := tok.Tokenize("했어요")
	want := []KoreanToken{
		{Text: "했어요", Pos: pos.Verb, Offset: 0, Length: 3, Stem: "하다"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize(했어요) = %v, want %v", got, want)
	}
}

func TestTokenizeCacheInvalidation(t *testing.T) {
	dict := dictionary.New()
	tok := New(dict)

	got := tok.Tokenize("꿀잼")
	want := []KoreanToken{
		{Text: "꿀잼", Pos: pos.Noun, Offset: 0, Length: 2, Unknown: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize(꿀잼) = %v, want %v", got, want)
	}

	dict.Add(pos.Noun, "꿀잼")
	got = tok.Tokenize("꿀잼")
	want = []KoreanToken{
		{Text: "꿀잼", Pos: pos.Noun, Offset: 0, Length: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize(꿀잼) after Add = %v, want %v", got, want)
	}
}

func TestTokenizeConcurrentMutation(t *testing.T) {
	dict := dictionary.New()
	tok := New(dict)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				tok.Tokenize("꿀잼")
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 200; j++ {
			dict.Add(pos.Noun, "꿀잼")
			dict.Remove(pos.Noun, "꿀잼")
		}
	}()
	wg.Wait()

	// whatever interleaving happened, the next calls must reflect the
	// current dictionary state, not a segmentation cached mid-race
	dict.Add(pos.Noun, "꿀잼")
	got := tok.Tokenize("꿀잼")
	want := []KoreanToken{{Text: "꿀잼", Pos: pos.Noun, Offset: 0, Length: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize(꿀잼) after final Add = %v, want %v", got, want)
	}

	dict.Remove(pos.Noun, "꿀잼")
	got = tok.Tokenize("꿀잼")
	want = []KoreanToken{{Text: "꿀잼", Pos: pos.Noun, Offset: 0, Length: 2, Unknown: true}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize(꿀잼) after final Remove = %v, want %v", got, want)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	tok := New(dictionary.New())
	if got := tok.Tokenize(""); got != nil {
		t.Errorf("Tokenize(\"\") = %v, want nil", got)
	}
}

func TestTokenizeSpansCoverInput(t *testing.T) {
	dict := dictionary.New()
	dict.Add(pos.Noun, "한국", "밥")
	dict.Add(pos.Josa, "을")

	tok := New(dict)
	for _, text := range []string{"한국 밥을 abc!", "밥을 123 #tag", "ㅋㅋㅋ 한국"} {
		next := 0
		for _, token := range tok.Tokenize(text) {
			if token.Offset != next {
				t.Errorf("Tokenize(%q): token %v starts at %d, want %d", text, token, token.Offset, next)
			}
			next = token.Offset + token.Length
		}
		if n := len([]rune(text)); next != n {
			t.Errorf("Tokenize(%q): spans end at %d, want %d", text, next, n)
		}
	}
}

func TestStrings(t *testing.T) {
	tokens := []KoreanToken{
		{Text: "한국", Pos: pos.Noun, Offset: 0, Length: 2},
		{Text: " ", Pos: pos.Space, Offset: 2, Length: 1},
		{Text: "밥", Pos: pos.Noun, Offset: 3, Length: 1},
	}
	got := Strings(tokens, false)
	if !reflect.DeepEqual(got, []string{"한국", "밥"}) {
		t.Errorf("Strings(keepSpace=false) = %v", got)
	}
	got = Strings(tokens, true)
	if !reflect.DeepEqual(got, []string{"한국", " ", "밥"}) {
		t.Errorf("Strings(keepSpace=true) = %v", got)
	}
}
