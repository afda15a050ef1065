package dictionary

import (
	"reflect"
	"sync"
	"testing"

	"github.com/kotext/kotext/pos"
)

func TestAddRemove(t *testing.T) {
	d := New()
	d.Add(pos.Noun, "한국", "공부")
	d.Add(pos.Josa, "어")

	if !d.Contains(pos.Noun, "한국") {
		t.Errorf("dict should contain '한국' as Noun")
	}
	if d.Contains(pos.Verb, "한국") {
		t.Errorf("dict should not contain '한국' as Verb")
	}

	d.Remove(pos.Noun, "한국")
	if d.Contains(pos.Noun, "한국") {
		t.Errorf("'한국' should be gone after Remove")
	}
	if d.Size() != 2 {
		t.Errorf("Size() = %v, want 2", d.Size())
	}

	// removing an absent word is a no-op
	d.Remove(pos.Noun, "없는말")
}

func TestAddIgnoresWhitespace(t *testing.T) {
	d := New()
	d.Add(pos.Noun, "한국 어", "좋은\t말", "", "공부")

	if d.Size() != 1 {
		t.Errorf("Size() = %v, want 1", d.Size())
	}
	if !d.Contains(pos.Noun, "공부") {
		t.Errorf("dict should contain '공부'")
	}
}

func TestMultiTagLookup(t *testing.T) {
	d := New()
	d.Add(pos.Josa, "이")
	d.Add(pos.Determiner, "이")

	tags := d.Lookup("이")
	if !tags.Has(pos.Josa) || !tags.Has(pos.Determiner) {
		t.Errorf("Lookup('이') = %v, want Josa and Determiner", tags.Tags())
	}

	// removing one tag keeps the other
	d.Remove(pos.Josa, "이")
	tags = d.Lookup("이")
	if tags.Has(pos.Josa) || !tags.Has(pos.Determiner) {
		t.Errorf("Lookup('이') after Remove = %v, want Determiner only", tags.Tags())
	}
}

func TestPrefixMatches(t *testing.T) {
	d := New()
	d.Add(pos.Determiner, "한")
	d.Add(pos.Noun, "한국")
	d.Add(pos.Noun, "한국사람")

	got := d.PrefixMatches([]rune("한국사람들"), 0)
	want := []Match{
		{Length: 1, Tags: pos.Of(pos.Determiner)},
		{Length: 2, Tags: pos.Of(pos.Noun)},
		{Length: 4, Tags: pos.Of(pos.Noun)},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PrefixMatches = %v, want %v", got, want)
	}

	if got := d.PrefixMatches([]rune("없음"), 0); got != nil {
		t.Errorf("PrefixMatches on OOV text = %v, want nil", got)
	}
}

func TestMaxWordLengthNeverShrinks(t *testing.T) {
	d := New()
	d.Add(pos.Noun, "한국사람")
	if d.MaxWordLength() != 4 {
		t.Errorf("MaxWordLength() = %v, want 4", d.MaxWordLength())
	}
	d.Remove(pos.Noun, "한국사람")
	if d.MaxWordLength() != 4 {
		t.Errorf("MaxWordLength() after Remove = %v, want 4", d.MaxWordLength())
	}
}

func TestGeneration(t *testing.T) {
	d := New()
	g0 := d.Generation()
	d.Add(pos.Noun, "한국")
	if d.Generation() == g0 {
		t.Errorf("Generation should advance on Add")
	}
	g1 := d.Generation()
	d.Remove(pos.Noun, "한국")
	if d.Generation() == g1 {
		t.Errorf("Generation should advance on Remove")
	}
}

func TestNewKorean(t *testing.T) {
	d, err := NewKorean()
	if err != nil {
		t.Fatalf("NewKorean() error = %v", err)
	}

	if !d.Contains(pos.Noun, "한국") {
		t.Errorf("base lexicon should contain '한국' as Noun")
	}
	if !d.Contains(pos.Josa, "을") {
		t.Errorf("base lexicon should contain '을' as Josa")
	}
	if d.Generation() != 0 {
		t.Errorf("Generation() after seeding = %v, want 0", d.Generation())
	}

	right, ok := d.Typo("됬")
	if !ok || right != "됐" {
		t.Errorf("Typo('됬') = %q, %v, want '됐', true", right, ok)
	}
	if d.TypoMaxLength() < 2 {
		t.Errorf("TypoMaxLength() = %v, want >= 2", d.TypoMaxLength())
	}

	if len(d.SpamWords()) == 0 {
		t.Errorf("spam list should not be empty")
	}
}

func TestConcurrentAccess(t *testing.T) {
	d := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			d.Add(pos.Noun, "한국", "공부", "사람")
		}()
		go func() {
			defer wg.Done()
			d.Lookup("한국")
			d.PrefixMatches([]rune("한국어"), 0)
		}()
	}
	wg.Wait()
	if !d.Contains(pos.Noun, "한국") {
		t.Errorf("dict should contain '한국'")
	}
}
