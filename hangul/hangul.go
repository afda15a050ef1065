// Package hangul provides Hangul syllable-block arithmetic and coarse rune
// classification for the Korean script.
package hangul

const (
	syllableBase = 0xAC00
	syllableEnd  = 0xD7A3
	jungCount    = 21
	jongCount    = 28
)

// Compatibility jamo in standard collation order. Jongseong index 0 is the
// empty coda.
var (
	choseong  = []rune{'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
	jungseong = []rune{'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ'}
	jongseong = []rune{0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
)

var (
	choseongIndex  = buildIndex(choseong)
	jungseongIndex = buildIndex(jungseong)
	jongseongIndex = buildIndex(jongseong)
)

func buildIndex(list []rune) map[rune]int {
	idx := make(map[rune]int, len(list))
	for i, r := range list {
		idx[r] = i
	}
	return idx
}

// Syllable is a decomposed Hangul block. Tail is 0 when the block has no
// trailing consonant.
type Syllable struct {
	Lead  rune
	Vowel rune
	Tail  rune
}

// IsSyllable reports whether r is a precomposed Hangul syllable block.
func IsSyllable(r rune) bool { return r >= syllableBase && r <= syllableEnd }

// Decompose splits a syllable block into its jamo. The second return value is
// false when r is not a syllable block.
func Decompose(r rune) (Syllable, bool) {
	if !IsSyllable(r) {
		return Syllable{}, false
	}
	code := int(r) - syllableBase
	return Syllable{
		Lead:  choseong[code/(jungCount*jongCount)],
		Vowel: jungseong[(code/jongCount)%jungCount],
		Tail:  jongseong[code%jongCount],
	}, true
}

// Compose builds a syllable block from jamo. Tail 0 means no coda. The second
// return value is false when the jamo do not form a valid block.
func Compose(lead, vowel, tail rune) (rune, bool) {
	li, ok := choseongIndex[lead]
	if !ok {
		return 0, false
	}
	vi, ok := jungseongIndex[vowel]
	if !ok {
		return 0, false
	}
	ti, ok := jongseongIndex[tail]
	if !ok {
		return 0, false
	}
	return rune(syllableBase + (li*jungCount+vi)*jongCount + ti), true
}

// HasTail reports whether a syllable block carries a trailing consonant.
func HasTail(r rune) bool {
	s, ok := Decompose(r)
	return ok && s.Tail != 0
}

// StripTail removes the trailing consonant from a syllable block, returning
// the open syllable and the detached jamo.
func StripTail(r rune) (open rune, tail rune, ok bool) {
	s, decomposed := Decompose(r)
	if !decomposed || s.Tail == 0 {
		return r, 0, false
	}
	open, _ = Compose(s.Lead, s.Vowel, 0)
	return open, s.Tail, true
}
