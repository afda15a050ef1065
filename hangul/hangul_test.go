package hangul

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		r    rune
		want Syllable
	}{
		{'한', Syllable{'ㅎ', 'ㅏ', 'ㄴ'}},
		{'가', Syllable{'ㄱ', 'ㅏ', 0}},
		{'랰', Syllable{'ㄹ', 'ㅐ', 'ㅋ'}},
		{'힣', Syllable{'ㅎ', 'ㅣ', 'ㅎ'}},
	}
	for _, tt := range tests {
		got, ok := Decompose(tt.r)
		require.True(t, ok, "Decompose(%q)", tt.r)
		assert.Equal(t, tt.want, got, "Decompose(%q)", tt.r)
	}

	_, ok := Decompose('a')
	assert.False(t, ok)
	_, ok = Decompose('ㅋ')
	assert.False(t, ok)
}

func TestComposeRoundTrip(t *testing.T) {
	for _, r := range "한국어를왔했지맛집" {
		s, ok := Decompose(r)
		require.True(t, ok)
		back, ok := Compose(s.Lead, s.Vowel, s.Tail)
		require.True(t, ok)
		assert.Equal(t, r, back)
	}
}

func TestComposeInvalidJamo(t *testing.T) {
	_, ok := Compose('x', 'ㅏ', 0)
	assert.False(t, ok)
	_, ok = Compose('ㄱ', 'ㄱ', 0)
	assert.False(t, ok)
}

func TestStripTail(t *testing.T) {
	open, tail, ok := StripTail('랰')
	require.True(t, ok)
	assert.Equal(t, '래', open)
	assert.Equal(t, 'ㅋ', tail)

	// open syllable has nothing to strip
	_, _, ok = StripTail('래')
	assert.False(t, ok)
}

func TestHasTail(t *testing.T) {
	assert.True(t, HasTail('한'))
	assert.False(t, HasTail('하'))
	assert.False(t, HasTail('a'))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		r    rune
		want CharClass
	}{
		{'한', ClassSyllable},
		{'ㅋ', ClassParticle},
		{'ㅠ', ClassParticle},
		{'ㄱ', ClassJamo},
		{'a', ClassAlpha},
		{'Z', ClassAlpha},
		{'7', ClassNumber},
		{' ', ClassSpace},
		{'\t', ClassSpace},
		{'.', ClassPunctuation},
		{'。', ClassPunctuation},
		{'#', ClassHashtagMarker},
		{'@', ClassScreenNameMarker},
		{'$', ClassCashTagMarker},
		{'中', ClassForeign},
		{'é', ClassForeign},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.r), "Classify(%q)", tt.r)
	}
}

func TestIsPunct(t *testing.T) {
	for _, r := range ".!?、。｡！～" {
		assert.True(t, IsPunct(r), "IsPunct(%q)", r)
	}
	assert.False(t, IsPunct('한'))
	assert.False(t, IsPunct('a'))
	assert.False(t, IsPunct('ㅋ'))
}

func TestIsParticle(t *testing.T) {
	for _, r := range "ㅋㅎㅠㅜㅡ" {
		assert.True(t, IsParticle(r), "IsParticle(%q)", r)
	}
	assert.False(t, IsParticle('ㄱ'))
	assert.False(t, IsParticle('한'))
}
