package hangul

import "unicode"

// CharClass is the coarse class of a single rune. Class changes are hard
// segmentation boundaries: a Hangul run never merges with a digit run.
type CharClass int

const (
	ClassOther CharClass = iota
	ClassSyllable
	ClassJamo
	ClassParticle // emotive jamo such as ㅋ, ㅎ, ㅠ
	ClassAlpha
	ClassNumber
	ClassSpace
	ClassPunctuation
	ClassHashtagMarker
	ClassScreenNameMarker
	ClassCashTagMarker
	ClassForeign
)

// Emotive jamo that form laughter/crying runs rather than word fragments.
var particleJamo = map[rune]bool{
	'ㅋ': true,
	'ㅎ': true,
	'ㅠ': true,
	'ㅜ': true,
	'ㅡ': true,
}

// IsParticle reports whether r is an emotive jamo.
func IsParticle(r rune) bool { return particleJamo[r] }

// IsJamo reports whether r is a standalone jamo (compatibility or conjoining).
func IsJamo(r rune) bool {
	if r >= 0x3131 && r <= 0x318E { // compatibility jamo
		return true
	}
	return r >= 0x1100 && r <= 0x11FF // conjoining jamo
}

// Classify assigns a rune its coarse class. Pure function, no state.
func Classify(r rune) CharClass {
	switch {
	case IsSyllable(r):
		return ClassSyllable
	case IsJamo(r):
		if particleJamo[r] {
			return ClassParticle
		}
		return ClassJamo
	case r >= '0' && r <= '9':
		return ClassNumber
	case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		return ClassAlpha
	case r == '#':
		return ClassHashtagMarker
	case r == '@':
		return ClassScreenNameMarker
	case r == '$':
		return ClassCashTagMarker
	case unicode.IsSpace(r):
		return ClassSpace
	case IsPunct(r):
		return ClassPunctuation
	case unicode.IsLetter(r):
		return ClassForeign
	default:
		return ClassOther
	}
}

// IsPunct reports whether r is punctuation or a symbol, including the CJK
// and full-width ranges.
func IsPunct(r rune) bool {
	if unicode.IsPunct(r) || unicode.IsSymbol(r) {
		return true
	}
	// CJK Symbols and Punctuation
	if r >= 0x3000 && r <= 0x303F {
		return true
	}
	// Full-width forms
	if r >= 0xFF00 && r <= 0xFFEF {
		return true
	}
	return false
}
