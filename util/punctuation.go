// Package util holds small string predicates used by the lexicon tooling.
package util

import "github.com/kotext/kotext/hangul"

// IsPunctuation checks if a string consists entirely of punctuation or special CJK symbols.
func IsPunctuation(s string) bool {
	for _, r := range s {
		if !hangul.IsPunct(r) {
			return false
		}
	}
	return s != ""
}

// ContainsPunctuation checks if any part of the string contains punctuation or special symbols.
func ContainsPunctuation(s string) bool {
	for _, r := range s {
		if hangul.IsPunct(r) {
			return true
		}
	}
	return false
}

// HasHangul reports whether the string contains at least one Hangul syllable
// block or jamo.
func HasHangul(s string) bool {
	for _, r := range s {
		if hangul.IsSyllable(r) || hangul.IsJamo(r) {
			return true
		}
	}
	return false
}

// IsHangul reports whether the string consists entirely of Hangul syllable
// blocks.
func IsHangul(s string) bool {
	for _, r := range s {
		if !hangul.IsSyllable(r) {
			return false
		}
	}
	return s != ""
}
