// Package pos defines the closed part-of-speech tag set used across the
// processing pipeline. Tags cross the API boundary as validated values, never
// as free-form strings.
package pos

import (
	"errors"
	"fmt"
)

// Pos is a part-of-speech tag.
type Pos uint8

const (
	Noun Pos = iota
	Verb
	Adjective
	Adverb
	Determiner
	Exclamation
	Josa
	Eomi
	PreEomi
	Conjunction
	Modifier
	VerbPrefix
	Suffix
	Unknown

	// Chunk-level classes assigned by the scanner rather than the dictionary.
	Korean
	Foreign
	Number
	KoreanParticle
	Alpha
	Punctuation
	Hashtag
	ScreenName
	Email
	URL
	CashTag
	Space

	numPos
)

var names = [numPos]string{
	"Noun", "Verb", "Adjective", "Adverb", "Determiner", "Exclamation",
	"Josa", "Eomi", "PreEomi", "Conjunction", "Modifier", "VerbPrefix",
	"Suffix", "Unknown",
	"Korean", "Foreign", "Number", "KoreanParticle", "Alpha", "Punctuation",
	"Hashtag", "ScreenName", "Email", "URL", "CashTag", "Space",
}

var byName = func() map[string]Pos {
	m := make(map[string]Pos, numPos)
	for p := Pos(0); p < numPos; p++ {
		m[names[p]] = p
	}
	return m
}()

// ErrInvalidPos reports an unrecognized tag crossing the boundary.
var ErrInvalidPos = errors.New("invalid pos tag")

func (p Pos) String() string {
	if p >= numPos {
		return fmt.Sprintf("Pos(%d)", uint8(p))
	}
	return names[p]
}

// Valid reports whether p is a member of the closed tag set.
func (p Pos) Valid() bool { return p < numPos }

// Parse resolves a tag name to its Pos value. Unknown names return
// ErrInvalidPos.
func Parse(name string) (Pos, error) {
	p, ok := byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPos, name)
	}
	return p, nil
}
