package pos

// Set is a bitmask over the tag set. A dictionary word may carry several
// tags at once (e.g. a word that is both a Noun and an Adjective stem).
type Set uint32

// Of builds a Set from individual tags.
func Of(tags ...Pos) Set {
	var s Set
	for _, p := range tags {
		s |= 1 << p
	}
	return s
}

// Has reports whether p is a member of s.
func (s Set) Has(p Pos) bool { return s&(1<<p) != 0 }

// With returns s with p added.
func (s Set) With(p Pos) Set { return s | 1<<p }

// Without returns s with p removed.
func (s Set) Without(p Pos) Set { return s &^ (1 << p) }

// Empty reports whether no tag is set.
func (s Set) Empty() bool { return s == 0 }

// Tags lists the members of s in tag order.
func (s Set) Tags() []Pos {
	var out []Pos
	for p := Pos(0); p < numPos; p++ {
		if s.Has(p) {
			out = append(out, p)
		}
	}
	return out
}
