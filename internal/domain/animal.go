package domain

// Wildness is the two-valued categorical attribute marking an animal as
// wild or tame. The backend stores it as the literal strings "yes"/"no";
// that encoding is part of the wire contract and is translated nowhere
// outside the repository boundary.
type Wildness string

const (
	// Wild marks a free-living animal.
	Wild Wildness = "yes"
	// Tame marks a domesticated animal.
	Tame Wildness = "no"
)

// Valid reports whether w is one of the two known values.
func (w Wildness) Valid() bool {
	return w == Wild || w == Tame
}

// Animal is a single catalog record. Trainability and Endangerment mirror
// the two components of the record's profile vector in the backing store.
type Animal struct {
	Creature     string
	Wildness     Wildness
	Trainability float64
	Endangerment float64
}
