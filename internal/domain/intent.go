package domain

// Intent is the classified purpose of a user query, drawn from a closed set.
type Intent int

const (
	// WildAnimals asks for animals marked wild.
	WildAnimals Intent = iota
	// TameAnimals asks for domesticated animals.
	TameAnimals
	// MostTrainable asks which animal is easiest to train.
	MostTrainable
	// LeastTrainable asks which animal is hardest to train.
	LeastTrainable
	// MostEndangered asks which animal is closest to extinction.
	MostEndangered
	// LeastEndangered asks which animal is safest.
	LeastEndangered
	// AllAnimals asks for the full catalog.
	AllAnimals
	// GeneralSearch is the fallback when no rule matches.
	GeneralSearch
)

var intentLabels = map[Intent]string{
	WildAnimals:     "Wild Animals",
	TameAnimals:     "Tame/Domestic Animals",
	MostTrainable:   "Most Trainable Animals",
	LeastTrainable:  "Least Trainable Animals",
	MostEndangered:  "Most Endangered Animals",
	LeastEndangered: "Least Endangered Animals",
	AllAnimals:      "All Animals",
	GeneralSearch:   "General Search",
}

// Label returns the human-readable intent label used in answers.
func (i Intent) Label() string {
	if l, ok := intentLabels[i]; ok {
		return l
	}
	return intentLabels[GeneralSearch]
}

// Ranked reports whether the intent answers a superlative question and is
// therefore subject to ranking and top-K truncation.
func (i Intent) Ranked() bool {
	switch i {
	case MostTrainable, LeastTrainable, MostEndangered, LeastEndangered:
		return true
	default:
		return false
	}
}
