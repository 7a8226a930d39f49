package query

import (
	"fmt"
	"strconv"

	"github.com/faunadex/faunadex/internal/domain"
)

const noAnimalsMessage = "No animals found."

// buildAnswer assembles the final answer for an intent from its (already
// ranked and truncated) record sequence. Pure function of its inputs.
func buildAnswer(intent domain.Intent, animals []domain.Animal) domain.Answer {
	return domain.Answer{
		Intent:  intent,
		Animals: animals,
		Message: buildMessage(intent, animals),
	}
}

func buildMessage(intent domain.Intent, animals []domain.Animal) string {
	switch intent {
	case domain.WildAnimals:
		return fmt.Sprintf("Found %d wild animals.", len(animals))
	case domain.TameAnimals:
		return fmt.Sprintf("Found %d tame/domestic animals.", len(animals))
	case domain.AllAnimals:
		return fmt.Sprintf("Found %d animals in the database.", len(animals))
	case domain.GeneralSearch:
		return fmt.Sprintf(
			"I'm not sure exactly what you're looking for, but here are all %d animals in the database. "+
				"Try asking about 'wild animals', 'easiest to train', or 'most endangered'.",
			len(animals),
		)
	}

	// Superlative intents read the first ranked element.
	if len(animals) == 0 {
		return noAnimalsMessage
	}
	top := animals[0]

	switch intent {
	case domain.MostTrainable:
		return fmt.Sprintf("The most trainable animal is %s with trainability score %s",
			top.Creature, formatScore(top.Trainability))
	case domain.LeastTrainable:
		return fmt.Sprintf("The least trainable animal is %s with trainability score %s",
			top.Creature, formatScore(top.Trainability))
	case domain.MostEndangered:
		return fmt.Sprintf("The most endangered animal is %s with endangerment score %s",
			top.Creature, formatScore(top.Endangerment))
	case domain.LeastEndangered:
		return fmt.Sprintf("The least endangered animal is %s with endangerment score %s",
			top.Creature, formatScore(top.Endangerment))
	}

	return noAnimalsMessage
}

// formatScore renders a score the shortest way that round-trips (0.9, not 0.90).
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
