package phenotype

import (
	"errors"
	"strings"

	"iris/api/models/constants"
)

const (
	Blue  constants.Phenotype = "blue"
	Brown constants.Phenotype = "brown"
	Green constants.Phenotype = "green"
	Hazel constants.Phenotype = "hazel"

	// sentinel for predictions made with no usable observations
	Unknown constants.Phenotype = "unknown"
)

// ClassifierOrder is the fixed iteration order used by the scoring
// engine when accumulating and when breaking probability ties
// (first-max-wins). It is deliberately lexicographic.
func ClassifierOrder() []constants.Phenotype {
	return []constants.Phenotype{Blue, Brown, Green, Hazel}
}

func IsKnownPhenotype(text string) bool {
	_, err := CastToPhenotype(text)
	return err == nil
}

func CastToPhenotype(text string) (constants.Phenotype, error) {
	switch strings.ToLower(text) {
	case "blue":
		return Blue, nil
	case "brown":
		return Brown, nil
	case "green":
		return Green, nil
	case "hazel":
		return Hazel, nil
	default:
		return Unknown, errors.New("unable to parse phenotype")
	}
}
