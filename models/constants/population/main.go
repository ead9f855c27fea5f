package population

import (
	"iris/api/models/constants"
)

const (
	European  constants.PopulationCode = "EUR"
	African   constants.PopulationCode = "AFR"
	EastAsian constants.PopulationCode = "EAS"
)

func IsKnownPopulationCode(text string) bool {
	switch constants.PopulationCode(text) {
	case European, African, EastAsian:
		return true
	}
	return false
}

func PopulationCodeToString(code constants.PopulationCode) string {
	switch code {
	case European:
		return "European"
	case African:
		return "African"
	case EastAsian:
		return "East Asian"
	default:
		return string(code)
	}
}
