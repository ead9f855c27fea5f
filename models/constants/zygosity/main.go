package zygosity

import (
	"iris/api/models/constants"
)

const (
	Unknown constants.Zygosity = iota
	Homozygous
	Heterozygous
)

func IsKnown(value int) bool {
	return value > int(Unknown) && value <= int(Heterozygous)
}

// FromAlleles derives a zygosity classification from the two
// observed allele letters at a marker.
func FromAlleles(allele1 string, allele2 string) constants.Zygosity {
	if allele1 == "" || allele2 == "" {
		return Unknown
	}
	if allele1 == allele2 {
		return Homozygous
	}
	return Heterozygous
}

func ZygosityToString(zyg constants.Zygosity) string {
	switch zyg {
	case Homozygous:
		return "homozygous"
	case Heterozygous:
		return "heterozygous"
	default:
		return "unknown"
	}
}
