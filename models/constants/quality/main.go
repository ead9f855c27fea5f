package quality

import (
	"iris/api/models/constants"
)

const (
	HighQuality constants.QualityAssessment = "High quality"
	LowCoverage constants.QualityAssessment = "Low coverage"
	LowQuality  constants.QualityAssessment = "Low quality"
)

const (
	// genotype calls below this confidence are flagged regardless of depth
	MinCallQuality = 0.9

	// reads below this depth are flagged as low coverage
	MinReadDepth = 20

	// expected read depth used to normalize the quality multiplier;
	// not a cap - deeper reads yield multipliers above 1.0
	ReferenceReadDepth = 30.0
)

// Assess classifies a genotype call into one of the three fixed
// assessment bands. The call quality gate is checked before the
// read depth gate, so the bands are exhaustive and mutually
// exclusive by construction.
func Assess(qualityScore float64, readDepth int) constants.QualityAssessment {
	if qualityScore < MinCallQuality {
		return LowQuality
	}
	if readDepth < MinReadDepth {
		return LowCoverage
	}
	return HighQuality
}
