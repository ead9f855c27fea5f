package scoringService

import (
	"math"
	"sort"

	"iris/api/models"
	"iris/api/models/constants"
	"iris/api/models/constants/phenotype"
	"iris/api/models/constants/quality"
	"iris/api/repositories/knowledgebase"
)

type (
	ScoringService struct {
		Knowledgebase *knowledgebase.Repository
	}

	RawScores     map[constants.Phenotype]float64
	Probabilities map[constants.Phenotype]float64
)

func NewScoringService(kb *knowledgebase.Repository) *ScoringService {
	ss := &ScoringService{
		Knowledgebase: kb,
	}

	return ss
}

// Score accumulates quality-adjusted phenotype scores across the
// observation set. Observations on markers without a weight table,
// or with a genotype absent from the marker's table, contribute
// zero influence and are skipped silently.
//
// Observations are visited in sorted rsid order so that repeated
// calls over the same set accumulate floating point terms in the
// same order and yield bit-identical results.
func (s *ScoringService) Score(observations map[string]models.Observation) RawScores {
	scores := RawScores{}
	for _, class := range phenotype.ClassifierOrder() {
		scores[class] = 0.0
	}

	rsids := make([]string, 0, len(observations))
	for rsid := range observations {
		rsids = append(rsids, rsid)
	}
	sort.Strings(rsids)

	for _, rsid := range rsids {
		observation := observations[rsid]

		table, hasWeights := s.Knowledgebase.WeightsFor(rsid)
		if !hasWeights {
			continue
		}

		classWeights, knownGenotype := table[observation.Genotype]
		if !knownGenotype {
			// unexpected allele combination - no influence
			continue
		}

		// reads deeper than the reference depth push the
		// multiplier above 1.0; shallow or uncertain calls
		// shrink it toward zero
		qualityFactor := observation.QualityScore * (float64(observation.ReadDepth) / quality.ReferenceReadDepth)

		for _, class := range phenotype.ClassifierOrder() {
			scores[class] += classWeights[class] * qualityFactor
		}
	}

	return scores
}

// Normalize converts raw scores into a probability distribution
// with a softmax transform. The exponentials are taken over the raw
// scores directly, without subtracting the maximum first : scores of
// very large magnitude overflow to +Inf and poison the distribution.
// That caveat is pinned in the tests rather than guarded against,
// since realistic weight tables keep raw scores within a few units
// of zero.
func (s *ScoringService) Normalize(raw RawScores) Probabilities {
	expScores := map[constants.Phenotype]float64{}
	total := 0.0
	for _, class := range phenotype.ClassifierOrder() {
		expScores[class] = math.Exp(raw[class])
		total += expScores[class]
	}

	probabilities := Probabilities{}
	for _, class := range phenotype.ClassifierOrder() {
		probabilities[class] = expScores[class] / total
	}

	return probabilities
}

// Predict transforms an observation set into a phenotype label, a
// probability distribution over the four classes, and one quality
// note per observed marker.
//
// An empty observation set yields the "unknown" sentinel with a
// uniform distribution; no reachable input raises an error.
func (s *ScoringService) Predict(observations map[string]models.Observation) (constants.Phenotype, Probabilities, map[string]constants.QualityAssessment) {
	if len(observations) == 0 {
		uniform := Probabilities{}
		for _, class := range phenotype.ClassifierOrder() {
			uniform[class] = 0.25
		}
		return phenotype.Unknown, uniform, map[string]constants.QualityAssessment{}
	}

	rawScores := s.Score(observations)
	probabilities := s.Normalize(rawScores)

	// first-max-wins over the fixed class order
	predicted := phenotype.ClassifierOrder()[0]
	for _, class := range phenotype.ClassifierOrder() {
		if probabilities[class] > probabilities[predicted] {
			predicted = class
		}
	}

	return predicted, probabilities, s.AssessQuality(observations)
}

// AssessQuality classifies every observation into one of the three
// fixed assessment bands.
func (s *ScoringService) AssessQuality(observations map[string]models.Observation) map[string]constants.QualityAssessment {
	assessments := map[string]constants.QualityAssessment{}
	for rsid, observation := range observations {
		assessments[rsid] = quality.Assess(observation.QualityScore, observation.ReadDepth)
	}
	return assessments
}
