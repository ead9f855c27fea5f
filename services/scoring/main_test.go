package scoringService

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"iris/api/models"
	"iris/api/models/constants"
	p "iris/api/models/constants/phenotype"
	q "iris/api/models/constants/quality"
	"iris/api/models/constants/zygosity"
	"iris/api/repositories/knowledgebase"
)

func setUpScoringService(t *testing.T) *ScoringService {
	kb, kbErr := knowledgebase.NewRepository(&models.Config{})
	assert.NoError(t, kbErr)

	return NewScoringService(kb)
}

func makeObservation(rsid string, genotype string, qualityScore float64, readDepth int) models.Observation {
	allele1 := string(genotype[0])
	allele2 := string(genotype[1])
	return models.Observation{
		Rsid:         rsid,
		Genotype:     genotype,
		Allele1:      allele1,
		Allele2:      allele2,
		Zygosity:     zygosity.FromAlleles(allele1, allele2),
		QualityScore: qualityScore,
		ReadDepth:    readDepth,
	}
}

func TestPredictWithoutObservations(t *testing.T) {
	scorer := setUpScoringService(t)

	predicted, probabilities, qualityNotes := scorer.Predict(map[string]models.Observation{})

	assert.Equal(t, p.Unknown, predicted)
	assert.Len(t, probabilities, 4)
	for _, class := range p.ClassifierOrder() {
		assert.Equal(t, 0.25, probabilities[class])
	}
	assert.Empty(t, qualityNotes)
	assert.NotNil(t, qualityNotes)
}

func TestProbabilitiesFormADistribution(t *testing.T) {
	scorer := setUpScoringService(t)

	observationSets := []map[string]models.Observation{
		{
			"rs12913832": makeObservation("rs12913832", "AA", 0.99, 30),
		},
		{
			"rs12913832": makeObservation("rs12913832", "GG", 0.95, 40),
			"rs1800407":  makeObservation("rs1800407", "AG", 0.80, 25),
		},
		{
			"rs12913832": makeObservation("rs12913832", "AA", 0.99, 30),
			"rs1800407":  makeObservation("rs1800407", "AA", 0.99, 30),
			"rs1129038":  makeObservation("rs1129038", "AG", 0.92, 18),
			"rs12203592": makeObservation("rs12203592", "GG", 0.70, 12),
			"rs16891982": makeObservation("rs16891982", "AG", 0.99, 60),
		},
	}

	for _, observations := range observationSets {
		_, probabilities, _ := scorer.Predict(observations)

		sum := 0.0
		for _, class := range p.ClassifierOrder() {
			probability := probabilities[class]
			assert.Greater(t, probability, 0.0)
			assert.Less(t, probability, 1.0)
			sum += probability
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestUnknownMarkerContributesZero(t *testing.T) {
	scorer := setUpScoringService(t)

	baseline := map[string]models.Observation{
		"rs12913832": makeObservation("rs12913832", "AG", 0.99, 30),
	}
	withUnknown := map[string]models.Observation{
		"rs12913832": makeObservation("rs12913832", "AG", 0.99, 30),
		"rs9999999":  makeObservation("rs9999999", "CC", 0.99, 30),
	}

	assert.Equal(t, scorer.Score(baseline), scorer.Score(withUnknown))
}

func TestMetadataOnlyMarkerContributesZero(t *testing.T) {
	scorer := setUpScoringService(t)

	// rs1393350 carries descriptive metadata but no weight table
	_, hasMetadata := scorer.Knowledgebase.Lookup("rs1393350")
	assert.True(t, hasMetadata)
	_, scored := scorer.Knowledgebase.WeightsFor("rs1393350")
	assert.False(t, scored)

	baseline := map[string]models.Observation{
		"rs1800407": makeObservation("rs1800407", "AA", 0.99, 30),
	}
	withMetadataOnly := map[string]models.Observation{
		"rs1800407": makeObservation("rs1800407", "AA", 0.99, 30),
		"rs1393350": makeObservation("rs1393350", "GA", 0.99, 30),
	}

	assert.Equal(t, scorer.Score(baseline), scorer.Score(withMetadataOnly))
}

func TestUnseenGenotypeContributesZero(t *testing.T) {
	scorer := setUpScoringService(t)

	// "TT" is not a key in the rs12913832 weight table
	observations := map[string]models.Observation{
		"rs12913832": makeObservation("rs12913832", "TT", 0.99, 30),
	}

	scores := scorer.Score(observations)
	for _, class := range p.ClassifierOrder() {
		assert.Equal(t, 0.0, scores[class])
	}
}

func TestScoreSingleHighQualityObservation(t *testing.T) {
	scorer := setUpScoringService(t)

	// multiplier = 0.99 * (30 / 30) = 0.99
	observations := map[string]models.Observation{
		"rs12913832": makeObservation("rs12913832", "AA", 0.99, 30),
	}

	scores := scorer.Score(observations)
	assert.InDelta(t, 0.792, scores[p.Blue], 1e-9)
	assert.InDelta(t, -0.594, scores[p.Brown], 1e-9)
	assert.InDelta(t, 0.198, scores[p.Green], 1e-9)
	assert.InDelta(t, 0.099, scores[p.Hazel], 1e-9)

	predicted, probabilities, qualityNotes := scorer.Predict(observations)
	assert.Equal(t, p.Blue, predicted)
	assert.Greater(t, probabilities[p.Blue], probabilities[p.Brown])
	assert.Equal(t, q.HighQuality, qualityNotes["rs12913832"])
}

func TestScoreDampedLowQualityObservation(t *testing.T) {
	scorer := setUpScoringService(t)

	// multiplier = 0.5 * (10 / 30) = 0.1667 - damped toward zero
	observations := map[string]models.Observation{
		"rs12913832": makeObservation("rs12913832", "GG", 0.5, 10),
	}

	multiplier := 0.5 * (10.0 / 30.0)
	scores := scorer.Score(observations)
	assert.InDelta(t, -0.6*multiplier, scores[p.Blue], 1e-9)
	assert.InDelta(t, 0.8*multiplier, scores[p.Brown], 1e-9)
	assert.InDelta(t, -0.2*multiplier, scores[p.Green], 1e-9)
	assert.InDelta(t, -0.1*multiplier, scores[p.Hazel], 1e-9)

	predicted, _, qualityNotes := scorer.Predict(observations)
	assert.Equal(t, p.Brown, predicted)

	// the call quality gate fires before the read depth gate
	assert.Equal(t, q.LowQuality, qualityNotes["rs12913832"])
}

func TestHighDepthReadsExceedUnitMultiplier(t *testing.T) {
	scorer := setUpScoringService(t)

	// 60x coverage doubles the reference depth; the multiplier is
	// deliberately uncapped
	observations := map[string]models.Observation{
		"rs12913832": makeObservation("rs12913832", "AA", 1.0, 60),
	}

	scores := scorer.Score(observations)
	assert.InDelta(t, 1.6, scores[p.Blue], 1e-9)
}

func TestQualityAssessmentBands(t *testing.T) {
	scorer := setUpScoringService(t)

	observations := map[string]models.Observation{
		"rs12913832": makeObservation("rs12913832", "AA", 0.85, 30),
		"rs1800407":  makeObservation("rs1800407", "AG", 0.95, 15),
		"rs1129038":  makeObservation("rs1129038", "GG", 0.95, 25),
		"rs12203592": makeObservation("rs12203592", "AG", 0.85, 10),
	}

	qualityNotes := scorer.AssessQuality(observations)
	assert.Equal(t, q.LowQuality, qualityNotes["rs12913832"])
	assert.Equal(t, q.LowCoverage, qualityNotes["rs1800407"])
	assert.Equal(t, q.HighQuality, qualityNotes["rs1129038"])
	// low quality wins over low coverage
	assert.Equal(t, q.LowQuality, qualityNotes["rs12203592"])
}

func TestNormalizeZeroScoresIsUniform(t *testing.T) {
	scorer := setUpScoringService(t)

	probabilities := scorer.Normalize(RawScores{
		p.Blue: 0, p.Brown: 0, p.Green: 0, p.Hazel: 0,
	})

	for _, class := range p.ClassifierOrder() {
		assert.Equal(t, 0.25, probabilities[class])
	}
}

func TestNormalizePreservesScoreOrdering(t *testing.T) {
	scorer := setUpScoringService(t)

	probabilities := scorer.Normalize(RawScores{
		p.Blue: -1.2, p.Brown: 2.5, p.Green: 0.3, p.Hazel: 0.3,
	})

	assert.Greater(t, probabilities[p.Brown], probabilities[p.Green])
	assert.Greater(t, probabilities[p.Green], probabilities[p.Blue])
	assert.Equal(t, probabilities[p.Green], probabilities[p.Hazel])
}

// The softmax deliberately exponentiates raw scores with no
// max-subtraction. Scores of extreme magnitude overflow to +Inf and
// the distribution degenerates to NaN - a documented caveat of the
// design, pinned here so any hardening shows up as a test change.
func TestNormalizeOverflowsOnExtremeScores(t *testing.T) {
	scorer := setUpScoringService(t)

	probabilities := scorer.Normalize(RawScores{
		p.Blue: 1000, p.Brown: 0, p.Green: 0, p.Hazel: 0,
	})

	assert.True(t, math.IsNaN(probabilities[p.Blue]))
	assert.Equal(t, 0.0, probabilities[p.Brown])
}

func TestPredictTieBreaksLexicographically(t *testing.T) {
	scorer := setUpScoringService(t)

	// an unseen genotype leaves all four accumulators at zero, so
	// all four probabilities tie at 0.25 and the first class in the
	// fixed order wins
	observations := map[string]models.Observation{
		"rs12913832": makeObservation("rs12913832", "TT", 0.99, 30),
	}

	predicted, probabilities, _ := scorer.Predict(observations)
	assert.Equal(t, p.Blue, predicted)
	for _, class := range p.ClassifierOrder() {
		assert.Equal(t, 0.25, probabilities[class])
	}
}

func TestPredictIsIdempotent(t *testing.T) {
	scorer := setUpScoringService(t)

	observations := map[string]models.Observation{
		"rs12913832": makeObservation("rs12913832", "AG", 0.97, 28),
		"rs1800407":  makeObservation("rs1800407", "GG", 0.91, 33),
		"rs12203592": makeObservation("rs12203592", "AA", 0.88, 45),
	}

	predictedFirst, probabilitiesFirst, notesFirst := scorer.Predict(observations)
	predictedSecond, probabilitiesSecond, notesSecond := scorer.Predict(observations)

	assert.Equal(t, predictedFirst, predictedSecond)
	assert.Equal(t, probabilitiesFirst, probabilitiesSecond)
	assert.Equal(t, notesFirst, notesSecond)
}

func TestScoresAreTypedPerClass(t *testing.T) {
	scorer := setUpScoringService(t)

	scores := scorer.Score(map[string]models.Observation{})
	assert.Len(t, scores, 4)
	for _, class := range p.ClassifierOrder() {
		_, present := scores[constants.Phenotype(class)]
		assert.True(t, present)
	}
}
