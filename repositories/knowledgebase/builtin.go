package knowledgebase

import (
	"iris/api/models"
	"iris/api/models/constants"
	p "iris/api/models/constants/phenotype"
	pop "iris/api/models/constants/population"
)

// Built-in reference tables. The descriptive table intentionally
// covers more markers than the weight table : rs1393350 and
// rs12896399 carry metadata only and are never scored.

func builtinMarkers() map[string]models.Marker {
	return map[string]models.Marker{
		"rs12913832": {
			Rsid:            "rs12913832",
			Gene:            "HERC2",
			Chromosome:      "15",
			Position:        28365618,
			Function:        "Regulatory element for OCA2 expression",
			ReferenceAllele: "A",
			AlternateAllele: "G",
			PopulationFrequency: map[constants.PopulationCode]float64{
				pop.European: 0.78, pop.African: 0.10, pop.EastAsian: 0.15,
			},
			ClinicalSignificance: "Strongly associated with blue/brown eye color",
		},
		"rs1800407": {
			Rsid:            "rs1800407",
			Gene:            "OCA2",
			Chromosome:      "15",
			Position:        28033793,
			Function:        "Melanin biosynthesis",
			ReferenceAllele: "A",
			AlternateAllele: "G",
			PopulationFrequency: map[constants.PopulationCode]float64{
				pop.European: 0.65, pop.African: 0.20, pop.EastAsian: 0.25,
			},
			ClinicalSignificance: "Secondary determinant of eye color",
		},
		"rs1129038": {
			Rsid:            "rs1129038",
			Gene:            "HERC2",
			Chromosome:      "15",
			Position:        28356859,
			Function:        "HERC2 3' UTR variant",
			ReferenceAllele: "A",
			AlternateAllele: "G",
			PopulationFrequency: map[constants.PopulationCode]float64{
				pop.European: 0.74, pop.African: 0.12, pop.EastAsian: 0.16,
			},
			ClinicalSignificance: "In strong linkage with rs12913832",
		},
		"rs12203592": {
			Rsid:            "rs12203592",
			Gene:            "IRF4",
			Chromosome:      "6",
			Position:        396321,
			Function:        "IRF4 intron 4 enhancer",
			ReferenceAllele: "A",
			AlternateAllele: "G",
			PopulationFrequency: map[constants.PopulationCode]float64{
				pop.European: 0.17, pop.African: 0.02, pop.EastAsian: 0.01,
			},
			ClinicalSignificance: "Associated with green/hazel eye color",
		},
		"rs16891982": {
			Rsid:            "rs16891982",
			Gene:            "SLC45A2",
			Chromosome:      "5",
			Position:        33951693,
			Function:        "Membrane transport of melanin precursors",
			ReferenceAllele: "A",
			AlternateAllele: "G",
			PopulationFrequency: map[constants.PopulationCode]float64{
				pop.European: 0.97, pop.African: 0.05, pop.EastAsian: 0.02,
			},
			ClinicalSignificance: "Pigmentation variant influencing brown eye color",
		},

		// descriptive only - no weight tables yet
		"rs1393350": {
			Rsid:            "rs1393350",
			Gene:            "TYR",
			Chromosome:      "11",
			Position:        88911696,
			Function:        "Tyrosinase enzyme activity",
			ReferenceAllele: "G",
			AlternateAllele: "A",
			PopulationFrequency: map[constants.PopulationCode]float64{
				pop.European: 0.26, pop.African: 0.03, pop.EastAsian: 0.01,
			},
			ClinicalSignificance: "Tyrosinase variant; weighting not yet calibrated",
		},
		"rs12896399": {
			Rsid:            "rs12896399",
			Gene:            "SLC24A4",
			Chromosome:      "14",
			Position:        92773663,
			Function:        "Cation exchanger expression",
			ReferenceAllele: "G",
			AlternateAllele: "T",
			PopulationFrequency: map[constants.PopulationCode]float64{
				pop.European: 0.43, pop.African: 0.08, pop.EastAsian: 0.10,
			},
			ClinicalSignificance: "Associated with eye and hair colour variation",
		},
	}
}

func builtinWeights() map[string]models.WeightTable {
	return map[string]models.WeightTable{
		"rs12913832": { // HERC2 - Major determinant
			"AA": {p.Blue: 0.8, p.Brown: -0.6, p.Green: 0.2, p.Hazel: 0.1},
			"AG": {p.Blue: 0.4, p.Brown: -0.3, p.Green: 0.1, p.Hazel: 0.05},
			"GG": {p.Blue: -0.6, p.Brown: 0.8, p.Green: -0.2, p.Hazel: -0.1},
		},
		"rs1800407": { // OCA2 - Secondary determinant
			"AA": {p.Blue: 0.6, p.Brown: -0.4, p.Green: 0.3, p.Hazel: 0.2},
			"AG": {p.Blue: 0.3, p.Brown: -0.2, p.Green: 0.15, p.Hazel: 0.1},
			"GG": {p.Blue: -0.4, p.Brown: 0.6, p.Green: -0.2, p.Hazel: -0.1},
		},
		"rs1129038": { // HERC2 - Additional influence
			"AA": {p.Blue: 0.4, p.Brown: -0.3, p.Green: 0.2, p.Hazel: 0.1},
			"AG": {p.Blue: 0.2, p.Brown: -0.15, p.Green: 0.1, p.Hazel: 0.05},
			"GG": {p.Blue: -0.3, p.Brown: 0.4, p.Green: -0.1, p.Hazel: -0.05},
		},
		"rs12203592": { // IRF4 - Green/hazel influence
			"AA": {p.Blue: -0.1, p.Brown: -0.1, p.Green: 0.4, p.Hazel: 0.3},
			"AG": {p.Blue: -0.05, p.Brown: -0.05, p.Green: 0.2, p.Hazel: 0.15},
			"GG": {p.Blue: 0.1, p.Brown: 0.1, p.Green: -0.2, p.Hazel: -0.15},
		},
		"rs16891982": { // SLC45A2 - Brown influence
			"AA": {p.Blue: -0.3, p.Brown: 0.4, p.Green: -0.1, p.Hazel: -0.1},
			"AG": {p.Blue: -0.15, p.Brown: 0.2, p.Green: -0.05, p.Hazel: -0.05},
			"GG": {p.Blue: 0.2, p.Brown: -0.3, p.Green: 0.1, p.Hazel: 0.1},
		},
	}
}
