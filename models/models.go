package models

import (
	"iris/api/models/constants"
)

var GenotypeFileHeaders = []string{"rsid", "chromosome", "position", "genotype"}

// Marker is the static, descriptive record for a known SNP. Markers
// are assembled once at startup and never mutated afterwards.
type Marker struct {
	Rsid                 string                               `json:"rsid" yaml:"rsid"`
	Gene                 string                               `json:"gene" yaml:"gene"`
	Chromosome           string                               `json:"chromosome" yaml:"chromosome"`
	Position             int                                  `json:"position" yaml:"position"`
	Function             string                               `json:"function" yaml:"function"`
	ReferenceAllele      string                               `json:"referenceAllele" yaml:"referenceAllele"`
	AlternateAllele      string                               `json:"alternateAllele" yaml:"alternateAllele"`
	PopulationFrequency  map[constants.PopulationCode]float64 `json:"populationFrequency" yaml:"populationFrequency"`
	ClinicalSignificance string                               `json:"clinicalSignificance" yaml:"clinicalSignificance"`
}

// PhenotypeWeights holds one signed weight per phenotype class.
// Weights need not sum to zero.
type PhenotypeWeights map[constants.Phenotype]float64

// WeightTable maps a two-letter genotype (combinations of a marker's
// reference and alternate alleles, e.g. "AA", "AG", "GG") to its
// phenotype weights.
type WeightTable map[string]PhenotypeWeights

// Observation is one genotype call read from a raw genotype file,
// together with its quality metrics. Immutable once constructed.
type Observation struct {
	Rsid         string             `json:"rsid"`
	Genotype     string             `json:"genotype"`
	Allele1      string             `json:"allele1"`
	Allele2      string             `json:"allele2"`
	Zygosity     constants.Zygosity `json:"zygosity"`
	QualityScore float64            `json:"qualityScore"`
	ReadDepth    int                `json:"readDepth"`
}
