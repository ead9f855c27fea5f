package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout Iris and it's
	associated services.
*/
type Phenotype string
type PopulationCode string
type QualityAssessment string

type Zygosity int
