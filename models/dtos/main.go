package dtos

import (
	"time"

	"iris/api/models/constants"
)

type PredictionResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    *Prediction `json:"data,omitempty"`
}

// Prediction is the caller-facing result of one prediction call:
// the predicted label, the probability distribution over the four
// phenotype classes, and one quality note per scored marker.
type Prediction struct {
	Phenotype     constants.Phenotype                    `json:"phenotype"`
	Probabilities map[constants.Phenotype]float64        `json:"probabilities"`
	QualityNotes  map[string]constants.QualityAssessment `json:"qualityNotes"`
	Calls         []MarkerCall                           `json:"calls"`
}

// MarkerCall pairs an observed genotype with the descriptive
// metadata of the marker it was read at, for display purposes.
type MarkerCall struct {
	Rsid       string `json:"rsid"`
	Gene       string `json:"gene"`
	Chromosome string `json:"chromosome"`
	Position   int    `json:"position"`

	Genotype     string  `json:"genotype"`
	Zygosity     string  `json:"zygosity"`
	QualityScore float64 `json:"qualityScore"`
	ReadDepth    int     `json:"readDepth"`

	PopulationFrequency  map[constants.PopulationCode]float64 `json:"populationFrequency,omitempty"`
	ClinicalSignificance string                               `json:"clinicalSignificance,omitempty"`
}

type MarkersResponseDTO struct {
	Status  int                  `json:"status"`
	Message string               `json:"message"`
	Count   int                  `json:"count"`
	Results []MarkerResponseData `json:"results"`
}

type MarkerResponseData struct {
	Marker  interface{} `json:"marker"`
	Scored  bool        `json:"scored"`
	Weights interface{} `json:"weights,omitempty"`
}

// -- general errors

type GeneralErrorResponseDto struct {
	Code      int            `json:"code"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Errors    []GeneralError `json:"errors"`
}

type GeneralError struct {
	Message string `json:"message"`
}
