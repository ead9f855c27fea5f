package knowledgebase

import (
	"fmt"
	"sort"
	"strings"

	"iris/api/models"
	"iris/api/utils"
)

/*
	Read-only lookup of known markers and their per-genotype
	phenotype weight tables. Constructed once at startup and
	never mutated afterwards, so concurrent readers are safe
	without locking.

	The descriptive marker table and the weight table are kept
	separate: a marker can carry descriptive
	metadata without a weight table, in which case it is never
	scored. Only rsids present in the weight table form the
	universe the genotype-file parser extracts.
*/

type Repository struct {
	markers map[string]models.Marker
	weights map[string]models.WeightTable
}

func NewRepository(cfg *models.Config) (*Repository, error) {
	r := &Repository{
		markers: builtinMarkers(),
		weights: builtinWeights(),
	}

	// an external knowledgebase document replaces the built-in
	// tables wholesale; adding a marker is a data change only
	if cfg != nil && cfg.Knowledgebase.Url != "" {
		payload, fetchErr := utils.FetchWithRetry(cfg.Knowledgebase.Url)
		if fetchErr != nil {
			return nil, fetchErr
		}
		if loadErr := r.loadJsonDocument(payload); loadErr != nil {
			return nil, loadErr
		}
	} else if cfg != nil && cfg.Knowledgebase.Path != "" {
		if loadErr := r.loadFile(cfg.Knowledgebase.Path); loadErr != nil {
			return nil, loadErr
		}
	}

	if validationErr := r.validate(); validationErr != nil {
		return nil, validationErr
	}

	return r, nil
}

// Lookup returns the descriptive metadata for a marker. Absence of
// an identifier is a valid state, not an error.
func (r *Repository) Lookup(rsid string) (models.Marker, bool) {
	marker, ok := r.markers[rsid]
	return marker, ok
}

// WeightsFor returns the per-genotype weight table for a marker, if
// the marker belongs to the scored universe.
func (r *Repository) WeightsFor(rsid string) (models.WeightTable, bool) {
	table, ok := r.weights[rsid]
	return table, ok
}

// ScoredUniverse lists the rsids that carry weight tables, sorted.
// These are the only markers worth extracting from a genotype file.
func (r *Repository) ScoredUniverse() []string {
	rsids := make([]string, 0, len(r.weights))
	for rsid := range r.weights {
		rsids = append(rsids, rsid)
	}
	sort.Strings(rsids)
	return rsids
}

// Markers lists all descriptive records, sorted by rsid.
func (r *Repository) Markers() []models.Marker {
	all := make([]models.Marker, 0, len(r.markers))
	for _, marker := range r.markers {
		all = append(all, marker)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Rsid < all[j].Rsid
	})
	return all
}

func (r *Repository) TotalMarkers() int {
	return len(r.markers)
}

func (r *Repository) TotalScored() int {
	return len(r.weights)
}

// validate enforces the weight table invariant: every genotype key
// is a two-letter combination of the owning marker's reference and
// alternate alleles.
func (r *Repository) validate() error {
	for rsid, table := range r.weights {
		marker, hasMetadata := r.markers[rsid]
		for genotype := range table {
			if len(genotype) != 2 {
				return fmt.Errorf("marker %s : weight table genotype '%s' is not a two-letter allele pair", rsid, genotype)
			}
			if !hasMetadata {
				// weight-only markers cannot be checked against
				// reference/alternate letters
				continue
			}
			for _, letter := range strings.Split(genotype, "") {
				if letter != marker.ReferenceAllele && letter != marker.AlternateAllele {
					return fmt.Errorf(
						"marker %s : weight table genotype '%s' uses allele '%s', expected only '%s' or '%s'",
						rsid, genotype, letter, marker.ReferenceAllele, marker.AlternateAllele)
				}
			}
		}
	}
	return nil
}
