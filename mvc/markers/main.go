package markers

import (
	"fmt"
	"net/http"
	"time"

	linq "github.com/ahmetb/go-linq"
	"github.com/labstack/echo"

	"iris/api/contexts"
	"iris/api/models"
	"iris/api/models/dtos"
	errorDtos "iris/api/models/dtos/errors"
	"iris/api/mvc"
)

func MarkersGetOverview(c echo.Context) error {
	fmt.Printf("[%s] - MarkersGetOverview hit!\n", time.Now())
	kb, _ := mvc.RetrieveCommonElements(c)

	allMarkers := kb.Markers()

	// distribution of markers across chromosomes
	var chromosomeGroups []linq.Group
	linq.From(allMarkers).GroupByT(
		func(m models.Marker) string { return m.Chromosome },
		func(m models.Marker) string { return m.Rsid },
	).ToSlice(&chromosomeGroups)

	chromosomes := map[string]interface{}{}
	for _, group := range chromosomeGroups {
		chromosomes[fmt.Sprint(group.Key)] = len(group.Group)
	}

	// distribution of markers across genes
	var geneGroups []linq.Group
	linq.From(allMarkers).GroupByT(
		func(m models.Marker) string { return m.Gene },
		func(m models.Marker) string { return m.Rsid },
	).ToSlice(&geneGroups)

	genes := map[string]interface{}{}
	for _, group := range geneGroups {
		genes[fmt.Sprint(group.Key)] = len(group.Group)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"totalMarkers":  kb.TotalMarkers(),
		"scoredMarkers": kb.TotalScored(),
		"chromosomes":   chromosomes,
		"genes":         genes,
	})
}

func MarkersGetAll(c echo.Context) error {
	fmt.Printf("[%s] - MarkersGetAll hit!\n", time.Now())
	kb, _ := mvc.RetrieveCommonElements(c)

	results := []dtos.MarkerResponseData{}
	for _, marker := range kb.Markers() {
		_, scored := kb.WeightsFor(marker.Rsid)
		results = append(results, dtos.MarkerResponseData{
			Marker: marker,
			Scored: scored,
		})
	}

	return c.JSON(http.StatusOK, dtos.MarkersResponseDTO{
		Status:  http.StatusOK,
		Message: "Success",
		Count:   len(results),
		Results: results,
	})
}

func MarkersGetByRsid(c echo.Context) error {
	fmt.Printf("[%s] - MarkersGetByRsid hit!\n", time.Now())
	ic := c.(*contexts.IrisContext)
	kb, _ := mvc.RetrieveCommonElements(c)

	marker, hasMetadata := kb.Lookup(ic.Rsid)
	weights, scored := kb.WeightsFor(ic.Rsid)

	if !hasMetadata && !scored {
		return c.JSON(http.StatusNotFound,
			errorDtos.CreateSimpleNotFound(fmt.Sprintf("No marker found for rsid %s", ic.Rsid)))
	}

	result := dtos.MarkerResponseData{
		Scored: scored,
	}
	if hasMetadata {
		result.Marker = marker
	}

	if scored {
		// narrow to a single genotype's weights when requested
		if ic.Genotype != "" {
			if classWeights, knownGenotype := weights[ic.Genotype]; knownGenotype {
				result.Weights = map[string]models.PhenotypeWeights{ic.Genotype: classWeights}
			} else {
				return c.JSON(http.StatusNotFound,
					errorDtos.CreateSimpleNotFound(fmt.Sprintf("Marker %s has no weights for genotype %s", ic.Rsid, ic.Genotype)))
			}
		} else {
			result.Weights = weights
		}
	}

	return c.JSON(http.StatusOK, dtos.MarkersResponseDTO{
		Status:  http.StatusOK,
		Message: "Success",
		Count:   1,
		Results: []dtos.MarkerResponseData{result},
	})
}
