package markers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	linq "github.com/ahmetb/go-linq"
	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"

	"iris/api/contexts"
	"iris/api/models"
	"iris/api/models/dtos"
	"iris/api/repositories/knowledgebase"
	scoringService "iris/api/services/scoring"
)

func setUpIrisContext(t *testing.T, target string) (*contexts.IrisContext, *httptest.ResponseRecorder) {
	cfg := &models.Config{}
	kb, newRepoErr := knowledgebase.NewRepository(cfg)
	assert.NoError(t, newRepoErr)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return &contexts.IrisContext{
		Context:        e.NewContext(req, rec),
		Config:         cfg,
		Knowledgebase:  kb,
		ScoringService: scoringService.NewScoringService(kb),
	}, rec
}

func getMarkersResponseBody(t *testing.T, rec *httptest.ResponseRecorder) dtos.MarkersResponseDTO {
	var body dtos.MarkersResponseDTO
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestMarkersGetOverview(t *testing.T) {
	ic, rec := setUpIrisContext(t, "/markers/overview")

	assert.NoError(t, MarkersGetOverview(ic))
	assert.Equal(t, http.StatusOK, rec.Code)

	var overview map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &overview))

	// descriptive markers outnumber the scored ones
	totalMarkers := overview["totalMarkers"].(float64)
	scoredMarkers := overview["scoredMarkers"].(float64)
	assert.Greater(t, totalMarkers, scoredMarkers)

	// the HERC2/OCA2 cluster puts several markers on chromosome 15
	chromosomes := overview["chromosomes"].(map[string]interface{})
	assert.Equal(t, float64(3), chromosomes["15"])

	genes := overview["genes"].(map[string]interface{})
	assert.Contains(t, genes, "HERC2")
	assert.Contains(t, genes, "IRF4")
}

func TestMarkersGetAll(t *testing.T) {
	ic, rec := setUpIrisContext(t, "/markers")

	assert.NoError(t, MarkersGetAll(ic))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := getMarkersResponseBody(t, rec)
	assert.Equal(t, http.StatusOK, body.Status)
	assert.Equal(t, len(body.Results), body.Count)
	assert.Greater(t, body.Count, 0)

	scoredCount := linq.From(body.Results).CountWithT(func(result dtos.MarkerResponseData) bool {
		return result.Scored
	})
	assert.Greater(t, scoredCount, 0)
	assert.Less(t, scoredCount, body.Count)
}

func TestMarkersGetByRsid(t *testing.T) {
	t.Run("returns a scored marker with its full weight table", func(t *testing.T) {
		ic, rec := setUpIrisContext(t, "/markers/rs12913832")
		ic.Rsid = "rs12913832"

		assert.NoError(t, MarkersGetByRsid(ic))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := getMarkersResponseBody(t, rec)
		assert.Equal(t, 1, body.Count)
		assert.True(t, body.Results[0].Scored)

		weights := body.Results[0].Weights.(map[string]interface{})
		assert.Contains(t, weights, "AA")
		assert.Contains(t, weights, "AG")
		assert.Contains(t, weights, "GG")
	})

	t.Run("narrows the weight table to a requested genotype", func(t *testing.T) {
		ic, rec := setUpIrisContext(t, "/markers/rs12913832?genotype=GG")
		ic.Rsid = "rs12913832"
		ic.Genotype = "GG"

		assert.NoError(t, MarkersGetByRsid(ic))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := getMarkersResponseBody(t, rec)
		weights := body.Results[0].Weights.(map[string]interface{})
		assert.Len(t, weights, 1)
		assert.Contains(t, weights, "GG")
	})

	t.Run("returns a descriptive-only marker without weights", func(t *testing.T) {
		ic, rec := setUpIrisContext(t, "/markers/rs1393350")
		ic.Rsid = "rs1393350"

		assert.NoError(t, MarkersGetByRsid(ic))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := getMarkersResponseBody(t, rec)
		assert.False(t, body.Results[0].Scored)
		assert.Nil(t, body.Results[0].Weights)
	})

	t.Run("404s for an unknown rsid", func(t *testing.T) {
		ic, rec := setUpIrisContext(t, "/markers/rs99999999")
		ic.Rsid = "rs99999999"

		assert.NoError(t, MarkersGetByRsid(ic))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("404s for a genotype the marker has no weights for", func(t *testing.T) {
		ic, rec := setUpIrisContext(t, "/markers/rs12913832?genotype=CT")
		ic.Rsid = "rs12913832"
		ic.Genotype = "CT"

		assert.NoError(t, MarkersGetByRsid(ic))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
