package predictions

import (
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo"

	"iris/api/contexts"
	"iris/api/models/analysis"
	"iris/api/models/dtos"
	errorDtos "iris/api/models/dtos/errors"
)

// PredictionsRun queues an asynchronous prediction over a genotype
// file already present in the configured genotype directory.
func PredictionsRun(c echo.Context) error {
	fmt.Printf("[%s] - PredictionsRun hit!\n", time.Now())
	ic := c.(*contexts.IrisContext)
	az := ic.AnalysisService

	// check if there is an already existing analysis request state
	if az.FilenameAlreadyRunning(ic.Filename) {
		return c.JSON(http.StatusBadRequest, analysis.RequestResponseDTO{
			Filename: ic.Filename,
			State:    analysis.Error,
			Message:  "File already being analyzed..",
		})
	}

	newRequestState := az.QueueAnalysis(ic.Filename)

	return c.JSON(http.StatusOK, analysis.RequestResponseDTO{
		Id:       newRequestState.Id,
		Filename: newRequestState.Filename,
		State:    newRequestState.State,
		Message:  "Successfully queued..",
	})
}

func GetAllPredictionRequests(c echo.Context) error {
	fmt.Printf("[%s] - GetAllPredictionRequests hit!\n", time.Now())
	az := c.(*contexts.IrisContext).AnalysisService

	return c.JSON(http.StatusOK, az.GetAllRequests())
}

func PredictionsGetRequestById(c echo.Context) error {
	fmt.Printf("[%s] - PredictionsGetRequestById hit!\n", time.Now())
	az := c.(*contexts.IrisContext).AnalysisService

	id := c.Param("id")
	if _, parseErr := uuid.Parse(id); parseErr != nil {
		return c.JSON(http.StatusBadRequest,
			errorDtos.CreateSimpleBadRequest(fmt.Sprintf("Invalid request id %s", id)))
	}

	request, ok := az.GetRequestById(id)
	if !ok {
		return c.JSON(http.StatusNotFound,
			errorDtos.CreateSimpleNotFound(fmt.Sprintf("No prediction request found for id %s", id)))
	}

	return c.JSON(http.StatusOK, request)
}

// PredictionsPredict performs a synchronous prediction over an
// uploaded genotype file.
func PredictionsPredict(c echo.Context) error {
	fmt.Printf("[%s] - PredictionsPredict hit!\n", time.Now())
	ic := c.(*contexts.IrisContext)

	fileHeader, formErr := c.FormFile("genotypes")
	if formErr != nil {
		return c.JSON(http.StatusBadRequest,
			errorDtos.CreateSimpleBadRequest("Missing 'genotypes' form file!"))
	}

	file, openErr := fileHeader.Open()
	if openErr != nil {
		return c.JSON(http.StatusInternalServerError,
			errorDtos.CreateSimpleInternalServerError(openErr.Error()))
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".gz") {
		gzReader, gzErr := gzip.NewReader(file)
		if gzErr != nil {
			return c.JSON(http.StatusBadRequest,
				errorDtos.CreateSimpleBadRequest(gzErr.Error()))
		}
		defer gzReader.Close()
		reader = gzReader
	}

	observations, parseErr := ic.ParsingService.ParseGenotypeStream(reader)
	if parseErr != nil {
		return c.JSON(http.StatusInternalServerError,
			errorDtos.CreateSimpleInternalServerError(parseErr.Error()))
	}

	return c.JSON(http.StatusOK, dtos.PredictionResponse{
		Status:  http.StatusOK,
		Message: "Success",
		Data:    ic.AnalysisService.BuildPrediction(observations),
	})
}
