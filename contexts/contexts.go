package contexts

import (
	"github.com/labstack/echo"

	"iris/api/models"
	"iris/api/repositories/knowledgebase"
	analysisService "iris/api/services/analysis"
	parsingService "iris/api/services/parsing"
	scoringService "iris/api/services/scoring"
)

type (
	// "Helper" Context to pass into routes that need
	//  the knowledgebase, service singletons and other variables
	IrisContext struct {
		echo.Context
		Config          *models.Config
		Knowledgebase   *knowledgebase.Repository
		ScoringService  *scoringService.ScoringService
		ParsingService  *parsingService.ParsingService
		AnalysisService *analysisService.AnalysisService

		// middleware-populated attributes
		Rsid     string
		Genotype string
		Filename string
	}
)
