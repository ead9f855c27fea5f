package mvc

import (
	"github.com/labstack/echo"

	"iris/api/contexts"
	"iris/api/repositories/knowledgebase"
	scoringService "iris/api/services/scoring"
)

func RetrieveCommonElements(c echo.Context) (*knowledgebase.Repository, *scoringService.ScoringService) {
	ic := c.(*contexts.IrisContext)
	return ic.Knowledgebase, ic.ScoringService
}
