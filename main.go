package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"

	"iris/api/contexts"
	im "iris/api/middleware"
	"iris/api/models"
	serviceInfoConst "iris/api/models/constants/service-info"
	markersMvc "iris/api/mvc/markers"
	predictionsMvc "iris/api/mvc/predictions"
	serviceInfoMvc "iris/api/mvc/service-info"
	"iris/api/repositories/knowledgebase"
	analysisService "iris/api/services/analysis"
	parsingService "iris/api/services/parsing"
	"iris/api/services/sanitation"
	scoringService "iris/api/services/scoring"
)

func main() {
	// Gather environment variables
	var cfg models.Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	fmt.Printf("Using : \n"+

		"\tDebug : %t \n\n"+

		"\tGenotype Directory Path : %s \n"+
		"\tFile Processing Concurrency Level : %d\n"+
		"\tLine Processing Concurrency Level : %d\n"+
		"\tRequest Retention (hours) : %d\n\n"+

		"\tKnowledgebase Path : %s\n"+
		"\tKnowledgebase Url : %s\n\n"+

		"Running on Port : %s\n",

		cfg.Debug,
		cfg.Api.GenotypePath,
		cfg.Api.FileProcessingConcurrencyLevel,
		cfg.Api.LineProcessingConcurrencyLevel,
		cfg.Api.RequestRetentionHours,
		cfg.Knowledgebase.Path, cfg.Knowledgebase.Url,
		cfg.Api.Port)
	// --

	// Instantiate Server
	e := echo.New()

	// Marker Knowledgebase:
	// -- static reference tables, constructed once before any
	//    concurrent access and never mutated afterwards
	kb, kbErr := knowledgebase.NewRepository(&cfg)
	if kbErr != nil {
		log.Fatalf("Failed to construct the marker knowledgebase : %v\n", kbErr)
	}
	fmt.Printf("Knowledgebase loaded : %d markers, %d scored\n", kb.TotalMarkers(), kb.TotalScored())

	// Service Singletons
	sc := scoringService.NewScoringService(kb)
	pa := parsingService.NewParsingService(&cfg, kb)
	az := analysisService.NewAnalysisService(&cfg, pa, sc)
	sanitation.NewSanitationService(az, &cfg)

	// Configure Server
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
	}))

	// -- Override handlers with "custom Iris" context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ic := &contexts.IrisContext{
				Context:         c,
				Config:          &cfg,
				Knowledgebase:   kb,
				ScoringService:  sc,
				ParsingService:  pa,
				AnalysisService: az,
			}
			return h(ic)
		}
	})

	// Begin MVC Routes
	// -- Root
	e.GET("/", func(c echo.Context) error {
		fmt.Printf("[%s] - Root hit!\n", time.Now())
		return c.JSON(http.StatusOK, serviceInfoConst.SERVICE_WELCOME)
	})

	// -- Service Info
	e.GET("/service-info", serviceInfoMvc.GetServiceInfo)

	// -- Markers
	e.GET("/markers/overview", markersMvc.MarkersGetOverview)
	e.GET("/markers", markersMvc.MarkersGetAll)
	e.GET("/markers/:rsid", markersMvc.MarkersGetByRsid,
		// middleware
		im.MandateRsidAttribute,
		im.ValidateOptionalGenotypeAttribute)

	// -- Predictions
	e.POST("/predictions", predictionsMvc.PredictionsPredict)
	e.GET("/predictions/run", predictionsMvc.PredictionsRun,
		// middleware
		im.MandateFileAttribute)
	e.GET("/predictions/requests", predictionsMvc.GetAllPredictionRequests)
	e.GET("/predictions/requests/:id", predictionsMvc.PredictionsGetRequestById)

	// Run
	e.Logger.Fatal(e.Start(":" + cfg.Api.Port))
}
