package sanitation

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"iris/api/models"
	analysisService "iris/api/services/analysis"
)

type (
	SanitationService struct {
		Initialized bool
		Analysis    *analysisService.AnalysisService
		Config      *models.Config
	}
)

func NewSanitationService(az *analysisService.AnalysisService, cfg *models.Config) *SanitationService {
	ss := &SanitationService{
		Initialized: false,
		Analysis:    az,
		Config:      cfg,
	}

	ss.Init()

	return ss
}

func (ss *SanitationService) Init() {
	// initialization if necessary
	if !ss.Initialized {
		// - spin up a go routine that will periodically
		//   run through a series of steps to ensure
		//   the system is "sanitary" ; here that means keeping the
		//   in-memory prediction request map bounded by dropping
		//   completed and errored requests past their retention
		go func() {
			// setup cron job
			s := gocron.NewScheduler(time.UTC)

			retention := time.Duration(ss.Config.Api.RequestRetentionHours) * time.Hour

			s.Every(1).Hours().Do(func() {
				fmt.Printf("[%s] - Running prediction request cleanup..\n", time.Now())

				pruned := ss.Analysis.PruneStaleRequests(retention)
				if pruned > 0 {
					fmt.Printf("[%s] - Pruned %d stale prediction request(s)..\n", time.Now(), pruned)
				}
			})

			s.StartBlocking()
		}()

		ss.Initialized = true
	}
}
