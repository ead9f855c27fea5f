package analysisService

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"iris/api/models"
	"iris/api/models/analysis"
	"iris/api/models/constants/zygosity"
	"iris/api/models/dtos"
	parsingService "iris/api/services/parsing"
	scoringService "iris/api/services/scoring"
)

type (
	AnalysisService struct {
		Initialized                 bool
		RequestChan                 chan analysis.Request
		RequestMap                  map[string]*analysis.Request
		RequestMapMux               sync.RWMutex
		ConcurrentFileAnalysisQueue chan bool
		Config                      *models.Config
		Parsing                     *parsingService.ParsingService
		Scoring                     *scoringService.ScoringService
	}
)

func NewAnalysisService(cfg *models.Config, parsing *parsingService.ParsingService, scoring *scoringService.ScoringService) *AnalysisService {
	az := &AnalysisService{
		Initialized:                 false,
		RequestChan:                 make(chan analysis.Request),
		RequestMap:                  map[string]*analysis.Request{},
		RequestMapMux:               sync.RWMutex{},
		ConcurrentFileAnalysisQueue: make(chan bool, cfg.Api.FileProcessingConcurrencyLevel),
		Config:                      cfg,
		Parsing:                     parsing,
		Scoring:                     scoring,
	}

	az.Init()

	return az
}

func (az *AnalysisService) Init() {
	// safeguard to prevent multiple initilizations
	if !az.Initialized {
		// spin up a go routine acting as a listener for
		// analysis request state updates. transitions arrive as
		// value snapshots and the listener is the only writer to
		// the request map, so concurrent readers never observe a
		// half-applied transition
		go func() {
			for analysisRequest := range az.RequestChan {
				if analysisRequest.State == analysis.Queued {
					fmt.Printf("Queueing a new prediction request for %s\n", analysisRequest.Filename)
				}

				snapshot := analysisRequest
				snapshot.UpdatedAt = time.Now().Format(time.RFC3339)
				az.RequestMapMux.Lock()
				az.RequestMap[snapshot.Id.String()] = &snapshot
				az.RequestMapMux.Unlock()
			}
		}()

		az.Initialized = true
	}
}

func (az *AnalysisService) FilenameAlreadyRunning(fileName string) bool {
	az.RequestMapMux.RLock()
	defer az.RequestMapMux.RUnlock()

	for _, request := range az.RequestMap {
		if request.Filename == fileName &&
			(request.State == analysis.Queued || request.State == analysis.Running) {
			return true
		}
	}
	return false
}

// QueueAnalysis registers a new prediction request for a server-side
// genotype file and schedules it on the bounded file-processing queue.
func (az *AnalysisService) QueueAnalysis(fileName string) *analysis.Request {
	newRequestState := analysis.Request{
		Id:        uuid.New(),
		Filename:  fileName,
		State:     analysis.Queued,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	az.RequestChan <- newRequestState

	go func(request analysis.Request) {
		// take a spot in the queue
		az.ConcurrentFileAnalysisQueue <- true
		// free up a spot in the queue
		defer func() {
			<-az.ConcurrentFileAnalysisQueue
		}()

		az.runAnalysis(request)
	}(newRequestState)

	// the caller gets its own snapshot of the queued state
	return &newRequestState
}

// runAnalysis works on a private copy of the request; every state
// transition is published to the listener as a new snapshot rather
// than mutated in place.
func (az *AnalysisService) runAnalysis(request analysis.Request) {
	fmt.Printf("Begin running %s !\n", request.Filename)
	request.State = analysis.Running
	az.RequestChan <- request

	path := filepath.Join(az.Config.Api.GenotypePath, request.Filename)
	observations, parseErr := az.Parsing.ParseGenotypeFile(path)
	if parseErr != nil {
		fmt.Printf("[%s] - Error analyzing %s : %v\n", time.Now(), request.Filename, parseErr)
		request.State = analysis.Error
		request.Message = parseErr.Error()
		az.RequestChan <- request
		return
	}

	request.Result = az.BuildPrediction(observations)
	request.State = analysis.Done
	request.Message = "Analysis complete"
	az.RequestChan <- request

	fmt.Printf("Done running %s !\n", request.Filename)
}

// BuildPrediction runs the scoring engine over an observation set
// and decorates the result with descriptive marker metadata.
func (az *AnalysisService) BuildPrediction(observations map[string]models.Observation) *dtos.Prediction {
	predicted, probabilities, qualityNotes := az.Scoring.Predict(observations)

	rsids := make([]string, 0, len(observations))
	for rsid := range observations {
		rsids = append(rsids, rsid)
	}
	sort.Strings(rsids)

	calls := make([]dtos.MarkerCall, 0, len(rsids))
	for _, rsid := range rsids {
		observation := observations[rsid]
		call := dtos.MarkerCall{
			Rsid:         rsid,
			Genotype:     observation.Genotype,
			Zygosity:     zygosity.ZygosityToString(observation.Zygosity),
			QualityScore: observation.QualityScore,
			ReadDepth:    observation.ReadDepth,
		}
		if marker, hasMetadata := az.Scoring.Knowledgebase.Lookup(rsid); hasMetadata {
			call.Gene = marker.Gene
			call.Chromosome = marker.Chromosome
			call.Position = marker.Position
			call.PopulationFrequency = marker.PopulationFrequency
			call.ClinicalSignificance = marker.ClinicalSignificance
		}
		calls = append(calls, call)
	}

	return &dtos.Prediction{
		Phenotype:     predicted,
		Probabilities: probabilities,
		QualityNotes:  qualityNotes,
		Calls:         calls,
	}
}

func (az *AnalysisService) GetAllRequests() []*analysis.Request {
	az.RequestMapMux.RLock()
	defer az.RequestMapMux.RUnlock()

	requests := make([]*analysis.Request, 0, len(az.RequestMap))
	for _, request := range az.RequestMap {
		requests = append(requests, request)
	}
	sort.Slice(requests, func(i, j int) bool {
		if requests[i].CreatedAt == requests[j].CreatedAt {
			return requests[i].Id.String() < requests[j].Id.String()
		}
		return requests[i].CreatedAt < requests[j].CreatedAt
	})
	return requests
}

func (az *AnalysisService) GetRequestById(id string) (*analysis.Request, bool) {
	az.RequestMapMux.RLock()
	defer az.RequestMapMux.RUnlock()

	request, ok := az.RequestMap[id]
	return request, ok
}

// PruneStaleRequests drops completed and errored requests older
// than the retention window, keeping the in-memory map bounded.
func (az *AnalysisService) PruneStaleRequests(retention time.Duration) int {
	az.RequestMapMux.Lock()
	defer az.RequestMapMux.Unlock()

	pruned := 0
	for id, request := range az.RequestMap {
		if request.State != analysis.Done && request.State != analysis.Error {
			continue
		}

		updatedAt, parseErr := time.Parse(time.RFC3339, request.UpdatedAt)
		if parseErr != nil {
			continue
		}

		if time.Since(updatedAt) > retention {
			delete(az.RequestMap, id)
			pruned++
		}
	}
	return pruned
}
