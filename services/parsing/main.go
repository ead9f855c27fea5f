package parsingService

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"iris/api/models"
	"iris/api/models/constants/zygosity"
	"iris/api/repositories/knowledgebase"
	"iris/api/utils"
)

// raw consumer exports (AncestryDNA style) carry no sequencing
// quality columns; assume a clean call at the reference depth
const (
	DefaultQualityScore = 0.99
	DefaultReadDepth    = 30
)

var GenotypeFileExtensions = []string{".txt", ".tsv", ".csv", ".gz"}

type (
	ParsingService struct {
		Config        *models.Config
		Knowledgebase *knowledgebase.Repository
	}
)

func NewParsingService(cfg *models.Config, kb *knowledgebase.Repository) *ParsingService {
	ps := &ParsingService{
		Config:        cfg,
		Knowledgebase: kb,
	}

	return ps
}

func HasSupportedExtension(fileName string) bool {
	dotIndex := strings.LastIndex(fileName, ".")
	if dotIndex < 0 {
		return false
	}
	return utils.StringInSlice(strings.ToLower(fileName[dotIndex:]), GenotypeFileExtensions)
}

// ParseGenotypeFile reads a whitespace-delimited raw genotype file
// and extracts an observation per marker of the scored universe.
// Gzip-compressed exports are handled transparently.
func (ps *ParsingService) ParseGenotypeFile(path string) (map[string]models.Observation, error) {
	file, openErr := os.Open(path)
	if openErr != nil {
		return nil, openErr
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		gzReader, gzErr := gzip.NewReader(file)
		if gzErr != nil {
			return nil, gzErr
		}
		defer gzReader.Close()
		reader = gzReader
	}

	return ps.ParseGenotypeStream(reader)
}

// ParseGenotypeStream tokenizes the export line by line. Rows are
// independent of one another, so line parsing is fanned out over a
// bounded worker group.
func (ps *ParsingService) ParseGenotypeStream(reader io.Reader) (map[string]models.Observation, error) {
	lines := []string{}
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, scanErr
	}

	concurrency := 1
	if ps.Config != nil && ps.Config.Api.LineProcessingConcurrencyLevel > 0 {
		concurrency = ps.Config.Api.LineProcessingConcurrencyLevel
	}

	var (
		observations    = map[string]models.Observation{}
		observationRows = map[string]int{}
		observationsMux = sync.Mutex{}
	)

	g := new(errgroup.Group)
	g.SetLimit(concurrency)
	for lineIndex, line := range lines {
		lineIndex, line := lineIndex, line
		g.Go(func() error {
			observation, ok := ps.ParseLine(line)
			if !ok {
				// comments, malformed rows and markers outside the
				// scored universe are skipped, not surfaced
				return nil
			}

			observationsMux.Lock()
			// a repeated rsid resolves to its last row, matching
			// sequential parse order regardless of which worker
			// finishes first
			if existingRow, seen := observationRows[observation.Rsid]; !seen || lineIndex > existingRow {
				observations[observation.Rsid] = observation
				observationRows[observation.Rsid] = lineIndex
			}
			observationsMux.Unlock()
			return nil
		})
	}
	if waitErr := g.Wait(); waitErr != nil {
		return nil, waitErr
	}

	return observations, nil
}

// ParseLine tokenizes one export row :
//
//	rsid  chromosome  position  genotype  [qualityScore]  [readDepth]
//
// Only rows whose rsid belongs to the scored universe produce an
// observation.
func (ps *ParsingService) ParseLine(line string) (models.Observation, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return models.Observation{}, false
	}

	fields := strings.Fields(trimmed)
	if len(fields) < 4 {
		return models.Observation{}, false
	}

	rsid := fields[0]
	if _, scored := ps.Knowledgebase.WeightsFor(rsid); !scored {
		return models.Observation{}, false
	}

	genotype := strings.ToUpper(fields[3])
	if len(genotype) != 2 {
		return models.Observation{}, false
	}

	qualityScore := float64(DefaultQualityScore)
	if len(fields) > 4 {
		if parsed, parseErr := strconv.ParseFloat(fields[4], 64); parseErr == nil {
			qualityScore = parsed
		}
	}

	readDepth := DefaultReadDepth
	if len(fields) > 5 {
		if parsed, parseErr := strconv.Atoi(fields[5]); parseErr == nil {
			readDepth = parsed
		}
	}

	allele1 := string(genotype[0])
	allele2 := string(genotype[1])

	return models.Observation{
		Rsid:         rsid,
		Genotype:     genotype,
		Allele1:      allele1,
		Allele2:      allele2,
		Zygosity:     zygosity.FromAlleles(allele1, allele2),
		QualityScore: qualityScore,
		ReadDepth:    readDepth,
	}, true
}
