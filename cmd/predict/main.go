// Command predict analyzes a raw genotype file (AncestryDNA export
// format) and prints an eye colour prediction with its probability
// distribution and per-marker quality assessment.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"iris/api/models"
	"iris/api/models/constants"
	"iris/api/models/constants/population"
	"iris/api/models/constants/zygosity"
	"iris/api/repositories/knowledgebase"
	parsingService "iris/api/services/parsing"
	scoringService "iris/api/services/scoring"
)

var (
	BufferSize = 4096
	STDOUT     = bufio.NewWriterSize(os.Stdout, BufferSize)
)

func main() {
	defer STDOUT.Flush()

	var (
		inputPath         string
		knowledgebasePath string
		hideMarkers       bool
	)
	flag.StringVar(&inputPath, "input", "", "Local path to the raw genotype file (AncestryDNA export format; optionally gzipped)")
	flag.StringVar(&knowledgebasePath, "knowledgebase", "", "Optional: path to a knowledgebase override file (.yaml or .json)")
	flag.BoolVar(&hideMarkers, "hide-markers", false, "Suppress the per-marker genotype details")
	flag.Parse()

	if inputPath == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide --input")
	}

	var cfg models.Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalln(err)
	}
	if knowledgebasePath != "" {
		cfg.Knowledgebase.Path = knowledgebasePath
	}

	kb, kbErr := knowledgebase.NewRepository(&cfg)
	if kbErr != nil {
		log.Fatalln(kbErr)
	}
	log.Println("There are", kb.TotalScored(), "scored markers in the knowledgebase")

	parser := parsingService.NewParsingService(&cfg, kb)
	observations, parseErr := parser.ParseGenotypeFile(inputPath)
	if parseErr != nil {
		log.Fatalln(parseErr)
	}
	log.Println("Successfully parsed", len(observations), "relevant markers")

	if len(observations) == 0 {
		fmt.Fprintln(STDOUT, "No relevant marker data found in the file.")
	}

	scorer := scoringService.NewScoringService(kb)
	predicted, probabilities, qualityNotes := scorer.Predict(observations)

	if !hideMarkers && len(observations) > 0 {
		fmt.Fprintln(STDOUT, "\nExtracted markers and genotypes:")
		printMarkerDetails(STDOUT, kb, observations)
	}

	fmt.Fprintln(STDOUT, "\nPrediction Results:")
	fmt.Fprintf(STDOUT, "Predicted Eye Color: %s\n", capitalize(string(predicted)))

	fmt.Fprintln(STDOUT, "\nDetailed Probability Distribution:")
	printProbabilities(STDOUT, probabilities)

	if len(qualityNotes) > 0 {
		fmt.Fprintln(STDOUT, "\nQuality Assessment:")
		for _, rsid := range sortedKeys(qualityNotes) {
			fmt.Fprintf(STDOUT, "%s: %s\n", rsid, qualityNotes[rsid])
		}
	}
}

func printMarkerDetails(out *bufio.Writer, kb *knowledgebase.Repository, observations map[string]models.Observation) {
	rsids := make([]string, 0, len(observations))
	for rsid := range observations {
		rsids = append(rsids, rsid)
	}
	sort.Strings(rsids)

	for _, rsid := range rsids {
		observation := observations[rsid]
		marker, hasMetadata := kb.Lookup(rsid)
		if !hasMetadata {
			continue
		}

		fmt.Fprintf(out, "\nSNP: %s\n", rsid)
		fmt.Fprintf(out, "Gene: %s\n", marker.Gene)
		fmt.Fprintf(out, "Chromosome: %s\n", marker.Chromosome)
		fmt.Fprintf(out, "Position: %d\n", marker.Position)
		fmt.Fprintf(out, "Genotype: %s\n", observation.Genotype)
		fmt.Fprintf(out, "Zygosity: %s\n", zygosity.ZygosityToString(observation.Zygosity))
		fmt.Fprintf(out, "Quality Score: %.2f\n", observation.QualityScore)
		fmt.Fprintf(out, "Read Depth: %d\n", observation.ReadDepth)
		fmt.Fprintln(out, "Population Frequencies:")
		for _, code := range []constants.PopulationCode{population.European, population.African, population.EastAsian} {
			fmt.Fprintf(out, "  - %s: %.1f%%\n", population.PopulationCodeToString(code), marker.PopulationFrequency[code]*100)
		}
		fmt.Fprintf(out, "Clinical Significance: %s\n", marker.ClinicalSignificance)
	}
}

func printProbabilities(out *bufio.Writer, probabilities scoringService.Probabilities) {
	classes := make([]string, 0, len(probabilities))
	for class := range probabilities {
		classes = append(classes, string(class))
	}
	sort.Strings(classes)

	for _, class := range classes {
		fmt.Fprintf(out, "%-8s: %6.2f%%\n", capitalize(class), probabilities[constants.Phenotype(class)]*100)
	}
}

func sortedKeys(notes map[string]constants.QualityAssessment) []string {
	keys := make([]string, 0, len(notes))
	for key := range notes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func capitalize(text string) string {
	if text == "" {
		return text
	}
	return strings.ToUpper(text[:1]) + text[1:]
}
