package knowledgebase

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Jeffail/gabs"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"

	"iris/api/models"
	"iris/api/models/constants/phenotype"
)

/*
	External knowledgebase documents keep the marker set and its
	weight tables pure data : operators can recalibrate or extend
	the tables without a code change. Two formats are accepted,
	YAML (local files) and JSON (local files or remote payloads).
*/

type yamlDocument struct {
	Markers map[string]models.Marker                 `yaml:"markers"`
	Weights map[string]map[string]map[string]float64 `yaml:"weights"`
}

func (r *Repository) loadFile(path string) error {
	content, readErr := os.ReadFile(path)
	if readErr != nil {
		return readErr
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return r.loadYamlDocument(content)
	case ".json":
		return r.loadJsonDocument(content)
	default:
		return fmt.Errorf("unsupported knowledgebase file extension '%s'", filepath.Ext(path))
	}
}

func (r *Repository) loadYamlDocument(content []byte) error {
	var document yamlDocument
	if unmarshalErr := yaml.Unmarshal(content, &document); unmarshalErr != nil {
		return unmarshalErr
	}

	markers := map[string]models.Marker{}
	for rsid, marker := range document.Markers {
		marker.Rsid = rsid
		markers[rsid] = marker
	}

	weights := map[string]models.WeightTable{}
	for rsid, rawTable := range document.Weights {
		table, castErr := castWeightTable(rsid, rawTable)
		if castErr != nil {
			return castErr
		}
		weights[rsid] = table
	}

	r.markers = markers
	r.weights = weights
	return nil
}

func (r *Repository) loadJsonDocument(content []byte) error {
	jsonParsed, parseErr := gabs.ParseJSON(content)
	if parseErr != nil {
		return parseErr
	}

	markers := map[string]models.Marker{}
	markerChildren, markersErr := jsonParsed.S("markers").ChildrenMap()
	if markersErr != nil {
		return fmt.Errorf("knowledgebase document is missing a 'markers' object : %v", markersErr)
	}
	for rsid, child := range markerChildren {
		var marker models.Marker
		if decodeErr := mapstructure.Decode(child.Data(), &marker); decodeErr != nil {
			return fmt.Errorf("marker %s : %v", rsid, decodeErr)
		}
		marker.Rsid = rsid
		markers[rsid] = marker
	}

	weights := map[string]models.WeightTable{}
	weightChildren, weightsErr := jsonParsed.S("weights").ChildrenMap()
	if weightsErr != nil {
		return fmt.Errorf("knowledgebase document is missing a 'weights' object : %v", weightsErr)
	}
	for rsid, tableChild := range weightChildren {
		rawTable := map[string]map[string]float64{}
		if decodeErr := mapstructure.Decode(tableChild.Data(), &rawTable); decodeErr != nil {
			return fmt.Errorf("weight table %s : %v", rsid, decodeErr)
		}
		table, castErr := castWeightTable(rsid, rawTable)
		if castErr != nil {
			return castErr
		}
		weights[rsid] = table
	}

	r.markers = markers
	r.weights = weights
	return nil
}

func castWeightTable(rsid string, rawTable map[string]map[string]float64) (models.WeightTable, error) {
	table := models.WeightTable{}
	for genotype, rawWeights := range rawTable {
		classWeights := models.PhenotypeWeights{}
		for class, weight := range rawWeights {
			typedClass, castErr := phenotype.CastToPhenotype(class)
			if castErr != nil {
				return nil, fmt.Errorf("weight table %s genotype %s : unknown phenotype '%s'", rsid, genotype, class)
			}
			classWeights[typedClass] = weight
		}
		if len(classWeights) != len(phenotype.ClassifierOrder()) {
			return nil, fmt.Errorf("weight table %s genotype %s : expected a weight for each of the %d phenotype classes, found %d",
				rsid, genotype, len(phenotype.ClassifierOrder()), len(classWeights))
		}
		table[strings.ToUpper(genotype)] = classWeights
	}
	return table, nil
}
