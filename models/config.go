package models

type Config struct {
	Debug          bool   `envconfig:"IRIS_DEBUG" default:"false"`
	SemVer         string `envconfig:"IRIS_SEMVER" default:"0.0.1"`
	ServiceContact string `envconfig:"IRIS_SERVICE_CONTACT" default:"mailto:iris@c3g.ca"`
	Api            struct {
		Port                           string `envconfig:"IRIS_API_INTERNAL_PORT" default:"5000"`
		GenotypePath                   string `envconfig:"IRIS_API_GENOTYPE_PATH" default:"/data/genotypes"`
		FileProcessingConcurrencyLevel int    `envconfig:"IRIS_API_FILE_PROC_CONCURRENCY_LEVEL" default:"2"`
		LineProcessingConcurrencyLevel int    `envconfig:"IRIS_API_LINE_PROC_CONCURRENCY_LEVEL" default:"8"`
		RequestRetentionHours          int    `envconfig:"IRIS_API_REQUEST_RETENTION_HOURS" default:"24"`
	}
	Knowledgebase struct {
		Path string `envconfig:"IRIS_KB_PATH"`
		Url  string `envconfig:"IRIS_KB_URL"`
	}
}
