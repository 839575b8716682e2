package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Feed names identify the three record classes. They double as metric labels
// and as the feed column of ingest_runs rows.
const (
	FeedContributions = "schedule_a"
	FeedPayments      = "schedule_e"
	FeedSummary       = "summary"
)

// FeedNames lists the feeds in processing order.
var FeedNames = []string{FeedContributions, FeedPayments, FeedSummary}

// Default resources: Oakland campaign finance disclosures on Socrata.
var defaultFeedURLs = map[string]string{
	FeedContributions: "http://data.oaklandnet.com/resource/3xq4-ermg.json",
	FeedPayments:      "http://data.oaklandnet.com/resource/bvfu-nq99.json",
	FeedSummary:       "http://data.oaklandnet.com/resource/rsxe-vvuw.json",
}

// Loader captures everything the loader process needs at startup.
type Loader struct {
	DatabaseURL string
	LogLevel    string
	MetricsAddr string // empty disables the metrics listener
	PageSize    int
	FeedURLs    map[string]string
}

// feedsFile is the shape of the optional FEEDS_FILE YAML document.
type feedsFile struct {
	Feeds map[string]string `yaml:"feeds"`
}

// FromEnv builds the loader config from environment variables so main stays
// lean. FEEDS_FILE may point at a YAML file overriding individual feed URLs.
func FromEnv() (Loader, error) {
	cfg := Loader{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
		MetricsAddr: os.Getenv("METRICS_ADDR"),
		PageSize:    1000,
		FeedURLs:    make(map[string]string, len(defaultFeedURLs)),
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "postgres://localhost:5432/opendisclosure?sslmode=disable"
	}
	if raw := os.Getenv("SOCRATA_PAGE_SIZE"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return Loader{}, fmt.Errorf("invalid SOCRATA_PAGE_SIZE %q", raw)
		}
		cfg.PageSize = size
	}
	for name, url := range defaultFeedURLs {
		cfg.FeedURLs[name] = url
	}

	if path := os.Getenv("FEEDS_FILE"); path != "" {
		if err := applyFeedsFile(&cfg, path); err != nil {
			return Loader{}, err
		}
	}
	return cfg, nil
}

func applyFeedsFile(cfg *Loader, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read feeds file: %w", err)
	}
	var doc feedsFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse feeds file: %w", err)
	}
	for name, url := range doc.Feeds {
		if _, known := cfg.FeedURLs[name]; !known {
			return fmt.Errorf("feeds file references unknown feed %q", name)
		}
		cfg.FeedURLs[name] = url
	}
	return nil
}
