package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/leofalp/llmreport/core/parse"
	"github.com/leofalp/llmreport/internal/utils"
	"github.com/leofalp/llmreport/providers/sink/s3sink"
)

const (
	DefaultTemperature    = 0.7
	DefaultMaxTokens      = 4000
	DefaultModel          = "abacus-gpt5"
	DefaultOutputDir      = "./output"
	DefaultAttachmentsDir = "./data/to_llm/attachments"
	DefaultPromptFile     = "./data/to_llm/prompt/prompt_v8.txt"
	DefaultPostgresTable  = "llmreport_artifacts"
	DefaultLogLevel       = "standard"
)

// DefaultExpectedFiles are the attachments the correlation prompt refers to.
var DefaultExpectedFiles = []string{
	"keyword_search_results_27977577.json",
	"vector_search_results_27977577.json",
	"Correlation_Report.md",
}

// Abacus holds the hosted deployment credentials.
type Abacus struct {
	APIKey          string
	DeploymentID    string
	DeploymentToken string
	BaseURL         string
}

// Config is the resolved process configuration.
type Config struct {
	Abacus Abacus

	Temperature float64
	MaxTokens   int
	Model       string

	OutputDir      string
	AttachmentsDir string
	PromptFile     string
	ExpectedFiles  []string

	// S3 is used only when S3.Bucket is set.
	S3 s3sink.Config

	// PostgresURL enables the Postgres sink when non-empty.
	PostgresURL   string
	PostgresTable string

	// CacheSize is the LRU capacity of the response cache; 0 disables it.
	CacheSize      int
	RequestTimeout time.Duration
	Salvage        bool

	// LogLevel is the request logging detail: minimal, standard or verbose.
	LogLevel string
}

// S3Enabled reports whether an S3 bucket was configured.
func (c Config) S3Enabled() bool {
	return c.S3.Bucket != ""
}

// PostgresEnabled reports whether a Postgres URL was configured.
func (c Config) PostgresEnabled() bool {
	return c.PostgresURL != ""
}

// Load reads envFiles (".env" when none are given) into the environment and
// resolves the Config. A missing env file is not an error; already-set
// variables are never overridden.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv resolves the Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Abacus: Abacus{
			APIKey:          os.Getenv("ABACUS_API_KEY"),
			DeploymentID:    os.Getenv("ABACUS_DEPLOYMENT_ID"),
			DeploymentToken: os.Getenv("ABACUS_DEPLOYMENT_TOKEN"),
			BaseURL:         os.Getenv("ABACUS_BASE_URL"),
		},
		Model:          utils.FirstNonEmpty(os.Getenv("LLMREPORT_MODEL"), os.Getenv("DEFAULT_MODEL"), DefaultModel),
		OutputDir:      utils.FirstNonEmpty(os.Getenv("LLMREPORT_OUTPUT_DIR"), DefaultOutputDir),
		AttachmentsDir: utils.FirstNonEmpty(os.Getenv("LLMREPORT_ATTACHMENTS_DIR"), DefaultAttachmentsDir),
		PromptFile:     utils.FirstNonEmpty(os.Getenv("LLMREPORT_PROMPT_FILE"), DefaultPromptFile),
		ExpectedFiles:  splitList(os.Getenv("LLMREPORT_EXPECTED_FILES"), DefaultExpectedFiles),
		S3: s3sink.Config{
			Endpoint:  os.Getenv("LLMREPORT_S3_ENDPOINT"),
			Region:    os.Getenv("LLMREPORT_S3_REGION"),
			AccessKey: os.Getenv("LLMREPORT_S3_ACCESS_KEY"),
			SecretKey: os.Getenv("LLMREPORT_S3_SECRET_KEY"),
			Bucket:    os.Getenv("LLMREPORT_S3_BUCKET"),
			Prefix:    os.Getenv("LLMREPORT_S3_PREFIX"),
		},
		PostgresURL:   utils.FirstNonEmpty(os.Getenv("LLMREPORT_DATABASE_URL"), os.Getenv("DATABASE_URL")),
		PostgresTable: utils.FirstNonEmpty(os.Getenv("LLMREPORT_PG_TABLE"), DefaultPostgresTable),
		LogLevel:      utils.FirstNonEmpty(os.Getenv("LLMREPORT_REQUEST_LOG"), DefaultLogLevel),
	}

	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	cfg.Temperature = envAs("LLMREPORT_TEMPERATURE", DefaultTemperature, collect)
	cfg.MaxTokens = envAs("LLMREPORT_MAX_TOKENS", DefaultMaxTokens, collect)
	cfg.CacheSize = envAs("LLMREPORT_CACHE_SIZE", 0, collect)
	cfg.Salvage = envAs("LLMREPORT_SALVAGE", false, collect)
	cfg.S3.UseSSL = envAs("LLMREPORT_S3_USE_SSL", true, collect)

	if raw := strings.TrimSpace(os.Getenv("LLMREPORT_REQUEST_TIMEOUT")); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			collect(fmt.Errorf("LLMREPORT_REQUEST_TIMEOUT: %w", err))
		}
		cfg.RequestTimeout = timeout
	}

	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		collect(fmt.Errorf("LLMREPORT_TEMPERATURE: %v out of range [0, 2]", cfg.Temperature))
	}
	if cfg.MaxTokens <= 0 {
		collect(fmt.Errorf("LLMREPORT_MAX_TOKENS: must be positive, got %d", cfg.MaxTokens))
	}
	if cfg.CacheSize < 0 {
		collect(fmt.Errorf("LLMREPORT_CACHE_SIZE: must not be negative, got %d", cfg.CacheSize))
	}

	if len(errs) > 0 {
		return cfg, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return cfg, nil
}

// envAs parses the named variable with parse.ParseStringAs, returning def when
// the variable is unset or blank. Parse failures are passed to report and the
// default is kept.
func envAs[T any](name string, def T, report func(error)) T {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return def
	}

	value, err := parse.ParseStringAs[T](raw)
	if err != nil {
		report(fmt.Errorf("%s: %w", name, err))
		return def
	}
	return value
}

// splitList splits a comma-separated value, dropping blank entries. An empty
// value yields a copy of def.
func splitList(raw string, def []string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), def...)
	}
	return out
}
