package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// StyleSourcePolicy selects what the gateway does when the live
// style-sourcing call fails. The two behaviors are mutually exclusive
// and must be picked per deployment.
type StyleSourcePolicy string

const (
	// PolicyStrict propagates style-sourcing failures to the HTTP caller.
	PolicyStrict StyleSourcePolicy = "strict"
	// PolicyStub substitutes a deterministic placeholder mood board.
	PolicyStub StyleSourcePolicy = "stub"
)

type Config struct {
	// Object storage
	InputBucket     string
	OutputBucket    string
	CredentialsFile string

	// Worker
	WorkerURL string

	// Style sourcing
	GeminiAPIKey      string
	GeminiModel       string
	StyleSourcePolicy StyleSourcePolicy

	// Local upload fallback
	UploadDir string
	StaticDir string

	// Server
	Port        string
	Environment string
	BaseURL     string
	LogLevel    string
}

func Load() (*Config, error) {
	_ = godotenv.Load(".env", ".env.local")

	cfg := &Config{
		InputBucket:     getEnv("GCS_INPUT_BUCKET", "renderspace-uploads"),
		OutputBucket:    getEnv("GCS_OUTPUT_BUCKET", "renderspace-models"),
		CredentialsFile: getEnv("GCS_CREDENTIALS_FILE", ""),

		WorkerURL: getEnv("WORKER_URL", ""),

		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		StyleSourcePolicy: StyleSourcePolicy(getEnv("STYLE_SOURCE_POLICY", string(PolicyStrict))),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
		StaticDir: getEnv("STATIC_DIR", "static"),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate rejects values that can never work. Credentials, the worker
// address and the Gemini key are allowed to be absent: the routes that
// need them answer with a configuration error instead.
func (c *Config) Validate() error {
	if c.InputBucket == "" {
		return fmt.Errorf("GCS_INPUT_BUCKET is required")
	}
	if c.OutputBucket == "" {
		return fmt.Errorf("GCS_OUTPUT_BUCKET is required")
	}
	switch c.StyleSourcePolicy {
	case PolicyStrict, PolicyStub:
	default:
		return fmt.Errorf("STYLE_SOURCE_POLICY must be %q or %q, got %q",
			PolicyStrict, PolicyStub, c.StyleSourcePolicy)
	}
	return nil
}

// WorkerConfig configures the reconstruction worker binary.
type WorkerConfig struct {
	OutputBucket    string
	CredentialsFile string
	SampleModelPath string
	DefaultExt      string

	Port        string
	Environment string
	LogLevel    string
}

func LoadWorker() (*WorkerConfig, error) {
	_ = godotenv.Load(".env", ".env.local")

	cfg := &WorkerConfig{
		OutputBucket:    getEnv("GCS_OUTPUT_BUCKET", "renderspace-models"),
		CredentialsFile: getEnv("GCS_CREDENTIALS_FILE", ""),
		SampleModelPath: getEnv("SAMPLE_MODEL_PATH", "static/models/demo.glb"),
		DefaultExt:      getEnv("OUTPUT_EXT", "glb"),

		Port:        getEnv("PORT", "8081"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	if cfg.OutputBucket == "" {
		return nil, fmt.Errorf("invalid configuration: GCS_OUTPUT_BUCKET is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
