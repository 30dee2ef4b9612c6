package deptbrain

import (
	"os"
	"strconv"
	"strings"
)

// Supported AI providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config carries every recognized setting. Zero values are not meaningful;
// construct through DefaultConfig or ConfigFromEnv.
type Config struct {
	Provider     string
	OpenAIAPIKey string
	GeminiAPIKey string

	LLMModel       string
	EmbeddingModel string

	VectorDBPath string
	FacultyFile  string
	NotesFile    string

	TopK           int
	MaxRAGDistance float64
	AllowOffTopic  bool

	ServiceAPIKey          string
	RateLimitRequests      int
	RateLimitWindowSeconds int
	MaxQuestionChars       int
	ListenAddr             string
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Provider:               ProviderOpenAI,
		LLMModel:               "gpt-4.1-mini",
		EmbeddingModel:         "text-embedding-3-small",
		VectorDBPath:           "./storage/deptbrain.db",
		FacultyFile:            "./data/faculty.json",
		NotesFile:              "./data/department_notes.json",
		TopK:                   4,
		MaxRAGDistance:         0.85,
		RateLimitRequests:      60,
		RateLimitWindowSeconds: 60,
		MaxQuestionChars:       400,
		ListenAddr:             ":8000",
	}
}

// ConfigFromEnv reads settings from the environment on top of the defaults.
// Unset variables keep their default; malformed values fail with EINVALID.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("AI_PROVIDER"); v != "" {
		cfg.Provider = strings.ToLower(strings.TrimSpace(v))
	}
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.ServiceAPIKey = os.Getenv("SERVICE_API_KEY")

	setString(&cfg.LLMModel, "LLM_MODEL")
	setString(&cfg.EmbeddingModel, "EMBEDDING_MODEL")
	setString(&cfg.VectorDBPath, "VECTOR_DB_PATH")
	setString(&cfg.FacultyFile, "FACULTY_FILE")
	setString(&cfg.NotesFile, "DEPARTMENT_NOTES_FILE")
	setString(&cfg.ListenAddr, "LISTEN_ADDR")

	if err := setInt(&cfg.TopK, "TOP_K"); err != nil {
		return cfg, err
	}
	if err := setFloat(&cfg.MaxRAGDistance, "MAX_RAG_DISTANCE"); err != nil {
		return cfg, err
	}
	if err := setBool(&cfg.AllowOffTopic, "ALLOW_OFF_TOPIC"); err != nil {
		return cfg, err
	}
	if err := setInt(&cfg.RateLimitRequests, "RATE_LIMIT_REQUESTS"); err != nil {
		return cfg, err
	}
	if err := setInt(&cfg.RateLimitWindowSeconds, "RATE_LIMIT_WINDOW_SECONDS"); err != nil {
		return cfg, err
	}
	if err := setInt(&cfg.MaxQuestionChars, "MAX_QUESTION_CHARS"); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	if c.Provider != ProviderOpenAI && c.Provider != ProviderGemini {
		return Errorf(EINVALID, "AI_PROVIDER must be %q or %q", ProviderOpenAI, ProviderGemini)
	}
	if c.TopK < 1 || c.TopK > 20 {
		return Errorf(EINVALID, "TOP_K must be between 1 and 20")
	}
	if c.MaxRAGDistance <= 0 || c.MaxRAGDistance > 2 {
		return Errorf(EINVALID, "MAX_RAG_DISTANCE must be greater than 0 and at most 2")
	}
	if c.RateLimitRequests < 1 {
		return Errorf(EINVALID, "RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.RateLimitWindowSeconds < 1 {
		return Errorf(EINVALID, "RATE_LIMIT_WINDOW_SECONDS must be at least 1")
	}
	if c.MaxQuestionChars < 20 {
		return Errorf(EINVALID, "MAX_QUESTION_CHARS must be at least 20")
	}
	return nil
}

// APIKey returns the credential for the selected provider, or an empty
// string when none is configured.
func (c Config) APIKey() string {
	if c.Provider == ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return Errorf(EINVALID, "%s must be an integer, got %q", key, v)
	}
	*dst = n
	return nil
}

func setFloat(dst *float64, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return Errorf(EINVALID, "%s must be a number, got %q", key, v)
	}
	*dst = f
	return nil
}

func setBool(dst *bool, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return Errorf(EINVALID, "%s must be a boolean, got %q", key, v)
	}
	*dst = b
	return nil
}
