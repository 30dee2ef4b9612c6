package deptbrain_test

import (
	"testing"

	"github.com/fwojciec/deptbrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := deptbrain.DefaultConfig()

	assert.Equal(t, deptbrain.ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "gpt-4.1-mini", cfg.LLMModel)
	assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
	assert.Equal(t, 4, cfg.TopK)
	assert.Equal(t, 0.85, cfg.MaxRAGDistance)
	assert.False(t, cfg.AllowOffTopic)
	assert.Equal(t, 60, cfg.RateLimitRequests)
	assert.Equal(t, 60, cfg.RateLimitWindowSeconds)
	assert.Equal(t, 400, cfg.MaxQuestionChars)
	assert.Equal(t, ":8000", cfg.ListenAddr)
	assert.NoError(t, cfg.Validate())
}

// No t.Parallel here: t.Setenv does not allow it.
func TestConfigFromEnv(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		t.Setenv("AI_PROVIDER", "Gemini")
		t.Setenv("GEMINI_API_KEY", "secret")
		t.Setenv("LLM_MODEL", "gemini-2.0-flash")
		t.Setenv("EMBEDDING_MODEL", "text-embedding-004")
		t.Setenv("TOP_K", "7")
		t.Setenv("MAX_RAG_DISTANCE", "1.2")
		t.Setenv("ALLOW_OFF_TOPIC", "true")
		t.Setenv("RATE_LIMIT_REQUESTS", "5")
		t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "10")
		t.Setenv("MAX_QUESTION_CHARS", "200")
		t.Setenv("LISTEN_ADDR", ":9000")

		cfg, err := deptbrain.ConfigFromEnv()
		require.NoError(t, err)

		assert.Equal(t, deptbrain.ProviderGemini, cfg.Provider)
		assert.Equal(t, "secret", cfg.APIKey())
		assert.Equal(t, "gemini-2.0-flash", cfg.LLMModel)
		assert.Equal(t, "text-embedding-004", cfg.EmbeddingModel)
		assert.Equal(t, 7, cfg.TopK)
		assert.Equal(t, 1.2, cfg.MaxRAGDistance)
		assert.True(t, cfg.AllowOffTopic)
		assert.Equal(t, 5, cfg.RateLimitRequests)
		assert.Equal(t, 10, cfg.RateLimitWindowSeconds)
		assert.Equal(t, 200, cfg.MaxQuestionChars)
		assert.Equal(t, ":9000", cfg.ListenAddr)
	})

	t.Run("malformed integer fails", func(t *testing.T) {
		t.Setenv("TOP_K", "four")

		_, err := deptbrain.ConfigFromEnv()
		assert.Equal(t, deptbrain.EINVALID, deptbrain.ErrorCode(err))
	})

	t.Run("malformed float fails", func(t *testing.T) {
		t.Setenv("MAX_RAG_DISTANCE", "close")

		_, err := deptbrain.ConfigFromEnv()
		assert.Equal(t, deptbrain.EINVALID, deptbrain.ErrorCode(err))
	})

	t.Run("malformed boolean fails", func(t *testing.T) {
		t.Setenv("ALLOW_OFF_TOPIC", "yep")

		_, err := deptbrain.ConfigFromEnv()
		assert.Equal(t, deptbrain.EINVALID, deptbrain.ErrorCode(err))
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := deptbrain.DefaultConfig()

	tests := []struct {
		name   string
		mutate func(*deptbrain.Config)
		ok     bool
	}{
		{"defaults", func(c *deptbrain.Config) {}, true},
		{"top_k lower bound", func(c *deptbrain.Config) { c.TopK = 1 }, true},
		{"top_k upper bound", func(c *deptbrain.Config) { c.TopK = 20 }, true},
		{"top_k zero", func(c *deptbrain.Config) { c.TopK = 0 }, false},
		{"top_k too large", func(c *deptbrain.Config) { c.TopK = 21 }, false},
		{"distance upper bound", func(c *deptbrain.Config) { c.MaxRAGDistance = 2 }, true},
		{"distance zero", func(c *deptbrain.Config) { c.MaxRAGDistance = 0 }, false},
		{"distance too large", func(c *deptbrain.Config) { c.MaxRAGDistance = 2.01 }, false},
		{"rate limit zero", func(c *deptbrain.Config) { c.RateLimitRequests = 0 }, false},
		{"window zero", func(c *deptbrain.Config) { c.RateLimitWindowSeconds = 0 }, false},
		{"question cap lower bound", func(c *deptbrain.Config) { c.MaxQuestionChars = 20 }, true},
		{"question cap too small", func(c *deptbrain.Config) { c.MaxQuestionChars = 19 }, false},
		{"gemini provider", func(c *deptbrain.Config) { c.Provider = deptbrain.ProviderGemini }, true},
		{"unknown provider", func(c *deptbrain.Config) { c.Provider = "anthropic" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, deptbrain.EINVALID, deptbrain.ErrorCode(err))
			}
		})
	}
}

func TestConfig_APIKey(t *testing.T) {
	t.Parallel()

	cfg := deptbrain.DefaultConfig()
	cfg.OpenAIAPIKey = "openai-key"
	cfg.GeminiAPIKey = "gemini-key"

	assert.Equal(t, "openai-key", cfg.APIKey())

	cfg.Provider = deptbrain.ProviderGemini
	assert.Equal(t, "gemini-key", cfg.APIKey())
}
