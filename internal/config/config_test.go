package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "tfidf", cfg.Embedder.Type)
	assert.Equal(t, 768, cfg.Embedder.Dimension)
	assert.Equal(t, 3, cfg.Retrieval.TopK)
	assert.Equal(t, 0.5, cfg.Retrieval.MinSimilarity)
	assert.Equal(t, "memory", cfg.Conversations.Backend)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := defaultConfig()
	cfg.Embedder.Dimension = 256
	cfg.Retrieval.MinSimilarity = 0.42
	cfg.Storage.Database = "/tmp/services.db"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFillsPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("retrieval:\n  top_k: 5\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Retrieval.TopK)
	assert.Equal(t, 0.5, cfg.Retrieval.MinSimilarity)
	assert.Equal(t, "tfidf", cfg.Embedder.Type)
	assert.Equal(t, "data/index", cfg.Storage.IndexDir)
	assert.Equal(t, "15m", cfg.Conversations.TTL)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("embedder: [broken"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestRemoteEmbedderDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("embedder:\n  type: remote\n  remote: {}\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Embedder.Remote)
	assert.Equal(t, "https://api.openai.com/v1", cfg.Embedder.Remote.BaseURL)
	assert.Equal(t, "OPENAI_API_KEY", cfg.Embedder.Remote.APIKeyEnv)
	assert.Equal(t, "text-embedding-3-small", cfg.Embedder.Remote.Model)
	assert.Equal(t, 30, cfg.Embedder.Remote.TimeoutSecs)
}
