package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RemoteEmbedderConfig holds configuration for the OpenAI-compatible
// dense embedder.
type RemoteEmbedderConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Model       string `yaml:"model"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// EmbedderConfig selects and configures the vectorizer implementation.
type EmbedderConfig struct {
	Type      string                `yaml:"type"`
	Dimension int                   `yaml:"dimension"`
	Remote    *RemoteEmbedderConfig `yaml:"remote,omitempty"`
}

// RetrievalConfig tunes similarity search.
type RetrievalConfig struct {
	TopK          int     `yaml:"top_k"`
	MinSimilarity float64 `yaml:"min_similarity"`
}

// DialogueConfig tunes the short-query dialogue heuristics.
type DialogueConfig struct {
	FollowUpMaxWords int `yaml:"follow_up_max_words"`
	VagueMaxWords    int `yaml:"vague_max_words"`
}

// StorageConfig locates the service database and the persisted index.
type StorageConfig struct {
	Database string `yaml:"database"`
	IndexDir string `yaml:"index_dir"`
}

// ConversationConfig selects the dialogue state backend.
type ConversationConfig struct {
	Backend string `yaml:"backend"`
	TTL     string `yaml:"ttl"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Embedder      EmbedderConfig     `yaml:"embedder"`
	Retrieval     RetrievalConfig    `yaml:"retrieval"`
	Dialogue      DialogueConfig     `yaml:"dialogue"`
	Storage       StorageConfig      `yaml:"storage"`
	Conversations ConversationConfig `yaml:"conversations"`
	KeywordsFile  string             `yaml:"keywords_file"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/govchat/config.yaml.
// If neither exists, it writes defaults to ~/.config/govchat/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "govchat", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{
		Embedder:      EmbedderConfig{Type: "tfidf", Dimension: 768},
		Retrieval:     RetrievalConfig{TopK: 3, MinSimilarity: 0.5},
		Dialogue:      DialogueConfig{FollowUpMaxWords: 5, VagueMaxWords: 4},
		Storage:       StorageConfig{Database: "data/services.db", IndexDir: "data/index"},
		Conversations: ConversationConfig{Backend: "memory", TTL: "15m"},
	}
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Embedder.Type == "" {
		cfg.Embedder.Type = "tfidf"
	}
	if cfg.Embedder.Dimension == 0 {
		cfg.Embedder.Dimension = 768
	}
	if cfg.Retrieval.TopK == 0 {
		cfg.Retrieval.TopK = 3
	}
	if cfg.Retrieval.MinSimilarity == 0 {
		cfg.Retrieval.MinSimilarity = 0.5
	}
	if cfg.Dialogue.FollowUpMaxWords == 0 {
		cfg.Dialogue.FollowUpMaxWords = 5
	}
	if cfg.Dialogue.VagueMaxWords == 0 {
		cfg.Dialogue.VagueMaxWords = 4
	}
	if cfg.Storage.Database == "" {
		cfg.Storage.Database = "data/services.db"
	}
	if cfg.Storage.IndexDir == "" {
		cfg.Storage.IndexDir = "data/index"
	}
	if cfg.Conversations.Backend == "" {
		cfg.Conversations.Backend = "memory"
	}
	if cfg.Conversations.TTL == "" {
		cfg.Conversations.TTL = "15m"
	}
	if cfg.Embedder.Type == "remote" && cfg.Embedder.Remote != nil {
		if cfg.Embedder.Remote.BaseURL == "" {
			cfg.Embedder.Remote.BaseURL = "https://api.openai.com/v1"
		}
		if cfg.Embedder.Remote.APIKeyEnv == "" {
			cfg.Embedder.Remote.APIKeyEnv = "OPENAI_API_KEY"
		}
		if cfg.Embedder.Remote.Model == "" {
			cfg.Embedder.Remote.Model = "text-embedding-3-small"
		}
		if cfg.Embedder.Remote.TimeoutSecs == 0 {
			cfg.Embedder.Remote.TimeoutSecs = 30
		}
	}
}
