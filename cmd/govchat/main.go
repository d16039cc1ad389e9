package main

import (
	"context"
	"flag"
	"log"
	mathrand "math/rand"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"

	"govchat/internal/chatbot"
	"govchat/internal/classifier"
	"govchat/internal/config"
	"govchat/internal/conversation"
	"govchat/internal/domain"
	"govchat/internal/embedding/remote"
	"govchat/internal/embedding/tfidf"
	"govchat/internal/index"
	"govchat/internal/records"
	"govchat/internal/responder"
	"govchat/internal/tui"
	logx "govchat/pkg/logger"
)

// EnvConfig holds environment-sourced overrides (.env supported for
// local runs).
type EnvConfig struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	RedisURL    string `envconfig:"REDIS_URL"`
}

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/govchat/config.yaml if not provided)")
	flag.Parse()

	var env EnvConfig
	if err := envconfig.Process("", &env); err != nil {
		log.Fatalf("failed to process environment config: %v", err)
	}
	logx.Init(env.Environment)

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	kw, err := loadKeywords(cfg)
	if err != nil {
		log.Fatalf("failed to load keyword tables: %v", err)
	}
	cls := classifier.New(kw, classifier.Options{
		FollowUpMaxWords: cfg.Dialogue.FollowUpMaxWords,
		VagueMaxWords:    cfg.Dialogue.VagueMaxWords,
	})

	store, err := records.Open(cfg.Storage.Database)
	if err != nil {
		log.Fatalf("failed to open service database: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if n, err := store.Count(ctx); err != nil {
		log.Fatalf("failed to inspect service database: %v", err)
	} else if n == 0 {
		logx.Info().Msg("empty service database, seeding curated dataset")
		if err := store.Seed(ctx, records.StaticServices()); err != nil {
			log.Fatalf("failed to seed service database: %v", err)
		}
	}

	emb, err := buildEmbedder(cfg, kw)
	if err != nil {
		log.Fatalf("failed to build embedder: %v", err)
	}

	idx, err := prepareIndex(ctx, cfg, store, emb)
	if err != nil {
		log.Fatalf("failed to prepare similarity index: %v", err)
	}
	logx.Info().Int("documents", idx.DocumentCount()).Int("dimension", idx.Dimension()).Msg("similarity index ready")

	convs, err := buildConversationStore(cfg, env)
	if err != nil {
		log.Fatalf("failed to build conversation store: %v", err)
	}

	resp := responder.New(mathrand.New(mathrand.NewSource(time.Now().UnixNano())))
	bot, err := chatbot.New(cls, emb, idx, store, convs, resp, chatbot.Config{
		TopK:          cfg.Retrieval.TopK,
		MinSimilarity: cfg.Retrieval.MinSimilarity,
	})
	if err != nil {
		log.Fatalf("failed to assemble chatbot: %v", err)
	}

	model := tui.New(bot, uuid.NewString())
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("TUI error: %v", err)
	}
}

func loadKeywords(cfg *config.AppConfig) (*classifier.Keywords, error) {
	if cfg.KeywordsFile == "" {
		return classifier.DefaultKeywords(), nil
	}
	return classifier.LoadKeywords(cfg.KeywordsFile)
}

func buildEmbedder(cfg *config.AppConfig, kw *classifier.Keywords) (domain.Embedder, error) {
	switch cfg.Embedder.Type {
	case "tfidf", "":
		stop := make(map[string]struct{}, len(kw.Stopwords))
		for _, w := range kw.Stopwords {
			stop[w] = struct{}{}
		}
		return tfidf.NewEmbedder(cfg.Embedder.Dimension, stop), nil
	case "remote":
		rc := cfg.Embedder.Remote
		if rc == nil {
			rc = &config.RemoteEmbedderConfig{}
		}
		return remote.NewClient(remote.Config{
			BaseURL:   rc.BaseURL,
			APIKeyEnv: rc.APIKeyEnv,
			Model:     rc.Model,
			Timeout:   time.Duration(rc.TimeoutSecs) * time.Second,
			Dimension: cfg.Embedder.Dimension,
		})
	default:
		return nil, &unknownBackendError{kind: "embedder", name: cfg.Embedder.Type}
	}
}

// prepareIndex fits the embedder over the corpus, then either loads
// the persisted index (validating its dimension against the active
// embedder, a mismatch is fatal) or builds and persists a fresh one.
// A persisted index whose corpus fingerprint no longer matches the
// current corpus is stale: the dimension check alone cannot see a
// vocabulary change, so a stale index is rebuilt, not trusted.
func prepareIndex(ctx context.Context, cfg *config.AppConfig, store *records.Store, emb domain.Embedder) (*index.Index, error) {
	metaPath := filepath.Join(cfg.Storage.IndexDir, "metadata.json")
	if _, err := os.Stat(metaPath); err == nil {
		recs, err := store.List(ctx)
		if err != nil {
			return nil, err
		}
		corpus := make([]string, len(recs))
		for i, r := range recs {
			corpus[i] = records.EmbeddingText(r)
		}
		if len(corpus) > 0 {
			if err := emb.Prepare(corpus); err != nil {
				return nil, err
			}
		}
		idx, err := index.Load(cfg.Storage.IndexDir)
		if err != nil {
			return nil, err
		}
		if idx.Dimension() != emb.Dimension() {
			return nil, domain.ErrDimensionMismatch
		}
		if idx.Fingerprint() == index.CorpusFingerprint(corpus) {
			return idx, nil
		}
		logx.Warn().Str("dir", cfg.Storage.IndexDir).Msg("persisted index does not match current corpus, rebuilding")
	}
	idx, err := chatbot.BuildIndex(ctx, store, emb)
	if err != nil {
		return nil, err
	}
	if err := idx.Save(cfg.Storage.IndexDir); err != nil {
		logx.Warn().Err(err).Str("dir", cfg.Storage.IndexDir).Msg("could not persist index")
	}
	return idx, nil
}

func buildConversationStore(cfg *config.AppConfig, env EnvConfig) (domain.ConversationStore, error) {
	switch cfg.Conversations.Backend {
	case "memory", "":
		return conversation.NewMemory(), nil
	case "redis":
		if env.RedisURL == "" {
			return nil, &unknownBackendError{kind: "conversations", name: "redis (REDIS_URL not set)"}
		}
		opts, err := redis.ParseURL(env.RedisURL)
		if err != nil {
			return nil, err
		}
		ttl, err := time.ParseDuration(cfg.Conversations.TTL)
		if err != nil {
			return nil, err
		}
		return conversation.NewRedis(redis.NewClient(opts), ttl), nil
	default:
		return nil, &unknownBackendError{kind: "conversations", name: cfg.Conversations.Backend}
	}
}

type unknownBackendError struct {
	kind string
	name string
}

func (e *unknownBackendError) Error() string {
	return "unknown " + e.kind + " backend: " + e.name
}
