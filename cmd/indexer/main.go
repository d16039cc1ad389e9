package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"govchat/internal/chatbot"
	"govchat/internal/classifier"
	"govchat/internal/config"
	"govchat/internal/embedding/tfidf"
	"govchat/internal/records"
	logx "govchat/pkg/logger"
)

// indexer builds the persisted similarity index from the service
// database, seeding the curated static dataset first when requested.
func main() {
	_ = godotenv.Load()

	var cfgPath string
	var seed bool
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file")
	flag.BoolVar(&seed, "seed", false, "Seed the database with the curated static dataset before indexing")
	flag.Parse()

	logx.Init("development")

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

	store, err := records.Open(cfg.Storage.Database)
	if err != nil {
		log.Fatalf("failed to open service database: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if seed {
		if err := store.Seed(ctx, records.StaticServices()); err != nil {
			log.Fatalf("failed to seed service database: %v", err)
		}
		logx.Info().Int("services", len(records.StaticServices())).Msg("database seeded")
	}

	kw := classifier.DefaultKeywords()
	if cfg.KeywordsFile != "" {
		kw, err = classifier.LoadKeywords(cfg.KeywordsFile)
		if err != nil {
			log.Fatalf("failed to load keyword tables: %v", err)
		}
	}
	stop := make(map[string]struct{}, len(kw.Stopwords))
	for _, w := range kw.Stopwords {
		stop[w] = struct{}{}
	}
	emb := tfidf.NewEmbedder(cfg.Embedder.Dimension, stop)

	idx, err := chatbot.BuildIndex(ctx, store, emb)
	if err != nil {
		log.Fatalf("failed to build index: %v", err)
	}
	if err := idx.Save(cfg.Storage.IndexDir); err != nil {
		log.Fatalf("failed to save index: %v", err)
	}
	logx.Info().
		Int("documents", idx.DocumentCount()).
		Int("dimension", idx.Dimension()).
		Str("dir", cfg.Storage.IndexDir).
		Msg("similarity index built")
}
