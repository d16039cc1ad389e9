package chatbot

import (
	"context"
	"errors"
	"fmt"

	"govchat/internal/classifier"
	"govchat/internal/domain"
	"govchat/internal/index"
	"govchat/internal/records"
	"govchat/internal/responder"
	logx "govchat/pkg/logger"
)

// Config carries the retrieval tuning knobs. MinSimilarity applies to
// the distance-derived similarity score the index reports and is
// inclusive on the accept side: a top score of exactly the threshold
// is answered, anything below falls back to the no-results reply.
type Config struct {
	TopK          int
	MinSimilarity float64
}

// DefaultConfig returns the stock retrieval settings.
func DefaultConfig() Config {
	return Config{TopK: 3, MinSimilarity: 0.5}
}

// Bot composes the query-understanding, retrieval and response
// synthesis stages into a single Answer call. All components except
// the conversation store are read-only after construction.
type Bot struct {
	classifier    *classifier.Classifier
	embedder      domain.Embedder
	index         *index.Index
	records       domain.RecordStore
	conversations domain.ConversationStore
	responder     *responder.Responder
	cfg           Config
}

// New assembles a bot from its components.
func New(cls *classifier.Classifier, emb domain.Embedder, idx *index.Index, recs domain.RecordStore, convs domain.ConversationStore, resp *responder.Responder, cfg Config) (*Bot, error) {
	if idx.Dimension() != emb.Dimension() {
		return nil, fmt.Errorf("%w: index %d, embedder %d", domain.ErrDimensionMismatch, idx.Dimension(), emb.Dimension())
	}
	if cfg.TopK <= 0 {
		cfg.TopK = 3
	}
	if cfg.MinSimilarity <= 0 {
		cfg.MinSimilarity = 0.5
	}
	return &Bot{
		classifier:    cls,
		embedder:      emb,
		index:         idx,
		records:       recs,
		conversations: convs,
		responder:     resp,
		cfg:           cfg,
	}, nil
}

// Answer processes one user turn for the given conversation and
// returns the structured reply. No-match and ambiguous conditions are
// regular response types, never errors.
func (b *Bot) Answer(ctx context.Context, conversationID, text string) (domain.Response, error) {
	analysis := b.classifier.Analyze(text)
	logx.Debug().
		Str("conversation", conversationID).
		Str("language", string(analysis.Language)).
		Str("intent", string(analysis.Intent)).
		Str("topic", string(analysis.Topic)).
		Msg("query analyzed")

	resp, resolved, err := b.respond(ctx, conversationID, analysis)
	if err != nil {
		return domain.Response{}, err
	}

	turn := domain.Turn{User: text, Bot: resp.Text, Analysis: analysis}
	if err := b.conversations.AppendTurn(ctx, conversationID, turn, resolved); err != nil {
		return domain.Response{}, fmt.Errorf("record conversation %s: %w", conversationID, err)
	}
	return resp, nil
}

// respond picks the response branch. The short-circuit order is fixed:
// greeting, farewell, follow-up, vague, then retrieval.
func (b *Bot) respond(ctx context.Context, conversationID string, analysis domain.QueryAnalysis) (domain.Response, *domain.ServiceRecord, error) {
	if b.classifier.IsGreeting(analysis.Original) {
		return b.responder.Greeting(analysis.Language), nil, nil
	}
	if b.classifier.IsFarewell(analysis.Original) {
		return b.responder.Farewell(analysis.Language), nil, nil
	}
	if b.classifier.IsFollowUp(analysis.Original) {
		state, err := b.conversations.Get(ctx, conversationID)
		if err != nil {
			return domain.Response{}, nil, fmt.Errorf("load conversation %s: %w", conversationID, err)
		}
		if state.LastService == nil {
			return b.responder.MissingContext(analysis.Language), nil, nil
		}
		return b.responder.FollowUp(*state.LastService, analysis.Intent, analysis.Language), nil, nil
	}
	if b.classifier.IsVague(analysis.Original) {
		return b.responder.Clarification(analysis.Language), nil, nil
	}
	return b.retrieve(ctx, analysis)
}

// retrieve embeds the query, searches the index and renders the best
// match, falling back to no-results below the similarity threshold.
func (b *Bot) retrieve(ctx context.Context, analysis domain.QueryAnalysis) (domain.Response, *domain.ServiceRecord, error) {
	if b.index.DocumentCount() == 0 {
		return b.responder.NoResults(analysis.Language), nil, nil
	}
	vec, err := b.embedder.Embed(analysis.Normalized)
	if err != nil {
		return domain.Response{}, nil, fmt.Errorf("embed query: %w", err)
	}
	// A zero query vector shares no vocabulary with the corpus; it
	// would tie with every document, so treat it as no match.
	if !hasSignal(vec) {
		return b.responder.NoResults(analysis.Language), nil, nil
	}
	results, err := b.index.Search(vec, b.cfg.TopK)
	if err != nil {
		return domain.Response{}, nil, fmt.Errorf("search index: %w", err)
	}
	if len(results) == 0 || results[0].Score < b.cfg.MinSimilarity {
		return b.responder.NoResults(analysis.Language), nil, nil
	}

	top := results[0]
	rec, err := b.records.Get(ctx, top.Document.ID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrMalformedRecord) {
			logx.Warn().Err(err).Str("service", top.Document.ID).Msg("top match unusable")
			return b.responder.NoResults(analysis.Language), nil, nil
		}
		return domain.Response{}, nil, fmt.Errorf("get service %s: %w", top.Document.ID, err)
	}
	logx.Debug().Str("service", rec.ID).Float64("score", top.Score).Msg("service resolved")
	return b.responder.Service(*rec, analysis.Intent, analysis.Language), rec, nil
}

// BuildIndex fits the embedder over the record corpus, embeds the
// corpus in one batch and indexes one document per service. The built
// index carries the corpus fingerprint, so a persisted copy can later
// be recognized as stale. The index is complete before it is returned,
// so callers may share it across concurrent readers.
func BuildIndex(ctx context.Context, store domain.RecordStore, emb domain.Embedder) (*index.Index, error) {
	recs, err := store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load record corpus: %w", err)
	}
	corpus := make([]string, len(recs))
	for i, r := range recs {
		corpus[i] = records.EmbeddingText(r)
	}
	if len(corpus) > 0 {
		if err := emb.Prepare(corpus); err != nil {
			return nil, fmt.Errorf("prepare embedder: %w", err)
		}
	}
	idx, err := index.New(emb.Dimension())
	if err != nil {
		return nil, err
	}
	vecs, err := emb.EmbedBatch(corpus)
	if err != nil {
		return nil, fmt.Errorf("embed record corpus: %w", err)
	}
	for i, r := range recs {
		doc := domain.Document{ID: r.ID, NameEN: r.NameEN, NameTA: r.NameTA}
		if err := idx.Add(vecs[i], doc); err != nil {
			return nil, fmt.Errorf("index service %s: %w", r.ID, err)
		}
	}
	idx.SetFingerprint(index.CorpusFingerprint(corpus))
	return idx, nil
}

func hasSignal(vec []float64) bool {
	for _, v := range vec {
		if v != 0 {
			return true
		}
	}
	return false
}
