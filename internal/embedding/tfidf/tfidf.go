package tfidf

import (
	"errors"
	"math"
	"sort"

	"govchat/internal/textproc"
)

// Embedder is a TF-IDF vectorizer with a fixed output dimension. It
// builds a unigram+bigram vocabulary from the corpus, capped at the
// configured dimension; vectors narrower than the dimension are
// zero-padded so every embedding has exactly the same width.
type Embedder struct {
	dimension  int
	vocabulary map[string]int
	idf        []float64
	prepared   bool
	stopwords  map[string]struct{}
}

// NewEmbedder creates an unprepared TF-IDF embedder producing vectors
// of exactly dimension entries.
func NewEmbedder(dimension int, stopwords map[string]struct{}) *Embedder {
	if dimension <= 0 {
		dimension = 768
	}
	if stopwords == nil {
		stopwords = map[string]struct{}{}
	}
	return &Embedder{
		dimension:  dimension,
		vocabulary: make(map[string]int),
		stopwords:  stopwords,
	}
}

// Name returns the identifier of this embedder implementation.
func (e *Embedder) Name() string { return "tfidf" }

// Dimension returns the fixed width of produced embedding vectors.
func (e *Embedder) Dimension() int { return e.dimension }

// Prepare builds the vocabulary and IDF values from the corpus. It
// must run once before Embed; repeated calls refit from scratch.
func (e *Embedder) Prepare(corpus []string) error {
	if len(corpus) == 0 {
		return errors.New("empty corpus for TF-IDF prepare")
	}
	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, term := range e.terms(text) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}
	if len(df) == 0 {
		return errors.New("no tokens found in corpus; ensure tokenizer supports your language")
	}
	// Cap the vocabulary at the output dimension, keeping the most
	// document-frequent terms. Alphabetical tie-break keeps the fit
	// deterministic.
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if df[terms[i]] != df[terms[j]] {
			return df[terms[i]] > df[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > e.dimension {
		terms = terms[:e.dimension]
	}
	sort.Strings(terms)
	e.vocabulary = make(map[string]int, len(terms))
	e.idf = make([]float64, len(terms))
	n := float64(len(corpus))
	for i, term := range terms {
		e.vocabulary[term] = i
		// Smoothed IDF
		e.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	e.prepared = true
	return nil
}

// Embed computes the TF-IDF embedding for the given text. Text with no
// in-vocabulary terms, including empty text, yields a zero vector.
func (e *Embedder) Embed(text string) ([]float64, error) {
	if !e.prepared {
		return nil, errors.New("tfidf embedder not prepared")
	}
	vec := make([]float64, e.dimension)
	tf := make(map[int]int)
	total := 0
	for _, term := range e.terms(text) {
		if idx, ok := e.vocabulary[term]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec, nil
	}
	for idx, count := range tf {
		vec[idx] = float64(count) / float64(total) * e.idf[idx]
	}
	// L2 normalize
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec, nil
}

// EmbedBatch embeds each text in order. The vectorizer has no cheaper
// bulk path, so this is Embed applied per text.
func (e *Embedder) EmbedBatch(texts []string) ([][]float64, error) {
	out := make([][]float64, len(texts))
	for i, text := range texts {
		vec, err := e.Embed(text)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}
	return out, nil
}

// terms produces unigrams and adjacent bigrams, stopwords removed
// before bigram formation.
func (e *Embedder) terms(text string) []string {
	raw := textproc.Tokenize(text)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if _, isStop := e.stopwords[t]; isStop {
			continue
		}
		tokens = append(tokens, t)
	}
	out := make([]string, 0, len(tokens)*2)
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}
