package remote

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"
)

// Client is an OpenAI-compatible embeddings client. It is the dense
// alternative to the TF-IDF vectorizer and satisfies the same Embedder
// contract: raw model output is zero-padded or truncated to the
// configured dimension so the similarity index always sees vectors of
// one width. Corpus embedding goes through EmbedBatch, one HTTP
// request for the whole batch.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	dimension  int
	client     *http.Client
	maxRetries int
}

// Config configures the remote embeddings client.
type Config struct {
	BaseURL   string
	APIKeyEnv string
	Model     string
	Timeout   time.Duration
	Dimension int
}

// NewClient creates a new embeddings client using the provided configuration.
func NewClient(cfg Config) (*Client, error) {
	key := os.Getenv(cfg.APIKeyEnv)
	if key == "" {
		return nil, fmt.Errorf("missing API key in env %s", cfg.APIKeyEnv)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "text-embedding-3-small"
	}
	if cfg.Dimension <= 0 {
		cfg.Dimension = 768
	}
	t := cfg.Timeout
	if t == 0 {
		t = 30 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     key,
		model:      cfg.Model,
		dimension:  cfg.Dimension,
		client:     &http.Client{Timeout: t},
		maxRetries: 5,
	}, nil
}

// Name returns the identifier of this embedder implementation.
func (c *Client) Name() string { return "remote" }

// Prepare is a no-op: the remote model needs no corpus fit.
func (c *Client) Prepare(corpus []string) error { return nil }

// Dimension returns the fixed width of produced embedding vectors.
func (c *Client) Dimension() int { return c.dimension }

// Embed returns an embedding vector for the given text, sized to
// exactly Dimension entries.
func (c *Client) Embed(text string) ([]float64, error) {
	vecs, err := c.EmbedBatch([]string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

// EmbedBatch embeds all texts in a single request, returning one
// vector per input in input order. An empty batch returns no vectors
// and makes no request.
func (c *Client) EmbedBatch(texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	body, err := json.Marshal(struct {
		Input []string `json:"input"`
		Model string   `json:"model"`
	}{Input: texts, Model: c.model})
	if err != nil {
		return nil, err
	}
	payload, err := c.post(body)
	if err != nil {
		return nil, err
	}
	vecs, err := decodeEmbeddings(payload, len(texts))
	if err != nil {
		return nil, err
	}
	for i := range vecs {
		vecs[i] = c.resize(vecs[i])
	}
	return vecs, nil
}

// post sends the request body to the embeddings endpoint, retrying
// transient failures (network errors, 429, 5xx) with exponential
// backoff. A Retry-After header on a rejected response is honored.
func (c *Client) post(body []byte) ([]byte, error) {
	url := fmt.Sprintf("%s/embeddings", c.baseURL)
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(retryDelay(attempt - 1))
		}
		req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			if secs, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && secs > 0 {
				time.Sleep(time.Duration(secs) * time.Second)
			}
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("remote embeddings failed: %s", resp.Status)
			continue
		}
		if resp.StatusCode >= 300 {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("remote embeddings failed: %s", resp.Status)
		}
		payload, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		return payload, nil
	}
	return nil, lastErr
}

// decodeEmbeddings extracts want vectors from an embeddings response.
// It understands the OpenAI shape (data[].embedding, ordered by
// index), the Ollama batch shape (embeddings) and, for single-text
// requests, the Ollama native shape (embedding).
func decodeEmbeddings(payload []byte, want int) ([][]float64, error) {
	var openaiOut struct {
		Data []struct {
			Index     int       `json:"index"`
			Embedding []float64 `json:"embedding"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &openaiOut); err == nil && len(openaiOut.Data) == want {
		vecs := make([][]float64, want)
		for i, d := range openaiOut.Data {
			at := d.Index
			if at < 0 || at >= want {
				at = i
			}
			vecs[at] = d.Embedding
		}
		for _, v := range vecs {
			if len(v) == 0 {
				return nil, errors.New("incomplete embeddings response")
			}
		}
		return vecs, nil
	}

	var batchOut struct {
		Embeddings [][]float64 `json:"embeddings"`
	}
	if err := json.Unmarshal(payload, &batchOut); err == nil && len(batchOut.Embeddings) == want {
		return batchOut.Embeddings, nil
	}

	if want == 1 {
		var singleOut struct {
			Embedding []float64 `json:"embedding"`
		}
		if err := json.Unmarshal(payload, &singleOut); err == nil && len(singleOut.Embedding) > 0 {
			return [][]float64{singleOut.Embedding}, nil
		}
	}
	return nil, errors.New("no embedding returned")
}

// resize pads or truncates v to exactly the configured dimension.
func (c *Client) resize(v []float64) []float64 {
	if len(v) == c.dimension {
		return v
	}
	out := make([]float64, c.dimension)
	copy(out, v)
	return out
}

// retryDelay is exponential backoff capped at 5s.
func retryDelay(attempt int) time.Duration {
	d := 200 * time.Millisecond << attempt
	if d > 5*time.Second || d <= 0 {
		d = 5 * time.Second
	}
	return d
}
