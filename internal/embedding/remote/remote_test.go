package remote

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyEnv = "GOVCHAT_TEST_API_KEY"

func newTestClient(t *testing.T, baseURL string, dimension int) *Client {
	t.Helper()
	t.Setenv(testKeyEnv, "secret")
	c, err := NewClient(Config{
		BaseURL:   baseURL,
		APIKeyEnv: testKeyEnv,
		Model:     "test-model",
		Dimension: dimension,
	})
	require.NoError(t, err)
	return c
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Setenv(testKeyEnv, "")
	_, err := NewClient(Config{APIKeyEnv: testKeyEnv})
	assert.Error(t, err)
}

func TestEmbedBatchSingleRequest(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req struct {
			Input []string `json:"input"`
			Model string   `json:"model"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"one", "two", "three"}, req.Input)
		assert.Equal(t, "test-model", req.Model)

		// served out of order on purpose, index carries the position
		fmt.Fprint(w, `{"data":[
			{"index":2,"embedding":[3,3,3]},
			{"index":0,"embedding":[1,1,1]},
			{"index":1,"embedding":[2,2,2]}
		]}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 4)
	vecs, err := c.EmbedBatch([]string{"one", "two", "three"})
	require.NoError(t, err)
	require.Len(t, vecs, 3)
	assert.Equal(t, []float64{1, 1, 1, 0}, vecs[0])
	assert.Equal(t, []float64{2, 2, 2, 0}, vecs[1])
	assert.Equal(t, []float64{3, 3, 3, 0}, vecs[2])
	assert.Equal(t, int32(1), calls.Load())
}

func TestEmbedBatchEmptyInputSkipsRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an empty batch")
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 4)
	vecs, err := c.EmbedBatch(nil)
	require.NoError(t, err)
	assert.Empty(t, vecs)
}

func TestEmbedOllamaShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"embedding":[0.5,0.25]}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 2)
	vec, err := c.Embed("வணக்கம்")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.25}, vec)
}

func TestEmbedBatchOllamaBatchShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"embeddings":[[1,0],[0,1]]}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 2)
	vecs, err := c.EmbedBatch([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}, {0, 1}}, vecs)
}

func TestEmbedRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"data":[{"index":0,"embedding":[1,2]}]}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 2)
	vec, err := c.Embed("retry me")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, vec)
	assert.Equal(t, int32(2), calls.Load())
}

func TestEmbedClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 2)
	_, err := c.Embed("bad request")
	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestEmbedTruncatesToDimension(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[{"index":0,"embedding":[1,2,3,4,5]}]}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)
	vec, err := c.Embed("wide model")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, vec)
}
