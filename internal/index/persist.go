package index

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"govchat/internal/domain"
)

const (
	documentsFile  = "documents.json"
	embeddingsFile = "embeddings.json"
	metadataFile   = "metadata.json"
)

type metadata struct {
	Dimension         int    `json:"dimension"`
	DocumentCount     int    `json:"document_count"`
	CorpusFingerprint string `json:"corpus_fingerprint,omitempty"`
}

// CorpusFingerprint hashes the corpus texts the index is built from,
// in order, into a hex digest. Texts are separated by a NUL byte so
// reslicing document boundaries changes the digest.
func CorpusFingerprint(corpus []string) string {
	h := sha256.New()
	for _, text := range corpus {
		h.Write([]byte(text))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Save writes the document list, the embedding matrix and the index
// metadata into dir, creating it as needed. A saved index reloads
// byte-for-byte equivalent.
func (x *Index) Save(dir string) error {
	x.mu.RLock()
	defer x.mu.RUnlock()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, documentsFile), x.documents); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, embeddingsFile), x.vectors); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, metadataFile), metadata{
		Dimension:         x.dimension,
		DocumentCount:     len(x.documents),
		CorpusFingerprint: x.fingerprint,
	})
}

// Load reads a persisted index from dir. Count or dimension
// disagreements between the metadata, the document list and the matrix
// are fatal load errors, not silently repaired.
func Load(dir string) (*Index, error) {
	var meta metadata
	if err := readJSON(filepath.Join(dir, metadataFile), &meta); err != nil {
		return nil, fmt.Errorf("load index metadata: %w", err)
	}
	var documents []domain.Document
	if err := readJSON(filepath.Join(dir, documentsFile), &documents); err != nil {
		return nil, fmt.Errorf("load index documents: %w", err)
	}
	var vectors [][]float64
	if err := readJSON(filepath.Join(dir, embeddingsFile), &vectors); err != nil {
		return nil, fmt.Errorf("load index embeddings: %w", err)
	}
	if len(documents) != meta.DocumentCount || len(vectors) != meta.DocumentCount {
		return nil, fmt.Errorf("index at %s is corrupt: metadata says %d documents, found %d documents and %d vectors",
			dir, meta.DocumentCount, len(documents), len(vectors))
	}
	for i, v := range vectors {
		if len(v) != meta.Dimension {
			return nil, fmt.Errorf("%w: vector %d has %d entries, metadata declares %d",
				domain.ErrDimensionMismatch, i, len(v), meta.Dimension)
		}
	}
	x, err := New(meta.Dimension)
	if err != nil {
		return nil, err
	}
	x.fingerprint = meta.CorpusFingerprint
	x.documents = documents
	x.vectors = vectors
	return x, nil
}

func writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
