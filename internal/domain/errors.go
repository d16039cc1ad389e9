package domain

import "errors"

var (
	// ErrDimensionMismatch reports disagreement between a persisted index
	// and the active embedder. It is fatal at load time.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrMalformedRecord marks a stored service record missing required
	// bilingual fields or carrying unparseable JSON list columns.
	// Such records are skipped, never answered from.
	ErrMalformedRecord = errors.New("malformed service record")

	// ErrRecordNotFound is returned when no service has the requested id.
	ErrRecordNotFound = errors.New("service record not found")
)
