package queries

import (
	"context"

	"github.com/JaimeStill/qit/internal/catalog"
)

// System defines the public contract for query generation.
type System interface {
	// Handler returns the HTTP handler. Request bodies larger than
	// maxBodySize bytes are rejected.
	Handler(maxBodySize int64) *Handler

	// Run expands, deduplicates and classifies queries for the request seed.
	// It fails only with ErrInvalidSeed; suggestion failures degrade to a
	// result built from the rule engine alone.
	Run(ctx context.Context, req Request) (*Result, error)

	// Tables returns the rule tables the pipeline applies.
	Tables() *catalog.Tables
}
