package domain

import "context"

// SearchFilter combines an optional fuzzy text term with an optional tag
// set. Tags are intersection semantics: every requested tag must be present.
type SearchFilter struct {
	Term string
	Tags []string
}

// IndexSource provides the current validated index snapshot. Implementations
// are expected to de-duplicate concurrent fetches and cache the result.
type IndexSource interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}
