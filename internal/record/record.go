// Package record defines the displayed unit of content and the HTTP client that
// supplies it.
package record

import "context"

// Record is one card's worth of content. Values are never patched; a new
// navigation replaces the displayed Record wholesale.
type Record struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// Fetcher is the record-fetch capability the card loader depends on.
type Fetcher interface {
	FetchNext(ctx context.Context) (Record, error)
	FetchByID(ctx context.Context, id string) (Record, error)
}
