// Package portfolio publishes a normalized CV record as a self-contained
// static site and tracks access to it. Publishes are idempotent per owner:
// the normalized contact email maps to at most one live artifact id.
package portfolio

import "time"

// Record is the persisted mapping from an owner to their published artifact.
type Record struct {
	ID         string    `json:"id"`         // short random hex token, immutable
	OwnerEmail string    `json:"ownerEmail"` // normalized identity key
	Theme      string    `json:"theme"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ViewEvent is one entry of the append-only view history.
type ViewEvent struct {
	Timestamp     time.Time `json:"timestamp"`
	SourceAddress string    `json:"sourceAddress"`
}

// Counter accumulates access stats for one artifact id. TotalViews and
// UniqueViews only ever grow; UniqueViews counts distinct source addresses.
type Counter struct {
	TotalViews  int64       `json:"totalViews"`
	UniqueViews int64       `json:"uniqueViews"`
	LastViewed  time.Time   `json:"lastViewed"`
	ViewHistory []ViewEvent `json:"viewHistory"`
}

// PublishResult is returned to the caller of Publish.
type PublishResult struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	IsExisting bool   `json:"isExisting"`
}
