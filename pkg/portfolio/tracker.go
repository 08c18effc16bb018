package portfolio

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jain881/AIFolio/pkg/store"
)

// ErrUnknownArtifact reports a view-stats read for an id with no counter.
var ErrUnknownArtifact = errors.New("no views recorded for artifact")

// Tracker maintains per-artifact view counters. Recording is best effort:
// callers log and swallow failures so a broken store can never fail a page
// serve.
type Tracker struct {
	kv store.KV
}

func NewTracker(kv store.KV) *Tracker {
	return &Tracker{kv: kv}
}

// RecordView bumps the counters for one inbound read of the artifact's entry
// page. source is the best-effort client address ("unknown" when absent).
func (t *Tracker) RecordView(ctx context.Context, id, source string) error {
	if source == "" {
		source = "unknown"
	}
	now := time.Now().UTC()
	return t.kv.Update(ctx, store.BucketViews, id, func(current []byte) ([]byte, error) {
		var c Counter
		if current != nil {
			// A corrupt document starts over rather than poisoning every
			// subsequent view.
			_ = json.Unmarshal(current, &c)
		}
		if !seenSource(c.ViewHistory, source) {
			c.UniqueViews++
		}
		c.TotalViews++
		c.LastViewed = now
		c.ViewHistory = append(c.ViewHistory, ViewEvent{Timestamp: now, SourceAddress: source})
		return json.Marshal(c)
	})
}

// Views returns the counter document for id.
func (t *Tracker) Views(ctx context.Context, id string) (Counter, error) {
	raw, err := t.kv.Get(ctx, store.BucketViews, id)
	if errors.Is(err, store.ErrNotFound) {
		return Counter{}, ErrUnknownArtifact
	}
	if err != nil {
		return Counter{}, err
	}
	var c Counter
	if err := json.Unmarshal(raw, &c); err != nil {
		return Counter{}, err
	}
	if c.ViewHistory == nil {
		c.ViewHistory = []ViewEvent{}
	}
	return c, nil
}

func seenSource(history []ViewEvent, source string) bool {
	for _, e := range history {
		if e.SourceAddress == source {
			return true
		}
	}
	return false
}
