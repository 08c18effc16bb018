package portfolio

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jain881/AIFolio/pkg/cv"
	"github.com/jain881/AIFolio/pkg/store"
)

// ErrMissingIdentity reports a publish request without a usable contact
// email. The email is the identity key; without it deduplication is
// impossible, so this is a caller error.
var ErrMissingIdentity = errors.New("cv record has no contact email")

// Publisher turns CV records into published artifacts, keeping at most one
// live artifact id per normalized owner email.
type Publisher struct {
	kv        store.KV
	artifacts *Artifacts
	baseHost  string

	// Serializes the check-then-write sequence so two concurrent publishes
	// for the same identity cannot both mint an artifact with only the last
	// mapping write surviving.
	mu sync.Mutex
}

func NewPublisher(kv store.KV, artifacts *Artifacts, baseHost string) *Publisher {
	return &Publisher{
		kv:        kv,
		artifacts: artifacts,
		baseHost:  strings.TrimRight(baseHost, "/"),
	}
}

// Publish makes rec publicly addressable and returns its URL. Idempotent per
// identity: when the owner already has a mapping and the backing artifact is
// still on disk, the existing id is reused and IsExisting is true. A stale
// mapping (artifact deleted out-of-band) is discarded and replaced by a
// fresh id.
func (p *Publisher) Publish(ctx context.Context, rec cv.Record, theme string) (PublishResult, error) {
	owner := rec.IdentityKey()
	if owner == "" {
		return PublishResult{}, ErrMissingIdentity
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var result PublishResult
	err := p.kv.Update(ctx, store.BucketIdentity, owner, func(current []byte) ([]byte, error) {
		if current != nil {
			var existing Record
			if err := json.Unmarshal(current, &existing); err == nil && p.artifacts.Exists(existing.ID) {
				result = PublishResult{
					ID:         existing.ID,
					URL:        p.publicURL(existing.ID),
					IsExisting: true,
				}
				return current, nil
			}
			// Stale or unreadable mapping: fall through and mint a new one.
		}

		id, err := newArtifactID()
		if err != nil {
			return nil, err
		}
		if err := p.artifacts.Create(id, rec, theme); err != nil {
			return nil, err
		}
		mapping := Record{
			ID:         id,
			OwnerEmail: owner,
			Theme:      theme,
			CreatedAt:  time.Now().UTC(),
		}
		doc, err := json.Marshal(mapping)
		if err != nil {
			p.artifacts.Remove(id)
			return nil, err
		}
		result = PublishResult{ID: id, URL: p.publicURL(id), IsExisting: false}
		return doc, nil
	})
	if err != nil {
		// A failed mapping write must not leave an orphaned directory.
		if !result.IsExisting && result.ID != "" {
			p.artifacts.Remove(result.ID)
		}
		return PublishResult{}, fmt.Errorf("publish portfolio: %w", err)
	}
	return result, nil
}

// Resolve returns the artifact directory for id, or false when the id is
// unknown or its directory is gone.
func (p *Publisher) Resolve(id string) (string, bool) {
	if !p.artifacts.Exists(id) {
		return "", false
	}
	return p.artifacts.Dir(id), true
}

func (p *Publisher) publicURL(id string) string {
	return p.baseHost + "/p/" + id
}

// newArtifactID mints an 8-byte random hex token. Collision probability is
// negligible at this length; no retry loop.
func newArtifactID() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("mint artifact id: %w", err)
	}
	return hex.EncodeToString(b), nil
}
