package checkers

import (
	"context"
	"time"

	"github.com/jain881/AIFolio/pkg/store"
)

// StoreChecker pings the key-value store backing the identity mapping and
// view counters.
type StoreChecker struct {
	kv store.KV
}

func NewStoreChecker(kv store.KV) *StoreChecker {
	return &StoreChecker{kv: kv}
}

func (c *StoreChecker) Name() string { return "store" }

func (c *StoreChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return c.kv.Ping(ctx)
}
