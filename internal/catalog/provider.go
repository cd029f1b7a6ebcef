package catalog

import (
	"context"
	"errors"

	"NicheScout/internal/model"
)

// ErrTimeout marks a transient upstream failure (network timeout). The
// caller should wait and retry later.
var ErrTimeout = errors.New("catalog provider timed out")

// ErrRateLimited marks upstream quota or token exhaustion. The caller
// should back off before retrying; this core never retries itself.
var ErrRateLimited = errors.New("catalog provider rate limited")

// Provider fetches catalog records for a batch of item identifiers.
type Provider interface {
	FetchProducts(ctx context.Context, asins []string) ([]model.CatalogRecord, error)
	Name() string
}
