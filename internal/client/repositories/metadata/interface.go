// Package metadata is the client's durable string-keyed storage. Values are
// opaque bytes; the session store keeps its JSON record here.
package metadata

import (
	"context"
)

// Repository is a key/value store. Get returns (nil, nil) for a missing key
// and Delete of a missing key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
