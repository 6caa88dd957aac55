// Package store provides the key-value persistence contract used for
// all per-user state. Values are JSON documents written whole on every
// mutation; there are no partial patches, so concurrent flows can at
// worst lose a write, never interleave one.
package store

import "context"

// KV is a string-keyed store of JSON-serializable values
type KV interface {
	// Get unmarshals the value at key into out. It returns false when
	// the key is absent or its stored value cannot be decoded;
	// malformed persisted data is treated as absent, never fatal.
	Get(ctx context.Context, key string, out any) (bool, error)

	// Set overwrites the value at key
	Set(ctx context.Context, key string, value any) error

	// Delete removes the key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error
}
