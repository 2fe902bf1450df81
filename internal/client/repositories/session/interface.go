// Package session persists the client's session credential and cached user
// record across process restarts, as rows of a local key-value table.
package session

import "context"

// Repository is the durable key-value store behind the session service.
// Get reports absence as (nil, nil); Delete is idempotent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
