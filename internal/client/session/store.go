// Package session owns the persisted session token. The store holds at most
// one token; its presence is the sole authority for "is authenticated".
// Consumers read it fresh on every entry into the authenticated state and
// mutate it only through Set/Clear.
package session

import "context"

// Store is the injectable token store.
//
// Contract:
//   - Get returns "" (and no error) when no token is stored.
//   - Set atomically replaces whatever token was stored before.
//   - Clear is idempotent.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
