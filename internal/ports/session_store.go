package ports

import (
	"context"
	"errors"
)

// ErrSessionNotFound is returned by SessionStore.Load when nothing is stored for the account.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps captured cookie sets between process runs.
type SessionStore interface {
	Save(ctx context.Context, account string, cookies []string) error
	Load(ctx context.Context, account string) ([]string, error)
	Delete(ctx context.Context, account string) error
}
