package ports

import (
	"context"
	"encoding/json"
)

// DirectMessenger is the slice of the direct-message API the use cases drive.
type DirectMessenger interface {
	SendText(ctx context.Context, threadID, text string) (json.RawMessage, error)
	MarkSeen(ctx context.Context, threadID string) (json.RawMessage, error)
	Typing(ctx context.Context, threadID string, on bool) (json.RawMessage, error)
}

// AccountClient is what the runner hands out once an account has a session.
type AccountClient interface {
	Login(ctx context.Context) (json.RawMessage, error)
	RestoreSession(cookies []string)
	SessionCookies() []string
	CurrentProfile(ctx context.Context) (json.RawMessage, error)
	Messenger() DirectMessenger
}
