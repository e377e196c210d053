package ig

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/larriantoniy/ig_user_client/internal/domain"
)

var (
	jsonNull       = json.RawMessage("null")
	jsonEmptyArray = json.RawMessage("[]")
)

// UserInfo looks up other users. Unlike the other modules most methods
// unwrap one field of the response, and every error names the lookup.
type UserInfo struct {
	tr *transport
}

func NewUserInfo(s *Session, h Headers, opts ...Option) *UserInfo {
	return &UserInfo{tr: newConfig(append(slices.Clip(opts), WithHeaders(h))).transport(s)}
}

// BasicInfo returns the user object of users/{id}/info/.
func (i *UserInfo) BasicInfo(ctx context.Context, userID string) (json.RawMessage, error) {
	return i.lookup(ctx, "basic user info", userID, "users/"+seg(userID)+"/info/", "", "user", nil)
}

func (i *UserInfo) Feed(ctx context.Context, userID, cursor string) (json.RawMessage, error) {
	return i.lookup(ctx, "user feed", userID, "feed/user/"+seg(userID)+"/", cursor, "", nil)
}

// Stories returns the reel object, or JSON null when the user has none.
func (i *UserInfo) Stories(ctx context.Context, userID string) (json.RawMessage, error) {
	return i.lookup(ctx, "user stories", userID, "feed/user/"+seg(userID)+"/reel_media/", "", "reel", jsonNull)
}

func (i *UserInfo) TaggedMedia(ctx context.Context, userID, cursor string) (json.RawMessage, error) {
	return i.lookup(ctx, "tagged media", userID, "users/"+seg(userID)+"/tagged_media/", cursor, "", nil)
}

func (i *UserInfo) Followers(ctx context.Context, userID, cursor string) (json.RawMessage, error) {
	return i.lookup(ctx, "followers", userID, "friendships/"+seg(userID)+"/followers/", cursor, "users", jsonEmptyArray)
}

func (i *UserInfo) Following(ctx context.Context, userID, cursor string) (json.RawMessage, error) {
	return i.lookup(ctx, "following", userID, "friendships/"+seg(userID)+"/following/", cursor, "users", jsonEmptyArray)
}

func (i *UserInfo) Highlights(ctx context.Context, userID string) (json.RawMessage, error) {
	return i.lookup(ctx, "highlights", userID, "highlights/user/"+seg(userID)+"/highlights_tray/", "", "tray", jsonEmptyArray)
}

func (i *UserInfo) LiveInfo(ctx context.Context, userID string) (json.RawMessage, error) {
	return i.lookup(ctx, "live info", userID, "live/"+seg(userID)+"/info/", "", "", nil)
}

func (i *UserInfo) FollowersCount(ctx context.Context, userID string) (int64, error) {
	u, err := i.basic(ctx, "followers count", userID)
	if err != nil {
		return 0, err
	}
	return u.FollowerCount, nil
}

func (i *UserInfo) FollowingCount(ctx context.Context, userID string) (int64, error) {
	u, err := i.basic(ctx, "following count", userID)
	if err != nil {
		return 0, err
	}
	return u.FollowingCount, nil
}

func (i *UserInfo) IsPrivate(ctx context.Context, userID string) (bool, error) {
	u, err := i.basic(ctx, "privacy status", userID)
	if err != nil {
		return false, err
	}
	return u.IsPrivate, nil
}

func (i *UserInfo) IsVerified(ctx context.Context, userID string) (bool, error) {
	u, err := i.basic(ctx, "verification status", userID)
	if err != nil {
		return false, err
	}
	return u.IsVerified, nil
}

func (i *UserInfo) basic(ctx context.Context, what, userID string) (*domain.UserInfo, error) {
	raw, err := i.BasicInfo(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", what, err)
	}
	var u domain.UserInfo
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &u); err != nil {
			return nil, fmt.Errorf("failed to get %s: decode user: %w", what, err)
		}
	}
	return &u, nil
}

// lookup does one GET and, when key is set, unwraps that field of the body.
func (i *UserInfo) lookup(
	ctx context.Context,
	what, userID, path, cursor, key string,
	fallback json.RawMessage,
) (json.RawMessage, error) {
	if err := required("userID", userID); err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", what, err)
	}
	body, err := i.tr.get(ctx, path, cursorQuery(cursor))
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", what, err)
	}
	if key == "" {
		return body, nil
	}
	v, err := field(body, key, fallback)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", what, err)
	}
	return v, nil
}
