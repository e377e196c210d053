package ig

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"slices"

	"github.com/larriantoniy/ig_user_client/internal/domain"
)

// User wraps the account, profile and friendship endpoints.
type User struct {
	tr *transport
}

func NewUser(s *Session, h Headers, opts ...Option) *User {
	return &User{tr: newConfig(append(slices.Clip(opts), WithHeaders(h))).transport(s)}
}

func (u *User) CurrentProfile(ctx context.Context) (json.RawMessage, error) {
	return u.tr.get(ctx, "accounts/current_user/", nil)
}

func (u *User) Profile(ctx context.Context, username string) (json.RawMessage, error) {
	if err := required("username", username); err != nil {
		return nil, err
	}
	return u.tr.get(ctx, "users/web_profile_info/", url.Values{"username": {username}})
}

// ProfilePictureURL returns "" when the profile has no picture field.
func (u *User) ProfilePictureURL(ctx context.Context, username string) (string, error) {
	body, err := u.Profile(ctx, username)
	if err != nil {
		return "", err
	}
	var p struct {
		User struct {
			ProfilePicURL string `json:"profile_pic_url"`
		} `json:"user"`
	}
	if err := json.Unmarshal(body, &p); err != nil {
		return "", fmt.Errorf("decode profile: %w", err)
	}
	return p.User.ProfilePicURL, nil
}

// Search returns the users field of the search response, [] when absent.
func (u *User) Search(ctx context.Context, query string) (json.RawMessage, error) {
	if err := required("query", query); err != nil {
		return nil, err
	}
	body, err := u.tr.get(ctx, "users/search/", url.Values{"q": {query}})
	if err != nil {
		return nil, err
	}
	return field(body, "users", jsonEmptyArray)
}

func (u *User) Follow(ctx context.Context, userID string) (json.RawMessage, error) {
	return u.friendship(ctx, "create", userID)
}

func (u *User) Unfollow(ctx context.Context, userID string) (json.RawMessage, error) {
	return u.friendship(ctx, "destroy", userID)
}

func (u *User) Block(ctx context.Context, userID string) (json.RawMessage, error) {
	return u.friendship(ctx, "block", userID)
}

func (u *User) Unblock(ctx context.Context, userID string) (json.RawMessage, error) {
	return u.friendship(ctx, "unblock", userID)
}

func (u *User) friendship(ctx context.Context, action, userID string) (json.RawMessage, error) {
	if err := required("userID", userID); err != nil {
		return nil, err
	}
	return u.tr.post(ctx, "friendships/"+action+"/"+seg(userID)+"/", nil)
}

func (u *User) Followers(ctx context.Context, userID, cursor string) (json.RawMessage, error) {
	if err := required("userID", userID); err != nil {
		return nil, err
	}
	return u.tr.get(ctx, "friendships/"+seg(userID)+"/followers/", cursorQuery(cursor))
}

func (u *User) Following(ctx context.Context, userID, cursor string) (json.RawMessage, error) {
	if err := required("userID", userID); err != nil {
		return nil, err
	}
	return u.tr.get(ctx, "friendships/"+seg(userID)+"/following/", cursorQuery(cursor))
}

func (u *User) Blocked(ctx context.Context, cursor string) (json.RawMessage, error) {
	return u.tr.get(ctx, "friendships/blocked/", cursorQuery(cursor))
}

// UpdateProfile sends only the non-empty fields of upd.
func (u *User) UpdateProfile(ctx context.Context, upd domain.ProfileUpdate) (json.RawMessage, error) {
	form := url.Values{}
	for k, v := range map[string]string{
		"phone_number": upd.PhoneNumber,
		"first_name":   upd.FirstName,
		"email":        upd.Email,
		"username":     upd.Username,
		"biography":    upd.Biography,
		"external_url": upd.ExternalURL,
	} {
		if v != "" {
			form.Set(k, v)
		}
	}
	return u.tr.post(ctx, "accounts/edit_profile/", form)
}

func (u *User) ChangePassword(ctx context.Context, oldPassword, newPassword string) (json.RawMessage, error) {
	if err := required("oldPassword", oldPassword, "newPassword", newPassword); err != nil {
		return nil, err
	}
	form := url.Values{}
	form.Set("old_password", oldPassword)
	form.Set("new_password1", newPassword)
	form.Set("new_password2", newPassword)
	return u.tr.post(ctx, "accounts/change_password/", form)
}

// SetProfilePicture is an upload placeholder like Posts.UploadPhoto.
func (u *User) SetProfilePicture(ctx context.Context, image []byte) (*domain.UploadAck, error) {
	return u.tr.uploadPlaceholder("Profile picture update placeholder", "")
}

// field extracts key from a JSON object body; missing or null yields fallback.
func field(body json.RawMessage, key string, fallback json.RawMessage) (json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	v, ok := obj[key]
	if !ok || string(v) == "null" {
		return fallback, nil
	}
	return v, nil
}
