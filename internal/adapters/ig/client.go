package ig

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/larriantoniy/ig_user_client/internal/domain"
	"github.com/larriantoniy/ig_user_client/internal/ports"
)

// Client реализует ports.AccountClient поверх приватного мобильного API.
type Client struct {
	creds   domain.Credentials
	device  domain.DeviceIdentity
	session *Session
	tr      *transport

	mu   sync.RWMutex
	user json.RawMessage

	direct   *Direct
	posts    *Posts
	users    *User
	userInfo *UserInfo
}

func NewClient(creds domain.Credentials, opts ...Option) *Client {
	cfg := newConfig(opts)
	sess := &Session{}
	tr := cfg.transport(sess)

	return &Client{
		creds:    creds,
		device:   NewDeviceIdentity(cfg.deviceSeed),
		session:  sess,
		tr:       tr,
		direct:   &Direct{tr: tr},
		posts:    &Posts{tr: tr},
		users:    &User{tr: tr},
		userInfo: &UserInfo{tr: tr},
	}
}

type loginPayload struct {
	Username          string `json:"username"`
	Password          string `json:"password"`
	DeviceID          string `json:"device_id"`
	UUID              string `json:"uuid"`
	LoginAttemptCount int    `json:"login_attempt_count"`
}

type loginResponse struct {
	LoggedInUser json.RawMessage `json:"logged_in_user"`
}

// Login signs the credentials, posts them and captures the session cookies.
// A response without logged_in_user or without cookies is ErrLoginFailed.
// On failure the session is left as it was.
func (c *Client) Login(ctx context.Context) (json.RawMessage, error) {
	payload, err := marshalPayload(loginPayload{
		Username: c.creds.Username,
		Password: c.creds.Password,
		DeviceID: c.device.DeviceID,
		UUID:     c.device.InstallID,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal login payload: %w", err)
	}

	env := Sign(payload, SignatureKey)
	resp, err := c.tr.send(ctx, http.MethodPost, "accounts/login/", nil, env.Form(), nil)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	var lr loginResponse
	if err := json.Unmarshal(resp.body, &lr); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrLoginFailed, err)
	}
	if len(lr.LoggedInUser) == 0 || bytes.Equal(lr.LoggedInUser, []byte("null")) {
		c.tr.logger.Warn("login response without logged_in_user", "username", c.creds.Username)
		return nil, ErrLoginFailed
	}

	if len(resp.cookies) == 0 {
		c.tr.logger.Warn("login response without session cookies", "username", c.creds.Username)
		return nil, fmt.Errorf("%w: no session cookies in response", ErrLoginFailed)
	}

	c.session.set(resp.cookies)
	c.mu.Lock()
	c.user = lr.LoggedInUser
	c.mu.Unlock()

	c.tr.logger.Info("logged in", "username", c.creds.Username, "cookies", len(resp.cookies))
	return lr.LoggedInUser, nil
}

// marshalPayload encodes like JSON.stringify: no HTML escaping, no trailing newline.
func marshalPayload(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// RestoreSession installs cookies captured by an earlier Login.
func (c *Client) RestoreSession(cookies []string) {
	c.session.set(cookies)
}

// Session is shared with every module returned by this client.
func (c *Client) Session() *Session { return c.session }

func (c *Client) SessionCookies() []string { return c.session.Cookies() }

// LoggedInUser returns the user object from the last successful Login.
func (c *Client) LoggedInUser() json.RawMessage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user
}

func (c *Client) Device() domain.DeviceIdentity { return c.device }

func (c *Client) Direct() *Direct { return c.direct }

func (c *Client) Posts() *Posts { return c.posts }

func (c *Client) Users() *User { return c.users }

func (c *Client) UserInfo() *UserInfo { return c.userInfo }

func (c *Client) Messenger() ports.DirectMessenger { return c.direct }

func (c *Client) CurrentProfile(ctx context.Context) (json.RawMessage, error) {
	return c.users.CurrentProfile(ctx)
}

var _ ports.AccountClient = (*Client)(nil)
