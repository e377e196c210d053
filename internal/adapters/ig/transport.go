package ig

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/larriantoniy/ig_user_client/internal/ports"
)

// DefaultBaseURL is the private mobile API root.
const DefaultBaseURL = "https://i.instagram.com/api/v1"

// transport is shared by the client and every module. It owns no state of
// its own besides the *Session pointer it reads.
type transport struct {
	doer    ports.HTTPDoer
	baseURL string
	headers Headers
	session *Session
	logger  *slog.Logger
}

type response struct {
	cookies []string
	body    []byte
}

// get issues an authenticated GET and returns the body untouched.
func (t *transport) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return t.call(ctx, http.MethodGet, path, query, nil)
}

// post issues an authenticated form POST and returns the body untouched.
func (t *transport) post(ctx context.Context, path string, form url.Values) (json.RawMessage, error) {
	return t.call(ctx, http.MethodPost, path, nil, form)
}

func (t *transport) call(ctx context.Context, method, path string, query, form url.Values) (json.RawMessage, error) {
	if !t.session.Active() {
		return nil, ErrNotLoggedIn
	}
	resp, err := t.send(ctx, method, path, query, form, map[string]string{"Cookie": t.session.Header()})
	if err != nil {
		return nil, err
	}
	return json.RawMessage(resp.body), nil
}

// send performs exactly one HTTP round trip. Non-2xx statuses are errors.
func (t *transport) send(
	ctx context.Context,
	method, path string,
	query, form url.Values,
	overrides map[string]string,
) (*response, error) {
	endpoint := t.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header = t.headers.Compose(overrides)

	t.logger.Debug("ig request", "method", method, "path", path)

	resp, err := t.doer.Do(req)
	if err != nil {
		t.logger.Error("HTTP request to ig failed", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		t.logger.Error("ig API returned error",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"body", string(data),
		)
		return nil, fmt.Errorf("%w: %s %s: status %d: %s", ErrRequestFailed, method, path, resp.StatusCode, string(data))
	}

	return &response{
		cookies: cookiesFromResponse(resp),
		body:    data,
	}, nil
}

func cursorQuery(cursor string) url.Values {
	if cursor == "" {
		return nil
	}
	return url.Values{"max_id": {cursor}}
}

// recipients formats a thread id the way broadcast endpoints expect.
func recipients(threadID string) string {
	return "[[" + threadID + "]]"
}

func seg(id string) string {
	return url.PathEscape(id)
}

// required fails with ErrMissingArgument naming the empty arguments.
func required(args ...string) error {
	var missing []string
	for i := 0; i+1 < len(args); i += 2 {
		if args[i+1] == "" {
			missing = append(missing, args[i])
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMissingArgument, strings.Join(missing, ", "))
}
