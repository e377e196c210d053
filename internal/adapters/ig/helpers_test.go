package ig

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/larriantoniy/ig_user_client/internal/domain"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://api.test/api/v1"

type recordedRequest struct {
	Method string
	Path   string
	URL    string
	Query  url.Values
	Form   url.Values
	Header http.Header
}

// recorder is an HTTPDoer that answers every request with a canned response.
type recorder struct {
	mu      sync.Mutex
	reqs    []recordedRequest
	status  int
	body    string
	cookies []*http.Cookie
}

func newRecorder(status int, body string) *recorder {
	return &recorder{status: status, body: body}
}

func (r *recorder) Do(req *http.Request) (*http.Response, error) {
	var form url.Values
	if req.Body != nil {
		data, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		form, err = url.ParseQuery(string(data))
		if err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	r.reqs = append(r.reqs, recordedRequest{
		Method: req.Method,
		Path:   strings.TrimPrefix(req.URL.Path, "/api/v1/"),
		URL:    req.URL.String(),
		Query:  req.URL.Query(),
		Form:   form,
		Header: req.Header.Clone(),
	})
	r.mu.Unlock()

	h := http.Header{}
	for _, c := range r.cookies {
		h.Add("Set-Cookie", c.String())
	}
	return &http.Response{
		StatusCode: r.status,
		Header:     h,
		Body:       io.NopCloser(strings.NewReader(r.body)),
		Request:    req,
	}, nil
}

func (r *recorder) requests() []recordedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recordedRequest(nil), r.reqs...)
}

func (r *recorder) last(t *testing.T) recordedRequest {
	t.Helper()
	reqs := r.requests()
	require.NotEmpty(t, reqs, "no request recorded")
	return reqs[len(reqs)-1]
}

var (
	testCreds   = domain.Credentials{Username: "alice", Password: "secret"}
	testCookies = []string{"sessionid=abc", "csrftoken=xyz"}
)

func newTestClient(rec *recorder) *Client {
	return NewClient(
		testCreds,
		WithBaseURL(testBaseURL),
		WithHTTPDoer(rec),
	)
}

// newLoggedInClient returns a client whose session was restored, so no login request is recorded.
func newLoggedInClient(rec *recorder) *Client {
	c := newTestClient(rec)
	c.RestoreSession(testCookies)
	return c
}
