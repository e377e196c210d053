package ig

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/larriantoniy/ig_user_client/internal/ports"
)

type config struct {
	baseURL    string
	doer       ports.HTTPDoer
	logger     *slog.Logger
	headers    *Headers
	langCode   string
	deviceSeed string
}

// Option configures a Client or a standalone module.
type Option func(*config)

// WithBaseURL points the client at another API root (tests, relays).
func WithBaseURL(u string) Option {
	return func(c *config) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithHTTPDoer replaces the default *http.Client.
func WithHTTPDoer(d ports.HTTPDoer) Option {
	return func(c *config) { c.doer = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithHeaders replaces the default base header set.
func WithHeaders(h Headers) Option {
	return func(c *config) { c.headers = &h }
}

// WithLangCode sets Accept-Language on the default header set.
func WithLangCode(lang string) Option {
	return func(c *config) { c.langCode = lang }
}

// WithDeviceSeed derives a stable device identity from seed instead of a random one.
func WithDeviceSeed(seed string) Option {
	return func(c *config) { c.deviceSeed = seed }
}

func newConfig(opts []Option) *config {
	c := &config{baseURL: DefaultBaseURL}
	for _, o := range opts {
		o(c)
	}
	if c.doer == nil {
		c.doer = &http.Client{Timeout: 30 * time.Second}
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.headers == nil {
		h := DefaultHeaders(c.langCode)
		c.headers = &h
	}
	return c
}

func (c *config) transport(s *Session) *transport {
	return &transport{
		doer:    c.doer,
		baseURL: c.baseURL,
		headers: *c.headers,
		session: s,
		logger:  c.logger,
	}
}
