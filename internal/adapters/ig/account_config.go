package ig

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/larriantoniy/ig_user_client/internal/domain"
	"github.com/larriantoniy/ig_user_client/internal/ports"
)

type RawAccountConfig struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`

	DeviceSeed string `json:"device_seed"` // пусто → случайный device_id на каждый запуск
	LangCode   string `json:"lang_code"`   // Accept-Language

	Proxy []any `json:"proxy"` // [type, host, port, useAuth, user, pass]
}

// ToProxyConfig parses the proxy tuple. An absent tuple or an empty host
// means no proxy; a port outside 1..65535 is an error.
func (c *RawAccountConfig) ToProxyConfig() (*ports.ProxyConfig, error) {
	if len(c.Proxy) == 0 {
		return nil, nil
	}
	if len(c.Proxy) < 6 {
		return nil, fmt.Errorf("invalid proxy length: %d", len(c.Proxy))
	}

	host, _ := c.Proxy[1].(string)
	if host == "" {
		return nil, nil
	}

	port, err := proxyPort(c.Proxy[2])
	if err != nil {
		return nil, err
	}

	p := &ports.ProxyConfig{Enabled: true, Server: host, Port: port}
	if useAuth, _ := c.Proxy[3].(bool); useAuth {
		p.Username, _ = c.Proxy[4].(string)
		p.Password, _ = c.Proxy[5].(string)
	}
	return p, nil
}

// proxyPort accepts the number types json.Unmarshal and hand-built configs produce.
func proxyPort(v any) (int32, error) {
	var n float64
	switch v := v.(type) {
	case float64:
		n = v
	case int:
		n = float64(v)
	default:
		return 0, fmt.Errorf("invalid proxy port type %T", v)
	}
	if n != math.Trunc(n) || n < 1 || n > 65535 {
		return 0, fmt.Errorf("invalid proxy port %v", v)
	}
	return int32(n), nil
}

func (c *RawAccountConfig) ToAccountConfig() (*ports.AccountConfig, error) {
	proxyCfg, err := c.ToProxyConfig()
	if err != nil {
		return nil, fmt.Errorf("proxy parse: %w", err)
	}
	return &ports.AccountConfig{
		Name:       c.Name,
		Username:   c.Username,
		Password:   c.Password,
		DeviceSeed: c.DeviceSeed,
		LangCode:   c.LangCode,
		Proxy:      proxyCfg,
	}, nil
}

// NewClientFromConfig builds a client for one account, routing through its proxy if any.
func NewClientFromConfig(
	cfg *ports.AccountConfig,
	baseURL string,
	timeout time.Duration,
	log *slog.Logger,
) *Client {
	lang := cfg.LangCode
	if lang == "" {
		lang = "en-US"
	}

	return NewClient(
		domain.Credentials{Username: cfg.Username, Password: cfg.Password},
		WithBaseURL(baseURL),
		WithHTTPDoer(NewHTTPClient(log, cfg.Proxy, timeout)),
		WithLogger(log),
		WithLangCode(lang),
		WithDeviceSeed(cfg.DeviceSeed),
	)
}
