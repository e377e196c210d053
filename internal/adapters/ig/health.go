package ig

import (
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/larriantoniy/ig_user_client/internal/ports"
)

const proxyDialTimeout = 5 * time.Second

func isIPv6Literal(host string) bool {
	ip := net.ParseIP(host)
	return ip != nil && ip.To4() == nil
}

// proxyURL returns the socks5 URL for an enabled proxy, nil otherwise.
func proxyURL(p *ports.ProxyConfig) *url.URL {
	if p == nil || !p.Enabled {
		return nil
	}
	u := &url.URL{
		Scheme: "socks5",
		Host:   net.JoinHostPort(p.Server, strconv.Itoa(int(p.Port))),
	}
	if p.Username != "" {
		u.User = url.UserPassword(p.Username, p.Password)
	}
	return u
}

// NewHTTPClient returns the transport for one account. A configured proxy is
// probed once and used for every request.
func NewHTTPClient(logger *slog.Logger, proxyCfg *ports.ProxyConfig, timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	u := proxyURL(proxyCfg)
	if u == nil {
		return &http.Client{Timeout: timeout}
	}

	checkProxy(logger, proxyCfg)

	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.Proxy = http.ProxyURL(u)
	return &http.Client{Transport: tr, Timeout: timeout}
}

// checkProxy only logs: an unreachable proxy surfaces later as a request error.
func checkProxy(logger *slog.Logger, proxyCfg *ports.ProxyConfig) {
	if proxyCfg == nil || !proxyCfg.Enabled {
		logger.Info("proxy disabled, skipping check")
		return
	}

	network := "tcp"
	if isIPv6Literal(proxyCfg.Server) {
		network = "tcp6"
	}
	addr := net.JoinHostPort(proxyCfg.Server, strconv.Itoa(int(proxyCfg.Port)))
	logger.Info("checking proxy...", "addr", addr, "network", network)

	conn, err := net.DialTimeout(network, addr, proxyDialTimeout)
	if err != nil {
		logger.Error("proxy unreachable", "addr", addr, "error", err)
		return
	}
	_ = conn.Close()
	logger.Info("proxy reachable", "addr", addr)
}
