package proxy

import (
	"fmt"
	"net/http"
	"net/url"
)

// Settings contains outbound proxy configuration for HTTP adapters.
type Settings struct {
	Enabled  bool
	Hostname string
	Port     int
	Username string
	Password string
}

// HasProxy returns true if proxy is enabled and configured.
func (p Settings) HasProxy() bool {
	return p.Enabled && p.Hostname != "" && p.Port > 0
}

// HostPort returns the proxy host:port string (e.g., "http://proxy.local:3128").
func (p Settings) HostPort() string {
	if !p.HasProxy() {
		return ""
	}
	return fmt.Sprintf("http://%s:%d", p.Hostname, p.Port)
}

// FullURL returns the full proxy URL with credentials.
func (p Settings) FullURL() string {
	if !p.HasProxy() {
		return ""
	}
	if p.Username != "" && p.Password != "" {
		u := url.URL{
			Scheme: "http",
			User:   url.UserPassword(p.Username, p.Password),
			Host:   fmt.Sprintf("%s:%d", p.Hostname, p.Port),
		}
		return u.String()
	}
	return p.HostPort()
}

// ProxyFunc returns the proxy selector for an http.Transport.
// Without a configured proxy it falls back to the environment (HTTP_PROXY, NO_PROXY).
func (p Settings) ProxyFunc() func(*http.Request) (*url.URL, error) {
	if !p.HasProxy() {
		return http.ProxyFromEnvironment
	}
	parsed, err := url.Parse(p.FullURL())
	if err != nil {
		return func(*http.Request) (*url.URL, error) {
			return nil, fmt.Errorf("invalid outbound proxy URL: %w", err)
		}
	}
	return http.ProxyURL(parsed)
}
