package handler

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/loglane/loglane/core"
	"github.com/loglane/loglane/formatter"
)

// HTTPHandler delivers each log entry to an HTTP collector as one
// form-encoded request: query parameters for GET, an urlencoded body for
// POST. The response status is not inspected; only transport failures
// are reported.
type HTTPHandler struct {
	sinkBase
	client   *http.Client
	method   string
	endpoint string
	username string
	password string
}

// HTTPConfig holds configuration for HTTP handler
type HTTPConfig struct {
	// Host is the collector in "host" or "host:port" form
	Host string
	// Path is the request path on the collector (default: "/")
	Path string
	// Method is "GET" or "POST"; anything else fails construction
	// (default: "GET")
	Method string
	// Secure switches the connection to HTTPS
	Secure bool
	// Username and Password, when set, are sent as HTTP basic auth
	Username string
	Password string
	// TLSConfig optionally overrides the TLS settings for HTTPS
	TLSConfig *tls.Config
	// Level is the minimum severity threshold (default: DebugLevel)
	Level core.Level
	// Formatter is kept for threshold/formatter reassignment symmetry
	// with other handlers; the wire format is the form encoding above.
	Formatter formatter.Formatter
}

// NewHTTPHandler creates a new HTTP handler
func NewHTTPHandler(cfg HTTPConfig) (*HTTPHandler, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("host is required")
	}

	method := strings.ToUpper(cfg.Method)
	if method == "" {
		method = http.MethodGet
	}
	if method != http.MethodGet && method != http.MethodPost {
		return nil, fmt.Errorf("http handler supports GET and POST, got %q", cfg.Method)
	}

	scheme := "http"
	if cfg.Secure {
		scheme = "https"
	}
	path := cfg.Path
	if path == "" {
		path = "/"
	}

	client := &http.Client{}
	if cfg.TLSConfig != nil {
		client.Transport = &http.Transport{TLSClientConfig: cfg.TLSConfig}
	}

	h := &HTTPHandler{
		client:   client,
		method:   method,
		endpoint: scheme + "://" + cfg.Host + path,
		username: cfg.Username,
		password: cfg.Password,
	}
	h.init(cfg.Level, cfg.Formatter)
	return h, nil
}

// Method returns the configured HTTP method
func (h *HTTPHandler) Method() string {
	return h.method
}

// Handle processes a log entry
func (h *HTTPHandler) Handle(entry *core.Entry) error {
	if !h.enabled(entry.Level) {
		return nil
	}

	form := url.Values{}
	form.Set("logger", entry.Logger)
	form.Set("level", entry.Level.String())
	form.Set("levelno", strconv.Itoa(int(entry.Level)))
	form.Set("message", entry.Message)
	form.Set("time", entry.Time.Format("2006-01-02T15:04:05.000Z07:00"))
	if entry.Caller.Defined {
		form.Set("file", entry.Caller.File)
		form.Set("line", strconv.Itoa(entry.Caller.Line))
	}
	for _, field := range entry.Fields {
		form.Set(field.Key, field.StringValue())
	}

	var req *http.Request
	var err error
	if h.method == http.MethodGet {
		req, err = http.NewRequest(http.MethodGet, h.endpoint+"?"+form.Encode(), nil)
	} else {
		req, err = http.NewRequest(http.MethodPost, h.endpoint, strings.NewReader(form.Encode()))
		if req != nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	}
	if err != nil {
		return err
	}
	if h.username != "" {
		req.SetBasicAuth(h.username, h.password)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return err
	}
	// Drain so the connection can be reused; the status is ignored.
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

// Close closes the handler
func (h *HTTPHandler) Close() error {
	h.client.CloseIdleConnections()
	return nil
}
