package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	DefaultTimeout = 10 * time.Second

	// La API devuelve el id de request en este header (chi middleware.RequestID).
	requestIDHeader = "X-Request-Id"
	maxBody         = 1 << 20
)

// Client habla JSON con la API del tracker. BaseURL es obligatorio.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string
}

// New valida la base URL ("http://localhost:8080") y arma el client con timeout.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	return NewWithTransport(baseURL, timeout, nil)
}

// NewWithTransport permite inyectar un Transport (p.ej. para tests).
func NewWithTransport(baseURL string, timeout time.Duration, tr http.RoundTripper) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	u, err := url.ParseRequestURI(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, errors.Errorf("invalid base url %q", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if tr == nil {
		tr = http.DefaultTransport
	}
	return &Client{
		HTTP: &http.Client{
			Timeout:   timeout,
			Transport: tr,
		},
		BaseURL:   strings.TrimRight(baseURL, "/"),
		UserAgent: "herdctl",
	}, nil
}

// HTTPError representa una respuesta no-2xx. Message es el texto plano que devuelve la API.
type HTTPError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *HTTPError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.RequestID == "" {
		return fmt.Sprintf("%d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("%d: %s (request %s)", e.StatusCode, msg, e.RequestID)
}

// IsStatus indica si err es un HTTPError con ese status.
func IsStatus(err error, status int) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.StatusCode == status
}

// DoJSON hace un request JSON contra BaseURL+path.
// in nil => sin body; out nil => se ignora la respuesta. 204 nunca decodifica.
func (c *Client) DoJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	if c == nil || c.HTTP == nil {
		return errors.New("httpclient: nil client")
	}

	fullURL := c.resolveURL(path, query)

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "httpclient: marshal json")
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return errors.Wrap(err, "httpclient: new request")
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return errors.Wrapf(err, "httpclient: %s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return errors.Wrap(err, "httpclient: read body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(raw)),
			RequestID:  resp.Header.Get(requestIDHeader),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrap(err, "httpclient: unmarshal json")
	}
	return nil
}

func (c *Client) resolveURL(path string, query url.Values) string {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	full := c.BaseURL + path
	if enc := query.Encode(); enc != "" {
		full += "?" + enc
	}
	return full
}
