package httpclient

import (
	"net/http"
	"time"

	"github.com/thomas-vilte/gitmoji/internal/version"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// New returns a client that gives up after timeout and identifies itself
// with the gitmoji User-Agent.
func New(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &userAgentTransport{base: http.DefaultTransport},
	}
}

type userAgentTransport struct {
	base http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", UserAgent())
	}
	return t.base.RoundTrip(req)
}

func UserAgent() string {
	return "gitmoji/" + version.FullVersion()
}
