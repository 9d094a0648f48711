package gateway

import (
	"fmt"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	profile_http "github.com/djsar/stagepage/internal/modules/profile/interfaces/http"
)

// SignupPath is the registration endpoint the public form posts to.
const SignupPath = "/api/registro"

// Dispatcher is the single edge entry point. Per-request it picks exactly one
// of: signup ingestion, subdomain profile render, or static-asset
// passthrough, in that precedence order. It holds no mutable state.
type Dispatcher struct {
	rootDomain string
	signup     *profile_http.SignupHandler
	page       *profile_http.PageHandler
	assets     http.Handler
	metrics    http.Handler
}

// NewDispatcher wires the edge routes. assets receives every request the
// dispatcher does not claim, response unmodified.
func NewDispatcher(rootDomain string, signup *profile_http.SignupHandler, page *profile_http.PageHandler, assets http.Handler) *Dispatcher {
	return &Dispatcher{
		rootDomain: strings.ToLower(rootDomain),
		signup:     signup,
		page:       page,
		assets:     assets,
		metrics:    promhttp.Handler(),
	}
}

// NewAssetsProxy builds the passthrough handler for the static-asset origin.
func NewAssetsProxy(origin string) (http.Handler, error) {
	target, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("invalid assets origin %q: %w", origin, err)
	}
	return httputil.NewSingleHostReverseProxy(target), nil
}

func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost && r.URL.Path == SignupPath {
		d.signup.Register(w, r)
		return
	}

	hostname := strings.ToLower(stripPort(r.Host))
	if hostname != d.rootDomain && strings.HasSuffix(hostname, "."+d.rootDomain) {
		subdomain := strings.TrimSuffix(hostname, "."+d.rootDomain)
		if subdomain != "www" {
			d.page.Serve(w, r, subdomain)
			return
		}
		// www is an alias for the root site, fall through to assets.
	} else {
		switch r.URL.Path {
		case "/health":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
			return
		case "/metrics":
			d.metrics.ServeHTTP(w, r)
			return
		}
	}

	d.assets.ServeHTTP(w, r)
}

// stripPort drops the :port suffix a Host header may carry.
func stripPort(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}
