package web

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"
)

// SPA serves the built frontend bundle. Paths that do not match a file fall
// back to index.html so client-side routes survive a hard refresh.
type SPA struct {
	dir string
}

func NewSPA(dir string) *SPA {
	return &SPA{dir: dir}
}

func (s *SPA) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(s.dir, filepath.Clean("/"+r.URL.Path))

	info, err := os.Stat(path)
	if err == nil && !info.IsDir() {
		http.ServeFile(w, r, path)
		return
	}

	http.ServeFile(w, r, filepath.Join(s.dir, "index.html"))
}

// NewDevProxy forwards non-API requests to the frontend dev server so live
// reload keeps working during development.
func NewDevProxy(target string) (http.Handler, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("invalid dev server URL %q: %w", target, err)
	}
	return httputil.NewSingleHostReverseProxy(u), nil
}
