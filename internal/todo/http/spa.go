package http

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"regexp"
	"strings"
)

var routeSegment = regexp.MustCompile(`^[\w-]+$`)

// SPAHandler serves the frontend build. Existing files are served as is;
// client-side routes fall back to index.html; everything else is 404.
//
// Client-side routes are "/", "/{x}" and "/{x}/{any}/{y}" where x and y are
// word segments and x is not "api".
type SPAHandler struct {
	FS fs.FS
}

func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.FS == nil || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
		http.NotFound(w, r)
		return
	}

	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name != "" && name != "index.html" {
		if info, err := fs.Stat(h.FS, name); err == nil && !info.IsDir() {
			http.ServeFileFS(w, r, h.FS, name)
			return
		}
	}

	if !isClientRoute(name) {
		http.NotFound(w, r)
		return
	}
	h.serveIndex(w, r)
}

// serveIndex answers with index.html. A request for /index.html itself is
// redirected to "/" by http.ServeFileFS.
func (h *SPAHandler) serveIndex(w http.ResponseWriter, r *http.Request) {
	if _, err := fs.Stat(h.FS, "index.html"); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.ServeFileFS(w, r, h.FS, "index.html")
}

func isClientRoute(name string) bool {
	if name == "" || name == "index.html" {
		return true
	}
	segs := strings.Split(name, "/")
	switch len(segs) {
	case 1:
		return routeSegment.MatchString(segs[0])
	case 3:
		return segs[0] != "api" && routeSegment.MatchString(segs[2])
	}
	return false
}
