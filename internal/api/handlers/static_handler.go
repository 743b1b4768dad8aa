package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// StaticHandler serves the landing page and public assets.
type StaticHandler struct {
	viewsDir  string
	publicDir string
}

// NewStaticHandler creates a new StaticHandler.
func NewStaticHandler(viewsDir, publicDir string) *StaticHandler {
	return &StaticHandler{viewsDir: viewsDir, publicDir: publicDir}
}

// Index serves index.html from the views directory.
func (h *StaticHandler) Index(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.viewsDir, "index.html")
	if _, err := os.Stat(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Landing page not available")
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}

// Public returns a file server for the public directory, mounted under
// prefix. It reports false when the directory does not exist.
func (h *StaticHandler) Public(prefix string) (http.Handler, bool) {
	info, err := os.Stat(h.publicDir)
	if err != nil || !info.IsDir() {
		return nil, false
	}
	return http.StripPrefix(prefix, http.FileServer(http.Dir(h.publicDir))), true
}
