package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

// StaticHandler serves the landing page. The file is opened on every request,
// a missing file results in a 404.
type StaticHandler struct {
	BaseHandler
}

// ServeHTTP implements http.Handler
func (h StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.Cfg.StaticDir, h.Cfg.IndexFile)

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		h.Logger.Errorf("landing page %s does not exist", path)
		h.RespondError(w, NotFoundError())
		return
	} else if err != nil {
		panic(fmt.Errorf("failed to open landing page %s: %s", path, err.Error()))
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		panic(fmt.Errorf("failed to stat landing page %s: %s", path, err.Error()))
	}

	if info.IsDir() {
		h.Logger.Errorf("landing page %s is a directory", path)
		h.RespondError(w, NotFoundError())
		return
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
