package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

const indexFile = "index.html"

// StaticHandler serves the site bundle with a fallback to index.html.
type StaticHandler struct {
	root string
}

// NewStaticHandler constructs StaticHandler rooted at dir.
func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{root: dir}
}

// Serve writes the requested asset. Unknown paths get index.html so client
// side routes keep working; paths escaping the root are refused.
func (h *StaticHandler) Serve(c *gin.Context) {
	if hasDotDot(c.Request.URL.Path) {
		c.String(http.StatusNotFound, "404 Not Found")
		return
	}

	name := path.Clean("/" + c.Request.URL.Path)
	if name == "/" {
		name = "/" + indexFile
	}

	full := filepath.Join(h.root, filepath.FromSlash(name))
	if info, err := os.Stat(full); err != nil || info.IsDir() {
		full = filepath.Join(h.root, indexFile)
	}

	f, err := os.Open(full)
	if err != nil {
		c.String(http.StatusNotFound, "404 Not Found")
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		c.String(http.StatusNotFound, "404 Not Found")
		return
	}

	setCacheHeaders(c.Writer.Header(), full)
	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
}

func setCacheHeaders(h http.Header, file string) {
	if strings.EqualFold(filepath.Ext(file), ".html") {
		h.Set("Cache-Control", "no-cache, no-store, must-revalidate")
		h.Set("Pragma", "no-cache")
		h.Set("Expires", "0")
		return
	}
	h.Set("Cache-Control", "public, max-age=3600")
}

func hasDotDot(p string) bool {
	for _, seg := range strings.FieldsFunc(p, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == ".." {
			return true
		}
	}
	return false
}
