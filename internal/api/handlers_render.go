package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/dgallion1/adocparse/internal/outline"
	"github.com/dgallion1/adocparse/internal/parser"
	"github.com/dgallion1/adocparse/internal/render"
)

// handleRender parses the document and renders the tree in the requested
// format (?format=html|adoc|text, default html). When the input has parse
// errors the partial tree is rendered and the error count is exposed in a
// header, so clients still get usable output.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	data, filename, ok := s.readDocument(w, r)
	if !ok {
		return
	}

	doc, errs, err := s.parseBytes(data, filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if len(errs) > 0 {
		w.Header().Set("X-Parse-Errors", fmt.Sprint(len(errs)))
	}

	format := r.URL.Query().Get("format")
	switch format {
	case "", "html":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(render.HTML(doc)))
	case "adoc":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(render.ADoc(doc)))
	case "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(render.Text(doc)))
	default:
		jsonError(w, fmt.Sprintf("unsupported render format: %s", format), http.StatusBadRequest)
	}
}

// handleOutline parses the document and returns its section outline.
func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	data, filename, ok := s.readDocument(w, r)
	if !ok {
		return
	}
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	doc, errs, err := s.parseBytes(data, filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"outline": outline.Build(doc),
		"errors":  issuesOf(errs),
	})
}
