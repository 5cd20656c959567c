package api

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dgallion1/adocparse/internal/doctree"
	"github.com/dgallion1/adocparse/internal/lexer"
	"github.com/dgallion1/adocparse/internal/parser"
)

// parseIssue is the JSON shape of one parse error.
type parseIssue struct {
	Kind     string `json:"kind"`
	Position int    `json:"position"`
	Message  string `json:"message"`
}

func issuesOf(errs parser.ErrorList) []parseIssue {
	issues := make([]parseIssue, 0, len(errs))
	for _, e := range errs {
		issues = append(issues, parseIssue{
			Kind:     e.Kind.String(),
			Position: e.Pos,
			Message:  e.Error(),
		})
	}
	return issues
}

// parseBytes runs the right frontend for filename. A non-nil ErrorList
// comes with the best partial document; any other error is fatal.
func (s *Server) parseBytes(data []byte, filename string) (*doctree.Document, parser.ErrorList, error) {
	p, err := parser.ForFile(filename)
	if err != nil {
		return nil, nil, err
	}
	switch p := p.(type) {
	case *parser.ADocParser:
		p.MaxNesting = s.cfg.MaxNestingDepth
	case *parser.PDFParser:
		p.FallbackPdftotext = s.cfg.PDFFallbackPdftotext
	}

	doc, err := p.Parse(bytes.NewReader(data), filename)
	var errList parser.ErrorList
	if errors.As(err, &errList) {
		return doc, errList, nil
	}
	return doc, nil, err
}

// readDocument accepts either a multipart upload ("file" field) or a raw
// body with an optional ?filename= query parameter.
func (s *Server) readDocument(w http.ResponseWriter, r *http.Request) ([]byte, string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "multipart/form-data" {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
			return nil, "", false
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("file")
		if err != nil {
			jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
			return nil, "", false
		}
		defer file.Close()

		filename := sanitizeFilename(header.Filename)
		data, ok := s.readLimited(w, file)
		return data, filename, ok
	}

	filename := sanitizeFilename(r.URL.Query().Get("filename"))
	if filename == "unnamed" {
		filename = "doc.adoc"
	}
	data, ok := s.readLimited(w, r.Body)
	return data, filename, ok
}

func (s *Server) readLimited(w http.ResponseWriter, r io.Reader) ([]byte, bool) {
	data, err := io.ReadAll(io.LimitReader(r, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read document", http.StatusInternalServerError)
		return nil, false
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("document exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return nil, false
	}
	return data, true
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
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
		"doc_id":   contentHashHex(data)[:16],
		"filename": filename,
		"document": doc,
		"errors":   issuesOf(errs),
	})
}

func (s *Server) handleParseBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*10+10*1024*1024)

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	// Parse files concurrently, bounded by config. Results keep the
	// request order.
	results := make([]map[string]any, len(files))
	sem := make(chan struct{}, s.cfg.BatchConcurrency)
	var wg sync.WaitGroup

	for i, fh := range files {
		wg.Add(1)
		go func(i int, fh *multipart.FileHeader) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = s.parseOne(fh)
		}(i, fh)
	}
	wg.Wait()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"documents": results})
}

func (s *Server) parseOne(fh *multipart.FileHeader) map[string]any {
	filename := sanitizeFilename(fh.Filename)
	if !parser.IsSupportedExtension(filename) {
		return map[string]any{
			"filename": filename,
			"error":    fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)),
		}
	}

	f, err := fh.Open()
	if err != nil {
		return map[string]any{"filename": filename, "error": "failed to open file"}
	}
	data, err := io.ReadAll(io.LimitReader(f, s.cfg.MaxUploadBytes+1))
	f.Close()
	if err != nil || int64(len(data)) > s.cfg.MaxUploadBytes {
		return map[string]any{"filename": filename, "error": "file too large or read error"}
	}

	doc, errs, err := s.parseBytes(data, filename)
	if err != nil {
		return map[string]any{"filename": filename, "error": err.Error()}
	}
	return map[string]any{
		"filename": filename,
		"doc_id":   contentHashHex(data)[:16],
		"document": doc,
		"errors":   issuesOf(errs),
	}
}

// handleTokens exposes the lexer for debugging: raw markup in, the token
// sequence out.
func (s *Server) handleTokens(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	data, ok := s.readLimited(w, r.Body)
	if !ok {
		return
	}

	type tokenJSON struct {
		Kind  string `json:"kind"`
		Level int    `json:"level,omitempty"`
		Text  string `json:"text,omitempty"`
		Start int    `json:"start"`
		End   int    `json:"end"`
	}
	toks := lexer.Lex(string(data))
	out := make([]tokenJSON, 0, len(toks))
	for _, t := range toks {
		out = append(out, tokenJSON{
			Kind:  t.Kind.String(),
			Level: t.Level,
			Text:  t.Text,
			Start: t.Span.Start,
			End:   t.Span.End,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"tokens": out})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}

// contentHashHex computes SHA-256 of content and returns the hex string.
func contentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
