package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/JonMunkholm/inventory/internal/core"
	"github.com/JonMunkholm/inventory/internal/logging"
	"github.com/go-chi/chi/v5"
)

// maxBodySize caps item request bodies (1MB).
const maxBodySize = 1 << 20

// itemRequest is the JSON body of create and edit. Pointers distinguish a
// missing field from an empty one.
type itemRequest struct {
	SKU         *string `json:"sku"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	Size        *string `json:"size"`
	Count       *int    `json:"count"`
}

// decodeItemRequest parses the body and checks that required fields are
// present. Empty values pass through to core validation.
func decodeItemRequest(w http.ResponseWriter, r *http.Request, withSKU bool) (*itemRequest, error) {
	var req itemRequest

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		var (
			typeErr *json.UnmarshalTypeError
			maxErr  *http.MaxBytesError
			synErr  *json.SyntaxError
		)
		switch {
		case errors.Is(err, io.EOF):
			return nil, errors.New("request body is required")
		case errors.As(err, &typeErr):
			return nil, fmt.Errorf("field %s must be of type %s", typeErr.Field, typeErr.Type)
		case errors.As(err, &maxErr):
			return nil, fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
		case errors.As(err, &synErr):
			return nil, fmt.Errorf("invalid JSON at offset %d", synErr.Offset)
		default:
			return nil, fmt.Errorf("invalid JSON body: %w", err)
		}
	}

	var missing string
	switch {
	case withSKU && req.SKU == nil:
		missing = "sku"
	case req.Name == nil:
		missing = "name"
	case req.Description == nil:
		missing = "description"
	case req.Count == nil:
		missing = "count"
	}
	if missing != "" {
		return nil, fmt.Errorf("field required: %s", missing)
	}

	return &req, nil
}

// skuParam returns the {sku} path segment as the client meant it. chi
// matches against r.URL.RawPath when it is set, so only then is the value
// still escaped. Otherwise it comes from the already decoded r.URL.Path.
func skuParam(r *http.Request) string {
	sku := chi.URLParam(r, "sku")
	if r.URL.RawPath == "" {
		return sku
	}
	if unescaped, err := url.PathUnescape(sku); err == nil {
		return unescaped
	}
	return sku
}

// handleCreateItem handles POST /api/item.
func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	req, err := decodeItemRequest(w, r, true)
	if err != nil {
		respondBadRequest(w, r, err)
		return
	}

	item, err := s.service.CreateItem(withRequestMetadata(r), core.CreateInput{
		SKU:         *req.SKU,
		Name:        *req.Name,
		Description: *req.Description,
		Color:       req.Color,
		Size:        req.Size,
		Count:       *req.Count,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, r, item)
}

// handleEditItem handles PUT /api/item/{sku}. A sku in the body is ignored.
func (s *Server) handleEditItem(w http.ResponseWriter, r *http.Request) {
	req, err := decodeItemRequest(w, r, false)
	if err != nil {
		respondBadRequest(w, r, err)
		return
	}

	item, err := s.service.EditItem(withRequestMetadata(r), skuParam(r), core.UpdateInput{
		Name:        *req.Name,
		Description: *req.Description,
		Color:       req.Color,
		Size:        req.Size,
		Count:       *req.Count,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, r, item)
}

// handleDeleteItem handles DELETE /api/item/{sku}.
func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	item, err := s.service.DeleteItem(withRequestMetadata(r), skuParam(r))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, r, item)
}

// handleListItems handles GET /api/item/list.
func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.service.ListItems(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, r, items)
}

// handleGetItem handles GET /api/item/{sku}. An unknown SKU yields null.
func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	item, err := s.service.GetItem(r.Context(), skuParam(r))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, r, item)
}

// handleExportItems handles GET /api/item/export. The export file is removed
// once the response body has been written.
func (s *Server) handleExportItems(w http.ResponseWriter, r *http.Request) {
	file, err := s.service.Export(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	defer func() {
		if err := file.Cleanup(); err != nil {
			logging.FromContext(r.Context()).Debug("export cleanup failed", "file", file.Name, "error", err)
		}
	}()

	f, err := os.Open(file.Path)
	if err != nil {
		s.respondError(w, r, fmt.Errorf("write export file: %w", err))
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Name}))
	http.ServeContent(w, r, file.Name, time.Time{}, f)
}
