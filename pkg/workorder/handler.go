/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package workorder

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/NVIDIA/workorder-api/pkg/codec"
	"github.com/NVIDIA/workorder-api/pkg/defaults"
	apperrors "github.com/NVIDIA/workorder-api/pkg/errors"
	"github.com/NVIDIA/workorder-api/pkg/serializer"
	"github.com/NVIDIA/workorder-api/pkg/server"
)

const (
	// CollectionPath is the work order collection endpoint.
	CollectionPath = "/workorders"
	// ItemPathPrefix is the prefix of single-record endpoints.
	ItemPathPrefix = "/workorders/"

	allowCollection = "GET, POST"
	allowItem       = "GET, PUT, DELETE"
)

// Handler maps HTTP verbs and paths onto store operations. It owns the
// error-mapping policy; the store and validator stay free of HTTP concerns.
type Handler struct {
	store *Store
}

// NewHandler creates a Handler backed by store.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// Routes returns the handler's mux patterns for server registration.
// The "/" catch-all turns every unknown path into the endpoint-not-found
// envelope instead of the default mux 404.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		CollectionPath: h.Collection,
		ItemPathPrefix: h.Item,
		"/":            h.NotFound,
	}
}

// Collection handles GET (filtered list) and POST (create) on /workorders.
func (h *Handler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		server.WriteMethodNotAllowed(w, r, allowCollection)
	}
}

// Item handles GET, PUT, and DELETE on /workorders/{id}.
func (h *Handler) Item(w http.ResponseWriter, r *http.Request) {
	suffix := strings.TrimPrefix(r.URL.Path, ItemPathPrefix)
	if suffix == "" || strings.Contains(suffix, "/") {
		h.NotFound(w, r)
		return
	}

	id, ok := parseID(suffix)
	if !ok {
		server.WriteError(w, r, http.StatusBadRequest,
			"Invalid ID format", "ID must be a positive integer")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		server.WriteMethodNotAllowed(w, r, allowItem)
	}
}

// NotFound is the catch-all for paths outside the resource surface.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	server.WriteError(w, r, http.StatusNotFound,
		"Endpoint not found", "Available endpoints: /workorders, /workorders/{id}")
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := FilterFromQuery(r.URL.Query())

	matched := make([]WorkOrder, 0)
	for _, wo := range h.store.List() {
		if filter.Matches(wo) {
			matched = append(matched, wo)
		}
	}

	serializer.RespondRaw(w, http.StatusOK, EncodeList(matched))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	if !hasJSONContentType(r) {
		server.WriteError(w, r, http.StatusBadRequest,
			"Invalid Content-Type", "Expected: application/json")
		return
	}

	body, err := readBody(r)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest,
			"Invalid request body", "Request body could not be read")
		return
	}

	fields := decodeFields(body)
	if verr := ValidateCreate(fields); verr != nil {
		slog.Debug("create validation failed", "error", verr)
		server.WriteStructuredError(w, r, verr)
		return
	}

	status := StatusPending
	if fields.Status != nil {
		status = Status(*fields.Status)
	}

	wo := h.store.Create(*fields.LicensePlate, *fields.Description, status, *fields.DueDate)
	slog.Info("work order created", "id", wo.ID, "licensePlate", wo.LicensePlate)

	w.Header().Set("Location", fmt.Sprintf("%s/%d", CollectionPath, wo.ID))
	serializer.RespondRaw(w, http.StatusCreated, wo.Encode())
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request, id int64) {
	wo, ok := h.store.Get(id)
	if !ok {
		server.WriteStructuredError(w, r, notFound(id))
		return
	}
	serializer.RespondRaw(w, http.StatusOK, wo.Encode())
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request, id int64) {
	if !hasJSONContentType(r) {
		server.WriteError(w, r, http.StatusBadRequest,
			"Invalid Content-Type", "Expected: application/json")
		return
	}

	body, err := readBody(r)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest,
			"Invalid request body", "Request body could not be read")
		return
	}

	fields := decodeFields(body)
	if verr := ValidateUpdate(fields); verr != nil {
		slog.Debug("update validation failed", "id", id, "error", verr)
		server.WriteStructuredError(w, r, verr)
		return
	}

	wo, ok := h.store.Update(id, fields.Patch())
	if !ok {
		server.WriteStructuredError(w, r, notFound(id))
		return
	}

	slog.Info("work order updated", "id", id)
	serializer.RespondRaw(w, http.StatusOK, wo.Encode())
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request, id int64) {
	if !h.store.Delete(id) {
		server.WriteStructuredError(w, r, notFound(id))
		return
	}
	slog.Info("work order deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func notFound(id int64) *apperrors.StructuredError {
	return apperrors.New(apperrors.ErrCodeNotFound,
		"WorkOrder not found", fmt.Sprintf("No work order exists with ID %d", id))
}

// parseID parses a path suffix as a non-negative integer id. It returns
// ok == false rather than an error so the handler owns the 400 mapping.
func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// decodeFields extracts the four mutable fields from a request body via the
// boundary codec. Absent and empty fields are nil.
func decodeFields(body string) Fields {
	var f Fields
	if v, ok := codec.Extract(body, "licensePlate"); ok {
		f.LicensePlate = &v
	}
	if v, ok := codec.Extract(body, "description"); ok {
		f.Description = &v
	}
	if v, ok := codec.Extract(body, "status"); ok {
		f.Status = &v
	}
	if v, ok := codec.Extract(body, "dueDate"); ok {
		f.DueDate = &v
	}
	return f
}

func hasJSONContentType(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Content-Type"), "application/json")
}

func readBody(r *http.Request) (string, error) {
	defer r.Body.Close()
	b, err := io.ReadAll(io.LimitReader(r.Body, defaults.MaxRequestBodyBytes))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
