package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/accordflow/engine/internal/api/types"
	"github.com/accordflow/engine/internal/repository"
	"github.com/accordflow/engine/internal/resource"
	appErr "github.com/accordflow/engine/pkg/errors"
)

// WriteHook observes a committed create/update/delete. Hooks must not fail
// the request; anything they do is best-effort relative to the primary write.
type WriteHook[T any] func(ctx context.Context, r *http.Request, action string, obj *T)

// Resource is the generic handler instantiated once per resource family.
// Its five methods are the whole HTTP surface of a family: filtered list,
// create with required-field checks, read, allow-listed partial update, and
// hard delete.
type Resource[T any] struct {
	def        resource.Definition
	repo       repository.CrudRepository[T]
	afterWrite WriteHook[T]
}

func NewResource[T any](def resource.Definition, repo repository.CrudRepository[T]) *Resource[T] {
	return &Resource[T]{def: def, repo: repo}
}

// WithWriteHook attaches a post-write observer and returns the handler.
func (h *Resource[T]) WithWriteHook(hook WriteHook[T]) *Resource[T] {
	h.afterWrite = hook
	return h
}

func (h *Resource[T]) List(w http.ResponseWriter, r *http.Request) {
	opts := h.def.ListOptions(r.URL.Query())
	items, total, err := h.repo.List(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: items, Count: &total})
}

func (h *Resource[T]) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeInvalid(w, "Invalid request body")
		return
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		writeInvalid(w, "Invalid JSON body")
		return
	}

	// A required key must be present and non-null; explicit null counts as
	// missing, same as the dashboards' undefined form fields.
	for _, k := range h.def.Required {
		if v, ok := raw[k]; !ok || v == nil {
			writeInvalid(w, fmt.Sprintf("Missing required field: %s", k))
			return
		}
	}

	// Server owns identity and timestamps regardless of what the client sent.
	delete(raw, "id")
	delete(raw, "created_at")
	delete(raw, "updated_at")

	cleaned, err := json.Marshal(raw)
	if err != nil {
		writeInvalid(w, "Invalid JSON body")
		return
	}
	obj := new(T)
	if err := json.Unmarshal(cleaned, obj); err != nil {
		writeInvalid(w, "Invalid JSON body")
		return
	}

	if err := h.repo.Create(r.Context(), obj); err != nil {
		writeError(w, err)
		return
	}
	if h.afterWrite != nil {
		h.afterWrite(r.Context(), r, "Create", obj)
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: obj})
}

func (h *Resource[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	obj := new(T)
	if err := h.repo.GetByID(r.Context(), id, obj); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: obj})
}

func (h *Resource[T]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeInvalid(w, "Invalid JSON body")
		return
	}

	// Presence drives the update: a key present with null nulls the column,
	// an absent key is left alone. Only allow-listed columns pass through.
	fields := make(map[string]any, len(raw))
	for k, v := range raw {
		if h.def.IsUpdatable(k) {
			fields[k] = v
		}
	}
	if len(fields) == 0 {
		writeInvalid(w, "No fields to update")
		return
	}

	obj := new(T)
	if err := h.repo.UpdateFields(r.Context(), id, fields, obj); err != nil {
		writeError(w, err)
		return
	}
	if h.afterWrite != nil {
		h.afterWrite(r.Context(), r, "Update", obj)
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: obj})
}

func (h *Resource[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	obj := new(T)
	if err := h.repo.Delete(r.Context(), id, obj); err != nil {
		writeError(w, err)
		return
	}
	if h.afterWrite != nil {
		h.afterWrite(r.Context(), r, "Delete", obj)
	}
	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Message: fmt.Sprintf("%s deleted successfully", h.def.Singular),
	})
}

// pathID parses the {id} segment. An unparseable id behaves like a missing
// row: no surrogate key ever looks like that value.
func (h *Resource[T]) pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, appErr.New(appErr.CodeNotFound, fmt.Sprintf("%s not found", h.def.Singular))
	}
	return id, nil
}
