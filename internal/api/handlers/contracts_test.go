package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/accordflow/engine/internal/api/middleware"
	"github.com/accordflow/engine/internal/models"
	"github.com/accordflow/engine/internal/services"
)

type captureRecorder struct {
	entries []services.AuditEntry
}

func (c *captureRecorder) Record(_ context.Context, e services.AuditEntry) {
	c.entries = append(c.entries, e)
}

func contractsRouter(repo *mockCrudRepo[models.Contract], rec *captureRecorder) http.Handler {
	h := NewContractsHandler(repo, rec)
	r := chi.NewRouter()
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

func TestContractCreateRecordsAuditEntry(t *testing.T) {
	repo := new(mockCrudRepo[models.Contract])
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	auditRec := &captureRecorder{}

	body := `{"contract_id": "CX-100", "title": "Cloud Services Agreement"}`
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, "u-1"))
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.2")
	rec := httptest.NewRecorder()
	contractsRouter(repo, auditRec).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, auditRec.entries, 1)

	e := auditRec.entries[0]
	require.Equal(t, "CX-100", e.ContractID)
	require.Equal(t, "u-1", e.UserID)
	require.Equal(t, "Create", e.Action)
	require.Equal(t, "Create contract CX-100 (Cloud Services Agreement)", e.Description)
	require.Equal(t, "203.0.113.9", e.IPAddress)
	require.NotNil(t, e.Snapshot)
}

func TestContractUpdateRecordsAuditEntry(t *testing.T) {
	repo := new(mockCrudRepo[models.Contract])
	id := uuid.New()
	repo.On("UpdateFields", mock.Anything, id, mock.Anything, mock.Anything).
		Return(nil, &models.Contract{ID: id, ContractID: "CX-100", Title: "MSA", Status: "Active"})
	auditRec := &captureRecorder{}

	req := httptest.NewRequest(http.MethodPut, "/"+id.String(), bytes.NewBufferString(`{"status": "Active"}`))
	rec := httptest.NewRecorder()
	contractsRouter(repo, auditRec).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, auditRec.entries, 1)
	require.Equal(t, "Update", auditRec.entries[0].Action)
	require.Equal(t, "CX-100", auditRec.entries[0].ContractID)
}

func TestContractValidationFailureRecordsNothing(t *testing.T) {
	repo := new(mockCrudRepo[models.Contract])
	auditRec := &captureRecorder{}

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"title": "no natural key"}`))
	rec := httptest.NewRecorder()
	contractsRouter(repo, auditRec).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, auditRec.entries)
}

func TestContractDeleteRecordsAuditEntry(t *testing.T) {
	repo := new(mockCrudRepo[models.Contract])
	id := uuid.New()
	repo.On("Delete", mock.Anything, id, mock.Anything).
		Return(nil, &models.Contract{ID: id, ContractID: "CX-100", Title: "MSA"})
	auditRec := &captureRecorder{}

	req := httptest.NewRequest(http.MethodDelete, "/"+id.String(), nil)
	rec := httptest.NewRecorder()
	contractsRouter(repo, auditRec).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, auditRec.entries, 1)
	require.Equal(t, "Delete", auditRec.entries[0].Action)
}
