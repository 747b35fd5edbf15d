package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/accordflow/engine/internal/models"
	"github.com/accordflow/engine/internal/repository"
	"github.com/accordflow/engine/pkg/logger"
)

func TestMain(m *testing.M) {
	if _, err := logger.Init("error", "json"); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	os.Exit(m.Run())
}

type mockAuditLogRepo struct {
	mock.Mock
}

func (m *mockAuditLogRepo) List(ctx context.Context, opts repository.ListOptions) ([]models.AuditLog, int64, error) {
	args := m.Called(ctx, opts)
	var items []models.AuditLog
	if v := args.Get(0); v != nil {
		items = v.([]models.AuditLog)
	}
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockAuditLogRepo) Create(ctx context.Context, obj *models.AuditLog) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockAuditLogRepo) GetByID(ctx context.Context, id uuid.UUID, dest *models.AuditLog) error {
	args := m.Called(ctx, id, dest)
	return args.Error(0)
}

func (m *mockAuditLogRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any, dest *models.AuditLog) error {
	args := m.Called(ctx, id, fields, dest)
	return args.Error(0)
}

func (m *mockAuditLogRepo) Delete(ctx context.Context, id uuid.UUID, dest *models.AuditLog) error {
	args := m.Called(ctx, id, dest)
	return args.Error(0)
}

func TestHandleRecordPersistsEntry(t *testing.T) {
	repo := new(mockAuditLogRepo)
	recordedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *models.AuditLog) bool {
		return e.ContractID == "CX-100" &&
			e.UserID == "u-1" &&
			e.Action == models.AuditActionUpdate &&
			e.IPAddress == "10.0.0.1" &&
			e.CreatedAt.Equal(recordedAt) &&
			string(e.Details) == `{"status":"Active"}`
	})).Return(nil)

	payload, err := json.Marshal(AuditPayload{
		ContractID:  "CX-100",
		UserID:      "u-1",
		Action:      models.AuditActionUpdate,
		Description: "Update contract CX-100",
		IPAddress:   "10.0.0.1",
		Details:     json.RawMessage(`{"status":"Active"}`),
		RecordedAt:  recordedAt,
	})
	require.NoError(t, err)

	h := NewAuditTaskHandler(repo)
	err = h.HandleRecord(context.Background(), asynq.NewTask(TypeAuditRecord, payload))
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestHandleRecordDropsMalformedPayload(t *testing.T) {
	repo := new(mockAuditLogRepo)
	h := NewAuditTaskHandler(repo)

	// Retrying cannot fix a broken payload, so the task must not error.
	err := h.HandleRecord(context.Background(), asynq.NewTask(TypeAuditRecord, []byte("{not json")))
	require.NoError(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandleRecordReturnsRepoErrorForRetry(t *testing.T) {
	repo := new(mockAuditLogRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	payload, err := json.Marshal(AuditPayload{ContractID: "CX-100", Action: models.AuditActionCreate})
	require.NoError(t, err)

	h := NewAuditTaskHandler(repo)
	err = h.HandleRecord(context.Background(), asynq.NewTask(TypeAuditRecord, payload))
	require.Error(t, err)
}
