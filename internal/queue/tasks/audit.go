package tasks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/accordflow/engine/internal/models"
	"github.com/accordflow/engine/internal/repository"
	"github.com/accordflow/engine/pkg/logger"
)

// TypeAuditRecord is the queue task persisting one audit trail row.
const TypeAuditRecord = "audit:record"

// AuditPayload is the wire form of an audit trail entry.
type AuditPayload struct {
	ContractID  string          `json:"contract_id"`
	UserID      string          `json:"user_id"`
	Action      string          `json:"action"`
	Description string          `json:"description"`
	IPAddress   string          `json:"ip_address"`
	Details     json.RawMessage `json:"details,omitempty"`
	RecordedAt  time.Time       `json:"recorded_at"`
}

// NewAuditRecordTask wraps a marshaled AuditPayload in an asynq task.
func NewAuditRecordTask(payload []byte) *asynq.Task {
	return asynq.NewTask(TypeAuditRecord, payload)
}

// AuditTaskHandler consumes audit:record tasks in the worker process.
type AuditTaskHandler struct {
	logs repository.CrudRepository[models.AuditLog]
}

func NewAuditTaskHandler(logs repository.CrudRepository[models.AuditLog]) *AuditTaskHandler {
	return &AuditTaskHandler{logs: logs}
}

// HandleRecord inserts the audit row. Returned errors let asynq retry;
// a malformed payload is dropped since retrying cannot fix it.
func (h *AuditTaskHandler) HandleRecord(ctx context.Context, t *asynq.Task) error {
	var p AuditPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		logger.L().Error("invalid audit task payload", zap.Error(err))
		return nil
	}

	entry := models.AuditLog{
		ContractID:  p.ContractID,
		UserID:      p.UserID,
		Action:      p.Action,
		Description: p.Description,
		IPAddress:   p.IPAddress,
	}
	if len(p.Details) > 0 {
		entry.Details = datatypes.JSON(p.Details)
	}
	if !p.RecordedAt.IsZero() {
		entry.CreatedAt = p.RecordedAt
	}

	if err := h.logs.Create(ctx, &entry); err != nil {
		logger.L().Error("persist audit record failed", zap.Error(err),
			zap.String("contract_id", p.ContractID), zap.String("action", p.Action))
		return err
	}

	logger.L().Debug("audit record persisted",
		zap.String("contract_id", p.ContractID), zap.String("action", p.Action))
	return nil
}
