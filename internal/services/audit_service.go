package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/accordflow/engine/internal/queue/tasks"
	"github.com/accordflow/engine/pkg/logger"
)

// AuditEntry describes one contract write for the audit trail.
type AuditEntry struct {
	ContractID  string
	UserID      string
	Action      string
	Description string
	IPAddress   string
	// Snapshot is the record as it stood after the write; persisted as the
	// audit row's details payload.
	Snapshot any
}

// AuditRecorder accepts audit entries for asynchronous persistence.
//
// Recording is deliberately fire-and-forget: the contract write has already
// committed, and audit completeness is traded for write availability. The
// queue makes that an explicit, eventually-consistent handoff instead of a
// silent side effect. Record never returns an error to its caller.
type AuditRecorder interface {
	Record(ctx context.Context, e AuditEntry)
}

// TaskEnqueuer is the slice of asynq.Client the recorder needs.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type auditService struct {
	client TaskEnqueuer
}

// NewAuditService returns an AuditRecorder backed by the audit queue.
// A nil client degrades to a logged skip (single-process dev, tests).
func NewAuditService(client TaskEnqueuer) AuditRecorder {
	return &auditService{client: client}
}

func (s *auditService) Record(ctx context.Context, e AuditEntry) {
	payload := tasks.AuditPayload{
		ContractID:  e.ContractID,
		UserID:      e.UserID,
		Action:      e.Action,
		Description: e.Description,
		IPAddress:   e.IPAddress,
		RecordedAt:  time.Now().UTC(),
	}
	if e.Snapshot != nil {
		if b, err := json.Marshal(e.Snapshot); err == nil {
			payload.Details = b
		}
	}

	pb, err := json.Marshal(payload)
	if err != nil {
		logger.L().Error("marshal audit payload failed", zap.Error(err), zap.String("contract_id", e.ContractID))
		return
	}

	if s.client == nil {
		logger.L().Warn("audit queue not configured, skipping audit record",
			zap.String("contract_id", e.ContractID), zap.String("action", e.Action))
		return
	}

	task := tasks.NewAuditRecordTask(pb)
	if _, err := s.client.EnqueueContext(ctx, task); err != nil {
		logger.L().Error("enqueue audit record failed", zap.Error(err),
			zap.String("contract_id", e.ContractID), zap.String("action", e.Action))
	}
}
