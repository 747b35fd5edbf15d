package services

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"github.com/accordflow/engine/internal/queue/tasks"
	"github.com/accordflow/engine/pkg/logger"
)

func TestMain(m *testing.M) {
	if _, err := logger.Init("error", "json"); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	os.Exit(m.Run())
}

type captureEnqueuer struct {
	task *asynq.Task
	err  error
}

func (c *captureEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	c.task = task
	return &asynq.TaskInfo{}, c.err
}

func TestAuditRecordEnqueuesPayload(t *testing.T) {
	enq := &captureEnqueuer{}
	rec := NewAuditService(enq)

	before := time.Now().UTC()
	rec.Record(context.Background(), AuditEntry{
		ContractID:  "CX-100",
		UserID:      "u-1",
		Action:      "Update",
		Description: "Update contract CX-100 (Cloud Services Agreement)",
		IPAddress:   "10.0.0.1",
		Snapshot:    map[string]string{"status": "Active"},
	})

	require.NotNil(t, enq.task)
	require.Equal(t, tasks.TypeAuditRecord, enq.task.Type())

	var p tasks.AuditPayload
	require.NoError(t, json.Unmarshal(enq.task.Payload(), &p))
	require.Equal(t, "CX-100", p.ContractID)
	require.Equal(t, "u-1", p.UserID)
	require.Equal(t, "Update", p.Action)
	require.Equal(t, "10.0.0.1", p.IPAddress)
	require.JSONEq(t, `{"status":"Active"}`, string(p.Details))
	require.False(t, p.RecordedAt.Before(before))
}

func TestAuditRecordSwallowsEnqueueError(t *testing.T) {
	enq := &captureEnqueuer{err: errors.New("redis down")}
	rec := NewAuditService(enq)

	// The contract write already committed; a broken queue must not surface.
	require.NotPanics(t, func() {
		rec.Record(context.Background(), AuditEntry{ContractID: "CX-100", Action: "Delete"})
	})
	require.NotNil(t, enq.task)
}

func TestAuditRecordNilClientIsNoop(t *testing.T) {
	rec := NewAuditService(nil)
	require.NotPanics(t, func() {
		rec.Record(context.Background(), AuditEntry{ContractID: "CX-100", Action: "Create"})
	})
}
