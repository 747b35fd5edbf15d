package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/accordflow/engine/internal/api/middleware"
	"github.com/accordflow/engine/internal/models"
	"github.com/accordflow/engine/internal/repository"
	"github.com/accordflow/engine/internal/resource"
	"github.com/accordflow/engine/internal/services"
)

// NewContractsHandler builds the contracts resource handler with the audit
// trail attached: every committed create/update/delete hands an entry to the
// recorder. The hook never blocks or fails the request.
func NewContractsHandler(repo repository.CrudRepository[models.Contract], recorder services.AuditRecorder) *Resource[models.Contract] {
	h := NewResource(resource.Contracts, repo)
	return h.WithWriteHook(func(ctx context.Context, r *http.Request, action string, c *models.Contract) {
		recorder.Record(ctx, services.AuditEntry{
			ContractID:  c.ContractID,
			UserID:      middleware.GetUserID(ctx),
			Action:      action,
			Description: fmt.Sprintf("%s contract %s (%s)", action, c.ContractID, c.Title),
			IPAddress:   clientIP(r),
			Snapshot:    c,
		})
	})
}
