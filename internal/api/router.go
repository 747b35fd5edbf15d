package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"

	"github.com/accordflow/engine/internal/api/handlers"
	mw "github.com/accordflow/engine/internal/api/middleware"
	"github.com/accordflow/engine/internal/models"
)

// Dependencies carries every constructed handler into the router. All wiring
// happens in main; the router only mounts.
type Dependencies struct {
	HMACSecret []byte

	Auth      *handlers.AuthHandler
	Dashboard *handlers.DashboardHandler
	Documents *handlers.DocumentsHandler

	Contracts         *handlers.Resource[models.Contract]
	Amendments        *handlers.Resource[models.Amendment]
	Approvals         *handlers.Resource[models.Approval]
	Audits            *handlers.Resource[models.AuditEngagement]
	ComplianceChecks  *handlers.Resource[models.ComplianceCheck]
	Executions        *handlers.Resource[models.Execution]
	Negotiations      *handlers.Resource[models.Negotiation]
	Obligations       *handlers.Resource[models.Obligation]
	Renewals          *handlers.Resource[models.Renewal]
	Terminations      *handlers.Resource[models.Termination]
	StorageRecords    *handlers.Resource[models.StorageRecord]
	Drafts            *handlers.Resource[models.Draft]
	MonitoringEntries *handlers.Resource[models.MonitoringEntry]
	AuditLogs         *handlers.Resource[models.AuditLog]
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS)
	r.Use(mw.RateLimit(10, 20))
	r.Use(chimid.Compress(5))

	hh := handlers.NewHealthHandler()
	r.Get("/healthz", hh.Liveness)
	r.Get("/readyz", hh.Readiness)

	r.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(ar chi.Router) {
			ar.Post("/register", dep.Auth.Register)
			ar.Post("/login", dep.Auth.Login)
		})

		// Satellite resources are open, matching the source dashboards.
		mountCrud(api, "/contract-amendments", dep.Amendments)
		mountCrud(api, "/contract-approvals", dep.Approvals)
		mountCrud(api, "/contract-audits", dep.Audits)
		mountCrud(api, "/compliance-checks", dep.ComplianceChecks)
		mountCrud(api, "/contract-executions", dep.Executions)
		mountCrud(api, "/contract-negotiations", dep.Negotiations)
		mountCrud(api, "/contract-obligations", dep.Obligations)
		mountCrud(api, "/contract-renewals", dep.Renewals)
		mountCrud(api, "/contract-terminations", dep.Terminations)
		mountCrud(api, "/contract-storage", dep.StorageRecords)

		// Bearer token required for contracts themselves, drafts,
		// monitoring, documents, the audit trail and dashboard stats.
		api.Group(func(protected chi.Router) {
			protected.Use(mw.Auth(dep.HMACSecret))

			mountCrud(protected, "/contracts", dep.Contracts)
			mountCrud(protected, "/contract-drafts", dep.Drafts)
			mountCrud(protected, "/contract-monitoring", dep.MonitoringEntries)

			protected.Route("/documents", func(dr chi.Router) {
				dr.Get("/", dep.Documents.List)
				dr.Post("/", dep.Documents.Upload)
				dr.Get("/{id}", dep.Documents.Get)
				dr.Delete("/{id}", dep.Documents.Delete)
			})

			protected.Route("/audit-logs", func(ar chi.Router) {
				ar.Get("/", dep.AuditLogs.List)
				ar.Get("/{id}", dep.AuditLogs.Get)
			})

			protected.Get("/dashboard/stats", dep.Dashboard.Stats)
		})
	})

	return r
}

func mountCrud[T any](r chi.Router, path string, h *handlers.Resource[T]) {
	r.Route(path, func(rr chi.Router) {
		rr.Get("/", h.List)
		rr.Post("/", h.Create)
		rr.Get("/{id}", h.Get)
		rr.Put("/{id}", h.Update)
		rr.Delete("/{id}", h.Delete)
	})
}
