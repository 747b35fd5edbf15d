package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/accordflow/engine/internal/models"
	appErr "github.com/accordflow/engine/pkg/errors"
)

// ResourceStats is the aggregate a dashboard tile is built from.
type ResourceStats struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status,omitempty"`
}

// DashboardStats groups per-resource aggregates by route path.
type DashboardStats struct {
	Resources   map[string]ResourceStats `json:"resources"`
	GeneratedAt time.Time                `json:"generated_at"`
}

type StatsService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type statsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) StatsService {
	return &statsService{db: db}
}

// counted pairs a route path with the model whose table backs it.
type counted struct {
	path      string
	model     any
	hasStatus bool
}

func (s *statsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	families := []counted{
		{"contracts", &models.Contract{}, true},
		{"contract-amendments", &models.Amendment{}, true},
		{"contract-approvals", &models.Approval{}, true},
		{"contract-audits", &models.AuditEngagement{}, true},
		{"compliance-checks", &models.ComplianceCheck{}, true},
		{"contract-executions", &models.Execution{}, true},
		{"contract-negotiations", &models.Negotiation{}, true},
		{"contract-obligations", &models.Obligation{}, true},
		{"contract-renewals", &models.Renewal{}, true},
		{"contract-terminations", &models.Termination{}, true},
		{"contract-storage", &models.StorageRecord{}, true},
		{"contract-drafts", &models.Draft{}, true},
		{"contract-monitoring", &models.MonitoringEntry{}, true},
		{"documents", &models.Document{}, false},
	}

	out := &DashboardStats{
		Resources:   make(map[string]ResourceStats, len(families)),
		GeneratedAt: time.Now().UTC(),
	}

	for _, f := range families {
		stats, err := s.statsFor(ctx, f)
		if err != nil {
			return nil, err
		}
		out.Resources[f.path] = stats
	}
	return out, nil
}

func (s *statsService) statsFor(ctx context.Context, f counted) (ResourceStats, error) {
	var stats ResourceStats
	if err := s.db.WithContext(ctx).Model(f.model).Count(&stats.Total).Error; err != nil {
		return stats, appErr.Wrap(err, appErr.CodeInternal, "count "+f.path+" failed")
	}
	if !f.hasStatus {
		return stats, nil
	}

	var rows []struct {
		Status string
		N      int64
	}
	err := s.db.WithContext(ctx).Model(f.model).
		Select("status, count(*) as n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return stats, appErr.Wrap(err, appErr.CodeInternal, "group "+f.path+" by status failed")
	}

	stats.ByStatus = make(map[string]int64, len(rows))
	for _, r := range rows {
		stats.ByStatus[r.Status] = r.N
	}
	return stats, nil
}
