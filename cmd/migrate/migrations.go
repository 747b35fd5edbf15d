package main

import (
	"gorm.io/gorm"

	"github.com/accordflow/engine/internal/models"
)

// registerModels returns every model whose table the migrator manages.
func registerModels() []interface{} {
	return []interface{}{
		// Accounts
		&models.User{},

		// Core contract record and satellites
		&models.Contract{},
		&models.Amendment{},
		&models.Approval{},
		&models.AuditEngagement{},
		&models.ComplianceCheck{},
		&models.Execution{},
		&models.Negotiation{},
		&models.Obligation{},
		&models.Renewal{},
		&models.Termination{},
		&models.StorageRecord{},
		&models.Draft{},
		&models.MonitoringEntry{},

		// Files and trail
		&models.Document{},
		&models.AuditLog{},
	}
}

// runMigrations executes AutoMigrate for all registered models. uuid
// defaults rely on pgcrypto's gen_random_uuid, available since Postgres 13.
func runMigrations(db *gorm.DB) error {
	return db.AutoMigrate(registerModels()...)
}
