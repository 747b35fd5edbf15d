package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Audit trail actions recorded for contract writes.
const (
	AuditActionCreate = "Create"
	AuditActionUpdate = "Update"
	AuditActionDelete = "Delete"
)

// AuditLog is an append-only record of who did what to which contract and
// when. Rows are written by the worker consuming the audit queue, never
// inside the request that caused them.
type AuditLog struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ContractID  string         `gorm:"type:varchar(64);index;not null" json:"contract_id"`
	UserID      string         `gorm:"type:varchar(64);index" json:"user_id"`
	Action      string         `gorm:"type:varchar(16);index;not null" json:"action"`
	Description string         `gorm:"type:text" json:"description"`
	IPAddress   string         `gorm:"type:varchar(45)" json:"ip_address"`
	Details     datatypes.JSON `gorm:"type:jsonb" json:"details,omitempty"`
	CreatedAt   time.Time      `json:"timestamp"`
}

func (AuditLog) TableName() string { return "audit_logs" }
