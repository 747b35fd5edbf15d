package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditEngagement is a scheduled or completed review of a contract. Distinct
// from AuditLog, which records API write operations.
type AuditEngagement struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AuditID         string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"audit_id"`
	ContractID      string    `gorm:"type:varchar(64);index;not null" json:"contract_id"`
	ContractTitle   string    `gorm:"type:varchar(255)" json:"contract_title"`
	AuditType       string    `gorm:"type:varchar(64)" json:"audit_type"`
	Auditor         string    `gorm:"type:varchar(128)" json:"auditor"`
	AuditDate       string    `gorm:"type:varchar(32)" json:"audit_date"`
	Scope           string    `gorm:"type:text" json:"scope"`
	Findings        string    `gorm:"type:text" json:"findings"`
	Recommendations string    `gorm:"type:text" json:"recommendations"`
	Status          string    `gorm:"type:varchar(32);index" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (AuditEngagement) TableName() string { return "contract_audits" }
