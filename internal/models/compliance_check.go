package models

import (
	"time"

	"github.com/google/uuid"
)

// ComplianceCheck records a regulatory check performed against a contract.
type ComplianceCheck struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CheckID       string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"check_id"`
	ContractID    string    `gorm:"type:varchar(64);index;not null" json:"contract_id"`
	ContractTitle string    `gorm:"type:varchar(255)" json:"contract_title"`
	Regulation    string    `gorm:"type:varchar(128)" json:"regulation"`
	Requirement   string    `gorm:"type:text" json:"requirement"`
	CheckDate     string    `gorm:"type:varchar(32)" json:"check_date"`
	Reviewer      string    `gorm:"type:varchar(128)" json:"reviewer"`
	Result        string    `gorm:"type:varchar(64)" json:"result"`
	RiskLevel     string    `gorm:"type:varchar(32)" json:"risk_level"`
	Remediation   string    `gorm:"type:text" json:"remediation"`
	Status        string    `gorm:"type:varchar(32);index" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (ComplianceCheck) TableName() string { return "compliance_checks" }
