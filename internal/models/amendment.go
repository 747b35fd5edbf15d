package models

import (
	"time"

	"github.com/google/uuid"
)

// Amendment records a change request against an executed contract.
type Amendment struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AmendmentID   string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"amendment_id"`
	ContractID    string    `gorm:"type:varchar(64);index;not null" json:"contract_id"`
	ContractTitle string    `gorm:"type:varchar(255)" json:"contract_title"`
	AmendmentType string    `gorm:"type:varchar(64)" json:"amendment_type"`
	Description   string    `gorm:"type:text" json:"description"`
	Reason        string    `gorm:"type:text" json:"reason"`
	EffectiveDate string    `gorm:"type:varchar(32)" json:"effective_date"`
	RequestedBy   string    `gorm:"type:varchar(128)" json:"requested_by"`
	ApprovedBy    string    `gorm:"type:varchar(128)" json:"approved_by"`
	Status        string    `gorm:"type:varchar(32);index" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Amendment) TableName() string { return "contract_amendments" }
