package models

import (
	"time"

	"github.com/google/uuid"
)

// Renewal tracks an upcoming expiry and the decision taken on it.
type Renewal struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RenewalID      string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"renewal_id"`
	ContractID     string    `gorm:"type:varchar(64);index;not null" json:"contract_id"`
	ContractTitle  string    `gorm:"type:varchar(255)" json:"contract_title"`
	CurrentExpiry  string    `gorm:"type:varchar(32)" json:"current_expiry"`
	ProposedTerm   string    `gorm:"type:varchar(128)" json:"proposed_term"`
	RenewalValue   float64   `gorm:"type:numeric(14,2)" json:"renewal_value"`
	NoticeDeadline string    `gorm:"type:varchar(32)" json:"notice_deadline"`
	Negotiator     string    `gorm:"type:varchar(128)" json:"negotiator"`
	Decision       string    `gorm:"type:varchar(64)" json:"decision"`
	Status         string    `gorm:"type:varchar(32);index" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Renewal) TableName() string { return "contract_renewals" }
