package models

import (
	"time"

	"github.com/google/uuid"
)

// Obligation is a recurring or one-off duty a party owes under a contract.
type Obligation struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ObligationID     string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"obligation_id"`
	ContractID       string    `gorm:"type:varchar(64);index;not null" json:"contract_id"`
	ContractTitle    string    `gorm:"type:varchar(255)" json:"contract_title"`
	ObligationType   string    `gorm:"type:varchar(64)" json:"obligation_type"`
	Description      string    `gorm:"type:text" json:"description"`
	ResponsibleParty string    `gorm:"type:varchar(128)" json:"responsible_party"`
	DueDate          string    `gorm:"type:varchar(32)" json:"due_date"`
	Frequency        string    `gorm:"type:varchar(64)" json:"frequency"`
	CompletionDate   string    `gorm:"type:varchar(32)" json:"completion_date"`
	Status           string    `gorm:"type:varchar(32);index" json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Obligation) TableName() string { return "contract_obligations" }
