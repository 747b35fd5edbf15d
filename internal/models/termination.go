package models

import (
	"time"

	"github.com/google/uuid"
)

// Termination records notice given to end a contract before or at expiry.
type Termination struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TerminationID    string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"termination_id"`
	ContractID       string    `gorm:"type:varchar(64);index;not null" json:"contract_id"`
	ContractTitle    string    `gorm:"type:varchar(255)" json:"contract_title"`
	TerminationType  string    `gorm:"type:varchar(64)" json:"termination_type"`
	Reason           string    `gorm:"type:text" json:"reason"`
	NoticeDate       string    `gorm:"type:varchar(32)" json:"notice_date"`
	EffectiveDate    string    `gorm:"type:varchar(32)" json:"effective_date"`
	NoticePeriod     string    `gorm:"type:varchar(64)" json:"notice_period"`
	Penalties        string    `gorm:"type:text" json:"penalties"`
	SettlementAmount float64   `gorm:"type:numeric(14,2)" json:"settlement_amount"`
	Status           string    `gorm:"type:varchar(32);index" json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Termination) TableName() string { return "contract_terminations" }
