package models

import (
	"time"

	"github.com/google/uuid"
)

// Contract is the parent record every satellite resource points back to via
// ContractID, a human-assigned reference distinct from the surrogate ID.
// Status values (Draft, Pending, Approved, ...) are conventions, not enums.
type Contract struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ContractID    string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"contract_id"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title"`
	ContractType  string    `gorm:"type:varchar(64)" json:"contract_type"`
	Parties       string    `gorm:"type:text" json:"parties"`
	Department    string    `gorm:"type:varchar(128)" json:"department"`
	Owner         string    `gorm:"type:varchar(128)" json:"owner"`
	EffectiveDate string    `gorm:"type:varchar(32)" json:"effective_date"`
	ExpiryDate    string    `gorm:"type:varchar(32)" json:"expiry_date"`
	Value         float64   `gorm:"type:numeric(14,2)" json:"value"`
	Currency      string    `gorm:"type:varchar(8)" json:"currency"`
	Status        string    `gorm:"type:varchar(32);index" json:"status"`
	Priority      string    `gorm:"type:varchar(32)" json:"priority"`
	Description   string    `gorm:"type:text" json:"description"`
	Terms         string    `gorm:"type:text" json:"terms"`
	RenewalTerms  string    `gorm:"type:text" json:"renewal_terms"`
	GoverningLaw  string    `gorm:"type:varchar(128)" json:"governing_law"`
	Notes         string    `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Contract) TableName() string { return "contracts" }
