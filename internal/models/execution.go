package models

import (
	"time"

	"github.com/google/uuid"
)

// Execution captures the signing of a contract and the executed copy's details.
type Execution struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ExecutionID     string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"execution_id"`
	ContractID      string    `gorm:"type:varchar(64);index;not null" json:"contract_id"`
	ContractTitle   string    `gorm:"type:varchar(255)" json:"contract_title"`
	ContractType    string    `gorm:"type:varchar(64)" json:"contract_type"`
	ContractParties string    `gorm:"type:text" json:"contract_parties"`
	EffectiveDate   string    `gorm:"type:varchar(32)" json:"effective_date"`
	ExpiryDate      string    `gorm:"type:varchar(32)" json:"expiry_date"`
	ContractValue   float64   `gorm:"type:numeric(14,2)" json:"contract_value"`
	SignedBy        string    `gorm:"type:varchar(128)" json:"signed_by"`
	SigningMethod   string    `gorm:"type:varchar(64)" json:"signing_method"`
	ExecutionDate   string    `gorm:"type:varchar(32)" json:"execution_date"`
	WitnessName     string    `gorm:"type:varchar(128)" json:"witness_name"`
	Repository      string    `gorm:"type:varchar(255)" json:"repository"`
	Notes           string    `gorm:"type:text" json:"notes"`
	Status          string    `gorm:"type:varchar(32);index" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Execution) TableName() string { return "contract_executions" }
