package models

import (
	"time"

	"github.com/google/uuid"
)

// StorageRecord locates the physical or archival copy of a contract.
type StorageRecord struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StorageID       string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"storage_id"`
	ContractID      string    `gorm:"type:varchar(64);index;not null" json:"contract_id"`
	ContractTitle   string    `gorm:"type:varchar(255)" json:"contract_title"`
	Location        string    `gorm:"type:varchar(255)" json:"location"`
	StorageType     string    `gorm:"type:varchar(64)" json:"storage_type"`
	BoxNumber       string    `gorm:"type:varchar(64)" json:"box_number"`
	RetentionPeriod string    `gorm:"type:varchar(64)" json:"retention_period"`
	DisposalDate    string    `gorm:"type:varchar(32)" json:"disposal_date"`
	Custodian       string    `gorm:"type:varchar(128)" json:"custodian"`
	Status          string    `gorm:"type:varchar(32);index" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (StorageRecord) TableName() string { return "contract_storage" }
