package models

import (
	"time"

	"github.com/google/uuid"
)

// MonitoringEntry is a tracked metric or deadline on an active contract.
type MonitoringEntry struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	MonitorID     string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"monitor_id"`
	ContractID    string    `gorm:"type:varchar(64);index;not null" json:"contract_id"`
	ContractTitle string    `gorm:"type:varchar(255)" json:"contract_title"`
	Metric        string    `gorm:"type:varchar(128)" json:"metric"`
	Threshold     string    `gorm:"type:varchar(64)" json:"threshold"`
	CurrentValue  string    `gorm:"type:varchar(64)" json:"current_value"`
	AlertLevel    string    `gorm:"type:varchar(32)" json:"alert_level"`
	LastChecked   string    `gorm:"type:varchar(32)" json:"last_checked"`
	AssignedTo    string    `gorm:"type:varchar(128)" json:"assigned_to"`
	Status        string    `gorm:"type:varchar(32);index" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (MonitoringEntry) TableName() string { return "contract_monitoring" }
