package models

import (
	"time"

	"github.com/google/uuid"
)

// Negotiation is one round of back-and-forth with a counterparty.
type Negotiation struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	NegotiationID   string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"negotiation_id"`
	ContractID      string    `gorm:"type:varchar(64);index;not null" json:"contract_id"`
	ContractTitle   string    `gorm:"type:varchar(255)" json:"contract_title"`
	Counterparty    string    `gorm:"type:varchar(255)" json:"counterparty"`
	Round           int       `json:"round"`
	Topic           string    `gorm:"type:varchar(255)" json:"topic"`
	Position        string    `gorm:"type:text" json:"position"`
	CounterPosition string    `gorm:"type:text" json:"counter_position"`
	Outcome         string    `gorm:"type:text" json:"outcome"`
	NextMeeting     string    `gorm:"type:varchar(32)" json:"next_meeting"`
	Lead            string    `gorm:"type:varchar(128)" json:"lead"`
	Status          string    `gorm:"type:varchar(32);index" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Negotiation) TableName() string { return "contract_negotiations" }
