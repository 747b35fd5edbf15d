package models

import (
	"time"

	"github.com/google/uuid"
)

// Draft is a working version of contract text before execution.
type Draft struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DraftID      string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"draft_id"`
	ContractID   string    `gorm:"type:varchar(64);index" json:"contract_id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	TemplateName string    `gorm:"type:varchar(128)" json:"template_name"`
	Version      int       `json:"version"`
	Author       string    `gorm:"type:varchar(128)" json:"author"`
	Content      string    `gorm:"type:text" json:"content"`
	ReviewStatus string    `gorm:"type:varchar(64)" json:"review_status"`
	Status       string    `gorm:"type:varchar(32);index" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Draft) TableName() string { return "contract_drafts" }
