package models

import (
	"time"

	"github.com/google/uuid"
)

// Document is the metadata record for an uploaded contract file. Only name,
// size, checksum and a storage path are kept; byte persistence is handled
// outside this service.
type Document struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ContractID   string    `gorm:"type:varchar(64);index;not null" json:"contract_id"`
	DocumentType string    `gorm:"type:varchar(64)" json:"document_type"`
	FileName     string    `gorm:"type:varchar(255);not null" json:"file_name"`
	FileSize     int64     `json:"file_size"`
	FilePath     string    `gorm:"type:varchar(512)" json:"file_path"`
	Checksum     string    `gorm:"type:varchar(64)" json:"checksum"`
	UploadedBy   string    `gorm:"type:varchar(128)" json:"uploaded_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Document) TableName() string { return "contract_documents" }
