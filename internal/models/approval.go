package models

import (
	"time"

	"github.com/google/uuid"
)

// Approval tracks one approver's sign-off on a contract.
type Approval struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ApprovalID    string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"approval_id"`
	ContractID    string    `gorm:"type:varchar(64);index;not null" json:"contract_id"`
	ContractTitle string    `gorm:"type:varchar(255)" json:"contract_title"`
	ApproverName  string    `gorm:"type:varchar(128)" json:"approver_name"`
	ApproverRole  string    `gorm:"type:varchar(128)" json:"approver_role"`
	ApprovalLevel string    `gorm:"type:varchar(32)" json:"approval_level"`
	Comments      string    `gorm:"type:text" json:"comments"`
	DueDate       string    `gorm:"type:varchar(32)" json:"due_date"`
	DecisionDate  string    `gorm:"type:varchar(32)" json:"decision_date"`
	Status        string    `gorm:"type:varchar(32);index" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Approval) TableName() string { return "contract_approvals" }
