package models

import (
	"strings"
	"time"
)

type ComplaintStatus string

const (
	ComplaintStatusPending    ComplaintStatus = "pending"
	ComplaintStatusInProgress ComplaintStatus = "in-progress"
	ComplaintStatusResolved   ComplaintStatus = "resolved"
	ComplaintStatusEscalated  ComplaintStatus = "escalated"
)

// ParseComplaintStatus maps a client-supplied status onto the closed set.
// The legacy spellings "new" and "in_progress" are accepted.
func ParseComplaintStatus(raw string) (ComplaintStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending", "new":
		return ComplaintStatusPending, true
	case "in-progress", "in_progress":
		return ComplaintStatusInProgress, true
	case "resolved":
		return ComplaintStatusResolved, true
	case "escalated":
		return ComplaintStatusEscalated, true
	}
	return "", false
}

type ComplaintPriority string

const (
	PriorityLow    ComplaintPriority = "low"
	PriorityMedium ComplaintPriority = "medium"
	PriorityHigh   ComplaintPriority = "high"
	PriorityUrgent ComplaintPriority = "urgent"
)

func ParseComplaintPriority(raw string) (ComplaintPriority, bool) {
	switch p := ComplaintPriority(strings.ToLower(strings.TrimSpace(raw))); p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return p, true
	}
	return "", false
}

type Complaint struct {
	ID           uint64            `gorm:"primarykey" json:"id"`
	ComplaintID  string            `gorm:"column:complaint_id;type:varchar(40);uniqueIndex;not null" json:"complaintId"`
	UserID       *uint64           `gorm:"index" json:"user_id"`
	Title        string            `gorm:"type:varchar(255);not null" json:"title"`
	Category     string            `gorm:"type:varchar(100);not null" json:"category"`
	Description  string            `gorm:"type:text;not null" json:"description"`
	Priority     ComplaintPriority `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	Status       ComplaintStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	AdminComment *string           `gorm:"type:text" json:"admin_comment"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"-"`
}
