package models

import "time"

const (
	TimeOffPending  = "pending"
	TimeOffApproved = "approved"
	TimeOffRejected = "rejected"
)

// TimeOffRequest bloqueia dias inteiros (inclusive nas duas pontas).
// Não existe folga parcial de dia neste modelo.
type TimeOffRequest struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `json:"salon_id"`
	StaffID uint `gorm:"index" json:"staff_id"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Reason string `gorm:"size:255" json:"reason"`

	DecidedBy *uint      `json:"decided_by"`
	DecidedAt *time.Time `json:"decided_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
