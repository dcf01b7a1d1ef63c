package models

import "time"

// StaffSchedule é a agenda semanal estática de um profissional: dias de
// expediente, janela de atendimento e pausa. Uma linha por profissional.
type StaffSchedule struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	StaffID uint `gorm:"uniqueIndex" json:"staff_id"`

	// Dias da semana com expediente, CSV de 0 (domingo) a 6 (sábado).
	WorkDays string `gorm:"size:20" json:"work_days"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	BreakStart string `gorm:"size:5" json:"break_start"`
	BreakEnd   string `gorm:"size:5" json:"break_end"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
