package appointment

import (
	"github.com/glowdesk/salon-scheduler/internal/domain/schedule"
	"github.com/glowdesk/salon-scheduler/internal/models"
)

// CommandResult é a resposta dos comandos que dependem de agenda livre
// (criar, remarcar). Conflito de horário NÃO é erro de sistema: o
// comando devolve OK=false com a lista completa de motivos, e o
// handler responde 409 com esse corpo.
type CommandResult struct {
	OK        bool                `json:"ok"`
	Conflicts []schedule.Conflict `json:"conflicts,omitempty"`

	Appointment *models.Appointment `json:"appointment,omitempty"`
}

func rejected(conflicts []schedule.Conflict) *CommandResult {
	return &CommandResult{OK: false, Conflicts: conflicts}
}

func accepted(ap *models.Appointment) *CommandResult {
	return &CommandResult{OK: true, Appointment: ap}
}
