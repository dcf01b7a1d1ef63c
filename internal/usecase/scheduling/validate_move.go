package scheduling

import (
	"context"
	"time"

	"github.com/glowdesk/salon-scheduler/internal/domain/schedule"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type ValidateMoveInput struct {
	SalonID       uint
	AppointmentID uint

	// Zero = mantém o profissional atual.
	NewStaffID uint

	Date string // YYYY-MM-DD
	Time string // HH:mm

	// Zero = mantém a duração atual do agendamento.
	DurationMin int
}

// ======================================================
// USE CASE
// ======================================================

// ValidateMove valida o arrastar-e-soltar de um agendamento. O registro
// atual dele é excluído da checagem de sobreposição: só importa quando
// o destino é o mesmo profissional no mesmo dia, o caso comum.
type ValidateMove struct {
	repo schedule.Repository
}

func NewValidateMove(repo schedule.Repository) *ValidateMove {
	return &ValidateMove{repo: repo}
}

func (uc *ValidateMove) Execute(
	ctx context.Context,
	in ValidateMoveInput,
) (schedule.AvailabilityResult, error) {

	ap, err := uc.repo.GetAppointmentForSalon(ctx, in.AppointmentID, in.SalonID)
	if err != nil {
		return schedule.AvailabilityResult{}, httperr.ErrBusiness("appointment_not_found")
	}

	durationMin := in.DurationMin
	if durationMin == 0 {
		durationMin = int(ap.EndTime.Sub(ap.StartTime) / time.Minute)
	}

	candidate, err := candidateInterval(in.Time, durationMin)
	if err != nil {
		return schedule.AvailabilityResult{}, err
	}

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return schedule.AvailabilityResult{}, err
	}

	date, err := parseDate(in.Date, timezone.Location(salon.Timezone))
	if err != nil {
		return schedule.AvailabilityResult{}, err
	}

	staffID := in.NewStaffID
	if staffID == 0 {
		staffID = ap.StaffID
	}

	snap, err := loadSnapshot(ctx, uc.repo, staffID, date)
	if err != nil {
		return schedule.AvailabilityResult{}, err
	}

	return schedule.Evaluate(snap, candidate, ap.ID), nil
}
