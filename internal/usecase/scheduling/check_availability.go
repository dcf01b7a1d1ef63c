package scheduling

import (
	"context"

	"github.com/glowdesk/salon-scheduler/internal/domain/schedule"
	"github.com/glowdesk/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CheckAvailabilityInput struct {
	SalonID uint
	StaffID uint

	Date        string // YYYY-MM-DD
	Time        string // HH:mm
	DurationMin int
}

// ======================================================
// USE CASE
// ======================================================

// CheckAvailability é a validação de reserva nova: monta o snapshot do
// dia e pergunta ao avaliador, sem exclusão de agendamento.
type CheckAvailability struct {
	repo schedule.Repository
}

func NewCheckAvailability(repo schedule.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

func (uc *CheckAvailability) Execute(
	ctx context.Context,
	in CheckAvailabilityInput,
) (schedule.AvailabilityResult, error) {

	candidate, err := candidateInterval(in.Time, in.DurationMin)
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

	snap, err := loadSnapshot(ctx, uc.repo, in.StaffID, date)
	if err != nil {
		return schedule.AvailabilityResult{}, err
	}

	return schedule.Evaluate(snap, candidate, 0), nil
}
