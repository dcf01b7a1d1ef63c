package scheduling

import (
	"context"

	"github.com/glowdesk/salon-scheduler/internal/domain/schedule"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type ListSlotsInput struct {
	SalonID   uint
	StaffID   uint
	ServiceID uint

	Date    string // YYYY-MM-DD
	StepMin int    // zero = passo default de 15min
}

// ======================================================
// USE CASE
// ======================================================

// ListSlots monta a grade verde/vermelha do dia para a interface:
// snapshot buscado uma vez, avaliador chamado por slot.
type ListSlots struct {
	repo schedule.Repository
}

func NewListSlots(repo schedule.Repository) *ListSlots {
	return &ListSlots{repo: repo}
}

func (uc *ListSlots) Execute(
	ctx context.Context,
	in ListSlotsInput,
) ([]schedule.Slot, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if service.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	date, err := parseDate(in.Date, timezone.Location(salon.Timezone))
	if err != nil {
		return nil, err
	}

	snap, err := loadSnapshot(ctx, uc.repo, in.StaffID, date)
	if err != nil {
		return nil, err
	}

	slots := make([]schedule.Slot, 0, schedule.MinutesPerDay/schedule.DefaultSlotStepMin)
	for slot := range schedule.EnumerateSlots(snap, service.DurationMin, in.StepMin) {
		slots = append(slots, slot)
	}

	return slots, nil
}
