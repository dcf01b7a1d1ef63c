package appointment

import (
	"context"
	"time"

	"github.com/glowdesk/salon-scheduler/internal/audit"
	domain "github.com/glowdesk/salon-scheduler/internal/domain/appointment"
	"github.com/glowdesk/salon-scheduler/internal/domain/schedule"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/timezone"
	"github.com/glowdesk/salon-scheduler/internal/usecase/scheduling"
)

// ======================================================
// INPUT
// ======================================================

type MoveAppointmentInput struct {
	SalonID       uint
	AppointmentID uint

	// Zero = mantém o profissional atual.
	NewStaffID uint

	Date string // YYYY-MM-DD
	Time string // HH:mm

	MovedBy *uint
}

// ======================================================
// USE CASE
// ======================================================

// MoveAppointment remarca via arrastar-e-soltar. O agendamento sendo
// movido é excluído da checagem de sobreposição, senão ele colidiria
// com o próprio horário em qualquer movimento pequeno.
type MoveAppointment struct {
	repo      schedule.Repository
	validator *scheduling.ValidateMove
	audit     *audit.Dispatcher
}

func NewMoveAppointment(
	repo schedule.Repository,
	auditor *audit.Dispatcher,
) *MoveAppointment {
	return &MoveAppointment{
		repo:      repo,
		validator: scheduling.NewValidateMove(repo),
		audit:     auditor,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *MoveAppointment) Execute(
	ctx context.Context,
	in MoveAppointmentInput,
) (*CommandResult, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForSalon(ctx, in.AppointmentID, in.SalonID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanMove(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	validateIn := scheduling.ValidateMoveInput{
		SalonID:       in.SalonID,
		AppointmentID: in.AppointmentID,
		NewStaffID:    in.NewStaffID,
		Date:          in.Date,
		Time:          in.Time,
	}

	res, err := uc.validator.Execute(ctx, validateIn)
	if err != nil {
		return nil, err
	}
	if !res.Available {
		return rejected(res.Conflicts), nil
	}

	loc := timezone.Location(salon.Timezone)
	start, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.Time, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	duration := ap.EndTime.Sub(ap.StartTime)
	end := start.Add(duration)

	staffID := in.NewStaffID
	if staffID == 0 {
		staffID = ap.StaffID
	}

	if err := domain.Move(ap, staffID, start, end); err != nil {
		return nil, err
	}

	if err := uc.repo.MoveAppointmentIfFree(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "time_conflict") || httperr.IsExclusionConflict(err) {
			fresh, ferr := uc.validator.Execute(ctx, validateIn)
			if ferr == nil && !fresh.Available {
				return rejected(fresh.Conflicts), nil
			}
			return nil, httperr.ErrBusiness("time_conflict")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   in.MovedBy,
		Action:   "appointment_moved",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"date": in.Date, "time": in.Time},
	})

	return accepted(ap), nil
}
