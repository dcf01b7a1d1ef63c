package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/glowdesk/salon-scheduler/internal/audit"
	domain "github.com/glowdesk/salon-scheduler/internal/domain/appointment"
	"github.com/glowdesk/salon-scheduler/internal/domain/schedule"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/models"
	"github.com/glowdesk/salon-scheduler/internal/timezone"
	"github.com/glowdesk/salon-scheduler/internal/usecase/scheduling"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	SalonID uint
	StaffID uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID uint

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string

	// Autor do comando (nil em reservas públicas).
	CreatedBy *uint

	// Reservas públicas respeitam a antecedência mínima do salão;
	// a recepção pode encaixar em cima da hora.
	EnforceMinAdvance bool
}

// ======================================================
// USE CASE
// ======================================================

// CreateAppointment cria a reserva depois de passar o candidato pelo
// avaliador de disponibilidade. Se a escrita perder a corrida para
// outra reserva, o snapshot é recarregado e os motivos atualizados
// voltam no resultado.
type CreateAppointment struct {
	repo    schedule.Repository
	checker *scheduling.CheckAvailability
	audit   *audit.Dispatcher
}

func NewCreateAppointment(
	repo schedule.Repository,
	auditor *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:    repo,
		checker: scheduling.NewCheckAvailability(repo),
		audit:   auditor,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*CommandResult, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	checkIn := scheduling.CheckAvailabilityInput{
		SalonID:     in.SalonID,
		StaffID:     in.StaffID,
		Date:        in.Date,
		Time:        in.Time,
		DurationMin: service.DurationMin,
	}

	res, err := uc.checker.Execute(ctx, checkIn)
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
	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	if in.EnforceMinAdvance {
		minAdvance := salon.MinAdvanceMinutes
		if minAdvance <= 0 {
			minAdvance = 120
		}

		now := timezone.NowIn(salon.Timezone)
		if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
			return nil, httperr.ErrBusiness("too_soon")
		}
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.SalonID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		SalonID:   in.SalonID,
		StaffID:   in.StaffID,
		ClientID:  client.ID,
		ServiceID: service.ID,
		PublicRef: uuid.NewString(),
		StartTime: start,
		EndTime:   end,
		Status:    string(domain.InitialStatus()),
		Notes:     in.Notes,
	}

	if err := uc.repo.CreateAppointmentIfFree(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "time_conflict") || httperr.IsExclusionConflict(err) {
			// Outra escrita ganhou a corrida entre a avaliação e o
			// INSERT: reavalia e devolve os motivos atuais.
			fresh, ferr := uc.checker.Execute(ctx, checkIn)
			if ferr == nil && !fresh.Available {
				return rejected(fresh.Conflicts), nil
			}
			return nil, httperr.ErrBusiness("time_conflict")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   in.CreatedBy,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"date": in.Date, "time": in.Time},
	})

	return accepted(ap), nil
}
