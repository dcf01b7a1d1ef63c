package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/glowdesk/salon-scheduler/internal/domain/schedule"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/timezone"
)

// loadSnapshot busca perfil, agendamentos do dia e folga UMA vez por
// (profissional, dia). Nada é cacheado entre chamadas: a agenda pode
// mudar entre a enumeração e a reserva, então refazer a leitura ganha
// em correção o que perde em latência.
func loadSnapshot(
	ctx context.Context,
	repo schedule.Repository,
	staffID uint,
	date time.Time,
) (schedule.Snapshot, error) {

	dayStart, dayEnd := timezone.DayBounds(date)

	profile, err := repo.GetCalendarProfile(ctx, staffID)
	if err != nil {
		return schedule.Snapshot{}, err
	}

	bookings, err := repo.ListBlockingBookings(ctx, staffID, dayStart, dayEnd)
	if err != nil {
		return schedule.Snapshot{}, err
	}

	timeOff, err := repo.HasApprovedTimeOff(ctx, staffID, dayStart)
	if err != nil {
		return schedule.Snapshot{}, err
	}

	return schedule.Snapshot{
		Profile:  profile,
		Weekday:  dayStart.Weekday(),
		Bookings: bookings,
		TimeOff:  timeOff,
	}, nil
}

// candidateInterval valida a entrada do chamador ANTES de qualquer
// avaliação: formato ruim e duração <= 0 são erro de chamada, nunca
// "indisponível".
func candidateInterval(clock string, durationMin int) (schedule.Interval, error) {
	if durationMin <= 0 {
		return schedule.Interval{}, httperr.ErrBusiness("invalid_duration")
	}

	candidate, err := schedule.ClockInterval(clock, durationMin)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidTimeFormat):
			return schedule.Interval{}, httperr.ErrBusiness("invalid_time_format")
		case errors.Is(err, schedule.ErrInvalidInterval):
			return schedule.Interval{}, httperr.ErrBusiness("invalid_interval")
		}
		return schedule.Interval{}, err
	}

	return candidate, nil
}

func parseDate(dateStr string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date")
	}
	return date, nil
}
