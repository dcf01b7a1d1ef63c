package schedule

import "time"

// Snapshot é a foto profissional+dia montada UMA vez pelo chamador.
// O motor não busca dados nem guarda estado entre chamadas: entradas
// iguais produzem sempre o mesmo resultado.
type Snapshot struct {
	Profile  *CalendarProfile
	Weekday  time.Weekday
	Bookings []BookingRecord
	TimeOff  bool
}

type AvailabilityResult struct {
	Available bool       `json:"available"`
	Conflicts []Conflict `json:"conflicts"`
}

// Evaluate decide se o candidato cabe na agenda, acumulando TODOS os
// motivos de conflito (a recepção mostra a lista inteira de uma vez).
//
// excludeBookingID existe só para o caso de mover um agendamento: o
// registro atual dele não conflita consigo mesmo. Zero = sem exclusão.
func Evaluate(snap Snapshot, candidate Interval, excludeBookingID uint) AvailabilityResult {
	conflicts := make([]Conflict, 0, 4)

	if snap.Profile == nil {
		// Sem agenda não dá para checar dia/horário/pausa, mas folga
		// e sobreposição não dependem do perfil.
		conflicts = append(conflicts, NoProfileConflict())
	} else {
		p := snap.Profile

		if !p.WorkingDays.Has(snap.Weekday) {
			conflicts = append(conflicts, OutsideWorkingDaysConflict(snap.Weekday))
		}

		// Semiaberto: candidato terminando exatamente no fim do
		// expediente ainda está contido.
		if !p.WorkingHours.Contains(candidate) {
			hours := p.WorkingHours
			conflicts = append(conflicts, OutsideWorkingHoursConflict(&hours))
		}

		if p.Break != nil && candidate.Overlaps(*p.Break) {
			conflicts = append(conflicts, OnBreakConflict(*p.Break))
		}
	}

	if snap.TimeOff {
		conflicts = append(conflicts, TimeOffConflict())
	}

	for _, b := range snap.Bookings {
		if !b.Blocking {
			continue
		}
		if excludeBookingID != 0 && b.ID == excludeBookingID {
			continue
		}
		if candidate.Overlaps(b.Interval) {
			// Um conflito por agendamento sobreposto, não só o primeiro.
			conflicts = append(conflicts, OverlapConflict(b.ID))
		}
	}

	return AvailabilityResult{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}
}
