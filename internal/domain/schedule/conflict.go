package schedule

import (
	"encoding/json"
	"time"
)

type ConflictCode string

const (
	ConflictOverlap             ConflictCode = "overlap"
	ConflictOutsideWorkingDays  ConflictCode = "outside_working_days"
	ConflictOutsideWorkingHours ConflictCode = "outside_working_hours"
	ConflictOnBreak             ConflictCode = "on_break"
	ConflictOnApprovedTimeOff   ConflictCode = "on_approved_time_off"
	ConflictNoCalendarProfile   ConflictCode = "no_calendar_profile"
)

// Conflict é um motivo discreto de indisponibilidade. Vários podem
// valer ao mesmo tempo; o avaliador devolve todos, nunca só o primeiro.
type Conflict struct {
	Code         ConflictCode
	BookingID    uint
	WorkingHours *Interval
	Break        *Interval
	Weekday      *time.Weekday
}

func OverlapConflict(bookingID uint) Conflict {
	return Conflict{Code: ConflictOverlap, BookingID: bookingID}
}

func OutsideWorkingDaysConflict(d time.Weekday) Conflict {
	return Conflict{Code: ConflictOutsideWorkingDays, Weekday: &d}
}

func OutsideWorkingHoursConflict(hours *Interval) Conflict {
	return Conflict{Code: ConflictOutsideWorkingHours, WorkingHours: hours}
}

func OnBreakConflict(b Interval) Conflict {
	return Conflict{Code: ConflictOnBreak, Break: &b}
}

func TimeOffConflict() Conflict {
	return Conflict{Code: ConflictOnApprovedTimeOff}
}

func NoProfileConflict() Conflict {
	return Conflict{Code: ConflictNoCalendarProfile}
}

func (c Conflict) Message() string {
	switch c.Code {
	case ConflictOverlap:
		return "Conflito com outro agendamento."
	case ConflictOutsideWorkingDays:
		return "Sem expediente neste dia da semana."
	case ConflictOutsideWorkingHours:
		return "Fora do horário de atendimento."
	case ConflictOnBreak:
		return "Dentro do horário de pausa."
	case ConflictOnApprovedTimeOff:
		return "Folga aprovada para esta data."
	case ConflictNoCalendarProfile:
		return "Profissional sem agenda configurada."
	}
	return "Indisponível."
}

type conflictJSON struct {
	Code         ConflictCode  `json:"code"`
	Message      string        `json:"message"`
	BookingID    uint          `json:"booking_id,omitempty"`
	WorkingHours *Interval     `json:"working_hours,omitempty"`
	Break        *Interval     `json:"break,omitempty"`
	Weekday      *time.Weekday `json:"weekday,omitempty"`
}

func (c Conflict) MarshalJSON() ([]byte, error) {
	return json.Marshal(conflictJSON{
		Code:         c.Code,
		Message:      c.Message(),
		BookingID:    c.BookingID,
		WorkingHours: c.WorkingHours,
		Break:        c.Break,
		Weekday:      c.Weekday,
	})
}
