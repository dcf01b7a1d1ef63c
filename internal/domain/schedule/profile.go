package schedule

import "time"

// WeekdaySet é um bitmask dos dias com expediente (domingo = bit 0).
type WeekdaySet uint8

func Weekdays(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s |= 1 << uint(d)
	}
	return s
}

func (s WeekdaySet) Has(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

func (s WeekdaySet) Days() []time.Weekday {
	var out []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// CalendarProfile são as regras semanais estáticas de um profissional.
// Snapshot de leitura: edições acontecem fora do motor, via configurações
// de equipe; aqui nada é alterado.
type CalendarProfile struct {
	WorkingDays  WeekdaySet
	WorkingHours Interval
	Break        *Interval
}
