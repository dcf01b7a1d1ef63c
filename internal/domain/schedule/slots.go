package schedule

import (
	"encoding/json"
	"iter"
)

const DefaultSlotStepMin = 15

// Slot é uma opção discreta de horário de início na enumeração do dia.
type Slot struct {
	Start     int
	End       int
	Available bool

	// Conflict é o primeiro motivo quando indisponível; a lista completa
	// sai do Evaluate quando o chamador valida o horário escolhido.
	Conflict *Conflict
}

type slotJSON struct {
	Start     string    `json:"start"`
	End       string    `json:"end"`
	Available bool      `json:"available"`
	Conflict  *Conflict `json:"conflict,omitempty"`
}

func (s Slot) MarshalJSON() ([]byte, error) {
	return json.Marshal(slotJSON{
		Start:     FormatClock(s.Start),
		End:       FormatClock(s.End),
		Available: s.Available,
		Conflict:  s.Conflict,
	})
}

// EnumerateSlots varre o dia inteiro (00:00–24:00) em passos fixos,
// avaliando o mesmo snapshot para cada início. O dia completo sai de
// propósito: a interface distingue "fechado" de "ocupado" de "pausa".
//
// A sequência é preguiçosa, finita, reiniciável e ascendente. O custo é
// O(slots) avaliações sobre dados buscados uma única vez.
func EnumerateSlots(snap Snapshot, durationMin, stepMin int) iter.Seq[Slot] {
	if stepMin <= 0 {
		stepMin = DefaultSlotStepMin
	}
	return func(yield func(Slot) bool) {
		if durationMin <= 0 {
			return
		}
		for start := 0; start < MinutesPerDay; start += stepMin {
			end := start + durationMin
			slot := Slot{Start: start, End: end}

			if end > MinutesPerDay {
				// Passaria da meia-noite: indisponível, sem virar o dia.
				var hours *Interval
				if snap.Profile != nil {
					h := snap.Profile.WorkingHours
					hours = &h
				}
				c := OutsideWorkingHoursConflict(hours)
				slot.Conflict = &c
			} else {
				res := Evaluate(snap, Interval{Start: start, End: end}, 0)
				if res.Available {
					slot.Available = true
				} else {
					c := res.Conflicts[0]
					slot.Conflict = &c
				}
			}

			if !yield(slot) {
				return
			}
		}
	}
}
