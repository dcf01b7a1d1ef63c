package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// MinutesPerDay limita qualquer intervalo a um único dia civil.
// Turnos que cruzam meia-noite não são suportados.
const MinutesPerDay = 24 * 60

var (
	ErrInvalidInterval   = errors.New("invalid interval")
	ErrInvalidTimeFormat = errors.New("invalid time format")
)

// Interval é uma janela em minutos do dia, semiaberta [Start, End).
// Valor imutável: criado por comparação, nunca alterado.
type Interval struct {
	Start int
	End   int
}

func NewInterval(start, end int) (Interval, error) {
	if start < 0 || end > MinutesPerDay || start >= end {
		return Interval{}, fmt.Errorf("%w: [%d, %d)", ErrInvalidInterval, start, end)
	}
	return Interval{Start: start, End: end}, nil
}

// ClockInterval monta o intervalo a partir de "HH:MM" + duração em minutos.
func ClockInterval(clock string, durationMin int) (Interval, error) {
	start, err := ParseClock(clock)
	if err != nil {
		return Interval{}, err
	}
	if durationMin <= 0 {
		return Interval{}, fmt.Errorf("%w: duration %d", ErrInvalidInterval, durationMin)
	}
	return NewInterval(start, start+durationMin)
}

func ParseClock(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, clock)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// Overlaps: semiaberto, então fim encostado em início não conflita.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && o.Start < i.End
}

func (i Interval) Contains(o Interval) bool {
	return i.Start <= o.Start && o.End <= i.End
}

func (i Interval) Duration() int {
	return i.End - i.Start
}

func (i Interval) String() string {
	return FormatClock(i.Start) + "-" + FormatClock(i.End)
}

type clockRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (i Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(clockRange{
		Start: FormatClock(i.Start),
		End:   FormatClock(i.End),
	})
}
