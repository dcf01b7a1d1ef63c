package schedule

import (
	"errors"
	"testing"
)

func mustInterval(t *testing.T, start, end int) Interval {
	t.Helper()
	iv, err := NewInterval(start, end)
	if err != nil {
		t.Fatalf("NewInterval(%d, %d): %v", start, end, err)
	}
	return iv
}

func TestNewInterval_Invalid(t *testing.T) {
	cases := []struct {
		name       string
		start, end int
	}{
		{"zero length", 600, 600},
		{"negative length", 610, 600},
		{"negative start", -10, 60},
		{"past midnight", 1400, 1500},
	}

	for _, tc := range cases {
		if _, err := NewInterval(tc.start, tc.end); !errors.Is(err, ErrInvalidInterval) {
			t.Fatalf("%s: expected ErrInvalidInterval, got %v", tc.name, err)
		}
	}
}

func TestClockInterval(t *testing.T) {
	iv, err := ClockInterval("09:30", 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iv.Start != 9*60+30 || iv.End != 10*60+30 {
		t.Fatalf("unexpected interval: %v", iv)
	}
}

func TestClockInterval_CrossesMidnight(t *testing.T) {
	// 23:30 + 60min terminaria 00:30 do dia seguinte.
	if _, err := ClockInterval("23:30", 60); !errors.Is(err, ErrInvalidInterval) {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}
}

func TestClockInterval_BadInput(t *testing.T) {
	if _, err := ClockInterval("25:00", 30); !errors.Is(err, ErrInvalidTimeFormat) {
		t.Fatalf("expected ErrInvalidTimeFormat for 25:00, got %v", err)
	}
	if _, err := ClockInterval("half past nine", 30); !errors.Is(err, ErrInvalidTimeFormat) {
		t.Fatalf("expected ErrInvalidTimeFormat, got %v", err)
	}
	if _, err := ClockInterval("10:00", 0); !errors.Is(err, ErrInvalidInterval) {
		t.Fatalf("expected ErrInvalidInterval for zero duration, got %v", err)
	}
	if _, err := ClockInterval("10:00", -15); !errors.Is(err, ErrInvalidInterval) {
		t.Fatalf("expected ErrInvalidInterval for negative duration, got %v", err)
	}
}

func TestOverlaps(t *testing.T) {
	a := mustInterval(t, 600, 660)
	b := mustInterval(t, 660, 720)
	c := mustInterval(t, 630, 690)

	// Semiaberto: fim encostado em início não sobrepõe.
	if a.Overlaps(b) || b.Overlaps(a) {
		t.Fatalf("touching intervals must not overlap")
	}
	if !a.Overlaps(c) || !c.Overlaps(a) {
		t.Fatalf("expected overlap between %v and %v", a, c)
	}
	// Um intervalo sempre sobrepõe a si mesmo.
	if !a.Overlaps(a) {
		t.Fatalf("interval must overlap itself")
	}
}

func TestContains(t *testing.T) {
	hours := mustInterval(t, 9*60, 17*60)

	// Terminar exatamente no fim do expediente ainda está contido.
	if !hours.Contains(mustInterval(t, 16*60, 17*60)) {
		t.Fatalf("candidate ending at hours end must be contained")
	}
	if hours.Contains(mustInterval(t, 16*60+30, 17*60+30)) {
		t.Fatalf("candidate past hours end must not be contained")
	}
	if hours.Contains(mustInterval(t, 8*60, 10*60)) {
		t.Fatalf("candidate before hours start must not be contained")
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(9*60 + 5); got != "09:05" {
		t.Fatalf("FormatClock: got %q", got)
	}
	if got := mustInterval(t, 540, 1020).String(); got != "09:00-17:00" {
		t.Fatalf("String: got %q", got)
	}
}
