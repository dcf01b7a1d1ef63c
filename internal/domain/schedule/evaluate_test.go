package schedule

import (
	"reflect"
	"testing"
	"time"
)

func fullWeek() WeekdaySet {
	return Weekdays(
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	)
}

func profile9to17(brk *Interval) *CalendarProfile {
	return &CalendarProfile{
		WorkingDays:  fullWeek(),
		WorkingHours: Interval{Start: 9 * 60, End: 17 * 60},
		Break:        brk,
	}
}

func codes(conflicts []Conflict) []ConflictCode {
	out := make([]ConflictCode, 0, len(conflicts))
	for _, c := range conflicts {
		out = append(out, c.Code)
	}
	return out
}

func TestEvaluate_Available(t *testing.T) {
	snap := Snapshot{Profile: profile9to17(nil), Weekday: time.Tuesday}

	res := Evaluate(snap, Interval{Start: 10 * 60, End: 11 * 60}, 0)
	if !res.Available {
		t.Fatalf("expected available, got conflicts %v", codes(res.Conflicts))
	}
	if len(res.Conflicts) != 0 {
		t.Fatalf("available result must carry no conflicts")
	}
}

func TestEvaluate_EndAtClosingIsAvailable(t *testing.T) {
	snap := Snapshot{Profile: profile9to17(nil), Weekday: time.Monday}

	res := Evaluate(snap, Interval{Start: 16 * 60, End: 17 * 60}, 0)
	if !res.Available {
		t.Fatalf("candidate ending at closing must be available, got %v", codes(res.Conflicts))
	}
}

func TestEvaluate_NoProfile(t *testing.T) {
	// Sem perfil: folga e sobreposição ainda são checadas.
	snap := Snapshot{
		Weekday: time.Monday,
		TimeOff: true,
		Bookings: []BookingRecord{
			{ID: 7, Interval: Interval{Start: 10 * 60, End: 11 * 60}, Blocking: true},
		},
	}

	res := Evaluate(snap, Interval{Start: 10 * 60, End: 12 * 60}, 0)
	want := []ConflictCode{ConflictNoCalendarProfile, ConflictOnApprovedTimeOff, ConflictOverlap}
	if !reflect.DeepEqual(codes(res.Conflicts), want) {
		t.Fatalf("got %v, want %v", codes(res.Conflicts), want)
	}
}

func TestEvaluate_OutsideWorkingDays(t *testing.T) {
	snap := Snapshot{
		Profile: &CalendarProfile{
			WorkingDays:  Weekdays(time.Monday, time.Tuesday, time.Wednesday),
			WorkingHours: Interval{Start: 9 * 60, End: 17 * 60},
		},
		Weekday: time.Sunday,
	}

	res := Evaluate(snap, Interval{Start: 10 * 60, End: 11 * 60}, 0)
	if !reflect.DeepEqual(codes(res.Conflicts), []ConflictCode{ConflictOutsideWorkingDays}) {
		t.Fatalf("got %v", codes(res.Conflicts))
	}
	if res.Conflicts[0].Weekday == nil || *res.Conflicts[0].Weekday != time.Sunday {
		t.Fatalf("conflict must carry the weekday")
	}
}

func TestEvaluate_BreakPrecedence(t *testing.T) {
	brk := Interval{Start: 12 * 60, End: 13 * 60}
	snap := Snapshot{Profile: profile9to17(&brk), Weekday: time.Friday}

	// 11:30–12:30 está dentro do expediente; só a pausa conflita.
	res := Evaluate(snap, Interval{Start: 11*60 + 30, End: 12*60 + 30}, 0)
	if !reflect.DeepEqual(codes(res.Conflicts), []ConflictCode{ConflictOnBreak}) {
		t.Fatalf("expected exactly on_break, got %v", codes(res.Conflicts))
	}
}

func TestEvaluate_StartAtBreakEnd(t *testing.T) {
	brk := Interval{Start: 12 * 60, End: 13 * 60}
	snap := Snapshot{Profile: profile9to17(&brk), Weekday: time.Friday}

	res := Evaluate(snap, Interval{Start: 13 * 60, End: 14 * 60}, 0)
	if !res.Available {
		t.Fatalf("starting at break end must not overlap it, got %v", codes(res.Conflicts))
	}
}

func TestEvaluate_TimeOffOnly(t *testing.T) {
	snap := Snapshot{Profile: profile9to17(nil), Weekday: time.Thursday, TimeOff: true}

	res := Evaluate(snap, Interval{Start: 10 * 60, End: 11 * 60}, 0)
	if !reflect.DeepEqual(codes(res.Conflicts), []ConflictCode{ConflictOnApprovedTimeOff}) {
		t.Fatalf("expected exactly on_approved_time_off, got %v", codes(res.Conflicts))
	}
}

func TestEvaluate_ReportsEveryOverlap(t *testing.T) {
	// Dupla reserva pré-existente nos dados: as duas aparecem.
	snap := Snapshot{
		Profile: profile9to17(nil),
		Weekday: time.Monday,
		Bookings: []BookingRecord{
			{ID: 1, Interval: Interval{Start: 10 * 60, End: 10*60 + 30}, Blocking: true},
			{ID: 2, Interval: Interval{Start: 10*60 + 15, End: 10*60 + 45}, Blocking: true},
		},
	}

	res := Evaluate(snap, Interval{Start: 10*60 + 20, End: 10*60 + 40}, 0)
	want := []ConflictCode{ConflictOverlap, ConflictOverlap}
	if !reflect.DeepEqual(codes(res.Conflicts), want) {
		t.Fatalf("got %v, want two overlaps", codes(res.Conflicts))
	}
	if res.Conflicts[0].BookingID != 1 || res.Conflicts[1].BookingID != 2 {
		t.Fatalf("overlaps must identify each booking: %+v", res.Conflicts)
	}
}

func TestEvaluate_SelfExclusion(t *testing.T) {
	booking := BookingRecord{ID: 42, Interval: Interval{Start: 10 * 60, End: 11 * 60}, Blocking: true}
	snap := Snapshot{Profile: profile9to17(nil), Weekday: time.Monday, Bookings: []BookingRecord{booking}}
	candidate := Interval{Start: 10 * 60, End: 11 * 60}

	// Sem exclusão: conflita consigo mesmo.
	if res := Evaluate(snap, candidate, 0); res.Available {
		t.Fatalf("expected overlap without exclusion")
	}

	// Excluindo o próprio registro: livre.
	if res := Evaluate(snap, candidate, 42); !res.Available {
		t.Fatalf("expected available when excluding itself, got %v", codes(res.Conflicts))
	}
}

func TestEvaluate_NonBlockingIgnored(t *testing.T) {
	snap := Snapshot{
		Profile: profile9to17(nil),
		Weekday: time.Monday,
		Bookings: []BookingRecord{
			{ID: 3, Interval: Interval{Start: 10 * 60, End: 11 * 60}, Blocking: false},
		},
	}

	if res := Evaluate(snap, Interval{Start: 10 * 60, End: 11 * 60}, 0); !res.Available {
		t.Fatalf("cancelled bookings must never block, got %v", codes(res.Conflicts))
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	brk := Interval{Start: 12 * 60, End: 13 * 60}
	snap := Snapshot{
		Profile: profile9to17(&brk),
		Weekday: time.Wednesday,
		TimeOff: true,
		Bookings: []BookingRecord{
			{ID: 9, Interval: Interval{Start: 12*60 + 15, End: 12*60 + 45}, Blocking: true},
		},
	}
	candidate := Interval{Start: 12 * 60, End: 12*60 + 30}

	first := Evaluate(snap, candidate, 0)
	second := Evaluate(snap, candidate, 0)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same snapshot must yield the same result:\n%+v\n%+v", first, second)
	}
}
