package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/glowdesk/salon-scheduler/internal/domain/schedule"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/models"
)

func seedAppointment(repo *fakeRepo, id, staffID uint, date string, startMin, endMin int) {
	day, _ := time.Parse("2006-01-02", date)
	start := day.Add(time.Duration(startMin) * time.Minute)
	end := day.Add(time.Duration(endMin) * time.Minute)

	repo.appointments[id] = &models.Appointment{
		ID:        id,
		SalonID:   repo.salon.ID,
		StaffID:   staffID,
		StartTime: start,
		EndTime:   end,
		Status:    "scheduled",
	}
	repo.bookings[dayKey(staffID, day)] = append(repo.bookings[dayKey(staffID, day)], schedule.BookingRecord{
		ID:       id,
		StaffID:  staffID,
		Interval: schedule.Interval{Start: startMin, End: endMin},
		Blocking: true,
	})
}

func TestValidateMove_SelfExclusion(t *testing.T) {
	repo := newFakeRepo()
	repo.profiles[10] = weekProfile()
	// Único agendamento do dia é o próprio que está sendo movido.
	seedAppointment(repo, 42, 10, "2026-09-14", 10*60, 11*60)

	uc := NewValidateMove(repo)
	res, err := uc.Execute(context.Background(), ValidateMoveInput{
		SalonID:       1,
		AppointmentID: 42,
		Date:          "2026-09-14",
		Time:          "10:30",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Available {
		t.Fatalf("moving over itself must be free, got %+v", res.Conflicts)
	}

	// A mesma janela como reserva NOVA conflita com o registro.
	check := NewCheckAvailability(repo)
	newRes, err := check.Execute(context.Background(), CheckAvailabilityInput{
		SalonID:     1,
		StaffID:     10,
		Date:        "2026-09-14",
		Time:        "10:30",
		DurationMin: 60,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if newRes.Available || newRes.Conflicts[0].Code != schedule.ConflictOverlap {
		t.Fatalf("new booking over existing must overlap, got %+v", newRes.Conflicts)
	}
}

func TestValidateMove_KeepsDurationByDefault(t *testing.T) {
	repo := newFakeRepo()
	repo.profiles[10] = weekProfile()
	seedAppointment(repo, 7, 10, "2026-09-14", 10*60, 10*60+45)

	uc := NewValidateMove(repo)
	// 16:30 + 45min termina 17:15, além do expediente.
	res, err := uc.Execute(context.Background(), ValidateMoveInput{
		SalonID:       1,
		AppointmentID: 7,
		Date:          "2026-09-14",
		Time:          "16:30",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Available || res.Conflicts[0].Code != schedule.ConflictOutsideWorkingHours {
		t.Fatalf("expected outside_working_hours, got %+v", res.Conflicts)
	}
}

func TestValidateMove_ToAnotherStaff(t *testing.T) {
	repo := newFakeRepo()
	repo.profiles[10] = weekProfile()
	repo.profiles[11] = weekProfile()
	seedAppointment(repo, 5, 10, "2026-09-14", 10*60, 11*60)
	// Destino ocupado no outro profissional.
	seedAppointment(repo, 6, 11, "2026-09-14", 10*60, 11*60)

	uc := NewValidateMove(repo)
	res, err := uc.Execute(context.Background(), ValidateMoveInput{
		SalonID:       1,
		AppointmentID: 5,
		NewStaffID:    11,
		Date:          "2026-09-14",
		Time:          "10:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Available {
		t.Fatalf("destination staff is busy, move must conflict")
	}
	if res.Conflicts[0].Code != schedule.ConflictOverlap || res.Conflicts[0].BookingID != 6 {
		t.Fatalf("conflict must point at the other staff booking: %+v", res.Conflicts)
	}

	// Horário livre no outro profissional passa.
	res, err = uc.Execute(context.Background(), ValidateMoveInput{
		SalonID:       1,
		AppointmentID: 5,
		NewStaffID:    11,
		Date:          "2026-09-14",
		Time:          "14:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Available {
		t.Fatalf("free window on destination staff must pass, got %+v", res.Conflicts)
	}
}

func TestValidateMove_MissingAppointment(t *testing.T) {
	repo := newFakeRepo()
	uc := NewValidateMove(repo)

	_, err := uc.Execute(context.Background(), ValidateMoveInput{
		SalonID:       1,
		AppointmentID: 404,
		Date:          "2026-09-14",
		Time:          "10:00",
	})
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}
