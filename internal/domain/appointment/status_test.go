package appointment

import (
	"testing"
	"time"

	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/models"
)

func TestIsBlocking(t *testing.T) {
	if !IsBlocking(StatusScheduled) || !IsBlocking(StatusCompleted) {
		t.Fatalf("scheduled/completed must block")
	}
	if IsBlocking(StatusCancelled) || IsBlocking(StatusNoShow) {
		t.Fatalf("cancelled/no_show must never block")
	}
}

func TestMove(t *testing.T) {
	now := time.Now()
	ap := &models.Appointment{Status: string(StatusScheduled)}

	start := now.Add(24 * time.Hour)
	end := start.Add(45 * time.Minute)
	if err := Move(ap, 8, start, end); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.StaffID != 8 || !ap.StartTime.Equal(start) || !ap.EndTime.Equal(end) {
		t.Fatalf("move did not apply: %+v", ap)
	}
}

func TestMove_InvalidState(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusCancelled)}
	err := Move(ap, 1, time.Now(), time.Now().Add(time.Hour))
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

func TestCancelThenComplete(t *testing.T) {
	now := time.Now()
	ap := &models.Appointment{Status: string(StatusScheduled)}

	if err := Cancel(ap, now); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if ap.Status != string(StatusCancelled) || ap.CancelledAt == nil {
		t.Fatalf("cancel did not apply: %+v", ap)
	}
	if err := Complete(ap, now); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("completing a cancelled appointment must fail, got %v", err)
	}
}
