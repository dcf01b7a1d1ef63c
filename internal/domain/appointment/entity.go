package appointment

import (
	"time"

	"github.com/glowdesk/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func MarkNoShow(ap *models.Appointment, now time.Time) error {
	if err := CanMarkNoShow(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusNoShow)
	ap.NoShowAt = &now
	return nil
}

// Move remarca o agendamento: pode trocar profissional, dia e horário.
// A validação de disponibilidade acontece ANTES, no caso de uso.
func Move(
	ap *models.Appointment,
	staffID uint,
	start time.Time,
	end time.Time,
) error {
	if err := CanMove(Status(ap.Status)); err != nil {
		return err
	}

	ap.StaffID = staffID
	ap.StartTime = start
	ap.EndTime = end
	return nil
}
