package schedule

import (
	"context"
	"time"

	"github.com/glowdesk/salon-scheduler/internal/models"
)

// Repository agrupa os colaboradores externos do motor: diretório de
// equipe, armazenamento de agendamentos e registro de folgas. O motor
// só lê; toda escrita passa pelos comandos de caso de uso.
type Repository interface {
	// -------- Salon / Catálogo --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	GetSalonBySlug(
		ctx context.Context,
		slug string,
	) (*models.Salon, error)

	GetService(
		ctx context.Context,
		salonID uint,
		serviceID uint,
	) (*models.SalonService, error)

	// -------- Diretório de equipe --------
	// Sem agenda configurada (ou profissional inexistente) retorna
	// (nil, nil): é "indisponível", não erro de sistema.
	GetCalendarProfile(
		ctx context.Context,
		staffID uint,
	) (*CalendarProfile, error)

	// -------- Visão do dia (pré-filtrada) --------
	ListBlockingBookings(
		ctx context.Context,
		staffID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]BookingRecord, error)

	HasApprovedTimeOff(
		ctx context.Context,
		staffID uint,
		date time.Time,
	) (bool, error)

	// -------- Cliente --------
	GetOrCreateClient(
		ctx context.Context,
		salonID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Agendamento (commit / mutação) --------
	GetAppointmentForSalon(
		ctx context.Context,
		appointmentID uint,
		salonID uint,
	) (*models.Appointment, error)

	// Revalida dentro de transação com lock antes de gravar; o motor
	// puro não garante atomicidade entre checar e gravar.
	CreateAppointmentIfFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	MoveAppointmentIfFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForPeriod(
		ctx context.Context,
		staffID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
