package scheduling

import (
	"context"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/glowdesk/salon-scheduler/internal/domain/schedule"
	"github.com/glowdesk/salon-scheduler/internal/models"
)

// fakeRepo é o snapshot em memória usado nos testes de caso de uso:
// nenhum banco, nenhuma goroutine, só dados montados à mão.
type fakeRepo struct {
	salon    models.Salon
	services map[uint]models.SalonService
	profiles map[uint]*schedule.CalendarProfile

	// bookings por profissional+data (YYYY-MM-DD).
	bookings map[string][]schedule.BookingRecord
	timeOff  map[string]bool

	appointments map[uint]*models.Appointment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		salon: models.Salon{
			ID:       1,
			Name:     "Studio Aurora",
			Slug:     "studio-aurora",
			Timezone: "UTC",
		},
		services:     map[uint]models.SalonService{},
		profiles:     map[uint]*schedule.CalendarProfile{},
		bookings:     map[string][]schedule.BookingRecord{},
		timeOff:      map[string]bool{},
		appointments: map[uint]*models.Appointment{},
	}
}

func dayKey(staffID uint, t time.Time) string {
	return t.Format("2006-01-02") + "/" + strconv.Itoa(int(staffID))
}

func (f *fakeRepo) GetSalonByID(_ context.Context, id uint) (*models.Salon, error) {
	if id != f.salon.ID {
		return nil, gorm.ErrRecordNotFound
	}
	s := f.salon
	return &s, nil
}

func (f *fakeRepo) GetSalonBySlug(_ context.Context, slug string) (*models.Salon, error) {
	if slug != f.salon.Slug {
		return nil, gorm.ErrRecordNotFound
	}
	s := f.salon
	return &s, nil
}

func (f *fakeRepo) GetService(_ context.Context, _ uint, serviceID uint) (*models.SalonService, error) {
	svc, ok := f.services[serviceID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &svc, nil
}

func (f *fakeRepo) GetCalendarProfile(_ context.Context, staffID uint) (*schedule.CalendarProfile, error) {
	return f.profiles[staffID], nil
}

func (f *fakeRepo) ListBlockingBookings(_ context.Context, staffID uint, dayStart, _ time.Time) ([]schedule.BookingRecord, error) {
	return f.bookings[dayKey(staffID, dayStart)], nil
}

func (f *fakeRepo) HasApprovedTimeOff(_ context.Context, staffID uint, date time.Time) (bool, error) {
	return f.timeOff[dayKey(staffID, date)], nil
}

func (f *fakeRepo) GetOrCreateClient(_ context.Context, salonID uint, name, phone, email string) (*models.Client, error) {
	return &models.Client{ID: 1, SalonID: salonID, Name: name, Phone: phone, Email: email}, nil
}

func (f *fakeRepo) GetAppointmentForSalon(_ context.Context, appointmentID, _ uint) (*models.Appointment, error) {
	ap, ok := f.appointments[appointmentID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) CreateAppointmentIfFree(_ context.Context, ap *models.Appointment) error {
	ap.ID = uint(len(f.appointments) + 1)
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeRepo) MoveAppointmentIfFree(_ context.Context, ap *models.Appointment) error {
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(_ context.Context, _ uint, _, _ time.Time) ([]models.Appointment, error) {
	return nil, nil
}

var _ schedule.Repository = (*fakeRepo)(nil)
