package appointment

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/glowdesk/salon-scheduler/internal/domain/schedule"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/models"
)

// fakeRepo cobre só o que os comandos tocam: um salão, um serviço, um
// profissional com expediente cheio e os agendamentos num mapa.
type fakeRepo struct {
	salon   models.Salon
	service models.SalonService
	profile *schedule.CalendarProfile

	bookings     []schedule.BookingRecord
	appointments map[uint]*models.Appointment
	nextID       uint

	// Simula perder a corrida no primeiro INSERT.
	failFirstCreate bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		salon:   models.Salon{ID: 1, Name: "Studio Aurora", Slug: "studio-aurora", Timezone: "UTC"},
		service: models.SalonService{ID: 2, SalonID: 1, Name: "Corte", DurationMin: 60},
		profile: &schedule.CalendarProfile{
			WorkingDays: schedule.Weekdays(
				time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
				time.Thursday, time.Friday, time.Saturday,
			),
			WorkingHours: schedule.Interval{Start: 9 * 60, End: 17 * 60},
		},
		appointments: map[uint]*models.Appointment{},
		nextID:       100,
	}
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
	if serviceID != f.service.ID {
		return nil, gorm.ErrRecordNotFound
	}
	svc := f.service
	return &svc, nil
}

func (f *fakeRepo) GetCalendarProfile(_ context.Context, _ uint) (*schedule.CalendarProfile, error) {
	return f.profile, nil
}

func (f *fakeRepo) ListBlockingBookings(_ context.Context, _ uint, _, _ time.Time) ([]schedule.BookingRecord, error) {
	return f.bookings, nil
}

func (f *fakeRepo) HasApprovedTimeOff(_ context.Context, _ uint, _ time.Time) (bool, error) {
	return false, nil
}

func (f *fakeRepo) GetOrCreateClient(_ context.Context, salonID uint, name, phone, email string) (*models.Client, error) {
	return &models.Client{ID: 7, SalonID: salonID, Name: name, Phone: phone, Email: email}, nil
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
	if f.failFirstCreate {
		f.failFirstCreate = false
		f.bookings = append(f.bookings, schedule.BookingRecord{
			ID:       99,
			StaffID:  ap.StaffID,
			Interval: schedule.Interval{Start: 10 * 60, End: 11 * 60},
			Blocking: true,
		})
		return httperr.ErrBusiness("time_conflict")
	}

	f.nextID++
	ap.ID = f.nextID
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

// ======================================================
// CREATE
// ======================================================

func TestCreateAppointment(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, nil)

	res, err := uc.Execute(context.Background(), CreateAppointmentInput{
		SalonID:     1,
		StaffID:     10,
		ServiceID:   2,
		ClientName:  "Helena",
		ClientPhone: "11 91234-5678",
		Date:        "2026-09-14",
		Time:        "10:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.OK || res.Appointment == nil {
		t.Fatalf("expected accepted result, got %+v", res)
	}

	ap := res.Appointment
	if ap.Status != "scheduled" {
		t.Fatalf("status = %q", ap.Status)
	}
	if ap.PublicRef == "" {
		t.Fatalf("public_ref must be set")
	}
	if got := ap.EndTime.Sub(ap.StartTime); got != time.Hour {
		t.Fatalf("duration = %v", got)
	}
}

func TestCreateAppointment_ConflictIsResultNotError(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings = []schedule.BookingRecord{
		{ID: 3, StaffID: 10, Interval: schedule.Interval{Start: 10 * 60, End: 11 * 60}, Blocking: true},
	}

	uc := NewCreateAppointment(repo, nil)
	res, err := uc.Execute(context.Background(), CreateAppointmentInput{
		SalonID:   1,
		StaffID:   10,
		ServiceID: 2,
		Date:      "2026-09-14",
		Time:      "10:30",
	})
	if err != nil {
		t.Fatalf("conflict must not be an error: %v", err)
	}
	if res.OK || len(res.Conflicts) == 0 {
		t.Fatalf("expected rejection with reasons, got %+v", res)
	}
	if res.Conflicts[0].Code != schedule.ConflictOverlap {
		t.Fatalf("expected overlap, got %+v", res.Conflicts)
	}
}

func TestCreateAppointment_RaceReturnsFreshConflicts(t *testing.T) {
	repo := newFakeRepo()
	repo.failFirstCreate = true

	uc := NewCreateAppointment(repo, nil)
	res, err := uc.Execute(context.Background(), CreateAppointmentInput{
		SalonID:   1,
		StaffID:   10,
		ServiceID: 2,
		Date:      "2026-09-14",
		Time:      "10:00",
	})
	if err != nil {
		t.Fatalf("lost race must not be an error: %v", err)
	}
	if res.OK {
		t.Fatalf("expected rejection after losing the race")
	}
	if res.Conflicts[0].Code != schedule.ConflictOverlap || res.Conflicts[0].BookingID != 99 {
		t.Fatalf("expected fresh overlap from reloaded snapshot, got %+v", res.Conflicts)
	}
}

func TestCreateAppointment_TooSoon(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		SalonID:           1,
		StaffID:           10,
		ServiceID:         2,
		Date:              "2020-01-01", // passado: sempre aquém da antecedência
		Time:              "10:00",
		EnforceMinAdvance: true,
	})
	if !httperr.IsBusiness(err, "too_soon") {
		t.Fatalf("expected too_soon, got %v", err)
	}
}

// ======================================================
// MOVE
// ======================================================

func seed(repo *fakeRepo, id uint, status string, startMin, endMin int) *models.Appointment {
	day, _ := time.Parse("2006-01-02", "2026-09-14")
	ap := &models.Appointment{
		ID:        id,
		SalonID:   1,
		StaffID:   10,
		StartTime: day.Add(time.Duration(startMin) * time.Minute),
		EndTime:   day.Add(time.Duration(endMin) * time.Minute),
		Status:    status,
	}
	repo.appointments[id] = ap
	repo.bookings = append(repo.bookings, schedule.BookingRecord{
		ID:       id,
		StaffID:  10,
		Interval: schedule.Interval{Start: startMin, End: endMin},
		Blocking: status == "scheduled" || status == "completed",
	})
	return ap
}

func TestMoveAppointment(t *testing.T) {
	repo := newFakeRepo()
	seed(repo, 42, "scheduled", 10*60, 11*60)

	uc := NewMoveAppointment(repo, nil)
	res, err := uc.Execute(context.Background(), MoveAppointmentInput{
		SalonID:       1,
		AppointmentID: 42,
		Date:          "2026-09-14",
		Time:          "14:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.OK {
		t.Fatalf("expected move to pass, got %+v", res.Conflicts)
	}

	moved := repo.appointments[42]
	if moved.StartTime.Hour() != 14 || moved.EndTime.Hour() != 15 {
		t.Fatalf("window not updated: %v - %v", moved.StartTime, moved.EndTime)
	}
}

func TestMoveAppointment_SmallNudgeOverItself(t *testing.T) {
	repo := newFakeRepo()
	seed(repo, 42, "scheduled", 10*60, 11*60)

	uc := NewMoveAppointment(repo, nil)
	res, err := uc.Execute(context.Background(), MoveAppointmentInput{
		SalonID:       1,
		AppointmentID: 42,
		Date:          "2026-09-14",
		Time:          "10:15",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.OK {
		t.Fatalf("nudging over its own window must pass, got %+v", res.Conflicts)
	}
}

func TestMoveAppointment_InvalidState(t *testing.T) {
	repo := newFakeRepo()
	seed(repo, 42, "cancelled", 10*60, 11*60)

	uc := NewMoveAppointment(repo, nil)
	_, err := uc.Execute(context.Background(), MoveAppointmentInput{
		SalonID:       1,
		AppointmentID: 42,
		Date:          "2026-09-14",
		Time:          "14:00",
	})
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

// ======================================================
// STATE COMMANDS
// ======================================================

func TestCancelThenCompleteFails(t *testing.T) {
	repo := newFakeRepo()
	seed(repo, 42, "scheduled", 10*60, 11*60)

	cancel := NewCancelAppointment(repo, nil)
	ap, err := cancel.Execute(context.Background(), 1, 42, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != "cancelled" || ap.CancelledAt == nil {
		t.Fatalf("cancel did not stick: %+v", ap)
	}

	complete := NewCompleteAppointment(repo, nil)
	if _, err := complete.Execute(context.Background(), 1, 42, nil); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state after cancel, got %v", err)
	}
}

func TestMarkNoShow(t *testing.T) {
	repo := newFakeRepo()
	seed(repo, 42, "scheduled", 10*60, 11*60)

	uc := NewMarkNoShow(repo, nil)
	ap, err := uc.Execute(context.Background(), 1, 42, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != "no_show" || ap.NoShowAt == nil {
		t.Fatalf("no-show did not stick: %+v", ap)
	}
}
