package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/glowdesk/salon-scheduler/internal/domain/appointment"
	"github.com/glowdesk/salon-scheduler/internal/domain/schedule"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/models"
	"github.com/glowdesk/salon-scheduler/internal/timezone"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Salon / Catálogo
// --------------------------------------------------

func (r *ScheduleGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *ScheduleGormRepository) GetSalonBySlug(
	ctx context.Context,
	slug string,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&salon).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *ScheduleGormRepository) GetService(
	ctx context.Context,
	salonID uint,
	serviceID uint,
) (*models.SalonService, error) {

	var service models.SalonService
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", serviceID, salonID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Diretório de equipe
// --------------------------------------------------

// GetCalendarProfile traduz a linha de agenda semanal para o valor puro
// do motor. Profissional sem agenda (ou com agenda inválida/inativa)
// vira (nil, nil): indisponível, não erro.
func (r *ScheduleGormRepository) GetCalendarProfile(
	ctx context.Context,
	staffID uint,
) (*schedule.CalendarProfile, error) {

	var row models.StaffSchedule
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		First(&row).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if !row.Active || row.StartTime == "" || row.EndTime == "" {
		return nil, nil
	}

	return buildProfile(&row), nil
}

func buildProfile(row *models.StaffSchedule) *schedule.CalendarProfile {
	startMin, err := schedule.ParseClock(row.StartTime)
	if err != nil {
		return nil
	}
	endMin, err := schedule.ParseClock(row.EndTime)
	if err != nil {
		return nil
	}

	hours, err := schedule.NewInterval(startMin, endMin)
	if err != nil {
		return nil
	}

	profile := &schedule.CalendarProfile{
		WorkingDays:  parseWorkDays(row.WorkDays),
		WorkingHours: hours,
	}

	if row.BreakStart != "" && row.BreakEnd != "" {
		bs, err1 := schedule.ParseClock(row.BreakStart)
		be, err2 := schedule.ParseClock(row.BreakEnd)
		if err1 == nil && err2 == nil {
			if brk, err := schedule.NewInterval(bs, be); err == nil {
				profile.Break = &brk
			}
		}
	}

	return profile
}

func parseWorkDays(csv string) schedule.WeekdaySet {
	var days []time.Weekday
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if n, err := strconv.Atoi(part); err == nil && n >= 0 && n <= 6 {
			days = append(days, time.Weekday(n))
		}
	}
	return schedule.Weekdays(days...)
}

// --------------------------------------------------
// Visão do dia (pré-filtrada)
// --------------------------------------------------

func (r *ScheduleGormRepository) ListBlockingBookings(
	ctx context.Context,
	staffID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]schedule.BookingRecord, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "staff_id", "start_time", "end_time").
		Where(
			"staff_id = ? AND status IN ? AND start_time >= ? AND start_time < ?",
			staffID, domain.BlockingStatuses, dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	loc := dayStart.Location()
	records := make([]schedule.BookingRecord, 0, len(apps))
	for _, ap := range apps {
		startMin := timezone.MinuteOfDay(ap.StartTime, loc)
		endMin := timezone.MinuteOfDay(ap.EndTime, loc)
		if endMin == 0 && ap.EndTime.After(ap.StartTime) {
			// fim exatamente à meia-noite do dia seguinte
			endMin = schedule.MinutesPerDay
		}

		iv, err := schedule.NewInterval(startMin, endMin)
		if err != nil {
			// linha fora do modelo de um dia só; não entra na visão
			continue
		}

		records = append(records, schedule.BookingRecord{
			ID:       ap.ID,
			StaffID:  ap.StaffID,
			Interval: iv,
			Blocking: true,
		})
	}

	return records, nil
}

func (r *ScheduleGormRepository) HasApprovedTimeOff(
	ctx context.Context,
	staffID uint,
	date time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TimeOffRequest{}).
		Where(
			"staff_id = ? AND status = ? AND start_date <= ? AND end_date >= ?",
			staffID, models.TimeOffApproved, date, date,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Cliente
// --------------------------------------------------

func (r *ScheduleGormRepository) GetOrCreateClient(
	ctx context.Context,
	salonID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("salon_id = ? AND phone = ?", salonID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		SalonID: salonID,
		Name:    name,
		Phone:   phone,
		Email:   email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Agendamento (commit / mutação)
// --------------------------------------------------

func (r *ScheduleGormRepository) GetAppointmentForSalon(
	ctx context.Context,
	appointmentID uint,
	salonID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", appointmentID, salonID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

// CreateAppointmentIfFree revalida a sobreposição dentro de transação
// com SELECT ... FOR UPDATE antes de gravar: o motor decide, o
// armazenamento fecha a corrida entre checar e gravar.
func (r *ScheduleGormRepository) CreateAppointmentIfFree(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertNoOverlap(tx, ap, 0); err != nil {
			return err
		}
		return tx.Create(ap).Error
	})
}

// MoveAppointmentIfFree é o commit da remarcação: mesma trava, mas o
// próprio registro não conta como conflito.
func (r *ScheduleGormRepository) MoveAppointmentIfFree(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertNoOverlap(tx, ap, ap.ID); err != nil {
			return err
		}
		return tx.Save(ap).Error
	})
}

func assertNoOverlap(tx *gorm.DB, ap *models.Appointment, excludeID uint) error {
	q := tx.
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"staff_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			ap.StaffID, domain.BlockingStatuses, ap.EndTime, ap.StartTime,
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrBusiness("time_conflict")
	}
	return nil
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *ScheduleGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	staffID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where(
			"staff_id = ? AND start_time >= ? AND start_time < ?",
			staffID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ schedule.Repository = (*ScheduleGormRepository)(nil)
