package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowdesk/salon-scheduler/internal/domain/schedule"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/middleware"
	"github.com/glowdesk/salon-scheduler/internal/models"
)

type StaffScheduleHandler struct {
	db *gorm.DB
}

func NewStaffScheduleHandler(db *gorm.DB) *StaffScheduleHandler {
	return &StaffScheduleHandler{db: db}
}

type StaffScheduleRequest struct {
	WorkDays []int `json:"work_days" binding:"required"`

	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`

	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`

	Active *bool `json:"active"`
}

// ======================================================
// GET (PRÓPRIA AGENDA)
// ======================================================

func (h *StaffScheduleHandler) GetMine(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)
	h.getFor(c, staffID)
}

// ======================================================
// GET / PUT (GERÊNCIA)
// ======================================================

func (h *StaffScheduleHandler) Get(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	staffID, ok := h.staffInSalon(c, salonID)
	if !ok {
		return
	}
	h.getFor(c, staffID)
}

func (h *StaffScheduleHandler) Put(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	staffID, ok := h.staffInSalon(c, salonID)
	if !ok {
		return
	}

	var req StaffScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !h.validate(c, &req) {
		return
	}

	days := make([]string, 0, len(req.WorkDays))
	for _, d := range req.WorkDays {
		days = append(days, strconv.Itoa(d))
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	var sched models.StaffSchedule
	err := h.db.Where("staff_id = ?", staffID).First(&sched).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		httperr.Internal(c, "failed_to_get_schedule", "Erro ao buscar agenda.")
		return
	}

	sched.StaffID = staffID
	sched.WorkDays = strings.Join(days, ",")
	sched.StartTime = req.StartTime
	sched.EndTime = req.EndTime
	sched.BreakStart = req.BreakStart
	sched.BreakEnd = req.BreakEnd
	sched.Active = active

	if err := h.db.Save(&sched).Error; err != nil {
		httperr.Internal(c, "failed_to_save_schedule", "Erro ao salvar agenda.")
		return
	}

	c.JSON(http.StatusOK, sched)
}

// ======================================================
// HELPERS
// ======================================================

func (h *StaffScheduleHandler) getFor(c *gin.Context, staffID uint) {
	var sched models.StaffSchedule
	if err := h.db.Where("staff_id = ?", staffID).First(&sched).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "schedule_not_found", "Profissional sem agenda configurada.")
			return
		}
		httperr.Internal(c, "failed_to_get_schedule", "Erro ao buscar agenda.")
		return
	}

	c.JSON(http.StatusOK, sched)
}

func (h *StaffScheduleHandler) staffInSalon(c *gin.Context, salonID uint) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "Profissional inválido.")
		return 0, false
	}

	var staff models.User
	if err := h.db.
		Where("id = ? AND salon_id = ?", id64, salonID).
		First(&staff).Error; err != nil {

		httperr.NotFound(c, "staff_not_found", "Profissional não encontrado.")
		return 0, false
	}

	return staff.ID, true
}

func (h *StaffScheduleHandler) validate(c *gin.Context, req *StaffScheduleRequest) bool {
	if len(req.WorkDays) == 0 {
		httperr.BadRequest(c, "invalid_work_days", "Informe ao menos um dia de expediente.")
		return false
	}
	for _, d := range req.WorkDays {
		if d < 0 || d > 6 {
			httperr.BadRequest(c, "invalid_work_days", "Dias devem estar entre 0 (domingo) e 6 (sábado).")
			return false
		}
	}

	start, err := schedule.ParseClock(req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_time_format", "Início do expediente inválido, use HH:mm.")
		return false
	}
	end, err := schedule.ParseClock(req.EndTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_time_format", "Fim do expediente inválido, use HH:mm.")
		return false
	}
	if start >= end {
		httperr.BadRequest(c, "invalid_interval", "Expediente deve começar antes de terminar.")
		return false
	}

	// Pausa é opcional, mas vem inteira ou não vem.
	if (req.BreakStart == "") != (req.BreakEnd == "") {
		httperr.BadRequest(c, "invalid_break", "Pausa precisa de início e fim.")
		return false
	}

	if req.BreakStart != "" {
		bs, err := schedule.ParseClock(req.BreakStart)
		if err != nil {
			httperr.BadRequest(c, "invalid_time_format", "Início da pausa inválido, use HH:mm.")
			return false
		}
		be, err := schedule.ParseClock(req.BreakEnd)
		if err != nil {
			httperr.BadRequest(c, "invalid_time_format", "Fim da pausa inválido, use HH:mm.")
			return false
		}
		if bs >= be || bs < start || be > end {
			httperr.BadRequest(c, "invalid_break", "Pausa deve caber dentro do expediente.")
			return false
		}
	}

	return true
}
