package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowdesk/salon-scheduler/internal/audit"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/middleware"
	"github.com/glowdesk/salon-scheduler/internal/models"
	"github.com/glowdesk/salon-scheduler/internal/timezone"
)

// Folga bloqueia dias inteiros. Só folga aprovada afeta a
// disponibilidade; pendente e rejeitada são invisíveis para o motor.
type TimeOffHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewTimeOffHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *TimeOffHandler {
	return &TimeOffHandler{db: db, audit: dispatcher}
}

type CreateTimeOffRequest struct {
	StartDate string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   string `json:"end_date" binding:"required"`   // YYYY-MM-DD
	Reason    string `json:"reason"`
}

// ======================================================
// CREATE (PROFISSIONAL)
// ======================================================

func (h *TimeOffHandler) Create(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateTimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.Internal(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	start, err := parseDateInSalon(&salon, req.StartDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inicial inválida.")
		return
	}
	end, err := parseDateInSalon(&salon, req.EndDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data final inválida.")
		return
	}
	if end.Before(start) {
		httperr.BadRequest(c, "invalid_date_range", "Data final antes da inicial.")
		return
	}

	timeOff := models.TimeOffRequest{
		SalonID:   salonID,
		StaffID:   staffID,
		StartDate: start,
		EndDate:   end,
		Status:    models.TimeOffPending,
		Reason:    req.Reason,
	}

	if err := h.db.Create(&timeOff).Error; err != nil {
		httperr.Internal(c, "failed_to_create_time_off", "Erro ao registrar pedido de folga.")
		return
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &staffID,
		Action:   "time_off_requested",
		Entity:   "time_off",
		EntityID: &timeOff.ID,
	})

	c.JSON(http.StatusCreated, timeOff)
}

// ======================================================
// LIST
// ======================================================

func (h *TimeOffHandler) ListMine(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	var requests []models.TimeOffRequest
	if err := h.db.
		Where("staff_id = ?", staffID).
		Order("start_date DESC").
		Find(&requests).Error; err != nil {

		httperr.Internal(c, "failed_to_list_time_off", "Erro ao listar folgas.")
		return
	}

	c.JSON(http.StatusOK, requests)
}

func (h *TimeOffHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	q := h.db.Where("salon_id = ?", salonID)

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var requests []models.TimeOffRequest
	if err := q.
		Order("start_date DESC").
		Find(&requests).Error; err != nil {

		httperr.Internal(c, "failed_to_list_time_off", "Erro ao listar folgas.")
		return
	}

	c.JSON(http.StatusOK, requests)
}

// ======================================================
// DECIDE (GERÊNCIA)
// ======================================================

func (h *TimeOffHandler) Approve(c *gin.Context) {
	h.decide(c, models.TimeOffApproved, "time_off_approved")
}

func (h *TimeOffHandler) Reject(c *gin.Context) {
	h.decide(c, models.TimeOffRejected, "time_off_rejected")
}

func (h *TimeOffHandler) decide(c *gin.Context, status, action string) {
	deciderID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Pedido inválido.")
		return
	}

	var timeOff models.TimeOffRequest
	if err := h.db.
		Where("id = ? AND salon_id = ?", id64, salonID).
		First(&timeOff).Error; err != nil {

		httperr.NotFound(c, "time_off_not_found", "Pedido de folga não encontrado.")
		return
	}

	if timeOff.Status != models.TimeOffPending {
		httperr.BadRequest(c, "invalid_state", "Pedido já foi decidido.")
		return
	}

	now := timezone.Now()
	timeOff.Status = status
	timeOff.DecidedBy = &deciderID
	timeOff.DecidedAt = &now

	if err := h.db.Save(&timeOff).Error; err != nil {
		httperr.Internal(c, "failed_to_update_time_off", "Erro ao salvar decisão.")
		return
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &deciderID,
		Action:   action,
		Entity:   "time_off",
		EntityID: &timeOff.ID,
	})

	c.JSON(http.StatusOK, timeOff)
}
