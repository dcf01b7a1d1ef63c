package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/middleware"
	"github.com/glowdesk/salon-scheduler/internal/usecase/scheduling"
)

// ======================================================
// HANDLER
// ======================================================

// AvailabilityHandler expõe o motor de disponibilidade para a
// recepção: checagem pontual, grade do dia e validação de remarcação.
type AvailabilityHandler struct {
	check    *scheduling.CheckAvailability
	slots    *scheduling.ListSlots
	validate *scheduling.ValidateMove
}

func NewAvailabilityHandler(
	check *scheduling.CheckAvailability,
	slots *scheduling.ListSlots,
	validate *scheduling.ValidateMove,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		check:    check,
		slots:    slots,
		validate: validate,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CheckAvailabilityRequest struct {
	StaffID     uint   `json:"staff_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	DurationMin int    `json:"duration_min" binding:"required,min=1"`
}

type ValidateMoveRequest struct {
	NewStaffID  uint   `json:"new_staff_id"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	DurationMin int    `json:"duration_min"`
}

// ======================================================
// CHECK
// ======================================================

func (h *AvailabilityHandler) Check(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	res, err := h.check.Execute(c.Request.Context(), scheduling.CheckAvailabilityInput{
		SalonID:     salonID,
		StaffID:     req.StaffID,
		Date:        req.Date,
		Time:        req.Time,
		DurationMin: req.DurationMin,
	})
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// ======================================================
// SLOTS
// ======================================================

func (h *AvailabilityHandler) Slots(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	staffID, err1 := strconv.ParseUint(c.Query("staff_id"), 10, 64)
	serviceID, err2 := strconv.ParseUint(c.Query("service_id"), 10, 64)
	date := c.Query("date")

	if err1 != nil || err2 != nil || date == "" {
		httperr.BadRequest(c, "missing_params", "Profissional, serviço e data são obrigatórios.")
		return
	}

	stepMin := 0
	if s := c.Query("step_min"); s != "" {
		stepMin, _ = strconv.Atoi(s)
	}

	slots, err := h.slots.Execute(c.Request.Context(), scheduling.ListSlotsInput{
		SalonID:   salonID,
		StaffID:   uint(staffID),
		ServiceID: uint(serviceID),
		Date:      date,
		StepMin:   stepMin,
	})
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": slots,
	})
}

// ======================================================
// VALIDATE MOVE
// ======================================================

func (h *AvailabilityHandler) ValidateMove(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Agendamento inválido.")
		return
	}

	var req ValidateMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	res, err := h.validate.Execute(c.Request.Context(), scheduling.ValidateMoveInput{
		SalonID:       salonID,
		AppointmentID: uint(appointmentID),
		NewStaffID:    req.NewStaffID,
		Date:          req.Date,
		Time:          req.Time,
		DurationMin:   req.DurationMin,
	})
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
