package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/idempotency"
	"github.com/glowdesk/salon-scheduler/internal/models"
	ucAppointment "github.com/glowdesk/salon-scheduler/internal/usecase/appointment"
	"github.com/glowdesk/salon-scheduler/internal/usecase/scheduling"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler atende o site de reservas do salão, sem login. Tudo é
// resolvido pelo slug e a antecedência mínima é sempre aplicada.
type PublicHandler struct {
	db     *gorm.DB
	slots  *scheduling.ListSlots
	create *ucAppointment.CreateAppointment
	idem   *idempotency.Guard
}

func NewPublicHandler(
	db *gorm.DB,
	slots *scheduling.ListSlots,
	create *ucAppointment.CreateAppointment,
	idem *idempotency.Guard,
) *PublicHandler {
	return &PublicHandler{
		db:     db,
		slots:  slots,
		create: create,
		idem:   idem,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	StaffID     uint   `json:"staff_id"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	Notes       string `json:"notes"`
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	salon, ok := h.salonFromSlug(c)
	if !ok {
		return
	}

	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.
		Where("salon_id = ? AND active = true", salon.ID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.SalonService
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"salon":    salon,
		"services": services,
	})
}

////////////////////////////////////////////////////////
// SLOTS (REUSO TOTAL DO USE CASE)
////////////////////////////////////////////////////////

func (h *PublicHandler) SlotsForClient(c *gin.Context) {
	salon, ok := h.salonFromSlug(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")
	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e serviço obrigatórios.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	staffID, ok := h.resolveStaff(c, salon)
	if !ok {
		return
	}

	slots, err := h.slots.Execute(c.Request.Context(), scheduling.ListSlotsInput{
		SalonID:   salon.ID,
		StaffID:   staffID,
		ServiceID: uint(serviceID),
		Date:      dateStr,
	})
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	salon, ok := h.salonFromSlug(c)
	if !ok {
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// Duplo clique no formulário não vira reserva dupla.
	if key := c.GetHeader("Idempotency-Key"); key != "" {
		fresh, err := h.idem.Claim(c.Request.Context(), salon.Slug+":"+key)
		if err == nil && !fresh {
			httperr.Conflict(c, "duplicate_request", "Requisição repetida, aguarde a primeira resposta.")
			return
		}
	}

	staffID := req.StaffID
	if staffID == 0 {
		var ok bool
		staffID, ok = h.resolveStaff(c, salon)
		if !ok {
			return
		}
	}

	res, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		SalonID:           salon.ID,
		StaffID:           staffID,
		ClientName:        req.ClientName,
		ClientPhone:       req.ClientPhone,
		ClientEmail:       req.ClientEmail,
		ServiceID:         req.ServiceID,
		Date:              req.Date,
		Time:              req.Time,
		Notes:             req.Notes,
		EnforceMinAdvance: true,
	})
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	if !res.OK {
		c.JSON(http.StatusConflict, res)
		return
	}

	ap := res.Appointment
	c.JSON(http.StatusCreated, gin.H{
		"public_ref": ap.PublicRef,
		"start_time": ap.StartTime,
		"end_time":   ap.EndTime,
		"status":     ap.Status,
	})
}

////////////////////////////////////////////////////////
// TRACK BY PUBLIC REF
////////////////////////////////////////////////////////

func (h *PublicHandler) GetByRef(c *gin.Context) {
	salon, ok := h.salonFromSlug(c)
	if !ok {
		return
	}

	ref := c.Param("ref")

	var ap models.Appointment
	if err := h.db.
		Preload("Service").
		Where("salon_id = ? AND public_ref = ?", salon.ID, ref).
		First(&ap).Error; err != nil {

		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"public_ref": ap.PublicRef,
		"service":    ap.Service.Name,
		"start_time": ap.StartTime,
		"end_time":   ap.EndTime,
		"status":     ap.Status,
	})
}

////////////////////////////////////////////////////////
// HELPERS
////////////////////////////////////////////////////////

func (h *PublicHandler) salonFromSlug(c *gin.Context) (*models.Salon, bool) {
	slug := c.Param("slug")

	var salon models.Salon
	if err := h.db.Where("slug = ?", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return nil, false
	}
	return &salon, true
}

// resolveStaff usa o staff_id da query quando presente; sem ele, cai no
// primeiro profissional ativo do salão (salão de um profissional só).
func (h *PublicHandler) resolveStaff(c *gin.Context, salon *models.Salon) (uint, bool) {
	if s := c.Query("staff_id"); s != "" {
		id64, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_staff_id", "Profissional inválido.")
			return 0, false
		}
		return uint(id64), true
	}

	var staff models.User
	if err := h.db.
		Where("salon_id = ? AND active = true", salon.ID).
		Order("id ASC").
		First(&staff).Error; err != nil {

		httperr.BadRequest(c, "staff_not_found", "Profissional não encontrado.")
		return 0, false
	}

	return staff.ID, true
}
