package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/glowdesk/salon-scheduler/internal/httperr"
)

// mapBusinessError traduz erros de negócio dos casos de uso para a
// resposta HTTP. Qualquer coisa fora da tabela vira 500 genérico.
func mapBusinessError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch be.Code {
	case "salon_not_found":
		httperr.NotFound(c, be.Code, "Salão não encontrado.")
	case "service_not_found":
		httperr.NotFound(c, be.Code, "Serviço não encontrado.")
	case "appointment_not_found":
		httperr.NotFound(c, be.Code, "Agendamento não encontrado.")
	case "time_off_not_found":
		httperr.NotFound(c, be.Code, "Pedido de folga não encontrado.")

	case "time_conflict":
		httperr.Conflict(c, be.Code, "Conflito de horário.")

	case "invalid_date":
		httperr.BadRequest(c, be.Code, "Data inválida.")
	case "invalid_time_format":
		httperr.BadRequest(c, be.Code, "Hora inválida, use HH:mm.")
	case "invalid_interval":
		httperr.BadRequest(c, be.Code, "Janela de horário inválida.")
	case "invalid_duration":
		httperr.BadRequest(c, be.Code, "Duração inválida.")
	case "invalid_state":
		httperr.BadRequest(c, be.Code, "Agendamento não permite esta operação.")
	case "too_soon":
		httperr.BadRequest(c, be.Code, "Horário abaixo da antecedência mínima.")

	default:
		httperr.BadRequest(c, be.Code, "Requisição inválida.")
	}
}
