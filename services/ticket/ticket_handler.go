package ticketservice

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"ops360/utils"
)

type TicketHandler struct {
	Service TicketService
}

func NewTicketHandler(service TicketService) *TicketHandler {
	return &TicketHandler{
		Service: service,
	}
}

func (h *TicketHandler) GetTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.Service.ListTickets(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to fetch tickets")
		return
	}

	utils.RespondJSON(w, http.StatusOK, tickets)
}

func (h *TicketHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var req CreateTicketReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	if err := validator.New().Struct(req); err != nil {
		utils.RespondFieldErrors(w, utils.FlattenValidationErrors(err))
		return
	}

	ticket, err := h.Service.CreateTicket(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrRequesterMissing) {
			// Misconfiguration, not bad input: tell the operator what to fix.
			utils.RespondError(w, http.StatusInternalServerError, err, err.Error())
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to create ticket")
		return
	}

	utils.RespondJSON(w, http.StatusOK, ticket)
}
