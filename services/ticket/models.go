package ticketservice

import "ops360/models"

type CreateTicketReq struct {
	Title       string                `json:"title" validate:"required,min=3"`
	Description string                `json:"description" validate:"required,min=3"`
	Priority    models.TicketPriority `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
}
