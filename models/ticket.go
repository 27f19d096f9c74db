package models

import (
	"time"

	"github.com/google/uuid"
)

type TicketPriority string

const (
	PriorityLow    TicketPriority = "LOW"
	PriorityMedium TicketPriority = "MEDIUM"
	PriorityHigh   TicketPriority = "HIGH"
	PriorityUrgent TicketPriority = "URGENT"
)

type TicketStatus string

const (
	TicketOpen       TicketStatus = "OPEN"
	TicketInProgress TicketStatus = "IN_PROGRESS"
	TicketResolved   TicketStatus = "RESOLVED"
)

// Ticket is the persisted row. Status is only ever written by the store
// default; the create path never sets it.
type Ticket struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	Title       string         `json:"title" db:"title"`
	Description string         `json:"description" db:"description"`
	Priority    TicketPriority `json:"priority" db:"priority"`
	Status      TicketStatus   `json:"status" db:"status"`
	OrgID       string         `json:"orgId" db:"org_id"`
	RequesterID uuid.UUID      `json:"requesterId" db:"requester_id"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
}
