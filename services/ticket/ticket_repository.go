package ticketservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"ops360/models"
)

type TicketRepository interface {
	GetUserByEmail(ctx context.Context, userEmail string) (uuid.UUID, error)
	ListTicketsByOrg(ctx context.Context, orgID string) ([]models.Ticket, error)
	CreateTicket(ctx context.Context, req CreateTicketReq, orgID string, requesterID uuid.UUID) (models.Ticket, error)
}

type PostgresTicketRepository struct {
	DB *sqlx.DB
}

func NewTicketRepository(db *sqlx.DB) TicketRepository {
	return &PostgresTicketRepository{DB: db}
}

func (r *PostgresTicketRepository) GetUserByEmail(ctx context.Context, userEmail string) (uuid.UUID, error) {
	var userID uuid.UUID

	err := r.DB.GetContext(ctx, &userID, `
		SELECT id FROM users
		WHERE email = $1
	`, userEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, sql.ErrNoRows
		}
		return uuid.Nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}
	return userID, nil
}

func (r *PostgresTicketRepository) ListTicketsByOrg(ctx context.Context, orgID string) ([]models.Ticket, error) {
	tickets := make([]models.Ticket, 0)

	err := r.DB.SelectContext(ctx, &tickets, `
		SELECT id, title, description, priority, status, org_id, requester_id, created_at
		FROM tickets
		WHERE org_id = $1
		ORDER BY created_at DESC
	`, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tickets: %w", err)
	}
	return tickets, nil
}

// CreateTicket inserts the new row and returns the full record. Status is
// never part of the column list; the store default sets it to OPEN.
func (r *PostgresTicketRepository) CreateTicket(ctx context.Context, req CreateTicketReq, orgID string, requesterID uuid.UUID) (models.Ticket, error) {
	var ticket models.Ticket

	err := r.DB.GetContext(ctx, &ticket, `
		INSERT INTO tickets (title, description, priority, org_id, requester_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, description, priority, status, org_id, requester_id, created_at
	`, req.Title, req.Description, req.Priority, orgID, requesterID)
	if err != nil {
		return models.Ticket{}, fmt.Errorf("failed to insert ticket: %w", err)
	}
	return ticket, nil
}
