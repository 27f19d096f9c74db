package ticketservice

import (
	"context"
	"database/sql"
	"fmt"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"ops360/models"
	"ops360/providers"
)

// ErrRequesterMissing means the configured requester account does not exist
// in the store. This is operator misconfiguration, not bad input, and maps
// to a 500 with a remediation hint.
var ErrRequesterMissing = pkgerrors.New("seeded requester missing")

type TicketService interface {
	ListTickets(ctx context.Context) ([]models.Ticket, error)
	CreateTicket(ctx context.Context, req CreateTicketReq) (models.Ticket, error)
}

type ticketServiceStruct struct {
	repo           TicketRepository
	logger         providers.ZapLoggerProvider
	orgID          string
	requesterEmail string
}

func NewTicketService(repo TicketRepository, logger providers.ZapLoggerProvider, orgID, requesterEmail string) TicketService {
	return &ticketServiceStruct{
		repo:           repo,
		logger:         logger,
		orgID:          orgID,
		requesterEmail: requesterEmail,
	}
}

func (s *ticketServiceStruct) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	return s.repo.ListTicketsByOrg(ctx, s.orgID)
}

// CreateTicket resolves the fixed requester by email, then persists the
// ticket against the configured org. Priority defaults to MEDIUM when the
// request leaves it empty; status comes from the store default.
func (s *ticketServiceStruct) CreateTicket(ctx context.Context, req CreateTicketReq) (models.Ticket, error) {
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}

	requesterID, err := s.repo.GetUserByEmail(ctx, s.requesterEmail)
	if err != nil {
		if pkgerrors.Is(err, sql.ErrNoRows) {
			s.logger.GetLogger().Error("seeded requester not found",
				zap.String("email", s.requesterEmail))
			return models.Ticket{}, pkgerrors.Wrapf(ErrRequesterMissing,
				"seed user %s missing: create the account before filing tickets", s.requesterEmail)
		}
		return models.Ticket{}, fmt.Errorf("failed to resolve requester: %w", err)
	}

	ticket, err := s.repo.CreateTicket(ctx, req, s.orgID, requesterID)
	if err != nil {
		return models.Ticket{}, fmt.Errorf("failed to create ticket: %w", err)
	}
	return ticket, nil
}
