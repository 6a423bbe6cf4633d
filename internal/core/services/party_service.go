package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	portsrepo "github.com/Murlidhar08/settlr-sub001/internal/core/ports/repositories"
	portssvc "github.com/Murlidhar08/settlr-sub001/internal/core/ports/services"
	"github.com/Murlidhar08/settlr-sub001/internal/dto"
	"github.com/google/uuid"
)

// partyService implements the PartySvcFacade interface
type partyService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	partyRepo   portsrepo.PartyRepositoryFacade
	accountRepo portsrepo.AccountWriter
	txnRepo     portsrepo.TransactionWriter
}

// NewPartyService creates a new party service.
func NewPartyService(
	txManager portsrepo.TransactionManager,
	partyRepo portsrepo.PartyRepositoryFacade,
	accountRepo portsrepo.AccountWriter,
	txnRepo portsrepo.TransactionWriter,
	options ...ServiceOption,
) portssvc.PartySvcFacade {
	svc := &partyService{
		txManager:   txManager,
		partyRepo:   partyRepo,
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.PartySvcFacade = (*partyService)(nil)

func (s *partyService) CreateParty(ctx context.Context, auth domain.AuthContext, req dto.CreatePartyRequest) (*domain.Party, error) {
	if err := s.Authorize(ctx, auth); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	if !req.PartyType.IsValid() {
		return nil, fmt.Errorf("%w: invalid party type %q", apperrors.ErrValidation, req.PartyType)
	}

	party := domain.Party{
		PartyID:       uuid.NewString(),
		BusinessID:    auth.ActiveBusinessID,
		Name:          name,
		ContactNumber: nonEmpty(req.ContactNumber),
		PartyType:     req.PartyType,
		ProfileURL:    nonEmpty(req.ProfileURL),
		AuditFields:   domain.NewAuditFields(auth.UserID, time.Now().UTC()),
	}
	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		s.LogUnexpected(ctx, err, "Failed to save party", slog.String("party_id", party.PartyID))
		return nil, err
	}

	s.LogInfo(ctx, "Party created", slog.String("party_id", party.PartyID))
	return &party, nil
}

func (s *partyService) ListParties(ctx context.Context, auth domain.AuthContext, partyType domain.PartyType) ([]domain.Party, error) {
	ok, err := s.authorizeRead(ctx, auth)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.Party{}, nil
	}
	if partyType != "" && !partyType.IsValid() {
		return nil, fmt.Errorf("%w: invalid party type %q", apperrors.ErrValidation, partyType)
	}

	parties, err := s.partyRepo.ListParties(ctx, auth.ActiveBusinessID, partyType)
	if err != nil {
		s.LogError(ctx, err, "Failed to list parties")
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	if parties == nil {
		parties = []domain.Party{}
	}
	return parties, nil
}

func (s *partyService) GetParty(ctx context.Context, auth domain.AuthContext, partyID string) (*domain.Party, error) {
	if err := s.Authorize(ctx, auth); err != nil {
		return nil, err
	}
	party, err := s.partyRepo.FindPartyByID(ctx, auth.ActiveBusinessID, partyID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find party", slog.String("party_id", partyID))
		return nil, err
	}
	return party, nil
}

func (s *partyService) UpdateParty(ctx context.Context, auth domain.AuthContext, partyID string, req dto.UpdatePartyRequest) (*domain.Party, error) {
	if err := s.Authorize(ctx, auth); err != nil {
		return nil, err
	}
	party, err := s.partyRepo.FindPartyByID(ctx, auth.ActiveBusinessID, partyID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find party for update", slog.String("party_id", partyID))
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
		}
		party.Name = name
	}
	if req.ContactNumber != nil {
		party.ContactNumber = nonEmpty(req.ContactNumber)
	}
	party.Touch(auth.UserID, time.Now().UTC())

	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		s.LogUnexpected(ctx, err, "Failed to update party", slog.String("party_id", partyID))
		return nil, err
	}
	s.LogInfo(ctx, "Party updated", slog.String("party_id", partyID))
	return party, nil
}

func (s *partyService) DeleteParty(ctx context.Context, auth domain.AuthContext, partyID string) (int64, error) {
	if err := s.Authorize(ctx, auth); err != nil {
		return 0, err
	}

	var deleted int64
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.partyRepo.FindPartyByID(ctx, auth.ActiveBusinessID, partyID); err != nil {
			return err
		}
		var err error
		deleted, err = s.txnRepo.DeleteTransactionsByParty(ctx, auth.ActiveBusinessID, partyID)
		if err != nil {
			return fmt.Errorf("failed to delete party transactions: %w", err)
		}
		if err := s.accountRepo.UnlinkPartyAccounts(ctx, auth.ActiveBusinessID, partyID, auth.UserID, time.Now().UTC()); err != nil {
			return fmt.Errorf("failed to unlink party accounts: %w", err)
		}
		return s.partyRepo.DeleteParty(ctx, auth.ActiveBusinessID, partyID)
	})
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to delete party", slog.String("party_id", partyID))
		return 0, err
	}

	s.LogInfo(ctx, "Party deleted", slog.String("party_id", partyID), slog.Int64("deleted_transactions", deleted))
	return deleted, nil
}
