package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	portsrepo "github.com/Murlidhar08/settlr-sub001/internal/core/ports/repositories"
	portssvc "github.com/Murlidhar08/settlr-sub001/internal/core/ports/services"
	"github.com/google/uuid"
)

// businessService implements the BusinessSvcFacade interface. It is also the
// BusinessAuthorizer of every other service.
type businessService struct {
	BaseService
	txManager     portsrepo.TransactionManager
	businessRepo  portsrepo.BusinessRepositoryFacade
	accountWriter portsrepo.AccountWriter
}

// NewBusinessService creates a new business service.
func NewBusinessService(txManager portsrepo.TransactionManager, businessRepo portsrepo.BusinessRepositoryFacade, accountWriter portsrepo.AccountWriter) portssvc.BusinessSvcFacade {
	svc := &businessService{
		txManager:     txManager,
		businessRepo:  businessRepo,
		accountWriter: accountWriter,
	}
	svc.BusinessAuthorizer = svc
	return svc
}

var _ portssvc.BusinessSvcFacade = (*businessService)(nil)

func (s *businessService) CreateBusiness(ctx context.Context, userID, name string) (*domain.Business, error) {
	if userID == "" {
		return nil, apperrors.NewUnauthorizedError("an authenticated session is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: business name is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	business := domain.Business{
		BusinessID:  uuid.NewString(),
		Name:        name,
		OwnerUserID: userID,
		AuditFields: domain.NewAuditFields(userID, now),
	}

	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.businessRepo.SaveBusiness(ctx, business); err != nil {
			return err
		}
		for _, seed := range domain.DefaultSystemAccounts {
			moneyType := seed.MoneyType
			account := domain.Account{
				AccountID:   uuid.NewString(),
				BusinessID:  business.BusinessID,
				Name:        seed.Name,
				AccountType: domain.AccountTypeMoney,
				MoneyType:   &moneyType,
				Status:      domain.AccountStatusSystem,
				AuditFields: domain.NewAuditFields(userID, now),
			}
			if err := s.accountWriter.SaveAccount(ctx, account); err != nil {
				return fmt.Errorf("failed to seed system account %q: %w", seed.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to create business", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Business created", slog.String("business_id", business.BusinessID), slog.String("owner", userID))
	return &business, nil
}

func (s *businessService) RenameBusiness(ctx context.Context, auth domain.AuthContext, name string) (*domain.Business, error) {
	if err := s.Authorize(ctx, auth); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: business name is required", apperrors.ErrValidation)
	}

	business, err := s.businessRepo.FindBusinessByID(ctx, auth.ActiveBusinessID)
	if err != nil {
		return nil, err
	}
	business.Name = name
	business.Touch(auth.UserID, time.Now().UTC())
	if err := s.businessRepo.UpdateBusiness(ctx, *business); err != nil {
		s.LogUnexpected(ctx, err, "Failed to rename business", slog.String("business_id", business.BusinessID))
		return nil, err
	}
	return business, nil
}

func (s *businessService) ListBusinesses(ctx context.Context, userID string) ([]domain.Business, error) {
	if userID == "" {
		return nil, apperrors.NewUnauthorizedError("an authenticated session is required")
	}
	businesses, err := s.businessRepo.ListBusinessesByOwner(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list businesses", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	if businesses == nil {
		businesses = []domain.Business{}
	}
	return businesses, nil
}

func (s *businessService) GetBusiness(ctx context.Context, auth domain.AuthContext) (*domain.Business, error) {
	if err := s.Authorize(ctx, auth); err != nil {
		return nil, err
	}
	return s.businessRepo.FindBusinessByID(ctx, auth.ActiveBusinessID)
}

// AuthorizeOwner reports ErrUnauthorized unless businessID exists and is owned by userID.
func (s *businessService) AuthorizeOwner(ctx context.Context, userID, businessID string) error {
	if userID == "" || businessID == "" {
		return apperrors.NewUnauthorizedError("an authenticated session with an active business is required")
	}
	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Business not found during authorization", slog.String("business_id", businessID))
			return apperrors.NewUnauthorizedError("business not accessible")
		}
		s.LogError(ctx, err, "Failed to load business for authorization", slog.String("business_id", businessID))
		return fmt.Errorf("failed to authorize business access: %w", err)
	}
	if business.OwnerUserID != userID {
		s.LogDebug(ctx, "Business owned by another user", slog.String("business_id", businessID), slog.String("user_id", userID))
		return apperrors.NewUnauthorizedError("business not accessible")
	}
	return nil
}
