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
	"github.com/Murlidhar08/settlr-sub001/internal/dto"
	"github.com/google/uuid"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	accountRepo portsrepo.AccountRepositoryFacade
	txnReader   portsrepo.TransactionReader
	partyReader portsrepo.PartyReader
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(
	txManager portsrepo.TransactionManager,
	accountRepo portsrepo.AccountRepositoryFacade,
	txnReader portsrepo.TransactionReader,
	partyReader portsrepo.PartyReader,
	options ...ServiceOption,
) portssvc.AccountSvcFacade {
	svc := &accountService{
		txManager:   txManager,
		accountRepo: accountRepo,
		txnReader:   txnReader,
		partyReader: partyReader,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) ListAccounts(ctx context.Context, auth domain.AuthContext) ([]domain.Account, error) {
	ok, err := s.authorizeRead(ctx, auth)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.Account{}, nil
	}

	accounts, err := s.accountRepo.ListActiveAccounts(ctx, auth.ActiveBusinessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("business_id", auth.ActiveBusinessID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	s.LogDebug(ctx, "Accounts listed", slog.Int("count", len(accounts)))
	return accounts, nil
}

func (s *accountService) GetAccount(ctx context.Context, auth domain.AuthContext, accountID string) (*domain.Account, error) {
	if err := s.Authorize(ctx, auth); err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindAccountByID(ctx, auth.ActiveBusinessID, accountID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

func (s *accountService) CreateAccount(ctx context.Context, auth domain.AuthContext, req dto.CreateAccountRequest) (*domain.Account, error) {
	if err := s.Authorize(ctx, auth); err != nil {
		return nil, err
	}

	account := domain.Account{
		AccountID:    uuid.NewString(),
		BusinessID:   auth.ActiveBusinessID,
		Name:         strings.TrimSpace(req.Name),
		AccountType:  req.AccountType,
		MoneyType:    req.MoneyType,
		PartyType:    req.PartyType,
		CategoryType: req.CategoryType,
		PartyID:      req.PartyID,
		Status:       domain.AccountStatusActive,
		AuditFields:  domain.NewAuditFields(auth.UserID, time.Now().UTC()),
	}
	if err := account.ValidateClassification(); err != nil {
		return nil, err
	}
	if err := s.checkPartyLink(ctx, account); err != nil {
		return nil, err
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogUnexpected(ctx, err, "Failed to save account", slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("account_type", string(account.AccountType)))
	return &account, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, auth domain.AuthContext, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	if err := s.Authorize(ctx, auth); err != nil {
		return nil, err
	}

	existing, err := s.accountRepo.FindAccountByID(ctx, auth.ActiveBusinessID, accountID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find account for update", slog.String("account_id", accountID))
		return nil, err
	}

	updated, err := existing.ApplyPatch(req.ToPatch())
	if err != nil {
		s.LogDebug(ctx, "Account update rejected", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return nil, err
	}
	if req.PartyID != nil {
		if err := s.checkPartyLink(ctx, updated); err != nil {
			return nil, err
		}
	}
	updated.Touch(auth.UserID, time.Now().UTC())

	if err := s.accountRepo.UpdateAccount(ctx, updated); err != nil {
		s.LogUnexpected(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return &updated, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, auth domain.AuthContext, accountID string) (*domain.DeleteAccountResult, error) {
	if err := s.Authorize(ctx, auth); err != nil {
		return nil, err
	}

	var result domain.DeleteAccountResult
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.FindAccountByIDForUpdate(ctx, auth.ActiveBusinessID, accountID)
		if err != nil {
			return err
		}
		references, err := s.txnReader.CountTransactionsByAccount(ctx, auth.ActiveBusinessID, accountID)
		if err != nil {
			return fmt.Errorf("failed to count transactions of account %s: %w", accountID, err)
		}

		result, err = domain.ResolveAccountDeletion(*account, references)
		if err != nil {
			return err
		}

		switch result.Outcome {
		case domain.DeletionOutcomeDeactivated:
			return s.accountRepo.DeactivateAccount(ctx, auth.ActiveBusinessID, accountID, auth.UserID, time.Now().UTC())
		default:
			return s.accountRepo.DeleteAccount(ctx, auth.ActiveBusinessID, accountID)
		}
	})
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account removed", slog.String("account_id", accountID), slog.String("outcome", string(result.Outcome)))
	return &result, nil
}

// checkPartyLink verifies that a linked party belongs to the account's business.
func (s *accountService) checkPartyLink(ctx context.Context, account domain.Account) error {
	if account.PartyID == nil {
		return nil
	}
	if _, err := s.partyReader.FindPartyByID(ctx, account.BusinessID, *account.PartyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: party %s does not belong to this business", apperrors.ErrValidation, *account.PartyID)
		}
		return err
	}
	return nil
}
