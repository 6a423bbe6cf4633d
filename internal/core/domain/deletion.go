package domain

import (
	"fmt"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
)

// DeletionOutcome is the terminal state reached by an account deletion request.
type DeletionOutcome string

const (
	DeletionOutcomeDeleted     DeletionOutcome = "DELETED"
	DeletionOutcomeDeactivated DeletionOutcome = "DEACTIVATED"
)

const (
	AccountDeletedMessage     = "Account deleted"
	AccountDeactivatedMessage = "Account deactivated because it has transactions"
)

// DeleteAccountResult is returned by a successful account deletion.
type DeleteAccountResult struct {
	Outcome DeletionOutcome `json:"outcome"`
	Message string          `json:"message"`
}

// ResolveAccountDeletion decides how an account leaves the active set.
// Accounts referenced by at least one transaction are only deactivated so the
// ledger never points at a removed row. System accounts cannot be removed at all.
func ResolveAccountDeletion(account Account, referenceCount int64) (DeleteAccountResult, error) {
	if account.IsSystem() {
		return DeleteAccountResult{}, fmt.Errorf("%w: system account %q cannot be deleted", apperrors.ErrProtectedResource, account.Name)
	}
	if referenceCount > 0 {
		return DeleteAccountResult{Outcome: DeletionOutcomeDeactivated, Message: AccountDeactivatedMessage}, nil
	}
	return DeleteAccountResult{Outcome: DeletionOutcomeDeleted, Message: AccountDeletedMessage}, nil
}
