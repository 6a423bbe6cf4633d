package domain

import (
	"fmt"
	"strings"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
)

// AccountType represents the top-level classification of a ledger bucket.
type AccountType string

const (
	AccountTypeMoney    AccountType = "MONEY"
	AccountTypeCategory AccountType = "CATEGORY"
	AccountTypeParty    AccountType = "PARTY"
)

func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeMoney, AccountTypeCategory, AccountTypeParty:
		return true
	}
	return false
}

// MoneyType refines a MONEY account.
type MoneyType string

const (
	MoneyTypeCash   MoneyType = "CASH"
	MoneyTypeBank   MoneyType = "BANK"
	MoneyTypeWallet MoneyType = "WALLET"
	MoneyTypeCard   MoneyType = "CARD"
)

func (t MoneyType) IsValid() bool {
	switch t {
	case MoneyTypeCash, MoneyTypeBank, MoneyTypeWallet, MoneyTypeCard:
		return true
	}
	return false
}

// CategoryType refines a CATEGORY account.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "INCOME"
	CategoryTypeExpense CategoryType = "EXPENSE"
)

func (t CategoryType) IsValid() bool {
	switch t {
	case CategoryTypeIncome, CategoryTypeExpense:
		return true
	}
	return false
}

// AccountStatus is the lifecycle state of an account. A system account is
// always active, so an inactive system account cannot be expressed.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "ACTIVE"
	AccountStatusInactive AccountStatus = "INACTIVE"
	AccountStatusSystem   AccountStatus = "SYSTEM"
)

func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusActive, AccountStatusInactive, AccountStatusSystem:
		return true
	}
	return false
}

// Account represents a financial account (ledger bucket) of a business.
type Account struct {
	AccountID    string        `json:"accountID"`
	BusinessID   string        `json:"businessID"`
	Name         string        `json:"name"`
	AccountType  AccountType   `json:"accountType"`
	MoneyType    *MoneyType    `json:"moneyType,omitempty"`
	PartyType    *PartyType    `json:"partyType,omitempty"`
	CategoryType *CategoryType `json:"categoryType,omitempty"`
	PartyID      *string       `json:"partyID,omitempty"`
	Status       AccountStatus `json:"status"`
	AuditFields
}

func (a Account) IsSystem() bool {
	return a.Status == AccountStatusSystem
}

func (a Account) IsActive() bool {
	return a.Status == AccountStatusActive || a.Status == AccountStatusSystem
}

// ValidateClassification checks the name, the type and that every
// sub-classifier present belongs to the account type.
func (a Account) ValidateClassification() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	if !a.AccountType.IsValid() {
		return fmt.Errorf("%w: invalid account type %q", apperrors.ErrValidation, a.AccountType)
	}
	if a.MoneyType != nil {
		if a.AccountType != AccountTypeMoney {
			return fmt.Errorf("%w: moneyType is only allowed on %s accounts", apperrors.ErrValidation, AccountTypeMoney)
		}
		if !a.MoneyType.IsValid() {
			return fmt.Errorf("%w: invalid money type %q", apperrors.ErrValidation, *a.MoneyType)
		}
	}
	if a.CategoryType != nil {
		if a.AccountType != AccountTypeCategory {
			return fmt.Errorf("%w: categoryType is only allowed on %s accounts", apperrors.ErrValidation, AccountTypeCategory)
		}
		if !a.CategoryType.IsValid() {
			return fmt.Errorf("%w: invalid category type %q", apperrors.ErrValidation, *a.CategoryType)
		}
	}
	if a.PartyType != nil {
		if a.AccountType != AccountTypeParty {
			return fmt.Errorf("%w: partyType is only allowed on %s accounts", apperrors.ErrValidation, AccountTypeParty)
		}
		if !a.PartyType.IsValid() {
			return fmt.Errorf("%w: invalid party type %q", apperrors.ErrValidation, *a.PartyType)
		}
	}
	if a.PartyID != nil && a.AccountType != AccountTypeParty {
		return fmt.Errorf("%w: partyID is only allowed on %s accounts", apperrors.ErrValidation, AccountTypeParty)
	}
	return nil
}

// AccountPatch is a partial update. A nil field is left untouched; a
// classifier pointing at an empty string clears that classifier.
type AccountPatch struct {
	Name         *string
	AccountType  *AccountType
	MoneyType    *MoneyType
	PartyType    *PartyType
	CategoryType *CategoryType
	PartyID      *string
}

// ApplyPatch returns a copy of the account with the patch applied.
//
// System accounts only accept a new name: any classifier that differs from the
// current value yields ErrProtectedResource. Other accounts may change name and
// classifiers but never their type (ErrImmutableField).
func (a Account) ApplyPatch(p AccountPatch) (Account, error) {
	if a.IsSystem() {
		if p.classifiesDifferently(a) {
			return Account{}, fmt.Errorf("%w: system account %q can only be renamed", apperrors.ErrProtectedResource, a.Name)
		}
	} else if p.AccountType != nil && *p.AccountType != a.AccountType {
		return Account{}, fmt.Errorf("%w: account type cannot be changed from %s to %s", apperrors.ErrImmutableField, a.AccountType, *p.AccountType)
	}

	updated := a
	if p.Name != nil {
		if strings.TrimSpace(*p.Name) == "" {
			return Account{}, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
		}
		updated.Name = strings.TrimSpace(*p.Name)
	}
	if a.IsSystem() {
		return updated, nil
	}

	if p.MoneyType != nil {
		updated.MoneyType = clearable(*p.MoneyType)
	}
	if p.PartyType != nil {
		updated.PartyType = clearable(*p.PartyType)
	}
	if p.CategoryType != nil {
		updated.CategoryType = clearable(*p.CategoryType)
	}
	if p.PartyID != nil {
		updated.PartyID = clearable(*p.PartyID)
	}
	if err := updated.ValidateClassification(); err != nil {
		return Account{}, err
	}
	return updated, nil
}

// classifiesDifferently reports whether any classifier in the patch differs from the account.
func (p AccountPatch) classifiesDifferently(a Account) bool {
	if p.AccountType != nil && *p.AccountType != a.AccountType {
		return true
	}
	if p.MoneyType != nil && *p.MoneyType != valueOf(a.MoneyType) {
		return true
	}
	if p.PartyType != nil && *p.PartyType != valueOf(a.PartyType) {
		return true
	}
	if p.CategoryType != nil && *p.CategoryType != valueOf(a.CategoryType) {
		return true
	}
	if p.PartyID != nil && *p.PartyID != valueOf(a.PartyID) {
		return true
	}
	return false
}

func clearable[T ~string](v T) *T {
	if v == "" {
		return nil
	}
	return &v
}

func valueOf[T ~string](v *T) T {
	if v == nil {
		return ""
	}
	return *v
}
