package domain_test

import (
	"testing"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func systemCash() domain.Account {
	return domain.Account{
		AccountID:   "acc-cash",
		BusinessID:  "biz-1",
		Name:        "Cash",
		AccountType: domain.AccountTypeMoney,
		MoneyType:   ptr(domain.MoneyTypeCash),
		Status:      domain.AccountStatusSystem,
	}
}

func salesCategory() domain.Account {
	return domain.Account{
		AccountID:    "acc-sales",
		BusinessID:   "biz-1",
		Name:         "Sales",
		AccountType:  domain.AccountTypeCategory,
		CategoryType: ptr(domain.CategoryTypeIncome),
		Status:       domain.AccountStatusActive,
	}
}

func TestAccount_Lifecycle(t *testing.T) {
	tests := []struct {
		status     domain.AccountStatus
		wantSystem bool
		wantActive bool
	}{
		{domain.AccountStatusActive, false, true},
		{domain.AccountStatusInactive, false, false},
		{domain.AccountStatusSystem, true, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			a := domain.Account{Status: tt.status}
			assert.Equal(t, tt.wantSystem, a.IsSystem())
			assert.Equal(t, tt.wantActive, a.IsActive())
		})
	}
}

func TestAccount_ApplyPatch_SystemAccount(t *testing.T) {
	tests := []struct {
		name  string
		patch domain.AccountPatch
	}{
		{"type change", domain.AccountPatch{AccountType: ptr(domain.AccountTypeCategory)}},
		{"money type change", domain.AccountPatch{MoneyType: ptr(domain.MoneyTypeBank)}},
		{"money type cleared", domain.AccountPatch{MoneyType: ptr(domain.MoneyType(""))}},
		{"party type set", domain.AccountPatch{PartyType: ptr(domain.PartyTypeCustomer)}},
		{"category type set", domain.AccountPatch{CategoryType: ptr(domain.CategoryTypeExpense)}},
		{"rename with type change", domain.AccountPatch{Name: ptr("Petty cash"), AccountType: ptr(domain.AccountTypeParty)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := systemCash().ApplyPatch(tt.patch)
			assert.ErrorIs(t, err, apperrors.ErrProtectedResource)
		})
	}
}

func TestAccount_ApplyPatch_SystemAccountRename(t *testing.T) {
	updated, err := systemCash().ApplyPatch(domain.AccountPatch{
		Name:        ptr("Cash in hand"),
		AccountType: ptr(domain.AccountTypeMoney),
		MoneyType:   ptr(domain.MoneyTypeCash),
	})
	require.NoError(t, err)
	assert.Equal(t, "Cash in hand", updated.Name)
	assert.Equal(t, domain.AccountStatusSystem, updated.Status)
	assert.Equal(t, domain.MoneyTypeCash, *updated.MoneyType)
}

func TestAccount_ApplyPatch_NonSystemAccount(t *testing.T) {
	t.Run("type change is immutable", func(t *testing.T) {
		_, err := salesCategory().ApplyPatch(domain.AccountPatch{AccountType: ptr(domain.AccountTypeMoney)})
		assert.ErrorIs(t, err, apperrors.ErrImmutableField)
	})

	t.Run("same type with new classifier", func(t *testing.T) {
		updated, err := salesCategory().ApplyPatch(domain.AccountPatch{
			AccountType:  ptr(domain.AccountTypeCategory),
			CategoryType: ptr(domain.CategoryTypeExpense),
			Name:         ptr("Purchases"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Purchases", updated.Name)
		assert.Equal(t, domain.CategoryTypeExpense, *updated.CategoryType)
	})

	t.Run("classifier cleared", func(t *testing.T) {
		updated, err := salesCategory().ApplyPatch(domain.AccountPatch{CategoryType: ptr(domain.CategoryType(""))})
		require.NoError(t, err)
		assert.Nil(t, updated.CategoryType)
	})

	t.Run("classifier of another type", func(t *testing.T) {
		_, err := salesCategory().ApplyPatch(domain.AccountPatch{MoneyType: ptr(domain.MoneyTypeCash)})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := salesCategory().ApplyPatch(domain.AccountPatch{Name: ptr("   ")})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("original is not modified", func(t *testing.T) {
		original := salesCategory()
		_, err := original.ApplyPatch(domain.AccountPatch{Name: ptr("Other")})
		require.NoError(t, err)
		assert.Equal(t, "Sales", original.Name)
	})
}

func TestAccount_ValidateClassification(t *testing.T) {
	tests := []struct {
		name    string
		account domain.Account
		wantErr bool
	}{
		{"money account", domain.Account{Name: "Wallet", AccountType: domain.AccountTypeMoney, MoneyType: ptr(domain.MoneyTypeWallet)}, false},
		{"party account with party", domain.Account{Name: "Acme", AccountType: domain.AccountTypeParty, PartyType: ptr(domain.PartyTypeSupplier), PartyID: ptr("p-1")}, false},
		{"category without classifier", domain.Account{Name: "Misc", AccountType: domain.AccountTypeCategory}, false},
		{"empty name", domain.Account{AccountType: domain.AccountTypeMoney}, true},
		{"unknown type", domain.Account{Name: "X", AccountType: "LOAN"}, true},
		{"unknown money type", domain.Account{Name: "X", AccountType: domain.AccountTypeMoney, MoneyType: ptr(domain.MoneyType("GOLD"))}, true},
		{"party id on money account", domain.Account{Name: "X", AccountType: domain.AccountTypeMoney, PartyID: ptr("p-1")}, true},
		{"category type on party account", domain.Account{Name: "X", AccountType: domain.AccountTypeParty, CategoryType: ptr(domain.CategoryTypeIncome)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.ValidateClassification()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolveAccountDeletion(t *testing.T) {
	t.Run("system account is protected", func(t *testing.T) {
		_, err := domain.ResolveAccountDeletion(systemCash(), 0)
		assert.ErrorIs(t, err, apperrors.ErrProtectedResource)
	})

	t.Run("referenced account is deactivated", func(t *testing.T) {
		res, err := domain.ResolveAccountDeletion(salesCategory(), 3)
		require.NoError(t, err)
		assert.Equal(t, domain.DeletionOutcomeDeactivated, res.Outcome)
		assert.Equal(t, domain.AccountDeactivatedMessage, res.Message)
	})

	t.Run("unreferenced account is deleted", func(t *testing.T) {
		res, err := domain.ResolveAccountDeletion(salesCategory(), 0)
		require.NoError(t, err)
		assert.Equal(t, domain.DeletionOutcomeDeleted, res.Outcome)
		assert.Equal(t, domain.AccountDeletedMessage, res.Message)
	})
}
