package models

// Account is a row of the accounts table.
// Classifier columns are NULL when they do not apply to the account type.
type Account struct {
	AccountID    string  `db:"account_id"`
	BusinessID   string  `db:"business_id"`
	Name         string  `db:"name"`
	AccountType  string  `db:"account_type"`
	MoneyType    *string `db:"money_type"`
	PartyType    *string `db:"party_type"`
	CategoryType *string `db:"category_type"`
	PartyID      *string `db:"party_id"`
	Status       string  `db:"status"`
	AuditFields
}
