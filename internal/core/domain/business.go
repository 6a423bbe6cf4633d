package domain

// Business is the tenant scope owning accounts, parties and transactions.
type Business struct {
	BusinessID  string `json:"businessID"`
	Name        string `json:"name"`
	OwnerUserID string `json:"ownerUserID"`
	AuditFields
}

// SystemAccountSeed describes an account created together with every business.
type SystemAccountSeed struct {
	Name      string
	MoneyType MoneyType
}

// DefaultSystemAccounts are seeded on business creation and can never be reclassified or deleted.
var DefaultSystemAccounts = []SystemAccountSeed{
	{Name: "Cash", MoneyType: MoneyTypeCash},
	{Name: "Bank", MoneyType: MoneyTypeBank},
}
