package domain

// PartyType classifies a counterparty.
type PartyType string

const (
	PartyTypeCustomer PartyType = "CUSTOMER"
	PartyTypeSupplier PartyType = "SUPPLIER"
)

func (t PartyType) IsValid() bool {
	switch t {
	case PartyTypeCustomer, PartyTypeSupplier:
		return true
	}
	return false
}

// Party is a customer or supplier of a business.
type Party struct {
	PartyID       string    `json:"partyID"`
	BusinessID    string    `json:"businessID"`
	Name          string    `json:"name"`
	ContactNumber *string   `json:"contactNumber,omitempty"`
	PartyType     PartyType `json:"partyType"`
	ProfileURL    *string   `json:"profileURL,omitempty"`
	AuditFields
}
