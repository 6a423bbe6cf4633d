package models

type Party struct {
	PartyID       string  `db:"party_id"`
	BusinessID    string  `db:"business_id"`
	Name          string  `db:"name"`
	ContactNumber *string `db:"contact_number"`
	PartyType     string  `db:"party_type"`
	ProfileURL    *string `db:"profile_url"`
	AuditFields
}
