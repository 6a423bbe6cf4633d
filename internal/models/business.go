package models

type Business struct {
	BusinessID  string `db:"business_id"`
	Name        string `db:"name"`
	OwnerUserID string `db:"owner_user_id"`
	AuditFields
}
