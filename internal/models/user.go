package models

import "time"

// User represents a user of the application. PasswordHash is NULL for
// accounts created through an external identity provider.
type User struct {
	UserID         string  `db:"user_id"`
	Name           string  `db:"name"`
	Email          string  `db:"email"`
	PasswordHash   *string `db:"password_hash"`
	AuthProvider   string  `db:"auth_provider"`
	ProviderUserID *string `db:"provider_user_id"`
	AuditFields
}

// UserSettings is a row of the user_settings table.
type UserSettings struct {
	UserID           string    `db:"user_id"`
	ActiveBusinessID *string   `db:"active_business_id"`
	CurrencyCode     string    `db:"currency_code"`
	DateFormat       string    `db:"date_format"`
	UpdatedAt        time.Time `db:"updated_at"`
}
