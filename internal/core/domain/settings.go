package domain

import (
	"slices"
	"time"
)

const (
	DefaultCurrencyCode = "INR"
	DefaultDateFormat   = "DD/MM/YYYY"
)

// SupportedDateFormats lists the display formats a user may choose.
var SupportedDateFormats = []string{"DD/MM/YYYY", "MM/DD/YYYY", "YYYY-MM-DD", "DD-MM-YYYY", "DD MMM YYYY"}

// IsSupportedDateFormat reports whether format is one of SupportedDateFormats.
func IsSupportedDateFormat(format string) bool {
	return slices.Contains(SupportedDateFormats, format)
}

// UserSettings are the per-user preferences, including the last active business.
type UserSettings struct {
	UserID           string    `json:"userID"`
	ActiveBusinessID *string   `json:"activeBusinessID,omitempty"`
	CurrencyCode     string    `json:"currencyCode"`
	DateFormat       string    `json:"dateFormat"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// DefaultUserSettings returns the settings used when none are stored.
func DefaultUserSettings(userID, currencyCode string) UserSettings {
	if currencyCode == "" {
		currencyCode = DefaultCurrencyCode
	}
	return UserSettings{UserID: userID, CurrencyCode: currencyCode, DateFormat: DefaultDateFormat}
}
