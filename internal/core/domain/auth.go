package domain

// AuthContext is the authenticated caller of a core operation. It is passed
// explicitly into every service call instead of being looked up per request.
type AuthContext struct {
	UserID           string
	ActiveBusinessID string
}

// IsAuthenticated reports whether the context carries a user.
func (a AuthContext) IsAuthenticated() bool {
	return a.UserID != ""
}

// HasBusiness reports whether the context carries both a user and an active business.
func (a AuthContext) HasBusiness() bool {
	return a.UserID != "" && a.ActiveBusinessID != ""
}
