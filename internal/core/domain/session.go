package domain

import "time"

// Session is server-side proof of an authenticated client, referenced by the
// opaque cookie value in ID.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
