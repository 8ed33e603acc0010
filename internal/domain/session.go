package domain

import "time"

// Session is an issued login token, stored hashed.
type Session struct {
	ID        string    `json:"id" db:"id"`
	ProfileID int       `json:"profile_id" db:"profile_id"`
	Token     string    `json:"-" db:"token"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
