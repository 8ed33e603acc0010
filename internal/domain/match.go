package domain

import "time"

// Match pairs two profiles that liked each other. User1ID < User2ID always
// holds, so any unordered pair has exactly one representation.
type Match struct {
	ID        int       `json:"id" db:"id"`
	User1ID   int       `json:"user1_id" db:"user1_id"`
	User2ID   int       `json:"user2_id" db:"user2_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (m *Match) HasProfile(profileID int) bool {
	return m.User1ID == profileID || m.User2ID == profileID
}

// OtherProfileID returns the counterpart profile id for the given participant.
func (m *Match) OtherProfileID(profileID int) (int, bool) {
	if m.User1ID == profileID {
		return m.User2ID, true
	}
	if m.User2ID == profileID {
		return m.User1ID, true
	}
	return 0, false
}

// CanonicalPair orders two profile ids so the smaller one comes first.
func CanonicalPair(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
