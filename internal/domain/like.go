package domain

import "time"

// Like is a directed edge from the liker to the liked profile. At most one
// like exists per ordered pair.
type Like struct {
	ID        int       `json:"id" db:"id"`
	LikerID   int       `json:"liker_id" db:"liker_id"`
	LikedID   int       `json:"liked_id" db:"liked_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
