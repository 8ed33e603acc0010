package domain

import "time"

// Profile is a swipeable animal profile. Password holds the bcrypt hash and
// is never serialized.
type Profile struct {
	ID                 int       `json:"id" db:"id"`
	Username           string    `json:"username" db:"username"`
	Password           string    `json:"-" db:"password"`
	Name               string    `json:"name" db:"name"`
	Species            string    `json:"species" db:"species"`
	Age                int       `json:"age" db:"age"`
	Bio                *string   `json:"bio" db:"bio"`
	Avatar             string    `json:"avatar" db:"avatar"`
	SpeciesPreferences []string  `json:"species_preferences" db:"species_preferences"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}

// WantsSpecies reports whether species appears in the profile's preference
// list. Preferences are not deduplicated; first hit wins.
func (p *Profile) WantsSpecies(species string) bool {
	for _, s := range p.SpeciesPreferences {
		if s == species {
			return true
		}
	}
	return false
}
