// Package seed loads the initial animal profiles into an empty profile store.
package seed

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/pawswipe/pawswipe-backend/internal/domain"
	"github.com/pawswipe/pawswipe-backend/internal/repository"
)

type seedProfile struct {
	Username           string
	Password           string
	Name               string
	Species            string
	Age                int
	Bio                string
	Avatar             string
	SpeciesPreferences []string
}

var animals = []seedProfile{
	{
		Username: "fluffy", Password: "password", Name: "Fluffy", Species: "Cat", Age: 2,
		Bio:                "I'm a playful Persian cat who loves naps in the sun and chasing toys. I enjoy watching birds from the window and getting treats!",
		Avatar:             "https://images.unsplash.com/photo-1543852786-1cf6624b9987?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
		SpeciesPreferences: []string{"Cat", "Dog", "Bird", "Rabbit"},
	},
	{
		Username: "max", Password: "password", Name: "Max", Species: "Dog", Age: 3,
		Bio:                "Energetic Golden Retriever who loves playing fetch and swimming. I'm always happy to eat your homework!",
		Avatar:             "https://images.unsplash.com/photo-1552053831-71594a27632d?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
		SpeciesPreferences: []string{"Dog", "Cat", "Horse"},
	},
	{
		Username: "oliver", Password: "password", Name: "Oliver", Species: "Cat", Age: 1,
		Bio:                "Curious cat who loves exploring and playing with strings. I can spend hours watching fish in the tank or chasing laser pointers.",
		Avatar:             "https://images.unsplash.com/photo-1514888286974-6c03e2ca1dba?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
		SpeciesPreferences: []string{"Cat", "Bird", "Hamster"},
	},
	{
		Username: "bailey", Password: "password", Name: "Bailey", Species: "Dog", Age: 4,
		Bio:                "Friendly and sociable dog who enjoys long walks and cuddles. I'm very loyal and love to protect my family from the mail carrier.",
		Avatar:             "https://images.unsplash.com/photo-1425082661705-1834bfd09dca?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
		SpeciesPreferences: []string{"Dog", "Horse", "Sheep"},
	},
	{
		Username: "charlie", Password: "password", Name: "Charlie", Species: "Dog", Age: 2,
		Bio:                "Playful dog with a great nose for adventures. I can sniff out treats from a mile away and love going on hikes with my human.",
		Avatar:             "https://images.unsplash.com/photo-1517849845537-4d257902454a?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
		SpeciesPreferences: []string{"Dog", "Cat", "Rabbit", "Mouse"},
	},
	{
		Username: "luna", Password: "password", Name: "Luna", Species: "Cat", Age: 3,
		Bio:                "Majestic cat who loves being admired and petted. I'm quite chatty and will have long conversations with you about my day.",
		Avatar:             "https://images.unsplash.com/photo-1533743983669-94fa5c4338ec?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
		SpeciesPreferences: []string{"Cat", "Dog", "Fish"},
	},
	{
		Username: "pepper", Password: "password", Name: "Pepper", Species: "Mouse", Age: 1,
		Bio:                "Tiny but brave mouse who loves cheese and adventure. I'm quick, clever, and always looking for new friends of all sizes!",
		Avatar:             "https://images.unsplash.com/photo-1425082661705-1834bfd09dca?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
		SpeciesPreferences: []string{"Mouse", "Horse", "Dog", "Rabbit"},
	},
	{
		Username: "thunder", Password: "password", Name: "Thunder", Species: "Horse", Age: 5,
		Bio:                "Majestic horse who loves galloping through open fields. I enjoy the occasional sugar cube and making friends with all types of animals.",
		Avatar:             "https://images.unsplash.com/photo-1553284965-83fd3e82fa5a?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
		SpeciesPreferences: []string{"Horse", "Dog", "Cat", "Mouse"},
	},
}

// Profiles inserts the seed animals, skipping any username already present so
// reruns against a persistent backend stay idempotent.
func Profiles(ctx context.Context, repo repository.ProfileRepository) error {
	for _, a := range animals {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash seed password for %s: %w", a.Username, err)
		}

		bio := a.Bio
		profile := &domain.Profile{
			Username:           a.Username,
			Password:           string(hash),
			Name:               a.Name,
			Species:            a.Species,
			Age:                a.Age,
			Bio:                &bio,
			Avatar:             a.Avatar,
			SpeciesPreferences: a.SpeciesPreferences,
		}

		if err := repo.Create(ctx, profile); err != nil {
			if errors.Is(err, domain.ErrUsernameTaken) {
				continue
			}
			return fmt.Errorf("failed to seed profile %s: %w", a.Username, err)
		}
	}
	return nil
}
