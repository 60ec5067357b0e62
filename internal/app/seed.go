package app

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kyodai-travel/tourbook/internal/crypto"
	"github.com/kyodai-travel/tourbook/internal/model"
)

const (
	defaultAdminEmail    = "admin@kyodai.com"
	defaultAdminName     = "Admin Kyodai"
	defaultAdminPassword = "kyodai123" // dev seed, rotate in production
)

// seed creates the default admin and, on an empty catalog, a starter set of
// categories, destinations and packages. Re-running is a no-op.
func (app *App) seed() error {
	if _, err := app.AdminRepo.GetByEmail(defaultAdminEmail); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		hash, err := crypto.HashPassword(defaultAdminPassword)
		if err != nil {
			return err
		}
		if err := app.AdminRepo.Create(&model.Admin{
			Email:          defaultAdminEmail,
			HashedPassword: hash,
			Name:           defaultAdminName,
			Role:           "admin",
		}); err != nil {
			return err
		}
	}

	count, err := app.CategoryRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []model.Category{
		{Name: "Adventure", Description: "Adventure and extreme sport tours"},
		{Name: "Cultural", Description: "Culture and heritage tours"},
		{Name: "Beach", Description: "Beach and marine tours"},
		{Name: "Mountain", Description: "Mountain and nature tours"},
		{Name: "City Tour", Description: "City and urban tours"},
	}
	for i := range categories {
		if err := app.CategoryRepo.Create(&categories[i]); err != nil {
			return err
		}
	}

	destinations := []model.Destination{
		{Name: "Bali", Country: "Indonesia", Description: "Island of the gods, famed for its nature and culture"},
		{Name: "Yogyakarta", Country: "Indonesia", Description: "Cultural capital with a rich historical heritage"},
		{Name: "Raja Ampat", Country: "Indonesia", Description: "Underwater paradise with world-class biodiversity"},
		{Name: "Bromo Tengger", Country: "Indonesia", Description: "Highlands with spectacular sunrise views"},
		{Name: "Jakarta", Country: "Indonesia", Description: "The capital, modern attractions and street food"},
	}
	for i := range destinations {
		if err := app.DestinationRepo.Create(&destinations[i]); err != nil {
			return err
		}
	}

	packages := []model.TourPackage{
		{
			Title:           "Bali Cultural Heritage 4D3N",
			Description:     "Historic temples, traditional villages and cultural performances across Bali",
			Price:           2500000,
			DurationDays:    4,
			MaxParticipants: 20,
			CategoryID:      categories[1].ID,
			DestinationID:   destinations[0].ID,
			Includes:        "Hotel 3*, Transport AC, Guide, Entrance tickets, 3x Breakfast",
			Excludes:        "Flight tickets, Lunch, Dinner, Personal expenses",
			IsActive:        true,
		},
		{
			Title:           "Yogyakarta Heritage Tour 3D2N",
			Description:     "Borobudur, Prambanan and the Keraton in three days",
			Price:           1800000,
			DurationDays:    3,
			MaxParticipants: 25,
			CategoryID:      categories[1].ID,
			DestinationID:   destinations[1].ID,
			Includes:        "Hotel 3*, Transport AC, Guide, Entrance tickets, 2x Breakfast",
			Excludes:        "Flight tickets, Lunch, Dinner, Personal expenses",
			IsActive:        true,
		},
		{
			Title:           "Raja Ampat Diving Adventure 5D4N",
			Description:     "Liveaboard diving across the best spots of Raja Ampat",
			Price:           8500000,
			DurationDays:    5,
			MaxParticipants: 12,
			CategoryID:      categories[0].ID,
			DestinationID:   destinations[2].ID,
			Includes:        "Boat accommodation, All meals, Diving equipment, Guide",
			Excludes:        "Flight tickets, Diving certification, Personal expenses",
			IsActive:        true,
		},
		{
			Title:           "Bromo Sunrise Trekking 2D1N",
			Description:     "Overnight trek to catch the sunrise over the Bromo caldera",
			Price:           850000,
			DurationDays:    2,
			MaxParticipants: 15,
			CategoryID:      categories[0].ID,
			DestinationID:   destinations[3].ID,
			Includes:        "Transport 4WD, Guide, Entrance ticket, 1x Breakfast",
			Excludes:        "Hotel, Meals, Personal expenses",
			IsActive:        true,
		},
		{
			Title:           "Jakarta City Explorer 2D1N",
			Description:     "Modern Jakarta, old town and a culinary tour",
			Price:           1200000,
			DurationDays:    2,
			MaxParticipants: 20,
			CategoryID:      categories[4].ID,
			DestinationID:   destinations[4].ID,
			Includes:        "Transport AC, Guide, Entrance tickets, 1x Breakfast",
			Excludes:        "Hotel, Meals, Personal expenses",
			IsActive:        true,
		},
	}
	for i := range packages {
		if err := app.PackageRepo.Create(&packages[i]); err != nil {
			return err
		}
	}

	return nil
}
