package models

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultCategories are created on first start when seeding is enabled.
var DefaultCategories = []Category{
	{Name: "Food & Dining", Description: "Groceries, restaurants, and food delivery"},
	{Name: "Transportation", Description: "Gas, public transit, rideshare, and vehicle maintenance"},
	{Name: "Housing", Description: "Rent, mortgage, utilities, and home maintenance"},
	{Name: "Healthcare", Description: "Medical bills, prescriptions, and insurance"},
	{Name: "Entertainment", Description: "Movies, games, streaming services, and hobbies"},
	{Name: "Shopping", Description: "Clothing, electronics, and general purchases"},
	{Name: "Education", Description: "Tuition, books, courses, and learning materials"},
	{Name: "Miscellaneous", Description: "Other expenses that don't fit elsewhere"},
}

// Seed creates the default categories. Categories that already exist
// by name are left untouched.
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range DefaultCategories {
			category := c
			result := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoNothing: true,
			}).Create(&category)

			if result.Error != nil {
				return result.Error
			}

			if result.RowsAffected > 0 {
				log.Debug().Str("name", category.Name).Msg("Seeded category")
			}
		}

		return nil
	})
}
