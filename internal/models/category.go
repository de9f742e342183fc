package models

import (
	"strings"

	"gorm.io/gorm"
)

// Category groups expenses and carries the monthly budgets.
type Category struct {
	DefaultModel
	Name        string `json:"name" gorm:"uniqueIndex;not null" example:"Food & Dining"`                         // Name of the category
	Description string `json:"description" example:"Groceries, restaurants, and food delivery" default:""` // Description of the category
}

func (c Category) Self() string {
	return "Category"
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)

	return nil
}
