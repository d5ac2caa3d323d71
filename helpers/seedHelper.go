package helpers

import (
	"github.com/shopspring/decimal"

	"tablebook/models"
)

// SeedRestaurant fills a fresh restaurant with the demo floor plan, menu and
// roster. Used on first run, before any data file exists.
func SeedRestaurant(restaurant *models.Restaurant) {
	sheet := restaurant.Sheet
	tables := []struct {
		id       int
		capacity int
		location string
	}{
		{1, 2, "Window"},
		{2, 2, "Window"},
		{3, 4, "Center"},
		{4, 4, "Center"},
		{5, 6, "Patio"},
	}
	for _, t := range tables {
		table, err := models.NewTable(t.id, t.capacity, t.location)
		if err == nil {
			_ = sheet.AddTable(table)
		}
	}

	menu := []struct {
		name     string
		category string
		price    string
	}{
		{"Seared Salmon", "Entree", "24.50"},
		{"Garden Salad", "Starter", "8.50"},
		{"Ribeye Steak", "Entree", "36.00"},
		{"Tiramisu", "Dessert", "7.50"},
		{"Fresh Lemonade", "Drink", "4.50"},
	}
	for _, m := range menu {
		price, err := decimal.NewFromString(m.price)
		if err != nil {
			continue
		}
		item, err := models.NewMenuItem(m.name, m.category, price)
		if err == nil {
			restaurant.AddMenuItem(item)
		}
	}

	restaurant.AddStaff(models.NewFrontDeskStaff("Alice", "alice@example.com"))
	restaurant.AddStaff(models.NewFrontDeskStaff("Bob", "bob@example.com"))
	restaurant.AddStaff(models.NewManager("Grace", "grace@example.com"))
}
