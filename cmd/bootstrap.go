package cmd

import (
	"log"
	"time"

	"tablebook/config"
	"tablebook/helpers"
	"tablebook/models"
	"tablebook/storage"
)

// bootstrapRestaurant builds the restaurant aggregate for both front ends.
// On first run (no data file yet) the demo seed is applied and written out;
// otherwise the saved state replaces the seed.
func bootstrapRestaurant(cfg config.Config) (*models.Restaurant, *storage.Store, error) {
	restaurant := models.NewRestaurant(cfg.RestaurantName, cfg.RestaurantAddress, models.NewBookingSheet(cfg.SheetDate))
	helpers.SeedRestaurant(restaurant)

	store := storage.NewStore(cfg.DataFile)
	loaded, err := store.Load(restaurant, time.Now())
	if err != nil {
		return nil, nil, err
	}
	if loaded {
		log.Printf("loaded booking data: %d reservations on sheet %s",
			len(restaurant.Sheet.Reservations()), restaurant.Sheet.Date())
	} else {
		if err := store.Save(storage.Encode(restaurant)); err != nil {
			return nil, nil, err
		}
		log.Printf("first run, seed data written to %s", cfg.DataFile)
	}
	return restaurant, store, nil
}
