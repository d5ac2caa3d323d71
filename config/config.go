package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port              int
	DataFile          string
	StaticDir         string
	RestaurantName    string
	RestaurantAddress string
	SheetDate         string
}

// FromEnv builds the config from environment variables with sensible
// defaults. godotenv has already been given a chance to populate the
// environment by the time this runs.
func FromEnv() (Config, error) {
	cfg := Config{
		DataFile:          getenv("DATA_FILE", "data/booking_data.txt"),
		StaticDir:         getenv("STATIC_DIR", "web"),
		RestaurantName:    getenv("RESTAURANT_NAME", "The Dockside Grill"),
		RestaurantAddress: getenv("RESTAURANT_ADDRESS", "12 Harbour Street"),
		SheetDate:         getenv("SHEET_DATE", "2024-05-20"),
	}

	port, err := strconv.Atoi(getenv("PORT", "8080"))
	if err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT")
	}
	cfg.Port = port

	return cfg, nil
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
