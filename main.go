package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"tablebook/cmd"
)

func main() {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			log.Printf("error loading .env file: %v", err)
		}
	}

	cmd.Execute()
}
