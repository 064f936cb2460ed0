package main

import (
	"github.com/joho/godotenv"

	"github.com/example/hotel-reservations/cmd"
)

func main() {
	// Optional .env for local runs; env vars win when both are set.
	_ = godotenv.Load()
	cmd.Execute()
}
