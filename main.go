package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"ts-server/di"
)

func main() {
	// Load .env when present; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded:", err)
	}

	env := os.Getenv("TS_ENV")
	if env == "" {
		env = "prod"
	}

	container := di.NewContainer(env)

	fmt.Println("starting server!")
	container.TripSenseHttpServer.Start()
	fmt.Println("server stopped!")
}
