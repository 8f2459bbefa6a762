package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	endpoint string
	logLevel string
	env      string
	seed     bool
}

func NewConfig() Config {
	var (
		endpoint string
		seed     bool
		logLevel string
		env      string
	)

	_ = godotenv.Load()

	flag.StringVar(&endpoint, "a", "localhost:8080", "address and port to run the stub backend")
	flag.BoolVar(&seed, "seed", false, "seed a demo account with sample data")
	flag.Parse()

	if address := os.Getenv("STUB_ADDRESS"); address != "" {
		endpoint = address
	}

	if os.Getenv("STUB_SEED") == "true" {
		seed = true
	}

	if l := os.Getenv("LOG_LEVEL"); l != "" {
		logLevel = l
	} else {
		logLevel = "info"
	}

	if e := os.Getenv("ENV"); e != "" {
		env = e
	} else {
		env = "development"
	}

	return Config{
		endpoint,
		logLevel,
		env,
		seed,
	}
}
