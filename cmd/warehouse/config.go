package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	apiEndpoint string
	sessionPath string
	logLevel    string
	env         string
	args        []string
}

func NewConfig() Config {
	var (
		apiEndpoint string
		sessionPath string
		logLevel    string
		env         string
	)

	_ = godotenv.Load()

	flag.StringVar(&apiEndpoint, "a", "http://localhost:8080", "base URL of the warehouse API")
	flag.StringVar(&sessionPath, "s", "", "path of the identity file (defaults under the user config dir)")
	flag.Parse()

	if address := os.Getenv("WAREHOUSE_API_ADDRESS"); address != "" {
		apiEndpoint = address
	}

	if path := os.Getenv("WAREHOUSE_SESSION_FILE"); path != "" {
		sessionPath = path
	}

	if l := os.Getenv("LOG_LEVEL"); l != "" {
		logLevel = l
	} else {
		logLevel = "error"
	}

	if e := os.Getenv("ENV"); e != "" {
		env = e
	} else {
		env = "production"
	}

	return Config{
		apiEndpoint,
		sessionPath,
		logLevel,
		env,
		flag.Args(),
	}
}
