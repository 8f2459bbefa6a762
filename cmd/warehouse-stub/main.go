package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/sakthiprasad2004/warehouse-manager/internal/logger"
	"github.com/sakthiprasad2004/warehouse-manager/internal/stub"
	"github.com/sakthiprasad2004/warehouse-manager/internal/utils"
)

func main() {
	config := NewConfig()

	if err := logger.Initialize(config.logLevel, config.env); err != nil {
		log.Fatalf("Logger wasn't initialized due to %s", err)
	}

	stubServer := stub.NewServer()

	if config.seed {
		creds, err := stubServer.Seed()
		if err != nil {
			log.Fatalf("Seeding failed due to %s", err)
		}
		log.Printf("Seeded demo account %s/%s\n", creds.Username, creds.Password)
	}

	server := &http.Server{
		Addr:    config.endpoint,
		Handler: stubServer.Router(),
	}

	utils.HandleTerminationProcess(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	})

	log.Printf("Running stub backend on %s\n", config.endpoint)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
