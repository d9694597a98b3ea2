package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nadir-k/streamhub_api/config"
	deps "github.com/nadir-k/streamhub_api/internal/deps"
	api "github.com/nadir-k/streamhub_api/internal/http/rest"
)

const allowConnectionsAfterShutdown = 1 * time.Second

func main() {
	cfg := config.New()
	deps := deps.New(cfg)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := deps.DB.Ping(pingCtx); err != nil {
		log.Println("database ping failed:", err)
	}

	a := &api.API{
		Config: cfg,
		Deps:   deps,
		DB:     deps.Pool(),
	}

	go func() {
		log.Printf("Server running on port %v ...", cfg.Port)
		log.Fatal(a.Serve())
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stopChan

	log.Println("Request to shutdown server. Waiting", allowConnectionsAfterShutdown)
	waitTimer := time.NewTimer(allowConnectionsAfterShutdown)
	<-waitTimer.C

	log.Println("Shutting down server...")

	if err := a.Shutdown(); err != nil {
		log.Println("server shutdown error:", err)
	}

	deps.DB.Close()
	log.Println("Database connections closed.")
}
