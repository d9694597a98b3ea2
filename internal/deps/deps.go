package deps

import (
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nadir-k/streamhub_api/config"
	"github.com/nadir-k/streamhub_api/internal/db"
	"github.com/nadir-k/streamhub_api/internal/http/livekit"
)

// Dependencies holds the process-wide clients, built once at startup and
// injected into every handler.
type Dependencies struct {
	DB      *db.DB
	LiveKit *livekit.Client
}

func New(cfg *config.Config) *Dependencies {
	database, err := db.New(cfg.Dsn)
	if err != nil {
		log.Panicln("failed to connect to database", "error", err)
	}

	lk := livekit.NewClient(cfg.LiveKitURL, cfg.LiveKitAPIKey, cfg.LiveKitAPISecret)
	if !lk.Configured() {
		log.Println("[LiveKit]: credentials missing, stream routes will return errors")
	}

	deps := Dependencies{
		DB:      database,
		LiveKit: lk,
	}
	return &deps
}

func (d *Dependencies) Pool() *pgxpool.Pool {
	return d.DB.Pool()
}
