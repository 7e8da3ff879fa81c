// cmd/resetdata — standalone maintenance script that irreversibly wipes all
// operational data (transactions, route assignments, stocks, vehicles) while
// preserving users and stores. Takes no arguments; exit 0 on success, 1 on
// any caught error.
//
// The script shares the transactional reset service with the HTTP endpoint,
// so the deletion is all-or-nothing here too.
package main

import (
	"context"
	"os"
	"time"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/config"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/infra"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/repository"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("failed to load config")
		os.Exit(1)
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to postgres")
		os.Exit(1)
	}

	resetSvc := service.NewResetService(repository.NewResetRepository(db), nil, "")
	if _, err := resetSvc.Reset(context.Background()); err != nil {
		log.Error().Err(err).Msg("reset failed — no data was deleted")
		os.Exit(1)
	}
}
