package main

import (
	"os"

	"github.com/FanTom52/zachetka/app/config"
	"github.com/FanTom52/zachetka/app/database"
	"github.com/FanTom52/zachetka/app/logger"
)

// Applies the schema and loads the demo dataset, then exits. Useful for
// provisioning a database without starting the server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	if err := database.Seed(db, cfg.BcryptCost); err != nil {
		log.Fatal().Err(err).Msg("failed to seed database")
	}

	log.Info().Msg("migrations and seed applied")
}
