package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/querylab/groupboard/internal/api"
	"github.com/querylab/groupboard/internal/clock"
	"github.com/querylab/groupboard/internal/config"
	"github.com/querylab/groupboard/internal/db"
	"github.com/querylab/groupboard/internal/logger"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	loc, err := time.LoadLocation(conf.Clock.Timezone)
	if err != nil {
		return fmt.Errorf("failed to load timezone %q -> %w", conf.Clock.Timezone, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	night := clock.NewNightEvaluator(loc)
	go night.Run(ctx)

	s := api.NewServer(conf, postgresDB, night)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
