package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/expense-guard/backend/internal/config"
	v1 "github.com/expense-guard/backend/internal/controllers/v1"
	"github.com/expense-guard/backend/internal/models"
	"github.com/expense-guard/backend/internal/notify"
	"github.com/expense-guard/backend/internal/router"
	"github.com/expense-guard/backend/internal/service"
	"github.com/expense-guard/backend/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

//	@title			Expense Guard
//	@description	The backend for Expense Guard. Tracks expenses against monthly budgets per category and warns when a budget is close to or over its limit.
//	@license.name	MIT
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if cfg.HumanLogs() {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	db, err := connect(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if cfg.SeedCategories {
		err = models.Seed(context.Background(), db)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
	}

	notifiers := []notify.Notifier{notify.Log{}}
	var amqp *notify.AMQP
	if cfg.AMQPURL != "" {
		amqp, err = notify.NewAMQP(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
		notifiers = append(notifiers, amqp)
		log.Info().Str("exchange", cfg.AMQPExchange).Str("queue", cfg.AMQPQueue).Msg("Publishing alerts via AMQP")
	}

	stores := store.New(db)
	svc := service.New(stores, stores, stores)
	co := v1.New(svc, stores, notifiers...)

	r, teardown, err := router.Config(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(cfg, co, stores, r.Group("/"))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("listen: %s", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with
	// a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Received signal to shut down, waiting for open requests to finish")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	if amqp != nil {
		if err := amqp.Close(); err != nil {
			log.Error().Err(err).Msg("Closing AMQP connection")
		}
	}

	if err := models.Close(db); err != nil {
		log.Error().Err(err).Msg("Closing database")
	}

	log.Info().Msg("Server exited")
}

// connect opens PostgreSQL if DB_HOST is set and the SQLite database
// at DB_PATH otherwise.
func connect(cfg *config.Config) (*gorm.DB, error) {
	if cfg.UsePostgres() {
		log.Info().Str("host", cfg.DBHost).Str("database", cfg.DBName).Msg("Using PostgreSQL")
		return models.ConnectPostgres(cfg.PostgresDSN())
	}

	// Create data directory
	err := os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm)
	if err != nil {
		return nil, err
	}

	log.Info().Str("path", cfg.DBPath).Msg("Using SQLite")
	return models.Connect(cfg.DBPath)
}
