package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gigbook/backend/internal/auth"
	"github.com/gigbook/backend/internal/config"
	"github.com/gigbook/backend/internal/models"
	"github.com/gigbook/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	flag.Parse()
	switch flag.Arg(0) {
	case "", "serve":
		serve(cfg)
	case "token":
		token(cfg, flag.Arg(1))
	default:
		log.Fatal().Str("command", flag.Arg(0)).Msg("unknown command, use 'serve' or 'token <user-id>'")
	}
}

// token prints an administrator token for the user.
func token(cfg config.Config, userID string) {
	id, err := uuid.Parse(userID)
	if err != nil {
		log.Fatal().Str("user", userID).Msg("the user ID must be a UUID")
	}

	signed, err := auth.NewVerifier(cfg.JWTSecret).Issue(id, 24*time.Hour)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	fmt.Println(signed)
}

func connect(cfg config.Config) error {
	if cfg.Database.Postgres() {
		log.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.Name).Msg("Database")
		return models.ConnectPostgres(cfg.Database.DSN())
	}

	// Create data directory
	err := os.MkdirAll(cfg.DataDir, os.ModePerm)
	if err != nil {
		return err
	}

	return models.Connect(filepath.Join(cfg.DataDir, "gorm.db"))
}

func serve(cfg config.Config) {
	if err := connect(cfg); err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config(cfg.APIURL)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(r.Group("/"), cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("listen: %s\n", err)
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("backend startup complete")

	// Wait for interrupt signal to gracefully shut down the server with
	// a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
