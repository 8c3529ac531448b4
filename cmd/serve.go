package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/blakeyoder/blakeyoderdotcom/config"
	"github.com/blakeyoder/blakeyoderdotcom/internal/api"
	"github.com/blakeyoder/blakeyoderdotcom/internal/contact"
	"github.com/blakeyoder/blakeyoderdotcom/internal/mail"
	"github.com/blakeyoder/blakeyoderdotcom/internal/preview"
	"github.com/blakeyoder/blakeyoderdotcom/internal/ratelimit"
)

// serveCmd is the cobra command that starts the backend API server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the blakeyoder.com backend api server",
	Run: func(cmd *cobra.Command, _ []string) {
		err := serve(cmd.Context())
		cobra.CheckErr(err)
	},
}

// init registers the serve command and its flags on the root command
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.PersistentFlags().String("env-file", ".env.local", "env file location")
}

// serve initializes dependencies and starts the API server
func serve(ctx context.Context) error {
	// local development keeps secrets in .env.local; a missing file is fine
	// since production provides real environment variables
	if err := godotenv.Load(k.String("env-file")); err != nil {
		log.Debug().Err(err).Msg("no env file loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	mailer, err := mail.New(cfg.ResendAPIKey, cfg.ContactEmailFrom, cfg.ContactEmailTo)
	if err != nil {
		return fmt.Errorf("setting up mail client: %w", err)
	}

	limiter := ratelimit.New(cfg.RateLimitMax, cfg.RateLimitWindow)
	limiter.Start(ctx, ratelimit.DefaultSweepInterval)

	detector := contact.NewDetector(contact.WithMaxURLs(cfg.SpamMaxURLs))
	previews := preview.NewFetcher()

	handler := api.NewRouter(api.RouterConfig{
		Mailer:      mailer,
		Limiter:     limiter,
		Detector:    detector,
		Previews:    previews,
		MaxBodySize: cfg.MaxBodySize,
	})

	srv := &http.Server{
		Addr:         cfg.Listen,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		}
	}()

	log.Info().Str("listen", cfg.Listen).Msg("starting blakeyoder.com backend")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}

	return nil
}
