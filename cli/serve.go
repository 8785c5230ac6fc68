package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/armory-api/auth"
	"github.com/junaidrashid-git/armory-api/backup"
	"github.com/junaidrashid-git/armory-api/config"
	"github.com/junaidrashid-git/armory-api/media"
	"github.com/junaidrashid-git/armory-api/notify"
	"github.com/junaidrashid-git/armory-api/populate"
	"github.com/junaidrashid-git/armory-api/routes"
	"github.com/junaidrashid-git/armory-api/services"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API (default)",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, st, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	hub := notify.NewHub()
	defer hub.Close()

	sinks := []notify.Broadcaster{hub}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaSink := notify.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kafkaSink.Close()
		sinks = append(sinks, kafkaSink)
	}
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		defer rdb.Close()
		relay := notify.NewRedisRelay(rdb, cfg.RedisChannel, hub)
		sinks = append(sinks, relay)
		go func() {
			if err := relay.Run(ctx); err != nil {
				log.Error().Err(err).Msg("redis relay stopped")
			}
		}()
	}

	notifier := notify.New(notify.Options{
		QueueSize: cfg.NotifyQueueSize,
		Alerter:   alerter(cfg),
		Sinks:     sinks,
	})
	defer func() {
		drainCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := notifier.Close(drainCtx); err != nil {
			log.Warn().Err(err).Msg("notification queue not drained")
		}
	}()

	images := media.NewOS(cfg.ImageDir)
	if err := images.Fs().MkdirAll(cfg.ImageDir, 0o755); err != nil {
		return err
	}
	svc := services.New(st, notifier, images)

	if cfg.Populate {
		if _, err := populate.Run(ctx, svc, cfg.SeedPassword); err != nil {
			return err
		}
	}

	if cfg.BackupDir != "" {
		go backup.New(afero.NewOsFs(), cfg.ImageDir, cfg.BackupDir, cfg.BackupRetention, cfg.BackupHour).Run(ctx)
	}

	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.AuthDisabled {
		log.Warn().Msg("authentication is disabled")
	}
	router := routes.NewRouter(routes.Deps{
		Services:     svc,
		Tokens:       auth.NewTokens(cfg.AuthSecretKey, cfg.AuthExpiresIn),
		AuthDisabled: cfg.AuthDisabled,
		Hub:          hub,
		Images:       images.HTTP(),
		CORSOrigins:  cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("driver", cfg.StoreDriver).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func alerter(cfg *config.Config) notify.Alerter {
	if cfg.SlackToken != "" {
		return notify.NewSlackAlerter(cfg.SlackToken, cfg.SlackChannel)
	}
	return notify.LogAlerter{}
}
