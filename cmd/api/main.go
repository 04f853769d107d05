package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vitrine-backend/internal/app"
	"vitrine-backend/internal/assets"
	"vitrine-backend/internal/auth"
	"vitrine-backend/internal/config"
	"vitrine-backend/internal/logging"
	"vitrine-backend/internal/notifications"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repos, closeStore, err := app.OpenRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("store connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore(context.Background())

	cacheStore, closeCache, err := app.OpenCache(ctx, cfg, logger)
	if err != nil {
		logger.Error("cache connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeCache()

	var jwtManager *auth.Manager
	if cfg.JWTSecret != "" {
		jwtManager = &auth.Manager{
			Secret:     []byte(cfg.JWTSecret),
			AccessTTL:  cfg.AccessTTL(),
			RefreshTTL: cfg.RefreshTTL(),
			Issuer:     "vitrine-backend",
		}
	} else {
		logger.Info("jwt disabled, sign-in and cookie admin access are off")
	}

	var deps app.Collaborators
	deps.Tokens = jwtManager

	mailer := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.BrevoSandbox)
	if staff := notifications.NewStaffNotifier(mailer, cfg.ContactNotifyEmail, cfg.AppName); staff != nil {
		deps.StaffNotifier = staff
		logger.Info("staff notifications enabled", slog.String("sender", cfg.BrevoSenderEmail), slog.Bool("sandbox", cfg.BrevoSandbox))
	} else {
		logger.Info("staff notifications disabled")
	}

	if otpClient := notifications.NewOTPClient(cfg.OTPEndpoint, cfg.OTPAPIKey, cfg.AppName); otpClient != nil {
		deps.OTPSender = otpClient
		if cfg.OTPSendAttempts > 1 {
			deps.OTPSender = notifications.NewRetryingSender(otpClient, cfg.OTPSendAttempts, time.Second)
		}
		logger.Info("otp delivery enabled", slog.Int("attempts", cfg.OTPSendAttempts))
	} else {
		logger.Info("otp delivery disabled")
	}

	registry, err := assets.Default(cfg.AssetBaseURL)
	if err != nil {
		logger.Error("asset manifest invalid", slog.String("error", err.Error()))
		os.Exit(1)
	}

	services := app.NewServices(repos, cfg, deps)
	router := app.NewRouter(cfg, services, registry, cacheStore, jwtManager, logger)

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
