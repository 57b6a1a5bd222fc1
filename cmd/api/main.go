package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/venstudio/studio-backend/config"
	"github.com/venstudio/studio-backend/internal/auth"
	"github.com/venstudio/studio-backend/internal/bootstrap"
	"github.com/venstudio/studio-backend/internal/jobs"
	"github.com/venstudio/studio-backend/internal/storage"
	"github.com/venstudio/studio-backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	setupLogger(cfg.App.LogLevel)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := storage.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("database open failed")
	}
	defer db.Close()

	rdb, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{Config: cfg.Redis})
	if err != nil {
		log.Fatal().Err(err).Msg("redis open failed")
	}
	defer rdb.Close()

	users := storage.NewUserRepository(db)
	promos := storage.NewPromoCodeRepository(db)

	st := store.New(store.Repositories{
		Users:         users,
		Clients:       storage.NewClientRepository(db),
		Projects:      storage.NewProjectRepository(db),
		Packages:      storage.NewPackageRepository(db),
		AddOns:        storage.NewAddOnRepository(db),
		TeamMembers:   storage.NewTeamMemberRepository(db),
		Transactions:  storage.NewTransactionRepository(db),
		Cards:         storage.NewCardRepository(db),
		Pockets:       storage.NewPocketRepository(db),
		PromoCodes:    promos,
		Leads:         storage.NewLeadRepository(db),
		Assets:        storage.NewAssetRepository(db),
		Contracts:     storage.NewContractRepository(db),
		SocialPosts:   storage.NewSocialPostRepository(db),
		SOPs:          storage.NewSOPRepository(db),
		Feedback:      storage.NewFeedbackRepository(db),
		Notifications: storage.NewNotificationRepository(db),
		Profile:       storage.NewProfileRepository(db),
	})

	if err := st.LoadAll(ctx); err != nil {
		// Served empty until a refresh succeeds.
		log.Error().Err(err).Msg("initial load failed")
	}

	sessions := auth.NewSessionStore(rdb, cfg.Auth.SessionTTL)
	authSvc := auth.NewService(users, sessions)

	scheduler := jobs.NewScheduler(promos)
	scheduler.Start()
	defer scheduler.Stop()

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "studio-backend",
		Version:     cfg.App.Version,
		DB:          db,
		Redis:       rdb,
		Store:       st,
		Auth:        authSvc,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

func setupLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}
