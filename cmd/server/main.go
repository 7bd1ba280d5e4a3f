// Command server runs the PromoHub talent registration service: the
// public registration wizard API, the admin management API, and the ops
// endpoints. Dependencies degrade gracefully: without Postgres, Redis,
// Kafka, or SMTP configured it boots fully in-memory for development.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	authhandler "promohub/internal/auth/handler"
	authservice "promohub/internal/auth/service"
	httpapi "promohub/internal/http"
	"promohub/internal/notification"
	"promohub/internal/platform/config"
	"promohub/internal/platform/httpserver"
	"promohub/internal/platform/logger"
	platformredis "promohub/internal/platform/redis"
	"promohub/internal/registration/draft"
	registrationhandler "promohub/internal/registration/handler"
	registrationmetrics "promohub/internal/registration/metrics"
	registrationservice "promohub/internal/registration/service"
	"promohub/internal/registration/session"
	talenthandler "promohub/internal/talent/handler"
	talentmetrics "promohub/internal/talent/metrics"
	talentservice "promohub/internal/talent/service"
	"promohub/internal/talent/store"
	"promohub/internal/talent/store/memory"
	"promohub/internal/talent/store/postgres"
	"promohub/pkg/platform/audit"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Logging)

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Persistence: Postgres when configured, in-memory otherwise.
	var (
		db        *sql.DB
		talents   store.TalentStore
		documents store.DocumentStore
	)
	if cfg.PostgresURL != "" {
		var err error
		db, err = sql.Open("postgres", cfg.PostgresURL)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			return err
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			return err
		}
		if err := audit.EnsureSchema(ctx, db); err != nil {
			return err
		}
		talents = postgres.NewTalentStore(db)
		documents = postgres.NewDocumentStore(db)
		log.Info("using postgres persistence")
	} else {
		talents = memory.NewTalentStore()
		documents = memory.NewDocumentStore()
		log.Warn("POSTGRES_URL not set, using in-memory persistence")
	}

	// Draft storage: Redis when configured, in-memory otherwise.
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		return err
	}
	var drafts draft.Store
	if redisClient != nil {
		defer redisClient.Close()
		drafts = draft.NewRedisStore(redisClient.Client, cfg.DraftTTL)
		log.Info("using redis draft storage")
	} else {
		drafts = draft.NewMemoryStore()
		log.Warn("REDIS_URL not set, using in-memory draft storage")
	}

	// Audit sinks fan out to every configured backend.
	var sinks []audit.Sink
	if db != nil {
		sinks = append(sinks, audit.NewPostgresSink(db))
	}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaSink, err := audit.NewKafkaSink(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			return err
		}
		defer kafkaSink.Close()
		sinks = append(sinks, kafkaSink)
		log.Info("audit events publishing to kafka", "topic", cfg.Kafka.Topic)
	}
	if len(sinks) == 0 {
		sinks = append(sinks, audit.NewMemorySink())
	}
	auditor := audit.NewPublisher(log, sinks...)

	var mailer notification.Mailer
	if cfg.SMTP.Host != "" {
		mailer = notification.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
	} else {
		mailer = &notification.LogMailer{Logger: log}
	}
	notifier := notification.NewNotifier(mailer, cfg.SMTP.AdminEmail, log, auditor)

	sessions := session.NewRegistry(cfg.WizardSessionTTL)
	go sessions.Sweep(ctx, 15*time.Minute)

	registrationSvc := registrationservice.New(
		sessions, drafts, talents, documents, db,
		notifier, log, registrationmetrics.New(), auditor,
	)
	talentSvc := talentservice.New(talents, documents, cfg.PageSize, log, talentmetrics.New(), auditor)
	authSvc := authservice.New(
		cfg.AdminUsername, cfg.AdminPasswordHash, cfg.TokenTTL,
		authservice.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer),
		log, auditor,
	)

	health := map[string]httpapi.HealthChecker{}
	if db != nil {
		health["postgres"] = dbHealth{db}
	}
	if redisClient != nil {
		health["redis"] = redisClient
	}

	router := httpapi.NewRouter(httpapi.Deps{
		Auth:         authhandler.New(authSvc, log),
		Registration: registrationhandler.New(registrationSvc, log),
		Talent:       talenthandler.New(talentSvc, log),
		Validator:    authSvc.Validator(),
		Logger:       log,
		Health:       health,
	})

	srv := httpserver.New(cfg.Addr, router)

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting promohub", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

type dbHealth struct {
	db *sql.DB
}

func (h dbHealth) Health(ctx context.Context) error {
	return h.db.PingContext(ctx)
}
