package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"provenia/internal/artifacts"
	"provenia/internal/compliance"
	"provenia/internal/ledger"
	"provenia/internal/notification"
	"provenia/internal/platform/config"
	"provenia/internal/platform/httpserver"
	"provenia/internal/platform/kafka"
	"provenia/internal/platform/logger"
	"provenia/internal/platform/postgres"
	platformredis "provenia/internal/platform/redis"
	"provenia/internal/registry"
	registryHandler "provenia/internal/registry/handler"
	transferHandler "provenia/internal/transfer/handler"
	"provenia/internal/transfer/metrics"
	"provenia/internal/transfer/models"
	"provenia/internal/transfer/service"
	"provenia/internal/verify"
	id "provenia/pkg/domain"
	"provenia/pkg/platform/audit"
	"provenia/pkg/platform/audit/publisher"
	auditmemory "provenia/pkg/platform/audit/store/memory"
	auditpostgres "provenia/pkg/platform/audit/store/postgres"
	"provenia/pkg/platform/circuit"
)

// main wires the transfer engine. Every external dependency (postgres,
// redis, kafka) is optional: absent configuration selects the in-memory
// equivalent so a dev instance runs with no services at all.
func main() {
	log := logger.New()

	cfg, err := config.Load(".")
	if err != nil {
		log.Error("config load failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Error("postgres connection failed", "error", err)
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
	}

	rdb, err := platformredis.New(cfg.Redis())
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	producer, err := kafka.NewProducer(ctx, cfg.KafkaBrokers, cfg.AuditTopic, cfg.NotificationTopic)
	if err != nil {
		log.Error("kafka connection failed", "error", err)
		os.Exit(1)
	}
	defer producer.Close()

	// Audit pipeline: postgres-backed trail when available, kafka mirror for
	// compliance-category events when brokers are configured.
	var auditStore audit.Store
	if db != nil {
		auditStore = auditpostgres.New(db)
	} else {
		auditStore = auditmemory.NewInMemoryStore()
	}
	publisherOpts := []publisher.Option{publisher.WithLogger(log)}
	if producer != nil {
		publisherOpts = append(publisherOpts, publisher.WithStream(producer, cfg.AuditTopic))
	}
	auditLog := publisher.NewPublisher(auditStore, publisherOpts...)
	defer auditLog.Close()

	// Ledger: per-asset settlement with an idempotency window, redis-backed
	// when configured.
	var ledgerStore ledger.Store
	if db != nil {
		ledgerStore = ledger.NewPostgresStore(db)
	} else {
		ledgerStore = ledger.NewInMemoryStore()
	}
	ledgerOpts := []ledger.Option{
		ledger.WithLogger(log),
		ledger.WithWindowTTL(cfg.SettlementWindow),
	}
	if rdb != nil {
		ledgerOpts = append(ledgerOpts, ledger.WithWindow(ledger.NewRedisWindow(rdb.Client)))
	}
	settlement, err := ledger.NewService(ledgerStore, ledgerOpts...)
	if err != nil {
		log.Error("ledger service init failed", "error", err)
		os.Exit(1)
	}

	partyStore := partyStoreFor(db)

	issuer, err := artifacts.NewCertificateIssuer([]byte(cfg.CertificateSigningKey))
	if err != nil {
		log.Error("certificate issuer init failed", "error", err)
		os.Exit(1)
	}

	dispatcherOpts := []notification.Option{notification.WithLogger(log)}
	if producer != nil {
		dispatcherOpts = append(dispatcherOpts, notification.WithSender(
			models.ChannelWebhook, notification.NewWebhookSender(producer, cfg.NotificationTopic)))
	}
	dispatcher := notification.NewDispatcher(notification.NewLogSender(log), dispatcherOpts...)

	methodChecker := verify.NewBreakerChecker(
		verify.StaticChecker(),
		circuit.New("verification-provider", circuit.WithFailureThreshold(5), circuit.WithSuccessThreshold(2)),
		30*time.Second,
	)

	m := metrics.New()
	engine, err := service.NewService(service.Dependencies{
		Ownership:    verify.NewOwnershipVerifier(settlement),
		Recipient:    verify.NewRecipientValidator(partyStore),
		Security:     verify.NewSecurityVerifier(methodChecker),
		Compliance:   compliance.NewEngine(),
		Settler:      settlement,
		Certificates: issuer,
		Escrow:       artifacts.NewEscrowService(),
		Insurance:    artifacts.NewInsuranceService(),
		Documents:    artifacts.NewLegalDocumentGenerator(),
		Notifier:     dispatcher,
		Audit:        auditLog,
	}, service.WithLogger(log), service.WithMetrics(m))
	if err != nil {
		log.Error("transfer service init failed", "error", err)
		os.Exit(1)
	}

	router := chi.NewRouter()
	router.Get("/healthz", healthz(db, rdb))
	router.Handle("/metrics", promhttp.Handler())
	transferHandler.New(engine, auditLog, settlement, log).Register(router)
	registryHandler.New(partyStore, log).Register(router)

	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info("starting provenia", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}

type partyStore interface {
	Create(ctx context.Context, party *registry.Party) error
	FindByID(ctx context.Context, partyID id.PartyID) (*registry.Party, error)
}

func partyStoreFor(db *sql.DB) partyStore {
	if db != nil {
		return registry.NewPostgresStore(db)
	}
	return registry.NewInMemoryStore()
}

// healthz reports liveness plus the state of whichever backing services are
// configured.
func healthz(db *sql.DB, rdb *platformredis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if db != nil {
			if err := db.PingContext(ctx); err != nil {
				http.Error(w, "postgres unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		if rdb != nil {
			if err := rdb.Health(ctx); err != nil {
				http.Error(w, "redis unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
