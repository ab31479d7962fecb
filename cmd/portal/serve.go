package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	_ "github.com/grievance-portal/gateway/docs"
	"github.com/grievance-portal/gateway/internal/api"
	"github.com/grievance-portal/gateway/internal/api/metrics"
	"github.com/grievance-portal/gateway/internal/api/pages"
	"github.com/grievance-portal/gateway/internal/core/service"
	"github.com/grievance-portal/gateway/internal/infrastructure/apiclient"
	"github.com/grievance-portal/gateway/internal/infrastructure/cache"
	portalmongo "github.com/grievance-portal/gateway/internal/infrastructure/db/mongo"
	portalredis "github.com/grievance-portal/gateway/internal/infrastructure/db/redis"
	infrahttp "github.com/grievance-portal/gateway/internal/infrastructure/http"
	"github.com/grievance-portal/gateway/internal/infrastructure/http/handlers"
	"github.com/grievance-portal/gateway/internal/infrastructure/queue"
	"github.com/grievance-portal/gateway/internal/pkg/config"
	"github.com/grievance-portal/gateway/pkg/logger"
)

var shutdownTimeout time.Duration

// serveCmd starts the HTTP gateway.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP gateway",
	Long: `Start the HTTP gateway.

The gateway connects to Redis (sessions, duplicate submission guard) and
MongoDB (audit trail) before it starts listening. SIGINT or SIGTERM drains
in-flight requests and pending audit entries, then exits.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 10*time.Second, "Time allowed for in-flight requests on shutdown")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Development(),
		Service: "portal",
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Stores ---
	rdb, err := portalredis.Connect(ctx, portalredis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	mongoClient, db, err := portalmongo.Connect(ctx, portalmongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(dctx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	auditRepo := portalmongo.NewAuditRepository(db)
	if err := auditRepo.EnsureIndexes(ctx, cfg.Audit.Retention); err != nil {
		return fmt.Errorf("audit indexes: %w", err)
	}

	// --- Upstream API ---
	client, err := apiclient.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout,
		apiclient.WithObserver(metrics.ObserveUpstream))
	if err != nil {
		return err
	}

	// --- Audit pipeline ---
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, auditRepo, log, queue.Hooks{
		Dropped: metrics.AuditDroppedTotal.Inc,
		Failed:  metrics.AuditWriteFailuresTotal.Inc,
		Depth:   metrics.SetAuditDepth,
	})
	auditCtx, stopAudit := context.WithCancel(context.Background())
	dispatcher.Start(auditCtx)

	// --- Services ---
	queryCache := cache.New(cfg.CacheTTL)
	authAPI := apiclient.NewAuth(client)
	workerAPI := apiclient.NewWorkers(client)

	authService := service.NewAuthService(authAPI, portalredis.NewSessionStore(rdb),
		cfg.Session.Secret, cfg.Session.TTL, log)
	complaintService := service.NewComplaintService(apiclient.NewComplaints(client), workerAPI,
		queryCache, portalredis.NewSubmitGuard(rdb), dispatcher, log)
	workerService := service.NewWorkerService(workerAPI, queryCache, dispatcher, log)
	userService := service.NewUserService(apiclient.NewUsers(client), authAPI, queryCache, dispatcher, log)
	dashboardService := service.NewDashboardService(complaintService, workerService, userService, log)

	table, err := pages.Default()
	if err != nil {
		return err
	}

	// --- HTTP ---
	e := infrahttp.NewServer(log, map[string]handlers.Pinger{
		"redis":         portalredis.NewPinger(rdb),
		"mongodb":       portalmongo.NewPinger(mongoClient),
		"grievance_api": client,
	})
	api.Register(e, api.Deps{
		Auth:           authService,
		Complaints:     complaintService,
		Workers:        workerService,
		Users:          userService,
		Dashboard:      dashboardService,
		Audit:          auditRepo,
		Cache:          queryCache,
		Pages:          table,
		CookieSecure:   cfg.Session.CookieSecure,
		AuthRatePerMin: cfg.AuthRatePerMin,
		Log:            log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err := <-errCh:
		if err != nil {
			stopAudit()
			dispatcher.Wait()
			return fmt.Errorf("serve: %w", err)
		}
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	stopAudit()
	dispatcher.Wait()
	log.Info().Msg("gateway stopped")
	return nil
}
