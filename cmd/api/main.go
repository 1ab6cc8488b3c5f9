package main

import (
	"context"
	"log"
	"time"

	"lc-atelier/internal/core/cache"
	"lc-atelier/internal/core/config"
	"lc-atelier/internal/core/database"
	"lc-atelier/internal/core/logger"
	"lc-atelier/internal/core/server"
	orderadapter "lc-atelier/internal/features/customorders/adapters"
	orderhandler "lc-atelier/internal/features/customorders/handler"
	orderservice "lc-atelier/internal/features/customorders/service"
	draftadapter "lc-atelier/internal/features/drafts/adapters"
	drafthandler "lc-atelier/internal/features/drafts/handler"
	draftservice "lc-atelier/internal/features/drafts/service"
	fabricadapter "lc-atelier/internal/features/fabrics/adapters"
	fabrichandler "lc-atelier/internal/features/fabrics/handler"
	fabricservice "lc-atelier/internal/features/fabrics/service"
	measurementadapter "lc-atelier/internal/features/measurements/adapters"
	measurementhandler "lc-atelier/internal/features/measurements/handler"
	measurementservice "lc-atelier/internal/features/measurements/service"
	notifadapter "lc-atelier/internal/features/notifications/adapters"
	notifports "lc-atelier/internal/features/notifications/ports"
	notifservice "lc-atelier/internal/features/notifications/service"

	"go.uber.org/zap"
)

// @title LC Atelier API
// @version 1.0
// @description Custom-tailoring storefront API: custom-order intake, pricing, drafts, fabric catalog, and measurement profiles.
// @contact.name API Support
// @contact.email support@lcatelier.pk
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Postgres: orders, fabric catalog, measurement profiles.
	db, err := database.Connect(cfg.Postgres)
	if err != nil {
		l.Fatal("Postgres connection failed", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		l.Fatal("Schema bootstrap failed", zap.Error(err))
	}
	cancel()

	// Redis: draft store and catalog cache.
	redisCache, err := cache.NewRedisAdapter(cfg.RedisURL)
	if err != nil {
		l.Fatal("Redis connection failed", zap.Error(err))
	}
	defer redisCache.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisCache.Ping(pingCtx); err != nil {
		pingCancel()
		l.Fatal("Redis ping failed", zap.Error(err))
	}
	pingCancel()

	// Notification dispatcher: queued, best-effort, drained on shutdown.
	dispatcher := notifservice.NewDispatcher([]notifports.Sender{
		notifadapter.NewEmailSender(cfg.Notifications.EmailWebhookURL),
		notifadapter.NewWhatsAppSender(cfg.Notifications.WhatsAppWebhookURL),
	}, cfg.Notifications.QueueSize)
	defer dispatcher.Close()

	// Measurement profiles.
	profileStore := measurementadapter.NewPostgresProfileStore(db)
	profileService := measurementservice.NewProfileService(profileStore)
	profileHandler := measurementhandler.NewProfileHandler(profileService)

	// Custom-order pipeline.
	orderRepo := orderadapter.NewPostgresOrderRepository(db)
	orderSvc := orderservice.NewOrderService(
		orderRepo,
		orderadapter.NewProfileSaver(profileService),
		orderadapter.NewQueueNotifier(dispatcher),
	)
	orderHdl := orderhandler.NewOrderHandler(orderSvc)

	// Wizard draft persistence.
	draftTTL := time.Duration(cfg.Drafts.TTLDays) * 24 * time.Hour
	draftRepo := draftadapter.NewRedisDraftRepository(redisCache, draftTTL)
	draftSvc := draftservice.NewDraftService(draftRepo, draftTTL)
	draftHdl := drafthandler.NewDraftHandler(draftSvc)

	// Fabric catalog.
	fabricRepo := fabricadapter.NewCachedFabricRepository(
		fabricadapter.NewPostgresFabricRepository(db),
		redisCache,
	)
	fabricSvc := fabricservice.NewFabricService(fabricRepo)
	fabricHdl := fabrichandler.NewFabricHandler(fabricSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/custom-orders", orderHdl.Submit)
	srv.App.Get("/custom-orders/:number", orderHdl.Get)
	srv.App.Post("/custom-orders/quote", orderHdl.Quote)
	srv.App.Post("/custom-orders/validate/:step", orderHdl.ValidateStep)

	srv.App.Put("/drafts/:key", draftHdl.Save)
	srv.App.Get("/drafts/:key", draftHdl.Load)
	srv.App.Delete("/drafts/:key", draftHdl.Clear)

	srv.App.Get("/fabrics", fabricHdl.List)
	srv.App.Get("/fabrics/:id", fabricHdl.Get)
	srv.App.Post("/fabrics", fabricHdl.Create)

	srv.App.Post("/measurement-profiles", profileHandler.Save)
	srv.App.Get("/measurement-profiles/:phone", profileHandler.List)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
