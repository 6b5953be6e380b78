package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"bridal-film/backend/internal/authz"
	"bridal-film/backend/internal/config"
	"bridal-film/backend/internal/domain/booking"
	"bridal-film/backend/internal/domain/catalog"
	"bridal-film/backend/internal/domain/item"
	"bridal-film/backend/internal/domain/like"
	"bridal-film/backend/internal/domain/payment"
	"bridal-film/backend/internal/domain/stats"
	"bridal-film/backend/internal/domain/user"
	apihttp "bridal-film/backend/internal/http"
	"bridal-film/backend/internal/mongodb"
	"bridal-film/backend/internal/token"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	ctx := context.Background()
	store, err := mongodb.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal("mongodb init failed", zap.Error(err))
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logger.Warn("mongodb close failed", zap.Error(err))
		}
	}()

	// Repositories
	userRepo := user.NewRepo(store.Users)
	itemRepo := item.NewRepo(store.Items)
	likeRepo := like.NewRepo(store.Likes)
	catalogRepo := catalog.NewRepo(store.Sessions)
	bookingRepo := booking.NewRepo(store.Bookings)
	paymentRepo := payment.NewRepo(store.Payments)

	// Services
	roles := authz.NewResolver(userRepo)
	itemSvc := item.NewService(itemRepo, roles)
	statsSvc := stats.NewService(likeRepo, paymentRepo, bookingRepo)
	tokens := token.NewManager(cfg.JWTSecret)

	stripeSvc := payment.NewStripeService(cfg.StripeSecretKey)
	if stripeSvc.Configured() {
		logger.Info("stripe service initialized")
	} else {
		logger.Info("STRIPE_SECRET_KEY not set, payment intents disabled")
	}

	router := apihttp.NewRouter(apihttp.RouterDeps{
		Cfg:         cfg,
		Logger:      logger,
		Tokens:      tokens,
		Roles:       roles,
		ItemSvc:     itemSvc,
		UserRepo:    userRepo,
		LikeRepo:    likeRepo,
		CatalogRepo: catalogRepo,
		BookingRepo: bookingRepo,
		PaymentRepo: paymentRepo,
		StripeSvc:   stripeSvc,
		StatsSvc:    statsSvc,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	go func() {
		logger.Info("API listening", zap.String("port", cfg.Port), zap.String("database", cfg.MongoDatabase))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 2)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down...")
	_ = srv.Shutdown(ctxShutdown)
}
