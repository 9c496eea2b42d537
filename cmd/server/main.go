package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelops-be/internal/assignment"
	"hotelops-be/internal/booking"
	"hotelops-be/internal/cart"
	"hotelops-be/internal/config"
	"hotelops-be/internal/db"
	"hotelops-be/internal/food"
	"hotelops-be/internal/inventory"
	"hotelops-be/internal/logger"
	"hotelops-be/internal/mailer"
	"hotelops-be/internal/middleware"
	"hotelops-be/internal/order"
	"hotelops-be/internal/shift"
	"hotelops-be/internal/transport"
	"hotelops-be/internal/user"
	"hotelops-be/internal/workinghours"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	foodRepo := food.NewRepository(database)
	foodSvc := food.NewService(foodRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, foodRepo)

	assignmentRepo := assignment.NewRepository(database)
	assignmentSvc := assignment.NewService(assignmentRepo, orderRepo)

	inventoryRepo := inventory.NewRepository(database)
	inventorySvc := inventory.NewService(inventoryRepo)

	shiftRepo := shift.NewRepository(database)
	shiftSvc := shift.NewService(shiftRepo)

	hoursRepo := workinghours.NewRepository(database)
	hoursSvc := workinghours.NewService(hoursRepo)

	bookingRepo := booking.NewRepository(database)
	bookingSvc := booking.NewService(bookingRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, foodRepo)

	notifier := inventory.NewNotifier(
		inventoryRepo,
		mailer.NewSMTPMailer(cfg),
		cfg.AlertRecipient,
		cfg.ExpiryScanInterval,
	)

	r := chi.NewRouter()
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Client-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	r.Use(middleware.RateLimitMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		transport.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		user.NewHandler(userSvc).RegisterRoutes(r)
		food.NewHandler(foodSvc).RegisterRoutes(r)
		order.NewHandler(orderSvc).RegisterRoutes(r)
		assignment.NewHandler(assignmentSvc).RegisterRoutes(r)
		inventory.NewHandler(inventorySvc).RegisterRoutes(r)
		shift.NewHandler(shiftSvc).RegisterRoutes(r)
		workinghours.NewHandler(hoursSvc).RegisterRoutes(r)
		booking.NewHandler(bookingSvc).RegisterRoutes(r)
		cart.NewHandler(cartSvc).RegisterRoutes(r)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go notifier.Start(ctx)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.L().Info("server listening", zap.String("port", cfg.AppPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.L().Info("shutting down")
	notifier.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.L().Error("shutdown error", zap.Error(err))
	}
}
