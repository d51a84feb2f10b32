package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Varun5711/tasknest/internal/auth"
	"github.com/Varun5711/tasknest/internal/config"
	"github.com/Varun5711/tasknest/internal/database"
	"github.com/Varun5711/tasknest/internal/handlers"
	"github.com/Varun5711/tasknest/internal/logger"
	"github.com/Varun5711/tasknest/internal/middleware"
	"github.com/Varun5711/tasknest/internal/service"
	"github.com/Varun5711/tasknest/internal/storage"
)

func main() {
	log := logger.New("tasknest")
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: %v", err)
	}

	db, err := database.NewManager(ctx, database.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
	})
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to ensure schema: %v", err)
	}

	jwtSecret := cfg.Auth.JWTSecret
	if jwtSecret == "" {
		jwtSecret = "change-me-in-production"
		log.Warn("JWT_SECRET not set, using default (insecure for production)")
	}

	jwtManager := auth.NewJWTManager(jwtSecret, cfg.Auth.TokenTTL)

	userService := service.NewUserService(storage.NewUserStorage(db), jwtManager)
	todoService := service.NewTodoService(storage.NewTodoStorage(db))

	authMW := middleware.NewAuthMiddleware(userService)
	router := handlers.NewRouter(
		handlers.NewUserHandler(userService),
		handlers.NewTodoHandler(todoService),
		authMW,
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("Listening on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown: %v", err)
	}
	log.Info("Server stopped")
}
