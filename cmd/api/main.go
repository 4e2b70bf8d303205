package main

import (
	"GymAttendanceTracker/internal/auth"
	"GymAttendanceTracker/internal/config"
	"GymAttendanceTracker/internal/events"
	"GymAttendanceTracker/internal/handler"
	"GymAttendanceTracker/internal/server"
	"GymAttendanceTracker/internal/storage"
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// @title        Gym Attendance Tracker API
// @version      1.0
// @description  수업 날짜, 출석 인원, 메모를 기록하는 API
// @host         localhost:8080
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in           header
// @name         Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main(): invalid configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	store, err := storage.New(cfg.StoreDriver)
	if err != nil {
		log.Fatalf("main(): failed to open %s storage: %v", cfg.StoreDriver, err)
	}
	defer store.Close()

	identity, err := newIdentityProvider(cfg)
	if err != nil {
		log.Fatalf("main(): %v", err)
	}

	router := server.NewRouter(server.Options{
		Handler:        handler.New(store, events.NewHub()),
		Identity:       identity,
		CORSOrigins:    cfg.CORSOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("main(): listening on %s (auth=%s, store=%s)", srv.Addr, cfg.AuthMode, cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main(): server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("main(): shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("main(): graceful shutdown failed: %v", err)
	}
}

func newIdentityProvider(cfg config.Config) (auth.IdentityProvider, error) {
	if cfg.AuthMode == config.AuthModeToken {
		return auth.NewTokenIdentity([]byte(cfg.JWTSecret))
	}
	log.Printf("main(): AUTH_MODE=demo, every request runs as %s", cfg.DemoUserID)
	return auth.NewStaticIdentity(cfg.DemoUserID, cfg.DemoUserEmail), nil
}
