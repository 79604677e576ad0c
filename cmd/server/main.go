package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/truerooha/coworking-backend/internal/clock"
	"github.com/truerooha/coworking-backend/internal/config"
	"github.com/truerooha/coworking-backend/internal/database"
	"github.com/truerooha/coworking-backend/internal/handler"
	"github.com/truerooha/coworking-backend/internal/middleware"
	"github.com/truerooha/coworking-backend/internal/queue"
	"github.com/truerooha/coworking-backend/internal/repository"
	"github.com/truerooha/coworking-backend/internal/router"
)

func main() {
	// Local development reads .env; deployed environments already have
	// their variables set and godotenv will not override them.
	_ = godotenv.Load()

	cfg := config.Load()

	clk, err := clock.NewWall(cfg.Timezone)
	if err != nil {
		log.Fatalf("invalid APP_TIMEZONE %q: %v", cfg.Timezone, err)
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.Init(ctx, db); err != nil {
		log.Fatalf("init schema: %v", err)
	}

	roomRepo := repository.NewRoomRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	userRepo := repository.NewUserRepo(db)
	if err := repository.EnsureSeedData(ctx, roomRepo, userRepo); err != nil {
		log.Fatalf("seed data: %v", err)
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Print("redis unavailable; response cache and rate limiting disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
	}))
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterRooms(e, handler.NewRoomHandler(roomRepo, bookingRepo, clk), cacheMW)
	router.RegisterAuth(e, handler.NewAccessHandler(userRepo, cfg.AccessCheckStrict))
	router.RegisterBookings(e, handler.NewBookingHandler(bookingRepo, clk, queue.Publisher{}))

	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	go func() {
		addr := ":" + cfg.Port
		log.Printf("listening on %s (env=%s, tz=%s)", addr, cfg.Env, cfg.Timezone)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Print("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
