package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/aktesher/flight-booking-server/internal/api"
	"github.com/aktesher/flight-booking-server/internal/booking"
	"github.com/aktesher/flight-booking-server/internal/cache"
	"github.com/aktesher/flight-booking-server/internal/config"
	"github.com/aktesher/flight-booking-server/internal/database"
	"github.com/aktesher/flight-booking-server/internal/handler"
	"github.com/aktesher/flight-booking-server/internal/queue"
	"github.com/aktesher/flight-booking-server/internal/repository"
	"github.com/aktesher/flight-booking-server/internal/server"
)

func main() {
	_ = godotenv.Load() // optional .env for local development

	log := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "flight-booking-server").
		Logger()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.RunMigrations(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	// Flight listings are cached in Redis when available so multiple
	// server processes share one entry; otherwise in process memory.
	var flightCache cache.Cacher
	if rdb := config.NewRedisClient(); rdb != nil {
		flightCache = cache.NewRedis(rdb)
		log.Info().Msg("using redis flight cache")
	} else {
		flightCache = cache.NewMemory(10 * time.Minute)
		log.Info().Msg("using in-memory flight cache")
	}

	inv := repository.NewMySQLInventory(db)
	users := repository.NewMySQLUsers(db, cfg.BcryptCost)
	coord := booking.NewCoordinator(inv)

	var events handler.EventPublisher
	if cfg.AMQPURL != "" {
		events = queue.NewPublisher(cfg.AMQPURL, log)
	}

	disp := handler.NewDispatcher(log,
		handler.NewAuthHandler(users, log),
		handler.NewFlightHandler(inv, flightCache, cfg.FlightCacheTTL, log),
		handler.NewBookingHandler(coord, events, log),
		handler.NewUserHandler(users, log),
	)

	srv := server.New(":"+cfg.Port, disp, log)
	if err := srv.Start(); err != nil {
		log.Fatal().Err(err).Msg("server start failed")
	}

	g, gctx := errgroup.WithContext(ctx)

	if cfg.HTTPPort != "" {
		health := api.NewHealthServer(db)
		g.Go(func() error {
			log.Info().Str("addr", ":"+cfg.HTTPPort).Msg("health server listening")
			return health.Start(":" + cfg.HTTPPort)
		})
		g.Go(func() error {
			<-gctx.Done()
			shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return health.Shutdown(shutCtx)
		})
	}

	if cfg.AMQPURL != "" {
		g.Go(func() error {
			return queue.StartSeatBookedConsumer(gctx, cfg.AMQPURL, log)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		srv.Stop()
		return nil
	})

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("shutdown complete")
}
