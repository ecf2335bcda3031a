package main // Entry point package

import (
	"context"
	"errors"
	"fmt"
	"log" // Logging library
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"                  // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // request logging and panic recovery
	"github.com/spf13/pflag"                        // command line flags

	"github.com/iliyamo/event-ticketing/internal/config"
	"github.com/iliyamo/event-ticketing/internal/handler"
	"github.com/iliyamo/event-ticketing/internal/metrics"
	"github.com/iliyamo/event-ticketing/internal/middleware"
	"github.com/iliyamo/event-ticketing/internal/queue"
	"github.com/iliyamo/event-ticketing/internal/repository"
	"github.com/iliyamo/event-ticketing/internal/router"
	"github.com/iliyamo/event-ticketing/internal/service"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	var envFile, port, seed string
	flags := pflag.NewFlagSet("ticket-server", pflag.ContinueOnError)
	flags.StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	flags.StringVar(&port, "port", "", "HTTP port (overrides APP_PORT)")
	flags.StringVar(&seed, "seed", "", "YAML file of events to create at startup (overrides SEED_FILE)")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}
	cfg := config.Load()
	if port != "" {
		cfg.Port = port
	}
	if seed != "" {
		cfg.SeedFile = seed
	}

	svc := service.NewTicketService(
		repository.NewEventRepo(),
		repository.NewSeatMap(cfg.SeatsPerDate),
		repository.NewReservationRepo(),
	)
	metrics.SetSeatCapacity(cfg.SeatsPerDate)
	if cfg.SeedFile != "" {
		events, err := config.LoadSeed(cfg.SeedFile)
		if err != nil {
			return err
		}
		for _, req := range events {
			ev, err := svc.CreateEvent(req)
			if err != nil {
				return fmt.Errorf("seeding %q: %w", req.Name, err)
			}
			metrics.TrackEventCreated()
			log.Printf("seeded event %d (%s)", ev.ID, ev.Name)
		}
	}

	var mw router.Middlewares
	rdb, err := config.NewRedisClient(config.LoadRedisConfig())
	if err != nil {
		log.Printf("redis unavailable, running without cache and rate limit: %v", err)
	} else {
		defer rdb.Close()
		bootID := strconv.FormatInt(time.Now().UnixNano(), 36)
		mw.Cache = middleware.NewRedisCache(config.LoadCacheConfig().WithBootID(bootID), rdb)
		mw.RateLimit = middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	}

	var notifier handler.Notifier
	if cfg.PublishEvents {
		notifier = queue.NewPublisher(cfg.AMQPURL)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.AuditConsumer {
		go func() {
			if err := queue.StartAuditConsumer(ctx, cfg.AMQPURL, cfg.AuditLogPath); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("audit consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	router.RegisterRoutes(e)
	router.RegisterEvents(e, handler.NewEventHandler(svc), mw)
	tickets := handler.NewTicketHandler(svc, notifier)
	router.RegisterTickets(e, tickets, mw)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, seats per date=%d)", addr, cfg.Env, cfg.SeatsPerDate)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = e.Shutdown(shutdownCtx)
	tickets.Wait()
	return err
}
