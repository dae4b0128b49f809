package main

import (
	"blackjack-server/internal/config"
	"blackjack-server/internal/rng"
	"blackjack-server/internal/server"
	"blackjack-server/pkg/room"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10
const shutdownTimeout = time.Second * 5

// Version is the server version
var Version = "v0.0.0-dev"

var cli struct {
	TCPAddr  string           `help:"Line protocol listen address (overrides config)" name:"tcp-addr"`
	HTTPAddr string           `help:"HTTP listen address, empty keeps the config value" name:"http-addr"`
	LogLevel string           `short:"l" help:"Log level (overrides config)"`
	Seed     int64            `help:"Seed for reproducible card draws (overrides config)"`
	Version  kong.VersionFlag `short:"v" help:"Print the version and exit"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("blackjack-server"),
		kong.Description("Multiplayer blackjack over a line protocol"),
		kong.Vars{"version": Version},
		kong.UsageOnError(),
	)

	cfg := config.Instance()
	if cli.TCPAddr != "" {
		cfg.TCPAddr = cli.TCPAddr
	}
	if cli.HTTPAddr != "" {
		cfg.HTTPAddr = cli.HTTPAddr
	}
	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
	}
	if cli.Seed != 0 {
		cfg.Seed = cli.Seed
	}

	setupLogger(cfg)

	r := room.NewRoom(room.Options{
		StartingBalance: cfg.StartingBalance,
		DealerStandsOn:  cfg.DealerStandsOn,
		DealerDelay:     cfg.DealerDelay(),
		SendBuffer:      cfg.SendBuffer,
		Generator:       rng.FromSeed(cfg.Seed),
		Clock:           quartz.NewReal(),
		Logger:          logrus.StandardLogger(),
	})
	r.StartShift()

	srv := server.New(r, logrus.StandardLogger())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.ListenAndServeTCP(ctx, cfg.TCPAddr)
	})

	if cfg.HTTPAddr != "" {
		c := cors.New(cors.Options{
			AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
			AllowedMethods: []string{http.MethodGet},
		})

		httpSrv := &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      loggingHandler(cfg, c.Handler(server.NewMux(srv, Version))),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		}

		g.Go(func() error {
			logrus.WithField("addr", httpSrv.Addr).Info("listening for http connections")
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}

			return nil
		})

		g.Go(func() error {
			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			return httpSrv.Shutdown(shutdownCtx)
		})
	}

	err := g.Wait()

	logrus.Info("shutting down")
	srv.Close()
	r.EndShift()

	kctx.FatalIfErrorf(err)
}

func loggingHandler(cfg config.Config, next http.Handler) http.Handler {
	if cfg.Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
