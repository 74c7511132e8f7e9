package main

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"time"

	"livestock-tracker/internal/adapters/storage/sqlstore"
	"livestock-tracker/internal/broker/kafka"
	"livestock-tracker/internal/cache/rediscache"
	"livestock-tracker/internal/config"
	"livestock-tracker/internal/domain/mapview"
	"livestock-tracker/internal/platform/logger"
	"livestock-tracker/internal/router"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// application es todo lo que arranca cmd/api; closers se ejecutan en orden inverso.
type application struct {
	handler http.Handler
	consume func(ctx context.Context) error // nil si no hay Kafka
	closers []func() error
}

func (a *application) close(log logger.Logger) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.Warn("close failed", map[string]any{"err": err})
		}
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	app, err := bootstrap(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.close(log)

	lis, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		return pkgerrors.Wrap(err, "listen")
	}
	log.Info("starting server", map[string]any{"addr": lis.Addr().String(), "kafka": app.consume != nil})

	srv := &http.Server{
		Handler:      app.handler,
		ReadTimeout:  cfg.Server.ReadTimeout(),
		WriteTimeout: cfg.Server.WriteTimeout(),
	}
	return serve(ctx, lis, srv, app.consume)
}

// bootstrap abre los adapters opcionales (DB, Redis, Kafka) según config y arma el router.
func bootstrap(ctx context.Context, cfg *config.Config, log logger.Logger) (*application, error) {
	app := &application{}
	fail := func(err error) (*application, error) {
		app.close(log)
		return nil, err
	}

	opts := router.Options{
		Logger:     log,
		SummaryTTL: cfg.Redis.SummaryTTL(),
		MapHome: mapview.View{
			CenterLatitude:  cfg.Map.CenterLatitude,
			CenterLongitude: cfg.Map.CenterLongitude,
			Zoom:            cfg.Map.Zoom,
		},
		Seed: cfg.Seed.IsEnabled(),
	}

	if cfg.Database.Driver != "" {
		db, err := openDB(ctx, cfg.Database)
		if err != nil {
			return fail(err)
		}
		app.closers = append(app.closers, db.Close)
		opts.DB = db
		log.Info("using sql storage", map[string]any{"driver": cfg.Database.Driver})
	} else {
		log.Info("using in-memory storage", nil)
	}

	if cfg.Redis.Addr != "" {
		rc := rediscache.New(cfg.Redis.Addr, cfg.Log.App)
		app.closers = append(app.closers, rc.Close)
		// Redis caído no impide arrancar: el dashboard calcula sin cache.
		if err := rc.Ping(ctx); err != nil {
			log.Warn("redis unavailable, dashboard summary will not be cached", map[string]any{"addr": cfg.Redis.Addr, "err": err})
		}
		opts.Cache = rc
	}

	var consumer *kafka.Consumer
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		app.closers = append(app.closers, producer.Close)
		opts.Sinks = append(opts.Sinks, kafka.NewIntentPublisher(producer, cfg.Kafka.IntentsTopic))

		c, err := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.AlertsTopic, cfg.Kafka.ConsumerGroup)
		if err != nil {
			return fail(err)
		}
		consumer = c
		app.closers = append(app.closers, consumer.Close)
	}

	built, err := router.New(ctx, opts)
	if err != nil {
		return fail(err)
	}
	app.handler = built.Handler

	if consumer != nil {
		ingest := built.Ingestor
		app.consume = func(ctx context.Context) error {
			return consumer.Consume(ctx, ingest.Handle)
		}
	}
	return app, nil
}

func openDB(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sqlstore.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}
	if err := sqlstore.Migrate(ctx, db, cfg.Driver); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// serve corre el HTTP server y, si hay, el consumer de alertas. Cualquiera que falle
// cancela al otro; la cancelación de ctx apaga ambos sin error.
func serve(ctx context.Context, lis net.Listener, srv *http.Server, consume func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return serveHTTP(gctx, lis, srv)
	})
	if consume != nil {
		g.Go(func() error {
			return consume(gctx)
		})
	}
	return g.Wait()
}

func serveHTTP(ctx context.Context, lis net.Listener, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(lis) }()

	select {
	case <-ctx.Done():
		shCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shCtx); err != nil {
			return pkgerrors.Wrap(err, "shutdown")
		}
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return pkgerrors.Wrap(err, "serve")
	}
}
