package router

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	mem "livestock-tracker/internal/adapters/storage/memory"
	"livestock-tracker/internal/adapters/storage/sqlstore"
	_ "livestock-tracker/internal/docs"
	"livestock-tracker/internal/domain/activity"
	"livestock-tracker/internal/domain/alerts"
	"livestock-tracker/internal/domain/dashboard"
	"livestock-tracker/internal/domain/livestock"
	"livestock-tracker/internal/domain/mapview"
	"livestock-tracker/internal/domain/profile"
	"livestock-tracker/internal/middleware"
	"livestock-tracker/internal/platform/logger"
	"livestock-tracker/internal/platform/metrics"
	"livestock-tracker/internal/seed"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger  logger.Logger    // nil => Nop
	Metrics *metrics.Metrics // nil => registry nuevo

	// Opcional: si viene, repos SQL (Postgres o SQLite ya migrado). Si no, in-memory.
	DB *sql.DB

	// Opcional: cache del resumen del dashboard (Redis).
	Cache      dashboard.BytesCache
	SummaryTTL time.Duration

	// Opcional: suscriptores extra del Fanout (p.ej. publisher Kafka de intenciones).
	Sinks []activity.Sink

	// Encuadre inicial del mapa; zero => DefaultView.
	MapHome mapview.View

	// Seed carga los datos de demo si el store está vacío.
	Seed bool
}

// App expone el handler y lo que cmd/api necesita cablear por fuera (consumer de alertas).
type App struct {
	Handler  http.Handler
	Alerts   *alerts.Service
	Ingestor *alerts.Ingestor
}

type repos struct {
	livestock livestock.Repository
	alerts    alerts.Repository
	profile   profile.Repository
	activity  activity.Repository
}

func New(ctx context.Context, opts Options) (*App, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	home := opts.MapHome
	if home == (mapview.View{}) {
		home = mapview.DefaultView()
	}

	rp, err := buildRepos(ctx, opts.DB, opts.Seed)
	if err != nil {
		return nil, err
	}

	// Un único Fanout: toda intención aceptada llega al log de actividad, métricas,
	// invalidación del dashboard y (si hay) Kafka.
	activitySvc := activity.NewService(rp.activity)
	fanout := activity.NewFanout(log.With(map[string]any{"component": "fanout"}), activitySvc, m)
	for _, s := range opts.Sinks {
		fanout.Subscribe(s)
	}

	// Services por módulo
	livestockSvc := livestock.NewService(rp.livestock, fanout)
	alertsSvc := alerts.NewService(rp.alerts, livestockSvc, fanout)
	profileSvc := profile.NewService(rp.profile, fanout)

	dashSvc := dashboard.NewService(livestockSvc, alertsSvc, dashboard.Options{
		Cache: opts.Cache,
		TTL:   opts.SummaryTTL,
		Log:   log.With(map[string]any{"component": "dashboard"}),
	})
	dashSvc.SetSink(fanout)
	fanout.Subscribe(dashSvc)

	mapSvc := mapview.NewService(livestockSvc, dashSvc, home)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestIDHeader)
	r.Use(middleware.RequestLogger(log, m))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	dashboard.RegisterRoutes(r, dashSvc, mapSvc)
	livestock.RegisterRoutes(r, livestockSvc)
	alerts.RegisterRoutes(r, alertsSvc)
	profile.RegisterRoutes(r, profileSvc)
	mapview.RegisterRoutes(r, mapSvc)
	activity.RegisterRoutes(r, activitySvc)

	return &App{
		Handler:  r,
		Alerts:   alertsSvc,
		Ingestor: alerts.NewIngestor(alertsSvc, log.With(map[string]any{"component": "alerts-ingest"})),
	}, nil
}

// NewRouter es el atajo para tests y dev: in-memory con datos de demo.
func NewRouter() http.Handler {
	app, err := New(context.Background(), Options{Seed: true})
	if err != nil {
		// in-memory no falla; si falla es un bug del seed
		panic(err)
	}
	return app.Handler
}

func buildRepos(ctx context.Context, db *sql.DB, withSeed bool) (repos, error) {
	var rp repos
	if db != nil {
		rp = repos{
			livestock: sqlstore.NewLivestockRepo(db),
			alerts:    sqlstore.NewAlertsRepo(db),
			profile:   sqlstore.NewProfileRepo(db),
			activity:  sqlstore.NewActivityRepo(db),
		}
	} else {
		rp = repos{
			livestock: mem.NewLivestockRepo(),
			alerts:    mem.NewAlertRepo(),
			profile:   mem.NewProfileRepo(),
			activity:  mem.NewActivityRepo(),
		}
	}

	if !withSeed {
		return rp, nil
	}
	if db != nil {
		empty, err := sqlstore.IsEmpty(ctx, db)
		if err != nil {
			return repos{}, err
		}
		if !empty {
			return rp, nil
		}
	}

	err := seed.Load(ctx, seed.Repos{Livestock: rp.livestock, Alerts: rp.alerts, Profile: rp.profile}, time.Now())
	if err != nil {
		return repos{}, errors.Wrap(err, "seed")
	}
	return rp, nil
}
