package ocypus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/fatkhur1960/ocypus-digital/internal/adapters/display"
	"github.com/fatkhur1960/ocypus-digital/internal/adapters/history"
	"github.com/fatkhur1960/ocypus-digital/internal/adapters/observability"
	"github.com/fatkhur1960/ocypus-digital/internal/adapters/sensors"
	"github.com/fatkhur1960/ocypus-digital/internal/app/config"
	"github.com/fatkhur1960/ocypus-digital/internal/app/monitor"
	"github.com/fatkhur1960/ocypus-digital/internal/ports"
)

// Option customizes the dependencies used by Runtime.
type Option func(*overrides)

type overrides struct {
	sensor  ports.Sensor
	display ports.Display
	history ports.HistoryStore
	obs     ports.Observability
	logger  *logrus.Logger
}

// WithSensor injects a custom sensor backend (simulators, remote probes, etc.).
func WithSensor(s ports.Sensor) Option {
	return func(o *overrides) { o.sensor = s }
}

// WithDisplay injects a custom display so reports can be routed anywhere.
func WithDisplay(d ports.Display) Option {
	return func(o *overrides) { o.display = d }
}

// WithHistory injects a custom reading store.
func WithHistory(h ports.HistoryStore) Option {
	return func(o *overrides) { o.history = h }
}

// WithObservability plugs in a custom metrics/logging backend.
func WithObservability(obs ports.Observability) Option {
	return func(o *overrides) { o.obs = obs }
}

// WithLogger sets the logrus logger used by the default observability.
func WithLogger(l *logrus.Logger) Option {
	return func(o *overrides) { o.logger = l }
}

// Runtime wires sensor → monitor → display and exposes lifecycle hooks for
// embedding the daemon inside any Go service.
type Runtime struct {
	cfg        *config.Config
	mon        *monitor.Monitor
	display    ports.Display
	obs        ports.Observability
	db         *sql.DB
	metricsSrv *http.Server
}

// NewRuntime bootstraps the default adapters (bound sensor backend, HID
// session, Prometheus observability, optional Postgres history). Option
// values override any dependency.
func NewRuntime(cfg *config.Config, opts ...Option) (*Runtime, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o overrides
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	obs := o.obs
	if obs == nil {
		obs = observability.NewPromObs(o.logger)
	}

	sensor := o.sensor
	if sensor == nil {
		var err error
		sensor, err = sensors.ForKind(cfg.SensorKind(), cfg.ReadTimeout)
		if err != nil {
			return nil, err
		}
	}

	disp := o.display
	if disp == nil {
		disp = display.NewSession(obs)
	}

	var (
		db    *sql.DB
		store = o.history
	)
	if store == nil && cfg.History.ConnString != "" {
		var err error
		db, err = sql.Open("postgres", cfg.History.ConnString)
		if err != nil {
			return nil, err
		}
		store = history.NewPostgresStore(db, cfg.History.Table)
	}

	mon := monitor.New(monitor.Params{
		Unit:          cfg.DisplayUnit(),
		Interval:      cfg.Interval(),
		HighThreshold: cfg.HighThreshold,
		LowThreshold:  cfg.LowThreshold,
		AlertsEnabled: cfg.AlertsEnabled,
		Sensor:        sensor,
		Display:       disp,
		History:       store,
		Obs:           obs,
	})

	return &Runtime{cfg: cfg, mon: mon, display: disp, obs: obs, db: db}, nil
}

// Conf loads YAML from disk and builds a runtime in one call.
func Conf(path string, opts ...Option) (*Runtime, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return NewRuntime(cfg, opts...)
}

// Run starts the metrics endpoint and blocks in the monitor loop until ctx is
// cancelled, then shuts down gracefully.
func (r *Runtime) Run(ctx context.Context) error {
	r.startMetrics()

	err := r.mon.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return errors.Join(err, r.Shutdown(shutdownCtx))
}

// Shutdown closes the display handle, the history DB, and the metrics server.
func (r *Runtime) Shutdown(ctx context.Context) error {
	var errs []error

	if r.metricsSrv != nil {
		if err := r.metricsSrv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs = append(errs, err)
		}
	}

	if r.display != nil {
		if err := r.display.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if r.db != nil {
		if err := r.db.Close(); err != nil {
			errs = append(errs, err)
		}
		r.db = nil
	}

	return errors.Join(errs...)
}

func (r *Runtime) startMetrics() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.metricsSrv = &http.Server{
		Addr:    r.cfg.Metrics.Addr,
		Handler: mux,
	}

	srv := r.metricsSrv
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.obs.LogError("metrics_server_exited", err)
		}
	}()
}
