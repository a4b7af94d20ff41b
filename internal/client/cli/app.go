package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/jobhub/internal/client/client"
	"github.com/dmitrijs2005/jobhub/internal/client/config"
	"github.com/dmitrijs2005/jobhub/internal/client/metrics"
	"github.com/dmitrijs2005/jobhub/internal/client/models"
	"github.com/dmitrijs2005/jobhub/internal/client/services"
	"github.com/dmitrijs2005/jobhub/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// sessionStore is the part of services.SessionStore the CLI drives.
type sessionStore interface {
	Login(ctx context.Context, username, password string) bool
	Register(ctx context.Context, data services.RegistrationData, password string) bool
	Logout(ctx context.Context)
	User() *models.Session
	LastUsername(ctx context.Context) string
}

type App struct {
	config   *config.Config
	session  sessionStore
	log      logging.Logger
	registry *prometheus.Registry
	reader   *bufio.Reader
	out      io.Writer
	closers  []func() error
}

// NewApp wires the logger, local storage, API client, metrics and session
// store, then restores any persisted session.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(os.Stderr, c.LogLevel)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.StoragePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	api, err := client.NewHTTPClient(c.APIURL, c.RequestTimeout, c.RateLimit, c.RateBurst)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	store := services.NewSessionStore(api, db, logger, services.WithMetrics(collector))
	store.Init(ctx)

	return &App{
		config:   c,
		session:  store,
		log:      logger,
		registry: registry,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		closers:  []func() error{api.Close, db.Close},
	}, nil
}

// Run serves the metrics endpoint when configured and blocks in the REPL
// until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	if a.config.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              a.config.MetricsAddr,
			Handler:           metrics.SetupMetricsRoute(a.registry),
			ReadHeaderTimeout: shutdownTimeout,
		}
		g.Go(func() error {
			a.log.Info(gctx, "serving metrics", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.log.Error(gctx, "metrics server failed", "err", err)
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
			defer stop()
			return srv.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		defer cancel()
		fmt.Fprintln(a.out, "Welcome to JobHub CLI (type 'help' for commands)")
		runREPL(gctx, a, a.getStatus, a.reader)
		return nil
	})

	return g.Wait()
}

// Close releases the API client and the database. It is safe to call twice.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) isLoggedIn() bool {
	return a.session.User() != nil
}

func (a *App) getStatus() string {
	if u := a.session.User(); u != nil {
		return fmt.Sprintf("(%s)", u.Name)
	}
	return ""
}
