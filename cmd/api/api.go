package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/koolabhinay07/Lollyzz/docs"
	"github.com/koolabhinay07/Lollyzz/internal/qr"
	"github.com/koolabhinay07/Lollyzz/internal/queue"
	"github.com/koolabhinay07/Lollyzz/internal/ratelimiter"
	"github.com/koolabhinay07/Lollyzz/internal/service"
	"github.com/koolabhinay07/Lollyzz/internal/session"
	"github.com/koolabhinay07/Lollyzz/internal/store"
	"github.com/koolabhinay07/Lollyzz/internal/worker"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config              config
	logger              *zap.SugaredLogger
	rateLimiter         ratelimiter.Limiter
	storage             store.Storage
	broker              queue.Broker
	sessions            *session.Manager
	menuService         *service.MenuService
	availabilityService *service.AvailabilityService
	qrExporter          *qr.Exporter
	auditWorker         *worker.AvailabilityAuditWorker
}

type config struct {
	addr          string
	env           string
	apiURL        string
	menuURL       string
	dataDir       string
	storageDriver string
	rateLimiter   ratelimiter.Config
	mongo         mongoConfig
	rabbitMQ      rabbitMQConfig
	googleCreds   string
	spreadsheetID string
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Get("/menu", app.getMenuHandler)
		r.Get("/menu/categories", app.getCategoriesHandler)

		r.Post("/owner/login", app.ownerLoginHandler)
		r.Post("/owner/logout", app.ownerLogoutHandler)
		r.Get("/owner/session", app.ownerSessionHandler)

		r.Group(func(r chi.Router) {
			r.Use(app.ownerOnly)

			r.Patch("/items/{item_id}/availability", app.updateItemAvailabilityHandler)
			r.Get("/items/{item_id}/audit", app.getItemAuditHandler)
			r.Post("/availability/reset", app.resetAvailabilityHandler)
		})

		r.Get("/qr.png", app.exportQRPNGHandler)
		r.Get("/qr.svg", app.exportQRSVGHandler)

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	return r
}

// ownerOnly gates the availability-editing surface. The availability store
// itself has no concept of identity; this boundary is the only enforcement
// point.
func (app *application) ownerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !app.sessions.Active() {
			app.unauthorizedErrorResponse(w, r, errors.New("owner session required"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "Lollyzz Digital Menu"
	docs.SwaggerInfo.Description = "API for the Lollyzz digital menu"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	// workers
	if app.auditWorker != nil {
		if err := app.auditWorker.Start(); err != nil {
			return fmt.Errorf("failed to start audit worker: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.auditWorker != nil {
			app.auditWorker.Stop()
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing storage", "error", err)
			} else {
				app.logger.Info("storage closed gracefully")
			}
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing RabbitMQ", "error", err)
			} else {
				app.logger.Info("RabbitMQ connection closed gracefully")
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server have started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
