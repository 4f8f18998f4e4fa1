package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/card-history-server/internal/handlers/v1/card"
	"github.com/carson-networks/card-history-server/internal/handlers/v1/history"
	"github.com/carson-networks/card-history-server/internal/handlers/v1/status"
	"github.com/carson-networks/card-history-server/internal/logging"
	"github.com/carson-networks/card-history-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

// Router builds the chi router with /status and every huma operation.
func (r *Rest) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	statusHandler := status.NewHandler()
	router.Get("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humachi.New(router, huma.DefaultConfig("Card History API", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	card.Register(api, r.Service.Cards)
	history.Register(api, r.Service.History)

	return router
}

// Serve listens until ctx is cancelled, then drains in-flight requests
// before returning.
func (r *Rest) Serve(ctx context.Context) {
	server := &http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	r.serve(ctx, server, server.ListenAndServe)
	r.Logger.Info("HttpServer.Serve.shut down")
}

// serve runs listen and, once ctx is done, waits for Shutdown to finish
// draining. A listen failure other than the shutdown itself returns at once.
func (r *Rest) serve(ctx context.Context, server *http.Server, listen func() error) {
	drained := make(chan struct{})
	listenDone := make(chan struct{})

	go func() {
		defer close(drained)
		select {
		case <-ctx.Done():
		case <-listenDone:
			return
		}
		r.Logger.Info("HttpServer.Serve.shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	err := listen()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	close(listenDone)
	<-drained
}
