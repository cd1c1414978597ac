package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-ledger/internal/bank"
	"github.com/carson-networks/bank-ledger/internal/handlers/v1/account"
	"github.com/carson-networks/bank-ledger/internal/handlers/v1/admin"
	"github.com/carson-networks/bank-ledger/internal/handlers/v1/status"
	"github.com/carson-networks/bank-ledger/internal/handlers/v1/transaction"
	"github.com/carson-networks/bank-ledger/internal/logging"
	"github.com/carson-networks/bank-ledger/internal/operator"
	"github.com/carson-networks/bank-ledger/internal/service"
)

type Rest struct {
	Logger         *logrus.Logger
	Port           string
	Ledger         *bank.Bank
	Service        *service.Service
	Operator       *operator.OperatorDelegator
	Registry       *prometheus.Registry
	RequestTimeout time.Duration

	serverOnce sync.Once
	server     *http.Server
}

// Router builds the chi router with the huma API, /status and /metrics.
func (r *Rest) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	statusHandler := status.NewHandler(r.Ledger)
	router.Get("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	router.Handle("/metrics", promhttp.HandlerFor(r.Registry, promhttp.HandlerOpts{}))

	config := huma.DefaultConfig("Bank Ledger API", "1.0.0")
	config.Info.Description = "Writes that end in 504 or 499 are indeterminate: the ledger may have applied them. " +
		"Read the account or its statement before retrying."
	api := humachi.New(router, config)
	api.UseMiddleware(logging.Middleware(r.Logger))
	if r.RequestTimeout > 0 {
		api.UseMiddleware(requestTimeout(r.RequestTimeout))
	}

	accounts := r.Service.Account

	account.NewCreateAccountHandler(r.Operator).Register(api)
	account.NewGetAccountHandler(accounts).Register(api)
	account.NewListAccountsHandler(accounts).Register(api)
	account.NewUpdateAddressHandler(r.Operator).Register(api)
	account.NewDeletionRequestHandler(r.Operator).Register(api)

	transaction.NewDepositHandler(r.Operator).Register(api)
	transaction.NewWithdrawHandler(r.Operator).Register(api)
	transaction.NewTransferHandler(r.Operator).Register(api)
	transaction.NewApplyYieldHandler(r.Operator).Register(api)
	transaction.NewStatementHandler(accounts).Register(api)

	admin.NewPendingDeletionsHandler(accounts).Register(api)
	admin.NewReviewDeletionHandler(r.Operator).Register(api)

	return router
}

// requestTimeout bounds every API operation, including time spent waiting
// for an operator worker.
func requestTimeout(d time.Duration) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		timeoutCtx, cancel := context.WithTimeout(ctx.Context(), d)
		defer cancel()
		next(huma.WithContext(ctx, timeoutCtx))
	}
}

func (r *Rest) httpServer() *http.Server {
	r.serverOnce.Do(func() {
		r.server = &http.Server{
			Addr:              ":" + r.Port,
			Handler:           r.Router(),
			ReadTimeout:       time.Duration(30) * time.Second,
			WriteTimeout:      time.Duration(30) * time.Second,
			IdleTimeout:       time.Duration(10) * time.Second,
			ReadHeaderTimeout: time.Duration(10) * time.Second,
		}
	})
	return r.server
}

// Serve blocks until the server stops. A clean Shutdown returns nil.
func (r *Rest) Serve() error {
	server := r.httpServer()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
	return nil
}

func (r *Rest) Shutdown(ctx context.Context) error {
	return r.httpServer().Shutdown(ctx)
}
