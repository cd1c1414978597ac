package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/bank-ledger/api"
	"github.com/carson-networks/bank-ledger/internal/bank"
	"github.com/carson-networks/bank-ledger/internal/config"
	"github.com/carson-networks/bank-ledger/internal/logging"
	"github.com/carson-networks/bank-ledger/internal/metrics"
	"github.com/carson-networks/bank-ledger/internal/operator"
	"github.com/carson-networks/bank-ledger/internal/service"
)

func main() {
	logger := logging.SetupLogging()
	logger.Info("bank-ledger starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	if err := envConfig.Validate(); err != nil {
		logger.WithError(err).Fatal("config.Validate")
		return
	}
	if err := logging.SetLevel(logger, envConfig.LogLevel); err != nil {
		logger.WithError(err).Fatal("logging.SetLevel")
		return
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	ledger := bank.NewBank()
	delegator := operator.NewOperatorDelegator(ledger, metrics.New(registry), logger,
		envConfig.OperatorWorkers, envConfig.OperatorQueueSize)
	delegator.Start()

	httpRest := &api.Rest{
		Logger:         logger,
		Port:           envConfig.Port,
		Ledger:         ledger,
		Service:        service.NewService(ledger),
		Operator:       delegator,
		Registry:       registry,
		RequestTimeout: envConfig.RequestTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(httpRest.Serve)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("bank-ledger shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), envConfig.ShutdownTimeout)
		defer cancel()
		err := httpRest.Shutdown(shutdownCtx)
		delegator.Stop()
		return err
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("bank-ledger stopped with error")
		return
	}
	logger.Info("bank-ledger stopped")
}
