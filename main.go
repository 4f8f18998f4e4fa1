package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/card-history-server/api"
	"github.com/carson-networks/card-history-server/internal/cardapi"
	"github.com/carson-networks/card-history-server/internal/config"
	"github.com/carson-networks/card-history-server/internal/history"
	"github.com/carson-networks/card-history-server/internal/logging"
	"github.com/carson-networks/card-history-server/internal/operator"
	"github.com/carson-networks/card-history-server/internal/operator/actions"
	"github.com/carson-networks/card-history-server/internal/service"
	"github.com/carson-networks/card-history-server/internal/storage"
	"github.com/carson-networks/card-history-server/internal/transaction"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("card-history-server starting")

	store, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.WithError(err).Error("storage.Close")
		}
	}()

	cardClient := cardapi.NewClient(envConfig.CardAPIURL, envConfig.CardAPIKey, envConfig.CardAPITimeout)
	if envConfig.CardAPIKey == "" {
		logger.Warn("CARD_API_KEY is empty, every card service call will fail")
	}

	delegator := operator.NewOperatorDelegator(&actions.Target{
		Cards:     cardClient,
		Selection: store.Selection,
	}, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	mapper := transaction.NewMapper(envConfig.DisplayLocation, logger)
	svc := service.NewService(service.Dependencies{
		Cards:         cardClient,
		Operator:      delegator,
		Selection:     store.Selection,
		Loader:        history.NewLoader(cardClient, mapper, logger),
		DefaultCardID: envConfig.DefaultCardID,
		PageSize:      envConfig.HistoryPageSize,
		SessionTTL:    envConfig.HistorySessionTTL,
		Log:           logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.Port,
			Service: svc,
		}
		httpRest.Serve(ctx)
	}()

	wg.Wait()
}
