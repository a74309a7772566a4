// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"

	"github.com/ChainSafe/custody-gateway/config"
	"github.com/ChainSafe/custody-gateway/e2e/dummy"
	"github.com/ChainSafe/custody-gateway/flags"
	"github.com/ChainSafe/custody-gateway/gateway"
	"github.com/ChainSafe/custody-gateway/gateway/events"
	"github.com/ChainSafe/custody-gateway/health"
	"github.com/ChainSafe/custody-gateway/logger"
	"github.com/ChainSafe/custody-gateway/lvldb"
	"github.com/ChainSafe/custody-gateway/metrics"
)

// Run starts a standalone gateway instance wired against in-memory
// asset services. Deposits and withdrawals are driven programmatically
// through the gateway API, boundary events are streamed to the log for
// the off-system counterpart.
func Run() error {
	var err error

	configFlag := viper.GetString(flags.ConfigFlagName)

	configuration := &config.Config{}
	if strings.ToLower(configFlag) == "env" {
		configuration, err = config.GetConfigFromENV(configuration)
		panicOnError(err)
	} else {
		configuration, err = config.GetConfigFromFile(configFlag, configuration)
		panicOnError(err)
	}

	logger.ConfigureLogger(configuration.GatewayConfig.LogLevel, os.Stdout)
	log.Info().Msg("Successfully loaded configuration")

	db, err := lvldb.NewLvlDB(viper.GetString(flags.BlockstoreFlagName))
	panicOnError(err)
	defer db.Close()

	gatewayMetrics, err := metrics.NewGatewayMetrics(
		otel.Meter("custody-gateway"),
		configuration.GatewayConfig.Env,
		configuration.GatewayConfig.ID,
	)
	panicOnError(err)

	observer := events.NewChannelSink(1024)
	sink := events.NewMultiSink(events.NewLogSink(), observer)

	g := gateway.NewGateway(
		configuration.GatewayConfig.Custody,
		dummy.NewNativeLedger(),
		dummy.NewTokenRegistry(),
		db,
		sink,
		gatewayMetrics,
	)
	err = g.Initialize(configuration.GatewayConfig.Owner, configuration.GatewayConfig.Oracle)
	panicOnError(err)

	log.Info().
		Str("owner", g.Owner().String()).
		Str("oracle", g.Oracle().String()).
		Str("custody", g.Custody().String()).
		Msg("Gateway initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watchEvents(ctx, observer)
	go health.StartHealthEndpoint(configuration.GatewayConfig.HealthPort)

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sysErr
	log.Info().Msgf("terminating got [%v] signal", sig)
	return nil
}

func watchEvents(ctx context.Context, observer *events.ChannelSink) {
	for {
		select {
		case e := <-observer.Events():
			log.Debug().Str("topic", e.Sig().GetTopic().Hex()).Msg("Boundary event dispatched to observer")
		case <-ctx.Done():
			return
		}
	}
}

func panicOnError(err error) {
	if err != nil {
		panic(fmt.Sprintf("error: %v", err))
	}
}
