// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	api "go.opentelemetry.io/otel/metric"
)

type GatewayMetrics struct {
	meter api.Meter
	Opts  api.MeasurementOption

	DepositsCount      api.Int64Counter
	CancellationsCount api.Int64Counter
	WithdrawalsCount   api.Int64Counter
}

// NewGatewayMetrics initializes metrics for one gateway instance
func NewGatewayMetrics(meter api.Meter, env, gatewayID string) (*GatewayMetrics, error) {
	opts := api.WithAttributes(attribute.String("env", env), attribute.String("gateway", gatewayID))

	depositsCount, err := meter.Int64Counter(
		"gateway.DepositsCount",
		api.WithDescription("Number of accepted deposits per asset kind"),
	)
	if err != nil {
		return nil, err
	}
	cancellationsCount, err := meter.Int64Counter(
		"gateway.CancellationsCount",
		api.WithDescription("Number of cancelled deposits"),
	)
	if err != nil {
		return nil, err
	}
	withdrawalsCount, err := meter.Int64Counter(
		"gateway.WithdrawalsCount",
		api.WithDescription("Number of released withdrawals per asset kind"),
	)
	if err != nil {
		return nil, err
	}

	return &GatewayMetrics{
		meter:              meter,
		Opts:               opts,
		DepositsCount:      depositsCount,
		CancellationsCount: cancellationsCount,
		WithdrawalsCount:   withdrawalsCount,
	}, nil
}

func (m *GatewayMetrics) TrackDeposit(ctx context.Context, kind string) {
	m.DepositsCount.Add(ctx, 1, m.Opts, api.WithAttributes(attribute.String("kind", kind)))
}

func (m *GatewayMetrics) TrackCancellation(ctx context.Context) {
	m.CancellationsCount.Add(ctx, 1, m.Opts)
}

func (m *GatewayMetrics) TrackWithdrawal(ctx context.Context, kind string) {
	m.WithdrawalsCount.Add(ctx, 1, m.Opts, api.WithAttributes(attribute.String("kind", kind)))
}
