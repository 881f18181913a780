package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"stablestash/internal/exchange"
	"stablestash/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type poolAdapterFixture struct {
	adapter PoolAdapterInterface
	pool    *exchange.SimulatedPool
	breaker *service_mocks.MockCircuitBreakerInterface
}

func newPoolAdapterFixture(t *testing.T, ctrl *gomock.Controller, slippageBps int64) *poolAdapterFixture {
	t.Helper()

	pool := exchange.NewSimulatedPool(decimal.NewFromInt(1_000_000), decimal.NewFromInt(1_000_000), 30)
	breaker := service_mocks.NewMockCircuitBreakerInterface(ctrl)
	metrics := service_mocks.NewMockMetricsRecorderInterface(ctrl)

	metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	adapter := NewPoolAdapter(pool, breaker, metrics, rate.NewLimiter(rate.Inf, 0), slippageBps, discardLogger())

	return &poolAdapterFixture{adapter: adapter, pool: pool, breaker: breaker}
}

func TestPoolAdapter_DepositAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newPoolAdapterFixture(t, ctrl, 100)
	f.breaker.EXPECT().IsOpen().Return(false)
	f.breaker.EXPECT().RecordSuccess()

	units, err := f.adapter.DepositAsset(context.Background(), decimal.NewFromInt(1000))

	require.NoError(t, err)
	assert.True(t, units.GreaterThan(decimal.Zero))
}

func TestPoolAdapter_DepositAsset_RejectsNonPositive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newPoolAdapterFixture(t, ctrl, 100)

	_, err := f.adapter.DepositAsset(context.Background(), decimal.Zero)

	assert.ErrorIs(t, err, ErrZeroAmount)
}

func TestPoolAdapter_DepositAsset_CircuitOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newPoolAdapterFixture(t, ctrl, 100)
	f.breaker.EXPECT().IsOpen().Return(true)

	_, err := f.adapter.DepositAsset(context.Background(), decimal.NewFromInt(100))

	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
}

func TestPoolAdapter_DepositAsset_SlippageExceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Zero tolerance makes the spot-quoted min-out unreachable: the realized
	// swap output always sits below spot by the fee and the price impact.
	f := newPoolAdapterFixture(t, ctrl, 0)
	f.breaker.EXPECT().IsOpen().Return(false)
	f.breaker.EXPECT().RecordFailure()

	_, err := f.adapter.DepositAsset(context.Background(), decimal.NewFromInt(1000))

	assert.ErrorIs(t, err, ErrSlippageExceeded)
}

func TestPoolAdapter_WithdrawAsset_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newPoolAdapterFixture(t, ctrl, 100)
	f.breaker.EXPECT().IsOpen().Return(false).Times(2)
	f.breaker.EXPECT().RecordSuccess().Times(2)

	amount := decimal.NewFromInt(1000)
	units, err := f.adapter.DepositAsset(context.Background(), amount)
	require.NoError(t, err)

	recovered, err := f.adapter.WithdrawAsset(context.Background(), units)
	require.NoError(t, err)

	assert.True(t, recovered.LessThan(amount))
	assert.True(t, recovered.GreaterThan(amount.Mul(decimal.RequireFromString("0.99"))),
		"recovered %s of %s", recovered, amount)
}

func TestPoolAdapter_WithdrawAsset_MoreThanSupply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newPoolAdapterFixture(t, ctrl, 100)
	f.breaker.EXPECT().IsOpen().Return(false)

	_, err := f.adapter.WithdrawAsset(context.Background(), decimal.NewFromInt(10_000_000))

	assert.ErrorIs(t, err, ErrInsufficientLiquidity)
}

func TestPoolAdapter_PoolValueInPrimary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newPoolAdapterFixture(t, ctrl, 100)

	value, err := f.adapter.PoolValueInPrimary(context.Background())

	require.NoError(t, err)
	assert.True(t, value.Equal(decimal.NewFromInt(2_000_000)))
}

func TestPoolAdapter_TotalPoolUnits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newPoolAdapterFixture(t, ctrl, 100)

	supply, err := f.adapter.TotalPoolUnits(context.Background())

	require.NoError(t, err)
	assert.True(t, supply.Equal(decimal.NewFromInt(2_000_000)))
}
