package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"stablestash/internal/exchange"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

var (
	two                   = decimal.NewFromInt(2)
	basisPointDenominator = decimal.NewFromInt(10000)
)

// PoolAdapter converts single-sided USDC flows into balanced two-asset pool
// positions. Deposits swap half the USDC into the secondary asset and add
// both legs as liquidity; withdrawals remove liquidity and swap the secondary
// leg back. Every exchange call carries a min-out bound derived from the live
// reserves and the configured slippage tolerance, so a degraded pool fails the
// operation instead of silently clearing at a bad price.
type PoolAdapter struct {
	client         exchange.Client
	circuitBreaker CircuitBreakerInterface
	metrics        MetricsRecorderInterface
	limiter        *rate.Limiter
	slippageBps    int64
	logger         *slog.Logger
}

func NewPoolAdapter(
	client exchange.Client,
	circuitBreaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	limiter *rate.Limiter,
	slippageBps int64,
	logger *slog.Logger,
) PoolAdapterInterface {
	return &PoolAdapter{
		client:         client,
		circuitBreaker: circuitBreaker,
		metrics:        metrics,
		limiter:        limiter,
		slippageBps:    slippageBps,
		logger:         logger,
	}
}

// DepositAsset routes USDC into the pool and returns the position units issued
func (a *PoolAdapter) DepositAsset(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrZeroAmount
	}

	if err := a.acquire(ctx); err != nil {
		return decimal.Zero, err
	}

	startTime := time.Now()

	reservePrimary, reserveSecondary, err := a.client.GetReserves(ctx)
	if err != nil {
		return decimal.Zero, a.fail("deposit", err)
	}

	half := amount.Div(two)
	remainder := amount.Sub(half)

	// Spot-ratio expectation; the realized output sits below it by fee and
	// price impact, both of which the tolerance must absorb.
	expectedOut := half.Mul(reserveSecondary).Div(reservePrimary)
	minOut := a.applyTolerance(expectedOut)

	swapped, err := a.client.Swap(ctx, exchange.AssetPrimary, exchange.AssetSecondary, half, minOut)
	if err != nil {
		return decimal.Zero, a.fail("deposit", err)
	}

	reservePrimary, _, err = a.client.GetReserves(ctx)
	if err != nil {
		return decimal.Zero, a.fail("deposit", err)
	}
	totalSupply, err := a.client.GetTotalSupply(ctx)
	if err != nil {
		return decimal.Zero, a.fail("deposit", err)
	}

	expectedUnits := totalSupply.Mul(remainder).Div(reservePrimary)
	minUnits := a.applyTolerance(expectedUnits)

	_, _, units, err := a.client.AddLiquidity(ctx, remainder, swapped, minUnits)
	if err != nil {
		return decimal.Zero, a.fail("deposit", err)
	}

	a.succeed("deposit", startTime)
	return units, nil
}

// WithdrawAsset redeems position units back into USDC
func (a *PoolAdapter) WithdrawAsset(ctx context.Context, shareUnits decimal.Decimal) (decimal.Decimal, error) {
	if shareUnits.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrZeroAmount
	}

	if err := a.acquire(ctx); err != nil {
		return decimal.Zero, err
	}

	startTime := time.Now()

	reservePrimary, reserveSecondary, err := a.client.GetReserves(ctx)
	if err != nil {
		return decimal.Zero, a.fail("withdraw", err)
	}
	totalSupply, err := a.client.GetTotalSupply(ctx)
	if err != nil {
		return decimal.Zero, a.fail("withdraw", err)
	}

	if shareUnits.GreaterThan(totalSupply) {
		return decimal.Zero, ErrInsufficientLiquidity
	}

	expectedPrimary := reservePrimary.Mul(shareUnits).Div(totalSupply)
	expectedSecondary := reserveSecondary.Mul(shareUnits).Div(totalSupply)

	primary, secondary, err := a.client.RemoveLiquidity(ctx, shareUnits,
		a.applyTolerance(expectedPrimary), a.applyTolerance(expectedSecondary))
	if err != nil {
		return decimal.Zero, a.fail("withdraw", err)
	}

	reservePrimary, reserveSecondary, err = a.client.GetReserves(ctx)
	if err != nil {
		return decimal.Zero, a.fail("withdraw", err)
	}

	expectedBack := secondary.Mul(reservePrimary).Div(reserveSecondary)
	swappedBack, err := a.client.Swap(ctx, exchange.AssetSecondary, exchange.AssetPrimary,
		secondary, a.applyTolerance(expectedBack))
	if err != nil {
		return decimal.Zero, a.fail("withdraw", err)
	}

	a.succeed("withdraw", startTime)
	return primary.Add(swappedBack), nil
}

// PoolValueInPrimary values the whole pool in USDC terms. With balanced
// reserves both legs are worth the same, so the pool is worth twice the
// primary reserve.
func (a *PoolAdapter) PoolValueInPrimary(ctx context.Context) (decimal.Decimal, error) {
	reservePrimary, _, err := a.client.GetReserves(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to read pool reserves: %w", err)
	}
	return reservePrimary.Mul(two), nil
}

// TotalPoolUnits returns the outstanding position units across all providers
func (a *PoolAdapter) TotalPoolUnits(ctx context.Context) (decimal.Decimal, error) {
	supply, err := a.client.GetTotalSupply(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to read pool supply: %w", err)
	}
	return supply, nil
}

func (a *PoolAdapter) applyTolerance(expected decimal.Decimal) decimal.Decimal {
	tolerance := basisPointDenominator.Sub(decimal.NewFromInt(a.slippageBps))
	return expected.Mul(tolerance).Div(basisPointDenominator)
}

func (a *PoolAdapter) acquire(ctx context.Context) error {
	if a.circuitBreaker.IsOpen() {
		a.metrics.IncrementCounter("circuit_breaker.open", map[string]string{
			"service": "exchange",
		})
		return ErrCircuitBreakerOpen
	}

	if err := a.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("exchange rate limit wait: %w", err)
	}

	return nil
}

func (a *PoolAdapter) fail(operation string, err error) error {
	a.circuitBreaker.RecordFailure()
	a.metrics.IncrementCounter("pool.call", map[string]string{
		"operation": operation,
		"status":    "failed",
	})

	a.logger.Warn("exchange call failed",
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)

	if errors.Is(err, exchange.ErrMinOutputNotMet) {
		return fmt.Errorf("%w: %v", ErrSlippageExceeded, err)
	}
	if errors.Is(err, exchange.ErrInsufficientUnits) {
		return fmt.Errorf("%w: %v", ErrInsufficientLiquidity, err)
	}

	return fmt.Errorf("exchange %s failed: %w", operation, err)
}

func (a *PoolAdapter) succeed(operation string, startTime time.Time) {
	a.circuitBreaker.RecordSuccess()
	a.metrics.IncrementCounter("pool.call", map[string]string{
		"operation": operation,
		"status":    "success",
	})
	a.metrics.RecordProcessingTime("pool.call", time.Since(startTime))
}
