package exchange

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"
)

var basisPointDenominator = decimal.NewFromInt(10000)

// SimulatedPool is an in-process constant-product (x*y=k) pool with a swap
// fee retained in the reserves. It backs the development environment and the
// test suites; production deployments inject a real exchange client instead.
type SimulatedPool struct {
	mu sync.Mutex

	reservePrimary   decimal.Decimal
	reserveSecondary decimal.Decimal
	totalSupply      decimal.Decimal
	feeBps           int64
}

// NewSimulatedPool seeds a pool with the given reserves. The initial position
// supply equals the sum of the seeded reserves; units are opaque to callers.
func NewSimulatedPool(reservePrimary, reserveSecondary decimal.Decimal, feeBps int64) *SimulatedPool {
	return &SimulatedPool{
		reservePrimary:   reservePrimary,
		reserveSecondary: reserveSecondary,
		totalSupply:      reservePrimary.Add(reserveSecondary),
		feeBps:           feeBps,
	}
}

// Swap trades along the constant-product curve. The fee leg stays in the
// reserves, which is what makes pool value drift upward with volume.
func (p *SimulatedPool) Swap(ctx context.Context, assetIn, assetOut Asset, amountIn, minAmountOut decimal.Decimal) (decimal.Decimal, error) {
	if amountIn.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, errors.New("swap amount must be positive")
	}
	if assetIn == assetOut || !isPoolAsset(assetIn) || !isPoolAsset(assetOut) {
		return decimal.Zero, ErrInvalidAssetPair
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	reserveIn, reserveOut := p.reservePrimary, p.reserveSecondary
	if assetIn == AssetSecondary {
		reserveIn, reserveOut = p.reserveSecondary, p.reservePrimary
	}

	amountOut := ConstantProductOut(amountIn, reserveIn, reserveOut, p.feeBps)
	if amountOut.LessThan(minAmountOut) {
		return decimal.Zero, ErrMinOutputNotMet
	}

	if assetIn == AssetPrimary {
		p.reservePrimary = p.reservePrimary.Add(amountIn)
		p.reserveSecondary = p.reserveSecondary.Sub(amountOut)
	} else {
		p.reserveSecondary = p.reserveSecondary.Add(amountIn)
		p.reservePrimary = p.reservePrimary.Sub(amountOut)
	}

	return amountOut, nil
}

// AddLiquidity consumes both legs at the current reserve ratio and issues
// position units proportional to the primary-leg contribution.
func (p *SimulatedPool) AddLiquidity(ctx context.Context, amountPrimary, amountSecondary, minUnits decimal.Decimal) (decimal.Decimal, decimal.Decimal, decimal.Decimal, error) {
	if amountPrimary.LessThanOrEqual(decimal.Zero) || amountSecondary.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, decimal.Zero, decimal.Zero, errors.New("liquidity amounts must be positive")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	usedPrimary := amountPrimary
	usedSecondary := amountPrimary.Mul(p.reserveSecondary).Div(p.reservePrimary)
	if usedSecondary.GreaterThan(amountSecondary) {
		usedSecondary = amountSecondary
		usedPrimary = amountSecondary.Mul(p.reservePrimary).Div(p.reserveSecondary)
	}

	units := p.totalSupply.Mul(usedPrimary).Div(p.reservePrimary)
	if units.LessThan(minUnits) {
		return decimal.Zero, decimal.Zero, decimal.Zero, ErrMinOutputNotMet
	}

	p.reservePrimary = p.reservePrimary.Add(usedPrimary)
	p.reserveSecondary = p.reserveSecondary.Add(usedSecondary)
	p.totalSupply = p.totalSupply.Add(units)

	return usedPrimary, usedSecondary, units, nil
}

// RemoveLiquidity burns units for a pro-rata slice of both reserves
func (p *SimulatedPool) RemoveLiquidity(ctx context.Context, units, minPrimary, minSecondary decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	if units.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, decimal.Zero, errors.New("position units must be positive")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if units.GreaterThan(p.totalSupply) {
		return decimal.Zero, decimal.Zero, ErrInsufficientUnits
	}

	primary := p.reservePrimary.Mul(units).Div(p.totalSupply)
	secondary := p.reserveSecondary.Mul(units).Div(p.totalSupply)

	if primary.LessThan(minPrimary) || secondary.LessThan(minSecondary) {
		return decimal.Zero, decimal.Zero, ErrMinOutputNotMet
	}

	p.reservePrimary = p.reservePrimary.Sub(primary)
	p.reserveSecondary = p.reserveSecondary.Sub(secondary)
	p.totalSupply = p.totalSupply.Sub(units)

	return primary, secondary, nil
}

// GetReserves returns the live reserves
func (p *SimulatedPool) GetReserves(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reservePrimary, p.reserveSecondary, nil
}

// GetTotalSupply returns the outstanding position units
func (p *SimulatedPool) GetTotalSupply(ctx context.Context) (decimal.Decimal, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalSupply, nil
}

// ConstantProductOut quotes the output of a constant-product swap with the
// fee applied to the input leg, matching the curve the simulated pool trades
// on. The pool adapter uses the same quote to derive min-out bounds.
func ConstantProductOut(amountIn, reserveIn, reserveOut decimal.Decimal, feeBps int64) decimal.Decimal {
	feeMultiplier := basisPointDenominator.Sub(decimal.NewFromInt(feeBps))
	amountInWithFee := amountIn.Mul(feeMultiplier)
	numerator := amountInWithFee.Mul(reserveOut)
	denominator := reserveIn.Mul(basisPointDenominator).Add(amountInWithFee)
	return numerator.Div(denominator)
}

func isPoolAsset(a Asset) bool {
	return a == AssetPrimary || a == AssetSecondary
}
