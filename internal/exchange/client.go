// Package exchange defines the narrow contract this service consumes from a
// two-asset AMM liquidity exchange, plus an in-process constant-product
// implementation used by tests and the development environment.
package exchange

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// Asset identifies one leg of the pool pair
type Asset string

const (
	// AssetPrimary is the ledger's backing stablecoin (USDC)
	AssetPrimary Asset = "USDC"
	// AssetSecondary is the paired pool asset
	AssetSecondary Asset = "PAIR"
)

var (
	ErrMinOutputNotMet   = errors.New("swap output below minimum acceptable amount")
	ErrInvalidAssetPair  = errors.New("invalid asset pair")
	ErrInsufficientUnits = errors.New("insufficient position units outstanding")
)

// Client is the exchange contract consumed by the pool adapter. Every
// mutating call carries a caller-computed minimum-acceptable output; the
// exchange must fail the call outright rather than clear below it.
type Client interface {
	// Swap trades amountIn of assetIn for assetOut, failing with
	// ErrMinOutputNotMet if the realized output is below minAmountOut.
	Swap(ctx context.Context, assetIn, assetOut Asset, amountIn, minAmountOut decimal.Decimal) (decimal.Decimal, error)

	// AddLiquidity deposits up to the given amounts of both assets and
	// reports what was actually consumed plus the position units issued.
	AddLiquidity(ctx context.Context, amountPrimary, amountSecondary, minUnits decimal.Decimal) (usedPrimary, usedSecondary, units decimal.Decimal, err error)

	// RemoveLiquidity burns position units and returns both legs, failing
	// if either leg falls below its minimum.
	RemoveLiquidity(ctx context.Context, units, minPrimary, minSecondary decimal.Decimal) (primary, secondary decimal.Decimal, err error)

	// GetReserves returns the live pool reserves for both assets.
	GetReserves(ctx context.Context) (reservePrimary, reserveSecondary decimal.Decimal, err error)

	// GetTotalSupply returns the total outstanding pool position units.
	GetTotalSupply(ctx context.Context) (decimal.Decimal, error)
}
