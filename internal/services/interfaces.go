package services

import (
	"context"
	"time"

	"stablestash/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsServiceInterface defines the custodial savings ledger operations
type SavingsServiceInterface interface {
	CreateAccount(ctx context.Context, ownerID uuid.UUID, weeklyGoal, safetyBuffer decimal.Decimal, trustMode string) (*models.SavingsAccount, error)
	Deposit(ctx context.Context, callerID, ownerID uuid.UUID, amount decimal.Decimal) (*models.LedgerEntry, error)
	DepositCredited(ctx context.Context, callerID, ownerID uuid.UUID, amount decimal.Decimal, settlementProof string) (*models.LedgerEntry, error)
	AutoSave(ctx context.Context, callerID, ownerID uuid.UUID, amount decimal.Decimal) (*models.LedgerEntry, error)
	Withdraw(ctx context.Context, callerID, ownerID uuid.UUID, amount decimal.Decimal) (*models.LedgerEntry, error)
	UpdateGoal(ctx context.Context, callerID, ownerID uuid.UUID, weeklyGoal, safetyBuffer decimal.Decimal) (*models.SavingsAccount, error)
	UpdateTrustMode(ctx context.Context, callerID, ownerID uuid.UUID, trustMode string) (*models.SavingsAccount, error)
	UpdateTrustedOperator(ctx context.Context, adminKey string, operatorID uuid.UUID) error

	GetAccount(ownerID uuid.UUID) (*models.SavingsAccount, error)
	CanAutoSave(ownerID uuid.UUID) (bool, error)
	GetUserTotalBalance(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error)
	GetTotalValueLocked() (decimal.Decimal, error)
	TrustedOperator() uuid.UUID
}

// YieldServiceInterface defines the pool-share accounting ledger. It is
// consumed only by the savings ledger; nothing exposes it over a transport.
type YieldServiceInterface interface {
	Deposit(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, ownerID uuid.UUID, shareUnits decimal.Decimal) (decimal.Decimal, error)
	RedeemForAmount(ctx context.Context, ownerID uuid.UUID, amountNeeded decimal.Decimal) (decimal.Decimal, decimal.Decimal, error)
	GetUserValue(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error)
	GetUserShareUnits(ownerID uuid.UUID) (decimal.Decimal, error)
	GetTotalShareUnits() (decimal.Decimal, error)
}

// PoolAdapterInterface converts between single-sided USDC amounts and
// two-legged pool liquidity positions
type PoolAdapterInterface interface {
	DepositAsset(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)
	WithdrawAsset(ctx context.Context, shareUnits decimal.Decimal) (decimal.Decimal, error)
	PoolValueInPrimary(ctx context.Context) (decimal.Decimal, error)
	TotalPoolUnits(ctx context.Context) (decimal.Decimal, error)
}

// ForwardingServiceInterface drains queued pool-forwarding work
type ForwardingServiceInterface interface {
	Enqueue(ownerID uuid.UUID, amount decimal.Decimal) (*models.ForwardingTask, error)
	StartProcessing(ctx context.Context)
	ProcessTask(ctx context.Context, task *models.ForwardingTask) error
	Sweep(ctx context.Context)
	GetQueueDepths() (pending, processing, completed, failed int64, err error)
}

// CustodyClientInterface moves USDC between owner custody and ledger custody.
// Transfers are atomic; a returned error means no funds moved.
type CustodyClientInterface interface {
	Pull(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal) error
	Push(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal) error
}

// SettlementVerifierInterface validates the credential proof presented with a
// pre-settled deposit
type SettlementVerifierInterface interface {
	VerifyProof(proof string, ownerID uuid.UUID, amount decimal.Decimal) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

type AuditLoggerInterface interface {
	LogAccountCreated(ctx context.Context, ownerID uuid.UUID, trustMode string, weeklyGoal string)
	LogLedgerCredit(ctx context.Context, ownerID uuid.UUID, kind string, amount, oldBalance, newBalance string)
	LogLedgerDebit(ctx context.Context, ownerID uuid.UUID, amount, oldBalance, newBalance string)
	LogPoolForwarded(ctx context.Context, ownerID uuid.UUID, amount, shareUnits string)
	LogPoolForwardingFailed(ctx context.Context, ownerID uuid.UUID, amount string, errorMsg string)
	LogPoolRedemption(ctx context.Context, ownerID uuid.UUID, shareUnits, amountOut string)
	LogForwardingTaskQueued(ctx context.Context, taskID, ownerID uuid.UUID, amount string)
	LogForwardingTaskDrained(ctx context.Context, taskID, ownerID uuid.UUID, amount string, retryCount int)
	LogForwardingTaskFailed(ctx context.Context, taskID, ownerID uuid.UUID, errorMsg string, retryCount int)
	LogRetryAttempt(ctx context.Context, taskID, ownerID uuid.UUID, retryCount, maxRetries int, backoffMs int64)
	LogAuthorizationDenied(ctx context.Context, operation string, callerID, ownerID uuid.UUID, trustMode string)
	LogTrustModeChanged(ctx context.Context, ownerID uuid.UUID, oldMode, newMode string)
	LogGoalChanged(ctx context.Context, ownerID uuid.UUID, oldGoal, newGoal string)
	LogTrustedOperatorChanged(ctx context.Context, oldOperator, newOperator uuid.UUID)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}
