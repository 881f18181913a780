package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"stablestash/internal/models"
	"stablestash/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// SavingsLedgerConfig carries the ledger's operational limits
type SavingsLedgerConfig struct {
	// MinDeposit is the smallest accepted deposit, one micro-unit by default
	MinDeposit decimal.Decimal
	// MaxSaveAmount caps a single automated save
	MaxSaveAmount decimal.Decimal
	// MinSaveInterval is the rate-limit window between automated saves
	MinSaveInterval time.Duration
}

func DefaultSavingsLedgerConfig() SavingsLedgerConfig {
	return SavingsLedgerConfig{
		MinDeposit:      decimal.New(1, -6),
		MaxSaveAmount:   decimal.NewFromInt(1000),
		MinSaveInterval: 24 * time.Hour,
	}
}

// SavingsService is the custodial savings ledger. It owns every balance
// mutation and serializes operations per owner. Custody transfers settle
// before the ledger commits, so a failed transfer leaves the ledger
// unchanged; pool forwarding runs after the commit and never rolls a
// credit back.
type SavingsService struct {
	accountRepo   repositories.SavingsAccountRepositoryInterface
	positionRepo  repositories.PoolPositionRepositoryInterface
	entryRepo     repositories.LedgerEntryRepositoryInterface
	auditRepo     repositories.AuditLogRepositoryInterface
	yieldService  YieldServiceInterface
	forwarding    ForwardingServiceInterface
	custodyClient CustodyClientInterface
	settlement    SettlementVerifierInterface
	auditLogger   AuditLoggerInterface
	metrics       MetricsRecorderInterface
	config        SavingsLedgerConfig
	adminKeyHash  string
	logger        *slog.Logger
	now           func() time.Time
	ownerLocks    *ownerMutexMap

	operatorMu sync.RWMutex
	operatorID uuid.UUID
}

func NewSavingsService(
	accountRepo repositories.SavingsAccountRepositoryInterface,
	positionRepo repositories.PoolPositionRepositoryInterface,
	entryRepo repositories.LedgerEntryRepositoryInterface,
	auditRepo repositories.AuditLogRepositoryInterface,
	yieldService YieldServiceInterface,
	forwarding ForwardingServiceInterface,
	custodyClient CustodyClientInterface,
	settlement SettlementVerifierInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	config SavingsLedgerConfig,
	trustedOperator uuid.UUID,
	adminKeyHash string,
	logger *slog.Logger,
) *SavingsService {
	return &SavingsService{
		accountRepo:   accountRepo,
		positionRepo:  positionRepo,
		entryRepo:     entryRepo,
		auditRepo:     auditRepo,
		yieldService:  yieldService,
		forwarding:    forwarding,
		custodyClient: custodyClient,
		settlement:    settlement,
		auditLogger:   auditLogger,
		metrics:       metrics,
		config:        config,
		adminKeyHash:  adminKeyHash,
		logger:        logger,
		now:           time.Now,
		operatorID:    trustedOperator,
		ownerLocks:    newOwnerMutexMap(),
	}
}

// SetClock replaces the service clock, used by tests to pin the rate-limit
// window
func (s *SavingsService) SetClock(now func() time.Time) {
	s.now = now
}

// CreateAccount opens a savings account for an owner. One account per owner.
func (s *SavingsService) CreateAccount(ctx context.Context, ownerID uuid.UUID, weeklyGoal, safetyBuffer decimal.Decimal, trustMode string) (*models.SavingsAccount, error) {
	unlock := s.lockOwner(ownerID)
	defer unlock()

	if weeklyGoal.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidGoal
	}
	if safetyBuffer.LessThan(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	if !models.IsValidTrustMode(trustMode) {
		return nil, models.ErrInvalidTrustMode
	}

	exists, err := s.accountRepo.ExistsForOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAccountAlreadyExists
	}

	account := &models.SavingsAccount{
		OwnerID:      ownerID,
		WeeklyGoal:   weeklyGoal,
		SafetyBuffer: safetyBuffer,
		TrustMode:    trustMode,
		Status:       models.AccountStatusActive,
	}

	if err := s.accountRepo.Create(account); err != nil {
		if errors.Is(err, repositories.ErrAccountExists) {
			return nil, ErrAccountAlreadyExists
		}
		return nil, err
	}

	s.auditLogger.LogAccountCreated(ctx, ownerID, trustMode, weeklyGoal.String())
	s.metrics.IncrementCounter("ledger.account_created", nil)
	s.recordAudit(ownerID, models.AuditActionAccountCreated, "savings_account", account.ID.String(), ownerID.String(), map[string]interface{}{
		"trust_mode":  trustMode,
		"weekly_goal": weeklyGoal.String(),
	})

	return account, nil
}

// Deposit credits owner funds into the ledger and routes them toward the
// pool. The credit is committed before the pool call; a pool failure leaves
// the credit standing, queues a retried forward, and surfaces as a typed
// PoolForwardingError next to the successful entry.
func (s *SavingsService) Deposit(ctx context.Context, callerID, ownerID uuid.UUID, amount decimal.Decimal) (*models.LedgerEntry, error) {
	unlock := s.lockOwner(ownerID)
	defer unlock()

	startTime := s.now()

	if callerID != ownerID {
		return nil, s.denied(ctx, "deposit", callerID, ownerID)
	}

	account, err := s.activeAccount(ownerID)
	if err != nil {
		return nil, err
	}

	if amount.LessThan(s.config.MinDeposit) {
		return nil, ErrInvalidAmount
	}

	entry, err := s.credit(ctx, account, amount, models.EntryKindDeposit, callerID)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordGauge("ledger.deposit_amount", amount.InexactFloat64(), nil)
	s.observe("deposit", startTime)

	if fwdErr := s.forwardToPool(ctx, ownerID, amount); fwdErr != nil {
		return entry, fwdErr
	}

	return entry, nil
}

// DepositCredited records a deposit that was already settled out of band.
// Only the trusted operator may submit it, and the settlement proof must
// cover the owner and amount being credited.
func (s *SavingsService) DepositCredited(ctx context.Context, callerID, ownerID uuid.UUID, amount decimal.Decimal, settlementProof string) (*models.LedgerEntry, error) {
	unlock := s.lockOwner(ownerID)
	defer unlock()

	startTime := s.now()

	if callerID != s.TrustedOperator() {
		return nil, s.denied(ctx, "deposit_credited", callerID, ownerID)
	}

	account, err := s.activeAccount(ownerID)
	if err != nil {
		return nil, err
	}

	if amount.LessThan(s.config.MinDeposit) {
		return nil, ErrInvalidAmount
	}

	if err := s.settlement.VerifyProof(settlementProof, ownerID, amount); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettlement, err)
	}

	entry, err := s.credit(ctx, account, amount, models.EntryKindCreditedDeposit, ownerID)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordGauge("ledger.deposit_amount", amount.InexactFloat64(), nil)
	s.observe("deposit_credited", startTime)

	if fwdErr := s.forwardToPool(ctx, ownerID, amount); fwdErr != nil {
		return entry, fwdErr
	}

	return entry, nil
}

// AutoSave pulls funds from owner custody into the ledger. Manual-mode
// accounts accept it only from the owner, auto-mode accounts only from the
// trusted operator, and the save is rate limited per account.
func (s *SavingsService) AutoSave(ctx context.Context, callerID, ownerID uuid.UUID, amount decimal.Decimal) (*models.LedgerEntry, error) {
	unlock := s.lockOwner(ownerID)
	defer unlock()

	startTime := s.now()

	account, err := s.activeAccount(ownerID)
	if err != nil {
		return nil, err
	}

	// A non-positive save is outside the allowed save range just like an
	// oversized one.
	if amount.LessThanOrEqual(decimal.Zero) || amount.GreaterThan(s.config.MaxSaveAmount) {
		return nil, ErrAmountExceedsLimit
	}

	if !CanInvokeAutoSave(account.TrustMode, callerID, ownerID, s.TrustedOperator()) {
		return nil, s.deniedWithMode(ctx, "auto_save", callerID, ownerID, account.TrustMode)
	}

	if !account.CanAutoSaveAt(s.now(), s.config.MinSaveInterval) {
		return nil, ErrSaveIntervalNotMet
	}

	// Custody moves first. A failed pull aborts with no ledger change.
	if err := s.custodyClient.Pull(ctx, ownerID, amount); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCustodyTransfer, err)
	}

	account.MarkSaved(s.now())

	entry, err := s.credit(ctx, account, amount, models.EntryKindAutoSave, callerID)
	if err != nil {
		return nil, err
	}

	s.observe("auto_save", startTime)

	if fwdErr := s.forwardToPool(ctx, ownerID, amount); fwdErr != nil {
		return entry, fwdErr
	}

	return entry, nil
}

// Withdraw pushes funds back to owner custody and debits the ledger. Only the
// shortfall not covered by idle custody is redeemed from the pool; the ledger
// decrement is always the nominal requested amount. The custody push happens
// before the debit so a failed push leaves the ledger unchanged.
func (s *SavingsService) Withdraw(ctx context.Context, callerID, ownerID uuid.UUID, amount decimal.Decimal) (*models.LedgerEntry, error) {
	unlock := s.lockOwner(ownerID)
	defer unlock()

	startTime := s.now()

	if callerID != ownerID {
		return nil, s.denied(ctx, "withdraw", callerID, ownerID)
	}

	account, err := s.activeAccount(ownerID)
	if err != nil {
		return nil, err
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	if account.CurrentBalance.LessThan(amount) {
		return nil, ErrInsufficientBalance
	}

	shortfall, err := s.poolShortfall(account, amount)
	if err != nil {
		return nil, err
	}

	if shortfall.GreaterThan(decimal.Zero) {
		if _, _, err := s.yieldService.RedeemForAmount(ctx, ownerID, shortfall); err != nil {
			return nil, err
		}
	}

	// Custody moves first. A failed push aborts with no ledger change; the
	// per-owner lock is still held, so nothing observes an intermediate state.
	if err := s.custodyClient.Push(ctx, ownerID, amount); err != nil {
		s.logger.Error("custody push failed, withdrawal aborted",
			slog.String("owner_id", ownerID.String()),
			slog.String("amount", amount.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %v", ErrCustodyTransfer, err)
	}

	oldBalance := account.CurrentBalance
	if err := account.Debit(amount); err != nil {
		if errors.Is(err, models.ErrInsufficientFunds) {
			return nil, ErrInsufficientBalance
		}
		return nil, err
	}

	entry := &models.LedgerEntry{
		AccountID:     account.ID,
		OwnerID:       account.OwnerID,
		Kind:          models.EntryKindWithdrawal,
		Amount:        amount,
		BalanceBefore: oldBalance,
		BalanceAfter:  account.CurrentBalance,
	}

	if err := s.accountRepo.Update(account); err != nil {
		return nil, err
	}
	if err := s.entryRepo.Create(entry); err != nil {
		return nil, err
	}

	s.auditLogger.LogLedgerDebit(ctx, ownerID, amount.String(), oldBalance.String(), account.CurrentBalance.String())
	s.recordAudit(ownerID, models.AuditActionWithdrawal, "ledger_entry", entry.ID.String(), callerID.String(), map[string]interface{}{
		"amount": amount.String(),
	})
	s.metrics.RecordGauge("ledger.withdrawal_amount", amount.InexactFloat64(), nil)
	s.observe("withdraw", startTime)

	return entry, nil
}

// UpdateGoal changes the owner's weekly goal and safety buffer
func (s *SavingsService) UpdateGoal(ctx context.Context, callerID, ownerID uuid.UUID, weeklyGoal, safetyBuffer decimal.Decimal) (*models.SavingsAccount, error) {
	unlock := s.lockOwner(ownerID)
	defer unlock()

	if callerID != ownerID {
		return nil, s.denied(ctx, "update_goal", callerID, ownerID)
	}

	account, err := s.activeAccount(ownerID)
	if err != nil {
		return nil, err
	}

	if weeklyGoal.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidGoal
	}
	if safetyBuffer.LessThan(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	oldGoal := account.WeeklyGoal
	account.WeeklyGoal = weeklyGoal
	account.SafetyBuffer = safetyBuffer

	if err := s.accountRepo.Update(account); err != nil {
		return nil, err
	}

	s.auditLogger.LogGoalChanged(ctx, ownerID, oldGoal.String(), weeklyGoal.String())
	s.recordAudit(ownerID, models.AuditActionGoalUpdated, "savings_account", account.ID.String(), callerID.String(), map[string]interface{}{
		"old_goal": oldGoal.String(),
		"new_goal": weeklyGoal.String(),
	})

	return account, nil
}

// UpdateTrustMode switches the account between manual and auto saving
func (s *SavingsService) UpdateTrustMode(ctx context.Context, callerID, ownerID uuid.UUID, trustMode string) (*models.SavingsAccount, error) {
	unlock := s.lockOwner(ownerID)
	defer unlock()

	if callerID != ownerID {
		return nil, s.denied(ctx, "update_trust_mode", callerID, ownerID)
	}

	account, err := s.activeAccount(ownerID)
	if err != nil {
		return nil, err
	}

	if !models.IsValidTrustMode(trustMode) {
		return nil, models.ErrInvalidTrustMode
	}

	oldMode := account.TrustMode
	account.TrustMode = trustMode

	if err := s.accountRepo.Update(account); err != nil {
		return nil, err
	}

	s.auditLogger.LogTrustModeChanged(ctx, ownerID, oldMode, trustMode)
	s.recordAudit(ownerID, models.AuditActionTrustModeUpdated, "savings_account", account.ID.String(), callerID.String(), map[string]interface{}{
		"old_mode": oldMode,
		"new_mode": trustMode,
	})

	return account, nil
}

// UpdateTrustedOperator rotates the operator identity allowed to trigger
// auto-mode saves. The call is gated by the deployment admin key, not by any
// account owner.
func (s *SavingsService) UpdateTrustedOperator(ctx context.Context, adminKey string, operatorID uuid.UUID) error {
	if operatorID == uuid.Nil {
		return ErrInvalidAmount
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.adminKeyHash), []byte(adminKey)); err != nil {
		return ErrInvalidAdminKey
	}

	s.operatorMu.Lock()
	oldOperator := s.operatorID
	s.operatorID = operatorID
	s.operatorMu.Unlock()

	s.auditLogger.LogTrustedOperatorChanged(ctx, oldOperator, operatorID)
	s.recordAudit(uuid.Nil, models.AuditActionOperatorUpdated, "trusted_operator", operatorID.String(), "admin", map[string]interface{}{
		"old_operator": oldOperator.String(),
		"new_operator": operatorID.String(),
	})

	return nil
}

// GetAccount returns the owner's savings account
func (s *SavingsService) GetAccount(ownerID uuid.UUID) (*models.SavingsAccount, error) {
	return s.accountRepo.GetByOwnerID(ownerID)
}

// CanAutoSave reports whether the account's rate-limit window has elapsed
func (s *SavingsService) CanAutoSave(ownerID uuid.UUID) (bool, error) {
	account, err := s.accountRepo.GetByOwnerID(ownerID)
	if err != nil {
		return false, err
	}
	return account.CanAutoSaveAt(s.now(), s.config.MinSaveInterval), nil
}

// GetUserTotalBalance returns the owner's idle ledger balance plus the live
// pool value of the forwarded portion, so accrued yield or loss shows up in
// the total.
func (s *SavingsService) GetUserTotalBalance(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error) {
	account, err := s.accountRepo.GetByOwnerID(ownerID)
	if err != nil {
		return decimal.Zero, err
	}

	idle := account.CurrentBalance
	position, err := s.positionRepo.GetByOwnerID(ownerID)
	if err != nil && !errors.Is(err, repositories.ErrPositionNotFound) {
		return decimal.Zero, err
	}
	if err == nil {
		idle = idle.Sub(position.CostBasis)
	}

	pooled, err := s.yieldService.GetUserValue(ctx, ownerID)
	if err != nil {
		return decimal.Zero, err
	}

	return idle.Add(pooled), nil
}

// GetTotalValueLocked returns the idle custody held outside the pool: the sum
// of all ledger balances minus the principal currently routed into the pool
func (s *SavingsService) GetTotalValueLocked() (decimal.Decimal, error) {
	balances, err := s.accountRepo.SumCurrentBalances()
	if err != nil {
		return decimal.Zero, err
	}

	forwarded, err := s.positionRepo.SumCostBasis()
	if err != nil {
		return decimal.Zero, err
	}

	return balances.Sub(forwarded), nil
}

// TrustedOperator returns the current operator identity
func (s *SavingsService) TrustedOperator() uuid.UUID {
	s.operatorMu.RLock()
	defer s.operatorMu.RUnlock()
	return s.operatorID
}

func (s *SavingsService) activeAccount(ownerID uuid.UUID) (*models.SavingsAccount, error) {
	account, err := s.accountRepo.GetByOwnerID(ownerID)
	if err != nil {
		return nil, err
	}

	if !account.IsActive() {
		return nil, ErrAccountNotActive
	}

	return account, nil
}

// credit commits a ledger credit and its journal row
func (s *SavingsService) credit(ctx context.Context, account *models.SavingsAccount, amount decimal.Decimal, kind string, callerID uuid.UUID) (*models.LedgerEntry, error) {
	oldBalance := account.CurrentBalance

	if err := account.Credit(amount); err != nil {
		return nil, err
	}

	entry := &models.LedgerEntry{
		AccountID:     account.ID,
		OwnerID:       account.OwnerID,
		Kind:          kind,
		Amount:        amount,
		BalanceBefore: oldBalance,
		BalanceAfter:  account.CurrentBalance,
	}

	if err := s.accountRepo.Update(account); err != nil {
		return nil, err
	}
	if err := s.entryRepo.Create(entry); err != nil {
		return nil, err
	}

	s.auditLogger.LogLedgerCredit(ctx, account.OwnerID, kind, amount.String(), oldBalance.String(), account.CurrentBalance.String())
	s.recordAudit(account.OwnerID, auditActionForKind(kind), "ledger_entry", entry.ID.String(), callerID.String(), map[string]interface{}{
		"amount": amount.String(),
	})

	return entry, nil
}

// forwardToPool routes a committed credit into the pool. A failure does not
// touch the ledger; the amount is queued and the typed error reports the
// retryable condition.
func (s *SavingsService) forwardToPool(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal) error {
	_, err := s.yieldService.Deposit(ctx, ownerID, amount)
	if err == nil {
		return nil
	}

	s.auditLogger.LogPoolForwardingFailed(ctx, ownerID, amount.String(), err.Error())

	task, enqueueErr := s.forwarding.Enqueue(ownerID, amount)
	if enqueueErr != nil {
		s.logger.Error("failed to queue pool forwarding",
			slog.String("owner_id", ownerID.String()),
			slog.String("amount", amount.String()),
			slog.String("error", enqueueErr.Error()),
		)
		return &PoolForwardingError{OwnerID: ownerID, Amount: amount, Cause: err}
	}

	s.recordAudit(ownerID, models.AuditActionForwardingQueued, "forwarding_task", task.ID.String(), "system", map[string]interface{}{
		"amount": amount.String(),
	})

	return &PoolForwardingError{OwnerID: ownerID, Amount: amount, TaskID: task.ID, Cause: err}
}

// poolShortfall computes how much of a withdrawal the idle custody cannot
// cover. Idle custody is the ledger balance minus the principal sitting in
// the pool.
func (s *SavingsService) poolShortfall(account *models.SavingsAccount, amount decimal.Decimal) (decimal.Decimal, error) {
	position, err := s.positionRepo.GetByOwnerID(account.OwnerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPositionNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}

	idle := account.CurrentBalance.Sub(position.CostBasis)
	if idle.GreaterThanOrEqual(amount) {
		return decimal.Zero, nil
	}

	return amount.Sub(idle), nil
}

func (s *SavingsService) denied(ctx context.Context, operation string, callerID, ownerID uuid.UUID) error {
	return s.deniedWithMode(ctx, operation, callerID, ownerID, "")
}

func (s *SavingsService) deniedWithMode(ctx context.Context, operation string, callerID, ownerID uuid.UUID, trustMode string) error {
	s.auditLogger.LogAuthorizationDenied(ctx, operation, callerID, ownerID, trustMode)
	s.metrics.IncrementCounter("ledger.authorization_denied", map[string]string{
		"operation": operation,
	})
	return ErrUnauthorizedCaller
}

func (s *SavingsService) observe(operation string, startTime time.Time) {
	s.metrics.IncrementCounter("ledger.operation", map[string]string{
		"operation": operation,
		"status":    "success",
	})
	s.metrics.RecordProcessingTime("ledger.operation", s.now().Sub(startTime))
}

func (s *SavingsService) recordAudit(ownerID uuid.UUID, action, resource, resourceID, callerID string, metadata map[string]interface{}) {
	log := &models.AuditLog{
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		CallerID:   callerID,
		Metadata:   metadata,
	}
	if ownerID != uuid.Nil {
		log.OwnerID = &ownerID
	}

	if err := s.auditRepo.Create(log); err != nil {
		s.logger.Error("failed to persist audit log",
			slog.String("action", action),
			slog.String("error", err.Error()),
		)
	}
}

func (s *SavingsService) lockOwner(ownerID uuid.UUID) func() {
	return s.ownerLocks.lock(ownerID)
}

func auditActionForKind(kind string) string {
	switch kind {
	case models.EntryKindCreditedDeposit:
		return models.AuditActionDepositCredited
	case models.EntryKindAutoSave:
		return models.AuditActionAutoSave
	default:
		return models.AuditActionDeposit
	}
}
