package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogAccountCreated(ctx context.Context, ownerID uuid.UUID, trustMode string, weeklyGoal string) {
	al.logger.InfoContext(ctx, "savings account created",
		slog.String("event_type", "account_created"),
		slog.String("owner_id", ownerID.String()),
		slog.String("trust_mode", trustMode),
		slog.String("weekly_goal", weeklyGoal),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogLedgerCredit(ctx context.Context, ownerID uuid.UUID, kind string, amount, oldBalance, newBalance string) {
	al.logger.InfoContext(ctx, "ledger credit",
		slog.String("event_type", "ledger_credit"),
		slog.String("owner_id", ownerID.String()),
		slog.String("kind", kind),
		slog.String("amount", amount),
		slog.String("old_balance", oldBalance),
		slog.String("new_balance", newBalance),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogLedgerDebit(ctx context.Context, ownerID uuid.UUID, amount, oldBalance, newBalance string) {
	al.logger.InfoContext(ctx, "ledger debit",
		slog.String("event_type", "ledger_debit"),
		slog.String("owner_id", ownerID.String()),
		slog.String("amount", amount),
		slog.String("old_balance", oldBalance),
		slog.String("new_balance", newBalance),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogPoolForwarded(ctx context.Context, ownerID uuid.UUID, amount, shareUnits string) {
	al.logger.InfoContext(ctx, "deposit forwarded to pool",
		slog.String("event_type", "pool_forwarded"),
		slog.String("owner_id", ownerID.String()),
		slog.String("amount", amount),
		slog.String("share_units", shareUnits),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogPoolForwardingFailed(ctx context.Context, ownerID uuid.UUID, amount string, errorMsg string) {
	al.logger.WarnContext(ctx, "pool forwarding failed",
		slog.String("event_type", "pool_forwarding_failed"),
		slog.String("owner_id", ownerID.String()),
		slog.String("amount", amount),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogPoolRedemption(ctx context.Context, ownerID uuid.UUID, shareUnits, amountOut string) {
	al.logger.InfoContext(ctx, "pool position redeemed",
		slog.String("event_type", "pool_redemption"),
		slog.String("owner_id", ownerID.String()),
		slog.String("share_units", shareUnits),
		slog.String("amount_out", amountOut),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogForwardingTaskQueued(ctx context.Context, taskID, ownerID uuid.UUID, amount string) {
	al.logger.InfoContext(ctx, "forwarding task queued",
		slog.String("event_type", "forwarding_task_queued"),
		slog.String("task_id", taskID.String()),
		slog.String("owner_id", ownerID.String()),
		slog.String("amount", amount),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogForwardingTaskDrained(ctx context.Context, taskID, ownerID uuid.UUID, amount string, retryCount int) {
	al.logger.InfoContext(ctx, "forwarding task drained",
		slog.String("event_type", "forwarding_task_drained"),
		slog.String("task_id", taskID.String()),
		slog.String("owner_id", ownerID.String()),
		slog.String("amount", amount),
		slog.Int("retry_count", retryCount),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogForwardingTaskFailed(ctx context.Context, taskID, ownerID uuid.UUID, errorMsg string, retryCount int) {
	al.logger.WarnContext(ctx, "forwarding task failed",
		slog.String("event_type", "forwarding_task_failed"),
		slog.String("task_id", taskID.String()),
		slog.String("owner_id", ownerID.String()),
		slog.String("error", errorMsg),
		slog.Int("retry_count", retryCount),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogRetryAttempt(ctx context.Context, taskID, ownerID uuid.UUID, retryCount, maxRetries int, backoffMs int64) {
	al.logger.InfoContext(ctx, "retry attempt",
		slog.String("event_type", "retry_attempt"),
		slog.String("task_id", taskID.String()),
		slog.String("owner_id", ownerID.String()),
		slog.Int("retry_count", retryCount),
		slog.Int("max_retries", maxRetries),
		slog.Int64("backoff_ms", backoffMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogAuthorizationDenied(ctx context.Context, operation string, callerID, ownerID uuid.UUID, trustMode string) {
	al.logger.WarnContext(ctx, "authorization denied",
		slog.String("event_type", "authorization_denied"),
		slog.String("operation", operation),
		slog.String("caller_id", callerID.String()),
		slog.String("owner_id", ownerID.String()),
		slog.String("trust_mode", trustMode),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogTrustModeChanged(ctx context.Context, ownerID uuid.UUID, oldMode, newMode string) {
	al.logger.InfoContext(ctx, "trust mode changed",
		slog.String("event_type", "trust_mode_changed"),
		slog.String("owner_id", ownerID.String()),
		slog.String("old_mode", oldMode),
		slog.String("new_mode", newMode),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogGoalChanged(ctx context.Context, ownerID uuid.UUID, oldGoal, newGoal string) {
	al.logger.InfoContext(ctx, "weekly goal changed",
		slog.String("event_type", "goal_changed"),
		slog.String("owner_id", ownerID.String()),
		slog.String("old_goal", oldGoal),
		slog.String("new_goal", newGoal),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogTrustedOperatorChanged(ctx context.Context, oldOperator, newOperator uuid.UUID) {
	al.logger.WarnContext(ctx, "trusted operator changed",
		slog.String("event_type", "trusted_operator_changed"),
		slog.String("old_operator", oldOperator.String()),
		slog.String("new_operator", newOperator.String()),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *AuditLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	al.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value("correlation_id").(string); ok {
		return correlationID
	}

	if requestID, ok := ctx.Value("request_id").(string); ok {
		return requestID
	}

	return ""
}
