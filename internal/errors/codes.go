package errors

// ErrorCode represents a standardized error code used throughout the ledger
type ErrorCode string

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound      ErrorCode = "ACCOUNT_001"
	AccountNotActive     ErrorCode = "ACCOUNT_002"
	AccountAlreadyExists ErrorCode = "ACCOUNT_003"
	AccountInvalidGoal   ErrorCode = "ACCOUNT_004"
)

// Ledger operation error codes (LEDGER_*)
const (
	LedgerInvalidAmount       ErrorCode = "LEDGER_001"
	LedgerInsufficientBalance ErrorCode = "LEDGER_002"
	LedgerAmountExceedsLimit  ErrorCode = "LEDGER_003"
	LedgerSaveIntervalNotMet  ErrorCode = "LEDGER_004"
	LedgerCustodyTransfer     ErrorCode = "LEDGER_005"
)

// Pool error codes (POOL_*)
const (
	PoolZeroAmount            ErrorCode = "POOL_001"
	PoolInsufficientLiquidity ErrorCode = "POOL_002"
	PoolForwardingFailed      ErrorCode = "POOL_003"
	PoolSlippageExceeded      ErrorCode = "POOL_004"
)

// Authorization error codes (AUTH_*)
const (
	AuthUnauthorizedCaller ErrorCode = "AUTH_001"
	AuthInvalidCredential  ErrorCode = "AUTH_002"
	AuthInvalidAdminKey    ErrorCode = "AUTH_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AccountNotFound:      "Savings account not found",
	AccountNotActive:     "Savings account is inactive or was never created",
	AccountAlreadyExists: "An active savings account already exists for this owner",
	AccountInvalidGoal:   "Weekly savings goal must be positive",

	LedgerInvalidAmount:       "Invalid ledger amount",
	LedgerInsufficientBalance: "Insufficient ledger balance",
	LedgerAmountExceedsLimit:  "Save amount exceeds the per-save limit",
	LedgerSaveIntervalNotMet:  "Minimum interval between automated saves has not elapsed",
	LedgerCustodyTransfer:     "Custody transfer failed",

	PoolZeroAmount:            "Pool amount must be positive",
	PoolInsufficientLiquidity: "Owner holds fewer pool share units than requested",
	PoolForwardingFailed:      "Deposit credited, pool forwarding queued for retry",
	PoolSlippageExceeded:      "Trade could not clear within the slippage tolerance",

	AuthUnauthorizedCaller: "Caller is not authorized to invoke this operation",
	AuthInvalidCredential:  "Settlement credential proof is invalid",
	AuthInvalidAdminKey:    "Administrative key is invalid",

	SystemInternalError:      "An unexpected error occurred",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
