package services

import (
	"stablestash/internal/models"

	"github.com/google/uuid"
)

// CanInvokeAutoSave decides whether the caller may trigger an automated save
// for the given account owner. In manual mode only the owner may save; in
// auto mode only the trusted operator may. Nobody else, in either mode.
func CanInvokeAutoSave(trustMode string, callerID, ownerID, operatorID uuid.UUID) bool {
	switch trustMode {
	case models.TrustModeManual:
		return callerID == ownerID
	case models.TrustModeAuto:
		return callerID == operatorID
	default:
		return false
	}
}
