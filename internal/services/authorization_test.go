package services

import (
	"testing"

	"stablestash/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanInvokeAutoSave(t *testing.T) {
	owner := uuid.New()
	operator := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name      string
		trustMode string
		callerID  uuid.UUID
		allowed   bool
	}{
		{"manual mode owner", models.TrustModeManual, owner, true},
		{"manual mode operator", models.TrustModeManual, operator, false},
		{"manual mode stranger", models.TrustModeManual, stranger, false},
		{"auto mode owner", models.TrustModeAuto, owner, false},
		{"auto mode operator", models.TrustModeAuto, operator, true},
		{"auto mode stranger", models.TrustModeAuto, stranger, false},
		{"unknown mode owner", "supervised", owner, false},
		{"unknown mode operator", "supervised", operator, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanInvokeAutoSave(tt.trustMode, tt.callerID, owner, operator)
			assert.Equal(t, tt.allowed, got)
		})
	}
}

func TestCanInvokeAutoSave_OwnerIsOperator(t *testing.T) {
	owner := uuid.New()

	// When the owner is also the configured operator both modes admit them.
	assert.True(t, CanInvokeAutoSave(models.TrustModeManual, owner, owner, owner))
	assert.True(t, CanInvokeAutoSave(models.TrustModeAuto, owner, owner, owner))
}
