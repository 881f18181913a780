package services

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const settlementIssuer = "settlement-service"

var (
	ErrInvalidProof        = errors.New("invalid settlement proof")
	ErrExpiredProof        = errors.New("settlement proof is expired")
	ErrProofOwnerMismatch  = errors.New("settlement proof owner does not match")
	ErrProofAmountMismatch = errors.New("settlement proof amount does not match")
)

// SettlementClaims is the credential the settlement service signs for each
// pre-settled deposit
type SettlementClaims struct {
	OwnerID string `json:"owner_id"`
	Amount  string `json:"amount"`
	jwt.RegisteredClaims
}

// SettlementVerifier validates RS256-signed settlement credentials against
// the settlement service's public key
type SettlementVerifier struct {
	publicKey *rsa.PublicKey
}

func NewSettlementVerifier(publicKey *rsa.PublicKey) SettlementVerifierInterface {
	return &SettlementVerifier{
		publicKey: publicKey,
	}
}

// VerifyProof checks signature, issuer, expiry, and that the proof binds the
// exact owner and amount being credited
func (v *SettlementVerifier) VerifyProof(proof string, ownerID uuid.UUID, amount decimal.Decimal) error {
	if proof == "" {
		return ErrInvalidProof
	}

	claims := &SettlementClaims{}
	token, err := jwt.ParseWithClaims(proof, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.publicKey, nil
	},
		jwt.WithIssuer(settlementIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrExpiredProof
		}
		return fmt.Errorf("%w: %v", ErrInvalidProof, err)
	}

	if !token.Valid {
		return ErrInvalidProof
	}

	if claims.OwnerID != ownerID.String() {
		return ErrProofOwnerMismatch
	}

	claimedAmount, err := decimal.NewFromString(claims.Amount)
	if err != nil || !claimedAmount.Equal(amount) {
		return ErrProofAmountMismatch
	}

	return nil
}

// SignSettlementProof issues a credential for the given owner and amount.
// Production proofs come from the settlement service; this signer backs the
// development environment and the test suites.
func SignSettlementProof(privateKey *rsa.PrivateKey, ownerID uuid.UUID, amount decimal.Decimal, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &SettlementClaims{
		OwnerID: ownerID.String(),
		Amount:  amount.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    settlementIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign settlement proof: %w", err)
	}

	return signed, nil
}
