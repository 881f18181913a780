package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"stablestash/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Ledger     LedgerConfig
	Pool       PoolConfig
	Forwarding ForwardingConfig
	Settlement SettlementConfig
}

type ServerConfig struct {
	Port         string `validate:"required"`
	Host         string `validate:"required"`
	Environment  string `validate:"required,oneof=development testing production"`
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string `validate:"required"`
	Port            string `validate:"required"`
	User            string `validate:"required"`
	Password        string `validate:"required"`
	Name            string `validate:"required"`
	SSLMode         string `validate:"required"`
	MaxConnections  int    `validate:"gt=0"`
	MaxIdleConns    int    `validate:"gt=0"`
	ConnMaxLifetime time.Duration
}

type LedgerConfig struct {
	// MinDeposit is the smallest accepted credit in USDC
	MinDeposit decimal.Decimal `validate:"usdc_amount"`
	// MaxSaveAmount caps one automated save in USDC
	MaxSaveAmount decimal.Decimal `validate:"usdc_amount"`
	// MinSaveInterval is the per-account window between automated saves
	MinSaveInterval time.Duration
	// TrustedOperator is the identity allowed to trigger auto-mode saves
	TrustedOperator uuid.UUID
	// AdminKeyHash is the bcrypt hash gating trusted-operator rotation
	AdminKeyHash string `validate:"required"`
}

type PoolConfig struct {
	// SlippageBps bounds how far below the reserve-quoted expectation an
	// exchange call may clear
	SlippageBps int64 `validate:"basis_points"`
	// FeeBps is the simulated pool's swap fee
	FeeBps int64 `validate:"basis_points"`
	// RatePerSecond throttles exchange calls
	RatePerSecond int `validate:"gt=0"`
	RateBurst     int `validate:"gt=0"`
	// Simulated pool seed reserves, development only
	SeedReservePrimary   decimal.Decimal
	SeedReserveSecondary decimal.Decimal
}

type ForwardingConfig struct {
	MaxWorkers int `validate:"gt=0"`
	MaxRetries int `validate:"gt=0"`
	// SweepSchedule is the cron spec for the queue safety-net sweep
	SweepSchedule string `validate:"required"`
}

type SettlementConfig struct {
	// PublicKey verifies RS256 settlement credential proofs
	PublicKey *rsa.PublicKey
	// PrivateKey signs proofs in development and tests only
	PrivateKey *rsa.PrivateKey
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "savings_user"),
			Password:        getEnv("DB_PASSWORD", "savings_password"),
			Name:            getEnv("DB_NAME", "savings_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Ledger: LedgerConfig{
			MinDeposit:      getDecimalEnv("LEDGER_MIN_DEPOSIT", decimal.New(1, -6)),
			MaxSaveAmount:   getDecimalEnv("LEDGER_MAX_SAVE_AMOUNT", decimal.NewFromInt(1000)),
			MinSaveInterval: getDurationEnv("LEDGER_MIN_SAVE_INTERVAL", 24*time.Hour),
			TrustedOperator: getUUIDEnv("LEDGER_TRUSTED_OPERATOR"),
		},
		Pool: PoolConfig{
			SlippageBps:          getInt64Env("POOL_SLIPPAGE_BPS", 100),
			FeeBps:               getInt64Env("POOL_FEE_BPS", 30),
			RatePerSecond:        getIntEnv("POOL_RATE_PER_SECOND", 10),
			RateBurst:            getIntEnv("POOL_RATE_BURST", 20),
			SeedReservePrimary:   getDecimalEnv("POOL_SEED_RESERVE_PRIMARY", decimal.NewFromInt(1_000_000)),
			SeedReserveSecondary: getDecimalEnv("POOL_SEED_RESERVE_SECONDARY", decimal.NewFromInt(1_000_000)),
		},
		Forwarding: ForwardingConfig{
			MaxWorkers:    getIntEnv("FORWARDING_MAX_WORKERS", 4),
			MaxRetries:    getIntEnv("FORWARDING_MAX_RETRIES", 5),
			SweepSchedule: getEnv("FORWARDING_SWEEP_SCHEDULE", "@every 1m"),
		},
	}

	config.Ledger.AdminKeyHash = loadAdminKeyHash(config)

	var settlementErr error
	config.Settlement.PublicKey, config.Settlement.PrivateKey, settlementErr = config.loadSettlementKeys()
	if settlementErr != nil {
		log.Fatal("Failed to load settlement RSA keys:", settlementErr)
	}

	if err := config.Validate(); err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	return config
}

// Validate runs struct validation over the loaded configuration
func (c *Config) Validate() error {
	validate := validation.GetValidator().GetValidate()

	if err := validate.Struct(c.Server); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := validate.Struct(c.Database); err != nil {
		return fmt.Errorf("database config: %w", err)
	}
	if err := validate.Struct(c.Ledger); err != nil {
		return fmt.Errorf("ledger config: %w", err)
	}
	if err := validate.Struct(c.Pool); err != nil {
		return fmt.Errorf("pool config: %w", err)
	}
	if err := validate.Struct(c.Forwarding); err != nil {
		return fmt.Errorf("forwarding config: %w", err)
	}

	if c.IsProduction() && c.Ledger.TrustedOperator == uuid.Nil {
		return errors.New("ledger config: LEDGER_TRUSTED_OPERATOR must be set in production")
	}

	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if dec, err := decimal.NewFromString(value); err == nil {
			return dec
		}
	}
	return defaultValue
}

func getUUIDEnv(key string) uuid.UUID {
	if value := os.Getenv(key); value != "" {
		if id, err := uuid.Parse(value); err == nil {
			return id
		}
	}
	return uuid.Nil
}

// loadAdminKeyHash resolves the bcrypt hash gating trusted-operator rotation.
// Priority order:
// 1. LEDGER_ADMIN_KEY_HASH holds a pre-computed bcrypt hash (all environments)
// 2. Production without an explicit hash is a startup failure
// 3. Development/testing hash a well-known default key for convenience
func loadAdminKeyHash(c *Config) string {
	if hash := os.Getenv("LEDGER_ADMIN_KEY_HASH"); hash != "" {
		return hash
	}

	if c.IsProduction() {
		log.Fatal("LEDGER_ADMIN_KEY_HASH environment variable must be set in production environments")
	}

	log.Println("Development environment: hashing default admin key (set LEDGER_ADMIN_KEY_HASH to override)")
	hash, err := bcrypt.GenerateFromPassword([]byte(getEnv("LEDGER_ADMIN_KEY", "dev-admin-key")), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash default admin key:", err)
	}
	return string(hash)
}

// loadSettlementKeys loads the RSA keys for settlement proof verification
// Priority order:
// 1. If SETTLEMENT_PUBLIC_KEY is set, use it (SETTLEMENT_PRIVATE_KEY optional)
// 2. If production and the public key is missing, fail with error
// 3. If development/testing, generate a keypair so proofs can be self-signed
func (c *Config) loadSettlementKeys() (*rsa.PublicKey, *rsa.PrivateKey, error) {
	publicKeyB64 := os.Getenv("SETTLEMENT_PUBLIC_KEY")

	if publicKeyB64 != "" {
		publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to decode SETTLEMENT_PUBLIC_KEY: %w", err)
		}

		publicKey, err := loadRSAPublicKey(publicKeyBytes)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse settlement public key: %w", err)
		}

		return publicKey, nil, nil
	}

	if c.IsProduction() {
		return nil, nil, errors.New("SETTLEMENT_PUBLIC_KEY environment variable must be set in production environments")
	}

	log.Println("Development environment: generating settlement RSA keypair (set SETTLEMENT_PUBLIC_KEY to verify against the settlement service)")
	privateKey, publicKey, err := GenerateRSAKeyPair()
	if err != nil {
		return nil, nil, err
	}
	return publicKey, privateKey, nil
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}

// loadRSAPublicKey loads an RSA public key from PEM format
func loadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPublicKey, nil
}
