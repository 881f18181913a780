package database

import (
	"fmt"
	"log"
	"time"

	"stablestash/internal/config"
	"stablestash/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.SavingsAccount{},
		&models.PoolPosition{},
		&models.LedgerEntry{},
		&models.ForwardingTask{},
		&models.AuditLog{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		// Savings account indexes
		"CREATE INDEX IF NOT EXISTS idx_savings_accounts_status ON savings_accounts(status)",
		"CREATE INDEX IF NOT EXISTS idx_savings_accounts_trust_mode ON savings_accounts(trust_mode)",
		"CREATE INDEX IF NOT EXISTS idx_savings_accounts_last_save_at ON savings_accounts(last_save_at)",
		// Ledger entry indexes
		"CREATE INDEX IF NOT EXISTS idx_ledger_entries_account_id ON ledger_entries(account_id)",
		"CREATE INDEX IF NOT EXISTS idx_ledger_entries_owner_id ON ledger_entries(owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_ledger_entries_kind ON ledger_entries(kind)",
		"CREATE INDEX IF NOT EXISTS idx_ledger_entries_reference ON ledger_entries(reference)",
		"CREATE INDEX IF NOT EXISTS idx_ledger_entries_created_at ON ledger_entries(created_at)",
		// Forwarding queue indexes
		"CREATE INDEX IF NOT EXISTS idx_forwarding_owner ON pool_forwarding_queue(owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_forwarding_status ON pool_forwarding_queue(status, scheduled_at)",
		// Audit log indexes
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_owner_id ON audit_logs(owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_action ON audit_logs(action)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_created_at ON audit_logs(created_at)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Get the underlying sql.DB for migration runner
	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Run SQL-based migrations using golang-migrate if enabled
	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")

		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	log.Println("Database initialized successfully")

	return db.DB, nil
}
