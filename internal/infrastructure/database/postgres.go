package database

import (
	"context"
	"crypto/tls"
	"database/sql"
	"fmt"
	"time"

	"vipclinic-api/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectionError is returned when a connection cannot be taken from the pool.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to acquire database connection: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Provider owns the connection pool for the lifetime of the process.
type Provider struct {
	db    *gorm.DB
	sqlDB *sql.DB
	log   *logrus.Logger
}

// NewPostgresConnection builds the pool without dialing. Reachability is
// reported by CheckConnectivity so that a down database only degrades health.
func NewPostgresConnection(cfg config.DBConfig, log *logrus.Logger) (*Provider, error) {
	connConfig, err := buildConnConfig(cfg)
	if err != nil {
		return nil, err
	}

	sqlDB := stdlib.OpenDB(*connConfig)

	// Set connection pool settings
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               newGormLogger(log, cfg.LogSQL),
		DisableAutomaticPing: true,
	})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	return NewProvider(db, log)
}

// NewProvider wraps an already opened gorm handle.
func NewProvider(db *gorm.DB, log *logrus.Logger) (*Provider, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	return &Provider{db: db, sqlDB: sqlDB, log: log}, nil
}

func (p *Provider) DB() *gorm.DB {
	return p.db
}

// Acquire takes a dedicated connection from the pool. Callers must Release it.
func (p *Provider) Acquire(ctx context.Context) (*sql.Conn, error) {
	conn, err := p.sqlDB.Conn(ctx)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	return conn, nil
}

// Release hands the connection back to the pool.
func (p *Provider) Release(conn *sql.Conn) {
	if conn == nil {
		return
	}
	if err := conn.Close(); err != nil {
		p.log.Warnf("Failed to release database connection: %+v", err)
	}
}

// CheckConnectivity acquires a connection, pings the server and releases it.
// It never returns an error; failures are logged and reported as false.
func (p *Provider) CheckConnectivity(ctx context.Context) bool {
	conn, err := p.Acquire(ctx)
	if err != nil {
		p.log.Warnf("Database connection failed: %v", err)
		return false
	}
	defer p.Release(conn)

	if err := conn.PingContext(ctx); err != nil {
		p.log.Warnf("Database connection failed: %v", err)
		return false
	}

	p.log.Debug("Database connected successfully")
	return true
}

func (p *Provider) Close() error {
	return p.sqlDB.Close()
}

// buildConnConfig parses the connection string and forces TLS on every
// candidate host. The provider-managed certificate chain is not verified.
func buildConnConfig(cfg config.DBConfig) (*pgx.ConnConfig, error) {
	connConfig, err := pgx.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid DATABASE_URL: %w", err)
	}

	connConfig.TLSConfig = insecureTLSConfig(connConfig.Host)
	for _, fallback := range connConfig.Fallbacks {
		fallback.TLSConfig = insecureTLSConfig(fallback.Host)
	}

	if cfg.ConnectTimeout > 0 {
		connConfig.ConnectTimeout = cfg.ConnectTimeout
	}

	return connConfig, nil
}

func insecureTLSConfig(host string) *tls.Config {
	return &tls.Config{
		ServerName:         host,
		InsecureSkipVerify: true,
	}
}

func newGormLogger(log *logrus.Logger, logSQL bool) logger.Interface {
	level := logger.Warn
	if logSQL {
		level = logger.Info
	}

	return logger.New(log, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
