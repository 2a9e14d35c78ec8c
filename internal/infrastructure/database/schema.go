package database

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const createDoctorsTable = `CREATE TABLE IF NOT EXISTS doctors (
	id SERIAL PRIMARY KEY,
	license_number VARCHAR(50) UNIQUE NOT NULL,
	full_name VARCHAR(100) NOT NULL,
	phone VARCHAR(20) UNIQUE NOT NULL,
	specialty VARCHAR(100),
	city VARCHAR(50) DEFAULT 'Saida',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// SchemaInitializer creates the doctors table when it is missing.
type SchemaInitializer struct {
	db    *gorm.DB
	log   *logrus.Logger
	mu    sync.Mutex
	ready atomic.Bool
}

func NewSchemaInitializer(db *gorm.DB, log *logrus.Logger) *SchemaInitializer {
	return &SchemaInitializer{
		db:  db,
		log: log,
	}
}

// EnsureSchema is idempotent. Runs are serialized because concurrent
// CREATE TABLE IF NOT EXISTS can still collide in the catalog.
func (s *SchemaInitializer) EnsureSchema(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.WithContext(ctx).Exec(createDoctorsTable).Error; err != nil {
		s.log.Errorf("Table creation failed: %v", err)
		return err
	}

	s.ready.Store(true)
	s.log.Info("Doctors table ready")
	return nil
}

// Ready reports whether EnsureSchema has succeeded at least once.
func (s *SchemaInitializer) Ready() bool {
	return s.ready.Load()
}
