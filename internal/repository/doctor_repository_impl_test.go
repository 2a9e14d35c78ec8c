package repository

import (
	"regexp"
	"testing"

	"vipclinic-api/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var insertPattern = regexp.QuoteMeta("INSERT INTO doctors (license_number, full_name, phone, specialty) VALUES ($1, $2, $3, $4) RETURNING id, full_name, phone")

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               logger.Discard,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestDoctorRepository_Create(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewDoctorRepository()

	mock.ExpectQuery(insertPattern).
		WithArgs("LIC1", "Dr. A", "555-0001", "General").
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "phone"}).AddRow(1, "Dr. A", "555-0001"))

	doctor := &entity.Doctor{
		LicenseNumber: "LIC1",
		FullName:      "Dr. A",
		Phone:         "555-0001",
		Specialty:     "General",
	}
	require.NoError(t, repo.Create(db, doctor))

	assert.Equal(t, int64(1), doctor.ID)
	assert.Equal(t, "Dr. A", doctor.FullName)
	assert.Equal(t, "555-0001", doctor.Phone)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorRepository_CreateUniqueViolation(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewDoctorRepository()

	pgErr := &pgconn.PgError{Code: "23505", Message: `duplicate key value violates unique constraint "doctors_license_number_key"`}
	mock.ExpectQuery(insertPattern).
		WithArgs("LIC1", "Dr. B", "555-0002", "Cardiology").
		WillReturnError(pgErr)

	doctor := &entity.Doctor{LicenseNumber: "LIC1", FullName: "Dr. B", Phone: "555-0002", Specialty: "Cardiology"}
	err := repo.Create(db, doctor)

	var got *pgconn.PgError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, "23505", got.Code)
	assert.Zero(t, doctor.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorRepository_CreateNoRow(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewDoctorRepository()

	mock.ExpectQuery(insertPattern).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "phone"}))

	err := repo.Create(db, &entity.Doctor{LicenseNumber: "LIC9", FullName: "Dr. Z", Phone: "555-0009", Specialty: "General"})
	assert.ErrorIs(t, err, errNoRowReturned)
}
