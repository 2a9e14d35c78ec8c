package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"vipclinic-api/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
)

type fakeChecker struct {
	connected bool
	calls     int
}

func (f *fakeChecker) CheckConnectivity(ctx context.Context) bool {
	f.calls++
	return f.connected
}

type fakeSchema struct {
	ready   bool
	err     error
	ensures int
}

func (f *fakeSchema) EnsureSchema(ctx context.Context) error {
	f.ensures++
	if f.err != nil {
		return f.err
	}
	f.ready = true
	return nil
}

func (f *fakeSchema) Ready() bool {
	return f.ready
}

func newTestHealthUsecase(checker ConnectivityChecker, schema SchemaEnsurer) *healthUsecase {
	uc := NewHealthUsecase(newTestLogger(), "VipClinic API", checker, schema).(*healthUsecase)
	uc.now = func() time.Time { return time.Date(2026, time.October, 15, 8, 0, 0, 0, time.UTC) }
	return uc
}

func TestHealthCheck_Healthy(t *testing.T) {
	uc := newTestHealthUsecase(&fakeChecker{connected: true}, &fakeSchema{ready: true})

	res := uc.Check(context.Background())

	assert.Equal(t, &dto.HealthResponse{
		Status:    "healthy",
		Service:   "VipClinic API",
		Database:  "connected",
		Timestamp: "2026-10-15T08:00:00.000Z",
	}, res)
}

func TestHealthCheck_DatabaseDown(t *testing.T) {
	schema := &fakeSchema{}
	uc := newTestHealthUsecase(&fakeChecker{connected: false}, schema)

	res := uc.Check(context.Background())

	assert.Equal(t, "degraded", res.Status)
	assert.Equal(t, "disconnected", res.Database)
	assert.Zero(t, schema.ensures, "schema is not touched while the database is unreachable")
}

func TestHealthCheck_EnsuresMissingSchema(t *testing.T) {
	schema := &fakeSchema{}
	uc := newTestHealthUsecase(&fakeChecker{connected: true}, schema)

	res := uc.Check(context.Background())
	assert.Equal(t, "healthy", res.Status)
	assert.Equal(t, 1, schema.ensures)

	uc.Check(context.Background())
	assert.Equal(t, 1, schema.ensures, "schema is ensured only until it succeeds")
}

func TestHealthCheck_SchemaFailureDegrades(t *testing.T) {
	schema := &fakeSchema{err: errors.New("permission denied for schema public")}
	uc := newTestHealthUsecase(&fakeChecker{connected: true}, schema)

	res := uc.Check(context.Background())

	assert.Equal(t, "degraded", res.Status)
	assert.Equal(t, "connected", res.Database)
}

func TestRoot(t *testing.T) {
	uc := newTestHealthUsecase(&fakeChecker{}, &fakeSchema{})

	res := uc.Root(context.Background())

	assert.True(t, res.Success)
	assert.Contains(t, res.Message, "VipClinic API")
	assert.Equal(t, "PostgreSQL", res.Database)
	assert.Equal(t, "2026-10-15T08:00:00.000Z", res.Timestamp)
}
