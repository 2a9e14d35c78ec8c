package usecase

import (
	"context"
	"time"

	"vipclinic-api/internal/converter"
	"vipclinic-api/internal/delivery/dto"

	"github.com/sirupsen/logrus"
)

const rootMessage = "🚀 VipClinic API with PostgreSQL is running!"

// ConnectivityChecker is satisfied by database.Provider.
type ConnectivityChecker interface {
	CheckConnectivity(ctx context.Context) bool
}

// SchemaEnsurer is satisfied by database.SchemaInitializer.
type SchemaEnsurer interface {
	EnsureSchema(ctx context.Context) error
	Ready() bool
}

type HealthUsecase interface {
	Root(ctx context.Context) *dto.RootResponse
	Check(ctx context.Context) *dto.HealthResponse
}

type healthUsecase struct {
	log         *logrus.Logger
	serviceName string
	checker     ConnectivityChecker
	schema      SchemaEnsurer
	now         func() time.Time
}

func NewHealthUsecase(
	log *logrus.Logger,
	serviceName string,
	checker ConnectivityChecker,
	schema SchemaEnsurer,
) HealthUsecase {
	return &healthUsecase{
		log:         log,
		serviceName: serviceName,
		checker:     checker,
		schema:      schema,
		now:         time.Now,
	}
}

func (u *healthUsecase) Root(ctx context.Context) *dto.RootResponse {
	return &dto.RootResponse{
		Success:   true,
		Message:   rootMessage,
		Timestamp: converter.Timestamp(u.now()),
		Database:  "PostgreSQL",
	}
}

// Check never fails. A reachable database whose schema was never ensured
// (the process started while it was down) gets another EnsureSchema attempt.
func (u *healthUsecase) Check(ctx context.Context) *dto.HealthResponse {
	connected := u.checker.CheckConnectivity(ctx)

	if connected && !u.schema.Ready() {
		if err := u.schema.EnsureSchema(ctx); err != nil {
			u.log.Warnf("Failed to ensure schema during health check: %+v", err)
		}
	}

	res := &dto.HealthResponse{
		Status:    dto.HealthStatusDegraded,
		Service:   u.serviceName,
		Database:  dto.DatabaseDisconnected,
		Timestamp: converter.Timestamp(u.now()),
	}
	if connected {
		res.Database = dto.DatabaseConnected
		if u.schema.Ready() {
			res.Status = dto.HealthStatusHealthy
		}
	}

	return res
}
