package bootstrap

import (
	"io"
	"testing"

	"vipclinic-api/config"
	"vipclinic-api/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyLogLevel(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	applyLogLevel(log, "debug")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	applyLogLevel(log, "chatty")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel(), "invalid levels leave the current level")
}

func TestDatabaseStatus(t *testing.T) {
	assert.Equal(t, "Connected", databaseStatus(true))
	assert.Equal(t, "Disconnected", databaseStatus(false))
}

func TestInitializeServer(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{
		App: config.AppConfig{Name: "VipClinic API", Port: "5000"},
		DB: config.DBConfig{
			URL:          "postgres://clinic@127.0.0.1:1/clinic",
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		},
	}

	// Building the pool does not dial.
	provider, err := database.NewPostgresConnection(cfg.DB, log)
	require.NoError(t, err)
	defer provider.Close()

	server := initializeServer(cfg, log, provider, database.NewSchemaInitializer(provider.DB(), log))

	assert.Equal(t, "0.0.0.0:5000", server.Addr)
	assert.NotNil(t, server.Handler)
}
