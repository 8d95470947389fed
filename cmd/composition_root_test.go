package cmd_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"orderflow/cmd"
	"orderflow/internal/adapters/out/eventbus"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEventPublisher_LogWithoutBrokers(t *testing.T) {
	publisher, closeFn, err := cmd.NewEventPublisher(cmd.KafkaConfig{}, slog.Default())

	require.NoError(t, err)
	assert.IsType(t, &eventbus.LogPublisher{}, publisher)
	require.NoError(t, closeFn())
}

func TestNewEventPublisher_KafkaWithBrokers(t *testing.T) {
	publisher, closeFn, err := cmd.NewEventPublisher(cmd.KafkaConfig{
		Brokers: []string{"localhost:9092"},
		Topic:   "orderflow.events",
	}, slog.Default())

	require.NoError(t, err)
	assert.IsType(t, &eventbus.KafkaPublisher{}, publisher)
	require.NoError(t, closeFn())
}

func TestCompositionRoot_HTTPServerServesHealth(t *testing.T) {
	cfg, err := cmd.LoadConfig(t.TempDir() + "/missing.env")
	require.NoError(t, err)
	publisher, _, err := cmd.NewEventPublisher(cfg.Kafka, slog.Default())
	require.NoError(t, err)
	root := cmd.NewCompositionRoot(cfg, nil, publisher, slog.Default())

	e := echo.New()
	root.CreateHTTPServer().Register(e)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, root.CreateJobManager())
}
