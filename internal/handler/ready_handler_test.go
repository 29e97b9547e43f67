package handler

import (
	"net/http/httptest"
	"testing"

	"pathfinder-be/internal/pkg/logger"
	internalWS "pathfinder-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeWsRequiresUpgrade(t *testing.T) {
	log := logger.NewNopLogger()
	app := fiber.New()
	NewReadyHandler(internalWS.NewHub(log), log).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/ws/ready", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}
