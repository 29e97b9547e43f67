package serverutils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReadiness bool

func (f fakeReadiness) IsReady() bool { return bool(f) }

func TestErrorHandlerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/missing", func(ctx *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "stream not found")
	})
	app.Get("/panic", func(ctx *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	var body BaseResponse[any]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "stream not found", body.Message)

	resp, err = app.Test(httptest.NewRequest("GET", "/panic", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestRequireReady(t *testing.T) {
	for _, tc := range []struct {
		ready fakeReadiness
		want  int
	}{
		{ready: false, want: 503},
		{ready: true, want: 200},
	} {
		app := fiber.New()
		app.Use(RequireReady(tc.ready))
		app.Get("/", func(ctx *fiber.Ctx) error {
			return ctx.JSON(SuccessResponse("ok", 1))
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, tc.want, resp.StatusCode)
	}
}
