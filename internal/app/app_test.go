package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alimikegami/e-commerce/config"
	"github.com/alimikegami/e-commerce/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateApp registers process wide prometheus collectors, so one app serves every case.
func TestApp(t *testing.T) {
	conf := &config.Config{ServiceName: "test-service", ServicePort: "0", MetricsPort: "0"}
	app := CreateApp(conf)
	app.Group.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusMethodNotAllowed, "nope")
	})

	t.Run("ping", func(t *testing.T) {
		rec := httptest.NewRecorder()
		app.Server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"pong"}`, rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("echo errors use HttpErrorInfo", func(t *testing.T) {
		rec := httptest.NewRecorder()
		app.Server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		var info response.HttpErrorInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
		assert.Equal(t, "nope", info.Message)
		assert.Equal(t, "/boom", info.Path)
	})
}

func TestInitLogger(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	InitLogger("debug")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.NotNil(t, zerolog.DefaultContextLogger)

	InitLogger("not-a-level")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
