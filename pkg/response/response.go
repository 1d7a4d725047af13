package response

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alimikegami/e-commerce/pkg/errs"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// HttpErrorInfo is the error body returned by every service.
type HttpErrorInfo struct {
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
}

func NewHttpErrorInfo(status int, path, message string) HttpErrorInfo {
	return HttpErrorInfo{
		Timestamp: time.Now(),
		Path:      path,
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
	}
}

func WriteSuccessResponse(c echo.Context, data interface{}) error {
	if data == nil {
		return c.NoContent(http.StatusOK)
	}

	return c.JSON(http.StatusOK, data)
}

func WriteErrorResponse(c echo.Context, err error) error {
	statusCode := errs.GetErrorStatusCode(err)
	return c.JSON(statusCode, NewHttpErrorInfo(statusCode, c.Request().URL.Path, err.Error()))
}

// HTTPErrorHandler renders errors that escape the handlers, such as unknown
// routes, with the same body as WriteErrorResponse.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		message := fmt.Sprint(he.Message)
		if he.Code >= http.StatusInternalServerError {
			log.Ctx(c.Request().Context()).Error().Err(err).Str("component", "HTTPErrorHandler").Msg("")
		}
		if writeErr := c.JSON(he.Code, NewHttpErrorInfo(he.Code, c.Request().URL.Path, message)); writeErr != nil {
			log.Ctx(c.Request().Context()).Error().Err(writeErr).Str("component", "HTTPErrorHandler").Msg("")
		}
		return
	}

	log.Ctx(c.Request().Context()).Error().Err(err).Str("component", "HTTPErrorHandler").Msg("")
	if writeErr := WriteErrorResponse(c, err); writeErr != nil {
		log.Ctx(c.Request().Context()).Error().Err(writeErr).Str("component", "HTTPErrorHandler").Msg("")
	}
}
