package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alimikegami/e-commerce/pkg/errs"
	"github.com/alimikegami/e-commerce/pkg/response"
	"github.com/rs/zerolog/log"
)

func convertError(ctx context.Context, url string, statusCode int, body []byte) error {
	message := errorMessage(url, statusCode, body)

	switch statusCode {
	case http.StatusNotFound:
		return errs.NotFound("%s", message)
	case http.StatusUnprocessableEntity:
		return errs.InvalidInput("%s", message)
	default:
		log.Ctx(ctx).Warn().Str("component", "ProductCompositeIntegration").Int("status", statusCode).Str("url", url).Msg("Got an unexpected HTTP error, will rethrow it")
		log.Ctx(ctx).Warn().Str("component", "ProductCompositeIntegration").Str("body", string(body)).Msg("Error body")
		return &errs.UnexpectedTransportError{URL: url, StatusCode: statusCode, Body: string(body)}
	}
}

// errorMessage prefers the message of an HttpErrorInfo body.
func errorMessage(url string, statusCode int, body []byte) string {
	var info response.HttpErrorInfo
	if err := json.Unmarshal(body, &info); err == nil && info.Message != "" {
		return info.Message
	}

	return fmt.Sprintf("%d %s from GET %s", statusCode, http.StatusText(statusCode), url)
}
