package integration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alimikegami/e-commerce/config"
	"github.com/alimikegami/e-commerce/internal/dto"
	circuitbreaker "github.com/alimikegami/e-commerce/internal/infrastructure/circuit-breaker"
	"github.com/alimikegami/e-commerce/internal/infrastructure/message-queue/kafka"
	"github.com/alimikegami/e-commerce/internal/infrastructure/metrics"
	"github.com/alimikegami/e-commerce/pkg/errs"
	"github.com/alimikegami/e-commerce/pkg/httpclient"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

const (
	serviceProduct        = "product"
	serviceRecommendation = "recommendation"
	serviceReview         = "review"
)

type RequestSender interface {
	SendRequest(ctx context.Context, req httpclient.HttpRequest) (int, []byte, error)
}

type ProductCompositeIntegrationImpl struct {
	publisher kafka.EventPublisher
	client    RequestSender
	urls      config.IntegrationConfig
	degrade   config.DegradeConfig
	breakers  map[string]*gobreaker.CircuitBreaker[[]byte]
}

func CreateProductCompositeIntegration(publisher kafka.EventPublisher, client RequestSender, config *config.Config) ProductCompositeIntegration {
	breakers := map[string]*gobreaker.CircuitBreaker[[]byte]{}
	for _, name := range []string{serviceProduct, serviceRecommendation, serviceReview} {
		breakers[name] = circuitbreaker.CreateCircuitBreaker(name, isExpectedOutcome)
	}

	return &ProductCompositeIntegrationImpl{
		publisher: publisher,
		client:    client,
		urls:      config.IntegrationConfig,
		degrade:   config.DegradeConfig,
		breakers:  breakers,
	}
}

// isExpectedOutcome keeps 404 and 422 answers, and calls abandoned by the
// caller, from counting against a downstream service.
func isExpectedOutcome(err error) bool {
	return err == nil ||
		errors.Is(err, errs.ErrNotFound) ||
		errors.Is(err, errs.ErrInvalidInput) ||
		errors.Is(err, context.Canceled)
}

func (i *ProductCompositeIntegrationImpl) CreateProduct(ctx context.Context, body dto.Product) (dto.Product, error) {
	return body, i.publishCreate(ctx, dto.TopicProducts, body.ProductID, body)
}

func (i *ProductCompositeIntegrationImpl) GetProduct(ctx context.Context, productID int) (product dto.Product, err error) {
	url := fmt.Sprintf("%s/product/%d", i.urls.ProductServiceURL, productID)
	log.Ctx(ctx).Debug().Str("component", "GetProduct").Msgf("Will call the getProduct API on URL: %s", url)

	body, err := i.get(ctx, serviceProduct, url)
	if err == nil {
		if err = json.Unmarshal(body, &product); err == nil {
			return product, nil
		}
		err = &errs.UnexpectedTransportError{URL: url, StatusCode: http.StatusOK, Body: string(body), Err: err}
	}

	if i.degrade.Product && !abandoned(ctx, err) && !errors.Is(err, errs.ErrNotFound) && !errors.Is(err, errs.ErrInvalidInput) {
		i.logDegrade(ctx, serviceProduct, productID, err)
		return dto.Product{ProductID: productID}, nil
	}

	return dto.Product{}, err
}

func (i *ProductCompositeIntegrationImpl) DeleteProduct(ctx context.Context, productID int) error {
	return i.publisher.Publish(ctx, dto.TopicProducts, dto.NewDeleteEvent(productID))
}

func (i *ProductCompositeIntegrationImpl) CreateRecommendation(ctx context.Context, body dto.Recommendation) (dto.Recommendation, error) {
	return body, i.publishCreate(ctx, dto.TopicRecommendations, body.ProductID, body)
}

func (i *ProductCompositeIntegrationImpl) GetRecommendations(ctx context.Context, productID int) ([]dto.Recommendation, error) {
	url := fmt.Sprintf("%s/recommendation?productId=%d", i.urls.RecommendationServiceURL, productID)
	log.Ctx(ctx).Debug().Str("component", "GetRecommendations").Msgf("Will call the getRecommendations API on URL: %s", url)

	return getList[dto.Recommendation](ctx, i, serviceRecommendation, url, productID, i.degrade.Recommendations)
}

func (i *ProductCompositeIntegrationImpl) DeleteRecommendations(ctx context.Context, productID int) error {
	return i.publisher.Publish(ctx, dto.TopicRecommendations, dto.NewDeleteEvent(productID))
}

func (i *ProductCompositeIntegrationImpl) CreateReview(ctx context.Context, body dto.Review) (dto.Review, error) {
	return body, i.publishCreate(ctx, dto.TopicReviews, body.ProductID, body)
}

func (i *ProductCompositeIntegrationImpl) GetReviews(ctx context.Context, productID int) ([]dto.Review, error) {
	url := fmt.Sprintf("%s/review?productId=%d", i.urls.ReviewServiceURL, productID)
	log.Ctx(ctx).Debug().Str("component", "GetReviews").Msgf("Will call the getReviews API on URL: %s", url)

	return getList[dto.Review](ctx, i, serviceReview, url, productID, i.degrade.Reviews)
}

func (i *ProductCompositeIntegrationImpl) DeleteReviews(ctx context.Context, productID int) error {
	return i.publisher.Publish(ctx, dto.TopicReviews, dto.NewDeleteEvent(productID))
}

func (i *ProductCompositeIntegrationImpl) publishCreate(ctx context.Context, topic string, key int, body interface{}) error {
	event, err := dto.NewCreateEvent(key, body)
	if err != nil {
		return err
	}

	return i.publisher.Publish(ctx, topic, event)
}

// getList fetches a collection. With degrade set, any failure becomes an empty
// list, except a call the caller abandoned.
func getList[T any](ctx context.Context, i *ProductCompositeIntegrationImpl, service, url string, productID int, degrade bool) ([]T, error) {
	body, err := i.get(ctx, service, url)
	if err == nil {
		list := []T{}
		if err = json.Unmarshal(body, &list); err == nil {
			if list == nil {
				list = []T{}
			}
			return list, nil
		}
		err = &errs.UnexpectedTransportError{URL: url, StatusCode: http.StatusOK, Body: string(body), Err: err}
	}

	if degrade && !abandoned(ctx, err) {
		i.logDegrade(ctx, service, productID, err)
		return []T{}, nil
	}

	return nil, err
}

func (i *ProductCompositeIntegrationImpl) get(ctx context.Context, service, url string) ([]byte, error) {
	start := time.Now()

	body, err := i.breakers[service].Execute(func() ([]byte, error) {
		statusCode, body, err := i.client.SendRequest(ctx, httpclient.HttpRequest{
			URL:    url,
			Method: http.MethodGet,
			Headers: map[string]string{
				"Accept": "application/json",
			},
		})
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("component", "ProductCompositeIntegration").Str("url", url).Msg("Got a transport error, will rethrow it")
			return nil, &errs.UnexpectedTransportError{URL: url, Err: err}
		}

		if statusCode != http.StatusOK {
			return nil, convertError(ctx, url, statusCode, body)
		}

		return body, nil
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		log.Ctx(ctx).Warn().Err(err).Str("component", "ProductCompositeIntegration").Str("service", service).Msg("circuit breaker rejected the call")
		err = &errs.UnexpectedTransportError{URL: url, Err: err}
	}

	outcome := "ok"
	switch {
	case err == nil:
	case abandoned(ctx, err):
		outcome = "canceled"
	default:
		outcome = "error"
	}
	metrics.DownstreamRequestDuration.WithLabelValues(service, outcome).Observe(time.Since(start).Seconds())

	return body, err
}

// abandoned reports a call that failed because its caller went away, such as a
// sibling fetch of the same aggregate that already failed.
func abandoned(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, context.Canceled)
}

func (i *ProductCompositeIntegrationImpl) logDegrade(ctx context.Context, service string, productID int, err error) {
	log.Ctx(ctx).Warn().Err(err).Str("component", "ProductCompositeIntegration").Str("service", service).Int("productId", productID).Msg("downstream read failed, using fallback")
	metrics.DegradedRequests.WithLabelValues(service).Inc()
}
