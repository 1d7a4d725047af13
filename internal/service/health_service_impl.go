package service

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/alimikegami/e-commerce/config"
	"github.com/alimikegami/e-commerce/internal/dto"
	"github.com/alimikegami/e-commerce/internal/integration"
	"github.com/alimikegami/e-commerce/pkg/httpclient"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type HealthServiceImpl struct {
	client     integration.RequestSender
	components map[string]string

	mu       sync.RWMutex
	snapshot *dto.Health
}

func CreateHealthService(client integration.RequestSender, config *config.Config) HealthService {
	return &HealthServiceImpl{
		client: client,
		components: map[string]string{
			"product":        config.IntegrationConfig.ProductServiceURL,
			"recommendation": config.IntegrationConfig.RecommendationServiceURL,
			"review":         config.IntegrationConfig.ReviewServiceURL,
		},
	}
}

// Poll checks every downstream service concurrently and replaces the snapshot.
func (s *HealthServiceImpl) Poll(ctx context.Context) {
	var mu sync.Mutex
	components := make(map[string]dto.Health, len(s.components))

	var g errgroup.Group
	for name, url := range s.components {
		g.Go(func() error {
			health := s.check(ctx, url)
			mu.Lock()
			components[name] = health
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	health := dto.Health{Status: dto.HealthStatusUp, Components: components}
	for name, component := range components {
		if component.Status != dto.HealthStatusUp {
			log.Ctx(ctx).Warn().Str("component", "HealthPoll").Str("service", name).Str("error", component.Error).Msg("downstream service is DOWN")
			health.Status = dto.HealthStatusDown
		}
	}

	s.mu.Lock()
	s.snapshot = &health
	s.mu.Unlock()
}

// Health returns the latest snapshot, polling first when none exists yet.
func (s *HealthServiceImpl) Health(ctx context.Context) dto.Health {
	s.mu.RLock()
	snapshot := s.snapshot
	s.mu.RUnlock()

	if snapshot == nil {
		s.Poll(ctx)
		s.mu.RLock()
		snapshot = s.snapshot
		s.mu.RUnlock()
	}

	return *snapshot
}

func (s *HealthServiceImpl) check(ctx context.Context, baseURL string) dto.Health {
	url := fmt.Sprintf("%s/actuator/health", baseURL)

	statusCode, _, err := s.client.SendRequest(ctx, httpclient.HttpRequest{
		URL:    url,
		Method: http.MethodGet,
		Headers: map[string]string{
			"Accept": "application/json",
		},
	})
	if err != nil {
		return dto.Health{Status: dto.HealthStatusDown, Error: err.Error()}
	}
	if statusCode != http.StatusOK {
		return dto.Health{Status: dto.HealthStatusDown, Error: fmt.Sprintf("%d %s from GET %s", statusCode, http.StatusText(statusCode), url)}
	}

	return dto.Health{Status: dto.HealthStatusUp}
}
