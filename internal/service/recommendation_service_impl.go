package service

import (
	"context"
	"errors"

	"github.com/alimikegami/e-commerce/internal/dto"
	"github.com/alimikegami/e-commerce/internal/repository"
	"github.com/alimikegami/e-commerce/pkg/errs"
	"github.com/rs/zerolog/log"
)

type RecommendationServiceImpl struct {
	repo           repository.RecommendationRepository
	serviceAddress string
}

func CreateRecommendationService(repo repository.RecommendationRepository, serviceAddress string) RecommendationService {
	return &RecommendationServiceImpl{repo: repo, serviceAddress: serviceAddress}
}

func (s *RecommendationServiceImpl) CreateRecommendation(ctx context.Context, body dto.Recommendation) (recommendation dto.Recommendation, err error) {
	if err = validateProductID(body.ProductID); err != nil {
		return
	}

	saved, err := s.repo.Save(ctx, dto.RecommendationToDomain(body))
	if err != nil {
		if errors.Is(err, errs.ErrDuplicateKey) {
			err = errs.DuplicateKey("Duplicate key, Product Id: %d, Recommendation Id: %d", body.ProductID, body.RecommendationID)
		}
		return
	}

	log.Ctx(ctx).Debug().Str("component", "CreateRecommendation").Msgf("created a recommendation entity: %d/%d", saved.ProductID, saved.RecommendationID)
	return dto.RecommendationFromDomain(saved, s.serviceAddress), nil
}

func (s *RecommendationServiceImpl) GetRecommendations(ctx context.Context, productID int) (data []dto.Recommendation, err error) {
	if err = validateProductID(productID); err != nil {
		return
	}

	recommendations, err := s.repo.FindByProductID(ctx, productID)
	if err != nil {
		return
	}

	log.Ctx(ctx).Debug().Str("component", "GetRecommendations").Msgf("response size: %d", len(recommendations))
	return dto.RecommendationsFromDomain(recommendations, s.serviceAddress), nil
}

func (s *RecommendationServiceImpl) DeleteRecommendations(ctx context.Context, productID int) (err error) {
	if err = validateProductID(productID); err != nil {
		return
	}

	log.Ctx(ctx).Debug().Str("component", "DeleteRecommendations").Msgf("tries to delete recommendations for the product with productId: %d", productID)
	return s.repo.DeleteByProductID(ctx, productID)
}

func (s *RecommendationServiceImpl) HandleEvent(ctx context.Context, event dto.Event) (err error) {
	switch event.EventType {
	case dto.EventTypeCreate:
		var body dto.Recommendation
		if err = decodeCreateEvent(event, &body); err != nil {
			return
		}
		_, err = s.CreateRecommendation(ctx, body)
		if errors.Is(err, errs.ErrDuplicateKey) {
			log.Ctx(ctx).Info().Str("component", "HandleEvent").Msgf("ignoring replayed event: %s", err.Error())
			return nil
		}
		return
	case dto.EventTypeDelete:
		return s.DeleteRecommendations(ctx, event.Key)
	default:
		return unknownEventType(event)
	}
}

func (s *RecommendationServiceImpl) Health(ctx context.Context) dto.Health {
	return storeHealth(ctx, "RecommendationHealth", s.repo.Ping)
}
