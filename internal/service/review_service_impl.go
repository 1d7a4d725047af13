package service

import (
	"context"
	"errors"

	"github.com/alimikegami/e-commerce/internal/dto"
	"github.com/alimikegami/e-commerce/internal/repository"
	"github.com/alimikegami/e-commerce/pkg/errs"
	"github.com/rs/zerolog/log"
)

type ReviewServiceImpl struct {
	repo           repository.ReviewRepository
	serviceAddress string
}

func CreateReviewService(repo repository.ReviewRepository, serviceAddress string) ReviewService {
	return &ReviewServiceImpl{repo: repo, serviceAddress: serviceAddress}
}

func (s *ReviewServiceImpl) CreateReview(ctx context.Context, body dto.Review) (review dto.Review, err error) {
	if err = validateProductID(body.ProductID); err != nil {
		return
	}

	saved, err := s.repo.Save(ctx, dto.ReviewToDomain(body))
	if err != nil {
		if errors.Is(err, errs.ErrDuplicateKey) {
			err = errs.DuplicateKey("Duplicate key, Product Id: %d, Review Id: %d", body.ProductID, body.ReviewID)
		}
		return
	}

	log.Ctx(ctx).Debug().Str("component", "CreateReview").Msgf("created a review entity: %d/%d", saved.ProductID, saved.ReviewID)
	return dto.ReviewFromDomain(saved, s.serviceAddress), nil
}

func (s *ReviewServiceImpl) GetReviews(ctx context.Context, productID int) (data []dto.Review, err error) {
	if err = validateProductID(productID); err != nil {
		return
	}

	reviews, err := s.repo.FindByProductID(ctx, productID)
	if err != nil {
		return
	}

	log.Ctx(ctx).Debug().Str("component", "GetReviews").Msgf("response size: %d", len(reviews))
	return dto.ReviewsFromDomain(reviews, s.serviceAddress), nil
}

func (s *ReviewServiceImpl) DeleteReviews(ctx context.Context, productID int) (err error) {
	if err = validateProductID(productID); err != nil {
		return
	}

	log.Ctx(ctx).Debug().Str("component", "DeleteReviews").Msgf("tries to delete reviews for the product with productId: %d", productID)
	return s.repo.DeleteByProductID(ctx, productID)
}

func (s *ReviewServiceImpl) HandleEvent(ctx context.Context, event dto.Event) (err error) {
	switch event.EventType {
	case dto.EventTypeCreate:
		var body dto.Review
		if err = decodeCreateEvent(event, &body); err != nil {
			return
		}
		_, err = s.CreateReview(ctx, body)
		if errors.Is(err, errs.ErrDuplicateKey) {
			log.Ctx(ctx).Info().Str("component", "HandleEvent").Msgf("ignoring replayed event: %s", err.Error())
			return nil
		}
		return
	case dto.EventTypeDelete:
		return s.DeleteReviews(ctx, event.Key)
	default:
		return unknownEventType(event)
	}
}

func (s *ReviewServiceImpl) Health(ctx context.Context) dto.Health {
	return storeHealth(ctx, "ReviewHealth", s.repo.Ping)
}
