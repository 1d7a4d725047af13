package service

import (
	"context"
	"errors"

	"github.com/alimikegami/e-commerce/internal/dto"
	"github.com/alimikegami/e-commerce/internal/repository"
	"github.com/alimikegami/e-commerce/pkg/errs"
	"github.com/rs/zerolog/log"
)

type ProductServiceImpl struct {
	repo           repository.ProductRepository
	serviceAddress string
}

func CreateProductService(repo repository.ProductRepository, serviceAddress string) ProductService {
	return &ProductServiceImpl{repo: repo, serviceAddress: serviceAddress}
}

func (s *ProductServiceImpl) CreateProduct(ctx context.Context, body dto.Product) (product dto.Product, err error) {
	if err = validateProductID(body.ProductID); err != nil {
		return
	}

	saved, err := s.repo.Save(ctx, dto.ProductToDomain(body))
	if err != nil {
		if errors.Is(err, errs.ErrDuplicateKey) {
			err = errs.DuplicateKey("Duplicate key, Product Id: %d", body.ProductID)
		}
		return
	}

	log.Ctx(ctx).Debug().Str("component", "CreateProduct").Msgf("created a product entity: %d", saved.ProductID)
	return dto.ProductFromDomain(saved, s.serviceAddress), nil
}

func (s *ProductServiceImpl) GetProduct(ctx context.Context, productID int) (product dto.Product, err error) {
	if err = validateProductID(productID); err != nil {
		return
	}

	data, err := s.repo.FindByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			err = errs.NotFound("No product found for productId: %d", productID)
		}
		return
	}

	return dto.ProductFromDomain(data, s.serviceAddress), nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, productID int) (err error) {
	if err = validateProductID(productID); err != nil {
		return
	}

	log.Ctx(ctx).Debug().Str("component", "DeleteProduct").Msgf("tries to delete the product with productId: %d", productID)
	return s.repo.DeleteByProductID(ctx, productID)
}

func (s *ProductServiceImpl) HandleEvent(ctx context.Context, event dto.Event) (err error) {
	switch event.EventType {
	case dto.EventTypeCreate:
		var body dto.Product
		if err = decodeCreateEvent(event, &body); err != nil {
			return
		}
		_, err = s.CreateProduct(ctx, body)
		if errors.Is(err, errs.ErrDuplicateKey) {
			log.Ctx(ctx).Info().Str("component", "HandleEvent").Msgf("ignoring replayed event: %s", err.Error())
			return nil
		}
		return
	case dto.EventTypeDelete:
		return s.DeleteProduct(ctx, event.Key)
	default:
		return unknownEventType(event)
	}
}

func (s *ProductServiceImpl) Health(ctx context.Context) dto.Health {
	return storeHealth(ctx, "ProductHealth", s.repo.Ping)
}
