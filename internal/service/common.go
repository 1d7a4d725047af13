package service

import (
	"context"
	"time"

	"github.com/alimikegami/e-commerce/internal/dto"
	"github.com/alimikegami/e-commerce/pkg/errs"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 3 * time.Second

func validateProductID(productID int) error {
	if productID < 1 {
		return errs.InvalidInput("Invalid productId: %d", productID)
	}
	return nil
}

// decodeCreateEvent rejects unusable payloads as invalid input so the consumer
// dead-letters them instead of retrying.
func decodeCreateEvent(event dto.Event, v interface{}) error {
	if err := event.DecodeData(v); err != nil {
		return errs.InvalidInput("Cannot decode %s event for key %d: %v", event.EventType, event.Key, err)
	}
	return nil
}

func unknownEventType(event dto.Event) error {
	return errs.InvalidInput("Incorrect event type: %s, expected a CREATE or DELETE event", event.EventType)
}

func storeHealth(ctx context.Context, component string, ping func(ctx context.Context) error) dto.Health {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := ping(ctx); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", component).Msg("store is not reachable")
		return dto.Health{Status: dto.HealthStatusDown, Error: err.Error()}
	}
	return dto.Health{Status: dto.HealthStatusUp}
}
