package circuitbreaker

import (
	"errors"
	"testing"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
)

var (
	errExpected = errors.New("expected")
	errFailure  = errors.New("failure")
)

func TestCircuitBreakerTrips(t *testing.T) {
	cb := CreateCircuitBreaker("test", nil)

	for i := 0; i < 3; i++ {
		_, err := cb.Execute(func() ([]byte, error) { return nil, errFailure })
		assert.ErrorIs(t, err, errFailure)
	}

	assert.Equal(t, gobreaker.StateOpen, cb.State())

	_, err := cb.Execute(func() ([]byte, error) { return []byte("ok"), nil })
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestCircuitBreakerIgnoresSuccessfulErrors(t *testing.T) {
	cb := CreateCircuitBreaker("test", func(err error) bool {
		return err == nil || errors.Is(err, errExpected)
	})

	for i := 0; i < 5; i++ {
		_, err := cb.Execute(func() ([]byte, error) { return nil, errExpected })
		assert.ErrorIs(t, err, errExpected)
	}

	assert.Equal(t, gobreaker.StateClosed, cb.State())
}
