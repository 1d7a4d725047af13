package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateNewConfigDefaults(t *testing.T) {
	t.Setenv("SERVICE_PORT", "")
	t.Setenv("DEGRADE_PRODUCT", "")
	t.Setenv("DEGRADE_RECOMMENDATIONS", "")
	t.Setenv("DEGRADE_REVIEWS", "")
	t.Setenv("DOWNSTREAM_TIMEOUT", "")
	t.Setenv("PRODUCT_SERVICE_URL", "")

	conf := CreateNewConfig("product-composite")

	assert.Equal(t, "product-composite", conf.ServiceName)
	assert.Equal(t, "8080", conf.ServicePort)
	assert.Equal(t, "http://product", conf.IntegrationConfig.ProductServiceURL)
	assert.Equal(t, 5*time.Second, conf.IntegrationConfig.RequestTimeout)
	assert.Equal(t, DegradeConfig{Product: false, Recommendations: true, Reviews: true}, conf.DegradeConfig)
	assert.Equal(t, "product-composite", conf.KafkaConfig.ConsumerGroup)
}

func TestCreateNewConfigOverrides(t *testing.T) {
	t.Setenv("SERVICE_PORT", "7000")
	t.Setenv("DEGRADE_PRODUCT", "true")
	t.Setenv("DEGRADE_REVIEWS", "false")
	t.Setenv("DOWNSTREAM_TIMEOUT", "250ms")
	t.Setenv("CONSUMER_MAX_ATTEMPTS", "not-a-number")

	conf := CreateNewConfig("review")

	assert.Equal(t, "7000", conf.ServicePort)
	assert.True(t, conf.DegradeConfig.Product)
	assert.False(t, conf.DegradeConfig.Reviews)
	assert.Equal(t, 250*time.Millisecond, conf.IntegrationConfig.RequestTimeout)
	assert.Equal(t, 3, conf.KafkaConfig.ConsumerMaxAttempts)
}
