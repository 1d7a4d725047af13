package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceAddress(t *testing.T) {
	address := ServiceAddress("7001")

	assert.True(t, strings.HasSuffix(address, ":7001"))
	assert.Contains(t, address, "/")
	assert.NotContains(t, address, "//")
}
