package dto

import (
	"encoding/json"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEventEnvelope(t *testing.T) {
	event, err := NewCreateEvent(1, Product{ProductID: 1, Name: "name", Weight: 1})
	require.NoError(t, err)

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Equal(t, "CREATE", envelope["eventType"])
	assert.EqualValues(t, 1, envelope["key"])
	assert.Contains(t, envelope, "eventCreatedAt")
	assert.Len(t, envelope["eventId"], 26)

	var decoded Event
	require.NoError(t, json.Unmarshal(raw, &decoded))

	var product Product
	require.NoError(t, decoded.DecodeData(&product))
	assert.Equal(t, Product{ProductID: 1, Name: "name", Weight: 1}, product)
}

func TestDeleteEventHasNullData(t *testing.T) {
	raw, err := json.Marshal(NewDeleteEvent(7))
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Equal(t, "DELETE", envelope["eventType"])
	assert.Nil(t, envelope["data"])

	var decoded Event
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Error(t, decoded.DecodeData(&Product{}))
}

func TestEventsGetDistinctIDs(t *testing.T) {
	first := NewDeleteEvent(1)
	second := NewDeleteEvent(1)

	assert.NotEmpty(t, first.EventID)
	assert.NotEqual(t, first.EventID, second.EventID)

	_, err := ulid.ParseStrict(first.EventID)
	assert.NoError(t, err)
}
