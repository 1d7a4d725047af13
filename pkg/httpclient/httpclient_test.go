package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := CreateHttpClient(time.Second)
	status, body, err := client.SendRequest(context.Background(), HttpRequest{
		URL:     server.URL,
		Method:  http.MethodGet,
		Headers: map[string]string{"Accept": "application/json"},
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, status)
	assert.JSONEq(t, `{"ok":true}`, string(body))
}

func TestSendRequestTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := CreateHttpClient(20 * time.Millisecond)
	_, _, err := client.SendRequest(context.Background(), HttpRequest{URL: server.URL, Method: http.MethodGet})

	assert.Error(t, err)
}
