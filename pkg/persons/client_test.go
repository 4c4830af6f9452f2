package persons

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/sage/pkg/httpclient"
)

func newTestLogger() ectologger.Logger {
	return ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
}

func newTestClient(url string) *Client {
	return NewClient(Config{
		URL:     url,
		Timeout: 2 * time.Second,
	}, httpclient.NewClient(httpclient.DefaultConfig(), newTestLogger()), newTestLogger())
}

func TestClientFetch(t *testing.T) {
	t.Run("should return the records in the data envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data":[{"primer_nombre":"Diana"},{"firstName":"Carlos"}]}`))
		}))
		defer server.Close()

		records := newTestClient(server.URL).Fetch(context.Background())

		require.Len(t, records, 2)
		assert.Equal(t, "Diana", records[0]["primer_nombre"])
		assert.Equal(t, "Carlos", records[1]["firstName"])
	})

	t.Run("should return nothing when the URL is not configured", func(t *testing.T) {
		records := newTestClient("").Fetch(context.Background())

		assert.Nil(t, records)
	})

	t.Run("should degrade to nothing on transport errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		records := newTestClient(server.URL).Fetch(context.Background())

		assert.Nil(t, records)
	})

	t.Run("should degrade to nothing on a non-success status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		records := newTestClient(server.URL).Fetch(context.Background())

		assert.Nil(t, records)
	})

	t.Run("should degrade to nothing on a malformed envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"primer_nombre":"Diana"}]`))
		}))
		defer server.Close()

		records := newTestClient(server.URL).Fetch(context.Background())

		assert.Nil(t, records)
	})

	t.Run("should return an empty batch for an empty data array", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":[]}`))
		}))
		defer server.Close()

		records := newTestClient(server.URL).Fetch(context.Background())

		assert.Empty(t, records)
	})
}
