package geocoding_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/UnknownOlympus/hermes/internal/geocoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// mockHTTPClient is a mock implementation of HTTPClient for testing.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func respondWith(status int, body string) *mockHTTPClient {
	return &mockHTTPClient{
		doFunc: func(_ *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: status,
				Body:       io.NopCloser(bytes.NewBufferString(body)),
			}, nil
		},
	}
}

func newNominatim(client geocoding.HTTPClient) *geocoding.NominatimProvider {
	return geocoding.NewNominatimProviderWithClient(
		client, geocoding.NominatimBaseURL, rate.NewLimiter(rate.Inf, 1), slog.Default(),
	)
}

func TestNominatimProvider_Geocode(t *testing.T) {
	ctx := context.Background()

	t.Run("successful geocoding", func(t *testing.T) {
		client := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, http.MethodGet, req.Method)
				assert.Contains(t, req.URL.String(), "nominatim.openstreetmap.org")
				assert.Equal(t, "Stephen's Green, Dublin", req.URL.Query().Get("q"))
				assert.Equal(t, "json", req.URL.Query().Get("format"))
				assert.Equal(t, "1", req.URL.Query().Get("limit"))
				assert.Equal(
					t,
					"Hermes-Invite/1.0 (https://github.com/UnknownOlympus/hermes)",
					req.Header.Get("User-Agent"),
				)

				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewBufferString(`[{"lat":"53.3381985","lon":"-6.2592576"}]`)),
				}, nil
			},
		}

		coords, err := newNominatim(client).Geocode(ctx, "Stephen's Green, Dublin")

		require.NoError(t, err)
		require.NotNil(t, coords)
		assert.InEpsilon(t, 53.3381985, coords.Latitude, 1e-9)
		assert.InEpsilon(t, -6.2592576, coords.Longitude, 1e-9)
	})

	t.Run("empty address", func(t *testing.T) {
		coords, err := newNominatim(respondWith(http.StatusOK, `[]`)).Geocode(ctx, "")

		require.Nil(t, coords)
		require.ErrorIs(t, err, geocoding.ErrNominatimEmptyAddress)
	})

	t.Run("empty response from API", func(t *testing.T) {
		coords, err := newNominatim(respondWith(http.StatusOK, `[]`)).Geocode(ctx, "invalid address")

		require.Nil(t, coords)
		require.ErrorIs(t, err, geocoding.ErrNominatimEmptyResponse)
	})

	t.Run("HTTP error status", func(t *testing.T) {
		client := respondWith(http.StatusTooManyRequests, `{"error":"Rate limit exceeded"}`)

		coords, err := newNominatim(client).Geocode(ctx, "some address")

		require.Nil(t, coords)
		require.ErrorContains(t, err, "nominatim API returned status 429")
	})

	t.Run("invalid JSON response", func(t *testing.T) {
		coords, err := newNominatim(respondWith(http.StatusOK, `invalid json`)).Geocode(ctx, "some address")

		require.Nil(t, coords)
		require.ErrorContains(t, err, "failed to decode nominatim response")
	})

	t.Run("invalid coordinates in response", func(t *testing.T) {
		client := respondWith(http.StatusOK, `[{"lat":"north","lon":"-6.2592576"}]`)

		coords, err := newNominatim(client).Geocode(ctx, "some address")

		require.Nil(t, coords)
		require.ErrorIs(t, err, geocoding.ErrNominatimInvalidCoords)
	})

	t.Run("transport error", func(t *testing.T) {
		client := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return nil, assert.AnError
			},
		}

		coords, err := newNominatim(client).Geocode(ctx, "some address")

		require.Nil(t, coords)
		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("cancelled context while waiting for the limiter", func(t *testing.T) {
		limiter := rate.NewLimiter(rate.Limit(0.001), 1)
		require.True(t, limiter.Allow())
		provider := geocoding.NewNominatimProviderWithClient(
			respondWith(http.StatusOK, `[]`), geocoding.NominatimBaseURL, limiter, slog.Default(),
		)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		coords, err := provider.Geocode(cctx, "some address")

		require.Nil(t, coords)
		require.ErrorContains(t, err, "rate limit exceeded")
	})
}
