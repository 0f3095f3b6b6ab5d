package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/commercial-publisher-api/infrastructure/integrator/meta"
	"github.com/vfg2006/commercial-publisher-api/infrastructure/integrator/tiktok"
	"github.com/vfg2006/commercial-publisher-api/infrastructure/integrator/youtube"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
	"github.com/vfg2006/commercial-publisher-api/internal/usecases/publishing"
	"github.com/vfg2006/commercial-publisher-api/pkg/apiErrors"
)

// newRegistry monta os publicadores reais sem clientes; Dimensions não faz chamadas externas
func newRegistry(t *testing.T, publishers ...publishing.Publisher) publishing.Publishers {
	t.Helper()

	if len(publishers) == 0 {
		publishers = []publishing.Publisher{
			meta.NewFacebookPublisher(nil),
			meta.NewInstagramPublisher(nil),
			tiktok.NewPublisher(nil),
			youtube.NewPublisher(nil, ""),
		}
	}

	registry, err := publishing.NewPublishers(publishers...)
	require.NoError(t, err)
	return registry
}

func TestListPlatforms(t *testing.T) {
	rec := serve(t, Platforms(newRegistry(t)), clientClaims, http.MethodGet, "/v1/platforms", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	platforms := decodeBody[[]PlatformInfo](t, rec)
	require.Len(t, platforms, len(domain.Platforms))
	for i, p := range domain.Platforms {
		assert.Equal(t, p, platforms[i].Platform)
		assert.Equal(t, p.MaxNarrativeLength(), platforms[i].MaxNarrative)
		assert.NotZero(t, platforms[i].ImageDimensions.Width)
		assert.NotZero(t, platforms[i].VideoDimensions.Width)
	}
}

func TestGetDimensions(t *testing.T) {
	tests := []struct {
		target string
		want   domain.Dimensions
		found  bool
	}{
		{target: "/v1/platforms/instagram/dimensions", want: domain.Dimensions{Width: 1080, Height: 1080, AspectRatio: "1:1"}, found: true},
		{target: "/v1/platforms/Instagram/dimensions?media_type=video", want: domain.Dimensions{Width: 1080, Height: 1920, AspectRatio: "9:16"}, found: true},
		{target: "/v1/platforms/whatsapp/dimensions", want: domain.Dimensions{Width: 1080, Height: 1920, AspectRatio: "9:16"}, found: true},
		{target: "/v1/platforms/youtube/dimensions?media_type=video", want: domain.Dimensions{Width: 1920, Height: 1080, AspectRatio: "16:9"}, found: true},
		{target: "/v1/platforms/orkut/dimensions"},
		{target: "/v1/platforms/facebook/dimensions?media_type=gif"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := serve(t, Platforms(newRegistry(t)), clientClaims, http.MethodGet, tt.target, nil)

			if !tt.found {
				requireAPIError(t, rec, http.StatusNotFound, apiErrors.ErrNotFound)
				return
			}
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, decodeBody[domain.Dimensions](t, rec))
		})
	}
}

func TestGetDimensions_UsesRegisteredPublishers(t *testing.T) {
	registry := newRegistry(t, tiktok.NewPublisher(nil))

	rec := serve(t, Platforms(registry), clientClaims, http.MethodGet, "/v1/platforms/tiktok/dimensions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.Dimensions{Width: 1080, Height: 1920, AspectRatio: "9:16"}, decodeBody[domain.Dimensions](t, rec))

	// youtube tem preset, mas não há publicador registrado
	rec = serve(t, Platforms(registry), clientClaims, http.MethodGet, "/v1/platforms/youtube/dimensions", nil)
	requireAPIError(t, rec, http.StatusNotFound, apiErrors.ErrNotFound)

	rec = serve(t, Platforms(registry), clientClaims, http.MethodGet, "/v1/platforms/whatsapp/dimensions", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
