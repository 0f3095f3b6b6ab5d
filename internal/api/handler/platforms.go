package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
	"github.com/vfg2006/commercial-publisher-api/pkg/apiErrors"
)

// DimensionSource resolve as dimensões pelos publicadores registrados
type DimensionSource interface {
	Dimensions(platform domain.Platform, mediaType domain.MediaType) (domain.Dimensions, bool)
}

type PlatformInfo struct {
	Platform        domain.Platform   `json:"platform"`
	MaxNarrative    int               `json:"max_narrative_length"`
	MaxHashtags     int               `json:"max_hashtags,omitempty"`
	ImageDimensions domain.Dimensions `json:"image_dimensions"`
	VideoDimensions domain.Dimensions `json:"video_dimensions"`
}

func ListPlatforms(dimensions DimensionSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		platforms := make([]PlatformInfo, 0, len(domain.Platforms))
		for _, p := range domain.Platforms {
			image, _ := dimensions.Dimensions(p, domain.MediaTypeImage)
			video, _ := dimensions.Dimensions(p, domain.MediaTypeVideo)
			platforms = append(platforms, PlatformInfo{
				Platform:        p,
				MaxNarrative:    p.MaxNarrativeLength(),
				MaxHashtags:     p.MaxHashtags(),
				ImageDimensions: image,
				VideoDimensions: video,
			})
		}
		writeJSON(w, http.StatusOK, platforms)
	}
}

// GetDimensions consulta o publicador da plataforma; whatsapp não publica e vai direto ao preset
func GetDimensions(source DimensionSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		preset := strings.ToLower(httprouter.ParamsFromContext(r.Context()).ByName("platform"))

		mediaType := domain.MediaType(r.URL.Query().Get("media_type"))
		if mediaType == "" {
			mediaType = domain.MediaTypeImage
		}

		var (
			dimensions domain.Dimensions
			ok         bool
		)
		if platform, err := domain.ParsePlatform(preset); err == nil {
			dimensions, ok = source.Dimensions(platform, mediaType)
		} else if preset == domain.PresetWhatsApp {
			dimensions, ok = domain.PresetDimensions(preset, mediaType)
		}

		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Preset de dimensão não encontrado", map[string]string{
				"platform":   preset,
				"media_type": string(mediaType),
			})
			return
		}

		writeJSON(w, http.StatusOK, dimensions)
	}
}
