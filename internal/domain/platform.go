package domain

import (
	"fmt"
	"strings"
)

// Platform identifica uma rede social de destino
type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
)

// Platforms lista as plataformas suportadas pelo publicador
var Platforms = []Platform{PlatformFacebook, PlatformInstagram, PlatformTikTok, PlatformYouTube}

// MinAccessTokenLength é o tamanho mínimo aceito para um token de acesso
const MinAccessTokenLength = 20

func (p Platform) IsValid() bool {
	switch p {
	case PlatformFacebook, PlatformInstagram, PlatformTikTok, PlatformYouTube:
		return true
	default:
		return false
	}
}

func (p Platform) String() string {
	return string(p)
}

// MaxNarrativeLength retorna o limite de caracteres do texto do anúncio para a plataforma
func (p Platform) MaxNarrativeLength() int {
	switch p {
	case PlatformFacebook:
		return 2000
	case PlatformInstagram:
		return 2200
	case PlatformTikTok:
		return 150
	case PlatformYouTube:
		return 5000
	default:
		return 0
	}
}

// MaxHashtags retorna o limite de hashtags; 0 significa sem limite
func (p Platform) MaxHashtags() int {
	if p == PlatformInstagram {
		return 30
	}
	return 0
}

func ParsePlatform(value string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(value)))
	if !p.IsValid() {
		return "", fmt.Errorf("plataforma desconhecida: %q", value)
	}
	return p, nil
}

// MediaType distingue imagem e vídeo nos presets de dimensão
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

type Dimensions struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	AspectRatio string `json:"aspect_ratio"`
}

// WhatsApp não é um destino de publicação, mas compartilha o preset vertical do TikTok
const PresetWhatsApp = "whatsapp"

var mediaPresets = map[string]map[MediaType]Dimensions{
	string(PlatformTikTok): {
		MediaTypeImage: {Width: 1080, Height: 1920, AspectRatio: "9:16"},
		MediaTypeVideo: {Width: 1080, Height: 1920, AspectRatio: "9:16"},
	},
	PresetWhatsApp: {
		MediaTypeImage: {Width: 1080, Height: 1920, AspectRatio: "9:16"},
		MediaTypeVideo: {Width: 1080, Height: 1920, AspectRatio: "9:16"},
	},
	string(PlatformInstagram): {
		MediaTypeImage: {Width: 1080, Height: 1080, AspectRatio: "1:1"},
		MediaTypeVideo: {Width: 1080, Height: 1920, AspectRatio: "9:16"},
	},
	string(PlatformFacebook): {
		MediaTypeImage: {Width: 1200, Height: 628, AspectRatio: "1.91:1"},
		MediaTypeVideo: {Width: 1080, Height: 1080, AspectRatio: "1:1"},
	},
	string(PlatformYouTube): {
		MediaTypeImage: {Width: 1280, Height: 720, AspectRatio: "16:9"},
		MediaTypeVideo: {Width: 1920, Height: 1080, AspectRatio: "16:9"},
	},
}

// PresetDimensions consulta a tabela fixa de dimensões por preset e tipo de mídia
func PresetDimensions(preset string, mediaType MediaType) (Dimensions, bool) {
	byType, ok := mediaPresets[preset]
	if !ok {
		return Dimensions{}, false
	}
	d, ok := byType[mediaType]
	return d, ok
}
