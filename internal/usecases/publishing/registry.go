package publishing

import (
	"fmt"

	"github.com/vfg2006/commercial-publisher-api/internal/domain"
)

// Publishers indexa os adaptadores pela plataforma que atendem
type Publishers map[domain.Platform]Publisher

// NewPublishers exige exatamente um adaptador por plataforma informada
func NewPublishers(publishers ...Publisher) (Publishers, error) {
	registry := make(Publishers, len(publishers))
	for _, p := range publishers {
		platform := p.Platform()
		if !platform.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPlatform, platform)
		}
		if _, exists := registry[platform]; exists {
			return nil, fmt.Errorf("publicador duplicado para %s", platform)
		}
		registry[platform] = p
	}
	return registry, nil
}

func (p Publishers) Get(platform domain.Platform) (Publisher, bool) {
	publisher, ok := p[platform]
	return publisher, ok
}

func (p Publishers) Dimensions(platform domain.Platform, mediaType domain.MediaType) (domain.Dimensions, bool) {
	publisher, ok := p[platform]
	if !ok {
		return domain.Dimensions{}, false
	}
	return publisher.Dimensions(mediaType)
}
