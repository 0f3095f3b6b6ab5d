package meta

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commercial-publisher-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
)

type InstagramPublisher struct {
	Client metaclient.Client
	now    func() time.Time
}

func NewInstagramPublisher(client metaclient.Client) *InstagramPublisher {
	return &InstagramPublisher{
		Client: client,
		now:    time.Now,
	}
}

func (p *InstagramPublisher) Platform() domain.Platform {
	return domain.PlatformInstagram
}

func (p *InstagramPublisher) Dimensions(mediaType domain.MediaType) (domain.Dimensions, bool) {
	return domain.PresetDimensions(string(domain.PlatformInstagram), mediaType)
}

// Publish cria o container de mídia e em seguida publica; qualquer etapa com erro aborta
func (p *InstagramPublisher) Publish(ctx context.Context, req *domain.PublishRequest) (*domain.PublishResult, error) {
	if req.Content.ImageURL == "" {
		return failedResult(domain.PlatformInstagram, p.now(), "Instagram exige imageUrl"), nil
	}

	igUserID := targetID(req.Credential)
	logger := logrus.WithFields(logrus.Fields{
		"platform":   domain.PlatformInstagram,
		"user_id":    req.Credential.UserID,
		"ig_user_id": igUserID,
	})

	params := url.Values{}
	params.Add("image_url", req.Content.ImageURL)
	params.Add("caption", req.Narrative)

	container, err := p.Client.CreateMediaContainer(ctx, req.Credential.AccessToken, igUserID, params)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.WithError(err).Error("Erro ao criar container de mídia do Instagram")
		return failedResult(domain.PlatformInstagram, p.now(), fmt.Sprintf("erro ao criar container: %v", err)), nil
	}

	published, err := p.Client.PublishMediaContainer(ctx, req.Credential.AccessToken, igUserID, container.ID)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.WithError(err).WithField("container_id", container.ID).Error("Erro ao publicar container do Instagram")
		return failedResult(domain.PlatformInstagram, p.now(), fmt.Sprintf("erro ao publicar container: %v", err)), nil
	}

	return &domain.PublishResult{
		Success:   true,
		PostID:    published.ID,
		URL:       fmt.Sprintf("https://www.instagram.com/p/%s", published.ID),
		Platform:  domain.PlatformInstagram,
		Timestamp: p.now(),
	}, nil
}
