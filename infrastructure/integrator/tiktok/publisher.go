package tiktok

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
)

type Publisher struct {
	Client Client
	now    func() time.Time
}

func NewPublisher(client Client) *Publisher {
	return &Publisher{
		Client: client,
		now:    time.Now,
	}
}

func (p *Publisher) Platform() domain.Platform {
	return domain.PlatformTikTok
}

func (p *Publisher) Dimensions(mediaType domain.MediaType) (domain.Dimensions, bool) {
	return domain.PresetDimensions(string(domain.PlatformTikTok), mediaType)
}

// Publish faz o upload por URL e depois publica o vídeo
func (p *Publisher) Publish(ctx context.Context, req *domain.PublishRequest) (*domain.PublishResult, error) {
	if req.Content.VideoURL == "" {
		return p.failed("TikTok exige videoUrl"), nil
	}

	logger := logrus.WithFields(logrus.Fields{
		"platform": domain.PlatformTikTok,
		"user_id":  req.Credential.UserID,
	})

	publishID, err := p.Client.InitUpload(ctx, req.Credential.AccessToken, &InitRequest{
		PostInfo: PostInfo{
			Title:        req.Narrative,
			PrivacyLevel: privacyPublic,
		},
		SourceInfo: SourceInfo{
			Source:   sourcePullURL,
			VideoURL: req.Content.VideoURL,
		},
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.WithError(err).Error("Erro no upload do vídeo para o TikTok")
		return p.failed(err.Error()), nil
	}

	status, err := p.Client.Publish(ctx, req.Credential.AccessToken, publishID)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.WithError(err).WithField("publish_id", publishID).Error("Erro ao publicar vídeo no TikTok")
		return p.failed(err.Error()), nil
	}

	postID := publishID
	if len(status.Data.PostIDs) > 0 {
		postID = status.Data.PostIDs[0]
	}

	return &domain.PublishResult{
		Success:   true,
		PostID:    postID,
		URL:       fmt.Sprintf("https://www.tiktok.com/video/%s", postID),
		Platform:  domain.PlatformTikTok,
		Timestamp: p.now(),
	}, nil
}

func (p *Publisher) failed(message string) *domain.PublishResult {
	return &domain.PublishResult{
		Success:   false,
		Error:     message,
		Platform:  domain.PlatformTikTok,
		Timestamp: p.now(),
	}
}
