package meta

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/commercial-publisher-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/commercial-publisher-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
)

// defaultTarget publica na linha do tempo do dono do token quando a credencial não aponta uma página
const defaultTarget = "me"

type FacebookPublisher struct {
	Client metaclient.Client
	now    func() time.Time
}

func NewFacebookPublisher(client metaclient.Client) *FacebookPublisher {
	return &FacebookPublisher{
		Client: client,
		now:    time.Now,
	}
}

func (p *FacebookPublisher) Platform() domain.Platform {
	return domain.PlatformFacebook
}

func (p *FacebookPublisher) Dimensions(mediaType domain.MediaType) (domain.Dimensions, bool) {
	return domain.PresetDimensions(string(domain.PlatformFacebook), mediaType)
}

// Publish publica na linha do tempo e replica nos grupos informados.
// Falha em grupo é apenas registrada, não invalida a publicação principal.
func (p *FacebookPublisher) Publish(ctx context.Context, req *domain.PublishRequest) (*domain.PublishResult, error) {
	content := req.Content
	if content.ImageURL == "" && content.VideoURL == "" {
		return failedResult(domain.PlatformFacebook, p.now(), "Facebook exige imageUrl ou videoUrl"), nil
	}

	target := targetID(req.Credential)
	logger := logrus.WithFields(logrus.Fields{
		"platform": domain.PlatformFacebook,
		"user_id":  req.Credential.UserID,
		"target":   target,
	})

	params := url.Values{}
	var (
		response *metadomain.PostResponse
		err      error
	)
	if content.VideoURL != "" {
		params.Add("file_url", content.VideoURL)
		params.Add("title", content.Title)
		params.Add("description", req.Narrative)
		response, err = p.Client.PublishVideo(ctx, req.Credential.AccessToken, target, params)
	} else {
		params.Add("url", content.ImageURL)
		params.Add("caption", req.Narrative)
		response, err = p.Client.PublishPhoto(ctx, req.Credential.AccessToken, target, params)
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.WithError(err).Error("Erro ao publicar na linha do tempo do Facebook")
		return failedResult(domain.PlatformFacebook, p.now(), err.Error()), nil
	}

	postID := response.ResolvedID()
	p.publishToGroups(ctx, req, logger)

	return &domain.PublishResult{
		Success:   true,
		PostID:    postID,
		URL:       fmt.Sprintf("https://www.facebook.com/%s", postID),
		Platform:  domain.PlatformFacebook,
		Timestamp: p.now(),
	}, nil
}

func (p *FacebookPublisher) publishToGroups(ctx context.Context, req *domain.PublishRequest, logger *logrus.Entry) {
	link := req.Content.VideoURL
	if link == "" {
		link = req.Content.ImageURL
	}

	for _, groupID := range req.Content.TargetGroups {
		params := url.Values{}
		params.Add("message", req.Narrative)
		params.Add("link", link)

		response, err := p.Client.PublishFeed(ctx, req.Credential.AccessToken, groupID, params)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"group_id": groupID,
				"error":    err.Error(),
			}).Warn("Falha ao publicar no grupo do Facebook, seguindo com os demais")
			continue
		}

		logger.WithFields(logrus.Fields{
			"group_id": groupID,
			"post_id":  response.ResolvedID(),
		}).Info("Publicação replicada no grupo do Facebook")
	}
}

func targetID(credential *domain.PlatformCredential) string {
	if credential.AccountID != "" {
		return credential.AccountID
	}
	return defaultTarget
}

func failedResult(platform domain.Platform, now time.Time, message string) *domain.PublishResult {
	return &domain.PublishResult{
		Success:   false,
		Error:     message,
		Platform:  platform,
		Timestamp: now,
	}
}
