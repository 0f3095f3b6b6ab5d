package youtube

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
)

const (
	DefaultPrivacyStatus = "public"

	// categoria "People & Blogs"
	defaultCategoryID = "22"
	maxTitleLength    = 100
)

type Publisher struct {
	Client        Client
	PrivacyStatus string
	now           func() time.Time
}

func NewPublisher(client Client, privacyStatus string) *Publisher {
	if privacyStatus == "" {
		privacyStatus = DefaultPrivacyStatus
	}

	return &Publisher{
		Client:        client,
		PrivacyStatus: privacyStatus,
		now:           time.Now,
	}
}

func (p *Publisher) Platform() domain.Platform {
	return domain.PlatformYouTube
}

func (p *Publisher) Dimensions(mediaType domain.MediaType) (domain.Dimensions, bool) {
	return domain.PresetDimensions(string(domain.PlatformYouTube), mediaType)
}

func (p *Publisher) Publish(ctx context.Context, req *domain.PublishRequest) (*domain.PublishResult, error) {
	if req.Content.VideoURL == "" {
		return p.failed("YouTube exige videoUrl"), nil
	}

	response, err := p.Client.Upload(ctx, req.Credential.AccessToken, &UploadRequest{
		Snippet: Snippet{
			Title:       truncate(req.Content.Title, maxTitleLength),
			Description: req.Narrative,
			Tags:        hashtags(req.Narrative),
			CategoryID:  defaultCategoryID,
		},
		Status:    Status{PrivacyStatus: p.PrivacyStatus},
		SourceURL: req.Content.VideoURL,
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logrus.WithFields(logrus.Fields{
			"platform": domain.PlatformYouTube,
			"user_id":  req.Credential.UserID,
			"error":    err.Error(),
		}).Error("Erro ao publicar vídeo no YouTube")
		return p.failed(err.Error()), nil
	}

	return &domain.PublishResult{
		Success:   true,
		PostID:    response.ID,
		URL:       fmt.Sprintf("https://www.youtube.com/watch?v=%s", response.ID),
		Platform:  domain.PlatformYouTube,
		Timestamp: p.now(),
	}, nil
}

func (p *Publisher) failed(message string) *domain.PublishResult {
	return &domain.PublishResult{
		Success:   false,
		Error:     message,
		Platform:  domain.PlatformYouTube,
		Timestamp: p.now(),
	}
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}

// hashtags extrai as hashtags da narrativa para usar como tags do vídeo
func hashtags(text string) []string {
	tags := make([]string, 0)
	for _, word := range strings.Fields(text) {
		if strings.HasPrefix(word, "#") && len(word) > 1 {
			tags = append(tags, strings.TrimPrefix(word, "#"))
		}
	}
	return tags
}
