package youtube

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/commercial-publisher-api/internal/config"
	"github.com/vfg2006/commercial-publisher-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const uploadPath = "/upload/youtube/v3/videos?part=snippet,status"

type Snippet struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	CategoryID  string   `json:"categoryId"`
}

type Status struct {
	PrivacyStatus string `json:"privacyStatus"`
}

// UploadRequest envia metadados e a origem do vídeo em uma única chamada
type UploadRequest struct {
	Snippet   Snippet `json:"snippet"`
	Status    Status  `json:"status"`
	SourceURL string  `json:"sourceUrl"`
}

type UploadResponse struct {
	ID     string `json:"id"`
	Status Status `json:"status"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type Client interface {
	Upload(ctx context.Context, accessToken string, req *UploadRequest) (*UploadResponse, error)
}

type YouTubeClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Publishing.HTTPTimeout}
	}

	return &YouTubeClient{
		BaseURL:    cfg.YouTube.BaseURL,
		HTTPClient: httpClient,
	}
}

func (c *YouTubeClient) Upload(ctx context.Context, accessToken string, req *UploadRequest) (*UploadResponse, error) {
	headers := map[string]string{"Authorization": "Bearer " + accessToken}

	body, err := utils.MakeRequest(ctx, c.HTTPClient, http.MethodPost, c.BaseURL+uploadPath, req, headers)
	if err != nil {
		var httpErr *utils.HTTPError
		if errors.As(err, &httpErr) {
			var apiErr errorResponse
			if json.Unmarshal(httpErr.Body, &apiErr) == nil && apiErr.Error.Message != "" {
				return nil, errors.Errorf("YouTube recusou o envio (%d): %s", apiErr.Error.Code, apiErr.Error.Message)
			}
		}
		return nil, errors.Wrap(err, "erro ao enviar vídeo para o YouTube")
	}

	var response UploadResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar resposta do YouTube")
	}

	if response.ID == "" {
		return nil, errors.New("YouTube não retornou o id do vídeo")
	}

	return &response, nil
}
