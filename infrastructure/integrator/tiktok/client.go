package tiktok

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/commercial-publisher-api/internal/config"
	"github.com/vfg2006/commercial-publisher-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	initPath   = "/v2/post/publish/video/init/"
	statusPath = "/v2/post/publish/status/fetch/"

	privacyPublic = "PUBLIC_TO_EVERYONE"
	sourcePullURL = "PULL_FROM_URL"
	statusFailed  = "FAILED"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	LogID   string `json:"log_id"`
}

type InitRequest struct {
	PostInfo   PostInfo   `json:"post_info"`
	SourceInfo SourceInfo `json:"source_info"`
}

type PostInfo struct {
	Title        string `json:"title"`
	PrivacyLevel string `json:"privacy_level"`
}

type SourceInfo struct {
	Source   string `json:"source"`
	VideoURL string `json:"video_url"`
}

type initResponse struct {
	Data struct {
		PublishID string `json:"publish_id"`
	} `json:"data"`
	Error apiError `json:"error"`
}

type StatusResponse struct {
	Data struct {
		Status  string   `json:"status"`
		PostIDs []string `json:"publicaly_available_post_id"`
		Reason  string   `json:"fail_reason"`
	} `json:"data"`
	Error apiError `json:"error"`
}

type Client interface {
	InitUpload(ctx context.Context, accessToken string, req *InitRequest) (string, error)
	Publish(ctx context.Context, accessToken, publishID string) (*StatusResponse, error)
}

type TikTokClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Publishing.HTTPTimeout}
	}

	return &TikTokClient{
		BaseURL:    cfg.TikTok.BaseURL,
		HTTPClient: httpClient,
	}
}

// InitUpload registra o vídeo para envio por URL e devolve o publish_id
func (c *TikTokClient) InitUpload(ctx context.Context, accessToken string, req *InitRequest) (string, error) {
	body, err := utils.MakeRequest(ctx, c.HTTPClient, http.MethodPost, c.BaseURL+initPath, req, authHeaders(accessToken))
	if err != nil {
		return "", errors.Wrap(err, "erro ao iniciar upload no TikTok")
	}

	var response initResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", errors.Wrap(err, "erro ao decodificar resposta do TikTok")
	}

	if response.Error.Code != "" && response.Error.Code != "ok" {
		return "", errors.Errorf("TikTok recusou o upload: %s (%s)", response.Error.Message, response.Error.Code)
	}
	if response.Data.PublishID == "" {
		return "", errors.New("TikTok não retornou publish_id")
	}

	return response.Data.PublishID, nil
}

// Publish confirma a publicação do upload iniciado
func (c *TikTokClient) Publish(ctx context.Context, accessToken, publishID string) (*StatusResponse, error) {
	payload := map[string]string{"publish_id": publishID}

	body, err := utils.MakeRequest(ctx, c.HTTPClient, http.MethodPost, c.BaseURL+statusPath, payload, authHeaders(accessToken))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao publicar no TikTok")
	}

	var response StatusResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar resposta do TikTok")
	}

	if response.Error.Code != "" && response.Error.Code != "ok" {
		return nil, errors.Errorf("TikTok recusou a publicação: %s (%s)", response.Error.Message, response.Error.Code)
	}
	if response.Data.Status == statusFailed {
		return nil, errors.Errorf("TikTok falhou ao processar o vídeo: %s", response.Data.Reason)
	}

	return &response, nil
}

func authHeaders(accessToken string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + accessToken}
}
