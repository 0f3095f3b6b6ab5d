package metaclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/commercial-publisher-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/commercial-publisher-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrTokenExpired indica que a Graph API recusou o token do usuário
var ErrTokenExpired = errors.New("token de acesso do Meta expirado ou invalidado")

type Client interface {
	PublishFeed(ctx context.Context, accessToken, targetID string, params url.Values) (*metadomain.PostResponse, error)
	PublishPhoto(ctx context.Context, accessToken, targetID string, params url.Values) (*metadomain.PostResponse, error)
	PublishVideo(ctx context.Context, accessToken, targetID string, params url.Values) (*metadomain.PostResponse, error)
	CreateMediaContainer(ctx context.Context, accessToken, igUserID string, params url.Values) (*metadomain.ContainerResponse, error)
	PublishMediaContainer(ctx context.Context, accessToken, igUserID, containerID string) (*metadomain.ContainerResponse, error)
	ExchangeLongLivedToken(ctx context.Context, accessToken string) (*metadomain.TokenResponse, error)
}

type MetaClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Publishing.HTTPTimeout}
	}

	return &MetaClient{
		Cfg:        cfg,
		HTTPClient: httpClient,
	}
}

func (c *MetaClient) PublishFeed(ctx context.Context, accessToken, targetID string, params url.Values) (*metadomain.PostResponse, error) {
	var response metadomain.PostResponse
	if err := c.post(ctx, accessToken, targetID+"/feed", params, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *MetaClient) PublishPhoto(ctx context.Context, accessToken, targetID string, params url.Values) (*metadomain.PostResponse, error) {
	var response metadomain.PostResponse
	if err := c.post(ctx, accessToken, targetID+"/photos", params, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *MetaClient) PublishVideo(ctx context.Context, accessToken, targetID string, params url.Values) (*metadomain.PostResponse, error) {
	var response metadomain.PostResponse
	if err := c.post(ctx, accessToken, targetID+"/videos", params, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// CreateMediaContainer é a primeira etapa da publicação no Instagram
func (c *MetaClient) CreateMediaContainer(ctx context.Context, accessToken, igUserID string, params url.Values) (*metadomain.ContainerResponse, error) {
	var response metadomain.ContainerResponse
	if err := c.post(ctx, accessToken, igUserID+"/media", params, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// PublishMediaContainer publica um container já criado
func (c *MetaClient) PublishMediaContainer(ctx context.Context, accessToken, igUserID, containerID string) (*metadomain.ContainerResponse, error) {
	params := url.Values{}
	params.Add("creation_id", containerID)

	var response metadomain.ContainerResponse
	if err := c.post(ctx, accessToken, igUserID+"/media_publish", params, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *MetaClient) post(ctx context.Context, accessToken, path string, params url.Values, out any) error {
	form := url.Values{}
	for key, values := range params {
		form[key] = values
	}
	form.Set("access_token", accessToken)

	endpoint := c.Cfg.Meta.URL + "/" + path

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Error("Erro ao fazer a requisição")
		return errors.Wrapf(err, "erro ao chamar %s", path)
	}
	defer resp.Body.Close()

	body, err := HandleResponse(resp)
	if err != nil {
		return errors.Wrapf(err, "erro na chamada %s", path)
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return errors.Wrap(err, "erro ao decodificar resposta")
	}

	return nil
}

// ParseErrorResponse tenta parsear um erro da Graph API
func ParseErrorResponse(body []byte) (*metadomain.ErrorResponse, error) {
	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil {
		return nil, err
	}
	return &errorResp, nil
}

// HandleResponse devolve o corpo de respostas 2xx e traduz os erros da Graph API
func HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta")
	}

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return body, nil
	}

	errorResp, parseErr := ParseErrorResponse(body)
	if parseErr == nil && errorResp.IsTokenExpired() {
		logrus.Warnf("Token expirado detectado pela API Meta. Código: %d, Subcódigo: %d",
			errorResp.Error.Code, errorResp.Error.ErrorSubcode)
		return nil, errors.Wrap(ErrTokenExpired, errorResp.String())
	}

	if containsTokenExpirationMessage(string(body)) {
		return nil, errors.Wrap(ErrTokenExpired, string(body))
	}

	if parseErr == nil && errorResp.Error.Message != "" {
		return nil, errors.Errorf("erro na resposta da API. Status: %d, Erro: %s", resp.StatusCode, errorResp.String())
	}

	return nil, errors.Errorf("erro na resposta da API. Status: %d, Corpo: %s", resp.StatusCode, string(body))
}

func containsTokenExpirationMessage(message string) bool {
	return strings.Contains(message, "Error validating access token") ||
		strings.Contains(message, "Session has expired") ||
		strings.Contains(message, "The session has been invalidated")
}
