package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/commercial-publisher-api/infrastructure/integrator/meta/domain"
)

// ExchangeLongLivedToken troca o token do usuário por um de longa duração (fb_exchange_token)
func (c *MetaClient) ExchangeLongLivedToken(ctx context.Context, accessToken string) (*metadomain.TokenResponse, error) {
	if accessToken == "" {
		return nil, errors.New("token de acesso não pode ser vazio")
	}

	params := url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", c.Cfg.Meta.AppID)
	params.Add("client_secret", c.Cfg.Meta.AppSecret)
	params.Add("fb_exchange_token", accessToken)

	requestURL := fmt.Sprintf("%s/oauth/access_token?%s", c.Cfg.Meta.URL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao obter token de longa duração")
	}
	defer resp.Body.Close()

	body, err := HandleResponse(resp)
	if err != nil {
		logrus.WithError(err).Error("Erro obtendo token de longa duração")
		return nil, errors.Wrap(err, "erro ao obter token de longa duração")
	}

	var tokenResp metadomain.TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar resposta")
	}

	if tokenResp.AccessToken == "" {
		return nil, errors.New("token retornado pela API é vazio")
	}

	logrus.Infof("Token de longa duração obtido com sucesso. Expira em %s.", FormatDuration(tokenResp.ExpiresIn))

	return &tokenResp, nil
}

// FormatDuration formata a duração em segundos para um formato legível
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	days := duration / (24 * time.Hour)
	hours := (duration % (24 * time.Hour)) / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d dias, %d horas e %d minutos", days, hours, minutes)
}

// CalculateTokenExpiration desconta um dia do prazo informado pela API para renovar antes da expiração real
func CalculateTokenExpiration(now time.Time, expiresIn int64) time.Time {
	buffer := int64(24 * 60 * 60)
	safeExpiresIn := expiresIn - buffer

	if safeExpiresIn < 0 {
		safeExpiresIn = expiresIn / 2
	}

	return now.Add(time.Duration(safeExpiresIn) * time.Second)
}
