package meta

import (
	"context"
	"time"

	"github.com/vfg2006/commercial-publisher-api/infrastructure/integrator/meta/metaclient"
)

// TokenRefresher adapta a troca de token do Meta para a renovação agendada de credenciais
type TokenRefresher struct {
	Client metaclient.Client
	now    func() time.Time
}

func NewTokenRefresher(client metaclient.Client) *TokenRefresher {
	return &TokenRefresher{
		Client: client,
		now:    time.Now,
	}
}

func (r *TokenRefresher) ExchangeLongLivedToken(ctx context.Context, accessToken string) (string, time.Time, error) {
	tokenResp, err := r.Client.ExchangeLongLivedToken(ctx, accessToken)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenResp.AccessToken, metaclient.CalculateTokenExpiration(r.now(), tokenResp.ExpiresIn), nil
}
