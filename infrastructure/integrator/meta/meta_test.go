package meta

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/commercial-publisher-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/commercial-publisher-api/internal/config"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
)

type graphCall struct {
	Path   string
	Params map[string]string
}

// newGraphServer responde por caminho; caminhos sem resposta configurada devolvem 500
func newGraphServer(t *testing.T, responses map[string]struct {
	status int
	body   string
}) (*httptest.Server, func() []graphCall) {
	t.Helper()

	var (
		mu    sync.Mutex
		calls []graphCall
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())

		params := make(map[string]string)
		for key := range r.Form {
			params[key] = r.Form.Get(key)
		}

		path := strings.TrimPrefix(r.URL.Path, "/v22.0/")
		mu.Lock()
		calls = append(calls, graphCall{Path: path, Params: params})
		mu.Unlock()

		response, ok := responses[path]
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"message":"unexpected","code":1}}`))
			return
		}
		w.WriteHeader(response.status)
		_, _ = w.Write([]byte(response.body))
	}))
	t.Cleanup(server.Close)

	return server, func() []graphCall {
		mu.Lock()
		defer mu.Unlock()
		return append([]graphCall(nil), calls...)
	}
}

func newTestClient(serverURL string) metaclient.Client {
	cfg := &config.Config{
		Meta: config.Meta{
			URL:       serverURL + "/v22.0",
			AppID:     "app-id",
			AppSecret: "app-secret",
		},
	}
	return metaclient.NewClient(cfg, &http.Client{Timeout: 5 * time.Second})
}

func newRequest(content domain.JobContent) *domain.PublishRequest {
	return &domain.PublishRequest{
		Credential: &domain.PlatformCredential{
			UserID:      "user-1",
			AccountID:   "page-1",
			AccessToken: "token-de-acesso-com-tamanho-valido",
			IsConnected: true,
		},
		Narrative: "Narrativa gerada",
		Content:   content,
	}
}

type stubResponse = struct {
	status int
	body   string
}

func TestFacebookPublisher_Publish(t *testing.T) {
	t.Run("Foto publicada e falha em grupo é ignorada", func(t *testing.T) {
		server, calls := newGraphServer(t, map[string]stubResponse{
			"page-1/photos":  {http.StatusOK, `{"id":"photo-1","post_id":"page-1_post-1"}`},
			"group-ok/feed":  {http.StatusOK, `{"id":"group-ok_post-2"}`},
			"group-bad/feed": {http.StatusBadRequest, `{"error":{"message":"sem permissão","type":"OAuthException","code":200}}`},
		})

		publisher := NewFacebookPublisher(newTestClient(server.URL))
		result, err := publisher.Publish(context.Background(), newRequest(domain.JobContent{
			Title:        "X",
			ImageURL:     "http://i",
			TargetGroups: []string{"group-bad", "group-ok"},
		}))

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "page-1_post-1", result.PostID)
		assert.Equal(t, "https://www.facebook.com/page-1_post-1", result.URL)
		assert.Equal(t, domain.PlatformFacebook, result.Platform)

		recorded := calls()
		require.Len(t, recorded, 3)
		assert.Equal(t, "page-1/photos", recorded[0].Path)
		assert.Equal(t, "http://i", recorded[0].Params["url"])
		assert.Equal(t, "Narrativa gerada", recorded[0].Params["caption"])
		assert.Equal(t, "token-de-acesso-com-tamanho-valido", recorded[0].Params["access_token"])
		assert.Equal(t, "group-bad/feed", recorded[1].Path)
		assert.Equal(t, "group-ok/feed", recorded[2].Path)
	})

	t.Run("Vídeo usa o endpoint de vídeos", func(t *testing.T) {
		server, calls := newGraphServer(t, map[string]stubResponse{
			"page-1/videos": {http.StatusOK, `{"id":"video-1"}`},
		})

		publisher := NewFacebookPublisher(newTestClient(server.URL))
		result, err := publisher.Publish(context.Background(), newRequest(domain.JobContent{
			Title:    "X",
			ImageURL: "http://i",
			VideoURL: "http://v",
		}))

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "video-1", result.PostID)

		recorded := calls()
		require.Len(t, recorded, 1)
		assert.Equal(t, "http://v", recorded[0].Params["file_url"])
		assert.Equal(t, "Narrativa gerada", recorded[0].Params["description"])
	})

	t.Run("Sem mídia não chama a API", func(t *testing.T) {
		server, calls := newGraphServer(t, nil)

		publisher := NewFacebookPublisher(newTestClient(server.URL))
		result, err := publisher.Publish(context.Background(), newRequest(domain.JobContent{Title: "X"}))

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.NotEmpty(t, result.Error)
		assert.Empty(t, calls())
	})

	t.Run("Sem conta publica em me", func(t *testing.T) {
		server, _ := newGraphServer(t, map[string]stubResponse{
			"me/photos": {http.StatusOK, `{"id":"photo-9"}`},
		})

		req := newRequest(domain.JobContent{Title: "X", ImageURL: "http://i"})
		req.Credential.AccountID = ""

		result, err := NewFacebookPublisher(newTestClient(server.URL)).Publish(context.Background(), req)

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "photo-9", result.PostID)
	})

	t.Run("Erro da linha do tempo falha a publicação", func(t *testing.T) {
		server, _ := newGraphServer(t, map[string]stubResponse{
			"page-1/photos": {http.StatusBadRequest, `{"error":{"message":"Error validating access token","type":"OAuthException","code":190}}`},
		})

		result, err := NewFacebookPublisher(newTestClient(server.URL)).Publish(context.Background(), newRequest(domain.JobContent{
			Title:    "X",
			ImageURL: "http://i",
		}))

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "expirado")
	})
}

func TestInstagramPublisher_Publish(t *testing.T) {
	t.Run("Container criado e publicado", func(t *testing.T) {
		server, calls := newGraphServer(t, map[string]stubResponse{
			"page-1/media":         {http.StatusOK, `{"id":"container-1"}`},
			"page-1/media_publish": {http.StatusOK, `{"id":"media-1"}`},
		})

		result, err := NewInstagramPublisher(newTestClient(server.URL)).Publish(context.Background(), newRequest(domain.JobContent{
			Title:    "X",
			ImageURL: "http://i",
		}))

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "media-1", result.PostID)
		assert.Equal(t, domain.PlatformInstagram, result.Platform)

		recorded := calls()
		require.Len(t, recorded, 2)
		assert.Equal(t, "http://i", recorded[0].Params["image_url"])
		assert.Equal(t, "container-1", recorded[1].Params["creation_id"])
	})

	t.Run("Falha no container aborta antes da publicação", func(t *testing.T) {
		server, calls := newGraphServer(t, map[string]stubResponse{
			"page-1/media": {http.StatusBadRequest, `{"error":{"message":"imagem inválida","code":100}}`},
		})

		result, err := NewInstagramPublisher(newTestClient(server.URL)).Publish(context.Background(), newRequest(domain.JobContent{
			Title:    "X",
			ImageURL: "http://i",
		}))

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "erro ao criar container")
		assert.Len(t, calls(), 1)
	})

	t.Run("Falha na publicação do container", func(t *testing.T) {
		server, _ := newGraphServer(t, map[string]stubResponse{
			"page-1/media": {http.StatusOK, `{"id":"container-1"}`},
		})

		result, err := NewInstagramPublisher(newTestClient(server.URL)).Publish(context.Background(), newRequest(domain.JobContent{
			Title:    "X",
			ImageURL: "http://i",
		}))

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "erro ao publicar container")
	})

	t.Run("Sem imagem é rejeitado", func(t *testing.T) {
		server, calls := newGraphServer(t, nil)

		result, err := NewInstagramPublisher(newTestClient(server.URL)).Publish(context.Background(), newRequest(domain.JobContent{
			Title:    "X",
			VideoURL: "http://v",
		}))

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Empty(t, calls())
	})
}

func TestPublishers_Dimensions(t *testing.T) {
	facebook := NewFacebookPublisher(nil)
	instagram := NewInstagramPublisher(nil)

	dimensions, ok := facebook.Dimensions(domain.MediaTypeImage)
	require.True(t, ok)
	assert.Equal(t, 1200, dimensions.Width)
	assert.Equal(t, 628, dimensions.Height)

	dimensions, ok = instagram.Dimensions(domain.MediaTypeVideo)
	require.True(t, ok)
	assert.Equal(t, 1080, dimensions.Width)
	assert.Equal(t, 1920, dimensions.Height)
}

func TestTokenRefresher_ExchangeLongLivedToken(t *testing.T) {
	server, calls := newGraphServer(t, map[string]stubResponse{
		"oauth/access_token": {http.StatusOK, `{"access_token":"novo-token-longo","token_type":"bearer","expires_in":5184000}`},
	})

	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	refresher := NewTokenRefresher(newTestClient(server.URL))
	refresher.now = func() time.Time { return now }

	token, expiresAt, err := refresher.ExchangeLongLivedToken(context.Background(), "token-antigo")

	require.NoError(t, err)
	assert.Equal(t, "novo-token-longo", token)
	assert.Equal(t, now.Add(59*24*time.Hour), expiresAt)

	recorded := calls()
	require.Len(t, recorded, 1)
	assert.Equal(t, "fb_exchange_token", recorded[0].Params["grant_type"])
	assert.Equal(t, "token-antigo", recorded[0].Params["fb_exchange_token"])
	assert.Equal(t, "app-id", recorded[0].Params["client_id"])
}
