package youtube

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/commercial-publisher-api/internal/config"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
)

func newRequest(content domain.JobContent) *domain.PublishRequest {
	return &domain.PublishRequest{
		Credential: &domain.PlatformCredential{
			UserID:      "user-1",
			AccessToken: "token-de-acesso-com-tamanho-valido",
			IsConnected: true,
		},
		Narrative: "Conheça a nova coleção #moda #verao",
		Content:   content,
	}
}

func newPublisher(serverURL, privacy string) *Publisher {
	cfg := &config.Config{YouTube: config.YouTube{BaseURL: serverURL}}
	return NewPublisher(NewClient(cfg, &http.Client{Timeout: 5 * time.Second}), privacy)
}

func TestPublisher_Publish(t *testing.T) {
	t.Run("Envio único com privacidade pública por padrão", func(t *testing.T) {
		var received UploadRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/upload/youtube/v3/videos", r.URL.Path)
			assert.Equal(t, "snippet,status", r.URL.Query().Get("part"))
			assert.Equal(t, "Bearer token-de-acesso-com-tamanho-valido", r.Header.Get("Authorization"))

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &received))

			_, _ = w.Write([]byte(`{"id":"yt-1","status":{"privacyStatus":"public"}}`))
		}))
		defer server.Close()

		result, err := newPublisher(server.URL, "").Publish(context.Background(), newRequest(domain.JobContent{
			Title:    strings.Repeat("t", 120),
			VideoURL: "http://v",
		}))

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "yt-1", result.PostID)
		assert.Equal(t, "https://www.youtube.com/watch?v=yt-1", result.URL)

		assert.Equal(t, "public", received.Status.PrivacyStatus)
		assert.Len(t, received.Snippet.Title, 100)
		assert.Equal(t, []string{"moda", "verao"}, received.Snippet.Tags)
		assert.Equal(t, "http://v", received.SourceURL)
	})

	t.Run("Privacidade configurada é respeitada", func(t *testing.T) {
		var received UploadRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &received))
			_, _ = w.Write([]byte(`{"id":"yt-2"}`))
		}))
		defer server.Close()

		result, err := newPublisher(server.URL, "unlisted").Publish(context.Background(), newRequest(domain.JobContent{
			Title:    "X",
			VideoURL: "http://v",
		}))

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "unlisted", received.Status.PrivacyStatus)
	})

	t.Run("Erro da API vira resultado com falha", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":{"code":403,"message":"quotaExceeded"}}`))
		}))
		defer server.Close()

		result, err := newPublisher(server.URL, "").Publish(context.Background(), newRequest(domain.JobContent{
			Title:    "X",
			VideoURL: "http://v",
		}))

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "quotaExceeded")
	})

	t.Run("Sem vídeo é rejeitado", func(t *testing.T) {
		result, err := newPublisher("http://127.0.0.1:0", "").Publish(context.Background(), newRequest(domain.JobContent{
			Title:    "X",
			ImageURL: "http://i",
		}))

		require.NoError(t, err)
		assert.False(t, result.Success)
	})

	t.Run("Contexto cancelado é propagado", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := newPublisher(server.URL, "").Publish(ctx, newRequest(domain.JobContent{
			Title:    "X",
			VideoURL: "http://v",
		}))

		assert.Nil(t, result)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
