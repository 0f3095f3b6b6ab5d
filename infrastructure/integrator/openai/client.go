package openai

import (
	"context"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/commercial-publisher-api/internal/config"
	"github.com/vfg2006/commercial-publisher-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrMissingAPIKey = errors.New("OPENAI_API_KEY não configurada")

type responsesRequest struct {
	Model        string `json:"model"`
	Instructions string `json:"instructions"`
	Input        string `json:"input"`
}

type responsesResponse struct {
	Output []struct {
		Type    string `json:"type"`
		Role    string `json:"role"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
}

// Client chama a Responses API e devolve o texto do assistente
type Client struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		APIKey:     strings.TrimSpace(cfg.OpenAI.APIKey),
		BaseURL:    strings.TrimRight(cfg.OpenAI.BaseURL, "/"),
		Model:      cfg.OpenAI.Model,
		HTTPClient: &http.Client{Timeout: cfg.OpenAI.Timeout},
	}
}

func (c *Client) Enabled() bool {
	return c.APIKey != ""
}

func (c *Client) Complete(ctx context.Context, instructions, input string) (string, error) {
	if !c.Enabled() {
		return "", ErrMissingAPIKey
	}

	headers := map[string]string{"Authorization": "Bearer " + c.APIKey}
	payload := responsesRequest{
		Model:        c.Model,
		Instructions: instructions,
		Input:        input,
	}

	body, err := utils.MakeRequest(ctx, c.HTTPClient, http.MethodPost, c.BaseURL+"/responses", payload, headers)
	if err != nil {
		return "", errors.Wrap(err, "erro ao chamar a OpenAI")
	}

	var parsed responsesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", errors.Wrap(err, "erro ao decodificar resposta da OpenAI")
	}

	var sb strings.Builder
	for _, item := range parsed.Output {
		if item.Type != "message" || item.Role != "assistant" {
			continue
		}
		for _, content := range item.Content {
			if content.Type == "output_text" && strings.TrimSpace(content.Text) != "" {
				if sb.Len() > 0 {
					sb.WriteString("\n")
				}
				sb.WriteString(content.Text)
			}
		}
	}

	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", errors.New("resposta vazia do modelo")
	}

	return out, nil
}
