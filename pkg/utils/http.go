package utils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HTTPError é devolvido quando a resposta não tem status 2xx
type HTTPError struct {
	URL        string
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("Error on Request: %s status: %d body: %s", e.URL, e.StatusCode, string(e.Body))
}

// MakeRequest envia payload como JSON quando não for nil e devolve o corpo da resposta
func MakeRequest(ctx context.Context, client *http.Client, method, url string, payload any, headers map[string]string) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		buffer, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao serializar payload")
		}
		body = bytes.NewReader(buffer)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao fazer a requisição")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{URL: url, StatusCode: resp.StatusCode, Body: data}
	}

	return data, nil
}
