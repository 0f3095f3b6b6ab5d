package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
)

func TestStruct(t *testing.T) {
	t.Run("Requisição válida", func(t *testing.T) {
		fields, err := Struct(domain.CreateJobRequest{
			UserID:       "user-1",
			CommercialID: "comercial-1",
			Platforms:    []string{"facebook"},
			Content:      domain.JobContent{Title: "Produto", ImageURL: "https://cdn.loja.com/p.jpg"},
		})

		assert.NoError(t, err)
		assert.Nil(t, fields)
	})

	t.Run("Campos inválidos usam o nome do JSON", func(t *testing.T) {
		fields, err := Struct(domain.CreateJobRequest{
			UserID:    "user-1",
			Platforms: []string{},
			Content:   domain.JobContent{ImageURL: "nao-e-url"},
		})

		require.Error(t, err)
		assert.Equal(t, "required", fields["commercial_id"])
		assert.Equal(t, "min=1", fields["platforms"])
		assert.Equal(t, "required", fields["content.title"])
		assert.Equal(t, "url", fields["content.image_url"])
	})
}

func TestPlatformRule(t *testing.T) {
	type request struct {
		Platform string `json:"platform" validate:"platform"`
	}

	tests := []struct {
		value string
		valid bool
	}{
		{"facebook", true},
		{"YouTube", true},
		{"whatsapp", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			fields, err := Struct(request{Platform: tt.value})
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, "platform", fields["platform"])
		})
	}
}
