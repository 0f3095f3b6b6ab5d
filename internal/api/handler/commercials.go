package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commercial-publisher-api/infrastructure/integrator/scraper"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
	"github.com/vfg2006/commercial-publisher-api/internal/usecases/publishing"
	"github.com/vfg2006/commercial-publisher-api/pkg/apiErrors"
	"github.com/vfg2006/commercial-publisher-api/pkg/middleware"
	"github.com/vfg2006/commercial-publisher-api/pkg/utils"
)

type ProductScraper interface {
	Scrape(ctx context.Context, url string) (*domain.ProductContent, error)
}

// PublishProductRequest publica um comercial montado a partir da página do produto
type PublishProductRequest struct {
	URL          string   `json:"url" validate:"required,url"`
	CommercialID string   `json:"commercial_id"`
	Platforms    []string `json:"platforms" validate:"required,min=1,dive,platform"`
	VideoURL     string   `json:"video_url,omitempty" validate:"omitempty,url"`
	TargetGroups []string `json:"target_groups,omitempty"`
	MaxRetries   int      `json:"max_retries,omitempty" validate:"omitempty,min=1"`
}

type PublishProductResponse struct {
	Product *domain.ProductContent `json:"product"`
	Job     *domain.PublishingJob  `json:"job"`
}

func ScrapeProduct(products ProductScraper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url := r.URL.Query().Get("url")
		if url == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro url é obrigatório", nil)
			return
		}

		product, ok := scrape(w, r.Context(), products, url)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, product)
	}
}

func PublishProduct(products ProductScraper, queue publishing.JobQueue) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - PublishProduct")

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req PublishProductRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		product, ok := scrape(w, r.Context(), products, req.URL)
		if !ok {
			return
		}

		content := product.ToJobContent()
		content.VideoURL = req.VideoURL
		content.TargetGroups = req.TargetGroups

		commercialID := req.CommercialID
		if commercialID == "" {
			id, err := utils.GenerateID()
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar identificador do comercial", nil)
				return
			}
			commercialID = "com_" + id
		}

		job, ok := enqueue(w, r, queue, &domain.CreateJobRequest{
			UserID:       claims.UserID,
			CommercialID: commercialID,
			Platforms:    req.Platforms,
			Content:      content,
			MaxRetries:   req.MaxRetries,
		})
		if !ok {
			return
		}

		writeJSON(w, http.StatusAccepted, PublishProductResponse{Product: product, Job: job})
	}
}

func scrape(w http.ResponseWriter, ctx context.Context, products ProductScraper, url string) (*domain.ProductContent, bool) {
	product, err := products.Scrape(ctx, url)
	if err == nil {
		return product, true
	}

	logrus.WithFields(logrus.Fields{
		"url":   url,
		"error": err.Error(),
	}).Warn("Falha ao extrair produto")

	switch {
	case errors.Is(err, scraper.ErrInvalidURL):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, scraper.ErrProductNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), map[string]string{"url": url})
	default:
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao acessar a página do produto", nil)
	}
	return nil, false
}
