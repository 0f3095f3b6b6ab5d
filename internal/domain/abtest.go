package domain

import "time"

// MetricType é o contador incrementado em uma variante
type MetricType string

const (
	MetricImpression MetricType = "impressao"
	MetricClick      MetricType = "clique"
	MetricEngagement MetricType = "engajamento"
	MetricConversion MetricType = "conversao"
)

func (m MetricType) IsValid() bool {
	switch m {
	case MetricImpression, MetricClick, MetricEngagement, MetricConversion:
		return true
	default:
		return false
	}
}

// NarrativeVariant é uma variante de narrativa dentro de um teste A/B
type NarrativeVariant struct {
	ID                string  `json:"id"`
	TestID            string  `json:"teste_id"`
	Name              string  `json:"nome"`
	Content           string  `json:"conteudo"`
	TrafficPercentage float64 `json:"porcentagem_trafego"`
}

type VariantMetrics struct {
	VariantID      string  `json:"variante_id"`
	Impressions    int     `json:"impressoes"`
	Clicks         int     `json:"cliques"`
	Engagements    int     `json:"engajamentos"`
	Conversions    int     `json:"conversoes"`
	ClickRate      float64 `json:"taxa_clique"`
	EngagementRate float64 `json:"taxa_engajamento"`
	ConversionRate float64 `json:"taxa_conversao"`
}

// Recalculate recompõe as taxas (percentuais) a partir dos contadores
func (m *VariantMetrics) Recalculate() {
	m.ClickRate = percentage(m.Clicks, m.Impressions)
	m.EngagementRate = percentage(m.Engagements, m.Impressions)
	m.ConversionRate = percentage(m.Conversions, m.Clicks)
}

func percentage(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) * 100 / float64(denominator)
}

type ABTest struct {
	ID          string              `json:"id"`
	Name        string              `json:"nome"`
	Description string              `json:"descricao"`
	Platform    Platform            `json:"plataforma"`
	Variants    []*NarrativeVariant `json:"variantes"`
	Active      bool                `json:"ativo"`
	StartedAt   time.Time           `json:"data_inicio"`
	EndedAt     *time.Time          `json:"data_fim,omitempty"`
	WinnerID    string              `json:"vencedor,omitempty"`
}

type VariantInput struct {
	Name    string `json:"nome" validate:"required"`
	Content string `json:"conteudo" validate:"required"`
}

type CreateABTestRequest struct {
	Name        string         `json:"nome" validate:"required"`
	Description string         `json:"descricao"`
	Platform    string         `json:"plataforma" validate:"required,platform"`
	Variants    []VariantInput `json:"variantes" validate:"required,min=2,dive"`
}

type RankedVariant struct {
	Position int               `json:"posicao"`
	Variant  *NarrativeVariant `json:"variante"`
	Metrics  VariantMetrics    `json:"metricas"`
}

type ABTestReport struct {
	Test       *ABTest         `json:"teste"`
	Ranking    []RankedVariant `json:"ranking"`
	Winner     *RankedVariant  `json:"vencedor,omitempty"`
	Confidence float64         `json:"confianca"`
	// ZScore vem do teste de duas proporções sobre as taxas de engajamento das duas primeiras
	ZScore float64 `json:"z_score"`
}

type Recommendation string

const (
	RecommendationKeepTesting  Recommendation = "Continue testando: ainda não há confiança suficiente para escolher uma variante"
	RecommendationAdoptWinner  Recommendation = "Adote a variante vencedora"
	RecommendationLeaningTrend Recommendation = "Tendência favorável à variante líder; colete mais dados antes de decidir"
)
