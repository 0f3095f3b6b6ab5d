package domain

import "time"

// PlatformCredential vem do armazenamento externo de credenciais; chave (UserID, Platform)
type PlatformCredential struct {
	UserID       string     `json:"user_id"`
	Platform     Platform   `json:"platform"`
	AccountID    string     `json:"account_id,omitempty"`
	AccessToken  string     `json:"-"`
	RefreshToken string     `json:"-"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	IsConnected  bool       `json:"is_connected"`
}

// IsUsable indica se a credencial pode ser usada para publicar no instante now
func (c *PlatformCredential) IsUsable(now time.Time) bool {
	if c == nil || !c.IsConnected {
		return false
	}
	if len(c.AccessToken) < MinAccessTokenLength {
		return false
	}
	if c.ExpiresAt != nil && !c.ExpiresAt.After(now) {
		return false
	}
	return true
}

type PublishRequest struct {
	Credential *PlatformCredential
	Narrative  string
	Content    JobContent
}

type PublishResult struct {
	Success   bool      `json:"success"`
	PostID    string    `json:"post_id,omitempty"`
	URL       string    `json:"url,omitempty"`
	Error     string    `json:"error,omitempty"`
	Platform  Platform  `json:"platform"`
	Timestamp time.Time `json:"timestamp"`
}

type PublishedPostStatus string

const PublishedPostStatusPublished PublishedPostStatus = "published"

// EngagementMetrics é o blob JSON de engajamento de um post publicado
type EngagementMetrics struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
	Views    int `json:"views"`
}

type PublishedPost struct {
	ID                string              `json:"id"`
	JobID             string              `json:"job_id"`
	UserID            string              `json:"user_id"`
	CommercialID      string              `json:"commercial_id"`
	Platform          Platform            `json:"platform"`
	PlatformPostID    string              `json:"platform_post_id"`
	Title             string              `json:"title"`
	Description       string              `json:"description"`
	MediaURL          string              `json:"media_url"`
	PostURL           string              `json:"post_url,omitempty"`
	Status            PublishedPostStatus `json:"status"`
	EngagementMetrics EngagementMetrics   `json:"engagement_metrics"`
	PublishedAt       time.Time           `json:"published_at"`
}

// ProductContent é o produto extraído da página da loja
type ProductContent struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Images      []string `json:"images"`
	StoreName   string   `json:"store_name"`
	URL         string   `json:"url"`
}

// ToJobContent monta o conteúdo do comercial a partir do produto
func (p *ProductContent) ToJobContent() JobContent {
	content := JobContent{
		Title:       p.Name,
		Description: p.Description,
	}
	if len(p.Images) > 0 {
		content.ImageURL = p.Images[0]
	}
	return content
}
