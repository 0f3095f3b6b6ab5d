package metadomain

// PostResponse cobre /feed, /photos e /videos; photos devolve post_id além do id da mídia
type PostResponse struct {
	ID     string `json:"id"`
	PostID string `json:"post_id,omitempty"`
}

func (p *PostResponse) ResolvedID() string {
	if p.PostID != "" {
		return p.PostID
	}
	return p.ID
}

// ContainerResponse é a resposta das etapas de container e publicação do Instagram
type ContainerResponse struct {
	ID string `json:"id"`
}

// TokenResponse representa a resposta da Graph API ao trocar um token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
