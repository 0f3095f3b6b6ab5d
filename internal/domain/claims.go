package domain

import "github.com/golang-jwt/jwt/v5"

// Claims é o conteúdo do token emitido pelo painel; o usuário já vem autenticado de fora
type Claims struct {
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name,omitempty"`
	UserRoleID int    `json:"role_id"`
	jwt.RegisteredClaims
}
