package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 10
)

// GenerateID gera o sufixo curto dos ids expostos (teste_, var_, com_)
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
