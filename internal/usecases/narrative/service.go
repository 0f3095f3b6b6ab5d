package narrative

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

var ErrNoNarrative = errors.New("não foi possível gerar a narrativa")

// LLM é o modelo de linguagem usado para redigir a narrativa
type LLM interface {
	Enabled() bool
	Complete(ctx context.Context, instructions, input string) (string, error)
}

// Service gera a narrativa pelo LLM e recorre aos templates quando ele falha ou não está configurado
type Service struct {
	llm       LLM
	templates *Templates
}

func NewService(llm LLM, templates *Templates) *Service {
	if templates == nil {
		templates = DefaultTemplates()
	}

	return &Service{
		llm:       llm,
		templates: templates,
	}
}

func (s *Service) Generate(ctx context.Context, platform domain.Platform, content domain.JobContent) (string, error) {
	if !platform.IsValid() {
		return "", fmt.Errorf("plataforma desconhecida: %q", platform)
	}

	logger := logrus.WithFields(logrus.Fields{
		"platform": platform,
		"title":    content.Title,
	})

	if s.llm != nil && s.llm.Enabled() {
		text, err := s.llm.Complete(ctx, instructionsFor(platform), inputFor(content))
		if err == nil && strings.TrimSpace(text) != "" {
			return Enforce(platform, text), nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		logger.WithError(err).Warn("Falha ao gerar narrativa pelo LLM, usando template")
	}

	text, ok := s.templates.RenderFirst(platform, map[string]string{
		"titulo":     content.Title,
		"descricao":  content.Description,
		"plataforma": platform.String(),
	})
	if !ok {
		logger.Error("Nenhum template da plataforma pôde ser preenchido")
		return "", ErrNoNarrative
	}

	return Enforce(platform, text), nil
}

func instructionsFor(platform domain.Platform) string {
	var sb strings.Builder
	sb.WriteString("Você é um redator de anúncios para redes sociais. Responda em português do Brasil, apenas com o texto do anúncio. ")
	fmt.Fprintf(&sb, "O texto será publicado no %s e deve ter no máximo %d caracteres.", platform, platform.MaxNarrativeLength())
	if limit := platform.MaxHashtags(); limit > 0 {
		fmt.Fprintf(&sb, " Use no máximo %d hashtags.", limit)
	}
	return sb.String()
}

func inputFor(content domain.JobContent) string {
	input := "Produto: " + content.Title
	if content.Description != "" {
		input += "\nDescrição: " + content.Description
	}
	return input
}

// Enforce aplica os limites da plataforma: remove hashtags excedentes e corta no limite de caracteres
func Enforce(platform domain.Platform, text string) string {
	text = strings.TrimSpace(text)

	if limit := platform.MaxHashtags(); limit > 0 {
		text = limitHashtags(text, limit)
	}

	if limit := platform.MaxNarrativeLength(); limit > 0 && utf8.RuneCountInString(text) > limit {
		text = truncateAtWord(text, limit)
	}

	return text
}

func limitHashtags(text string, limit int) string {
	lines := strings.Split(text, "\n")
	count := 0
	for i, line := range lines {
		words := strings.Fields(line)
		kept := make([]string, 0, len(words))
		for _, word := range words {
			if strings.HasPrefix(word, "#") {
				count++
				if count > limit {
					continue
				}
			}
			kept = append(kept, word)
		}
		lines[i] = strings.Join(kept, " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func truncateAtWord(text string, limit int) string {
	runes := []rune(text)[:limit]
	cut := string(runes)

	if idx := strings.LastIndexAny(cut, " \n"); idx > len(cut)/2 {
		cut = cut[:idx]
	}

	return strings.TrimSpace(cut)
}
