package engagement

import (
	"strings"
	"unicode"

	"github.com/vfg2006/commercial-publisher-api/pkg/utils"
)

type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

type SentimentResult struct {
	Label SentimentLabel `json:"label"`
	// Score vai de -1 (negativo) a 1 (positivo)
	Score float64 `json:"score"`
}

// SentimentAnalyzer classifica comentários e mensagens por léxico
type SentimentAnalyzer struct {
	positive map[string]bool
	negative map[string]bool
}

func NewSentimentAnalyzer() *SentimentAnalyzer {
	return &SentimentAnalyzer{
		positive: toSet("amei", "adorei", "otimo", "ótimo", "excelente", "lindo", "linda", "perfeito", "perfeita",
			"bom", "boa", "maravilhoso", "maravilhosa", "top", "quero", "recomendo", "incrivel", "incrível", "gostei"),
		negative: toSet("ruim", "pessimo", "péssimo", "horrivel", "horrível", "caro", "cara", "odiei", "defeito",
			"demora", "demorou", "problema", "golpe", "nunca", "decepcionado", "decepcionada", "fraco"),
	}
}

func (a *SentimentAnalyzer) Analyze(text string) SentimentResult {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	positive, negative := 0, 0
	for _, word := range words {
		switch {
		case a.positive[word]:
			positive++
		case a.negative[word]:
			negative++
		}
	}

	if positive+negative == 0 {
		return SentimentResult{Label: SentimentNeutral}
	}

	score := utils.RoundWithTwoDecimalPlace(float64(positive-negative) / float64(positive+negative))
	switch {
	case score > 0:
		return SentimentResult{Label: SentimentPositive, Score: score}
	case score < 0:
		return SentimentResult{Label: SentimentNegative, Score: score}
	default:
		return SentimentResult{Label: SentimentNeutral}
	}
}

func toSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
