package abtesting

import (
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
	"github.com/vfg2006/commercial-publisher-api/pkg/utils"
)

const (
	MinVariants = 2

	// limites da recomendação sobre a confiança heurística
	LowConfidence  = 50.0
	HighConfidence = 95.0
)

// Tracker mantém os testes A/B de narrativa em memória
type Tracker struct {
	mu      sync.Mutex
	tests   map[string]*domain.ABTest
	metrics map[string]map[string]*domain.VariantMetrics

	now    func() time.Time
	random func() float64
	newID  func() (string, error)
}

func NewTracker() *Tracker {
	return &Tracker{
		tests:   make(map[string]*domain.ABTest),
		metrics: make(map[string]map[string]*domain.VariantMetrics),
		now:     time.Now,
		random:  rand.Float64,
		newID:   utils.GenerateID,
	}
}

// CreateTest divide o tráfego igualmente; retorna nil com menos de duas variantes
func (t *Tracker) CreateTest(name, description string, platform domain.Platform, variants []domain.VariantInput) *domain.ABTest {
	if len(variants) < MinVariants || name == "" || !platform.IsValid() {
		return nil
	}

	testID, err := t.newID()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar id do teste A/B")
		return nil
	}

	test := &domain.ABTest{
		ID:          "teste_" + testID,
		Name:        name,
		Description: description,
		Platform:    platform,
		Variants:    make([]*domain.NarrativeVariant, 0, len(variants)),
		Active:      true,
		StartedAt:   t.now(),
	}

	share := 100 / float64(len(variants))
	metrics := make(map[string]*domain.VariantMetrics, len(variants))
	for _, input := range variants {
		variantID, err := t.newID()
		if err != nil {
			logrus.WithError(err).Error("Erro ao gerar id da variante")
			return nil
		}

		variant := &domain.NarrativeVariant{
			ID:                "var_" + variantID,
			TestID:            test.ID,
			Name:              input.Name,
			Content:           input.Content,
			TrafficPercentage: share,
		}
		test.Variants = append(test.Variants, variant)
		metrics[variant.ID] = &domain.VariantMetrics{VariantID: variant.ID}
	}

	t.mu.Lock()
	t.tests[test.ID] = test
	t.metrics[test.ID] = metrics
	t.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"test_id":  test.ID,
		"platform": platform,
		"variants": len(test.Variants),
	}).Info("Teste A/B criado")

	return cloneTest(test)
}

// RecordMetric procura a variante em todos os testes; retorna nil se não existe ou o teste já foi finalizado
func (t *Tracker) RecordMetric(variantID string, metric domain.MetricType) *domain.VariantMetrics {
	if !metric.IsValid() {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for testID, byVariant := range t.metrics {
		m, ok := byVariant[variantID]
		if !ok {
			continue
		}
		if !t.tests[testID].Active {
			return nil
		}

		switch metric {
		case domain.MetricImpression:
			m.Impressions++
		case domain.MetricClick:
			m.Clicks++
		case domain.MetricEngagement:
			m.Engagements++
		case domain.MetricConversion:
			m.Conversions++
		}
		m.Recalculate()

		snapshot := *m
		return &snapshot
	}

	return nil
}

// RandomVariant sorteia pela soma acumulada dos percentuais; sem acerto por arredondamento, fica a primeira
func (t *Tracker) RandomVariant(testID string) *domain.NarrativeVariant {
	t.mu.Lock()
	defer t.mu.Unlock()

	test, ok := t.tests[testID]
	if !ok || len(test.Variants) == 0 {
		return nil
	}

	draw := t.random() * 100
	cumulative := 0.0
	for _, variant := range test.Variants {
		cumulative += variant.TrafficPercentage
		if draw < cumulative {
			v := *variant
			return &v
		}
	}

	v := *test.Variants[0]
	return &v
}

// FinalizeTest escolhe a maior taxa de engajamento (empate fica com a primeira) e congela o teste
func (t *Tracker) FinalizeTest(testID string) *domain.ABTest {
	t.mu.Lock()
	defer t.mu.Unlock()

	test, ok := t.tests[testID]
	if !ok {
		return nil
	}
	if !test.Active {
		return cloneTest(test)
	}

	var winner *domain.NarrativeVariant
	best := -1.0
	for _, variant := range test.Variants {
		rate := t.metrics[testID][variant.ID].EngagementRate
		if rate > best {
			best = rate
			winner = variant
		}
	}

	endedAt := t.now()
	if endedAt.Before(test.StartedAt) {
		endedAt = test.StartedAt
	}

	test.Active = false
	test.EndedAt = &endedAt
	if winner != nil {
		test.WinnerID = winner.ID
	}

	logrus.WithFields(logrus.Fields{
		"test_id":         testID,
		"winner_id":       test.WinnerID,
		"engagement_rate": best,
	}).Info("Teste A/B finalizado")

	return cloneTest(test)
}

// Report ordena as variantes pela taxa de engajamento e calcula a confiança entre as duas primeiras
func (t *Tracker) Report(testID string) *domain.ABTestReport {
	report, _ := t.report(testID)
	return report
}

// report devolve também a confiança sem arredondamento, que é a usada nos limites da recomendação
func (t *Tracker) report(testID string) (*domain.ABTestReport, float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	test, ok := t.tests[testID]
	if !ok {
		return nil, 0
	}

	ranking := make([]domain.RankedVariant, 0, len(test.Variants))
	for _, variant := range test.Variants {
		v := *variant
		ranking = append(ranking, domain.RankedVariant{
			Variant: &v,
			Metrics: *t.metrics[testID][variant.ID],
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Metrics.EngagementRate > ranking[j].Metrics.EngagementRate
	})

	report := &domain.ABTestReport{Test: cloneTest(test)}
	for i := range ranking {
		ranking[i].Position = i + 1
		if test.WinnerID != "" && ranking[i].Variant.ID == test.WinnerID {
			winner := ranking[i]
			report.Winner = &winner
		}
	}
	report.Ranking = ranking

	var confidence float64
	if len(ranking) >= 2 {
		confidence = Confidence(ranking[0].Metrics, ranking[1].Metrics)
		report.Confidence = utils.RoundWithTwoDecimalPlace(confidence)
		report.ZScore = utils.RoundWithTwoDecimalPlace(ZScore(ranking[0].Metrics, ranking[1].Metrics))
	}

	return report, confidence
}

// Recommendation traduz a confiança do relatório em orientação textual
func (t *Tracker) Recommendation(testID string) (domain.Recommendation, bool) {
	report, confidence := t.report(testID)
	if report == nil {
		return "", false
	}
	return RecommendationFor(confidence), true
}

func RecommendationFor(confidence float64) domain.Recommendation {
	switch {
	case confidence < LowConfidence:
		return domain.RecommendationKeepTesting
	case confidence >= HighConfidence:
		return domain.RecommendationAdoptWinner
	default:
		return domain.RecommendationLeaningTrend
	}
}

// Confidence é uma heurística, não significância estatística:
// min(100, |r1-r2| / média(r1,r2) * 100 * sqrt(impressões da líder))
func Confidence(first, second domain.VariantMetrics) float64 {
	r1, r2 := first.EngagementRate, second.EngagementRate
	avg := (r1 + r2) / 2
	if avg == 0 {
		return 0
	}
	return math.Min(100, math.Abs(r1-r2)/avg*100*math.Sqrt(float64(first.Impressions)))
}

// ZScore é o teste z de duas proporções sobre engajamentos/impressões
func ZScore(first, second domain.VariantMetrics) float64 {
	n1, n2 := float64(first.Impressions), float64(second.Impressions)
	if n1 == 0 || n2 == 0 {
		return 0
	}

	p1 := float64(first.Engagements) / n1
	p2 := float64(second.Engagements) / n2
	pooled := float64(first.Engagements+second.Engagements) / (n1 + n2)

	se := math.Sqrt(pooled * (1 - pooled) * (1/n1 + 1/n2))
	if se == 0 {
		return 0
	}
	return (p1 - p2) / se
}

func (t *Tracker) GetTest(testID string) *domain.ABTest {
	t.mu.Lock()
	defer t.mu.Unlock()

	test, ok := t.tests[testID]
	if !ok {
		return nil
	}
	return cloneTest(test)
}

func (t *Tracker) ListTests() []*domain.ABTest {
	t.mu.Lock()
	tests := make([]*domain.ABTest, 0, len(t.tests))
	for _, test := range t.tests {
		tests = append(tests, cloneTest(test))
	}
	t.mu.Unlock()

	sort.Slice(tests, func(i, j int) bool {
		if tests[i].StartedAt.Equal(tests[j].StartedAt) {
			return tests[i].ID < tests[j].ID
		}
		return tests[i].StartedAt.Before(tests[j].StartedAt)
	})
	return tests
}

func cloneTest(test *domain.ABTest) *domain.ABTest {
	c := *test
	c.Variants = make([]*domain.NarrativeVariant, 0, len(test.Variants))
	for _, variant := range test.Variants {
		v := *variant
		c.Variants = append(c.Variants, &v)
	}
	if test.EndedAt != nil {
		endedAt := *test.EndedAt
		c.EndedAt = &endedAt
	}
	return &c
}
