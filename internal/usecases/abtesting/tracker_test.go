package abtesting

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
)

func newTestTracker() *Tracker {
	tracker := NewTracker()
	seq := 0
	tracker.newID = func() (string, error) {
		seq++
		return fmt.Sprintf("%03d", seq), nil
	}
	tracker.now = func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC) }
	return tracker
}

func variants(n int) []domain.VariantInput {
	inputs := make([]domain.VariantInput, 0, n)
	for i := 0; i < n; i++ {
		inputs = append(inputs, domain.VariantInput{Name: fmt.Sprintf("Variante %d", i+1), Content: fmt.Sprintf("Texto %d", i+1)})
	}
	return inputs
}

func record(tracker *Tracker, variantID string, metric domain.MetricType, times int) {
	for i := 0; i < times; i++ {
		tracker.RecordMetric(variantID, metric)
	}
}

func TestTracker_CreateTest(t *testing.T) {
	tracker := newTestTracker()

	t.Run("Quatro variantes recebem 25% cada", func(t *testing.T) {
		test := tracker.CreateTest("Teste", "", domain.PlatformInstagram, variants(4))

		require.NotNil(t, test)
		require.Len(t, test.Variants, 4)
		for _, v := range test.Variants {
			assert.Equal(t, 25.0, v.TrafficPercentage)
			assert.Equal(t, test.ID, v.TestID)
		}
		assert.True(t, test.Active)
		assert.Nil(t, test.EndedAt)
	})

	t.Run("Três variantes somam 100", func(t *testing.T) {
		test := tracker.CreateTest("Teste", "", domain.PlatformFacebook, variants(3))

		require.NotNil(t, test)
		sum := 0.0
		for _, v := range test.Variants {
			assert.InDelta(t, 33.33, v.TrafficPercentage, 0.01)
			sum += v.TrafficPercentage
		}
		assert.InDelta(t, 100, sum, 1e-9)
	})

	t.Run("Menos de duas variantes é rejeitado", func(t *testing.T) {
		assert.Nil(t, tracker.CreateTest("Teste", "", domain.PlatformFacebook, variants(1)))
		assert.Nil(t, tracker.CreateTest("Teste", "", domain.PlatformFacebook, nil))
	})

	t.Run("Plataforma desconhecida é rejeitada", func(t *testing.T) {
		assert.Nil(t, tracker.CreateTest("Teste", "", domain.Platform("orkut"), variants(2)))
	})

	t.Run("Falha ao gerar id", func(t *testing.T) {
		broken := NewTracker()
		broken.newID = func() (string, error) { return "", fmt.Errorf("sem entropia") }
		assert.Nil(t, broken.CreateTest("Teste", "", domain.PlatformFacebook, variants(2)))
	})
}

func TestTracker_RecordMetric(t *testing.T) {
	tracker := newTestTracker()
	test := tracker.CreateTest("Teste", "", domain.PlatformFacebook, variants(2))
	require.NotNil(t, test)
	variantID := test.Variants[0].ID

	initial := tracker.RecordMetric(variantID, domain.MetricClick)
	require.NotNil(t, initial)
	assert.Equal(t, 1, initial.Clicks)
	assert.Zero(t, initial.ClickRate)
	assert.Zero(t, initial.EngagementRate)

	record(tracker, variantID, domain.MetricImpression, 100)
	record(tracker, variantID, domain.MetricClick, 9)
	record(tracker, variantID, domain.MetricEngagement, 20)
	record(tracker, variantID, domain.MetricConversion, 1)
	metrics := tracker.RecordMetric(variantID, domain.MetricConversion)

	require.NotNil(t, metrics)
	assert.Equal(t, 100, metrics.Impressions)
	assert.Equal(t, 10, metrics.Clicks)
	assert.Equal(t, 20, metrics.Engagements)
	assert.Equal(t, 2, metrics.Conversions)
	assert.Equal(t, 10.0, metrics.ClickRate)
	assert.Equal(t, 20.0, metrics.EngagementRate)
	assert.Equal(t, 20.0, metrics.ConversionRate)

	// A outra variante não é afetada
	other := tracker.Report(test.ID).Ranking[1].Metrics
	assert.Equal(t, domain.VariantMetrics{VariantID: test.Variants[1].ID}, other)

	assert.Nil(t, tracker.RecordMetric("inexistente", domain.MetricClick))
	assert.Nil(t, tracker.RecordMetric(variantID, domain.MetricType("compartilhamento")))

	tracker.FinalizeTest(test.ID)
	assert.Nil(t, tracker.RecordMetric(variantID, domain.MetricClick))
}

func TestTracker_RandomVariant(t *testing.T) {
	tracker := newTestTracker()
	test := tracker.CreateTest("Teste", "", domain.PlatformTikTok, variants(4))
	require.NotNil(t, test)

	tests := []struct {
		draw     float64
		expected int
	}{
		{0, 0},
		{0.249, 0},
		{0.25, 1},
		{0.6, 2},
		{0.99, 3},
		// arredondamento deixando o sorteio fora do acumulado
		{1.0, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("sorteio %.3f", tt.draw), func(t *testing.T) {
			tracker.random = func() float64 { return tt.draw }

			variant := tracker.RandomVariant(test.ID)
			require.NotNil(t, variant)
			assert.Equal(t, test.Variants[tt.expected].ID, variant.ID)
		})
	}

	assert.Nil(t, tracker.RandomVariant("inexistente"))
}

func TestTracker_FinalizeTest(t *testing.T) {
	tracker := newTestTracker()
	test := tracker.CreateTest("Teste", "", domain.PlatformInstagram, variants(2))
	require.NotNil(t, test)

	first, second := test.Variants[0].ID, test.Variants[1].ID

	// 8.5% para a primeira, 12% para a segunda
	record(tracker, first, domain.MetricImpression, 200)
	record(tracker, first, domain.MetricEngagement, 17)
	record(tracker, second, domain.MetricImpression, 100)
	record(tracker, second, domain.MetricEngagement, 12)

	tracker.now = func() time.Time { return time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC) }

	finalized := tracker.FinalizeTest(test.ID)

	require.NotNil(t, finalized)
	assert.Equal(t, second, finalized.WinnerID)
	assert.False(t, finalized.Active)
	require.NotNil(t, finalized.EndedAt)
	assert.False(t, finalized.EndedAt.Before(finalized.StartedAt))

	// Finalizar de novo não muda o vencedor
	record(tracker, first, domain.MetricEngagement, 50)
	again := tracker.FinalizeTest(test.ID)
	assert.Equal(t, second, again.WinnerID)
	assert.Equal(t, finalized.EndedAt, again.EndedAt)

	assert.Nil(t, tracker.FinalizeTest("inexistente"))
}

func TestTracker_FinalizeTestTieKeepsFirst(t *testing.T) {
	tracker := newTestTracker()
	test := tracker.CreateTest("Teste", "", domain.PlatformFacebook, variants(3))
	require.NotNil(t, test)

	for _, v := range test.Variants[1:] {
		record(tracker, v.ID, domain.MetricImpression, 10)
		record(tracker, v.ID, domain.MetricEngagement, 5)
	}

	finalized := tracker.FinalizeTest(test.ID)
	assert.Equal(t, test.Variants[1].ID, finalized.WinnerID)
}

func TestTracker_Report(t *testing.T) {
	tracker := newTestTracker()
	test := tracker.CreateTest("Teste", "", domain.PlatformFacebook, variants(3))
	require.NotNil(t, test)

	a, b, c := test.Variants[0].ID, test.Variants[1].ID, test.Variants[2].ID
	record(tracker, a, domain.MetricImpression, 100)
	record(tracker, a, domain.MetricEngagement, 5)
	record(tracker, b, domain.MetricImpression, 100)
	record(tracker, b, domain.MetricEngagement, 10)
	record(tracker, c, domain.MetricImpression, 100)
	record(tracker, c, domain.MetricEngagement, 9)

	report := tracker.Report(test.ID)

	require.NotNil(t, report)
	require.Len(t, report.Ranking, 3)
	assert.Equal(t, b, report.Ranking[0].Variant.ID)
	assert.Equal(t, c, report.Ranking[1].Variant.ID)
	assert.Equal(t, a, report.Ranking[2].Variant.ID)
	for i, ranked := range report.Ranking {
		assert.Equal(t, i+1, ranked.Position)
	}
	assert.Nil(t, report.Winner)

	// |10-9| / 9.5 * 100 * sqrt(100) = 105.26 -> limitado a 100
	assert.Equal(t, 100.0, report.Confidence)
	assert.InDelta(t, 0.24, report.ZScore, 0.005)

	tracker.FinalizeTest(test.ID)
	report = tracker.Report(test.ID)
	require.NotNil(t, report.Winner)
	assert.Equal(t, b, report.Winner.Variant.ID)
	assert.Equal(t, 1, report.Winner.Position)

	assert.Nil(t, tracker.Report("inexistente"))
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		name     string
		first    domain.VariantMetrics
		second   domain.VariantMetrics
		expected float64
	}{
		{
			name:     "Sem engajamento",
			first:    domain.VariantMetrics{Impressions: 100},
			second:   domain.VariantMetrics{Impressions: 100},
			expected: 0,
		},
		{
			name:     "Diferença pequena com poucas impressões",
			first:    domain.VariantMetrics{Impressions: 4, EngagementRate: 11},
			second:   domain.VariantMetrics{Impressions: 4, EngagementRate: 9},
			expected: 40,
		},
		{
			name:     "Limitada a 100",
			first:    domain.VariantMetrics{Impressions: 400, EngagementRate: 12},
			second:   domain.VariantMetrics{Impressions: 400, EngagementRate: 8},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Confidence(tt.first, tt.second), 1e-9)
		})
	}
}

func TestRecommendationFor(t *testing.T) {
	assert.Equal(t, domain.RecommendationKeepTesting, RecommendationFor(0))
	assert.Equal(t, domain.RecommendationKeepTesting, RecommendationFor(49.99))
	assert.Equal(t, domain.RecommendationLeaningTrend, RecommendationFor(50))
	assert.Equal(t, domain.RecommendationLeaningTrend, RecommendationFor(94.99))
	assert.Equal(t, domain.RecommendationAdoptWinner, RecommendationFor(95))
	assert.Equal(t, domain.RecommendationAdoptWinner, RecommendationFor(100))
}

func TestTracker_Recommendation(t *testing.T) {
	tracker := newTestTracker()
	test := tracker.CreateTest("Teste", "", domain.PlatformYouTube, variants(2))
	require.NotNil(t, test)

	recommendation, ok := tracker.Recommendation(test.ID)
	require.True(t, ok)
	assert.Equal(t, domain.RecommendationKeepTesting, recommendation)

	_, ok = tracker.Recommendation("inexistente")
	assert.False(t, ok)
}

func TestTracker_RecommendationUsesUnroundedConfidence(t *testing.T) {
	tracker := newTestTracker()
	test := tracker.CreateTest("Teste", "", domain.PlatformTikTok, variants(2))
	require.NotNil(t, test)

	leader, runnerUp := test.Variants[0].ID, test.Variants[1].ID
	record(tracker, leader, domain.MetricImpression, 1)
	record(tracker, leader, domain.MetricEngagement, 1)
	record(tracker, runnerUp, domain.MetricImpression, 781)
	record(tracker, runnerUp, domain.MetricEngagement, 278)

	// confiança real de ~94,995, exibida como 95,00
	report := tracker.Report(test.ID)
	require.NotNil(t, report)
	assert.Equal(t, 95.0, report.Confidence)

	recommendation, ok := tracker.Recommendation(test.ID)
	require.True(t, ok)
	assert.Equal(t, domain.RecommendationLeaningTrend, recommendation)
}
