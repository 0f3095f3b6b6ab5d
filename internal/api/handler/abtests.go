package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
	"github.com/vfg2006/commercial-publisher-api/internal/usecases/abtesting"
	"github.com/vfg2006/commercial-publisher-api/pkg/apiErrors"
)

type RecordMetricRequest struct {
	Type domain.MetricType `json:"tipo" validate:"required,oneof=impressao clique engajamento conversao"`
}

type RecommendationResponse struct {
	TestID         string                `json:"teste_id"`
	Confidence     float64               `json:"confianca"`
	Recommendation domain.Recommendation `json:"recomendacao"`
}

func testNotFound(w http.ResponseWriter, testID string) {
	apiErrors.WriteError(w, apiErrors.ErrNotFound, "Teste A/B não encontrado", map[string]string{"teste_id": testID})
}

func CreateABTest(tracker *abtesting.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateABTest")

		var req domain.CreateABTestRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		platform, err := domain.ParsePlatform(req.Platform)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		test := tracker.CreateTest(req.Name, req.Description, platform, req.Variants)
		if test == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Não foi possível criar o teste: informe nome e ao menos duas variantes", nil)
			return
		}

		writeJSON(w, http.StatusCreated, test)
	}
}

func ListABTests(tracker *abtesting.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, tracker.ListTests())
	}
}

func GetABTest(tracker *abtesting.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		test := tracker.GetTest(id)
		if test == nil {
			testNotFound(w, id)
			return
		}
		writeJSON(w, http.StatusOK, test)
	}
}

func RecordVariantMetric(tracker *abtesting.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		variantID := httprouter.ParamsFromContext(r.Context()).ByName("variant_id")

		var req RecordMetricRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		metrics := tracker.RecordMetric(variantID, req.Type)
		if metrics == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Variante não encontrada ou teste já finalizado", map[string]string{"variante_id": variantID})
			return
		}

		writeJSON(w, http.StatusOK, metrics)
	}
}

func RandomVariant(tracker *abtesting.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		variant := tracker.RandomVariant(id)
		if variant == nil {
			testNotFound(w, id)
			return
		}
		writeJSON(w, http.StatusOK, variant)
	}
}

func FinalizeABTest(tracker *abtesting.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - FinalizeABTest")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		test := tracker.FinalizeTest(id)
		if test == nil {
			testNotFound(w, id)
			return
		}
		writeJSON(w, http.StatusOK, test)
	}
}

func ABTestReport(tracker *abtesting.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		report := tracker.Report(id)
		if report == nil {
			testNotFound(w, id)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

func ABTestRecommendation(tracker *abtesting.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		report := tracker.Report(id)
		if report == nil {
			testNotFound(w, id)
			return
		}

		writeJSON(w, http.StatusOK, RecommendationResponse{
			TestID:         id,
			Confidence:     report.Confidence,
			Recommendation: abtesting.RecommendationFor(report.Confidence),
		})
	}
}
