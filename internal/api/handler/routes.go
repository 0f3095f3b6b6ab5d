package handler

import (
	"net/http"

	"github.com/vfg2006/commercial-publisher-api/internal/api/handler/router"
	"github.com/vfg2006/commercial-publisher-api/internal/usecases/abtesting"
	"github.com/vfg2006/commercial-publisher-api/internal/usecases/engagement"
	"github.com/vfg2006/commercial-publisher-api/internal/usecases/publishing"
	"github.com/vfg2006/commercial-publisher-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck(pending PendingCounter) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(pending),
		},
	}
}

func Jobs(queue publishing.JobQueue, posts PostLister) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/jobs",
			Method:      http.MethodPost,
			Handler:     CreateJob(queue),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/jobs",
			Method:      http.MethodGet,
			Handler:     ListJobs(queue),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/jobs/:id",
			Method:      http.MethodGet,
			Handler:     GetJob(queue),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/jobs/:id/restart",
			Method:      http.MethodPost,
			Handler:     RestartJob(queue),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/jobs/:id/cancel",
			Method:      http.MethodPost,
			Handler:     CancelJob(queue),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/jobs/:id/posts",
			Method:      http.MethodGet,
			Handler:     ListJobPosts(queue, posts),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/maintenance/jobs/cleanup",
			Method:      http.MethodPost,
			Handler:     CleanupJobs(queue),
			Middlewares: middlewares{middleware.AdminOrOperator()},
		},
	}
}

func Commercials(products ProductScraper, queue publishing.JobQueue) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/commercials/scrape",
			Method:      http.MethodGet,
			Handler:     ScrapeProduct(products),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/commercials/publish",
			Method:      http.MethodPost,
			Handler:     PublishProduct(products, queue),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Platforms(dimensions DimensionSource) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/platforms",
			Method:      http.MethodGet,
			Handler:     ListPlatforms(dimensions),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/platforms/:platform/dimensions",
			Method:      http.MethodGet,
			Handler:     GetDimensions(dimensions),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

// Webhooks separa a configuração (autenticada) dos callbacks das plataformas (verify token)
func Webhooks(bus *engagement.Bus) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/webhooks",
			Method:      http.MethodPost,
			Handler:     RegisterWebhook(bus),
			Middlewares: middlewares{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/webhooks",
			Method:      http.MethodGet,
			Handler:     ListWebhooks(bus),
			Middlewares: middlewares{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/webhooks/:platform",
			Method:      http.MethodGet,
			Handler:     GetWebhook(bus),
			Middlewares: middlewares{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/webhooks/:platform",
			Method:      http.MethodDelete,
			Handler:     UnregisterWebhook(bus),
			Middlewares: middlewares{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/webhook-stats",
			Method:      http.MethodGet,
			Handler:     WebhookStats(bus),
			Middlewares: middlewares{middleware.AdminOrOperator()},
		},
		{
			Path:    "/v1/callbacks/:platform",
			Method:  http.MethodGet,
			Handler: VerifyCallback(bus),
		},
		{
			Path:    "/v1/callbacks/:platform",
			Method:  http.MethodPost,
			Handler: IngestCallback(bus),
		},
	}
}

func ABTests(tracker *abtesting.Tracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ab-tests",
			Method:      http.MethodPost,
			Handler:     CreateABTest(tracker),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ab-tests",
			Method:      http.MethodGet,
			Handler:     ListABTests(tracker),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ab-tests/:id",
			Method:      http.MethodGet,
			Handler:     GetABTest(tracker),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ab-tests/:id/variant",
			Method:      http.MethodGet,
			Handler:     RandomVariant(tracker),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ab-tests/:id/finalize",
			Method:      http.MethodPost,
			Handler:     FinalizeABTest(tracker),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ab-tests/:id/report",
			Method:      http.MethodGet,
			Handler:     ABTestReport(tracker),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ab-tests/:id/recommendation",
			Method:      http.MethodGet,
			Handler:     ABTestRecommendation(tracker),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/variants/:variant_id/metrics",
			Method:      http.MethodPost,
			Handler:     RecordVariantMetric(tracker),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares{middleware.AdminOrOperator()},
		},
	}
}
