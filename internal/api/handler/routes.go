package handler

import (
	"net/http"

	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360"
	"github.com/vfg2006/customer360-api/internal/api/handler/router"
	"github.com/vfg2006/customer360-api/internal/usecases/acting"
	"github.com/vfg2006/customer360-api/internal/usecases/authenticating"
	"github.com/vfg2006/customer360-api/internal/usecases/chatting"
	"github.com/vfg2006/customer360-api/internal/usecases/organizing"
	"github.com/vfg2006/customer360-api/internal/usecases/personalizing"
	"github.com/vfg2006/customer360-api/internal/usecases/segmenting"
	"github.com/vfg2006/customer360-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Customers(integrator customer360.Integrator, organizer organizing.Organizer, viewer personalizing.Viewer) []router.Route {
	routes := []router.Route{
		{
			Path:        "/v1/customers",
			Method:      http.MethodGet,
			Handler:     SearchCustomers(organizer),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/customers/:id",
			Method:      http.MethodGet,
			Handler:     GetCustomerProfile(integrator),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/customers/:id/personas/:persona",
			Method:      http.MethodGet,
			Handler:     GetPersonaView(viewer),
			Middlewares: middlewares{middleware.AllRoles(), middleware.PersonaAccess()},
		},
		{
			Path:        "/v1/personas",
			Method:      http.MethodGet,
			Handler:     ListPersonas(),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}

	subResources := map[string]http.HandlerFunc{
		"alerts":          GetCustomerAlerts(integrator),
		"recommendations": GetCustomerRecommendations(integrator),
		"timeline":        GetCustomerTimeline(integrator),
		"opportunities":   GetCustomerOpportunities(integrator),
		"tickets":         GetCustomerTickets(integrator),
		"invoices":        GetCustomerInvoices(integrator),
	}
	for name, h := range subResources {
		routes = append(routes, router.Route{
			Path:        "/v1/customers/:id/" + name,
			Method:      http.MethodGet,
			Handler:     h,
			Middlewares: middlewares{middleware.AllRoles()},
		})
	}

	return routes
}

func Organization(integrator customer360.Integrator, organizer organizing.Organizer) []router.Route {
	route := func(path string, h http.Handler) router.Route {
		return router.Route{
			Path:        path,
			Method:      http.MethodGet,
			Handler:     h,
			Middlewares: middlewares{middleware.AllRoles()},
		}
	}

	return []router.Route{
		route("/v1/dashboard/summary", GetDashboardSummary(organizer)),
		route("/v1/opcos", ListOpCos(integrator)),
		route("/v1/opcos/:id/stats", GetOpCoStats(integrator)),
		route("/v1/opcos/:id/dashboard", GetOpCoDashboard(integrator)),
		route("/v1/opcos/:id/customers", ListOpCoCustomers(integrator)),
		route("/v1/business-units", ListBusinessUnits(integrator)),
		route("/v1/business-units/:id/stats", GetBusinessUnitStats(integrator)),
		route("/v1/business-units/:id/dashboard", GetBusinessUnitDashboard(integrator)),
		route("/v1/business-units/:id/customers", ListBusinessUnitCustomers(integrator)),
	}
}

func Segments(service segmenting.Segmenter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/segments",
			Method:      http.MethodGet,
			Handler:     GetSegment(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/segments/at-risk",
			Method:      http.MethodGet,
			Handler:     GetAtRisk(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Navigation(deps DrillDeps) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/navigation/drilldown",
			Method:      http.MethodPost,
			Handler:     DrillDown(deps),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/navigation/selection",
			Method:      http.MethodPost,
			Handler:     Select(deps.Organizer),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Actions(service acting.Executor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/actions/:id/execute",
			Method:      http.MethodPost,
			Handler:     ExecuteAction(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/actions/:id/status",
			Method:      http.MethodGet,
			Handler:     GetActionStatus(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Chat(service chatting.Chatter) []router.Route {
	all := middlewares{middleware.AllRoles()}

	return []router.Route{
		{Path: "/v1/chat/sessions", Method: http.MethodPost, Handler: CreateChatSession(service), Middlewares: all},
		{Path: "/v1/chat/sessions/:id", Method: http.MethodGet, Handler: GetChatSession(service), Middlewares: all},
		{Path: "/v1/chat/sessions/:id", Method: http.MethodDelete, Handler: DeleteChatSession(service), Middlewares: all},
		{Path: "/v1/chat/sessions/:id/reset", Method: http.MethodPost, Handler: ResetChatSession(service), Middlewares: all},
		{Path: "/v1/chat/sessions/:id/messages", Method: http.MethodPost, Handler: SendChatMessage(service), Middlewares: all},
		{Path: "/v1/chat/sessions/:id/input", Method: http.MethodPost, Handler: SetChatInput(service), Middlewares: all},
		{Path: "/v1/chat/sessions/:id/keys", Method: http.MethodPost, Handler: ChatKeyDown(service), Middlewares: all},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares{middleware.AdminOrExecutive()},
		},
	}
}
