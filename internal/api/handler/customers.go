package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360"
	"github.com/vfg2006/customer360-api/internal/domain"
	"github.com/vfg2006/customer360-api/internal/usecases/navigating"
	"github.com/vfg2006/customer360-api/internal/usecases/organizing"
	"github.com/vfg2006/customer360-api/internal/usecases/personalizing"
	"github.com/vfg2006/customer360-api/pkg/apiErrors"
	"github.com/vfg2006/customer360-api/pkg/middleware"
)

// CustomerProfile is the customer detail page: the raw record plus badges,
// revenue charts and the fields that failed to decode.
type CustomerProfile struct {
	Customer   *domain.Customer      `json:"customer"`
	Health     domain.Badge          `json:"health"`
	ChurnRisk  domain.Badge          `json:"churn_risk"`
	Charts     []personalizing.Chart `json:"charts"`
	DataIssues []domain.DataIssue    `json:"data_issues"`
}

// SearchCustomers lists customers narrowed by the opco and business_unit
// query parameters, filtered by name with q.
func SearchCustomers(service organizing.Organizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		sel := navigating.Selection{
			OpCo:         q.Get("opco"),
			BusinessUnit: q.Get("business_unit"),
		}

		customers, err := service.SearchCustomers(r.Context(), q.Get("q"), sel)
		if err != nil {
			writeBackendError(w, r, err, "could not search customers")
			return
		}

		writeJSON(w, r, http.StatusOK, customers)
	}
}

func GetCustomerProfile(integrator customer360.Integrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customer, err := integrator.GetCustomer(r.Context(), param(r, "id"))
		if err != nil {
			writeBackendError(w, r, err, "could not load customer")
			return
		}

		writeJSON(w, r, http.StatusOK, newCustomerProfile(customer, time.Now()))
	}
}

func newCustomerProfile(customer *domain.Customer, now time.Time) CustomerProfile {
	return CustomerProfile{
		Customer:  customer,
		Health:    customer.HealthStatus.Badge(),
		ChurnRisk: customer.ChurnRiskLevel.Badge(),
		Charts: []personalizing.Chart{
			personalizing.RenderRevenueChart(customer, personalizing.ChartThreeYearRevenue, now),
			personalizing.RenderRevenueChart(customer, personalizing.ChartQuarterlyRevenue, now),
		},
		DataIssues: customer.DataIssues(),
	}
}

// customerResource serves one customer sub-resource list.
func customerResource[T any](name string, fetch func(ctx context.Context, customerID string) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := fetch(r.Context(), param(r, "id"))
		if err != nil {
			writeBackendError(w, r, err, "could not load customer "+name)
			return
		}

		writeJSON(w, r, http.StatusOK, items)
	}
}

// GetCustomerAlerts decorates alerts with their labels and severity badges.
func GetCustomerAlerts(integrator customer360.Integrator) http.HandlerFunc {
	return customerResource("alerts", func(ctx context.Context, id string) ([]personalizing.AlertView, error) {
		alerts, err := integrator.GetAlerts(ctx, id)
		if err != nil {
			return nil, err
		}
		return personalizing.AlertViews(alerts), nil
	})
}

func GetCustomerRecommendations(integrator customer360.Integrator) http.HandlerFunc {
	return customerResource("recommendations", func(ctx context.Context, id string) ([]personalizing.RecommendationView, error) {
		recs, err := integrator.GetRecommendations(ctx, id)
		if err != nil {
			return nil, err
		}
		return personalizing.RecommendationViews(recs), nil
	})
}

func GetCustomerTimeline(integrator customer360.Integrator) http.HandlerFunc {
	return customerResource("timeline", integrator.GetTimeline)
}

func GetCustomerOpportunities(integrator customer360.Integrator) http.HandlerFunc {
	return customerResource("opportunities", integrator.GetOpportunities)
}

func GetCustomerTickets(integrator customer360.Integrator) http.HandlerFunc {
	return customerResource("tickets", integrator.GetTickets)
}

func GetCustomerInvoices(integrator customer360.Integrator) http.HandlerFunc {
	return customerResource("invoices", integrator.GetInvoices)
}

func GetPersonaView(viewer personalizing.Viewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		persona, err := personalizing.ParsePersona(param(r, "persona"))
		if err != nil {
			writeError(w, r, err, apiErrors.ErrUnknownPersona, "unknown persona")
			return
		}

		view, err := viewer.View(r.Context(), param(r, "id"), persona)
		if err != nil {
			writeBackendError(w, r, err, "could not build persona view")
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	}
}

type PersonaOption struct {
	Persona     personalizing.Persona `json:"persona"`
	DisplayName string                `json:"display_name"`
	Title       string                `json:"title"`
}

// ListPersonas returns the personas the caller's role may open.
func ListPersonas() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "user not authenticated", nil)
			return
		}

		layouts, err := personalizing.Layouts()
		if err != nil {
			writeError(w, r, err, apiErrors.ErrInternalServer, "could not load persona layouts")
			return
		}

		options := make([]PersonaOption, 0, len(layouts))
		for _, p := range personalizing.Personas() {
			if !middleware.CanViewPersona(claims.UserRoleID, string(p)) {
				continue
			}
			options = append(options, PersonaOption{
				Persona:     p,
				DisplayName: p.DisplayName(),
				Title:       layouts[p].Title,
			})
		}

		writeJSON(w, r, http.StatusOK, options)
	}
}
