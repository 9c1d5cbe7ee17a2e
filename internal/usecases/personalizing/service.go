package personalizing

import (
	"context"
	"time"

	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360"
	"github.com/vfg2006/customer360-api/internal/domain"
	"github.com/vfg2006/customer360-api/pkg/log"
)

type AlertView struct {
	domain.Alert
	Label    string       `json:"label"`
	Color    string       `json:"color"`
	Severity domain.Badge `json:"severity_badge"`
}

type RecommendationView struct {
	domain.Recommendation
	ActionLabel   string       `json:"action_label"`
	CategoryColor string       `json:"category_color"`
	PriorityBadge domain.Badge `json:"priority_badge"`
}

// PersonaView is one customer seen through one persona.
type PersonaView struct {
	Persona         Persona              `json:"persona"`
	DisplayName     string               `json:"display_name"`
	Title           string               `json:"title"`
	Customer        *domain.Customer     `json:"customer"`
	Health          domain.Badge         `json:"health"`
	ChurnRisk       domain.Badge         `json:"churn_risk"`
	Tiles           []Tile               `json:"tiles"`
	Charts          []Chart              `json:"charts"`
	Alerts          []AlertView          `json:"alerts"`
	Recommendations []RecommendationView `json:"recommendations"`
	DataIssues      []domain.DataIssue   `json:"data_issues"`
}

type Viewer interface {
	View(ctx context.Context, customerID string, persona Persona) (*PersonaView, error)
}

type Service struct {
	integrator customer360.Integrator
	now        func() time.Time
}

func NewService(integrator customer360.Integrator) *Service {
	return &Service{
		integrator: integrator,
		now:        time.Now,
	}
}

// View builds the persona view. The customer must load; alerts and
// recommendations degrade to empty lists with a data issue.
func (s *Service) View(ctx context.Context, customerID string, persona Persona) (*PersonaView, error) {
	layouts, err := Layouts()
	if err != nil {
		return nil, err
	}
	layout, ok := layouts[persona]
	if !ok {
		return nil, ErrUnknownPersona
	}

	customer, err := s.integrator.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	view := &PersonaView{
		Persona:     persona,
		DisplayName: persona.DisplayName(),
		Title:       layout.Title,
		Customer:    customer,
		Health:      customer.HealthStatus.Badge(),
		ChurnRisk:   customer.ChurnRiskLevel.Badge(),
		Charts:      []Chart{},
		DataIssues:  customer.DataIssues(),
	}

	view.Tiles, err = RenderTiles(customer, persona)
	if err != nil {
		return nil, err
	}

	for _, key := range layout.Charts {
		view.Charts = append(view.Charts, RenderRevenueChart(customer, key, s.now()))
	}

	alerts, err := s.integrator.GetAlerts(ctx, customerID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("personalizing: alerts unavailable")
		view.DataIssues = append(view.DataIssues, domain.DataIssue{Field: "alerts", Message: err.Error()})
	}
	view.Alerts = AlertViews(FilterAlerts(alerts, persona))

	recs, err := s.integrator.GetRecommendations(ctx, customerID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("personalizing: recommendations unavailable")
		view.DataIssues = append(view.DataIssues, domain.DataIssue{Field: "recommendations", Message: err.Error()})
	}
	view.Recommendations = RecommendationViews(FilterRecommendations(recs, persona))

	return view, nil
}

func AlertViews(alerts []domain.Alert) []AlertView {
	out := make([]AlertView, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, AlertView{
			Alert:    a,
			Label:    AlertLabel(a.AlertType),
			Color:    a.AlertType.Color(),
			Severity: a.Severity.Badge(),
		})
	}
	return out
}

func RecommendationViews(recs []domain.Recommendation) []RecommendationView {
	out := make([]RecommendationView, 0, len(recs))
	for _, r := range recs {
		out = append(out, RecommendationView{
			Recommendation: r,
			ActionLabel:    ActionLabel(r.ActionType),
			CategoryColor:  r.Category.Color(),
			PriorityBadge:  r.Priority.Badge(),
		})
	}
	return out
}
