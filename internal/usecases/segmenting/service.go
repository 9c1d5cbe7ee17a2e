package segmenting

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360"
	"github.com/vfg2006/customer360-api/internal/domain"
	"github.com/vfg2006/customer360-api/pkg/log"
)

var ErrInvalidFilter = errors.New("invalid segment filter")

const (
	NoCustomersInSegment = "No customers found in this segment"
	AllCustomersTitle    = "All Customers"
)

// ParseFilter builds a filter from query parameters. Both empty means no filter.
func ParseFilter(filterType, value string) (*domain.SegmentFilter, error) {
	filterType = strings.TrimSpace(filterType)
	value = strings.TrimSpace(value)

	if filterType == "" && value == "" {
		return nil, nil
	}

	f := &domain.SegmentFilter{Type: domain.SegmentFilterType(strings.ToLower(filterType)), Value: value}
	if !f.Type.Valid() || f.Value == "" {
		return nil, ErrInvalidFilter
	}
	return f, nil
}

// Filter narrows customers to the segment. A nil filter, or a type it does
// not know, returns customers as given.
func Filter(customers []domain.Customer, filter *domain.SegmentFilter) []domain.Customer {
	if filter == nil {
		return customers
	}

	var keep func(c *domain.Customer) bool
	switch filter.Type {
	case domain.SegmentByHealth:
		keep = func(c *domain.Customer) bool { return string(c.HealthStatus) == filter.Value }
	case domain.SegmentByRegion:
		keep = func(c *domain.Customer) bool { return c.Region == filter.Value }
	default:
		return customers
	}

	out := make([]domain.Customer, 0, len(customers))
	for i := range customers {
		if keep(&customers[i]) {
			out = append(out, customers[i])
		}
	}
	return out
}

func Title(filter *domain.SegmentFilter) string {
	if filter == nil {
		return AllCustomersTitle
	}
	switch filter.Type {
	case domain.SegmentByHealth:
		return filter.Value + " Customers"
	case domain.SegmentByRegion:
		return "Customers in " + filter.Value
	default:
		return AllCustomersTitle
	}
}

func EmptyMessage(filter *domain.SegmentFilter) string {
	if filter != nil && filter.Type == domain.SegmentByRegion {
		return fmt.Sprintf("There are currently no customers in the %q region.", filter.Value)
	}
	return NoCustomersInSegment
}

// SegmentView is a filtered customer list with the backend's segment insights.
type SegmentView struct {
	Filter       *domain.SegmentFilter    `json:"filter"`
	Title        string                   `json:"title"`
	Customers    []domain.CustomerSummary `json:"customers"`
	Insights     *domain.SegmentInsights  `json:"insights,omitempty"`
	EmptyMessage string                   `json:"empty_message,omitempty"`
	DataIssues   []domain.DataIssue       `json:"data_issues"`
}

// AtRiskView lists customers whose health is At-Risk or Critical.
type AtRiskView struct {
	Customers     []domain.CustomerSummary `json:"customers"`
	AtRiskCount   int                      `json:"at_risk_count"`
	CriticalCount int                      `json:"critical_count"`
	EmptyMessage  string                   `json:"empty_message,omitempty"`
}

type Segmenter interface {
	Segment(ctx context.Context, filter *domain.SegmentFilter) (*SegmentView, error)
	AtRisk(ctx context.Context) (*AtRiskView, error)
}

type Service struct {
	integrator customer360.Integrator
}

func NewService(integrator customer360.Integrator) Segmenter {
	return &Service{integrator: integrator}
}

// Segment filters the full customer list. Insights are only fetched for a
// real segment; when they fail the list is still returned.
func (s *Service) Segment(ctx context.Context, filter *domain.SegmentFilter) (*SegmentView, error) {
	if filter != nil && !filter.Type.Valid() {
		return nil, ErrInvalidFilter
	}

	customers, err := s.integrator.SearchCustomers(ctx, "")
	if err != nil {
		return nil, err
	}

	view := &SegmentView{
		Filter:     filter,
		Title:      Title(filter),
		Customers:  summaries(Filter(customers, filter)),
		DataIssues: []domain.DataIssue{},
	}
	if len(view.Customers) == 0 {
		view.EmptyMessage = EmptyMessage(filter)
	}

	if filter == nil {
		return view, nil
	}

	insights, err := s.integrator.GetSegmentInsights(ctx, *filter)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("segment", filter.Key()).Warn("segmenting: insights unavailable")
		view.DataIssues = append(view.DataIssues, domain.DataIssue{Field: "insights", Message: err.Error()})
		return view, nil
	}
	insights.Normalize()
	view.Insights = insights

	return view, nil
}

func (s *Service) AtRisk(ctx context.Context) (*AtRiskView, error) {
	customers, err := s.integrator.SearchCustomers(ctx, "")
	if err != nil {
		return nil, err
	}

	view := &AtRiskView{Customers: []domain.CustomerSummary{}}
	for i := range customers {
		c := &customers[i]
		switch c.HealthStatus {
		case domain.HealthAtRisk:
			view.AtRiskCount++
		case domain.HealthCritical:
			view.CriticalCount++
		default:
			continue
		}
		view.Customers = append(view.Customers, c.Summary())
	}
	if len(view.Customers) == 0 {
		view.EmptyMessage = NoCustomersInSegment
	}

	return view, nil
}

func summaries(customers []domain.Customer) []domain.CustomerSummary {
	out := make([]domain.CustomerSummary, 0, len(customers))
	for i := range customers {
		out = append(out, customers[i].Summary())
	}
	return out
}
