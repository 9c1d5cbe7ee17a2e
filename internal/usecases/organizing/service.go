package organizing

import (
	"context"
	"strings"

	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360"
	"github.com/vfg2006/customer360-api/internal/domain"
	"github.com/vfg2006/customer360-api/internal/usecases/navigating"
	"github.com/vfg2006/customer360-api/pkg/log"
)

type Organizer interface {
	Apply(ctx context.Context, session string, state navigating.ViewState, event navigating.SelectionEvent) (navigating.ViewState, error)
	SelectBusinessUnit(ctx context.Context, session string, state navigating.ViewState, unitID string) (navigating.ViewState, error)
	SearchCustomers(ctx context.Context, query string, sel navigating.Selection) ([]domain.CustomerSummary, error)
	Dashboard(ctx context.Context, sel navigating.Selection) (*domain.DashboardSummary, error)
}

type Service struct {
	integrator customer360.Integrator
	guard      *Guard
}

func NewService(integrator customer360.Integrator, guard *Guard) Organizer {
	if guard == nil {
		guard = NewGuard()
	}
	return &Service{
		integrator: integrator,
		guard:      guard,
	}
}

// Apply runs a switcher event. Choosing a business unit, or a customer while
// a unit is active, goes through the membership check.
func (s *Service) Apply(ctx context.Context, session string, state navigating.ViewState, event navigating.SelectionEvent) (navigating.ViewState, error) {
	switch {
	case event.Type == navigating.EventSelectBusinessUnit:
		return s.SelectBusinessUnit(ctx, session, state, event.Value)
	case event.Type == navigating.EventSelectCustomer && state.Selection.BusinessUnit != "":
		return s.verifyMembership(ctx, session, state, state.SelectCustomer(event.Value))
	}
	return navigating.ApplySelection(state, event)
}

// SelectBusinessUnit sets the unit and keeps the selected customer only if
// it belongs to that unit. A customer that cannot be fetched is dropped.
func (s *Service) SelectBusinessUnit(ctx context.Context, session string, state navigating.ViewState, unitID string) (navigating.ViewState, error) {
	return s.verifyMembership(ctx, session, state, state.SelectBusinessUnit(unitID))
}

// verifyMembership clears the customer of next when it is outside next's
// business unit. On a superseded check the previous state is returned.
func (s *Service) verifyMembership(ctx context.Context, session string, state, next navigating.ViewState) (navigating.ViewState, error) {
	unitID := next.Selection.BusinessUnit
	customerID := next.Selection.CustomerID
	if unitID == "" || customerID == "" {
		return next, nil
	}

	err := s.guard.Run(ctx, session, func(ctx context.Context) error {
		customer, err := s.integrator.GetCustomer(ctx, customerID)
		if err != nil {
			log.ForContext(ctx).WithError(err).WithFields(log.Fields{
				"customer_id":   customerID,
				"business_unit": unitID,
			}).Warn("organizing: could not verify customer, clearing selection")
			next = next.ClearCustomer()
			return nil
		}

		if !customer.BelongsToBusinessUnit(unitID) {
			next = next.ClearCustomer()
		}
		return nil
	})
	if err != nil {
		return state, err
	}

	return next, nil
}

// SearchCustomers narrows by business unit first, then OpCo, else searches
// the whole group. The unit and OpCo lists are filtered by name locally.
func (s *Service) SearchCustomers(ctx context.Context, query string, sel navigating.Selection) ([]domain.CustomerSummary, error) {
	switch {
	case sel.BusinessUnit != "":
		list, err := s.integrator.ListBusinessUnitCustomers(ctx, sel.BusinessUnit, sel.OpCo)
		if err != nil {
			return nil, err
		}
		return matchName(list, query), nil

	case sel.OpCo != "":
		list, err := s.integrator.ListOpCoCustomers(ctx, sel.OpCo)
		if err != nil {
			return nil, err
		}
		return matchName(list, query), nil

	default:
		customers, err := s.integrator.SearchCustomers(ctx, query)
		if err != nil {
			return nil, err
		}
		out := make([]domain.CustomerSummary, 0, len(customers))
		for i := range customers {
			out = append(out, customers[i].Summary())
		}
		return out, nil
	}
}

func matchName(list []domain.CustomerSummary, query string) []domain.CustomerSummary {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return list
	}

	out := make([]domain.CustomerSummary, 0, len(list))
	for _, c := range list {
		if strings.Contains(strings.ToLower(c.AccountName), query) {
			out = append(out, c)
		}
	}
	return out
}

// Dashboard returns the landing page summary for the selection.
func (s *Service) Dashboard(ctx context.Context, sel navigating.Selection) (*domain.DashboardSummary, error) {
	if sel.BusinessUnit != "" {
		return s.integrator.GetBusinessUnitDashboard(ctx, sel.BusinessUnit, sel.OpCo)
	}
	return s.integrator.GetDashboardSummary(ctx, sel.OpCo)
}
