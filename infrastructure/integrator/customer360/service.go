package customer360

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/vfg2006/customer360-api/infrastructure/cache"
	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360/c360client"
	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360/reference"
	"github.com/vfg2006/customer360-api/internal/config"
	"github.com/vfg2006/customer360-api/internal/domain"
	"github.com/vfg2006/customer360-api/pkg/log"
)

// Integrator is the cached view of the analytics backend used by every use case.
type Integrator interface {
	SearchCustomers(ctx context.Context, query string) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error)
	GetAlerts(ctx context.Context, customerID string) ([]domain.Alert, error)
	GetRecommendations(ctx context.Context, customerID string) ([]domain.Recommendation, error)
	RefreshRecommendations(ctx context.Context, customerID string) ([]domain.Recommendation, error)
	GetTimeline(ctx context.Context, customerID string) ([]domain.TimelineEvent, error)
	GetOpportunities(ctx context.Context, customerID string) ([]domain.Opportunity, error)
	GetTickets(ctx context.Context, customerID string) ([]domain.Ticket, error)
	GetInvoices(ctx context.Context, customerID string) ([]domain.Invoice, error)

	GetDashboardSummary(ctx context.Context, opCoID string) (*domain.DashboardSummary, error)
	ListOpCos(ctx context.Context) ([]domain.OpCo, error)
	GetOpCoStats(ctx context.Context, opCoID string) (*domain.OpCoStats, error)
	GetOpCoDashboard(ctx context.Context, opCoID string) (*domain.DashboardSummary, error)
	ListOpCoCustomers(ctx context.Context, opCoID string) ([]domain.CustomerSummary, error)
	ListBusinessUnits(ctx context.Context) ([]domain.BusinessUnit, error)
	GetBusinessUnitStats(ctx context.Context, unitID string) (*domain.BusinessUnitStats, error)
	GetBusinessUnitDashboard(ctx context.Context, unitID, opCoID string) (*domain.DashboardSummary, error)
	ListBusinessUnitCustomers(ctx context.Context, unitID, opCoID string) ([]domain.CustomerSummary, error)

	GetSegmentInsights(ctx context.Context, filter domain.SegmentFilter) (*domain.SegmentInsights, error)
	ExecuteAction(ctx context.Context, actionID, idempotencyKey string) (*domain.ActionReceipt, error)
	QueryChatbot(ctx context.Context, query domain.ChatQuery) (*domain.ChatAnswer, error)

	RefreshDirectory(ctx context.Context) error
}

type Service struct {
	cfg    *config.Config
	Client c360client.Client
	cache  *cache.QueryCache
}

func New(cfg *config.Config, client c360client.Client, queryCache *cache.QueryCache) Integrator {
	return &Service{
		cfg:    cfg,
		Client: client,
		cache:  queryCache,
	}
}

// Cache keys. Every key embeds the full parameter tuple of the call.
func customersKey(query string) string { return "customers:" + strings.ToLower(query) }
func customerKey(id string) string { return "customer:" + id }
func customerSubKey(id, resource string) string { return "customer:" + id + ":" + resource }
func summaryKey(opCoID string) string { return "summary:" + opCoID }
func segmentKey(f domain.SegmentFilter) string { return "segment:" + f.Key() }

const (
	opCosKey         = "opcos"
	businessUnitsKey = "business-units"
)

func (s *Service) SearchCustomers(ctx context.Context, query string) ([]domain.Customer, error) {
	return cache.Get(ctx, s.cache, customersKey(query), func(ctx context.Context) ([]domain.Customer, error) {
		return s.Client.SearchCustomers(ctx, query)
	})
}

func (s *Service) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	return cache.Get(ctx, s.cache, customerKey(customerID), func(ctx context.Context) (*domain.Customer, error) {
		return s.Client.GetCustomer(ctx, customerID)
	})
}

func (s *Service) GetAlerts(ctx context.Context, customerID string) ([]domain.Alert, error) {
	return cache.Get(ctx, s.cache, customerSubKey(customerID, "alerts"), func(ctx context.Context) ([]domain.Alert, error) {
		return s.Client.GetAlerts(ctx, customerID)
	})
}

func (s *Service) GetRecommendations(ctx context.Context, customerID string) ([]domain.Recommendation, error) {
	return cache.Get(ctx, s.cache, customerSubKey(customerID, "recommendations"), func(ctx context.Context) ([]domain.Recommendation, error) {
		return s.Client.GetRecommendations(ctx, customerID)
	})
}

// RefreshRecommendations drops the cached list and fetches it again.
func (s *Service) RefreshRecommendations(ctx context.Context, customerID string) ([]domain.Recommendation, error) {
	s.cache.Invalidate(ctx, customerSubKey(customerID, "recommendations"))
	return s.GetRecommendations(ctx, customerID)
}

func (s *Service) GetTimeline(ctx context.Context, customerID string) ([]domain.TimelineEvent, error) {
	return cache.Get(ctx, s.cache, customerSubKey(customerID, "timeline"), func(ctx context.Context) ([]domain.TimelineEvent, error) {
		return s.Client.GetTimeline(ctx, customerID)
	})
}

func (s *Service) GetOpportunities(ctx context.Context, customerID string) ([]domain.Opportunity, error) {
	return cache.Get(ctx, s.cache, customerSubKey(customerID, "opportunities"), func(ctx context.Context) ([]domain.Opportunity, error) {
		return s.Client.GetOpportunities(ctx, customerID)
	})
}

func (s *Service) GetTickets(ctx context.Context, customerID string) ([]domain.Ticket, error) {
	return cache.Get(ctx, s.cache, customerSubKey(customerID, "tickets"), func(ctx context.Context) ([]domain.Ticket, error) {
		return s.Client.GetTickets(ctx, customerID)
	})
}

func (s *Service) GetInvoices(ctx context.Context, customerID string) ([]domain.Invoice, error) {
	return cache.Get(ctx, s.cache, customerSubKey(customerID, "invoices"), func(ctx context.Context) ([]domain.Invoice, error) {
		return s.Client.GetInvoices(ctx, customerID)
	})
}

func (s *Service) GetDashboardSummary(ctx context.Context, opCoID string) (*domain.DashboardSummary, error) {
	return cache.Get(ctx, s.cache, summaryKey(opCoID), func(ctx context.Context) (*domain.DashboardSummary, error) {
		return s.Client.GetDashboardSummary(ctx, opCoID)
	})
}

func (s *Service) ListOpCos(ctx context.Context) ([]domain.OpCo, error) {
	return cache.Get(ctx, s.cache, opCosKey, s.Client.ListOpCos)
}

func (s *Service) GetOpCoStats(ctx context.Context, opCoID string) (*domain.OpCoStats, error) {
	return cache.Get(ctx, s.cache, "opco:"+opCoID+":stats", func(ctx context.Context) (*domain.OpCoStats, error) {
		return s.Client.GetOpCoStats(ctx, opCoID)
	})
}

func (s *Service) GetOpCoDashboard(ctx context.Context, opCoID string) (*domain.DashboardSummary, error) {
	return cache.Get(ctx, s.cache, "opco:"+opCoID+":dashboard", func(ctx context.Context) (*domain.DashboardSummary, error) {
		return s.Client.GetOpCoDashboard(ctx, opCoID)
	})
}

func (s *Service) ListOpCoCustomers(ctx context.Context, opCoID string) ([]domain.CustomerSummary, error) {
	return cache.Get(ctx, s.cache, "opco:"+opCoID+":customers", func(ctx context.Context) ([]domain.CustomerSummary, error) {
		return s.Client.ListOpCoCustomers(ctx, opCoID)
	})
}

// ListBusinessUnits falls back to the bundled catalogue when the backend is unreachable.
// The fallback is not cached so the next call retries the backend.
func (s *Service) ListBusinessUnits(ctx context.Context) ([]domain.BusinessUnit, error) {
	units, err := cache.Get(ctx, s.cache, businessUnitsKey, s.Client.ListBusinessUnits)
	if err == nil {
		return units, nil
	}

	log.ForContext(ctx).WithError(err).Warn("customer360: business units unavailable, serving bundled catalogue")

	fallback, refErr := reference.BusinessUnits()
	if refErr != nil {
		return nil, err
	}
	return fallback, nil
}

func (s *Service) GetBusinessUnitStats(ctx context.Context, unitID string) (*domain.BusinessUnitStats, error) {
	return cache.Get(ctx, s.cache, "business-unit:"+unitID+":stats", func(ctx context.Context) (*domain.BusinessUnitStats, error) {
		return s.Client.GetBusinessUnitStats(ctx, unitID)
	})
}

func (s *Service) GetBusinessUnitDashboard(ctx context.Context, unitID, opCoID string) (*domain.DashboardSummary, error) {
	return cache.Get(ctx, s.cache, "business-unit:"+unitID+":dashboard:"+opCoID, func(ctx context.Context) (*domain.DashboardSummary, error) {
		return s.Client.GetBusinessUnitDashboard(ctx, unitID, opCoID)
	})
}

func (s *Service) ListBusinessUnitCustomers(ctx context.Context, unitID, opCoID string) ([]domain.CustomerSummary, error) {
	return cache.Get(ctx, s.cache, "business-unit:"+unitID+":customers:"+opCoID, func(ctx context.Context) ([]domain.CustomerSummary, error) {
		return s.Client.ListBusinessUnitCustomers(ctx, unitID, opCoID)
	})
}

func (s *Service) GetSegmentInsights(ctx context.Context, filter domain.SegmentFilter) (*domain.SegmentInsights, error) {
	return cache.Get(ctx, s.cache, segmentKey(filter), func(ctx context.Context) (*domain.SegmentInsights, error) {
		return s.Client.GetSegmentInsights(ctx, filter)
	})
}

// ExecuteAction is never cached.
func (s *Service) ExecuteAction(ctx context.Context, actionID, idempotencyKey string) (*domain.ActionReceipt, error) {
	return s.Client.ExecuteAction(ctx, actionID, idempotencyKey)
}

// QueryChatbot is never cached.
func (s *Service) QueryChatbot(ctx context.Context, query domain.ChatQuery) (*domain.ChatAnswer, error) {
	return s.Client.QueryChatbot(ctx, query)
}

// RefreshDirectory reloads the lists every landing page needs: OpCos,
// business units, the group summary and the full customer list.
func (s *Service) RefreshDirectory(ctx context.Context) error {
	for _, key := range []string{opCosKey, businessUnitsKey, summaryKey(""), customersKey("")} {
		s.cache.Invalidate(ctx, key)
	}

	var failed []string

	if _, err := s.ListOpCos(ctx); err != nil {
		failed = append(failed, "opcos: "+err.Error())
	}
	if _, err := cache.Get(ctx, s.cache, businessUnitsKey, s.Client.ListBusinessUnits); err != nil {
		failed = append(failed, "business units: "+err.Error())
	}
	if _, err := s.GetDashboardSummary(ctx, ""); err != nil {
		failed = append(failed, "summary: "+err.Error())
	}
	if _, err := s.SearchCustomers(ctx, ""); err != nil {
		failed = append(failed, "customers: "+err.Error())
	}

	if len(failed) > 0 {
		return errors.Errorf("customer360: directory refresh: %s", strings.Join(failed, "; "))
	}
	return nil
}
