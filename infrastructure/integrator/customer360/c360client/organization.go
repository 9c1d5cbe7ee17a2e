package c360client

import (
	"context"
	"net/url"

	"github.com/vfg2006/customer360-api/internal/domain"
)

type opCoList struct {
	OpCos []domain.OpCo `json:"opcos"`
}

type businessUnitList struct {
	Subsidiaries []domain.BusinessUnit `json:"subsidiaries"`
}

func opCoQuery(opCoID string) url.Values {
	if opCoID == "" {
		return nil
	}
	return url.Values{"opco": []string{opCoID}}
}

// GetDashboardSummary returns the group aggregate, narrowed to an OpCo when opCoID is set.
func (c *C360Client) GetDashboardSummary(ctx context.Context, opCoID string) (*domain.DashboardSummary, error) {
	var summary domain.DashboardSummary
	if err := c.get(ctx, "get dashboard summary", "/dashboard/summary", opCoQuery(opCoID), "", false, &summary); err != nil {
		return nil, err
	}
	summary.Normalize()
	return &summary, nil
}

func (c *C360Client) ListOpCos(ctx context.Context) ([]domain.OpCo, error) {
	var resp opCoList
	if err := c.get(ctx, "list opcos", "/opcos", nil, "", false, &resp); err != nil {
		return nil, err
	}
	return nonNil(resp.OpCos), nil
}

func (c *C360Client) GetOpCoStats(ctx context.Context, opCoID string) (*domain.OpCoStats, error) {
	var stats domain.OpCoStats
	if err := c.get(ctx, "get opco stats", "/opco/"+opCoID+"/stats", nil, "", false, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *C360Client) GetOpCoDashboard(ctx context.Context, opCoID string) (*domain.DashboardSummary, error) {
	var dashboard domain.DashboardSummary
	if err := c.get(ctx, "get opco dashboard", "/opco/"+opCoID+"/dashboard", nil, "", false, &dashboard); err != nil {
		return nil, err
	}
	dashboard.Normalize()
	return &dashboard, nil
}

func (c *C360Client) ListOpCoCustomers(ctx context.Context, opCoID string) ([]domain.CustomerSummary, error) {
	customers := []domain.CustomerSummary{}
	if err := c.get(ctx, "list opco customers", "/opco/"+opCoID+"/customers", nil, "", true, &customers); err != nil {
		return nil, err
	}
	return nonNil(customers), nil
}

func (c *C360Client) ListBusinessUnits(ctx context.Context) ([]domain.BusinessUnit, error) {
	var resp businessUnitList
	if err := c.get(ctx, "list business units", "/subsidiaries", nil, "", false, &resp); err != nil {
		return nil, err
	}
	return nonNil(resp.Subsidiaries), nil
}

func (c *C360Client) GetBusinessUnitStats(ctx context.Context, unitID string) (*domain.BusinessUnitStats, error) {
	var stats domain.BusinessUnitStats
	if err := c.get(ctx, "get business unit stats", "/subsidiary/"+unitID+"/stats", nil, "", false, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *C360Client) GetBusinessUnitDashboard(ctx context.Context, unitID, opCoID string) (*domain.DashboardSummary, error) {
	var dashboard domain.DashboardSummary
	if err := c.get(ctx, "get business unit dashboard", "/subsidiary/"+unitID+"/dashboard", opCoQuery(opCoID), "", false, &dashboard); err != nil {
		return nil, err
	}
	dashboard.Normalize()
	return &dashboard, nil
}

func (c *C360Client) ListBusinessUnitCustomers(ctx context.Context, unitID, opCoID string) ([]domain.CustomerSummary, error) {
	customers := []domain.CustomerSummary{}
	if err := c.get(ctx, "list business unit customers", "/subsidiary/"+unitID+"/customers", opCoQuery(opCoID), "", true, &customers); err != nil {
		return nil, err
	}
	return nonNil(customers), nil
}
