package c360client

import (
	"context"
	"net/url"

	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360/schema"
	"github.com/vfg2006/customer360-api/internal/domain"
)

// SearchCustomers matches account names containing query. An empty query lists everyone.
func (c *C360Client) SearchCustomers(ctx context.Context, query string) ([]domain.Customer, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}

	customers := []domain.Customer{}
	if err := c.get(ctx, "search customers", "/customers", params, schema.Customer, true, &customers); err != nil {
		return nil, err
	}
	return nonNil(customers), nil
}

func (c *C360Client) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	var customer domain.Customer
	if err := c.get(ctx, "get customer", "/customer/"+customerID, nil, schema.Customer, false, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *C360Client) GetAlerts(ctx context.Context, customerID string) ([]domain.Alert, error) {
	alerts := []domain.Alert{}
	if err := c.get(ctx, "get alerts", customerPath(customerID, "alerts"), nil, schema.Alert, true, &alerts); err != nil {
		return nil, err
	}
	return nonNil(alerts), nil
}

func (c *C360Client) GetRecommendations(ctx context.Context, customerID string) ([]domain.Recommendation, error) {
	recommendations := []domain.Recommendation{}
	if err := c.get(ctx, "get recommendations", customerPath(customerID, "recommendations"), nil, schema.Recommendation, true, &recommendations); err != nil {
		return nil, err
	}
	return nonNil(recommendations), nil
}

func (c *C360Client) GetTimeline(ctx context.Context, customerID string) ([]domain.TimelineEvent, error) {
	events := []domain.TimelineEvent{}
	if err := c.get(ctx, "get timeline", customerPath(customerID, "timeline"), nil, "", true, &events); err != nil {
		return nil, err
	}
	return nonNil(events), nil
}

func (c *C360Client) GetOpportunities(ctx context.Context, customerID string) ([]domain.Opportunity, error) {
	opportunities := []domain.Opportunity{}
	if err := c.get(ctx, "get opportunities", customerPath(customerID, "opportunities"), nil, "", true, &opportunities); err != nil {
		return nil, err
	}
	return nonNil(opportunities), nil
}

func (c *C360Client) GetTickets(ctx context.Context, customerID string) ([]domain.Ticket, error) {
	tickets := []domain.Ticket{}
	if err := c.get(ctx, "get tickets", customerPath(customerID, "tickets"), nil, "", true, &tickets); err != nil {
		return nil, err
	}
	return nonNil(tickets), nil
}

func (c *C360Client) GetInvoices(ctx context.Context, customerID string) ([]domain.Invoice, error) {
	invoices := []domain.Invoice{}
	if err := c.get(ctx, "get invoices", customerPath(customerID, "invoices"), nil, "", true, &invoices); err != nil {
		return nil, err
	}
	return nonNil(invoices), nil
}

func customerPath(customerID, resource string) string {
	return "/customer/" + customerID + "/" + resource
}

// nonNil turns a JSON null list into an empty one.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
