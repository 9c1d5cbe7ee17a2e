package c360client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360/schema"
	"github.com/vfg2006/customer360-api/internal/config"
	"github.com/vfg2006/customer360-api/internal/domain"
	"github.com/vfg2006/customer360-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxResponseBytes = 10 << 20

// Client talks to the customer 360 analytics API. One method per endpoint.
type Client interface {
	SearchCustomers(ctx context.Context, query string) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error)
	GetAlerts(ctx context.Context, customerID string) ([]domain.Alert, error)
	GetRecommendations(ctx context.Context, customerID string) ([]domain.Recommendation, error)
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
}

// PayloadValidator checks raw responses before they are decoded.
type PayloadValidator interface {
	Validate(name string, data []byte) error
	ValidateEach(name string, data []byte) error
}

type C360Client struct {
	httpClient *http.Client
	config     *config.Config
	validator  PayloadValidator
}

// NewClient builds the backend client. validator may be nil.
func NewClient(cfg *config.Config, validator PayloadValidator) Client {
	timeout := cfg.Backend.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &C360Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config:    cfg,
		validator: validator,
	}
}

type request struct {
	op      string
	method  string
	path    string
	query   url.Values
	body    any
	headers map[string]string
}

func (c *C360Client) do(ctx context.Context, r request) ([]byte, error) {
	endpoint, err := url.Parse(c.config.Backend.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "c360: parse base url")
	}
	endpoint.Path = path.Join(endpoint.Path, r.path)
	if len(r.query) > 0 {
		endpoint.RawQuery = r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, errors.Wrapf(err, "c360: %s: encode body", r.op)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint.String(), body)
	if err != nil {
		return nil, errors.Wrapf(err, "c360: %s: build request", r.op)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.config.Backend.APIKey != "" {
		req.Header.Set("X-API-Key", c.config.Backend.APIKey)
	}
	if id := log.GetCorrelationID(ctx); id != "" {
		req.Header.Set(log.CorrelationHeader, id)
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warnf("c360: %s %s failed", r.method, endpoint.Path)
		return nil, errors.Wrapf(err, "c360: %s", r.op)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrapf(err, "c360: %s: read body", r.op)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"method":      r.method,
		"path":        endpoint.Path,
		"status_code": resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("c360: backend call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(r.op, resp.StatusCode, data)
	}

	return data, nil
}

// get fetches path and decodes it into out. When schemaName is set the payload
// is validated first; list validates each element of an array response.
func (c *C360Client) get(ctx context.Context, op, p string, query url.Values, schemaName string, list bool, out any) error {
	data, err := c.do(ctx, request{op: op, method: http.MethodGet, path: p, query: query})
	if err != nil {
		return err
	}
	return c.decode(op, data, schemaName, list, out)
}

func (c *C360Client) decode(op string, data []byte, schemaName string, list bool, out any) error {
	if c.validator != nil && schemaName != "" {
		validate := c.validator.Validate
		if list {
			validate = c.validator.ValidateEach
		}
		if err := validate(schemaName, data); err != nil {
			return errors.Wrapf(err, "c360: %s", op)
		}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(schema.ErrInvalidPayload, "c360: %s: %v", op, err)
	}

	return nil
}
