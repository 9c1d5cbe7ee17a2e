package navigating

import (
	"errors"

	"github.com/vfg2006/customer360-api/internal/domain"
)

var ErrInvalidTransition = errors.New("invalid navigation transition")

// DrillView is a drill-down page. The opening tile picks the first one.
type DrillView string

const (
	ViewCustomers DrillView = "customers"
	ViewRevenue   DrillView = "revenue"
	ViewHealth    DrillView = "health"
	ViewAtRisk    DrillView = "at-risk"
)

func (v DrillView) Valid() bool {
	switch v {
	case ViewCustomers, ViewRevenue, ViewHealth, ViewAtRisk:
		return true
	}
	return false
}

type Level string

const (
	LevelClosed       Level = "closed"
	LevelMetric       Level = "metric"
	LevelCustomerList Level = "customer_list"
	LevelProfile      Level = "profile"
)

// DrillDown is the state of the drill-down modal. The zero value is closed.
type DrillDown struct {
	Metric             DrillView             `json:"metric,omitempty"`
	View               DrillView             `json:"view,omitempty"`
	Filter             *domain.SegmentFilter `json:"filter,omitempty"`
	SelectedCustomerID string                `json:"selected_customer_id,omitempty"`
}

func (d DrillDown) Open() bool {
	return d.Metric != ""
}

func (d DrillDown) Level() Level {
	switch {
	case !d.Open():
		return LevelClosed
	case d.SelectedCustomerID != "":
		return LevelProfile
	case d.View == ViewCustomers:
		return LevelCustomerList
	default:
		return LevelMetric
	}
}

func OpenMetric(metric DrillView, filter *domain.SegmentFilter) (DrillDown, error) {
	if !metric.Valid() {
		return DrillDown{}, ErrInvalidTransition
	}
	return DrillDown{Metric: metric, View: metric, Filter: filter}, nil
}

// ApplyFilter moves to the customer list narrowed by filter.
func (d DrillDown) ApplyFilter(filter *domain.SegmentFilter) (DrillDown, error) {
	if !d.Open() || filter == nil {
		return d, ErrInvalidTransition
	}
	d.View = ViewCustomers
	d.Filter = filter
	d.SelectedCustomerID = ""
	return d, nil
}

func (d DrillDown) SelectCustomer(customerID string) (DrillDown, error) {
	if !d.Open() || customerID == "" {
		return d, ErrInvalidTransition
	}
	d.SelectedCustomerID = customerID
	return d, nil
}

// Back steps out one level. moved is false when there is nowhere to go back
// to, and d is returned unchanged.
func (d DrillDown) Back() (next DrillDown, moved bool) {
	switch {
	case d.SelectedCustomerID != "":
		d.SelectedCustomerID = ""
		return d, true
	case d.Metric == ViewHealth && d.View == ViewCustomers:
		d.View = ViewHealth
		d.Filter = nil
		return d, true
	case d.Metric == ViewAtRisk && d.View == ViewCustomers:
		d.View = ViewAtRisk
		d.Filter = nil
		return d, true
	default:
		return d, false
	}
}

// CanGoBack reports whether Back would move, i.e. whether a back button shows.
func (d DrillDown) CanGoBack() bool {
	_, moved := d.Back()
	return moved
}

func (d DrillDown) Close() DrillDown {
	return DrillDown{}
}

// DrillEvent is a serialized user action on the drill-down.
type DrillEvent struct {
	Type       string                `json:"type"`
	Metric     DrillView             `json:"metric,omitempty"`
	Filter     *domain.SegmentFilter `json:"filter,omitempty"`
	CustomerID string                `json:"customer_id,omitempty"`
}

const (
	EventOpen           = "open"
	EventFilter         = "filter"
	EventSelectCustomer = "select_customer"
	EventBack           = "back"
	EventClose          = "close"
)

// ApplyDrill runs e against d. A back with nowhere to go leaves d as it is;
// only close ends the drill-down.
func ApplyDrill(d DrillDown, e DrillEvent) (DrillDown, error) {
	switch e.Type {
	case EventOpen:
		return OpenMetric(e.Metric, e.Filter)
	case EventFilter:
		return d.ApplyFilter(e.Filter)
	case EventSelectCustomer:
		return d.SelectCustomer(e.CustomerID)
	case EventBack:
		next, _ := d.Back()
		return next, nil
	case EventClose:
		return d.Close(), nil
	default:
		return d, ErrInvalidTransition
	}
}
