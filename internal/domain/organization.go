package domain

// OpCo is an operating company, one per country the group trades in.
type OpCo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Region string `json:"region"`
}

// BusinessUnit is a product line or brand a customer may buy from,
// independent of geography. The backend calls these subsidiaries.
type BusinessUnit struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	ShortName   string   `json:"short_name" yaml:"short_name"`
	Color       string   `json:"color" yaml:"color"`
	Description string   `json:"description" yaml:"description"`
	Countries   []string `json:"countries" yaml:"countries"`
}

// SubsidiaryRelation is one entry of a customer's string-encoded subsidiaries list.
type SubsidiaryRelation struct {
	SubsidiaryID      string   `json:"subsidiary_id"`
	ShortName         string   `json:"short_name,omitempty"`
	Services          []string `json:"services,omitempty"`
	AnnualRevenue     float64  `json:"annual_revenue"`
	TicketsCount      Count    `json:"tickets_count"`
	RelationshipStart string   `json:"relationship_start,omitempty"`
	Primary           bool     `json:"primary"`
}

type OpCoStats struct {
	OpCoID                string             `json:"opco_id"`
	TotalCustomers        int                `json:"total_customers"`
	TotalRevenue          float64            `json:"total_revenue"`
	AvgHealthScore        float64            `json:"avg_health_score"`
	HighRiskCustomers     int                `json:"high_risk_customers"`
	AvgRevenuePerCustomer float64            `json:"avg_revenue_per_customer"`
	HealthDistribution    map[string]int     `json:"health_distribution,omitempty"`
	RevenueBySubsidiary   map[string]float64 `json:"revenue_by_subsidiary,omitempty"`
}

type BusinessUnitStats struct {
	SubsidiaryID          string  `json:"subsidiary_id"`
	TotalCustomers        int     `json:"total_customers"`
	TotalRevenue          float64 `json:"total_revenue"`
	TotalTickets          Count   `json:"total_tickets"`
	AvgRevenuePerCustomer float64 `json:"avg_revenue_per_customer"`
}
