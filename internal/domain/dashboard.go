package domain

// CustomerSummary is the short row shape the backend uses in samples and top lists.
type CustomerSummary struct {
	AccountID         string       `json:"account_id"`
	AccountName       string       `json:"account_name"`
	Region            string       `json:"region,omitempty"`
	AnnualRevenue     float64      `json:"annual_revenue"`
	HealthStatus      HealthStatus `json:"health_status,omitempty"`
	HealthScore       float64      `json:"health_score"`
	ChurnRiskScore    float64      `json:"churn_risk_score"`
	PrimarySubsidiary string       `json:"primary_subsidiary,omitempty"`
}

// DashboardSummary is the aggregate shown on the group, OpCo and business
// unit landing pages. OpCoID or SubsidiaryID is set when it is scoped.
type DashboardSummary struct {
	OpCoID                string                       `json:"opco_id,omitempty"`
	SubsidiaryID          string                       `json:"subsidiary_id,omitempty"`
	TotalCustomers        int                          `json:"total_customers"`
	TotalRevenue          float64                      `json:"total_revenue"`
	AvgHealthScore        float64                      `json:"avg_health_score"`
	HighRiskCustomers     int                          `json:"high_risk_customers"`
	HealthDistribution    map[string]int               `json:"health_distribution"`
	RiskDistribution      map[string]int               `json:"risk_distribution"`
	RegionDistribution    map[string]int               `json:"region_distribution"`
	TopRevenueCustomers   []CustomerSummary            `json:"top_revenue_customers"`
	AtRiskCustomers       []CustomerSummary            `json:"at_risk_customers"`
	HealthyCustomers      []CustomerSummary            `json:"healthy_customers_sample"`
	AtRiskSample          []CustomerSummary            `json:"at_risk_customers_sample"`
	CriticalSample        []CustomerSummary            `json:"critical_customers_sample"`
	RegionSamples         map[string][]CustomerSummary `json:"region_samples"`
	AvgNPS                float64                      `json:"avg_nps"`
	AvgCSAT               float64                      `json:"avg_csat"`
	AvgCES                float64                      `json:"avg_ces"`
	AvgSupportTickets     float64                      `json:"avg_support_tickets"`
	AvgSLACompliance      float64                      `json:"avg_sla_compliance"`
	AvgRevenuePerCustomer float64                      `json:"avg_revenue_per_customer"`
}

// Normalize makes every optional sample list and distribution non-nil so
// missing arrays render as empty instead of failing.
func (d *DashboardSummary) Normalize() {
	if d.HealthDistribution == nil {
		d.HealthDistribution = map[string]int{}
	}
	if d.RiskDistribution == nil {
		d.RiskDistribution = map[string]int{}
	}
	if d.RegionDistribution == nil {
		d.RegionDistribution = map[string]int{}
	}
	if d.RegionSamples == nil {
		d.RegionSamples = map[string][]CustomerSummary{}
	}
	for _, list := range []*[]CustomerSummary{
		&d.TopRevenueCustomers,
		&d.AtRiskCustomers,
		&d.HealthyCustomers,
		&d.AtRiskSample,
		&d.CriticalSample,
	} {
		if *list == nil {
			*list = []CustomerSummary{}
		}
	}
}

// SampleFor returns the summary sample matching a health status.
func (d *DashboardSummary) SampleFor(status HealthStatus) []CustomerSummary {
	switch status {
	case HealthHealthy:
		return d.HealthyCustomers
	case HealthAtRisk:
		return d.AtRiskSample
	case HealthCritical:
		return d.CriticalSample
	default:
		return []CustomerSummary{}
	}
}
