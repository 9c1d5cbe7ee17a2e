package domain

import (
	"fmt"
)

// Customer is the 360 profile of an account as computed by the analytics backend.
type Customer struct {
	AccountID     string `json:"account_id"`
	AccountName   string `json:"account_name"`
	Region        string `json:"region"`
	Industry      string `json:"industry,omitempty"`
	CustomerSince string `json:"customer_since,omitempty"`

	// Commercial
	AnnualRevenue           float64      `json:"annual_revenue"`
	PreviousYearRevenue     float64      `json:"previous_year_revenue"`
	MonthlyRecurringRevenue float64      `json:"monthly_recurring_revenue,omitempty"`
	QuarterlyRevenueRaw     EmbeddedJSON `json:"quarterly_revenue,omitempty"`
	ThreeYearRevenueRaw     EmbeddedJSON `json:"three_year_revenue,omitempty"`
	YoYGrowth               float64      `json:"yoy_growth"`
	CustomerLifetimeValue   float64      `json:"customer_lifetime_value"`
	ProfitMargin            float64      `json:"profit_margin"`
	RevenueConcentration    float64      `json:"revenue_concentration"`
	TotalCostToServe        float64      `json:"total_cost_to_serve,omitempty"`

	// Health and churn
	HealthScore    float64        `json:"health_score"`
	HealthStatus   HealthStatus   `json:"health_status"`
	ChurnRiskScore float64        `json:"churn_risk_score"`
	ChurnRiskLevel ChurnRiskLevel `json:"churn_risk_level"`

	// Satisfaction
	NPSScore  float64 `json:"nps_score"`
	CSATScore float64 `json:"csat_score"`
	CESScore  float64 `json:"ces_score"`

	// Support
	OpenTickets            Count   `json:"open_tickets"`
	ClosedTickets          Count   `json:"closed_tickets"`
	TotalTickets           Count   `json:"total_tickets"`
	AvgResponseTimeHours   float64 `json:"avg_response_time_hours"`
	AvgResolutionTimeHours float64 `json:"avg_resolution_time_hours"`
	SLACompliancePct       float64 `json:"sla_compliance_pct"`
	RecurringIssuesCount   Count   `json:"recurring_issues_count"`

	// Billing
	OverdueInvoices    Count   `json:"overdue_invoices"`
	OverdueAmount      float64 `json:"overdue_amount"`
	DaysOverdue        Count   `json:"days_overdue"`
	CreditHold         Flag    `json:"credit_hold"`
	DisputedInvoices   Count   `json:"disputed_invoices"`
	BillingAccuracyPct float64 `json:"billing_accuracy_pct"`
	PaymentTerms       string  `json:"payment_terms,omitempty"`

	// Sales pipeline
	ActiveServices       Count   `json:"active_services"`
	PipelineValue        float64 `json:"pipeline_value"`
	OpenOpportunities    Count   `json:"open_opportunities"`
	WonOpportunities     Count   `json:"won_opportunities"`
	WinRate              float64 `json:"win_rate"`
	AvgDealSize          float64 `json:"avg_deal_size"`
	AvgSalesCycleDays    float64 `json:"avg_sales_cycle_days"`
	NextCloseDate        string  `json:"next_close_date,omitempty"`
	NextCloseValue       float64 `json:"next_close_value"`
	NextCloseProbability float64 `json:"next_close_probability"`

	// Renewal
	DaysToRenewal         Count   `json:"days_to_renewal"`
	ContractEndDate       string  `json:"contract_end_date,omitempty"`
	UpcomingRenewalsCount Count   `json:"upcoming_renewals_count"`
	UpcomingRenewalValue  float64 `json:"upcoming_renewal_value"`
	RetentionProbability  float64 `json:"retention_probability"`

	// Engagement
	QBRScheduled            Flag  `json:"qbr_scheduled"`
	ExecutiveSponsorEngaged Flag  `json:"executive_sponsor_engaged"`
	LastInteractionDays     Count `json:"last_interaction_days"`

	// Business-unit relationships
	SubsidiariesRaw   EmbeddedJSON `json:"subsidiaries,omitempty"`
	SubsidiaryCount   Count        `json:"subsidiary_count,omitempty"`
	PrimarySubsidiary string       `json:"primary_subsidiary,omitempty"`
}

// DataIssue flags a field that was present but could not be decoded, so a
// view can tell corrupt data apart from missing data.
type DataIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (c *Customer) Subsidiaries() ([]SubsidiaryRelation, error) {
	relations := []SubsidiaryRelation{}
	if err := c.SubsidiariesRaw.Decode(&relations); err != nil {
		return []SubsidiaryRelation{}, fmt.Errorf("subsidiaries: %w", err)
	}
	return relations, nil
}

func (c *Customer) QuarterlyRevenue() ([]float64, error) {
	return decodeSeries("quarterly_revenue", c.QuarterlyRevenueRaw)
}

func (c *Customer) ThreeYearRevenue() ([]float64, error) {
	return decodeSeries("three_year_revenue", c.ThreeYearRevenueRaw)
}

func decodeSeries(field string, raw EmbeddedJSON) ([]float64, error) {
	values := []float64{}
	if err := raw.Decode(&values); err != nil {
		return []float64{}, fmt.Errorf("%s: %w", field, err)
	}
	return values, nil
}

// BelongsToBusinessUnit reports whether the customer has a relationship with
// the unit, either through its subsidiaries list or its primary subsidiary.
// A subsidiaries field that cannot be parsed counts as an empty list.
func (c *Customer) BelongsToBusinessUnit(unitID string) bool {
	if unitID == "" {
		return false
	}

	if c.PrimarySubsidiary == unitID {
		return true
	}

	relations, _ := c.Subsidiaries()
	for _, rel := range relations {
		if rel.SubsidiaryID == unitID {
			return true
		}
	}

	return false
}

// DataIssues lists the string-encoded fields that failed to decode.
func (c *Customer) DataIssues() []DataIssue {
	issues := []DataIssue{}

	if _, err := c.Subsidiaries(); err != nil {
		issues = append(issues, DataIssue{Field: "subsidiaries", Message: err.Error()})
	}
	if _, err := c.QuarterlyRevenue(); err != nil {
		issues = append(issues, DataIssue{Field: "quarterly_revenue", Message: err.Error()})
	}
	if _, err := c.ThreeYearRevenue(); err != nil {
		issues = append(issues, DataIssue{Field: "three_year_revenue", Message: err.Error()})
	}

	return issues
}

// Summary is the short row shape used by lists and samples.
func (c *Customer) Summary() CustomerSummary {
	return CustomerSummary{
		AccountID:         c.AccountID,
		AccountName:       c.AccountName,
		Region:            c.Region,
		AnnualRevenue:     c.AnnualRevenue,
		HealthStatus:      c.HealthStatus,
		HealthScore:       c.HealthScore,
		ChurnRiskScore:    c.ChurnRiskScore,
		PrimarySubsidiary: c.PrimarySubsidiary,
	}
}
