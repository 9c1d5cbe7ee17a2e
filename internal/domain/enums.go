package domain

// Palette names understood by the dashboard client.
const (
	ColorGreen  = "green"
	ColorOrange = "orange"
	ColorRed    = "red"
	ColorYellow = "yellow"
	ColorBlue   = "blue"
	ColorPurple = "purple"
	ColorGray   = "gray"
)

// Badge is the fixed color and label a closed enumeration value renders with.
type Badge struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

func unknownBadge(value string) Badge {
	return Badge{Value: value, Label: value, Color: ColorGray}
}

type HealthStatus string

const (
	HealthHealthy  HealthStatus = "Healthy"
	HealthAtRisk   HealthStatus = "At-Risk"
	HealthCritical HealthStatus = "Critical"
)

var healthBadges = map[HealthStatus]Badge{
	HealthHealthy:  {Value: string(HealthHealthy), Label: "Healthy", Color: ColorGreen},
	HealthAtRisk:   {Value: string(HealthAtRisk), Label: "At Risk", Color: ColorYellow},
	HealthCritical: {Value: string(HealthCritical), Label: "Critical", Color: ColorRed},
}

func (h HealthStatus) Badge() Badge {
	if b, ok := healthBadges[h]; ok {
		return b
	}
	return unknownBadge(string(h))
}

func (h HealthStatus) Valid() bool {
	_, ok := healthBadges[h]
	return ok
}

// IsAtRisk is true for the statuses listed on the at-risk drill-down.
func (h HealthStatus) IsAtRisk() bool {
	return h == HealthAtRisk || h == HealthCritical
}

type ChurnRiskLevel string

const (
	ChurnLow    ChurnRiskLevel = "LOW"
	ChurnMedium ChurnRiskLevel = "MEDIUM"
	ChurnHigh   ChurnRiskLevel = "HIGH"
)

var churnBadges = map[ChurnRiskLevel]Badge{
	ChurnLow:    {Value: string(ChurnLow), Label: "Low", Color: ColorGreen},
	ChurnMedium: {Value: string(ChurnMedium), Label: "Medium", Color: ColorYellow},
	ChurnHigh:   {Value: string(ChurnHigh), Label: "High", Color: ColorRed},
}

func (c ChurnRiskLevel) Badge() Badge {
	if b, ok := churnBadges[c]; ok {
		return b
	}
	return unknownBadge(string(c))
}

// Severity is shared by alerts and recommendation priorities.
type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
)

var severityBadges = map[Severity]Badge{
	SeverityHigh:   {Value: string(SeverityHigh), Label: "High", Color: ColorRed},
	SeverityMedium: {Value: string(SeverityMedium), Label: "Medium", Color: ColorYellow},
	SeverityLow:    {Value: string(SeverityLow), Label: "Low", Color: ColorBlue},
}

func (s Severity) Badge() Badge {
	if b, ok := severityBadges[s]; ok {
		return b
	}
	return unknownBadge(string(s))
}

type AlertType string

const (
	AlertChurnRisk       AlertType = "churn_risk"
	AlertRenewalUrgent   AlertType = "renewal_urgent"
	AlertUsageDecline    AlertType = "usage_decline"
	AlertServiceIssues   AlertType = "service_issues"
	AlertLowSatisfaction AlertType = "low_satisfaction"
	AlertPaymentOverdue  AlertType = "payment_overdue"
	AlertCreditHold      AlertType = "credit_hold"
)

var alertTypeColors = map[AlertType]string{
	AlertChurnRisk:       ColorRed,
	AlertRenewalUrgent:   ColorOrange,
	AlertUsageDecline:    ColorYellow,
	AlertServiceIssues:   ColorPurple,
	AlertLowSatisfaction: ColorOrange,
	AlertPaymentOverdue:  ColorRed,
	AlertCreditHold:      ColorRed,
}

func (a AlertType) Color() string {
	if c, ok := alertTypeColors[a]; ok {
		return c
	}
	return ColorGray
}

type RecommendationCategory string

const (
	CategoryRetention  RecommendationCategory = "Retention"
	CategoryRenewal    RecommendationCategory = "Renewal"
	CategoryExpansion  RecommendationCategory = "Expansion"
	CategoryExperience RecommendationCategory = "Experience"
	CategoryAdoption   RecommendationCategory = "Adoption"
	CategorySales      RecommendationCategory = "Sales"
	CategoryFinance    RecommendationCategory = "Finance"
	CategoryService    RecommendationCategory = "Service"
)

var categoryColors = map[RecommendationCategory]string{
	CategoryRetention:  ColorRed,
	CategoryRenewal:    ColorOrange,
	CategoryExpansion:  ColorGreen,
	CategoryExperience: ColorPurple,
	CategoryAdoption:   ColorBlue,
	CategorySales:      ColorGreen,
	CategoryFinance:    ColorYellow,
	CategoryService:    ColorPurple,
}

func (c RecommendationCategory) Color() string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return ColorGray
}
