package domain

type SegmentFilterType string

const (
	SegmentByHealth SegmentFilterType = "health"
	SegmentByRegion SegmentFilterType = "region"
)

func (t SegmentFilterType) Valid() bool {
	return t == SegmentByHealth || t == SegmentByRegion
}

// SegmentFilter narrows a customer list by health status or region.
// A nil *SegmentFilter means no filter.
type SegmentFilter struct {
	Type  SegmentFilterType `json:"type"`
	Value string            `json:"value"`
}

// Key is the cache key fragment for the segment.
func (f *SegmentFilter) Key() string {
	if f == nil {
		return "all"
	}
	return string(f.Type) + ":" + f.Value
}

type SegmentInfo struct {
	FilterType  string `json:"filter_type"`
	FilterValue string `json:"filter_value"`
}

type SegmentStats struct {
	CustomerCount  int     `json:"customer_count"`
	TotalRevenue   float64 `json:"total_revenue"`
	AvgHealthScore float64 `json:"avg_health_score"`
	HighRiskCount  int     `json:"high_risk_count"`
	AtRiskRevenue  float64 `json:"at_risk_revenue"`
	AvgChurnRisk   float64 `json:"avg_churn_risk"`
}

// SegmentInsights is the backend's aggregate answer for a segment.
type SegmentInsights struct {
	SegmentInfo        SegmentInfo      `json:"segment_info"`
	TopRecommendations []Recommendation `json:"top_recommendations"`
	CriticalAlerts     []Alert          `json:"critical_alerts"`
	SegmentStats       SegmentStats     `json:"segment_stats"`
}

// Normalize replaces absent lists with empty ones.
func (s *SegmentInsights) Normalize() {
	if s.TopRecommendations == nil {
		s.TopRecommendations = []Recommendation{}
	}
	if s.CriticalAlerts == nil {
		s.CriticalAlerts = []Alert{}
	}
}
