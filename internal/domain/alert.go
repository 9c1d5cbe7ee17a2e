package domain

type Alert struct {
	AlertID        string    `json:"alert_id"`
	AccountID      string    `json:"account_id,omitempty"`
	AccountName    string    `json:"account_name,omitempty"`
	AlertType      AlertType `json:"alert_type"`
	Severity       Severity  `json:"severity"`
	Message        string    `json:"message"`
	Recommendation string    `json:"recommendation,omitempty"`
	ActionType     string    `json:"action_type,omitempty"`
	CreatedAt      string    `json:"created_at,omitempty"`
}

type Recommendation struct {
	RecommendationID string                 `json:"recommendation_id"`
	AccountID        string                 `json:"account_id,omitempty"`
	AccountName      string                 `json:"account_name,omitempty"`
	Category         RecommendationCategory `json:"category"`
	Priority         Severity               `json:"priority"`
	Title            string                 `json:"title"`
	Description      string                 `json:"description"`
	ExpectedOutcome  string                 `json:"expected_outcome,omitempty"`
	EstimatedImpact  float64                `json:"estimated_impact"`
	ActionType       string                 `json:"action_type,omitempty"`
	Status           string                 `json:"status,omitempty"`
}
