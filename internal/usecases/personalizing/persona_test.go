package personalizing

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/customer360-api/internal/domain"
)

func allAlerts() []domain.Alert {
	types := []domain.AlertType{
		domain.AlertChurnRisk,
		domain.AlertRenewalUrgent,
		domain.AlertUsageDecline,
		domain.AlertServiceIssues,
		domain.AlertLowSatisfaction,
		domain.AlertPaymentOverdue,
		domain.AlertCreditHold,
		"brand_new_type",
	}
	alerts := make([]domain.Alert, 0, len(types))
	for i, t := range types {
		alerts = append(alerts, domain.Alert{AlertID: string(rune('A' + i)), AlertType: t})
	}
	return alerts
}

func alertTypes(alerts []domain.Alert) []domain.AlertType {
	out := make([]domain.AlertType, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, a.AlertType)
	}
	return out
}

func TestFilterAlerts_Billing(t *testing.T) {
	got := FilterAlerts(allAlerts(), PersonaBilling)
	assert.Equal(t, []domain.AlertType{domain.AlertPaymentOverdue, domain.AlertCreditHold}, alertTypes(got))
}

func TestFilterAlerts_BillingSetIsUnique(t *testing.T) {
	billing := PersonaBilling.AlertTypes()
	slices.Sort(billing)

	for _, p := range Personas() {
		if p == PersonaBilling {
			continue
		}
		other := p.AlertTypes()
		slices.Sort(other)
		assert.NotEqual(t, billing, other, "persona %s", p)
	}
}

func TestFilterAlerts_UnknownPersona(t *testing.T) {
	assert.Empty(t, FilterAlerts(allAlerts(), Persona("intern")))
	assert.Empty(t, FilterRecommendations([]domain.Recommendation{{Category: domain.CategoryFinance}}, Persona("intern")))
}

func TestFilterRecommendations(t *testing.T) {
	recs := []domain.Recommendation{
		{RecommendationID: "1", Category: domain.CategoryRetention},
		{RecommendationID: "2", Category: domain.CategoryFinance},
		{RecommendationID: "3", Category: domain.CategoryExpansion},
		{RecommendationID: "4", Category: "Mystery"},
	}

	sales := FilterRecommendations(recs, PersonaSales)
	require.Len(t, sales, 1)
	assert.Equal(t, "3", sales[0].RecommendationID)

	board := FilterRecommendations(recs, PersonaBoard)
	assert.Len(t, board, 2)

	billing := FilterRecommendations(recs, PersonaBilling)
	require.Len(t, billing, 1)
	assert.Equal(t, "2", billing[0].RecommendationID)
}

func TestParsePersona(t *testing.T) {
	p, err := ParsePersona(" Billing ")
	require.NoError(t, err)
	assert.Equal(t, PersonaBilling, p)
	assert.Equal(t, "Board Chairman", PersonaBoard.DisplayName())
	assert.Equal(t, "Account Management", PersonaAccount.DisplayName())

	_, err = ParsePersona("intern")
	assert.ErrorIs(t, err, ErrUnknownPersona)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Schedule Meeting", ActionLabel("schedule_meeting"))
	assert.Equal(t, "Start Renewal", ActionLabel("initiate_renewal"))
	assert.Equal(t, "Take Action", ActionLabel("something_else"))
	assert.Equal(t, "Payment Overdue", AlertLabel(domain.AlertPaymentOverdue))
	assert.Equal(t, "Churn Risk", AlertLabel(domain.AlertChurnRisk))
}
