package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomer_LenientMetrics(t *testing.T) {
	payload := `{
		"account_id": "ACC-001",
		"open_tickets": 3.0,
		"days_overdue": null,
		"days_to_renewal": 45,
		"credit_hold": 1.0,
		"qbr_scheduled": "false",
		"executive_sponsor_engaged": true,
		"annual_revenue": null
	}`

	var c Customer
	require.NoError(t, json.Unmarshal([]byte(payload), &c))

	assert.Equal(t, 3, c.OpenTickets.Int())
	assert.Equal(t, 0, c.DaysOverdue.Int())
	assert.Equal(t, 45, c.DaysToRenewal.Int())
	assert.True(t, bool(c.CreditHold))
	assert.False(t, bool(c.QBRScheduled))
	assert.True(t, bool(c.ExecutiveSponsorEngaged))
	assert.Zero(t, c.AnnualRevenue)
}

func TestCount_RejectsText(t *testing.T) {
	var c Count
	assert.Error(t, c.UnmarshalJSON([]byte(`"many"`)))
}
