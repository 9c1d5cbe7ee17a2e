package personalizing

import (
	"github.com/ettle/strcase"

	"github.com/vfg2006/customer360-api/internal/domain"
)

var actionLabels = map[string]string{
	"schedule_meeting": "Schedule Meeting",
	"initiate_renewal": "Start Renewal",
	"assign_engineer":  "Assign Engineer",
	"contact_finance":  "Contact Finance",
	"send_campaign":    "Send Campaign",
}

// ActionLabel is the button text for a recommendation's action type.
func ActionLabel(actionType string) string {
	if label, ok := actionLabels[actionType]; ok {
		return label
	}
	return "Take Action"
}

// AlertLabel turns an alert type into a heading, "payment_overdue" becomes "Payment Overdue".
func AlertLabel(t domain.AlertType) string {
	if t == "" {
		return ""
	}
	return strcase.ToCase(string(t), strcase.TitleCase, ' ')
}
