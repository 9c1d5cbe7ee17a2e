package personalizing

import (
	"errors"
	"slices"
	"strings"

	"github.com/vfg2006/customer360-api/internal/domain"
)

var ErrUnknownPersona = errors.New("unknown persona")

// Persona selects which slice of a customer profile a role cares about.
type Persona string

const (
	PersonaBoard      Persona = "board"
	PersonaCEO        Persona = "ceo"
	PersonaOperations Persona = "operations"
	PersonaSales      Persona = "sales"
	PersonaService    Persona = "service"
	PersonaBilling    Persona = "billing"
	PersonaAccount    Persona = "account"
)

var personas = []Persona{
	PersonaBoard,
	PersonaCEO,
	PersonaOperations,
	PersonaSales,
	PersonaService,
	PersonaBilling,
	PersonaAccount,
}

var displayNames = map[Persona]string{
	PersonaBoard:      "Board Chairman",
	PersonaCEO:        "CEO",
	PersonaOperations: "Operations",
	PersonaSales:      "Sales",
	PersonaService:    "Service",
	PersonaBilling:    "Billing",
	PersonaAccount:    "Account Management",
}

var personaAlerts = map[Persona][]domain.AlertType{
	PersonaBoard:      {domain.AlertChurnRisk, domain.AlertRenewalUrgent, domain.AlertUsageDecline},
	PersonaCEO:        {domain.AlertChurnRisk, domain.AlertUsageDecline, domain.AlertRenewalUrgent, domain.AlertLowSatisfaction},
	PersonaOperations: {domain.AlertServiceIssues, domain.AlertLowSatisfaction},
	PersonaSales:      {domain.AlertRenewalUrgent, domain.AlertUsageDecline},
	PersonaService:    {domain.AlertServiceIssues, domain.AlertLowSatisfaction},
	PersonaBilling:    {domain.AlertPaymentOverdue, domain.AlertCreditHold},
	PersonaAccount:    {domain.AlertChurnRisk, domain.AlertRenewalUrgent, domain.AlertLowSatisfaction, domain.AlertUsageDecline},
}

var personaCategories = map[Persona][]domain.RecommendationCategory{
	PersonaBoard:      {domain.CategoryRetention, domain.CategoryRenewal, domain.CategoryExpansion},
	PersonaCEO:        {domain.CategoryRetention, domain.CategoryRenewal, domain.CategoryExpansion, domain.CategoryExperience},
	PersonaOperations: {domain.CategoryService, domain.CategoryExperience, domain.CategoryAdoption},
	PersonaSales:      {domain.CategoryExpansion, domain.CategorySales, domain.CategoryRenewal},
	PersonaService:    {domain.CategoryService, domain.CategoryExperience, domain.CategoryAdoption},
	PersonaBilling:    {domain.CategoryFinance},
	PersonaAccount:    {domain.CategoryRetention, domain.CategoryRenewal, domain.CategoryExperience, domain.CategoryAdoption},
}

// Personas lists every persona in switcher order.
func Personas() []Persona {
	return slices.Clone(personas)
}

func ParsePersona(s string) (Persona, error) {
	p := Persona(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := displayNames[p]; !ok {
		return "", ErrUnknownPersona
	}
	return p, nil
}

func (p Persona) DisplayName() string {
	return displayNames[p]
}

// AlertTypes returns the alert types shown to p, nil for an unknown persona.
func (p Persona) AlertTypes() []domain.AlertType {
	return slices.Clone(personaAlerts[p])
}

func (p Persona) Categories() []domain.RecommendationCategory {
	return slices.Clone(personaCategories[p])
}

// FilterAlerts keeps the alerts relevant to p, in their original order.
func FilterAlerts(alerts []domain.Alert, p Persona) []domain.Alert {
	relevant := personaAlerts[p]
	out := make([]domain.Alert, 0, len(alerts))
	for _, a := range alerts {
		if slices.Contains(relevant, a.AlertType) {
			out = append(out, a)
		}
	}
	return out
}

func FilterRecommendations(recs []domain.Recommendation, p Persona) []domain.Recommendation {
	relevant := personaCategories[p]
	out := make([]domain.Recommendation, 0, len(recs))
	for _, r := range recs {
		if slices.Contains(relevant, r.Category) {
			out = append(out, r)
		}
	}
	return out
}
