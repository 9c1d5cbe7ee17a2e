package personalizing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360/mocks"
	"github.com/vfg2006/customer360-api/internal/domain"
	"github.com/vfg2006/customer360-api/pkg/log"
)

func newTestService(t *testing.T) (*Service, *mocks.MockIntegrator) {
	t.Helper()
	log.SetupTestLogger()

	integrator := mocks.NewMockIntegrator(gomock.NewController(t))
	svc := NewService(integrator)
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }
	return svc, integrator
}

func TestView_Billing(t *testing.T) {
	svc, integrator := newTestService(t)
	ctx := context.Background()

	integrator.EXPECT().GetCustomer(gomock.Any(), "ACC-1").
		Return(&domain.Customer{AccountID: "ACC-1", HealthStatus: domain.HealthCritical, OverdueInvoices: 2}, nil)
	integrator.EXPECT().GetAlerts(gomock.Any(), "ACC-1").Return(allAlerts(), nil)
	integrator.EXPECT().GetRecommendations(gomock.Any(), "ACC-1").Return([]domain.Recommendation{
		{RecommendationID: "R1", Category: domain.CategoryFinance, ActionType: "contact_finance", Priority: domain.SeverityHigh},
		{RecommendationID: "R2", Category: domain.CategoryRetention},
	}, nil)

	view, err := svc.View(ctx, "ACC-1", PersonaBilling)
	require.NoError(t, err)

	assert.Equal(t, "Billing", view.DisplayName)
	assert.Equal(t, domain.ColorRed, view.Health.Color)
	assert.Empty(t, view.Charts)

	require.Len(t, view.Alerts, 2)
	assert.Equal(t, "Payment Overdue", view.Alerts[0].Label)
	assert.Equal(t, "Credit Hold", view.Alerts[1].Label)

	require.Len(t, view.Recommendations, 1)
	assert.Equal(t, "Contact Finance", view.Recommendations[0].ActionLabel)
	assert.Equal(t, domain.ColorYellow, view.Recommendations[0].CategoryColor)

	assert.Equal(t, domain.ColorRed, tileByKey(t, view.Tiles, "overdue_invoices").Color)
}

func TestView_DegradesWhenAlertsFail(t *testing.T) {
	svc, integrator := newTestService(t)

	integrator.EXPECT().GetCustomer(gomock.Any(), "ACC-1").
		Return(&domain.Customer{AccountID: "ACC-1", QuarterlyRevenueRaw: domain.EmbeddedJSON(`"oops"`)}, nil)
	integrator.EXPECT().GetAlerts(gomock.Any(), "ACC-1").Return(nil, errors.New("timeout"))
	integrator.EXPECT().GetRecommendations(gomock.Any(), "ACC-1").Return([]domain.Recommendation{}, nil)

	view, err := svc.View(context.Background(), "ACC-1", PersonaCEO)
	require.NoError(t, err)

	assert.NotNil(t, view.Alerts)
	assert.Empty(t, view.Alerts)

	require.Len(t, view.Charts, 1)
	assert.Equal(t, NoRevenueData, view.Charts[0].Message)

	fields := make([]string, 0, len(view.DataIssues))
	for _, issue := range view.DataIssues {
		fields = append(fields, issue.Field)
	}
	assert.Contains(t, fields, "alerts")
}

func TestView_CustomerErrorIsReturned(t *testing.T) {
	svc, integrator := newTestService(t)

	integrator.EXPECT().GetCustomer(gomock.Any(), "missing").Return(nil, errors.New("not found"))

	_, err := svc.View(context.Background(), "missing", PersonaAccount)
	require.Error(t, err)
}

func TestView_UnknownPersona(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.View(context.Background(), "ACC-1", Persona("intern"))
	assert.ErrorIs(t, err, ErrUnknownPersona)
}
