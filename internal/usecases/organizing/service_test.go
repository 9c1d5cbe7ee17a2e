package organizing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360/mocks"
	"github.com/vfg2006/customer360-api/internal/domain"
	"github.com/vfg2006/customer360-api/internal/usecases/navigating"
	"github.com/vfg2006/customer360-api/pkg/log"
)

func newTestService(t *testing.T) (Organizer, *mocks.MockIntegrator) {
	t.Helper()
	log.SetupTestLogger()

	integrator := mocks.NewMockIntegrator(gomock.NewController(t))
	return NewService(integrator, nil), integrator
}

func sasaiCustomer() *domain.Customer {
	return &domain.Customer{
		AccountID:       "ACC-9",
		SubsidiariesRaw: domain.EmbeddedJSON(`"[{\"subsidiary_id\": \"sasai\", \"primary\": true}]"`),
	}
}

func withCustomer() navigating.ViewState {
	return navigating.NewViewState(navigating.Selection{CustomerID: "ACC-9"})
}

func TestSelectBusinessUnit_ClearsCustomerOutsideUnit(t *testing.T) {
	svc, integrator := newTestService(t)

	integrator.EXPECT().GetCustomer(gomock.Any(), "ACC-9").Return(sasaiCustomer(), nil)

	next, err := svc.SelectBusinessUnit(context.Background(), "s1", withCustomer(), "liquid")
	require.NoError(t, err)
	assert.Empty(t, next.Selection.CustomerID)
	assert.Equal(t, "liquid", next.Selection.BusinessUnit)
	assert.Equal(t, navigating.KindBusinessUnit, next.Kind)
}

func TestSelectBusinessUnit_KeepsCustomerInUnit(t *testing.T) {
	svc, integrator := newTestService(t)

	integrator.EXPECT().GetCustomer(gomock.Any(), "ACC-9").Return(sasaiCustomer(), nil)

	next, err := svc.SelectBusinessUnit(context.Background(), "s1", withCustomer(), "sasai")
	require.NoError(t, err)
	assert.Equal(t, "ACC-9", next.Selection.CustomerID)
	assert.Equal(t, navigating.KindCustomerProfile, next.Kind)
}

func TestSelectBusinessUnit_PrimarySubsidiaryCounts(t *testing.T) {
	svc, integrator := newTestService(t)

	integrator.EXPECT().GetCustomer(gomock.Any(), "ACC-9").
		Return(&domain.Customer{AccountID: "ACC-9", PrimarySubsidiary: "liquid"}, nil)

	next, err := svc.SelectBusinessUnit(context.Background(), "s1", withCustomer(), "liquid")
	require.NoError(t, err)
	assert.Equal(t, "ACC-9", next.Selection.CustomerID)
}

func TestSelectBusinessUnit_FetchErrorClears(t *testing.T) {
	svc, integrator := newTestService(t)

	integrator.EXPECT().GetCustomer(gomock.Any(), "ACC-9").Return(nil, errors.New("connection refused"))

	next, err := svc.SelectBusinessUnit(context.Background(), "s1", withCustomer(), "liquid")
	require.NoError(t, err)
	assert.Empty(t, next.Selection.CustomerID)
}

func TestSelectBusinessUnit_AllUnitsSkipsCheck(t *testing.T) {
	svc, _ := newTestService(t)

	state := navigating.NewViewState(navigating.Selection{BusinessUnit: "liquid", CustomerID: "ACC-9"})
	next, err := svc.SelectBusinessUnit(context.Background(), "s1", state, "")
	require.NoError(t, err)
	assert.Equal(t, "ACC-9", next.Selection.CustomerID)
	assert.Empty(t, next.Selection.BusinessUnit)
}

func TestApply_OpCoDoesNotCheck(t *testing.T) {
	svc, _ := newTestService(t)

	next, err := svc.Apply(context.Background(), "s1", withCustomer(), navigating.SelectionEvent{Type: navigating.EventSelectOpCo, Value: "zw"})
	require.NoError(t, err)
	assert.Equal(t, "zw", next.Selection.OpCo)
	assert.Equal(t, "ACC-9", next.Selection.CustomerID)
}

func TestApply_SelectCustomerInsideUnit(t *testing.T) {
	unitState := navigating.NewViewState(navigating.Selection{BusinessUnit: "liquid"})
	selectACC9 := navigating.SelectionEvent{Type: navigating.EventSelectCustomer, Value: "ACC-9"}

	t.Run("customer from another unit is not selected", func(t *testing.T) {
		svc, integrator := newTestService(t)
		integrator.EXPECT().GetCustomer(gomock.Any(), "ACC-9").Return(sasaiCustomer(), nil)

		next, err := svc.Apply(context.Background(), "s1", unitState, selectACC9)
		require.NoError(t, err)
		assert.Empty(t, next.Selection.CustomerID)
		assert.Equal(t, "liquid", next.Selection.BusinessUnit)
		assert.Equal(t, navigating.KindBusinessUnit, next.Kind)
	})

	t.Run("customer of the unit is selected", func(t *testing.T) {
		svc, integrator := newTestService(t)
		integrator.EXPECT().GetCustomer(gomock.Any(), "ACC-9").
			Return(&domain.Customer{AccountID: "ACC-9", PrimarySubsidiary: "liquid"}, nil)

		next, err := svc.Apply(context.Background(), "s1", unitState, selectACC9)
		require.NoError(t, err)
		assert.Equal(t, "ACC-9", next.Selection.CustomerID)
		assert.Equal(t, navigating.KindCustomerProfile, next.Kind)
	})

	t.Run("fetch error leaves no customer", func(t *testing.T) {
		svc, integrator := newTestService(t)
		integrator.EXPECT().GetCustomer(gomock.Any(), "ACC-9").Return(nil, errors.New("timeout"))

		next, err := svc.Apply(context.Background(), "s1", unitState, selectACC9)
		require.NoError(t, err)
		assert.Empty(t, next.Selection.CustomerID)
	})

	t.Run("no unit means no check", func(t *testing.T) {
		svc, _ := newTestService(t)

		next, err := svc.Apply(context.Background(), "s1", navigating.NewViewState(navigating.Selection{OpCo: "zw"}), selectACC9)
		require.NoError(t, err)
		assert.Equal(t, "ACC-9", next.Selection.CustomerID)
	})
}

func TestSearchCustomers_Narrowing(t *testing.T) {
	svc, integrator := newTestService(t)
	ctx := context.Background()

	list := []domain.CustomerSummary{{AccountID: "A", AccountName: "Acme Mining"}, {AccountID: "B", AccountName: "Globex"}}

	integrator.EXPECT().ListBusinessUnitCustomers(gomock.Any(), "liquid", "zw").Return(list, nil)
	got, err := svc.SearchCustomers(ctx, "ACME", navigating.Selection{OpCo: "zw", BusinessUnit: "liquid"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].AccountID)

	integrator.EXPECT().ListOpCoCustomers(gomock.Any(), "zw").Return(list, nil)
	got, err = svc.SearchCustomers(ctx, "", navigating.Selection{OpCo: "zw"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	integrator.EXPECT().SearchCustomers(gomock.Any(), "glo").Return([]domain.Customer{{AccountID: "B", AccountName: "Globex"}}, nil)
	got, err = svc.SearchCustomers(ctx, "glo", navigating.Selection{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Globex", got[0].AccountName)
}

func TestDashboard_UsesSelection(t *testing.T) {
	svc, integrator := newTestService(t)
	ctx := context.Background()

	integrator.EXPECT().GetBusinessUnitDashboard(gomock.Any(), "liquid", "zw").Return(&domain.DashboardSummary{SubsidiaryID: "liquid"}, nil)
	integrator.EXPECT().GetDashboardSummary(gomock.Any(), "ke").Return(&domain.DashboardSummary{OpCoID: "ke"}, nil)

	bu, err := svc.Dashboard(ctx, navigating.Selection{OpCo: "zw", BusinessUnit: "liquid"})
	require.NoError(t, err)
	assert.Equal(t, "liquid", bu.SubsidiaryID)

	opco, err := svc.Dashboard(ctx, navigating.Selection{OpCo: "ke"})
	require.NoError(t, err)
	assert.Equal(t, "ke", opco.OpCoID)
}
