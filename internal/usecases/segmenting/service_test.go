package segmenting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360/mocks"
	"github.com/vfg2006/customer360-api/internal/domain"
	"github.com/vfg2006/customer360-api/pkg/log"
)

func customers() []domain.Customer {
	return []domain.Customer{
		{AccountID: "A", AccountName: "Acme", HealthStatus: domain.HealthHealthy, Region: "East Africa"},
		{AccountID: "B", AccountName: "Globex", HealthStatus: domain.HealthCritical, Region: "Southern Africa"},
		{AccountID: "C", AccountName: "Initech", HealthStatus: domain.HealthAtRisk, Region: "East Africa"},
		{AccountID: "D", AccountName: "Umbrella", HealthStatus: domain.HealthAtRisk, Region: "West Africa"},
	}
}

func ids(list []domain.Customer) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.AccountID)
	}
	return out
}

func TestFilter_NilIsIdentity(t *testing.T) {
	in := customers()
	out := Filter(in, nil)

	require.Len(t, out, len(in))
	assert.Same(t, &in[0], &out[0])
}

func TestFilter_UnknownTypeIsIdentity(t *testing.T) {
	in := customers()
	out := Filter(in, &domain.SegmentFilter{Type: "industry", Value: "Mining"})
	assert.Same(t, &in[0], &out[0])
}

func TestFilter_HealthAndRegion(t *testing.T) {
	in := customers()

	health := Filter(in, &domain.SegmentFilter{Type: domain.SegmentByHealth, Value: "At-Risk"})
	assert.Equal(t, []string{"C", "D"}, ids(health))

	region := Filter(in, &domain.SegmentFilter{Type: domain.SegmentByRegion, Value: "East Africa"})
	assert.Equal(t, []string{"A", "C"}, ids(region))

	// filtering twice by the same segment changes nothing
	assert.Equal(t, ids(region), ids(Filter(region, &domain.SegmentFilter{Type: domain.SegmentByRegion, Value: "East Africa"})))

	none := Filter(in, &domain.SegmentFilter{Type: domain.SegmentByRegion, Value: "North Africa"})
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestTitleAndEmptyMessage(t *testing.T) {
	health := &domain.SegmentFilter{Type: domain.SegmentByHealth, Value: "Critical"}
	region := &domain.SegmentFilter{Type: domain.SegmentByRegion, Value: "North Africa"}

	assert.Equal(t, "All Customers", Title(nil))
	assert.Equal(t, "Critical Customers", Title(health))
	assert.Equal(t, "Customers in North Africa", Title(region))

	assert.Equal(t, "No customers found in this segment", EmptyMessage(health))
	assert.Equal(t, `There are currently no customers in the "North Africa" region.`, EmptyMessage(region))
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("", "")
	require.NoError(t, err)
	assert.Nil(t, f)

	f, err = ParseFilter("Health", "Healthy")
	require.NoError(t, err)
	assert.Equal(t, &domain.SegmentFilter{Type: domain.SegmentByHealth, Value: "Healthy"}, f)

	_, err = ParseFilter("industry", "Mining")
	assert.ErrorIs(t, err, ErrInvalidFilter)

	_, err = ParseFilter("region", "")
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func newTestService(t *testing.T) (Segmenter, *mocks.MockIntegrator) {
	t.Helper()
	log.SetupTestLogger()

	integrator := mocks.NewMockIntegrator(gomock.NewController(t))
	return NewService(integrator), integrator
}

func TestSegment_WithInsights(t *testing.T) {
	svc, integrator := newTestService(t)
	filter := domain.SegmentFilter{Type: domain.SegmentByRegion, Value: "East Africa"}

	integrator.EXPECT().SearchCustomers(gomock.Any(), "").Return(customers(), nil)
	integrator.EXPECT().GetSegmentInsights(gomock.Any(), filter).
		Return(&domain.SegmentInsights{SegmentStats: domain.SegmentStats{CustomerCount: 2}}, nil)

	view, err := svc.Segment(context.Background(), &filter)
	require.NoError(t, err)

	assert.Equal(t, "Customers in East Africa", view.Title)
	assert.Len(t, view.Customers, 2)
	assert.Empty(t, view.EmptyMessage)
	require.NotNil(t, view.Insights)
	assert.Equal(t, 2, view.Insights.SegmentStats.CustomerCount)
	assert.NotNil(t, view.Insights.CriticalAlerts)
}

func TestSegment_InsightsFailureDegrades(t *testing.T) {
	svc, integrator := newTestService(t)
	filter := domain.SegmentFilter{Type: domain.SegmentByHealth, Value: "Healthy"}

	integrator.EXPECT().SearchCustomers(gomock.Any(), "").Return(customers(), nil)
	integrator.EXPECT().GetSegmentInsights(gomock.Any(), filter).Return(nil, errors.New("timeout"))

	view, err := svc.Segment(context.Background(), &filter)
	require.NoError(t, err)
	assert.Len(t, view.Customers, 1)
	assert.Nil(t, view.Insights)
	require.Len(t, view.DataIssues, 1)
	assert.Equal(t, "insights", view.DataIssues[0].Field)
}

func TestSegment_NoFilterSkipsInsights(t *testing.T) {
	svc, integrator := newTestService(t)

	integrator.EXPECT().SearchCustomers(gomock.Any(), "").Return([]domain.Customer{}, nil)

	view, err := svc.Segment(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "All Customers", view.Title)
	assert.Equal(t, NoCustomersInSegment, view.EmptyMessage)
}

func TestSegment_InvalidType(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Segment(context.Background(), &domain.SegmentFilter{Type: "industry", Value: "x"})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestAtRisk_CountsSeparately(t *testing.T) {
	svc, integrator := newTestService(t)

	integrator.EXPECT().SearchCustomers(gomock.Any(), "").Return(customers(), nil)

	view, err := svc.AtRisk(context.Background())
	require.NoError(t, err)
	assert.Len(t, view.Customers, 3)
	assert.Equal(t, 2, view.AtRiskCount)
	assert.Equal(t, 1, view.CriticalCount)
}
