package personalizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/customer360-api/internal/domain"
)

func TestLayouts_CoverEveryPersona(t *testing.T) {
	layouts, err := Layouts()
	require.NoError(t, err)

	for _, p := range Personas() {
		layout, ok := layouts[p]
		require.True(t, ok, "persona %s", p)
		assert.NotEmpty(t, layout.Title)
		assert.NotEmpty(t, layout.Tiles)
	}
}

func tileByKey(t *testing.T, tiles []Tile, key string) Tile {
	t.Helper()
	for _, tile := range tiles {
		if tile.Key == key {
			return tile
		}
	}
	t.Fatalf("tile %s not found", key)
	return Tile{}
}

func TestRenderTiles_BoardThresholds(t *testing.T) {
	c := &domain.Customer{
		CustomerLifetimeValue: 2_345_678.4,
		RetentionProbability:  80,
		RevenueConcentration:  10.5,
		ProfitMargin:          19.9,
	}

	tiles, err := RenderTiles(c, PersonaBoard)
	require.NoError(t, err)

	clv := tileByKey(t, tiles, "customer_lifetime_value")
	assert.Equal(t, "$2,345,678", clv.Value)
	assert.Equal(t, domain.ColorGray, clv.Color)

	assert.Equal(t, domain.ColorGreen, tileByKey(t, tiles, "retention_probability").Color)

	concentration := tileByKey(t, tiles, "revenue_concentration")
	assert.Equal(t, "10.50%", concentration.Value)
	assert.Equal(t, domain.ColorRed, concentration.Color)
	assert.Equal(t, "annual_revenue", concentration.DrillDown)

	assert.Equal(t, domain.ColorOrange, tileByKey(t, tiles, "profit_margin").Color)
}

func TestRenderTiles_BillingAndTrend(t *testing.T) {
	c := &domain.Customer{DaysOverdue: 12, OverdueAmount: 0, AnnualRevenue: 1000, YoYGrowth: -3.5}

	billing, err := RenderTiles(c, PersonaBilling)
	require.NoError(t, err)
	assert.Equal(t, domain.ColorOrange, tileByKey(t, billing, "days_overdue").Color)
	assert.Equal(t, domain.ColorGreen, tileByKey(t, billing, "overdue_amount").Color)

	ceo, err := RenderTiles(c, PersonaCEO)
	require.NoError(t, err)
	revenue := tileByKey(t, ceo, "annual_revenue")
	require.NotNil(t, revenue.Trend)
	assert.Equal(t, -3.5, *revenue.Trend)
	assert.Equal(t, domain.ColorRed, tileByKey(t, ceo, "yoy_growth").Color)
}

func TestRenderTiles_UnknownPersona(t *testing.T) {
	_, err := RenderTiles(&domain.Customer{}, Persona("intern"))
	assert.ErrorIs(t, err, ErrUnknownPersona)
}

func TestRenderRevenueChart_Malformed(t *testing.T) {
	c := &domain.Customer{QuarterlyRevenueRaw: domain.EmbeddedJSON(`"[1, 2, oops"`)}

	assert.NotPanics(t, func() {
		chart := RenderRevenueChart(c, ChartQuarterlyRevenue, time.Now())
		assert.Equal(t, NoRevenueData, chart.Message)
		assert.Empty(t, chart.HTML)
	})
}

func TestRenderRevenueChart_Quarterly(t *testing.T) {
	c := &domain.Customer{QuarterlyRevenueRaw: domain.EmbeddedJSON(`"[100, 200, 300, 400]"`)}

	chart := RenderRevenueChart(c, ChartQuarterlyRevenue, time.Now())
	assert.Equal(t, []string{"Q4", "Q3", "Q2", "Q1"}, chart.Labels)
	assert.Equal(t, []float64{400, 300, 200, 100}, chart.Values)
	assert.Contains(t, chart.HTML, "echarts")
	assert.Empty(t, chart.Message)
}

func TestRenderRevenueChart_ThreeYear(t *testing.T) {
	c := &domain.Customer{ThreeYearRevenueRaw: domain.EmbeddedJSON(`[1000, 1100, 1250]`)}

	chart := RenderRevenueChart(c, ChartThreeYearRevenue, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, []string{"2022", "2023", "2024"}, chart.Labels)
}
