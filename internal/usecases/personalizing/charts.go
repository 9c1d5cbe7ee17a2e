package personalizing

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/vfg2006/customer360-api/internal/domain"
)

const (
	NoRevenueData = "No revenue data available"

	ChartThreeYearRevenue = "three_year_revenue"
	ChartQuarterlyRevenue = "quarterly_revenue"

	chartHeight = "240px"
)

// Chart is a revenue chart rendered to HTML. When the series is missing or
// corrupt HTML is empty and Message says why.
type Chart struct {
	Key     string    `json:"key"`
	Title   string    `json:"title"`
	Labels  []string  `json:"labels"`
	Values  []float64 `json:"values"`
	HTML    string    `json:"html,omitempty"`
	Message string    `json:"message,omitempty"`
}

// RenderRevenueChart never fails: a malformed series renders the fallback message.
func RenderRevenueChart(c *domain.Customer, key string, now time.Time) Chart {
	switch key {
	case ChartThreeYearRevenue:
		values, err := c.ThreeYearRevenue()
		chart := Chart{Key: key, Title: "3-Year Revenue Trend"}
		if err != nil || len(values) == 0 {
			return emptyChart(chart)
		}
		startYear := now.Year() - 2
		for i, v := range values {
			chart.Labels = append(chart.Labels, fmt.Sprintf("%d", startYear+i))
			chart.Values = append(chart.Values, v)
		}
		return renderBar(chart, "#3b82f6")

	case ChartQuarterlyRevenue:
		values, err := c.QuarterlyRevenue()
		chart := Chart{Key: key, Title: "Quarterly Revenue Performance"}
		if err != nil || len(values) == 0 {
			return emptyChart(chart)
		}
		// most recent quarter first
		for i := len(values) - 1; i >= 0; i-- {
			chart.Labels = append(chart.Labels, fmt.Sprintf("Q%d", i+1))
			chart.Values = append(chart.Values, values[i])
		}
		return renderBar(chart, "#22c55e")

	default:
		return emptyChart(Chart{Key: key})
	}
}

func emptyChart(c Chart) Chart {
	c.Labels = []string{}
	c.Values = []float64{}
	c.Message = NoRevenueData
	return c
}

func renderBar(c Chart, color string) Chart {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: c.Title}),
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: chartHeight}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)
	bar.SetXAxis(c.Labels)

	data := make([]opts.BarData, len(c.Values))
	for i, v := range c.Values {
		data[i] = opts.BarData{Name: c.Labels[i], Value: v}
	}
	bar.AddSeries("Revenue", data, charts.WithItemStyleOpts(opts.ItemStyle{Color: color}))

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		c.Message = NoRevenueData
		return c
	}
	c.HTML = buf.String()
	return c
}
