package personalizing

import (
	_ "embed"
	"fmt"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vfg2006/customer360-api/internal/domain"
	"github.com/vfg2006/customer360-api/pkg/utils"
)

//go:embed tiles.yaml
var tilesYAML []byte

type ColorRule struct {
	Op    string  `yaml:"op"`
	Value float64 `yaml:"value"`
	Color string  `yaml:"color"`
}

func (r ColorRule) matches(v float64) bool {
	switch r.Op {
	case "":
		return true
	case ">":
		return v > r.Value
	case ">=":
		return v >= r.Value
	case "<":
		return v < r.Value
	case "<=":
		return v <= r.Value
	default:
		return false
	}
}

type TileSpec struct {
	Key       string      `yaml:"key"`
	Title     string      `yaml:"title"`
	Format    string      `yaml:"format"`
	DrillDown string      `yaml:"drilldown"`
	Trend     string      `yaml:"trend"`
	Colors    []ColorRule `yaml:"colors"`
}

type Layout struct {
	Title  string     `yaml:"title"`
	Charts []string   `yaml:"charts"`
	Tiles  []TileSpec `yaml:"tiles"`
}

// Tile is a rendered metric card.
type Tile struct {
	Key       string   `json:"key"`
	Title     string   `json:"title"`
	Value     string   `json:"value"`
	Raw       float64  `json:"raw"`
	Color     string   `json:"color"`
	DrillDown string   `json:"drilldown"`
	Trend     *float64 `json:"trend,omitempty"`
}

var (
	layoutsOnce sync.Once
	layouts     map[Persona]Layout
	layoutsErr  error
)

// Layouts returns the tile catalogue keyed by persona.
func Layouts() (map[Persona]Layout, error) {
	layoutsOnce.Do(func() {
		layoutsErr = yaml.Unmarshal(tilesYAML, &layouts)
		if layoutsErr != nil {
			layoutsErr = errors.Wrap(layoutsErr, "personalizing: parse tiles.yaml")
			return
		}
		for p, l := range layouts {
			for _, t := range l.Tiles {
				if _, ok := metricValue(&domain.Customer{}, t.Key); !ok {
					layoutsErr = errors.Errorf("personalizing: %s tile %q has no metric", p, t.Key)
					return
				}
			}
		}
	})
	return layouts, layoutsErr
}

// RenderTiles evaluates p's tiles against c.
func RenderTiles(c *domain.Customer, p Persona) ([]Tile, error) {
	all, err := Layouts()
	if err != nil {
		return nil, err
	}

	layout, ok := all[p]
	if !ok {
		return nil, ErrUnknownPersona
	}

	tiles := make([]Tile, 0, len(layout.Tiles))
	for _, spec := range layout.Tiles {
		tiles = append(tiles, renderTile(c, spec))
	}
	return tiles, nil
}

func renderTile(c *domain.Customer, spec TileSpec) Tile {
	v, _ := metricValue(c, spec.Key)

	t := Tile{
		Key:       spec.Key,
		Title:     spec.Title,
		Value:     formatMetric(v, spec.Format),
		Raw:       v,
		Color:     domain.ColorGray,
		DrillDown: spec.DrillDown,
	}
	if t.DrillDown == "" {
		t.DrillDown = spec.Key
	}

	for _, rule := range spec.Colors {
		if rule.matches(v) {
			t.Color = rule.Color
			break
		}
	}

	if spec.Trend != "" {
		if trend, ok := metricValue(c, spec.Trend); ok {
			t.Trend = &trend
		}
	}

	return t
}

func formatMetric(v float64, format string) string {
	switch format {
	case "currency":
		return utils.FormatCurrency(v)
	case "number":
		return utils.FormatCount(int(v))
	case "percent1":
		return utils.FormatPercent(v, 1)
	case "percent2":
		return utils.FormatPercent(v, 2)
	case "hours":
		return fmt.Sprintf("%.1fh", v)
	case "score5":
		return fmt.Sprintf("%.1f/5.0", v)
	case "score7":
		return fmt.Sprintf("%.1f/7.0", v)
	case "days_ago":
		return fmt.Sprintf("%d days ago", int(v))
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

func metricValue(c *domain.Customer, key string) (float64, bool) {
	switch key {
	case "annual_revenue":
		return c.AnnualRevenue, true
	case "customer_lifetime_value":
		return c.CustomerLifetimeValue, true
	case "retention_probability":
		return c.RetentionProbability, true
	case "revenue_concentration":
		return c.RevenueConcentration, true
	case "profit_margin":
		return c.ProfitMargin, true
	case "yoy_growth":
		return c.YoYGrowth, true
	case "nps_score":
		return c.NPSScore, true
	case "csat_score":
		return c.CSATScore, true
	case "ces_score":
		return c.CESScore, true
	case "active_services":
		return float64(c.ActiveServices), true
	case "open_tickets":
		return float64(c.OpenTickets), true
	case "avg_response_time_hours":
		return c.AvgResponseTimeHours, true
	case "avg_resolution_time_hours":
		return c.AvgResolutionTimeHours, true
	case "sla_compliance_pct":
		return c.SLACompliancePct, true
	case "recurring_issues_count":
		return float64(c.RecurringIssuesCount), true
	case "pipeline_value":
		return c.PipelineValue, true
	case "open_opportunities":
		return float64(c.OpenOpportunities), true
	case "win_rate":
		return c.WinRate, true
	case "avg_deal_size":
		return c.AvgDealSize, true
	case "overdue_invoices":
		return float64(c.OverdueInvoices), true
	case "overdue_amount":
		return c.OverdueAmount, true
	case "days_overdue":
		return float64(c.DaysOverdue), true
	case "billing_accuracy_pct":
		return c.BillingAccuracyPct, true
	case "days_to_renewal":
		return float64(c.DaysToRenewal), true
	case "last_interaction_days":
		return float64(c.LastInteractionDays), true
	default:
		return 0, false
	}
}
