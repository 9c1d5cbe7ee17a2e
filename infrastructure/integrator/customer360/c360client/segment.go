package c360client

import (
	"context"
	"net/url"

	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360/schema"
	"github.com/vfg2006/customer360-api/internal/domain"
)

func (c *C360Client) GetSegmentInsights(ctx context.Context, filter domain.SegmentFilter) (*domain.SegmentInsights, error) {
	params := url.Values{}
	params.Set("type", string(filter.Type))
	params.Set("value", filter.Value)

	var insights domain.SegmentInsights
	if err := c.get(ctx, "get segment insights", "/segment/recommendations", params, schema.Segment, false, &insights); err != nil {
		return nil, err
	}
	insights.Normalize()
	return &insights, nil
}
