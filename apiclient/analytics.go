package apiclient

import "context"

// Rankings returns the server-computed neighborhood development rankings.
func (c *Client) Rankings(ctx context.Context) ([]NeighborhoodRanking, error) {
	return cachedGet(ctx, c, "analytics/rankings/", func(ctx context.Context) ([]NeighborhoodRanking, []Tag, error) {
		var rankings []NeighborhoodRanking
		if err := c.get(ctx, "analytics/rankings/", nil, &rankings); err != nil {
			return nil, nil, err
		}
		return rankings, []Tag{ListTag(ResourceAnalytics)}, nil
	})
}

// DashboardSummaries returns the per-borough dashboard aggregates.
func (c *Client) DashboardSummaries(ctx context.Context) ([]DashboardSummary, error) {
	return cachedGet(ctx, c, "analytics/dashboard/", func(ctx context.Context) ([]DashboardSummary, []Tag, error) {
		var summaries []DashboardSummary
		if err := c.get(ctx, "analytics/dashboard/", nil, &summaries); err != nil {
			return nil, nil, err
		}
		return summaries, []Tag{ListTag(ResourceAnalytics)}, nil
	})
}
