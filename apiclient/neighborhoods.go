package apiclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// NeighborhoodQuery narrows a neighborhood list read. Zero values are
// omitted from the request.
type NeighborhoodQuery struct {
	Borough string
	Search  string
	Page    int
}

func (q NeighborhoodQuery) values() url.Values {
	v := url.Values{}
	page := q.Page
	if page < 1 {
		page = 1
	}
	v.Set("page", strconv.Itoa(page))
	if q.Borough != "" {
		v.Set("borough", q.Borough)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}

// Neighborhoods returns one page of neighborhood summaries.
func (c *Client) Neighborhoods(ctx context.Context, q NeighborhoodQuery) (Page[NeighborhoodSummary], error) {
	query := q.values()
	key := cacheKey("neighborhoods/", query)
	return cachedGet(ctx, c, key, func(ctx context.Context) (Page[NeighborhoodSummary], []Tag, error) {
		var page Page[NeighborhoodSummary]
		if err := c.get(ctx, "neighborhoods/", query, &page); err != nil {
			return page, nil, err
		}
		tags := []Tag{ListTag(ResourceNeighborhood)}
		for _, n := range page.Results {
			tags = append(tags, IDTag(ResourceNeighborhood, n.ID))
		}
		return page, tags, nil
	})
}

// Neighborhood returns the detail record for one neighborhood, including
// zoning districts and recent market and demographic data.
func (c *Client) Neighborhood(ctx context.Context, id int) (NeighborhoodDetail, error) {
	path := fmt.Sprintf("neighborhoods/%d/", id)
	return cachedGet(ctx, c, path, func(ctx context.Context) (NeighborhoodDetail, []Tag, error) {
		var detail NeighborhoodDetail
		if err := c.get(ctx, path, nil, &detail); err != nil {
			return detail, nil, err
		}
		return detail, []Tag{IDTag(ResourceNeighborhood, id)}, nil
	})
}

// MapData returns the flattened per-neighborhood rows that drive the
// opportunity map.
func (c *Client) MapData(ctx context.Context) ([]NeighborhoodMapData, error) {
	return cachedGet(ctx, c, "neighborhoods/map_data/", func(ctx context.Context) ([]NeighborhoodMapData, []Tag, error) {
		var rows []NeighborhoodMapData
		if err := c.get(ctx, "neighborhoods/map_data/", nil, &rows); err != nil {
			return nil, nil, err
		}
		return rows, []Tag{ListTag(ResourceNeighborhood)}, nil
	})
}

// MarketHistory returns the full market data time series for a neighborhood.
func (c *Client) MarketHistory(ctx context.Context, id int) ([]MarketDataEntry, error) {
	path := fmt.Sprintf("neighborhoods/%d/market_history/", id)
	return cachedGet(ctx, c, path, func(ctx context.Context) ([]MarketDataEntry, []Tag, error) {
		var entries []MarketDataEntry
		if err := c.get(ctx, path, nil, &entries); err != nil {
			return nil, nil, err
		}
		return entries, []Tag{IDTag(ResourceNeighborhood, id)}, nil
	})
}
