package apiclient

import "context"

// Boroughs returns the five boroughs. The collection is small and immutable
// reference data, so the paginated envelope is unwrapped to its results.
func (c *Client) Boroughs(ctx context.Context) ([]Borough, error) {
	return cachedGet(ctx, c, "boroughs/", func(ctx context.Context) ([]Borough, []Tag, error) {
		var page Page[Borough]
		if err := c.get(ctx, "boroughs/", nil, &page); err != nil {
			return nil, nil, err
		}
		return page.Results, []Tag{ListTag(ResourceBorough)}, nil
	})
}
