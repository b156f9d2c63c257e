package apiclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ProposalQuery narrows a proposal list read. Zero values are omitted from
// the request. Ordering uses the backend's syntax: a field name, prefixed
// with "-" for descending (e.g. "-updated_at").
type ProposalQuery struct {
	Status   string
	Borough  string
	Search   string
	Ordering string
	Page     int
}

func (q ProposalQuery) values() url.Values {
	v := url.Values{}
	page := q.Page
	if page < 1 {
		page = 1
	}
	v.Set("page", strconv.Itoa(page))
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Borough != "" {
		v.Set("borough", q.Borough)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Ordering != "" {
		v.Set("ordering", q.Ordering)
	}
	return v
}

// Proposals returns one page of proposal summaries.
func (c *Client) Proposals(ctx context.Context, q ProposalQuery) (Page[ProposalSummary], error) {
	query := q.values()
	key := cacheKey("proposals/", query)
	return cachedGet(ctx, c, key, func(ctx context.Context) (Page[ProposalSummary], []Tag, error) {
		var page Page[ProposalSummary]
		if err := c.get(ctx, "proposals/", query, &page); err != nil {
			return page, nil, err
		}
		tags := []Tag{ListTag(ResourceProposal)}
		for _, p := range page.Results {
			tags = append(tags, IDTag(ResourceProposal, p.ID))
		}
		return page, tags, nil
	})
}

// Proposal returns the detail record for one proposal.
func (c *Client) Proposal(ctx context.Context, id int) (ProposalDetail, error) {
	path := fmt.Sprintf("proposals/%d/", id)
	return cachedGet(ctx, c, path, func(ctx context.Context) (ProposalDetail, []Tag, error) {
		var detail ProposalDetail
		if err := c.get(ctx, path, nil, &detail); err != nil {
			return detail, nil, err
		}
		return detail, []Tag{IDTag(ResourceProposal, id)}, nil
	})
}

// CreateProposal submits a new proposal. On success the proposals list is
// invalidated so list pages pick up the new record; on failure the cache is
// left untouched.
func (c *Client) CreateProposal(ctx context.Context, payload ProposalCreatePayload) (ProposalDetail, error) {
	var detail ProposalDetail
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&detail).
		SetError(&errorDetail{}).
		Post("proposals/")
	if err != nil {
		return detail, fmt.Errorf("POST proposals/: %w", err)
	}
	if err := c.checkStatus(resp, "proposals/"); err != nil {
		return detail, err
	}
	c.cache.invalidate(ListTag(ResourceProposal), ListTag(ResourceAnalytics))
	return detail, nil
}

// UpdateProposal applies a partial update to a proposal.
func (c *Client) UpdateProposal(ctx context.Context, id int, payload ProposalUpdatePayload) (ProposalDetail, error) {
	path := fmt.Sprintf("proposals/%d/", id)
	var detail ProposalDetail
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&detail).
		SetError(&errorDetail{}).
		Patch(path)
	if err != nil {
		return detail, fmt.Errorf("PATCH %s: %w", path, err)
	}
	if err := c.checkStatus(resp, path); err != nil {
		return detail, err
	}
	c.cache.invalidate(ListTag(ResourceProposal), IDTag(ResourceProposal, id))
	return detail, nil
}

// DeleteProposal removes a proposal.
func (c *Client) DeleteProposal(ctx context.Context, id int) error {
	path := fmt.Sprintf("proposals/%d/", id)
	resp, err := c.rest.R().
		SetContext(ctx).
		SetError(&errorDetail{}).
		Delete(path)
	if err != nil {
		return fmt.Errorf("DELETE %s: %w", path, err)
	}
	if err := c.checkStatus(resp, path); err != nil {
		return err
	}
	c.cache.invalidate(ListTag(ResourceProposal), IDTag(ResourceProposal, id))
	return nil
}

// CalculateScore asks the backend to recompute a proposal's feasibility
// score. The recompute is asynchronous server-side; the updated score is
// observed by re-fetching the proposal, which the invalidation forces.
func (c *Client) CalculateScore(ctx context.Context, id int) (Ack, error) {
	path := fmt.Sprintf("proposals/%d/calculate_score/", id)
	return c.postAction(ctx, path, nil, id)
}

// GenerateProjections asks the backend to (re)generate financial
// projections for the given number of future years.
func (c *Client) GenerateProjections(ctx context.Context, id, years int) (Ack, error) {
	path := fmt.Sprintf("proposals/%d/generate_projections/", id)
	body := map[string]int{"years": years}
	return c.postAction(ctx, path, body, id)
}

func (c *Client) postAction(ctx context.Context, path string, body any, id int) (Ack, error) {
	var ack Ack
	req := c.rest.R().SetContext(ctx).SetResult(&ack).SetError(&errorDetail{})
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Post(path)
	if err != nil {
		return ack, fmt.Errorf("POST %s: %w", path, err)
	}
	if err := c.checkStatus(resp, path); err != nil {
		return ack, err
	}
	c.cache.invalidate(IDTag(ResourceProposal, id), ListTag(ResourceProposal))
	return ack, nil
}

// PageCount reports how many pages a count-item collection spans at the
// given page size.
func PageCount(count, pageSize int) int {
	if pageSize <= 0 || count <= 0 {
		return 1
	}
	pages := count / pageSize
	if count%pageSize != 0 {
		pages++
	}
	return pages
}
