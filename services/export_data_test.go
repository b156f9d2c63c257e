package services

import (
	"testing"
	"time"

	"proposaldesk/apiclient"
)

func TestBuildProposalExport(t *testing.T) {
	cost := "1200000.00"
	score := "72.40"
	proposals := []apiclient.ProposalSummary{
		{
			ID:               1,
			Title:            "Atlantic Yards Infill",
			NeighborhoodName: "Prospect Heights",
			BoroughName:      "Brooklyn",
			Status:           apiclient.StatusUnderReview,
			TotalUnits:       120,
			LotSizeSqft:      "45000.00",
			EstimatedCost:    &cost,
			FeasibilityScore: &score,
			UpdatedAt:        "2026-03-14T09:30:00Z",
		},
		{
			ID:               2,
			Title:            "Hunters Point Tower",
			NeighborhoodName: "Long Island City",
			BoroughName:      "Queens",
			Status:           apiclient.StatusDraft,
			TotalUnits:       80,
			LotSizeSqft:      "22000.00",
			UpdatedAt:        "2026-03-10T17:00:00Z",
		},
	}

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	data := BuildProposalExport(proposals, now)

	if data.Title != "Development Proposals" {
		t.Errorf("Title = %q", data.Title)
	}
	if data.GeneratedDate != "15 Mar 2026" {
		t.Errorf("GeneratedDate = %q, want 15 Mar 2026", data.GeneratedDate)
	}
	if data.TotalCount != 2 {
		t.Errorf("TotalCount = %d, want 2", data.TotalCount)
	}
	if data.TotalUnits != 200 {
		t.Errorf("TotalUnits = %d, want 200", data.TotalUnits)
	}
	if len(data.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(data.Rows))
	}

	first := data.Rows[0]
	if first.Status != "Under Review" {
		t.Errorf("Status = %q, want Under Review", first.Status)
	}
	if first.Cost != "$1,200,000.00" {
		t.Errorf("Cost = %q, want $1,200,000.00", first.Cost)
	}
	if first.Score != "72.4" {
		t.Errorf("Score = %q, want 72.4", first.Score)
	}
	if first.Updated != "14 Mar 2026" {
		t.Errorf("Updated = %q, want 14 Mar 2026", first.Updated)
	}

	// Missing decimal fields fall back to the em dash placeholder.
	second := data.Rows[1]
	if second.Cost != "—" || second.Score != "—" {
		t.Errorf("missing fields = (%q, %q), want em dashes", second.Cost, second.Score)
	}
}

func TestBuildProposalExport_Empty(t *testing.T) {
	data := BuildProposalExport(nil, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	if data.TotalCount != 0 || data.TotalUnits != 0 {
		t.Errorf("totals = (%d, %d), want zeros", data.TotalCount, data.TotalUnits)
	}
	if len(data.Rows) != 0 {
		t.Errorf("got %d rows, want 0", len(data.Rows))
	}
}
