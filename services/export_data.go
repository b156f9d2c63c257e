package services

import (
	"time"

	"proposaldesk/apiclient"
)

// ProposalExportRow is a single proposal line in the spreadsheet export.
type ProposalExportRow struct {
	Title        string
	Neighborhood string
	Borough      string
	Status       string
	TotalUnits   int
	LotSizeSqft  string
	Score        string
	Cost         string
	Revenue      string
	Updated      string
}

// ProposalExportData holds everything the proposals export needs.
type ProposalExportData struct {
	Title         string
	GeneratedDate string
	Rows          []ProposalExportRow
	TotalCount    int
	TotalUnits    int
}

// BuildProposalExport flattens proposal summaries into export rows. The
// export covers whatever slice the caller passes, typically the currently
// filtered list.
func BuildProposalExport(proposals []apiclient.ProposalSummary, now time.Time) ProposalExportData {
	data := ProposalExportData{
		Title:         "Development Proposals",
		GeneratedDate: now.Format("02 Jan 2006"),
		TotalCount:    len(proposals),
	}

	for _, p := range proposals {
		data.TotalUnits += p.TotalUnits
		data.Rows = append(data.Rows, ProposalExportRow{
			Title:        p.Title,
			Neighborhood: p.NeighborhoodName,
			Borough:      p.BoroughName,
			Status:       StatusLabel(p.Status),
			TotalUnits:   p.TotalUnits,
			LotSizeSqft:  p.LotSizeSqft,
			Score:        FormatScore(p.FeasibilityScore),
			Cost:         FormatDecimalUSD(p.EstimatedCost),
			Revenue:      FormatDecimalUSD(p.ProjectedRevenue),
			Updated:      FormatDate(p.UpdatedAt),
		})
	}

	return data
}
