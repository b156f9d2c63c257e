package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"proposaldesk/apiclient"
)

// GenerateProposalPDF creates the printable feasibility report for one
// proposal using maroto/v2: headline figures, the unit-mix table and the
// financial projections table. It returns the raw PDF bytes.
func GenerateProposalPDF(detail apiclient.ProposalDetail) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addReportHeader(m, detail)
	addSummarySection(m, detail)
	addUnitMixTable(m, detail.UnitMix)
	addProjectionsTable(m, detail.FinancialProjections)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addReportHeader(m core.Maroto, detail apiclient.ProposalDetail) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(detail.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	meta := props.Text{
		Size:  9,
		Color: &props.Color{Red: 80, Green: 80, Blue: 80},
	}
	metaRight := meta
	metaRight.Align = align.Right

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("%s, %s", detail.NeighborhoodName, detail.BoroughName), meta),
			),
			col.New(6).Add(
				text.New("Status: "+StatusLabel(detail.Status), metaRight),
			),
		),
	)

	m.AddRows(row.New(4))
}

func addSummarySection(m core.Maroto, detail apiclient.ProposalDetail) {
	label := props.Text{Size: 8, Color: &props.Color{Red: 110, Green: 110, Blue: 110}}
	value := props.Text{Size: 11, Style: fontstyle.Bold, Top: 3}

	m.AddRows(
		row.New(14).Add(
			col.New(3).Add(
				text.New("Feasibility Score", label),
				text.New(FormatScore(detail.FeasibilityScore), value),
			),
			col.New(3).Add(
				text.New("Total Units", label),
				text.New(FormatCount(detail.TotalUnits), value),
			),
			col.New(3).Add(
				text.New("Estimated Cost", label),
				text.New(FormatDecimalUSD(detail.EstimatedCost), value),
			),
			col.New(3).Add(
				text.New("Projected Revenue", label),
				text.New(FormatDecimalUSD(detail.ProjectedRevenue), value),
			),
		),
	)

	m.AddRows(row.New(4))
}

var (
	tableHeaderBg   = &props.Color{Red: 33, Green: 37, Blue: 41}
	tableHeaderText = props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	tableCellText = props.Text{Size: 8, Align: align.Center}
)

func addUnitMixTable(m core.Maroto, units []apiclient.UnitMix) {
	addSectionTitle(m, "Unit Mix")
	if len(units) == 0 {
		addEmptyTableNote(m, "No unit mix recorded.")
		return
	}

	headerCell := props.Cell{BackgroundColor: tableHeaderBg}
	m.AddRows(
		row.New(8).Add(
			col.New(3).Add(text.New("Unit Type", tableHeaderText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Count", tableHeaderText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Avg Sqft", tableHeaderText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Projected Rent", tableHeaderText)).WithStyle(&headerCell),
		),
	)

	for _, u := range units {
		m.AddRows(
			row.New(7).Add(
				col.New(3).Add(text.New(UnitTypeLabel(u.UnitType), tableCellText)),
				col.New(3).Add(text.New(FormatCount(u.Count), tableCellText)),
				col.New(3).Add(text.New(u.AvgSqft, tableCellText)),
				col.New(3).Add(text.New("$"+u.ProjectedRent, tableCellText)),
			),
		)
	}

	m.AddRows(row.New(4))
}

func addProjectionsTable(m core.Maroto, projections []apiclient.FinancialProjection) {
	addSectionTitle(m, "Financial Projections")
	if len(projections) == 0 {
		addEmptyTableNote(m, "Projections have not been generated yet.")
		return
	}

	headerCell := props.Cell{BackgroundColor: tableHeaderBg}
	m.AddRows(
		row.New(8).Add(
			col.New(2).Add(text.New("Year", tableHeaderText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Revenue", tableHeaderText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Expenses", tableHeaderText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Net Income", tableHeaderText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Cum. ROI", tableHeaderText)).WithStyle(&headerCell),
		),
	)

	for _, p := range projections {
		m.AddRows(
			row.New(7).Add(
				col.New(2).Add(text.New(fmt.Sprintf("Year %d", p.Year), tableCellText)),
				col.New(3).Add(text.New(FormatDecimalUSD(&p.Revenue), tableCellText)),
				col.New(3).Add(text.New(FormatDecimalUSD(&p.Expenses), tableCellText)),
				col.New(2).Add(text.New(FormatDecimalUSD(&p.NetIncome), tableCellText)),
				col.New(2).Add(text.New(p.CumulativeROI+"%", tableCellText)),
			),
		)
	}
}

func addSectionTitle(m core.Maroto, title string) {
	m.AddRows(
		row.New(9).Add(
			col.New(12).Add(
				text.New(title, props.Text{Size: 11, Style: fontstyle.Bold}),
			),
		),
	)
}

func addEmptyTableNote(m core.Maroto, note string) {
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(
				text.New(note, props.Text{Size: 8, Color: &props.Color{Red: 120, Green: 120, Blue: 120}}),
			),
		),
	)
}
