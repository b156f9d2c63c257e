package services

import (
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func sampleExportData() ProposalExportData {
	return ProposalExportData{
		Title:         "Development Proposals",
		GeneratedDate: "15 Mar 2026",
		Rows: []ProposalExportRow{
			{Title: "Atlantic Yards Infill", Neighborhood: "Prospect Heights", Borough: "Brooklyn", Status: "Under Review", TotalUnits: 120, LotSizeSqft: "45000.00", Score: "72.4", Cost: "$1,200,000.00", Revenue: "$2,400,000.00", Updated: "14 Mar 2026"},
			{Title: "Hunters Point Tower", Neighborhood: "Long Island City", Borough: "Queens", Status: "Draft", TotalUnits: 80, LotSizeSqft: "22000.00", Score: "—", Cost: "—", Revenue: "—", Updated: "10 Mar 2026"},
		},
		TotalCount: 2,
		TotalUnits: 200,
	}
}

func TestGenerateProposalsExcel(t *testing.T) {
	result, err := GenerateProposalsExcel(sampleExportData())
	if err != nil {
		t.Fatalf("GenerateProposalsExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateProposalsExcel() returned empty bytes")
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "Development Proposals" {
		t.Errorf("expected sheet name 'Development Proposals', got %v", sheets)
	}

	title, _ := f.GetCellValue(sheets[0], "A1")
	if title != "Development Proposals" {
		t.Errorf("expected title in A1, got %q", title)
	}

	// First data row starts at row 5.
	name, _ := f.GetCellValue(sheets[0], "B5")
	if name != "Atlantic Yards Infill" {
		t.Errorf("B5 = %q, want first proposal title", name)
	}
	status, _ := f.GetCellValue(sheets[0], "E6")
	if status != "Draft" {
		t.Errorf("E6 = %q, want Draft", status)
	}
}

func TestGenerateProposalsExcel_Empty(t *testing.T) {
	data := ProposalExportData{
		Title:         "Development Proposals",
		GeneratedDate: "15 Mar 2026",
	}

	result, err := GenerateProposalsExcel(data)
	if err != nil {
		t.Fatalf("GenerateProposalsExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateProposalsExcel() returned empty bytes")
	}
}

func TestGenerateProposalsExcel_LongTitle(t *testing.T) {
	data := sampleExportData()
	data.Title = "A very long export title that certainly exceeds thirty one characters"

	result, err := GenerateProposalsExcel(data)
	if err != nil {
		t.Fatalf("GenerateProposalsExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets[0]) > 31 {
		t.Errorf("sheet name exceeds 31 chars: %d", len(sheets[0]))
	}
}

func TestGenerateProposalsExcel_EmptyTitle(t *testing.T) {
	data := sampleExportData()
	data.Title = ""

	result, err := GenerateProposalsExcel(data)
	if err != nil {
		t.Fatalf("GenerateProposalsExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); sheets[0] != "Proposals" {
		t.Errorf("expected default sheet name 'Proposals', got %q", sheets[0])
	}
}

func TestGenerateProposalsExcel_FormulaInjection(t *testing.T) {
	data := sampleExportData()
	data.Rows[0].Title = "=HYPERLINK(\"http://evil\")"

	result, err := GenerateProposalsExcel(data)
	if err != nil {
		t.Fatalf("GenerateProposalsExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	cell, _ := f.GetCellValue(f.GetSheetList()[0], "B5")
	if !strings.HasPrefix(cell, "'=") {
		t.Errorf("formula-leading cell not escaped, got %q", cell)
	}
}
