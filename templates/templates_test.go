package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func renderComponent(t *testing.T, name string, data any) string {
	t.Helper()
	var buf bytes.Buffer
	if err := render(name, data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render %s: %v", name, err)
	}
	return buf.String()
}

func TestDashboardContent(t *testing.T) {
	html := renderComponent(t, "dashboard-content", DashboardData{
		TotalProposals: 3,
		TotalUnits:     240,
		Cards: []DashboardCard{
			{BoroughName: "Brooklyn", TotalProposals: 2, TotalUnits: 160, AvgScore: "71.2", EstimatedCost: "$4,000,000.00", ProjectedRevenue: "$9,000,000.00"},
		},
	})

	for _, want := range []string{"Brooklyn", "71.2", "$4,000,000.00"} {
		if !strings.Contains(html, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestDashboardContent_Empty(t *testing.T) {
	html := renderComponent(t, "dashboard-content", DashboardData{})

	if !strings.Contains(html, "No proposals yet") {
		t.Error("empty dashboard should show the empty state")
	}
}

func TestProposalListContent_EscapesTitles(t *testing.T) {
	html := renderComponent(t, "proposal-list-content", ProposalListData{
		Items: []ProposalListItem{
			{ID: 1, Title: "<script>alert(1)</script>", StatusLabel: "Draft", StatusBadgeClass: "badge-ghost"},
		},
		PageCount: 1,
	})

	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Error("proposal title not HTML-escaped")
	}
	if !strings.Contains(html, "badge-ghost") {
		t.Error("status badge class missing")
	}
}

func TestWizardContent_StepErrors(t *testing.T) {
	html := renderComponent(t, "wizard-content", WizardData{
		Step:   1,
		Errors: map[string]string{"title": "Title is required."},
	})

	if !strings.Contains(html, "Title is required.") {
		t.Error("wizard should render the field error")
	}
	if !strings.Contains(html, "lotSizeSqft") {
		t.Error("details step missing lot size input")
	}
}

func TestWizardContent_Review(t *testing.T) {
	html := renderComponent(t, "wizard-content", WizardData{
		Step:              3,
		NeighborhoodLabel: "Astoria, Queens",
		Title:             "Steinway Lofts",
		LotSizeSqft:       "25000",
		TotalUnits:        84,
		Units: []WizardUnitRow{
			{Index: 0, TypeLabel: "Studio", Count: 20, AvgSqft: "450", Rent: "2400"},
		},
	})

	for _, want := range []string{"Astoria, Queens", "Steinway Lofts", "Submit Proposal"} {
		if !strings.Contains(html, want) {
			t.Errorf("review step missing %q", want)
		}
	}
}

func TestFullPageIncludesLayout(t *testing.T) {
	var buf bytes.Buffer
	layout := LayoutData{
		Header:  HeaderData{Title: "Dashboard", Theme: "dark"},
		Sidebar: SidebarData{ActivePath: "/"},
	}
	if err := DashboardPage(DashboardData{}, layout).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render page: %v", err)
	}
	html := buf.String()

	if !strings.Contains(html, "<!doctype html>") {
		t.Error("page missing document shell")
	}
	if !strings.Contains(html, `data-theme="dark"`) {
		t.Error("page missing theme attribute")
	}
	if !strings.Contains(html, "Opportunity Map") {
		t.Error("page missing sidebar nav")
	}
}
