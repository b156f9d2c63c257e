// Package templates renders the server-side views. Each exported
// constructor returns a templ.Component backed by an embedded
// html/template, so handlers compose pages and HTMX fragments the same
// way.
package templates

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

//go:embed html/*.html
var files embed.FS

var views = template.Must(template.ParseFS(files, "html/*.html"))

func render(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return views.ExecuteTemplate(w, name, data)
	})
}

type pageData struct {
	Layout LayoutData
	Data   any
}

func page(name string, data any, layout LayoutData) templ.Component {
	return render(name, pageData{Layout: layout, Data: data})
}

func HomePage(data HomeData, layout LayoutData) templ.Component {
	return page("home-page", data, layout)
}

func HomeContent(data HomeData) templ.Component {
	return render("home-content", data)
}

// DashboardPage is the full dashboard document; DashboardContent is the
// HTMX fragment swapped into the main region.
func DashboardPage(data DashboardData, layout LayoutData) templ.Component {
	return page("dashboard-page", data, layout)
}

func DashboardContent(data DashboardData) templ.Component {
	return render("dashboard-content", data)
}

func NeighborhoodListPage(data NeighborhoodListData, layout LayoutData) templ.Component {
	return page("neighborhood-list-page", data, layout)
}

func NeighborhoodListContent(data NeighborhoodListData) templ.Component {
	return render("neighborhood-list-content", data)
}

func NeighborhoodDetailPage(data NeighborhoodDetailData, layout LayoutData) templ.Component {
	return page("neighborhood-detail-page", data, layout)
}

func NeighborhoodDetailContent(data NeighborhoodDetailData) templ.Component {
	return render("neighborhood-detail-content", data)
}

func ProposalListPage(data ProposalListData, layout LayoutData) templ.Component {
	return page("proposal-list-page", data, layout)
}

func ProposalListContent(data ProposalListData) templ.Component {
	return render("proposal-list-content", data)
}

func ProposalDetailPage(data ProposalDetailData, layout LayoutData) templ.Component {
	return page("proposal-detail-page", data, layout)
}

func ProposalDetailContent(data ProposalDetailData) templ.Component {
	return render("proposal-detail-content", data)
}

func WizardPage(data WizardData, layout LayoutData) templ.Component {
	return page("wizard-page", data, layout)
}

func WizardContent(data WizardData) templ.Component {
	return render("wizard-content", data)
}

func AnalyticsPage(data AnalyticsData, layout LayoutData) templ.Component {
	return page("analytics-page", data, layout)
}

func AnalyticsContent(data AnalyticsData) templ.Component {
	return render("analytics-content", data)
}

func MapPage(data MapPageData, layout LayoutData) templ.Component {
	return page("map-page", data, layout)
}

func MapContent(data MapPageData) templ.Component {
	return render("map-content", data)
}
