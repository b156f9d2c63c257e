// Package uistate holds the cross-page view preferences of one browser
// session: sidebar, filters, search, sort and theme. State is an immutable
// value updated through pure functions, so an observer can never see a
// torn snapshot.
package uistate

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps a stored string onto a valid theme, falling back to dark
// for anything unrecognized.
func ParseTheme(s string) Theme {
	if s == string(ThemeLight) {
		return ThemeLight
	}
	return ThemeDark
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type State struct {
	SidebarOpen   bool
	SearchQuery   string
	FilterBorough string
	FilterStatus  string
	SortField     string
	SortDirection SortDirection
	Theme         Theme
}

// Default is the state a fresh session starts from: sidebar closed, no
// filters, proposals sorted by most recently updated, dark theme.
func Default() State {
	return State{
		SortField:     "updated_at",
		SortDirection: SortDesc,
		Theme:         ThemeDark,
	}
}

// Ordering renders the sort field and direction in the backend's ordering
// syntax ("-" prefix for descending).
func (s State) Ordering() string {
	if s.SortField == "" {
		return ""
	}
	if s.SortDirection == SortDesc {
		return "-" + s.SortField
	}
	return s.SortField
}

func (s State) ToggleSidebar() State {
	s.SidebarOpen = !s.SidebarOpen
	return s
}

func (s State) OpenSidebar() State {
	s.SidebarOpen = true
	return s
}

func (s State) CloseSidebar() State {
	s.SidebarOpen = false
	return s
}

func (s State) WithSearch(query string) State {
	s.SearchQuery = query
	return s
}

func (s State) WithBoroughFilter(code string) State {
	s.FilterBorough = code
	return s
}

func (s State) WithStatusFilter(status string) State {
	s.FilterStatus = status
	return s
}

func (s State) WithSort(field string, direction SortDirection) State {
	s.SortField = field
	s.SortDirection = direction
	return s
}

func (s State) WithTheme(theme Theme) State {
	s.Theme = theme
	return s
}

func (s State) ToggleTheme() State {
	if s.Theme == ThemeDark {
		s.Theme = ThemeLight
	} else {
		s.Theme = ThemeDark
	}
	return s
}

// ResetFilters clears search, filters and sorting back to defaults. Theme
// and sidebar are presentation preferences, not filters, and are kept.
func (s State) ResetFilters() State {
	d := Default()
	s.SearchQuery = d.SearchQuery
	s.FilterBorough = d.FilterBorough
	s.FilterStatus = d.FilterStatus
	s.SortField = d.SortField
	s.SortDirection = d.SortDirection
	return s
}
