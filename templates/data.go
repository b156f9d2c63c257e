package templates

// Data structs passed from handlers into the view templates. Handlers
// precompute display strings (formatted money, badge classes, dates) so the
// templates stay logic-free.

type HeaderData struct {
	Title       string
	Theme       string
	SearchQuery string
}

type BoroughLink struct {
	ID       int
	Name     string
	Code     string
	Count    int
	Selected bool
}

type SidebarData struct {
	Open       bool
	ActivePath string
	DraftCount int
	Boroughs   []BoroughLink
}

// LayoutData is everything the outer page shell needs.
type LayoutData struct {
	Header  HeaderData
	Sidebar SidebarData
}

// HomeData drives the landing page. HasStats is false when the backend
// figures were unavailable; the hero renders without the stat strip.
type HomeData struct {
	TotalProposals int
	TotalUnits     int
	BoroughCount   int
	HasStats       bool
}

type DashboardCard struct {
	BoroughName      string
	TotalProposals   int
	TotalUnits       int
	AvgScore         string
	EstimatedCost    string
	ProjectedRevenue string
}

type DashboardData struct {
	Cards           []DashboardCard
	TotalProposals  int
	TotalUnits      int
	RecentProposals []ProposalListItem
}

type NeighborhoodListItem struct {
	ID            int
	Name          string
	BoroughName   string
	BoroughCode   string
	AreaSqMiles   string
	ProposalCount int
}

type NeighborhoodListData struct {
	Items       []NeighborhoodListItem
	TotalCount  int
	SearchQuery string
	Boroughs    []BoroughLink
	Page        int
	PageCount   int
	PrevPage    int
	NextPage    int
}

type ZoningRow struct {
	Code        string
	Category    string
	MaxFAR      string
	MaxHeightFt int
	Residential bool
}

type MarketRow struct {
	Period          string
	MedianSalePrice string
	MedianRent      string
	VacancyRatePct  string
	PermitsIssued   int
}

type DemographicRow struct {
	Year         int
	Population   string
	MedianIncome string
	GrowthPct    string
	TransitScore string
}

type NeighborhoodDetailData struct {
	ID            int
	Name          string
	BoroughName   string
	AreaSqMiles   string
	ProposalCount int
	Zoning        []ZoningRow
	Market        []MarketRow
	Demographics  []DemographicRow
	History       []MarketRow
}

type ProposalListItem struct {
	ID               int
	Title            string
	NeighborhoodName string
	BoroughName      string
	StatusLabel      string
	StatusBadgeClass string
	TotalUnits       int
	Score            string
	Cost             string
	Revenue          string
	UpdatedDate      string
}

type StatusOption struct {
	Value    string
	Label    string
	Selected bool
}

type ProposalListData struct {
	Items         []ProposalListItem
	TotalCount    int
	SearchQuery   string
	StatusOptions []StatusOption
	Boroughs      []BoroughLink
	SortField     string
	SortDesc      bool
	Page          int
	PageCount     int
	PrevPage      int
	NextPage      int
}

type UnitMixRow struct {
	TypeLabel string
	Count     int
	AvgSqft   string
	Rent      string
}

type ProjectionRow struct {
	Year      int
	Revenue   string
	Expenses  string
	NetIncome string
	ROI       string
}

type StatusHistoryRow struct {
	FromLabel   string
	ToLabel     string
	BadgeClass  string
	ChangedDate string
	ChangedBy   string
}

type ProposalDetailData struct {
	ID               int
	Title            string
	Description      string
	NeighborhoodID   int
	NeighborhoodName string
	BoroughName      string
	StatusLabel      string
	StatusBadgeClass string
	IsDraft          bool
	TotalUnits       int
	LotSizeSqft      string
	Score            string
	Cost             string
	Revenue          string
	UnitMix          []UnitMixRow
	Projections      []ProjectionRow
	History          []StatusHistoryRow
}

type WizardOption struct {
	Value    string
	Label    string
	Selected bool
}

type WizardUnitRow struct {
	Index     int
	TypeValue string
	TypeLabel string
	Count     int
	AvgSqft   string
	Rent      string
}

// WizardData renders one step of the proposal builder. Errors is keyed by
// the form field name; a missing key means the field is clean.
type WizardData struct {
	Step              int
	StepName          string
	Errors            map[string]string
	Neighborhoods     []WizardOption
	NeighborhoodLabel string
	Title             string
	Description       string
	LotSizeSqft       string
	TotalUnits        int
	Units             []WizardUnitRow
	UnitTypes         []WizardOption
	UnitSum           int
}

type RankingRow struct {
	Rank            int
	Name            string
	BoroughName     string
	MedianSalePrice string
	MedianRent      string
	VacancyRatePct  string
	TransitScore    string
	Score           string
	Quartile        int
	TopQuartile     bool
}

type BoroughAvgRow struct {
	BoroughName string
	AvgScore    string
	Count       int
}

type AnalyticsData struct {
	Rows            []RankingRow
	TopQuartile     []RankingRow
	BoroughAverages []BoroughAvgRow
}

type MapLayerToggle struct {
	ID      string
	Label   string
	Enabled bool
}

type MapPageData struct {
	Layers       []MapLayerToggle
	VisibleCount int
	TotalCount   int
}
