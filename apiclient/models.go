package apiclient

// Resource types mirroring the proposals backend. The backend serializes
// decimal columns as JSON strings, so monetary and score fields stay strings
// here and are parsed only where a page needs arithmetic.

type Borough struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Code              string `json:"code"`
	NeighborhoodCount int    `json:"neighborhood_count"`
}

type NeighborhoodSummary struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	BoroughName   string `json:"borough_name"`
	BoroughCode   string `json:"borough_code"`
	Latitude      string `json:"latitude"`
	Longitude     string `json:"longitude"`
	AreaSqMiles   string `json:"area_sq_miles"`
	ProposalCount int    `json:"proposal_count"`
}

type ZoningDistrict struct {
	ID                 int    `json:"id"`
	Code               string `json:"code"`
	Category           string `json:"category"`
	MaxFAR             string `json:"max_far"`
	MaxHeightFt        int    `json:"max_height_ft"`
	ResidentialAllowed bool   `json:"residential_allowed"`
}

type MarketDataEntry struct {
	ID              int    `json:"id"`
	Period          string `json:"period"`
	MedianSalePrice string `json:"median_sale_price"`
	MedianRent      string `json:"median_rent"`
	VacancyRatePct  string `json:"vacancy_rate_pct"`
	PermitsIssued   int    `json:"permits_issued"`
}

type DemographicEntry struct {
	ID                  int    `json:"id"`
	Year                int    `json:"year"`
	Population          int    `json:"population"`
	MedianIncome        string `json:"median_income"`
	PopulationGrowthPct string `json:"population_growth_pct"`
	TransitScore        string `json:"transit_score"`
}

// NeighborhoodMapData is the flattened per-neighborhood row backing the
// opportunity map: position, zoning availability flags and the scores the
// map layers color by. Nullable scores mean the backend had no data.
type NeighborhoodMapData struct {
	ID                   int      `json:"id"`
	Name                 string   `json:"name"`
	BoroughName          string   `json:"borough_name"`
	BoroughCode          string   `json:"borough_code"`
	Latitude             string   `json:"latitude"`
	Longitude            string   `json:"longitude"`
	AreaSqMiles          string   `json:"area_sq_miles"`
	ProposalCount        int      `json:"proposal_count"`
	ZoningHasResidential bool     `json:"zoning_has_residential"`
	ZoningHasCommercial  bool     `json:"zoning_has_commercial"`
	ZoningHasMixed       bool     `json:"zoning_has_mixed"`
	ZoningCodes          []string `json:"zoning_codes"`
	ApprovalRatePct      *float64 `json:"approval_rate_pct"`
	DemandScore          float64  `json:"demand_score"`
	InfrastructureScore  *float64 `json:"infrastructure_score"`
	MedianSalePrice      *string  `json:"median_sale_price"`
	MedianRent           *string  `json:"median_rent"`
	VacancyRatePct       *string  `json:"vacancy_rate_pct"`
}

type NeighborhoodDetail struct {
	NeighborhoodSummary
	Borough            Borough            `json:"borough"`
	ZoningDistricts    []ZoningDistrict   `json:"zoning_districts"`
	LatestMarketData   []MarketDataEntry  `json:"latest_market_data"`
	LatestDemographics []DemographicEntry `json:"latest_demographics"`
}

// ProposalStatus is the server-driven lifecycle state of a proposal. The
// client only ever observes transitions through status history entries.
type ProposalStatus string

const (
	StatusDraft       ProposalStatus = "draft"
	StatusSubmitted   ProposalStatus = "submitted"
	StatusUnderReview ProposalStatus = "under_review"
	StatusApproved    ProposalStatus = "approved"
	StatusRejected    ProposalStatus = "rejected"
)

// ProposalStatuses lists every status in lifecycle order, for filter dropdowns.
var ProposalStatuses = []ProposalStatus{
	StatusDraft,
	StatusSubmitted,
	StatusUnderReview,
	StatusApproved,
	StatusRejected,
}

type ProposalSummary struct {
	ID               int            `json:"id"`
	Title            string         `json:"title"`
	Status           ProposalStatus `json:"status"`
	NeighborhoodName string         `json:"neighborhood_name"`
	BoroughName      string         `json:"borough_name"`
	OwnerUsername    string         `json:"owner_username"`
	TotalUnits       int            `json:"total_units"`
	LotSizeSqft      string         `json:"lot_size_sqft"`
	EstimatedCost    *string        `json:"estimated_cost"`
	ProjectedRevenue *string        `json:"projected_revenue"`
	FeasibilityScore *string        `json:"feasibility_score"`
	CreatedAt        string         `json:"created_at"`
	UpdatedAt        string         `json:"updated_at"`
}

// UnitType is the bedroom-count category of a unit-mix entry.
type UnitType string

const (
	UnitStudio  UnitType = "studio"
	UnitOneBR   UnitType = "1br"
	UnitTwoBR   UnitType = "2br"
	UnitThreeBR UnitType = "3br"
	UnitFourBR  UnitType = "4br"
)

var UnitTypes = []UnitType{UnitStudio, UnitOneBR, UnitTwoBR, UnitThreeBR, UnitFourBR}

type UnitMix struct {
	ID            int      `json:"id,omitempty"`
	UnitType      UnitType `json:"unit_type"`
	Count         int      `json:"count"`
	AvgSqft       string   `json:"avg_sqft"`
	ProjectedRent string   `json:"projected_rent"`
}

// UnitMixInput is a unit-mix entry as sent in a create/update payload. It
// deliberately has no id field: the server assigns ids.
type UnitMixInput struct {
	UnitType      UnitType `json:"unit_type"`
	Count         int      `json:"count"`
	AvgSqft       string   `json:"avg_sqft"`
	ProjectedRent string   `json:"projected_rent"`
}

type FinancialProjection struct {
	ID            int    `json:"id"`
	Year          int    `json:"year"`
	Revenue       string `json:"revenue"`
	Expenses      string `json:"expenses"`
	NetIncome     string `json:"net_income"`
	CumulativeROI string `json:"cumulative_roi"`
}

type StatusHistoryEntry struct {
	ID        int    `json:"id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
	ChangedAt string `json:"changed_at"`
	ChangedBy string `json:"changed_by"`
}

type ProposalDetail struct {
	ProposalSummary
	Description          string                `json:"description"`
	Neighborhood         NeighborhoodSummary   `json:"neighborhood"`
	UnitMix              []UnitMix             `json:"unit_mix"`
	FinancialProjections []FinancialProjection `json:"financial_projections"`
	StatusHistory        []StatusHistoryEntry  `json:"status_history"`
}

type ProposalCreatePayload struct {
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty"`
	Neighborhood int            `json:"neighborhood"`
	LotSizeSqft  string         `json:"lot_size_sqft"`
	TotalUnits   int            `json:"total_units"`
	UnitMix      []UnitMixInput `json:"unit_mix"`
}

// ProposalUpdatePayload is a partial PATCH body; nil fields are omitted.
type ProposalUpdatePayload struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	LotSizeSqft *string `json:"lot_size_sqft,omitempty"`
	TotalUnits  *int    `json:"total_units,omitempty"`
}

type NeighborhoodRanking struct {
	NeighborhoodID   int    `json:"neighborhood_id"`
	NeighborhoodName string `json:"neighborhood_name"`
	BoroughName      string `json:"borough_name"`
	MedianSalePrice  string `json:"median_sale_price"`
	MedianRent       string `json:"median_rent"`
	VacancyRatePct   string `json:"vacancy_rate_pct"`
	Population       int    `json:"population"`
	MedianIncome     string `json:"median_income"`
	TransitScore     string `json:"transit_score"`
	DevelopmentScore string `json:"development_score"`
	OverallRank      int    `json:"overall_rank"`
	Quartile         int    `json:"quartile"`
}

type DashboardSummary struct {
	BoroughName           string  `json:"borough_name"`
	TotalProposals        int     `json:"total_proposals"`
	TotalUnits            int     `json:"total_units"`
	AvgFeasibilityScore   *string `json:"avg_feasibility_score"`
	TotalEstimatedCost    string  `json:"total_estimated_cost"`
	TotalProjectedRevenue string  `json:"total_projected_revenue"`
}

// Ack is the acknowledgement body returned by recompute actions.
type Ack struct {
	Detail string `json:"detail"`
}

// Page is the backend's pagination envelope. Next and Previous are opaque
// continuation URLs and nil on the respective boundary pages.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}
