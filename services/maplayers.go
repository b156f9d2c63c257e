package services

import (
	"strconv"

	"proposaldesk/apiclient"
)

// MapLayer is one togglable data layer on the opportunity map. Zoning
// layers act as an any-of filter; score layers require their datum to be
// present and drive the point color.
type MapLayer struct {
	ID      string
	Label   string
	Enabled bool
}

const (
	LayerZoningResidential = "zoning-residential"
	LayerZoningCommercial  = "zoning-commercial"
	LayerZoningMixed       = "zoning-mixed"
	LayerApprovalRates     = "approval-rates"
	LayerDemandScore       = "demand-score"
	LayerInfrastructure    = "infrastructure"
)

// DefaultMapLayers returns the layer set a fresh map starts with: all
// zoning layers on, score layers off.
func DefaultMapLayers() []MapLayer {
	return []MapLayer{
		{ID: LayerZoningResidential, Label: "Residential Zoning", Enabled: true},
		{ID: LayerZoningCommercial, Label: "Commercial Zoning", Enabled: true},
		{ID: LayerZoningMixed, Label: "Mixed Use", Enabled: true},
		{ID: LayerApprovalRates, Label: "Historical Approval Rates"},
		{ID: LayerDemandScore, Label: "Housing Demand Score"},
		{ID: LayerInfrastructure, Label: "Infrastructure (Transit)"},
	}
}

// ToggleLayer returns a copy of layers with the named layer flipped.
func ToggleLayer(layers []MapLayer, id string) []MapLayer {
	out := append([]MapLayer(nil), layers...)
	for i := range out {
		if out[i].ID == id {
			out[i].Enabled = !out[i].Enabled
		}
	}
	return out
}

func layerEnabled(layers []MapLayer, id string) bool {
	for _, l := range layers {
		if l.ID == id {
			return l.Enabled
		}
	}
	return false
}

// PassesLayers reports whether a neighborhood survives the active layer
// filters: it must match at least one enabled zoning layer (when any is
// enabled) and carry data for every enabled score layer.
func PassesLayers(n apiclient.NeighborhoodMapData, layers []MapLayer) bool {
	zoningEnabled := false
	zoningMatch := false
	for _, l := range layers {
		if !l.Enabled {
			continue
		}
		switch l.ID {
		case LayerZoningResidential:
			zoningEnabled = true
			zoningMatch = zoningMatch || n.ZoningHasResidential
		case LayerZoningCommercial:
			zoningEnabled = true
			zoningMatch = zoningMatch || n.ZoningHasCommercial
		case LayerZoningMixed:
			zoningEnabled = true
			zoningMatch = zoningMatch || n.ZoningHasMixed
		case LayerApprovalRates:
			if n.ApprovalRatePct == nil {
				return false
			}
		case LayerInfrastructure:
			if n.InfrastructureScore == nil {
				return false
			}
		}
	}
	if zoningEnabled && !zoningMatch {
		return false
	}
	return true
}

// FilterMapRows keeps the rows that pass the active layers.
func FilterMapRows(rows []apiclient.NeighborhoodMapData, layers []MapLayer) []apiclient.NeighborhoodMapData {
	out := make([]apiclient.NeighborhoodMapData, 0, len(rows))
	for _, n := range rows {
		if PassesLayers(n, layers) {
			out = append(out, n)
		}
	}
	return out
}

// PointColor picks the marker color for a neighborhood given the active
// score layers. Demand wins over approval, which wins over infrastructure;
// with no score layer active every point uses the base color.
func PointColor(n apiclient.NeighborhoodMapData, layers []MapLayer) string {
	if layerEnabled(layers, LayerDemandScore) {
		switch {
		case n.DemandScore >= 75:
			return "#22d3ee"
		case n.DemandScore >= 50:
			return "#34d399"
		default:
			return "#a78bfa"
		}
	}
	if layerEnabled(layers, LayerApprovalRates) && n.ApprovalRatePct != nil {
		switch {
		case *n.ApprovalRatePct >= 80:
			return "#22d3ee"
		case *n.ApprovalRatePct >= 50:
			return "#34d399"
		default:
			return "#f472b6"
		}
	}
	if layerEnabled(layers, LayerInfrastructure) && n.InfrastructureScore != nil {
		switch {
		case *n.InfrastructureScore >= 70:
			return "#22d3ee"
		case *n.InfrastructureScore >= 40:
			return "#34d399"
		default:
			return "#fbbf24"
		}
	}
	return "#22d3ee"
}

// MapFeature is one GeoJSON point feature served to the map library.
type MapFeature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Geometry   MapGeometry    `json:"geometry"`
}

type MapGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// MapFeatureCollection is the GeoJSON body of the map data endpoint.
type MapFeatureCollection struct {
	Type     string       `json:"type"`
	Features []MapFeature `json:"features"`
}

// Midtown Manhattan, the fallback position for rows with unparseable
// coordinates.
const (
	fallbackLongitude = -73.98
	fallbackLatitude  = 40.75
)

// BuildFeatureCollection converts filtered map rows into GeoJSON point
// features colored by the active layers.
func BuildFeatureCollection(rows []apiclient.NeighborhoodMapData, layers []MapLayer) MapFeatureCollection {
	fc := MapFeatureCollection{Type: "FeatureCollection", Features: []MapFeature{}}
	for _, n := range rows {
		lon, err := strconv.ParseFloat(n.Longitude, 64)
		if err != nil {
			lon = fallbackLongitude
		}
		lat, err := strconv.ParseFloat(n.Latitude, 64)
		if err != nil {
			lat = fallbackLatitude
		}
		fc.Features = append(fc.Features, MapFeature{
			Type: "Feature",
			Properties: map[string]any{
				"id":             n.ID,
				"name":           n.Name,
				"borough_name":   n.BoroughName,
				"proposal_count": n.ProposalCount,
				"demand_score":   n.DemandScore,
				"zoning_codes":   n.ZoningCodes,
				"_color":         PointColor(n, layers),
			},
			Geometry: MapGeometry{Type: "Point", Coordinates: [2]float64{lon, lat}},
		})
	}
	return fc
}
