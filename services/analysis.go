package services

import (
	"math"
	"strconv"

	"proposaldesk/apiclient"
)

// MarketAnalysis is the aggregate view of the neighborhood rankings the
// analytics page renders: the raw rows, the top investment quartile, and
// per-borough groupings with average development scores.
type MarketAnalysis struct {
	Rankings          []apiclient.NeighborhoodRanking
	TopQuartile       []apiclient.NeighborhoodRanking
	ByBorough         map[string][]apiclient.NeighborhoodRanking
	AvgScoreByBorough map[string]float64
}

// BuildMarketAnalysis derives the analytics aggregates from the rankings.
// Average scores are rounded to 2 decimal places; rankings with a score
// the client cannot parse contribute zero rather than poisoning the
// average.
func BuildMarketAnalysis(rankings []apiclient.NeighborhoodRanking) MarketAnalysis {
	analysis := MarketAnalysis{
		Rankings:          rankings,
		ByBorough:         make(map[string][]apiclient.NeighborhoodRanking),
		AvgScoreByBorough: make(map[string]float64),
	}

	for _, r := range rankings {
		if r.Quartile == 1 {
			analysis.TopQuartile = append(analysis.TopQuartile, r)
		}
		analysis.ByBorough[r.BoroughName] = append(analysis.ByBorough[r.BoroughName], r)
	}

	for borough, rows := range analysis.ByBorough {
		var total float64
		for _, r := range rows {
			score, err := strconv.ParseFloat(r.DevelopmentScore, 64)
			if err != nil {
				continue
			}
			total += score
		}
		avg := total / float64(len(rows))
		analysis.AvgScoreByBorough[borough] = math.Round(avg*100) / 100
	}

	return analysis
}
