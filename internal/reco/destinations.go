package reco

import (
	"math"
	"sort"

	"tripreco/internal/catalog"
	"tripreco/internal/query"
)

// RecommendDestinations ranks catalog destinations for a profile plus
// parsed signals. Tag overlap dominates; seasonality and budget
// closeness separate the rest.
func RecommendDestinations(cat *catalog.Catalog, profile catalog.UserProfile, pq query.ParsedQuery, limit int) []catalog.Destination {
	interests := append(append([]string{}, profile.Interests...), pq.Tags...)
	budget := profile.Budget.Max
	if pq.BudgetMax != nil && *pq.BudgetMax > 0 {
		budget = *pq.BudgetMax
	}

	all := cat.Destinations()
	type scored struct {
		d catalog.Destination
		s float64
	}
	rows := make([]scored, 0, len(all))
	for _, d := range all {
		s := 0.0
		for _, t := range interests {
			if containsTag(d.Tags, t) {
				s += 2.0
			}
		}
		s += d.Seasonality
		if budget > 0 {
			s += 0.5 * math.Max(0, 1-math.Abs(float64(d.AvgPrice-budget))/float64(budget+1))
		}
		rows = append(rows, scored{d, s})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].s > rows[j].s })
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	out := make([]catalog.Destination, len(rows))
	for i, r := range rows {
		out[i] = r.d
	}
	return out
}

// RecommendHotels filters by destination and soft budget, then ranks by
// the scorer. Hotels up to 50% over the ceiling stay in, penalized.
func RecommendHotels(cat *catalog.Catalog, profile catalog.UserProfile, pq query.ParsedQuery, past []catalog.PastTrip, limit int) []catalog.Hotel {
	pool := cat.Hotels()
	if pq.DestinationID != "" {
		pool = cat.HotelsByDestination(pq.DestinationID)
	}

	res := make([]catalog.Hotel, 0, len(pool))
	if pq.BudgetMax != nil && *pq.BudgetMax > 0 {
		b := *pq.BudgetMax
		for _, h := range pool {
			if h.Price <= b || float64(absInt(h.Price-b)) < float64(b)*0.5 {
				res = append(res, h)
			}
		}
	} else {
		res = append(res, pool...)
	}

	sig := Signals{SearchBudgetMax: pq.BudgetMax}
	sort.SliceStable(res, func(i, j int) bool {
		return ScoreHotel(res[i], profile, sig, past) > ScoreHotel(res[j], profile, sig, past)
	})
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res
}
