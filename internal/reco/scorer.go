package reco

import (
	"math"

	"tripreco/internal/catalog"
)

// Scoring weights. Fixed constants, higher total is better.
const (
	weightTagMatch   = 1.3
	weightBudgetFit  = 1.0
	weightPopularity = 0.5
	weightRecency    = 0.7
	weightPastTrips  = 0.9
)

// Signals carries the per-query knobs the scorer reacts to.
type Signals struct {
	RecentBehaviorMatch bool
	SearchBudgetMax     *int
}

// Candidate is anything rankable: a hotel or a destination. A nil
// Popularity scores as the neutral 0.5.
type Candidate struct {
	Tags       []string
	Price      int
	Popularity *float64
}

func hotelCandidate(h catalog.Hotel) Candidate {
	p := h.Popularity
	return Candidate{Tags: h.Tags, Price: h.Price, Popularity: &p}
}

func destinationCandidate(d catalog.Destination) Candidate {
	return Candidate{Tags: d.Tags, Price: d.AvgPrice}
}

// Score computes the weighted relevance of one candidate for a profile.
// Pure and deterministic; callers sort descending.
func Score(c Candidate, profile catalog.UserProfile, sig Signals, past []catalog.PastTrip) float64 {
	tagScore := tagMatch(c.Tags, profile.Interests)
	budget := budgetFit(c.Price, profile.Budget)

	popularity := 0.5
	if c.Popularity != nil {
		popularity = *c.Popularity
	}

	recency := 0.0
	if sig.RecentBehaviorMatch {
		recency = 1.0
	}

	pastScore := pastSimilarity(c.Tags, past)

	// Soft penalty when the search asked for a ceiling the candidate
	// exceeds; the candidate stays rankable.
	if sig.SearchBudgetMax != nil && *sig.SearchBudgetMax > 0 && c.Price > *sig.SearchBudgetMax {
		budget *= 0.6
	}

	return weightTagMatch*tagScore + weightBudgetFit*budget +
		weightPopularity*popularity + weightRecency*recency + weightPastTrips*pastScore
}

func ScoreHotel(h catalog.Hotel, profile catalog.UserProfile, sig Signals, past []catalog.PastTrip) float64 {
	return Score(hotelCandidate(h), profile, sig, past)
}

func ScoreDestination(d catalog.Destination, profile catalog.UserProfile, sig Signals, past []catalog.PastTrip) float64 {
	return Score(destinationCandidate(d), profile, sig, past)
}

func tagMatch(itemTags, userTags []string) float64 {
	matches := 0
	for _, t := range itemTags {
		if containsTag(userTags, t) {
			matches++
		}
	}
	return float64(matches) / math.Max(1, float64(len(userTags)))
}

// budgetFit is 1.0 inside [min,max] and decays linearly with distance to
// the nearer bound. An all-zero budget means no preference.
func budgetFit(price int, b catalog.Budget) float64 {
	if b == (catalog.Budget{}) {
		return 0.5
	}
	if b.Min <= price && price <= b.Max {
		return 1.0
	}
	diff := math.Min(math.Abs(float64(price-b.Max)), math.Abs(float64(price-b.Min)))
	denom := float64(b.Max)
	if denom == 0 {
		denom = float64(price)
		if denom == 0 {
			denom = 1
		}
	}
	return math.Max(0, 1-diff/denom)
}

func pastSimilarity(itemTags []string, past []catalog.PastTrip) float64 {
	seen := make(map[string]struct{})
	for _, trip := range past {
		for _, t := range trip.Tags {
			seen[t] = struct{}{}
		}
	}
	matches := 0
	for _, t := range itemTags {
		if _, ok := seen[t]; ok {
			matches++
		}
	}
	return float64(matches) / math.Max(1, float64(len(seen)))
}

func containsTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}
