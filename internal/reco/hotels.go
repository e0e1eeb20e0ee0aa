package reco

import (
	"fmt"
	"math"
	"strings"

	"tripreco/internal/catalog"
	"tripreco/pkg/utils"
)

// HotelChoice pairs a picked hotel with advisory reason text. The reason
// is display copy only and feeds no downstream decision.
type HotelChoice struct {
	Hotel  catalog.Hotel `json:"hotel"`
	Reason string        `json:"reason"`
}

// RankedHotel optionally carries a score from an upstream ranking pass.
type RankedHotel struct {
	Hotel catalog.Hotel
	Score *float64
}

// ChooseHotel picks the best candidate. Precomputed scores win outright;
// otherwise a local heuristic over interests, rating, and budget decides.
// Empty input yields nil.
func ChooseHotel(cands []RankedHotel, profile catalog.UserProfile) *HotelChoice {
	if len(cands) == 0 {
		return nil
	}

	for _, c := range cands {
		if c.Score != nil {
			best := cands[0]
			for _, cand := range cands[1:] {
				if preScore(cand) > preScore(best) {
					best = cand
				}
			}
			return &HotelChoice{
				Hotel:  best.Hotel,
				Reason: fmt.Sprintf("Top scored hotel (%.1f★, %s)", best.Hotel.Rating, utils.FormatRupee(best.Hotel.Price)),
			}
		}
	}

	best := cands[0]
	bestScore := localHotelScore(best.Hotel, profile)
	for _, c := range cands[1:] {
		if s := localHotelScore(c.Hotel, profile); s > bestScore {
			best, bestScore = c, s
		}
	}
	return &HotelChoice{
		Hotel:  best.Hotel,
		Reason: fmt.Sprintf("Recommended: %.1f★ • %s", best.Hotel.Rating, utils.FormatRupee(best.Hotel.Price)),
	}
}

func preScore(c RankedHotel) float64 {
	if c.Score == nil {
		return 0
	}
	return *c.Score
}

func localHotelScore(h catalog.Hotel, profile catalog.UserProfile) float64 {
	score := 1.5*float64(tagOverlap(h.Tags, profile.Interests)) + 0.5*(h.Rating-2.0)
	if bmax := profile.Budget.Max; bmax > 0 {
		if h.Price <= bmax {
			score += 1.2 + math.Max(0, 0.5-math.Abs(float64(h.Price-bmax))/float64(bmax))
		} else {
			score -= 0.6 * float64(h.Price-bmax) / float64(bmax)
		}
	}
	return score
}

func tagOverlap(itemTags, interests []string) int {
	n := 0
	for _, t := range itemTags {
		if containsTag(interests, t) {
			n++
		}
	}
	return n
}

// FallbackHotel is the safety path when no selector choice is usable:
// closest price under the budget, else the cheapest on offer.
func FallbackHotel(hotels []catalog.Hotel, budgetMax *int) *HotelChoice {
	if len(hotels) == 0 {
		return nil
	}
	var pick catalog.Hotel
	if budgetMax != nil && *budgetMax > 0 {
		b := *budgetMax
		under := make([]catalog.Hotel, 0, len(hotels))
		for _, h := range hotels {
			if h.Price <= b {
				under = append(under, h)
			}
		}
		if len(under) > 0 {
			pick = under[0]
			for _, h := range under[1:] {
				if absInt(h.Price-b) < absInt(pick.Price-b) {
					pick = h
				}
			}
		} else {
			pick = cheapestHotel(hotels)
		}
	} else {
		pick = cheapestHotel(hotels)
	}
	return &HotelChoice{
		Hotel:  pick,
		Reason: fmt.Sprintf("Auto-picked: %.1f★ • %s", pick.Rating, utils.FormatRupee(pick.Price)),
	}
}

func cheapestHotel(hotels []catalog.Hotel) catalog.Hotel {
	pick := hotels[0]
	for _, h := range hotels[1:] {
		if h.Price < pick.Price {
			pick = h
		}
	}
	return pick
}

// ExplainHotel renders the one-line card explanation:
// "Name — 4.2★ • ₹3,500 • beach, luxury".
func ExplainHotel(h catalog.Hotel) string {
	var parts []string
	if h.Rating > 0 {
		parts = append(parts, fmt.Sprintf("%.1f★", h.Rating))
	}
	if h.Price > 0 {
		parts = append(parts, utils.FormatRupee(h.Price))
	}
	if len(h.Tags) > 0 {
		tags := h.Tags
		if len(tags) > 2 {
			tags = tags[:2]
		}
		parts = append(parts, strings.Join(tags, ", "))
	}
	if len(parts) == 0 {
		return h.Name + " — Good match for your profile."
	}
	return h.Name + " — " + strings.Join(parts, " • ")
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
