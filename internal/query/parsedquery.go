package query

import "strings"

// Source records where a parsed field came from.
type Source string

const (
	// SourceExternal marks fields produced by a remote semantic parser.
	SourceExternal Source = "external"
	// SourceHeuristic marks fields produced by local regex/catalog heuristics.
	SourceHeuristic Source = "heuristic"
)

// Intent is the coarse query mode sniffed from the raw text.
type Intent string

const (
	IntentFlights   Intent = "flights"
	IntentTrains    Intent = "trains"
	IntentHotels    Intent = "hotels"
	IntentItinerary Intent = "itinerary"
	IntentMixed     Intent = "mixed"
)

// SingleMode reports whether the intent names one specific mode rather
// than a mixed browse query.
func (i Intent) SingleMode() bool {
	return i == IntentFlights || i == IntentTrains || i == IntentHotels || i == IntentItinerary
}

// DetectIntent classifies the raw query by keyword, first group wins.
func DetectIntent(text string) Intent {
	q := strings.ToLower(text)
	switch {
	case containsAnyOf(q, "flight", "flights", "air", "plane"):
		return IntentFlights
	case containsAnyOf(q, "train", "trains"):
		return IntentTrains
	case containsAnyOf(q, "hotel", "hotels", "stay", "room"):
		return IntentHotels
	case containsAnyOf(q, "itinerary", "itiner", "plan", "days", "timeline"):
		return IntentItinerary
	default:
		return IntentMixed
	}
}

func containsAnyOf(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// ParsedQuery is the structured signal bundle extracted from one raw text
// query. Absent fields stay empty/nil; nil budget means "no constraint",
// never zero. Bundles are immutable once the extractor returns them.
type ParsedQuery struct {
	DestinationID string            `json:"destination_id,omitempty"`
	Origin        string            `json:"origin,omitempty"`
	Tags          []string          `json:"tags"`
	BudgetMax     *int              `json:"budget_max,omitempty"`
	Nights        *int              `json:"nights,omitempty"`
	TripType      string            `json:"trip_type,omitempty"`
	MaxStops      *int              `json:"max_stops,omitempty"`
	Intent        Intent            `json:"intent,omitempty"`
	Provenance    map[string]Source `json:"provenance,omitempty"`
}
