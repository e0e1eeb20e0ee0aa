package query

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"tripreco/internal/catalog"
)

// Signals is the raw, partially-populated output of a semantic parser.
// Budget-like fields are any-typed because remote parsers return either
// JSON numbers or strings ("12k"); the extractor normalizes them.
type Signals struct {
	DestinationID string   `json:"destination_id,omitempty"`
	Destination   string   `json:"destination,omitempty"`
	Origin        string   `json:"origin,omitempty"`
	From          string   `json:"from,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	BudgetMax     any      `json:"budget_max,omitempty"`
	MaxPrice      any      `json:"max_price,omitempty"`
	Budget        any      `json:"budget,omitempty"`
	TripType      string   `json:"trip_type,omitempty"`
	Nights        *int     `json:"nights,omitempty"`
	MaxStops      *int     `json:"max_stops,omitempty"`
}

// SemanticParser turns free text into partial signals. Implementations
// may call out to a remote model; Source tells the extractor how to mark
// provenance for the fields they return.
type SemanticParser interface {
	Parse(ctx context.Context, text string) (Signals, error)
	Source() Source
}

var tagKeywords = []string{
	"beach", "adventure", "family", "romantic", "nightlife", "budget", "luxury",
	"trek", "weekend", "relax", "hiking", "culture", "spiritual",
}

// City tokens the local parser recognizes, checked in this order so the
// destination-side city of "from X to Y" queries wins.
var localCityTokens = []struct {
	token string
	city  string
}{
	{"goa", "Goa"}, {"mumbai", "Mumbai"}, {"kolkata", "Kolkata"}, {"leh", "Leh"},
	{"shimla", "Shimla"}, {"delhi", "Delhi"}, {"bangalore", "Bengaluru"},
	{"bengaluru", "Bengaluru"}, {"chennai", "Chennai"}, {"jaipur", "Jaipur"},
	{"manali", "Manali"}, {"agra", "Agra"}, {"varanasi", "Varanasi"},
	{"hyderabad", "Hyderabad"}, {"pune", "Pune"},
}

var (
	localBudgetRe = regexp.MustCompile(`(?:under|below|upto|up to|less than)\s*([0-9,.kKmM]+)`)
	localNightsRe = regexp.MustCompile(`(\d+)\s*(?:nights|night|days|day)`)
)

// LocalParser is the pure-heuristic SemanticParser. It is both the
// default parser and the fallback when a remote parser fails.
type LocalParser struct {
	cat *catalog.Catalog
}

func NewLocalParser(cat *catalog.Catalog) *LocalParser {
	return &LocalParser{cat: cat}
}

func (p *LocalParser) Source() Source { return SourceHeuristic }

func (p *LocalParser) Parse(_ context.Context, text string) (Signals, error) {
	q := strings.ToLower(text)
	out := Signals{Tags: []string{}}

	for _, w := range tagKeywords {
		if strings.Contains(q, w) {
			out.Tags = append(out.Tags, w)
		}
	}

	if m := localBudgetRe.FindStringSubmatch(q); m != nil {
		if v := parseSuffixedAmount(m[1]); v != nil {
			out.BudgetMax = *v
		}
	}

	if m := localNightsRe.FindStringSubmatch(q); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			out.Nights = &n
		}
	}

	for _, entry := range localCityTokens {
		if strings.Contains(q, entry.token) {
			if id, ok := p.cat.DestinationIDByName(entry.city); ok {
				out.DestinationID = id
			}
			break
		}
	}

	if strings.Contains(q, "train") {
		out.TripType = "train"
	}
	if strings.Contains(q, "flight") {
		out.TripType = "flight"
	}
	if out.TripType == "" && (strings.Contains(q, "itiner") || strings.Contains(q, "plan")) {
		out.TripType = "itinerary"
	}
	return out, nil
}

func parseSuffixedAmount(raw string) *int {
	raw = strings.ToLower(strings.TrimSpace(raw))
	mul := 1.0
	if strings.HasSuffix(raw, "k") {
		mul = 1000
		raw = strings.TrimSuffix(raw, "k")
	} else if strings.HasSuffix(raw, "m") {
		mul = 1000000
		raw = strings.TrimSuffix(raw, "m")
	}
	val, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return nil
	}
	v := int(val * mul)
	return &v
}

// cleanJSON strips markdown fences remote models wrap around JSON output.
func cleanJSON(raw string) string {
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}
