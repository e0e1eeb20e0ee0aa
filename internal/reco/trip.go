package reco

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"tripreco/internal/catalog"
	"tripreco/internal/query"
	"tripreco/pkg/utils"
)

const (
	defaultNights     = 2
	poiShortlistSize  = 10
	transportListSize = 5
	hotelCandidates   = 5
)

// TripBundle is the full explore view for one destination: the chosen
// hotel, a ranked POI shortlist, transport shortlists, and a plan plus
// cost band per pace.
type TripBundle struct {
	Destination catalog.Destination  `json:"destination"`
	Nights      int                  `json:"nights"`
	Hotel       *catalog.Hotel       `json:"hotel,omitempty"`
	HotelReason string               `json:"hotel_reason,omitempty"`
	POIs        []catalog.POI        `json:"pois"`
	Flights     []catalog.Flight     `json:"flights"`
	Trains      []catalog.Train      `json:"trains"`
	Itineraries map[Pace]Itinerary   `json:"itineraries"`
	Costs       map[Pace]CostSummary `json:"costs"`
}

type TripServiceInterface interface {
	BuildTripBundle(ctx context.Context, user catalog.User, destID string, pq query.ParsedQuery, start time.Time) (*TripBundle, error)
}

type tripService struct {
	cat    *catalog.Catalog
	logger zerolog.Logger
}

func NewTripService(cat *catalog.Catalog, logger zerolog.Logger) TripServiceInterface {
	return &tripService{cat: cat, logger: logger}
}

func (s *tripService) BuildTripBundle(_ context.Context, user catalog.User, destID string, pq query.ParsedQuery, start time.Time) (*TripBundle, error) {
	dest, ok := s.cat.DestinationByID(destID)
	if !ok {
		return nil, utils.ErrDestinationNotFound
	}

	profile := user.Profile
	nights := defaultNights
	if pq.Nights != nil && *pq.Nights > 0 {
		nights = *pq.Nights
	}
	interests := append(append([]string{}, profile.Interests...), pq.Tags...)

	hotels := s.cat.HotelsByDestination(destID)
	sig := Signals{SearchBudgetMax: pq.BudgetMax}
	cands := make([]RankedHotel, 0, len(hotels))
	for _, h := range hotels {
		sc := ScoreHotel(h, profile, sig, user.PastTrips)
		cands = append(cands, RankedHotel{Hotel: h, Score: &sc})
	}
	sort.SliceStable(cands, func(i, j int) bool { return *cands[i].Score > *cands[j].Score })
	if len(cands) > hotelCandidates {
		cands = cands[:hotelCandidates]
	}

	choice := ChooseHotel(cands, profile)
	if choice == nil {
		budget := pq.BudgetMax
		if budget == nil && profile.Budget.Max > 0 {
			b := profile.Budget.Max
			budget = &b
		}
		choice = FallbackHotel(hotels, budget)
	}
	var hotel *catalog.Hotel
	reason := ""
	if choice != nil {
		h := choice.Hotel
		hotel = &h
		reason = choice.Reason
	}

	pois := shortlistPOIs(s.cat.POIs(destID), interests, poiShortlistSize)

	flights := FilterFlights(s.cat.Flights(), FlightQuery{
		From:     pq.Origin,
		To:       dest.Name,
		MaxPrice: pq.BudgetMax,
		MaxStops: pq.MaxStops,
	})
	if len(flights) > transportListSize {
		flights = flights[:transportListSize]
	}
	trains := FilterTrains(s.cat.Trains(), TrainQuery{
		From:     pq.Origin,
		To:       dest.Name,
		MaxPrice: pq.BudgetMax,
	})
	if len(trains) > transportListSize {
		trains = trains[:transportListSize]
	}

	itineraries := make(map[Pace]Itinerary, 3)
	costs := make(map[Pace]CostSummary, 3)
	for _, pace := range []Pace{PaceRelaxed, PaceNormal, PacePacked} {
		it, err := BuildItinerary(destID, start, nights, interests, pace, pois)
		if err != nil {
			return nil, err
		}
		itineraries[pace] = it
		costs[pace] = SummarizeCost(flights, trains, hotel, nights, it)
	}

	s.logger.Debug().
		Str("destination_id", destID).
		Str("user_id", user.ID).
		Int("nights", nights).
		Int("pois", len(pois)).
		Msg("trip bundle built")

	return &TripBundle{
		Destination: dest,
		Nights:      nights,
		Hotel:       hotel,
		HotelReason: reason,
		POIs:        pois,
		Flights:     flights,
		Trains:      trains,
		Itineraries: itineraries,
		Costs:       costs,
	}, nil
}

// shortlistPOIs ranks by interest overlap (2 points per hit on category
// or lowercased name) minus a travel-time drag, then caps the list.
func shortlistPOIs(pool []catalog.POI, interests []string, limit int) []catalog.POI {
	type row struct {
		p catalog.POI
		s float64
	}
	rows := make([]row, 0, len(pool))
	for _, p := range pool {
		s := 0.0
		name := strings.ToLower(p.Name)
		for _, t := range interests {
			if strings.Contains(p.Category, t) || strings.Contains(name, t) {
				s += 2
			}
		}
		s -= float64(p.TravelMinsFromHotel) / 100.0
		rows = append(rows, row{p, s})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].s > rows[j].s })
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	out := make([]catalog.POI, len(rows))
	for i, r := range rows {
		out[i] = r.p
	}
	return out
}
