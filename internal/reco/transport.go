package reco

import (
	"sort"
	"strings"

	"tripreco/internal/catalog"
)

// FlightQuery holds optional flight filters; zero values mean no constraint.
type FlightQuery struct {
	From     string
	To       string
	MaxPrice *int
	MaxStops *int
}

// TrainQuery holds optional train filters.
type TrainQuery struct {
	From      string
	To        string
	SeatClass string
	MaxPrice  *int
}

// FilterFlights applies every set constraint and sorts by (price, duration).
func FilterFlights(flights []catalog.Flight, q FlightQuery) []catalog.Flight {
	out := make([]catalog.Flight, 0, len(flights))
	for _, f := range flights {
		if q.From != "" && !strings.EqualFold(f.From, q.From) {
			continue
		}
		if q.To != "" && !strings.EqualFold(f.To, q.To) {
			continue
		}
		if q.MaxPrice != nil && f.Price > *q.MaxPrice {
			continue
		}
		if q.MaxStops != nil && f.Stops > *q.MaxStops {
			continue
		}
		out = append(out, f)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Price != out[j].Price {
			return out[i].Price < out[j].Price
		}
		return out[i].DurationMins < out[j].DurationMins
	})
	return out
}

// FilterTrains applies every set constraint and sorts by (price, duration).
func FilterTrains(trains []catalog.Train, q TrainQuery) []catalog.Train {
	out := make([]catalog.Train, 0, len(trains))
	for _, t := range trains {
		if q.From != "" && !strings.EqualFold(t.From, q.From) {
			continue
		}
		if q.To != "" && !strings.EqualFold(t.To, q.To) {
			continue
		}
		if q.SeatClass != "" && t.SeatClass != q.SeatClass {
			continue
		}
		if q.MaxPrice != nil && t.Price > *q.MaxPrice {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Price != out[j].Price {
			return out[i].Price < out[j].Price
		}
		return out[i].DurationMins < out[j].DurationMins
	})
	return out
}
