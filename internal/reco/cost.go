package reco

import (
	"math"

	"tripreco/internal/catalog"
)

// CostSummary is the published estimate band for one pace. The band is a
// fixed ±15% around the base total for unmodeled food and incidentals.
type CostSummary struct {
	Min        int `json:"min"`
	Max        int `json:"max"`
	HotelCost  int `json:"hotel_cost"`
	TravelCost int `json:"travel_cost"`
	POICost    int `json:"poi_cost"`
	BaseTotal  int `json:"base_total"`
}

// SummarizeCost combines the cheapest transport leg, hotel price times
// nights, and the cost of every slotted POI in the itinerary.
func SummarizeCost(flights []catalog.Flight, trains []catalog.Train, hotel *catalog.Hotel, nights int, it Itinerary) CostSummary {
	travel := 0
	if len(flights) > 0 {
		travel = flights[0].Price
		for _, f := range flights[1:] {
			if f.Price < travel {
				travel = f.Price
			}
		}
	} else if len(trains) > 0 {
		travel = trains[0].Price
		for _, t := range trains[1:] {
			if t.Price < travel {
				travel = t.Price
			}
		}
	}

	hotelCost := 0
	if hotel != nil {
		hotelCost = hotel.Price * nights
	}

	poiCost := 0
	for _, day := range it.Days {
		for _, p := range slottedPOIs(day) {
			poiCost += p.CostFromHotel
		}
	}

	base := travel + hotelCost + poiCost
	return CostSummary{
		Min:        int(math.Round(0.85 * float64(base))),
		Max:        int(math.Round(1.15 * float64(base))),
		HotelCost:  hotelCost,
		TravelCost: travel,
		POICost:    poiCost,
		BaseTotal:  base,
	}
}

func slottedPOIs(day ItineraryDay) []catalog.POI {
	out := make([]catalog.POI, 0, 3)
	out = append(out, day.Morning...)
	out = append(out, day.Afternoon...)
	return append(out, day.Evening...)
}
