package reco

import (
	"math"
	"testing"

	"tripreco/internal/catalog"
)

func TestSummarizeCostComponents(t *testing.T) {
	flights := []catalog.Flight{{Price: 3000}, {Price: 2600}}
	trains := []catalog.Train{{Price: 800}}
	hotel := &catalog.Hotel{Price: 2000}
	it := Itinerary{Days: []ItineraryDay{{
		Morning:   []catalog.POI{{CostFromHotel: 200}},
		Afternoon: []catalog.POI{{CostFromHotel: 200}},
	}}}

	got := SummarizeCost(flights, trains, hotel, 2, it)

	if got.TravelCost != 2600 {
		t.Errorf("travel = %d, want cheapest flight 2600", got.TravelCost)
	}
	if got.HotelCost != 4000 {
		t.Errorf("hotel = %d, want 4000", got.HotelCost)
	}
	if got.POICost != 400 {
		t.Errorf("poi = %d, want 400", got.POICost)
	}
	if got.BaseTotal != 7000 {
		t.Errorf("base = %d, want 7000", got.BaseTotal)
	}
	if got.Min != 5950 || got.Max != 8050 {
		t.Errorf("band = [%d,%d], want [5950,8050]", got.Min, got.Max)
	}
}

func TestSummarizeCostTrainFallback(t *testing.T) {
	trains := []catalog.Train{{Price: 900}, {Price: 700}}
	got := SummarizeCost(nil, trains, nil, 2, Itinerary{})
	if got.TravelCost != 700 {
		t.Fatalf("travel = %d, want cheapest train 700", got.TravelCost)
	}
}

func TestSummarizeCostEmpty(t *testing.T) {
	got := SummarizeCost(nil, nil, nil, 2, Itinerary{})
	if got.BaseTotal != 0 || got.Min != 0 || got.Max != 0 {
		t.Fatalf("empty inputs should cost nothing, got %+v", got)
	}
}

func TestSummarizeCostBandRatio(t *testing.T) {
	for _, base := range []int{137, 1000, 6650, 98765} {
		hotel := &catalog.Hotel{Price: base}
		got := SummarizeCost(nil, nil, hotel, 1, Itinerary{})
		if got.Min > got.BaseTotal || got.BaseTotal > got.Max {
			t.Fatalf("base %d: band [%d,%d] does not straddle base", base, got.Min, got.Max)
		}
		ratio := float64(got.Max) / float64(got.Min)
		if math.Abs(ratio-1.15/0.85) > 0.01 {
			t.Fatalf("base %d: band ratio %v, want ~%v", base, ratio, 1.15/0.85)
		}
	}
}
