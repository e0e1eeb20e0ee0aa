package reco

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"tripreco/internal/catalog"
	"tripreco/internal/query"
	"tripreco/pkg/utils"
)

func TestBuildTripBundle(t *testing.T) {
	cat := catalog.Generate(42)
	svc := NewTripService(cat, zerolog.Nop())
	user, _ := cat.UserByID("user_anna")
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	bundle, err := svc.BuildTripBundle(context.Background(), user, "dest_0", query.ParsedQuery{}, start)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	if bundle.Destination.ID != "dest_0" {
		t.Errorf("destination = %s", bundle.Destination.ID)
	}
	if bundle.Nights != 2 {
		t.Errorf("nights = %d, want default 2", bundle.Nights)
	}
	if bundle.Hotel == nil || bundle.HotelReason == "" {
		t.Error("bundle should always carry a hotel with a reason")
	}
	if len(bundle.POIs) != 10 {
		t.Errorf("poi shortlist = %d, want 10", len(bundle.POIs))
	}

	for _, pace := range []Pace{PaceRelaxed, PaceNormal, PacePacked} {
		it, ok := bundle.Itineraries[pace]
		if !ok {
			t.Fatalf("missing itinerary for pace %s", pace)
		}
		if _, ok := bundle.Costs[pace]; !ok {
			t.Fatalf("missing cost summary for pace %s", pace)
		}
		seen := make(map[string]bool)
		for _, day := range it.Days {
			for _, p := range slottedPOIs(day) {
				if seen[p.ID] {
					t.Fatalf("pace %s reuses POI %s", pace, p.ID)
				}
				seen[p.ID] = true
			}
		}
	}

	cost := bundle.Costs[PaceNormal]
	if cost.HotelCost != bundle.Hotel.Price*bundle.Nights {
		t.Errorf("hotel cost = %d, want price×nights", cost.HotelCost)
	}
	if cost.Min > cost.BaseTotal || cost.BaseTotal > cost.Max {
		t.Errorf("cost band [%d,%d] does not straddle base %d", cost.Min, cost.Max, cost.BaseTotal)
	}
}

func TestBuildTripBundleSignalsApplied(t *testing.T) {
	cat := catalog.Generate(42)
	svc := NewTripService(cat, zerolog.Nop())
	user, _ := cat.UserByID("user_anna")
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	pq := query.ParsedQuery{Nights: ptr(4), Origin: "Mumbai"}
	bundle, err := svc.BuildTripBundle(context.Background(), user, "dest_0", pq, start)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if bundle.Nights != 4 {
		t.Errorf("nights = %d, want 4 from signals", bundle.Nights)
	}
	for _, f := range bundle.Flights {
		if f.From != "Mumbai" {
			t.Errorf("flight %s ignores origin filter", f.ID)
		}
	}
	for _, it := range bundle.Itineraries {
		if len(it.Days) != 5 {
			t.Errorf("itinerary days = %d, want nights+1 = 5", len(it.Days))
		}
	}
}

func TestBuildTripBundleDeterministic(t *testing.T) {
	cat := catalog.Generate(42)
	svc := NewTripService(cat, zerolog.Nop())
	user, _ := cat.UserByID("user_raj")
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	a, err := svc.BuildTripBundle(context.Background(), user, "dest_3", query.ParsedQuery{}, start)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	b, err := svc.BuildTripBundle(context.Background(), user, "dest_3", query.ParsedQuery{}, start)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical requests must build identical bundles")
	}
}

func TestBuildTripBundleUnknownDestination(t *testing.T) {
	cat := catalog.Generate(42)
	svc := NewTripService(cat, zerolog.Nop())
	user, _ := cat.UserByID("user_anna")

	_, err := svc.BuildTripBundle(context.Background(), user, "dest_999", query.ParsedQuery{}, time.Time{})
	if !errors.Is(err, utils.ErrDestinationNotFound) {
		t.Fatalf("err = %v, want ErrDestinationNotFound", err)
	}
}
