package query

import (
	"context"
	"reflect"
	"testing"

	"tripreco/internal/catalog"
)

func newLocalParser(t *testing.T) (*LocalParser, *catalog.Catalog) {
	t.Helper()
	cat := catalog.Generate(42)
	return NewLocalParser(cat), cat
}

func TestLocalParserTags(t *testing.T) {
	p, _ := newLocalParser(t)
	sig, err := p.Parse(context.Background(), "romantic luxury weekend getaway")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !reflect.DeepEqual(sig.Tags, []string{"romantic", "luxury", "weekend"}) {
		t.Fatalf("tags = %v", sig.Tags)
	}
}

func TestLocalParserBudget(t *testing.T) {
	p, _ := newLocalParser(t)

	sig, _ := p.Parse(context.Background(), "hotels under 5k")
	if sig.BudgetMax != 5000 {
		t.Fatalf("budget = %v, want 5000", sig.BudgetMax)
	}

	sig, _ = p.Parse(context.Background(), "somewhere below 12,000")
	if sig.BudgetMax != 12000 {
		t.Fatalf("budget = %v, want 12000", sig.BudgetMax)
	}

	sig, _ = p.Parse(context.Background(), "cheap and cheerful")
	if sig.BudgetMax != nil {
		t.Fatalf("budget = %v, want nil without an amount", sig.BudgetMax)
	}
}

func TestLocalParserNightsAndCity(t *testing.T) {
	p, cat := newLocalParser(t)

	sig, _ := p.Parse(context.Background(), "4 days in Shimla")
	if sig.Nights == nil || *sig.Nights != 4 {
		t.Fatalf("nights = %v, want 4", sig.Nights)
	}
	shimla, _ := cat.DestinationIDByName("Shimla")
	if sig.DestinationID != shimla {
		t.Fatalf("destination = %q, want %q", sig.DestinationID, shimla)
	}
}

func TestLocalParserCityTokenOrder(t *testing.T) {
	p, cat := newLocalParser(t)

	// goa is checked before mumbai, so the destination side of a
	// "from X to Y" query wins.
	sig, _ := p.Parse(context.Background(), "from Mumbai to Goa")
	goa, _ := cat.DestinationIDByName("Goa")
	if sig.DestinationID != goa {
		t.Fatalf("destination = %q, want %q", sig.DestinationID, goa)
	}
}

func TestLocalParserTripType(t *testing.T) {
	p, _ := newLocalParser(t)

	if sig, _ := p.Parse(context.Background(), "train to Agra"); sig.TripType != "train" {
		t.Fatalf("trip type = %q, want train", sig.TripType)
	}
	if sig, _ := p.Parse(context.Background(), "plan my trip"); sig.TripType != "itinerary" {
		t.Fatalf("trip type = %q, want itinerary", sig.TripType)
	}
}

func TestDetectIntent(t *testing.T) {
	cases := []struct {
		text string
		want Intent
	}{
		{"flights to Kolkata", IntentFlights},
		{"book a train", IntentTrains},
		{"cheap hotels in goa", IntentHotels},
		{"plan a 3 day itinerary", IntentItinerary},
		{"somewhere warm", IntentMixed},
	}
	for _, c := range cases {
		if got := DetectIntent(c.text); got != c.want {
			t.Errorf("DetectIntent(%q) = %q, want %q", c.text, got, c.want)
		}
	}
}
