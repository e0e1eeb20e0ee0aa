package query

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"tripreco/internal/catalog"
)

// ---- fakes ----

type fakeParseCache struct {
	store map[string]ParsedQuery
	gets  int
	hits  int
}

func (c *fakeParseCache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.gets++
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	c.hits++
	*dst.(*ParsedQuery) = v
	return true, nil
}

func (c *fakeParseCache) Set(_ context.Context, key string, v any) error {
	if c.store == nil {
		c.store = map[string]ParsedQuery{}
	}
	c.store[key] = v.(ParsedQuery)
	return nil
}

type stubParser struct {
	sig Signals
	err error
}

func (p *stubParser) Parse(context.Context, string) (Signals, error) { return p.sig, p.err }
func (p *stubParser) Source() Source                                 { return SourceExternal }

// ---- tests ----

func newTestExtractor(t *testing.T, parser SemanticParser) (SignalExtractorInterface, *catalog.Catalog) {
	t.Helper()
	cat := catalog.Generate(42)
	local := NewLocalParser(cat)
	return NewSignalExtractor(parser, local, NewResolver(cat), cat, zerolog.Nop()), cat
}

func TestParseFlightsUnderBudget(t *testing.T) {
	e, cat := newTestExtractor(t, nil)

	pq, err := e.Parse(context.Background(), "flights to Kolkata under 5k", nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	kolkata, _ := cat.DestinationIDByName("Kolkata")
	if pq.DestinationID != kolkata {
		t.Errorf("destination = %q, want %q", pq.DestinationID, kolkata)
	}
	if pq.BudgetMax == nil || *pq.BudgetMax != 5000 {
		t.Errorf("budget = %v, want 5000", pq.BudgetMax)
	}
	if pq.Origin != "" {
		t.Errorf("origin = %q, want empty on single-mode query without from", pq.Origin)
	}
	if pq.Intent != IntentFlights {
		t.Errorf("intent = %q, want flights", pq.Intent)
	}
}

func TestParseFromToWithNights(t *testing.T) {
	e, cat := newTestExtractor(t, nil)

	pq, err := e.Parse(context.Background(), "3 nights family trip from Mumbai to Goa", nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	goa, _ := cat.DestinationIDByName("Goa")
	if pq.DestinationID != goa {
		t.Errorf("destination = %q, want %q", pq.DestinationID, goa)
	}
	if pq.Origin != "Mumbai" {
		t.Errorf("origin = %q, want Mumbai", pq.Origin)
	}
	if pq.Nights == nil || *pq.Nights != 3 {
		t.Errorf("nights = %v, want 3", pq.Nights)
	}
	if len(pq.Tags) != 1 || pq.Tags[0] != "family" {
		t.Errorf("tags = %v, want [family]", pq.Tags)
	}
}

func TestParseDropsSameCityHeuristicOrigin(t *testing.T) {
	e, _ := newTestExtractor(t, nil)

	// Mixed intent, so only the same-city rule can drop the origin.
	pq, err := e.Parse(context.Background(), "weekend getaway Goa", nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if pq.Origin != "" {
		t.Errorf("origin = %q, want dropped when equal to destination", pq.Origin)
	}
	if pq.DestinationID == "" {
		t.Error("destination should still be set")
	}
}

func TestParseIdempotentViaCache(t *testing.T) {
	e, _ := newTestExtractor(t, nil)
	cache := &fakeParseCache{}

	first, err := e.Parse(context.Background(), "flights to Kolkata under 5k", cache)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	second, err := e.Parse(context.Background(), "flights to Kolkata under 5k", cache)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("bundles differ:\n%+v\n%+v", first, second)
	}
	if cache.hits == 0 {
		t.Fatal("second parse did not hit the cache")
	}
}

func TestParseExternalParserFailureFallsBack(t *testing.T) {
	failing, _ := newTestExtractor(t, &stubParser{err: errors.New("quota exceeded")})
	localOnly, _ := newTestExtractor(t, nil)

	text := "3 nights family trip from Mumbai to Goa"
	got, err := failing.Parse(context.Background(), text, nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want, err := localOnly.Parse(context.Background(), text, nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("fallback bundle differs from local path:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestParseExternalProvenance(t *testing.T) {
	parser := &stubParser{sig: Signals{
		Destination: "goa",
		Origin:      "Pune",
		BudgetMax:   7000.0,
		Tags:        []string{"beach"},
	}}
	e, cat := newTestExtractor(t, parser)

	pq, err := e.Parse(context.Background(), "hotels for the beach", nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	goa, _ := cat.DestinationIDByName("Goa")
	if pq.DestinationID != goa {
		t.Fatalf("destination = %q, want %q", pq.DestinationID, goa)
	}
	if pq.Origin != "Pune" {
		t.Fatalf("origin = %q, want Pune kept (externally sourced)", pq.Origin)
	}
	if pq.BudgetMax == nil || *pq.BudgetMax != 7000 {
		t.Fatalf("budget = %v, want 7000", pq.BudgetMax)
	}
	for _, field := range []string{"destination_id", "origin", "budget_max", "tags"} {
		if pq.Provenance[field] != SourceExternal {
			t.Errorf("provenance[%s] = %q, want external", field, pq.Provenance[field])
		}
	}
}

func TestParseUnresolvableExternalOriginKeptVerbatim(t *testing.T) {
	parser := &stubParser{sig: Signals{Origin: "Timbuktu"}}
	e, _ := newTestExtractor(t, parser)

	pq, err := e.Parse(context.Background(), "trip ideas", nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if pq.Origin != "Timbuktu" {
		t.Fatalf("origin = %q, want raw token kept", pq.Origin)
	}
}

func TestParseEmptyText(t *testing.T) {
	e, _ := newTestExtractor(t, nil)
	pq, err := e.Parse(context.Background(), "   ", nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if pq.DestinationID != "" || pq.Origin != "" || pq.BudgetMax != nil || len(pq.Tags) != 0 {
		t.Fatalf("empty text should yield empty bundle, got %+v", pq)
	}
}

func TestParseInvalidExternalDestinationIDDropped(t *testing.T) {
	parser := &stubParser{sig: Signals{DestinationID: "dest_999"}}
	e, _ := newTestExtractor(t, parser)

	pq, err := e.Parse(context.Background(), "somewhere nice", nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if pq.DestinationID != "" {
		t.Fatalf("destination = %q, want unknown id stripped", pq.DestinationID)
	}
}
