package query

import (
	"testing"

	"tripreco/internal/catalog"
)

func testResolver(t *testing.T) (*Resolver, *catalog.Catalog) {
	t.Helper()
	cat := catalog.Generate(42)
	return NewResolver(cat), cat
}

func TestResolveExactRoundTrip(t *testing.T) {
	r, cat := testResolver(t)
	for _, d := range cat.Destinations() {
		if got := r.Resolve(d.Name); got != d.Name {
			t.Errorf("Resolve(%q) = %q, want %q", d.Name, got, d.Name)
		}
	}
}

func TestResolveCaseInsensitive(t *testing.T) {
	r, _ := testResolver(t)
	if got := r.Resolve("KOLKATA"); got != "Kolkata" {
		t.Fatalf("Resolve(KOLKATA) = %q", got)
	}
	if got := r.Resolve("  goa  "); got != "Goa" {
		t.Fatalf("Resolve with whitespace = %q", got)
	}
}

func TestResolveSubstring(t *testing.T) {
	r, _ := testResolver(t)
	if got := r.Resolve("mum"); got != "Mumbai" {
		t.Fatalf("prefix resolve = %q, want Mumbai", got)
	}
	if got := r.Resolve("to goa"); got != "Goa" {
		t.Fatalf("stray-word resolve = %q, want Goa", got)
	}
}

func TestResolveUnknown(t *testing.T) {
	r, _ := testResolver(t)
	if got := r.Resolve("xyzzy"); got != "" {
		t.Fatalf("Resolve(xyzzy) = %q, want empty", got)
	}
	if got := r.Resolve(""); got != "" {
		t.Fatalf("Resolve of empty string = %q, want empty", got)
	}
}

func TestDetectDestinationPrefersAfterTo(t *testing.T) {
	r, cat := testResolver(t)
	kolkata, _ := cat.DestinationIDByName("Kolkata")
	if got := r.DetectDestination("flights to Kolkata under 5k"); got != kolkata {
		t.Fatalf("DetectDestination = %q, want %q", got, kolkata)
	}

	goa, _ := cat.DestinationIDByName("Goa")
	if got := r.DetectDestination("from Mumbai to Goa"); got != goa {
		t.Fatalf("DetectDestination = %q, want %q", got, goa)
	}
}

func TestDetectDestinationFallsBackToRightmost(t *testing.T) {
	r, cat := testResolver(t)
	mumbai, _ := cat.DestinationIDByName("Mumbai")
	if got := r.DetectDestination("weekend in Goa and Mumbai"); got != mumbai {
		t.Fatalf("DetectDestination = %q, want rightmost %q", got, mumbai)
	}
}

func TestDetectOrigin(t *testing.T) {
	r, _ := testResolver(t)
	if got := r.DetectOrigin("3 nights family trip from Mumbai to Goa"); got != "Mumbai" {
		t.Fatalf("origin after from = %q, want Mumbai", got)
	}
	if got := r.DetectOrigin("Mumbai to Goa by train"); got != "Mumbai" {
		t.Fatalf("origin before to = %q, want Mumbai", got)
	}
	if got := r.DetectOrigin("nothing to see here"); got != "" {
		t.Fatalf("origin with no cities = %q, want empty", got)
	}
}

func TestSuggest(t *testing.T) {
	r, _ := testResolver(t)
	got := r.Suggest("mumbi", 3)
	if len(got) == 0 {
		t.Fatal("Suggest returned nothing for near-miss input")
	}
	found := false
	for _, s := range got {
		if s == "Mumbai" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Suggest(mumbi) = %v, want Mumbai included", got)
	}
}

func TestSuggestFromText(t *testing.T) {
	r, _ := testResolver(t)

	got := r.SuggestFromText("romantic weekend in Mumbi", 3)
	found := false
	for _, s := range got {
		if s == "Mumbai" {
			found = true
		}
	}
	if !found {
		t.Fatalf("SuggestFromText = %v, want Mumbai included", got)
	}
	if len(got) > 3 {
		t.Fatalf("SuggestFromText returned %d names, want at most 3", len(got))
	}

	if got := r.SuggestFromText("go in at", 3); len(got) != 0 {
		t.Fatalf("short words should be skipped, got %v", got)
	}
}
