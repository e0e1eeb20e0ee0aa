package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"tripreco/internal/catalog"
	"tripreco/internal/query"
	"tripreco/internal/reco"
	"tripreco/internal/session"
	"tripreco/pkg/middleware"
)

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	TraceID string          `json:"trace_id"`
	Data    json.RawMessage `json:"data"`
}

func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat := catalog.Generate(42)
	store := session.NewStore(session.NewMemoryCache(), time.Hour, zerolog.Nop())
	resolver := query.NewResolver(cat)
	extractor := query.NewSignalExtractor(nil, query.NewLocalParser(cat), resolver, cat, zerolog.Nop())
	trips := reco.NewTripService(cat, zerolog.Nop())

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())

	sessionController := NewSessionController(store, cat)
	r.POST("/sessions", sessionController.CreateSessionHandler)
	r.GET("/catalog/destinations/:id/pois", NewCatalogController(cat).ListPOIsHandler)
	r.GET("/transport/flights", NewTransportController(cat).FlightsHandler)

	authed := r.Group("/", middleware.SessionAuthMiddleware())
	authed.DELETE("/sessions", sessionController.EndSessionHandler)
	authed.POST("/search/parse", NewSearchController(extractor, resolver, store).ParseSearchHandler)
	authed.GET("/recommendations/hotels", NewRecoController(cat, store).HotelsHandler)
	authed.GET("/recommendations/destinations", NewRecoController(cat, store).DestinationsHandler)
	authed.POST("/trips/bundle", NewTripController(cat, store, extractor, trips).BuildTripBundleHandler)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var env envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("response not an API envelope: %v\n%s", err, rr.Body.String())
	}
	return rr, env
}

func openSession(t *testing.T, r *gin.Engine, userID string) string {
	t.Helper()
	rr, env := doJSON(t, r, http.MethodPost, "/sessions", "", gin.H{"user_id": userID})
	if rr.Code != http.StatusOK {
		t.Fatalf("create session: %d %s", rr.Code, rr.Body.String())
	}
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || data.Token == "" {
		t.Fatalf("no token in response: %v %s", err, env.Data)
	}
	return data.Token
}

func TestSessionLifecycle(t *testing.T) {
	r := setupAPI(t)
	token := openSession(t, r, "user_anna")

	rr, _ := doJSON(t, r, http.MethodDelete, "/sessions", token, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("end session: %d", rr.Code)
	}

	// token still validates but the session is gone
	rr, _ = doJSON(t, r, http.MethodDelete, "/sessions", token, nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("double end = %d, want 401", rr.Code)
	}
}

func TestCreateSessionUnknownUser(t *testing.T) {
	r := setupAPI(t)
	rr, _ := doJSON(t, r, http.MethodPost, "/sessions", "", gin.H{"user_id": "user_nobody"})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unknown user = %d, want 404", rr.Code)
	}
}

func TestParseRequiresAuth(t *testing.T) {
	r := setupAPI(t)
	rr, _ := doJSON(t, r, http.MethodPost, "/search/parse", "", gin.H{"text": "goa trip"})
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated parse = %d, want 401", rr.Code)
	}
}

func TestParseSearch(t *testing.T) {
	r := setupAPI(t)
	token := openSession(t, r, "user_anna")

	rr, env := doJSON(t, r, http.MethodPost, "/search/parse", token, gin.H{"text": "flights to Kolkata under 5k"})
	if rr.Code != http.StatusOK {
		t.Fatalf("parse: %d %s", rr.Code, rr.Body.String())
	}
	var pq query.ParsedQuery
	if err := json.Unmarshal(env.Data, &pq); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if pq.BudgetMax == nil || *pq.BudgetMax != 5000 {
		t.Errorf("budget = %v, want 5000", pq.BudgetMax)
	}
	if pq.DestinationID == "" {
		t.Error("destination not resolved")
	}
	if pq.Intent != query.IntentFlights {
		t.Errorf("intent = %q", pq.Intent)
	}
}

func TestParseSearchSuggestsOnUnresolvedCity(t *testing.T) {
	r := setupAPI(t)
	token := openSession(t, r, "user_anna")

	rr, env := doJSON(t, r, http.MethodPost, "/search/parse", token, gin.H{"text": "romantic weekend in Mumbi"})
	if rr.Code != http.StatusOK {
		t.Fatalf("parse: %d %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		DestinationID string   `json:"destination_id"`
		Suggestions   []string `json:"suggestions"`
	}
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.DestinationID != "" {
		t.Fatalf("destination = %q, want unresolved", resp.DestinationID)
	}
	found := false
	for _, s := range resp.Suggestions {
		if s == "Mumbai" {
			found = true
		}
	}
	if !found {
		t.Fatalf("suggestions = %v, want Mumbai included", resp.Suggestions)
	}

	// resolved destinations carry no suggestions
	rr, env = doJSON(t, r, http.MethodPost, "/search/parse", token, gin.H{"text": "beach trip to Goa"})
	if rr.Code != http.StatusOK {
		t.Fatalf("parse: %d", rr.Code)
	}
	// fresh decode target: omitempty drops "suggestions" on resolved parses,
	// and Unmarshal would otherwise leave the previous slice in place
	resp.DestinationID = ""
	resp.Suggestions = nil
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.DestinationID == "" || len(resp.Suggestions) != 0 {
		t.Fatalf("resolved parse: dest=%q suggestions=%v", resp.DestinationID, resp.Suggestions)
	}
}

func TestHotelRecommendations(t *testing.T) {
	r := setupAPI(t)
	token := openSession(t, r, "user_anna")

	rr, env := doJSON(t, r, http.MethodGet, "/recommendations/hotels?limit=3", token, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("hotels: %d %s", rr.Code, rr.Body.String())
	}
	var items []struct {
		Hotel       catalog.Hotel `json:"hotel"`
		Explanation string        `json:"explanation"`
	}
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d hotels, want 3", len(items))
	}
	for _, it := range items {
		if it.Explanation == "" {
			t.Errorf("hotel %s missing explanation", it.Hotel.ID)
		}
	}
}

func TestTripBundleEndpoint(t *testing.T) {
	r := setupAPI(t)
	token := openSession(t, r, "user_raj")

	body := gin.H{"destination_id": "dest_0", "nights": 3, "start_date": "2026-04-01"}
	rr, env := doJSON(t, r, http.MethodPost, "/trips/bundle", token, body)
	if rr.Code != http.StatusOK {
		t.Fatalf("bundle: %d %s", rr.Code, rr.Body.String())
	}
	var bundle reco.TripBundle
	if err := json.Unmarshal(env.Data, &bundle); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if bundle.Nights != 3 {
		t.Errorf("nights = %d", bundle.Nights)
	}
	if len(bundle.Itineraries) != 3 || len(bundle.Costs) != 3 {
		t.Errorf("expected all three paces, got %d/%d", len(bundle.Itineraries), len(bundle.Costs))
	}

	rr, _ = doJSON(t, r, http.MethodPost, "/trips/bundle", token, gin.H{"destination_id": "dest_999"})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unknown destination = %d, want 404", rr.Code)
	}
}

func TestPOIsUnknownDestination(t *testing.T) {
	r := setupAPI(t)
	rr, _ := doJSON(t, r, http.MethodGet, "/catalog/destinations/dest_999/pois", "", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unknown destination = %d, want 404", rr.Code)
	}
}

func TestFlightsEndpointFilters(t *testing.T) {
	r := setupAPI(t)
	rr, env := doJSON(t, r, http.MethodGet, "/transport/flights?from=Mumbai&max_price=8000&limit=5", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("flights: %d", rr.Code)
	}
	var flights []catalog.Flight
	if err := json.Unmarshal(env.Data, &flights); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, f := range flights {
		if f.From != "Mumbai" || f.Price > 8000 {
			t.Errorf("flight %s violates filters", f.ID)
		}
	}
	if len(flights) > 5 {
		t.Errorf("limit not applied: %d", len(flights))
	}
}
