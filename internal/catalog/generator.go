package catalog

import (
	"fmt"
	"math/rand"
	"strings"
)

// Cities the generated catalog covers, in id order (dest_0 .. dest_19).
var cityList = []string{
	"Mumbai", "Delhi", "Bengaluru", "Chennai", "Kolkata", "Goa", "Jaipur", "Udaipur", "Agra", "Varanasi",
	"Amritsar", "Lucknow", "Shimla", "Manali", "Srinagar", "Leh", "Munnar", "Kochi", "Pune", "Hyderabad",
}

var destinationTagPool = []string{
	"beach", "culture", "mountains", "adventure", "nature", "relax", "city", "heritage", "shopping", "spiritual",
}

var hotelTagPool = []string{"pool", "spa", "wifi", "family", "budget", "luxury", "boutique"}

var airlines = []string{"Air India", "IndiGo", "SpiceJet", "Vistara", "GoAir", "AirAsia"}

var poiCategories = []string{
	"sightseeing", "historic", "temple", "museum", "market", "nature", "beach", "viewpoint", "park", "cultural",
}

// Generate synthesizes the full demo catalog from a seed. The same seed
// always yields an identical catalog; callers rely on that to get stable
// ids, prices and POI travel matrices across restarts.
func Generate(seed int64) *Catalog {
	rng := rand.New(rand.NewSource(seed))

	destinations := make([]Destination, 0, len(cityList))
	for i, city := range cityList {
		destinations = append(destinations, Destination{
			ID:          fmt.Sprintf("dest_%d", i),
			Name:        city,
			AvgPrice:    randIntIncl(rng, 4000, 15000),
			Tags:        sample(rng, destinationTagPool, 2),
			Seasonality: round2(uniform(rng, 0.4, 1.0)),
		})
	}

	hotels := make([]Hotel, 0, 30)
	for i := 0; i < 30; i++ {
		dest := destinations[rng.Intn(len(destinations))]
		price := randIntIncl(rng, 500, 10000)
		rating := round1(uniform(rng, 2.0, 4.9))
		pool := append(append([]string{}, dest.Tags...), hotelTagPool...)
		hotels = append(hotels, Hotel{
			ID:            fmt.Sprintf("hotel_%d", i),
			Name:          fmt.Sprintf("%s Hotel %d", dest.Name, i),
			DestinationID: dest.ID,
			Price:         price,
			Rating:        rating,
			Tags:          sample(rng, pool, 3),
			Popularity:    round2(rng.Float64()),
		})
	}

	flightOrigins := []string{"Mumbai", "Delhi", "Bengaluru", "Chennai", "Kolkata", "Hyderabad", "Pune"}
	flights := make([]Flight, 0, 400)
	for _, dest := range destinations {
		nd := randIntIncl(rng, 10, 20)
		for idx := 0; idx < nd; idx++ {
			stops := choiceInt(rng, []int{0, 0, 0, 1})
			flights = append(flights, Flight{
				ID:            fmt.Sprintf("flight_%s_%d", dest.ID, idx),
				Airline:       choiceStr(rng, airlines),
				From:          choiceStr(rng, flightOrigins),
				To:            dest.Name,
				Stops:         stops,
				DurationMins:  randIntIncl(rng, 60, 600) + stops*60,
				Price:         randIntIncl(rng, 1500, 15000),
				DepartureTime: clockTime(rng),
				Layovers:      layovers(rng, stops, []string{"DXB", "SIN", "BKK", "DEL", "BLR"}),
			})
		}
	}
	for len(flights) < 400 {
		dest := destinations[rng.Intn(len(destinations))]
		stops := choiceInt(rng, []int{0, 1})
		flights = append(flights, Flight{
			ID:            fmt.Sprintf("flight_extra_%d", len(flights)),
			Airline:       choiceStr(rng, airlines),
			From:          choiceStr(rng, []string{"Mumbai", "Delhi", "Bengaluru"}),
			To:            dest.Name,
			Stops:         stops,
			DurationMins:  randIntIncl(rng, 60, 600) + stops*60,
			Price:         randIntIncl(rng, 1500, 15000),
			DepartureTime: clockTime(rng),
			Layovers:      layovers(rng, stops, []string{"SIN", "DXB", "KUL", "DEL"}),
		})
	}

	trainOrigins := []string{"Mumbai", "Delhi", "Chennai", "Kolkata", "Bengaluru", "Hyderabad"}
	seatClasses := []string{"Sleeper", "3A", "2A", "CC"}
	trainDests := sampleDestinations(rng, destinations, 15)
	trains := make([]Train, 0, 300)
	for _, dest := range trainDests {
		n := 12 + rng.Intn(9)
		for t := 0; t < n; t++ {
			trains = append(trains, Train{
				ID:            fmt.Sprintf("train_%s_%d", dest.ID, t),
				From:          choiceStr(rng, trainOrigins),
				To:            dest.Name,
				DurationMins:  randIntIncl(rng, 120, 1800),
				Price:         randIntIncl(rng, 300, 3000),
				DepartureTime: clockTime(rng),
				SeatClass:     choiceStr(rng, seatClasses),
			})
		}
	}
	for len(trains) < 300 {
		dest := trainDests[rng.Intn(len(trainDests))]
		trains = append(trains, Train{
			ID:            fmt.Sprintf("train_extra_%d", len(trains)),
			From:          choiceStr(rng, []string{"Mumbai", "Delhi", "Chennai"}),
			To:            dest.Name,
			DurationMins:  randIntIncl(rng, 120, 1800),
			Price:         randIntIncl(rng, 300, 3000),
			DepartureTime: clockTime(rng),
			SeatClass:     choiceStr(rng, seatClasses),
		})
	}

	users := demoUsers()
	pois := generatePOIs(destinations, seed)

	return New(destinations, hotels, flights, trains, users, pois)
}

func demoUsers() []User {
	return []User{
		{
			ID:   "user_anna",
			Name: "Anna (Budget Beach Lover)",
			Profile: UserProfile{
				TripType:  "solo",
				Budget:    Budget{Min: 5000, Max: 12000},
				Interests: []string{"beach", "nightlife"},
			},
			PastTrips: []PastTrip{
				{DestinationID: "dest_5", Year: 2023, Tags: []string{"beach", "nightlife"}},
				{DestinationID: "dest_3", Year: 2022, Tags: []string{"relax", "culture"}},
			},
		},
		{
			ID:   "user_raj",
			Name: "Raj (Adventure Seeker)",
			Profile: UserProfile{
				TripType:  "couple",
				Budget:    Budget{Min: 10000, Max: 20000},
				Interests: []string{"adventure", "nature", "photography"},
			},
			PastTrips: []PastTrip{
				{DestinationID: "dest_2", Year: 2024, Tags: []string{"adventure"}},
				{DestinationID: "dest_14", Year: 2021, Tags: []string{"photography", "nature"}},
			},
		},
		{
			ID:   "user_sara",
			Name: "Sara (Family Relax)",
			Profile: UserProfile{
				TripType:  "family",
				Budget:    Budget{Min: 8000, Max: 15000},
				Interests: []string{"family", "relax", "culture"},
			},
			PastTrips: []PastTrip{
				{DestinationID: "dest_12", Year: 2022, Tags: []string{"family", "mountains"}},
				{DestinationID: "dest_8", Year: 2020, Tags: []string{"heritage", "culture"}},
			},
		},
	}
}

// generatePOIs builds 30 POIs per destination with a pairwise travel matrix.
// Every POI and every edge derives from its own seeded generator so one
// destination's data never depends on iteration order elsewhere.
func generatePOIs(destinations []Destination, seed int64) map[string][]POI {
	out := make(map[string][]POI, len(destinations))
	for di, dest := range destinations {
		names := ensure30(poiNamesByCity[dest.Name], dest.Name)
		rngBase := seed + int64(di)*101

		list := make([]POI, 0, 30)
		for i, pname := range names {
			rng := rand.New(rand.NewSource(rngBase + int64(i)*13))
			category := categoryFor(pname, rng)
			duration := choiceInt(rng, []int{45, 60, 75, 90, 120})
			minsFromHotel := choiceInt(rng, []int{8, 10, 12, 15, 18, 20, 25, 30, 35, 40})
			costFromHotel := int(maxF(15, float64(minsFromHotel)*uniform(rng, 2.0, 5.5)))

			list = append(list, POI{
				ID:                  fmt.Sprintf("%s_poi_%d", dest.ID, i),
				Name:                pname,
				Category:            category,
				DurationMins:        duration,
				TravelMinsFromHotel: minsFromHotel,
				CostFromHotel:       costFromHotel,
				TravelTo:            make(map[string]TravelEdge, 30),
			})
		}

		for i := range list {
			for j := range list {
				if i == j {
					list[i].TravelTo[list[j].ID] = TravelEdge{Mins: 0, Cost: 0}
					continue
				}
				rng := rand.New(rand.NewSource(rngBase + int64(i)*37 + int64(j)*17))
				mins := int(uniform(rng, 5, 60))
				cost := int(maxF(10, float64(mins)*uniform(rng, 1.2, 4.0)))
				list[i].TravelTo[list[j].ID] = TravelEdge{Mins: mins, Cost: cost}
			}
		}
		out[dest.ID] = list
	}
	return out
}

func categoryFor(name string, rng *rand.Rand) string {
	lname := strings.ToLower(name)
	switch {
	case containsAny(lname, "temple", "mandir", "gurudwara", "mosque"):
		return "temple"
	case containsAny(lname, "museum", "gallery", "palace", "fort"):
		return "historic"
	case containsAny(lname, "beach", "lake", "river", "falls"):
		return "nature"
	case containsAny(lname, "market", "bazaar", "mall", "street"):
		return "market"
	case containsAny(lname, "garden", "park", "botanic"):
		return "park"
	default:
		return choiceStr(rng, poiCategories)
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func ensure30(names []string, city string) []string {
	out := make([]string, len(names))
	copy(out, names)
	for idx := 1; len(out) < 30; idx++ {
		out = append(out, fmt.Sprintf("%s Landmark %d", city, idx))
	}
	return out[:30]
}

func randIntIncl(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func choiceStr(rng *rand.Rand, opts []string) string {
	return opts[rng.Intn(len(opts))]
}

func choiceInt(rng *rand.Rand, opts []int) int {
	return opts[rng.Intn(len(opts))]
}

// sample picks k distinct elements preserving pick order.
func sample(rng *rand.Rand, pool []string, k int) []string {
	idx := rng.Perm(len(pool))[:k]
	out := make([]string, 0, k)
	for _, i := range idx {
		out = append(out, pool[i])
	}
	return out
}

func sampleDestinations(rng *rand.Rand, pool []Destination, k int) []Destination {
	idx := rng.Perm(len(pool))[:k]
	out := make([]Destination, 0, k)
	for _, i := range idx {
		out = append(out, pool[i])
	}
	return out
}

func layovers(rng *rand.Rand, stops int, hubs []string) []string {
	if stops == 0 {
		return nil
	}
	return []string{choiceStr(rng, hubs)}
}

func clockTime(rng *rand.Rand) string {
	return fmt.Sprintf("%02d:%02d", rng.Intn(24), choiceInt(rng, []int{0, 15, 30, 45}))
}

func round1(v float64) float64 { return float64(int(v*10+0.5)) / 10 }

func round2(v float64) float64 { return float64(int(v*100+0.5)) / 100 }

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
