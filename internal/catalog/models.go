package catalog

// TravelEdge is one directed hop between two POIs.
type TravelEdge struct {
	Mins int `json:"mins"`
	Cost int `json:"cost"`
}

// Destination is a bookable city. Immutable after catalog load.
type Destination struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	AvgPrice    int      `json:"avg_price"`
	Tags        []string `json:"tags"`
	Seasonality float64  `json:"seasonality"`
}

type Hotel struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	DestinationID string   `json:"destination_id"`
	Price         int      `json:"price"`
	Rating        float64  `json:"rating"`
	Tags          []string `json:"tags"`
	Popularity    float64  `json:"popularity"`
}

type Flight struct {
	ID            string   `json:"id"`
	Airline       string   `json:"airline"`
	From          string   `json:"from"`
	To            string   `json:"to"`
	Stops         int      `json:"stops"`
	DurationMins  int      `json:"duration_mins"`
	Price         int      `json:"price"`
	DepartureTime string   `json:"departure_time"`
	Layovers      []string `json:"layovers,omitempty"`
}

type Train struct {
	ID            string `json:"id"`
	From          string `json:"from"`
	To            string `json:"to"`
	DurationMins  int    `json:"duration_mins"`
	Price         int    `json:"price"`
	DepartureTime string `json:"departure_time"`
	SeatClass     string `json:"class"`
}

// POI is a point of interest inside one destination. TravelTo holds the
// pairwise hop to every other POI of the same destination, generated once
// at catalog build time.
type POI struct {
	ID                  string                `json:"id"`
	Name                string                `json:"name"`
	Category            string                `json:"category"`
	DurationMins        int                   `json:"duration_mins"`
	TravelMinsFromHotel int                   `json:"approx_travel_mins_from_hotel"`
	CostFromHotel       int                   `json:"approx_cost_from_hotel"`
	TravelTo            map[string]TravelEdge `json:"travel_to"`
}

type Budget struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type PastTrip struct {
	DestinationID string   `json:"destination_id"`
	Year          int      `json:"year"`
	Tags          []string `json:"tags"`
}

type UserProfile struct {
	TripType  string   `json:"trip_type"`
	Budget    Budget   `json:"budget"`
	Interests []string `json:"interests"`
}

type User struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Profile   UserProfile `json:"profile"`
	PastTrips []PastTrip  `json:"past_trips"`
}
