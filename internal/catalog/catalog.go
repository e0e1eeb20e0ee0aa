package catalog

import (
	"strings"
)

// Catalog is the immutable data set the pipeline works against. It is built
// once at startup and safely shared between requests without locking.
type Catalog struct {
	destinations []Destination
	hotels       []Hotel
	flights      []Flight
	trains       []Train
	users        []User

	destByID    map[string]Destination
	hotelsByDst map[string][]Hotel
	poisByDst   map[string][]POI
	usersByID   map[string]User
}

func New(destinations []Destination, hotels []Hotel, flights []Flight, trains []Train, users []User, pois map[string][]POI) *Catalog {
	c := &Catalog{
		destinations: destinations,
		hotels:       hotels,
		flights:      flights,
		trains:       trains,
		users:        users,
		destByID:     make(map[string]Destination, len(destinations)),
		hotelsByDst:  make(map[string][]Hotel),
		poisByDst:    pois,
		usersByID:    make(map[string]User, len(users)),
	}
	for _, d := range destinations {
		c.destByID[d.ID] = d
	}
	for _, h := range hotels {
		c.hotelsByDst[h.DestinationID] = append(c.hotelsByDst[h.DestinationID], h)
	}
	for _, u := range users {
		c.usersByID[u.ID] = u
	}
	return c
}

// Destinations returns the catalog's destination list in stored order.
// Callers must not mutate the returned slice.
func (c *Catalog) Destinations() []Destination { return c.destinations }

func (c *Catalog) DestinationByID(id string) (Destination, bool) {
	d, ok := c.destByID[id]
	return d, ok
}

// DestinationIDByName scans the catalog for a destination whose display name
// equals name case-insensitively.
func (c *Catalog) DestinationIDByName(name string) (string, bool) {
	lower := strings.ToLower(name)
	for _, d := range c.destinations {
		if strings.ToLower(d.Name) == lower {
			return d.ID, true
		}
	}
	return "", false
}

func (c *Catalog) HotelsByDestination(destID string) []Hotel {
	return c.hotelsByDst[destID]
}

func (c *Catalog) Hotels() []Hotel { return c.hotels }

func (c *Catalog) POIs(destID string) []POI { return c.poisByDst[destID] }

func (c *Catalog) Flights() []Flight { return c.flights }

func (c *Catalog) Trains() []Train { return c.trains }

func (c *Catalog) Users() []User { return c.users }

func (c *Catalog) UserByID(id string) (User, bool) {
	u, ok := c.usersByID[id]
	return u, ok
}

// KnownCityNames returns the lowercase city names the resolver treats as
// known, in catalog order.
func (c *Catalog) KnownCityNames() []string {
	out := make([]string, 0, len(c.destinations))
	for _, d := range c.destinations {
		out = append(out, strings.ToLower(d.Name))
	}
	return out
}
