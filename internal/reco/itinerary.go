package reco

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"
	"strings"
	"time"

	"tripreco/internal/catalog"
	"tripreco/pkg/utils"
)

// Pace controls how many POI slots each day consumes.
type Pace string

const (
	PaceRelaxed Pace = "relaxed"
	PaceNormal  Pace = "normal"
	PacePacked  Pace = "packed"
)

func (p Pace) slotsPerDay() int {
	switch p {
	case PaceRelaxed:
		return 2
	case PacePacked:
		return 4
	default:
		return 3
	}
}

// ItineraryDay holds at most one POI per slot. Trailing slots stay empty
// once the ranked pool runs out.
type ItineraryDay struct {
	Date      string        `json:"date"`
	Morning   []catalog.POI `json:"morning"`
	Afternoon []catalog.POI `json:"afternoon"`
	Evening   []catalog.POI `json:"evening"`
}

type Itinerary struct {
	DestinationID string         `json:"destination_id"`
	StartDate     string         `json:"start_date"`
	Nights        int            `json:"nights"`
	Pace          Pace           `json:"pace"`
	Days          []ItineraryDay `json:"days"`
}

// BuildItinerary partitions the ranked POI pool into day slots, consuming
// slotsPerDay POIs per day in strict rank order without reuse. Total days
// is nights+1, checkout day included. Negative nights is a caller bug.
func BuildItinerary(destID string, start time.Time, nights int, interests []string, pace Pace, pool []catalog.POI) (Itinerary, error) {
	if nights < 0 {
		return Itinerary{}, fmt.Errorf("%w: negative nights %d", utils.ErrInvalidInput, nights)
	}
	if start.IsZero() {
		start = time.Now()
	}
	numDays := nights + 1

	ranked := rankPOIs(pool, interests)
	slots := pace.slotsPerDay()

	days := make([]ItineraryDay, 0, numDays)
	idx := 0
	for d := 0; d < numDays; d++ {
		day := ItineraryDay{
			Date:      start.AddDate(0, 0, d).Format("2006-01-02"),
			Morning:   []catalog.POI{},
			Afternoon: []catalog.POI{},
			Evening:   []catalog.POI{},
		}
		take := slots
		if rem := len(ranked) - idx; rem < take {
			take = rem
		}
		dayPOIs := ranked[idx : idx+take]
		idx += take
		if len(dayPOIs) > 0 {
			day.Morning = dayPOIs[0:1]
		}
		if len(dayPOIs) > 1 {
			day.Afternoon = dayPOIs[1:2]
		}
		if len(dayPOIs) > 2 {
			day.Evening = dayPOIs[2:3]
		}
		days = append(days, day)
	}

	return Itinerary{
		DestinationID: destID,
		StartDate:     start.Format("2006-01-02"),
		Nights:        nights,
		Pace:          pace,
		Days:          days,
	}, nil
}

func rankPOIs(pool []catalog.POI, interests []string) []catalog.POI {
	type row struct {
		p catalog.POI
		s float64
	}
	rows := make([]row, 0, len(pool))
	for _, p := range pool {
		s := 0.0
		name := strings.ToLower(p.Name)
		for _, t := range interests {
			if strings.Contains(p.Category, t) || strings.Contains(name, t) {
				s++
			}
		}
		s += poiJitter(p.ID)
		rows = append(rows, row{p, s})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].s > rows[j].s })
	out := make([]catalog.POI, len(rows))
	for i, r := range rows {
		out[i] = r.p
	}
	return out
}

// poiJitter derives a stable tie-break in [0, 0.1) from the POI id, so
// equally interesting POIs order the same way every run.
func poiJitter(id string) float64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	return rand.New(rand.NewSource(int64(h.Sum64()))).Float64() * 0.1
}
