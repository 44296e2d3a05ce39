package domain_models

// ActivityType is the closed vocabulary of itinerary activity categories.
type ActivityType string

const (
	ActivityFood          ActivityType = "food"
	ActivitySightseeing   ActivityType = "sightseeing"
	ActivityCulture       ActivityType = "culture"
	ActivityTransport     ActivityType = "transport"
	ActivityAccommodation ActivityType = "accommodation"
	ActivityLeisure       ActivityType = "leisure"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityFood, ActivitySightseeing, ActivityCulture,
		ActivityTransport, ActivityAccommodation, ActivityLeisure:
		return true
	}
	return false
}

type Activity struct {
	Time        string       `json:"time"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        ActivityType `json:"type"`
	Location    string       `json:"location,omitempty"`
	Cost        string       `json:"cost,omitempty"`
}

type Day struct {
	Day             int        `json:"day"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Location        string     `json:"location"`
	Mood            string     `json:"mood"`
	WeatherForecast string     `json:"weather_forecast"`
	Activities      []Activity `json:"activities"`
	Tips            []string   `json:"tips"`
}

// Itinerary is a synthesized multi-day plan. Day ordinals run 1..Duration
// with no gaps; activity order within a day is the display order.
type Itinerary struct {
	Duration        int      `json:"duration"`
	Days            []Day    `json:"days"`
	TotalCost       string   `json:"total_cost"`
	BestTimeToVisit string   `json:"best_time_to_visit"`
	WeatherSummary  string   `json:"weather_summary"`
	PackingTips     []string `json:"packing_tips"`
	LocalCustoms    []string `json:"local_customs"`
}

func (it Itinerary) Clone() Itinerary {
	out := it
	out.PackingTips = append([]string(nil), it.PackingTips...)
	out.LocalCustoms = append([]string(nil), it.LocalCustoms...)

	out.Days = make([]Day, len(it.Days))
	for i, d := range it.Days {
		nd := d
		nd.Activities = append([]Activity(nil), d.Activities...)
		nd.Tips = append([]string(nil), d.Tips...)
		out.Days[i] = nd
	}
	return out
}
