package domain

import "time"

// Itinerary is the structured multi-day plan recovered from the generator's
// output. It is a candidate until it passes planner.ValidateItinerary; only
// validated itineraries reach the store or the UI.
//
// The JSON tags match the payload shape the generator is instructed to emit.
type Itinerary struct {
	Overview           string    `json:"overview"`
	Days               []DayPlan `json:"itinerary"`
	PackingSuggestions []string  `json:"packingSuggestions,omitempty"`
	Tips               []string  `json:"tips,omitempty"`
}

// DayPlan is one day of an itinerary.
// Date is the raw "2006-01-02" string as emitted by the generator; the
// validator parses and checks it against the requested span.
type DayPlan struct {
	Day               string   `json:"day"` // label, e.g. "Day 1"
	Date              string   `json:"date"`
	Theme             string   `json:"theme"`
	Accommodation     string   `json:"accommodation"`
	Activities        []string `json:"activities"`
	DiningSuggestions []string `json:"diningSuggestions"`
	Notes             string   `json:"notes,omitempty"`
}

// DateLayout is the calendar-date format day plans carry.
const DateLayout = "2006-01-02"

// ParsedDate returns the day's date as a time.Time, or an error if the
// generator emitted something that is not a calendar date.
func (d DayPlan) ParsedDate() (time.Time, error) {
	return time.Parse(DateLayout, d.Date)
}
