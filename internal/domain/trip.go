// Package domain contains the core data types for the TripReverie backend.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (planner, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vibe is the overall mood the traveller wants from the trip.
type Vibe string

// Valid vibes. These mirror the four choices offered by the planning form.
const (
	VibeRelaxing    Vibe = "relaxing"
	VibeAdventurous Vibe = "adventurous"
	VibeFoodie      Vibe = "foodie"
	VibeCultural    Vibe = "cultural"
)

// Valid reports whether v is one of the four known vibes.
func (v Vibe) Valid() bool {
	switch v {
	case VibeRelaxing, VibeAdventurous, VibeFoodie, VibeCultural:
		return true
	}
	return false
}

// TravelerType describes the party composition.
type TravelerType string

// Valid traveler types.
const (
	TravelerSolo   TravelerType = "solo"
	TravelerCouple TravelerType = "couple"
	TravelerFamily TravelerType = "family"
	TravelerGroup  TravelerType = "group"
)

// Valid reports whether t is one of the four known traveler types.
func (t TravelerType) Valid() bool {
	switch t {
	case TravelerSolo, TravelerCouple, TravelerFamily, TravelerGroup:
		return true
	}
	return false
}

// TripRequest is an immutable snapshot of a completed trip brief.
// It is produced by TripDraft.Snapshot once the draft passes CanGenerate,
// and is the only value that crosses from the collector into the generator —
// no mutable form state leaks past this boundary.
type TripRequest struct {
	Destination  string       `json:"destination"`
	Feeling      string       `json:"feeling"`
	Vibe         Vibe         `json:"vibe"`
	MustHaves    []string     `json:"must_haves,omitempty"`
	DealBreakers []string     `json:"deal_breakers,omitempty"`
	TravelerType TravelerType `json:"traveler_type"`
	// BudgetPerPerson is in whole US dollars.
	BudgetPerPerson int       `json:"budget_per_person"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	// UserEmail is the contact key stamped on the saved trip. It is required
	// but not validated as a strict RFC address.
	UserEmail string `json:"user_email"`
}

// Days returns the inclusive number of calendar days between StartDate and
// EndDate. A same-day trip counts as one day.
func (r TripRequest) Days() int {
	start := truncateToDay(r.StartDate)
	end := truncateToDay(r.EndDate)
	return int(end.Sub(start).Hours()/24) + 1
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Trip is the persisted union of a trip brief and its generated itinerary.
// Created atomically once generation and validation succeed; never mutated
// afterwards except by deletion.
type Trip struct {
	ID      uuid.UUID   `json:"id"`
	OwnerID string      `json:"owner_id"`
	Request TripRequest `json:"request"`
	Plan    Itinerary   `json:"plan"`
	// BudgetDisplay is the per-person budget formatted in USD, e.g. "$4,500".
	// Derived at save time so every consumer renders the same string.
	BudgetDisplay string    `json:"budget_display"`
	CreatedAt     time.Time `json:"created_at"`
}
