package domain

import (
	"fmt"
	"strings"
	"time"
)

// TripDraft is the Preference Collector: a mutable trip brief assembled from
// incremental field updates. It carries no side effects — callers mutate the
// fields, check CanGenerate, and take an immutable Snapshot to hand to the
// generator.
type TripDraft struct {
	Destination     string
	Feeling         string
	Vibe            Vibe
	MustHaves       []string
	DealBreakers    []string
	TravelerType    TravelerType
	BudgetPerPerson int
	StartDate       time.Time
	EndDate         time.Time
	UserEmail       string
}

// CanGenerate reports whether all five required brief fields are present:
// destination, feeling, vibe, both dates, and the contact email.
// Must-haves, deal-breakers, traveler type, and budget are optional extras.
func (d TripDraft) CanGenerate() bool {
	return strings.TrimSpace(d.Destination) != "" &&
		strings.TrimSpace(d.Feeling) != "" &&
		d.Vibe != "" &&
		!d.StartDate.IsZero() &&
		!d.EndDate.IsZero() &&
		strings.TrimSpace(d.UserEmail) != ""
}

// Snapshot freezes the draft into a TripRequest.
// Returns ErrBriefIncomplete when CanGenerate is false, and ErrValidation for
// values that are present but nonsensical (unknown vibe, end before start,
// non-positive budget).
func (d TripDraft) Snapshot() (TripRequest, error) {
	if !d.CanGenerate() {
		return TripRequest{}, fmt.Errorf("%w: destination, feeling, vibe, dates, and email are all required", ErrBriefIncomplete)
	}
	if !d.Vibe.Valid() {
		return TripRequest{}, fmt.Errorf("%w: unknown vibe %q", ErrValidation, d.Vibe)
	}
	travelerType := d.TravelerType
	if travelerType == "" {
		travelerType = TravelerCouple
	}
	if !travelerType.Valid() {
		return TripRequest{}, fmt.Errorf("%w: unknown traveler type %q", ErrValidation, d.TravelerType)
	}
	if d.EndDate.Before(d.StartDate) {
		return TripRequest{}, fmt.Errorf("%w: end date must not be before start date", ErrValidation)
	}
	if d.BudgetPerPerson <= 0 {
		return TripRequest{}, fmt.Errorf("%w: budget must be positive", ErrValidation)
	}

	return TripRequest{
		Destination:     strings.TrimSpace(d.Destination),
		Feeling:         strings.TrimSpace(d.Feeling),
		Vibe:            d.Vibe,
		MustHaves:       trimAll(d.MustHaves),
		DealBreakers:    trimAll(d.DealBreakers),
		TravelerType:    travelerType,
		BudgetPerPerson: d.BudgetPerPerson,
		StartDate:       truncateToDay(d.StartDate),
		EndDate:         truncateToDay(d.EndDate),
		UserEmail:       strings.TrimSpace(d.UserEmail),
	}, nil
}

// trimAll trims every entry and drops the ones that end up empty.
func trimAll(items []string) []string {
	var out []string
	for _, s := range items {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
