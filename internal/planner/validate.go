package planner

import (
	"fmt"
	"strings"

	"github.com/tripreverie/backend/internal/domain"
)

// ValidateItinerary checks a candidate itinerary against the structural
// invariants the rest of the system relies on. Checks run in a fixed order
// and the first failure wins:
//
//  1. overview present and at least one day — domain.ErrSchemaMissingField
//  2. day count equals the requested inclusive date span — domain.ErrDayCountMismatch
//  3. every day has activities and dining suggestions — domain.ErrSchemaMissingField
//  4. day dates non-decreasing, starting at the requested start date —
//     domain.ErrDayOrderingViolation
//
// A failure is never fixed up here: a short itinerary is not padded, a long
// one is not truncated, and nothing is retried. The caller reports the error
// and lets the user decide whether to regenerate.
func ValidateItinerary(it domain.Itinerary, req domain.TripRequest) error {
	if strings.TrimSpace(it.Overview) == "" {
		return fmt.Errorf("planner.ValidateItinerary: %w: overview", domain.ErrSchemaMissingField)
	}
	if len(it.Days) == 0 {
		return fmt.Errorf("planner.ValidateItinerary: %w: itinerary days", domain.ErrSchemaMissingField)
	}

	if want := req.Days(); len(it.Days) != want {
		return fmt.Errorf("planner.ValidateItinerary: %w: got %d days, want %d",
			domain.ErrDayCountMismatch, len(it.Days), want)
	}

	for i, day := range it.Days {
		if len(day.Activities) == 0 {
			return fmt.Errorf("planner.ValidateItinerary: %w: activities on day %d", domain.ErrSchemaMissingField, i+1)
		}
		if len(day.DiningSuggestions) == 0 {
			return fmt.Errorf("planner.ValidateItinerary: %w: diningSuggestions on day %d", domain.ErrSchemaMissingField, i+1)
		}
	}

	prev := req.StartDate
	for i, day := range it.Days {
		date, err := day.ParsedDate()
		if err != nil {
			return fmt.Errorf("planner.ValidateItinerary: %w: unparseable date %q on day %d",
				domain.ErrDayOrderingViolation, day.Date, i+1)
		}
		if i == 0 && !date.Equal(req.StartDate) {
			return fmt.Errorf("planner.ValidateItinerary: %w: first day is %s, trip starts %s",
				domain.ErrDayOrderingViolation, day.Date, req.StartDate.Format(domain.DateLayout))
		}
		if date.Before(prev) {
			return fmt.Errorf("planner.ValidateItinerary: %w: day %d (%s) precedes day %d",
				domain.ErrDayOrderingViolation, i+1, day.Date, i)
		}
		prev = date
	}

	return nil
}
