package service

import (
	"context"
	"fmt"
	"strings"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/tripreverie/backend/internal/domain"
	"github.com/tripreverie/backend/internal/repo"
)

// ExportService renders a persisted trip's itinerary as an iCalendar feed:
// one all-day event per day plan, importable into any calendar app.
type ExportService struct {
	trips repo.TripRepo
}

// NewExportService constructs an ExportService backed by the provided TripRepo.
func NewExportService(trips repo.TripRepo) *ExportService {
	return &ExportService{trips: trips}
}

// Calendar serializes the trip's day plans as an iCalendar document.
// Only the owner or an administrator may export a trip.
func (s *ExportService) Calendar(ctx context.Context, tripID uuid.UUID, who domain.Identity) (string, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return "", fmt.Errorf("service.ExportService.Calendar: %w", err)
	}
	if trip.OwnerID != who.UserID && !who.IsAdmin() {
		return "", fmt.Errorf("service.ExportService.Calendar: %w", domain.ErrForbidden)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//TripReverie//Itinerary//EN")
	cal.SetXWRCalName(fmt.Sprintf("%s (%s)", trip.Request.Destination, trip.Request.Vibe))

	for i, day := range trip.Plan.Days {
		date, err := day.ParsedDate()
		if err != nil {
			// Validated itineraries always carry parseable dates; a bad one
			// here means the row predates the validator and is skipped.
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("%s-day-%d@tripreverie", trip.ID, i+1))
		event.SetAllDayStartAt(date)
		event.SetAllDayEndAt(date.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("%s: %s", day.Day, day.Theme))
		event.SetLocation(trip.Request.Destination)
		event.SetDescription(dayDescription(day))
	}

	return cal.Serialize(), nil
}

// dayDescription flattens a day plan into the lines shown in the calendar
// event body.
func dayDescription(day domain.DayPlan) string {
	var lines []string
	if day.Accommodation != "" {
		lines = append(lines, "Stay: "+day.Accommodation)
	}
	if len(day.Activities) > 0 {
		lines = append(lines, "Activities: "+strings.Join(day.Activities, "; "))
	}
	if len(day.DiningSuggestions) > 0 {
		lines = append(lines, "Dining: "+strings.Join(day.DiningSuggestions, "; "))
	}
	if day.Notes != "" {
		lines = append(lines, "Notes: "+day.Notes)
	}
	return strings.Join(lines, "\n")
}
