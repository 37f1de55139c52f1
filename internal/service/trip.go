// Package service contains the business logic for the TripReverie backend.
// Services validate inputs, enforce business rules, and orchestrate planner
// and repo calls. No SQL and no HTTP live here.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tripreverie/backend/internal/domain"
	"github.com/tripreverie/backend/internal/repo"
)

// ItineraryGenerator is the slice of the planner the trip service depends
// on. Defined here, in the consumer package, so tests can inject a stub
// without touching the OpenAI client.
type ItineraryGenerator interface {
	Generate(ctx context.Context, req domain.TripRequest) (domain.Itinerary, error)
}

// ItineraryValidator checks a candidate itinerary against the request it was
// generated for. The production implementation is planner.ValidateItinerary.
type ItineraryValidator func(it domain.Itinerary, req domain.TripRequest) error

// ItineraryDraft is a generated, validated itinerary that has not been saved
// yet. Drafts live in an in-memory TTL cache so that a failed save can be
// retried without re-invoking the generator, which would double the external
// cost. A draft that outlives its TTL must be regenerated explicitly.
type ItineraryDraft struct {
	ID      uuid.UUID
	OwnerID string
	Request domain.TripRequest
	Plan    domain.Itinerary
}

// TripService implements the trip-generation pipeline: collect → generate →
// validate → stash draft → save, plus list and delete over persisted trips.
type TripService struct {
	trips    repo.TripRepo
	gen      ItineraryGenerator
	validate ItineraryValidator
	drafts   *gocache.Cache
}

// NewTripService constructs a TripService. draftTTL bounds how long a
// generated-but-unsaved itinerary stays retrievable for a save retry.
func NewTripService(trips repo.TripRepo, gen ItineraryGenerator, validate ItineraryValidator, draftTTL time.Duration) *TripService {
	return &TripService{
		trips:    trips,
		gen:      gen,
		validate: validate,
		drafts:   gocache.New(draftTTL, 2*draftTTL),
	}
}

// Generate runs the front half of the pipeline for who's trip draft.
//
// The draft must pass the Preference Collector's readiness check; the
// snapshot error (ErrBriefIncomplete or ErrValidation) is returned otherwise.
// Exactly one generator call is made — generator and validator failures are
// surfaced to the caller and never retried here, because regeneration costs
// money and must be an explicit user action.
//
// On success the validated itinerary is stashed under a fresh draft id and
// returned; nothing has been persisted yet.
func (s *TripService) Generate(ctx context.Context, draft domain.TripDraft, who domain.Identity) (ItineraryDraft, error) {
	req, err := draft.Snapshot()
	if err != nil {
		return ItineraryDraft{}, fmt.Errorf("service.TripService.Generate: %w", err)
	}

	plan, err := s.gen.Generate(ctx, req)
	if err != nil {
		return ItineraryDraft{}, fmt.Errorf("service.TripService.Generate: %w", err)
	}

	if err := s.validate(plan, req); err != nil {
		return ItineraryDraft{}, fmt.Errorf("service.TripService.Generate: %w", err)
	}

	d := ItineraryDraft{
		ID:      uuid.New(),
		OwnerID: who.UserID,
		Request: req,
		Plan:    plan,
	}
	s.drafts.Set(d.ID.String(), d, gocache.DefaultExpiration)

	return d, nil
}

// Save persists the draft identified by draftID as a durable Trip.
//
// The draft is consumed only on success: when the store rejects the write the
// draft stays cached and Save can be retried, so a persistence failure never
// forces a second generation. Returns domain.ErrDraftExpired when the draft
// is gone, domain.ErrForbidden when who does not own it, and
// domain.ErrPersistenceFailure when the store is unreachable.
func (s *TripService) Save(ctx context.Context, draftID uuid.UUID, who domain.Identity) (domain.Trip, error) {
	v, ok := s.drafts.Get(draftID.String())
	if !ok {
		return domain.Trip{}, fmt.Errorf("service.TripService.Save: %w", domain.ErrDraftExpired)
	}
	d := v.(ItineraryDraft)

	if d.OwnerID != who.UserID {
		return domain.Trip{}, fmt.Errorf("service.TripService.Save: %w", domain.ErrForbidden)
	}

	trip := domain.Trip{
		OwnerID:       d.OwnerID,
		Request:       d.Request,
		Plan:          d.Plan,
		BudgetDisplay: formatBudgetUSD(d.Request.BudgetPerPerson),
	}

	created, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Save: %w: %v", domain.ErrPersistenceFailure, err)
	}

	s.drafts.Delete(draftID.String())
	return created, nil
}

// GetByID returns a single trip. Any authenticated user may read a trip —
// the review browser shows everyone's trips.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// List returns all trips for an administrator and only who's own trips
// otherwise, newest first. Always returns a non-nil slice.
func (s *TripService) List(ctx context.Context, who domain.Identity) ([]domain.Trip, error) {
	var (
		trips []domain.Trip
		err   error
	)
	if who.IsAdmin() {
		trips, err = s.trips.ListAll(ctx)
	} else {
		trips, err = s.trips.ListByOwner(ctx, who.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Delete removes a trip. Only the owner or an administrator may delete;
// anyone else gets domain.ErrForbidden and the record stays intact.
// Reviews are removed with the trip by the schema's FK cascade.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID, who domain.Identity) error {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	if trip.OwnerID != who.UserID && !who.IsAdmin() {
		return fmt.Errorf("service.TripService.Delete: %w", domain.ErrForbidden)
	}
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// usd prints integer dollar amounts with English digit grouping.
var usd = message.NewPrinter(language.AmericanEnglish)

// formatBudgetUSD renders a per-person budget as a display string, e.g.
// 4500 -> "$4,500". Derived once at save time so every consumer shows the
// same text.
func formatBudgetUSD(amount int) string {
	return usd.Sprintf("$%d", amount)
}
