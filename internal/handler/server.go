// Package handler implements the HTTP handlers for the TripReverie API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, review.go, export.go) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tripreverie/backend/internal/domain"
	"github.com/tripreverie/backend/internal/middleware"
	"github.com/tripreverie/backend/internal/service"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or the generator.
type TripServicer interface {
	Generate(ctx context.Context, draft domain.TripDraft, who domain.Identity) (service.ItineraryDraft, error)
	Save(ctx context.Context, draftID uuid.UUID, who domain.Identity) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context, who domain.Identity) ([]domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID, who domain.Identity) error
}

// ReviewServicer defines the business operations the review handlers depend on.
type ReviewServicer interface {
	Submit(ctx context.Context, tripID uuid.UUID, rating int, comment, reviewerName string) (domain.Review, error)
	List(ctx context.Context, tripID uuid.UUID) (service.ReviewFeed, error)
}

// Exporter defines the calendar export operation the export handler depends on.
type Exporter interface {
	Calendar(ctx context.Context, tripID uuid.UUID, who domain.Identity) (string, error)
}

// Server holds the handler dependencies for all API endpoints.
// Methods live in domain-specific files but all operate on this struct.
type Server struct {
	trips   TripServicer
	reviews ReviewServicer
	export  Exporter
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, reviews ReviewServicer, export Exporter) *Server {
	return &Server{trips: trips, reviews: reviews, export: export}
}

// Routes returns the chi router for the API surface.
// /healthz is open; everything else requires the identity headers set by the
// upstream auth layer.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Group(func(r chi.Router) {
		r.Use(middleware.NewIdentityHandler())

		r.Post("/trips/generate", s.GenerateItinerary)
		r.Post("/trips/drafts/{draftID}/save", s.SaveDraft)
		r.Get("/trips", s.ListTrips)
		r.Get("/trips/{tripID}", s.GetTrip)
		r.Delete("/trips/{tripID}", s.DeleteTrip)
		r.Get("/trips/{tripID}/calendar.ics", s.GetTripCalendar)

		r.Post("/trips/{tripID}/reviews", s.SubmitReview)
		r.Get("/trips/{tripID}/reviews", s.ListReviews)
	})

	return r
}

// identity returns the request identity or writes a 401 and reports false.
// The identity middleware normally guarantees presence; this guards direct
// handler use in tests.
func identity(w http.ResponseWriter, r *http.Request) (domain.Identity, bool) {
	who, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing identity")
		return domain.Identity{}, false
	}
	return who, true
}

// pathUUID parses the named chi URL parameter as a UUID, writing a 404 when
// it is malformed — a non-UUID id can never name an existing resource.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "no such resource")
		return uuid.Nil, false
	}
	return id, true
}
