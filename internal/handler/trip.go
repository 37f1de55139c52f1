package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/tripreverie/backend/internal/domain"
)

// generateRequest is the trip brief as submitted by the planning form.
// Dates travel as "2006-01-02" strings.
type generateRequest struct {
	Destination     string   `json:"destination"`
	Feeling         string   `json:"feeling"`
	Vibe            string   `json:"vibe"`
	MustHaves       []string `json:"must_haves"`
	DealBreakers    []string `json:"deal_breakers"`
	TravelerType    string   `json:"traveler_type"`
	BudgetPerPerson int      `json:"budget_per_person"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	UserEmail       string   `json:"user_email"`
}

// draftResponse is the result of a successful generation: the itinerary to
// display plus the draft id the client passes back to save it.
type draftResponse struct {
	DraftID   uuid.UUID         `json:"draft_id"`
	Itinerary itineraryResponse `json:"itinerary"`
}

type itineraryResponse struct {
	Overview           string            `json:"overview"`
	Days               []dayPlanResponse `json:"days"`
	PackingSuggestions []string          `json:"packing_suggestions,omitempty"`
	Tips               []string          `json:"tips,omitempty"`
}

type dayPlanResponse struct {
	Day               string   `json:"day"`
	Date              string   `json:"date"`
	Theme             string   `json:"theme"`
	Accommodation     string   `json:"accommodation"`
	Activities        []string `json:"activities"`
	DiningSuggestions []string `json:"dining_suggestions"`
	Notes             string   `json:"notes,omitempty"`
}

// tripResponse is a persisted trip: the originating brief plus the flattened
// itinerary and the server-derived fields.
type tripResponse struct {
	ID              uuid.UUID         `json:"id"`
	OwnerID         string            `json:"owner_id"`
	Destination     string            `json:"destination"`
	Feeling         string            `json:"feeling"`
	Vibe            string            `json:"vibe"`
	MustHaves       []string          `json:"must_haves,omitempty"`
	DealBreakers    []string          `json:"deal_breakers,omitempty"`
	TravelerType    string            `json:"traveler_type"`
	BudgetPerPerson int               `json:"budget_per_person"`
	BudgetDisplay   string            `json:"budget_display"`
	StartDate       string            `json:"start_date"`
	EndDate         string            `json:"end_date"`
	UserEmail       string            `json:"user_email"`
	Itinerary       itineraryResponse `json:"itinerary"`
	CreatedAt       time.Time         `json:"created_at"`
}

// GenerateItinerary handles POST /trips/generate.
// It runs the front half of the pipeline: brief readiness, one generator
// call, validation, and a draft stash. Nothing is persisted; the client
// saves the returned draft id in a second request.
func (s *Server) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "request body is required")
		return
	}

	draft, err := requestToDraft(req, who)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}

	result, err := s.trips.Generate(r.Context(), draft, who)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, draftResponse{
		DraftID:   result.ID,
		Itinerary: itineraryToResponse(result.Plan),
	})
}

// SaveDraft handles POST /trips/drafts/{draftID}/save.
// Saving is separate from generating so a persistence failure can be retried
// without a second generator call.
func (s *Server) SaveDraft(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	draftID, ok := pathUUID(w, r, "draftID")
	if !ok {
		return
	}

	trip, err := s.trips.Save(r.Context(), draftID, who)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(trip))
}

// ListTrips handles GET /trips.
// Administrators see every trip; users see their own. Newest first.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}

	trips, err := s.trips.List(r.Context(), who)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lo.Map(trips, func(t domain.Trip, _ int) tripResponse {
		return tripToResponse(t)
	}))
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	if _, ok := identity(w, r); !ok {
		return
	}
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), tripID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// DeleteTrip handles DELETE /trips/{tripID}.
// Owner or administrator only; the trip's reviews go with it.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}

	if err := s.trips.Delete(r.Context(), tripID, who); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// requestToDraft converts a generateRequest body into a domain.TripDraft.
// Date strings must parse as calendar dates; the email falls back to the
// authenticated identity's email when the form leaves it blank.
func requestToDraft(req generateRequest, who domain.Identity) (domain.TripDraft, error) {
	draft := domain.TripDraft{
		Destination:     req.Destination,
		Feeling:         req.Feeling,
		Vibe:            domain.Vibe(req.Vibe),
		MustHaves:       req.MustHaves,
		DealBreakers:    req.DealBreakers,
		TravelerType:    domain.TravelerType(req.TravelerType),
		BudgetPerPerson: req.BudgetPerPerson,
		UserEmail:       req.UserEmail,
	}
	if draft.UserEmail == "" {
		draft.UserEmail = who.Email
	}

	if req.StartDate != "" {
		start, err := time.Parse(domain.DateLayout, req.StartDate)
		if err != nil {
			return domain.TripDraft{}, err
		}
		draft.StartDate = start
	}
	if req.EndDate != "" {
		end, err := time.Parse(domain.DateLayout, req.EndDate)
		if err != nil {
			return domain.TripDraft{}, err
		}
		draft.EndDate = end
	}

	return draft, nil
}

// itineraryToResponse converts a domain.Itinerary into the response shape.
func itineraryToResponse(it domain.Itinerary) itineraryResponse {
	return itineraryResponse{
		Overview: it.Overview,
		Days: lo.Map(it.Days, func(d domain.DayPlan, _ int) dayPlanResponse {
			return dayPlanResponse{
				Day:               d.Day,
				Date:              d.Date,
				Theme:             d.Theme,
				Accommodation:     d.Accommodation,
				Activities:        d.Activities,
				DiningSuggestions: d.DiningSuggestions,
				Notes:             d.Notes,
			}
		}),
		PackingSuggestions: it.PackingSuggestions,
		Tips:               it.Tips,
	}
}

// tripToResponse converts a domain.Trip into the response shape.
func tripToResponse(t domain.Trip) tripResponse {
	return tripResponse{
		ID:              t.ID,
		OwnerID:         t.OwnerID,
		Destination:     t.Request.Destination,
		Feeling:         t.Request.Feeling,
		Vibe:            string(t.Request.Vibe),
		MustHaves:       t.Request.MustHaves,
		DealBreakers:    t.Request.DealBreakers,
		TravelerType:    string(t.Request.TravelerType),
		BudgetPerPerson: t.Request.BudgetPerPerson,
		BudgetDisplay:   t.BudgetDisplay,
		StartDate:       t.Request.StartDate.Format(domain.DateLayout),
		EndDate:         t.Request.EndDate.Format(domain.DateLayout),
		UserEmail:       t.Request.UserEmail,
		Itinerary:       itineraryToResponse(t.Plan),
		CreatedAt:       t.CreatedAt,
	}
}
