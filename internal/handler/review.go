package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/tripreverie/backend/internal/domain"
)

// submitReviewRequest is the body of POST /trips/{tripID}/reviews.
type submitReviewRequest struct {
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	ReviewerName string `json:"reviewer_name"`
}

type reviewResponse struct {
	ID           uuid.UUID `json:"id"`
	TripID       uuid.UUID `json:"trip_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	ReviewerName string    `json:"reviewer_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// reviewFeedResponse is the body of GET /trips/{tripID}/reviews: the reviews
// oldest-first plus the read-time aggregate.
type reviewFeedResponse struct {
	Reviews       []reviewResponse `json:"reviews"`
	Count         int              `json:"count"`
	AverageRating float64          `json:"average_rating"`
}

// SubmitReview handles POST /trips/{tripID}/reviews.
// Reviews are append-only; there is no update or delete endpoint.
func (s *Server) SubmitReview(w http.ResponseWriter, r *http.Request) {
	if _, ok := identity(w, r); !ok {
		return
	}
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}

	var req submitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "request body is required")
		return
	}

	review, err := s.reviews.Submit(r.Context(), tripID, req.Rating, req.Comment, req.ReviewerName)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, reviewToResponse(review))
}

// ListReviews handles GET /trips/{tripID}/reviews.
// Ordering is oldest-first so the trip's feedback reads chronologically.
func (s *Server) ListReviews(w http.ResponseWriter, r *http.Request) {
	if _, ok := identity(w, r); !ok {
		return
	}
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}

	feed, err := s.reviews.List(r.Context(), tripID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reviewFeedResponse{
		Reviews: lo.Map(feed.Reviews, func(rv domain.Review, _ int) reviewResponse {
			return reviewToResponse(rv)
		}),
		Count:         feed.Count,
		AverageRating: feed.AverageRating,
	})
}

// reviewToResponse converts a domain.Review into the response shape.
func reviewToResponse(rv domain.Review) reviewResponse {
	return reviewResponse{
		ID:           rv.ID,
		TripID:       rv.TripID,
		Rating:       rv.Rating,
		Comment:      rv.Comment,
		ReviewerName: rv.ReviewerName,
		CreatedAt:    rv.CreatedAt,
	}
}
