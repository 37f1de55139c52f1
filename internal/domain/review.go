package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnonymousReviewer is the display name used when a review is submitted
// without one.
const AnonymousReviewer = "Anonymous"

// Review is a rated, timestamped comment filed against a persisted trip.
// Reviews are append-only: no edit or delete operation exists, and a review
// outlives the session that submitted it.
type Review struct {
	ID           uuid.UUID `json:"id"`
	TripID       uuid.UUID `json:"trip_id"`
	Rating       int       `json:"rating"` // 1..5
	Comment      string    `json:"comment"`
	ReviewerName string    `json:"reviewer_name"`
	CreatedAt    time.Time `json:"created_at"`
}
