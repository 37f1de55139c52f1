package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/tripreverie/backend/internal/domain"
	"github.com/tripreverie/backend/internal/repo"
)

// ReviewService implements the append-only review subsystem: one rated,
// timestamped comment per submission, read back oldest-first with the
// average computed on the fly.
type ReviewService struct {
	reviews repo.ReviewRepo
}

// NewReviewService constructs a ReviewService backed by the provided ReviewRepo.
func NewReviewService(reviews repo.ReviewRepo) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// ReviewFeed is a trip's reviews plus the read-time aggregate. No aggregate
// is persisted — recomputing a mean on read is cheap and avoids a second
// coordinated write on every append.
type ReviewFeed struct {
	Reviews       []domain.Review `json:"reviews"`
	Count         int             `json:"count"`
	AverageRating float64         `json:"average_rating"`
}

// Submit validates and appends a review against tripID.
//
// Rating must be an integer in [1,5] (domain.ErrInvalidRating otherwise);
// comment must be non-empty after trimming (domain.ErrEmptyComment);
// reviewerName defaults to "Anonymous". Returns domain.ErrNotFound when the
// trip does not exist. Reviews are never editable or deletable afterwards.
func (s *ReviewService) Submit(ctx context.Context, tripID uuid.UUID, rating int, comment, reviewerName string) (domain.Review, error) {
	if rating < 1 || rating > 5 {
		return domain.Review{}, fmt.Errorf("service.ReviewService.Submit: %w: got %d", domain.ErrInvalidRating, rating)
	}

	comment = strings.TrimSpace(comment)
	if comment == "" {
		return domain.Review{}, fmt.Errorf("service.ReviewService.Submit: %w", domain.ErrEmptyComment)
	}

	name := strings.TrimSpace(reviewerName)
	if name == "" {
		name = domain.AnonymousReviewer
	}

	review := domain.Review{
		TripID:       tripID,
		Rating:       rating,
		Comment:      comment,
		ReviewerName: name,
	}

	created, err := s.reviews.Create(ctx, review)
	if err != nil {
		return domain.Review{}, fmt.Errorf("service.ReviewService.Submit: %w", err)
	}
	return created, nil
}

// List returns tripID's reviews oldest-first together with the count and
// average rating. Always returns a non-nil Reviews slice.
func (s *ReviewService) List(ctx context.Context, tripID uuid.UUID) (ReviewFeed, error) {
	reviews, err := s.reviews.ListByTripID(ctx, tripID)
	if err != nil {
		return ReviewFeed{}, fmt.Errorf("service.ReviewService.List: %w", err)
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}

	feed := ReviewFeed{Reviews: reviews, Count: len(reviews)}
	if feed.Count > 0 {
		sum := lo.SumBy(reviews, func(r domain.Review) int { return r.Rating })
		feed.AverageRating = float64(sum) / float64(feed.Count)
	}
	return feed, nil
}
