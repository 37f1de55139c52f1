package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tripreverie/backend/internal/domain"
)

// foreignKeyViolation is the Postgres error code raised when an insert
// references a missing parent row.
const foreignKeyViolation = "23503"

// ReviewRepo defines the persistence operations for Reviews.
// Reviews are append-only: there is no Update or Delete. A review row is
// removed only when its parent trip is deleted (FK cascade).
type ReviewRepo interface {
	// Create appends a review and returns the persisted record with the
	// server-assigned id and created_at. Returns domain.ErrNotFound if the
	// referenced trip does not exist.
	Create(ctx context.Context, review domain.Review) (domain.Review, error)

	// ListByTripID returns all reviews for a trip ordered by created_at
	// ascending (oldest first), so the feedback reads chronologically.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Review, error)
}

// pgReviewRepo is the Postgres implementation of ReviewRepo.
type pgReviewRepo struct {
	db db
}

// NewReviewRepo constructs a ReviewRepo backed by the provided db connection.
func NewReviewRepo(db db) ReviewRepo {
	return &pgReviewRepo{db: db}
}

// Create appends a review row and returns the full persisted record.
func (r *pgReviewRepo) Create(ctx context.Context, review domain.Review) (domain.Review, error) {
	const q = `
		INSERT INTO reviews (trip_id, rating, comment, reviewer_name)
		VALUES (@trip_id, @rating, @comment, @reviewer_name)
		RETURNING id, trip_id, rating, comment, reviewer_name, created_at`

	args := pgx.NamedArgs{
		"trip_id":       review.TripID,
		"rating":        review.Rating,
		"comment":       review.Comment,
		"reviewer_name": review.ReviewerName,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanReview(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return domain.Review{}, fmt.Errorf("repo.ReviewRepo.Create: trip: %w", domain.ErrNotFound)
		}
		return domain.Review{}, fmt.Errorf("repo.ReviewRepo.Create: %w", err)
	}
	return result, nil
}

// ListByTripID returns a trip's reviews oldest-first.
func (r *pgReviewRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Review, error) {
	const q = `
		SELECT id, trip_id, rating, comment, reviewer_name, created_at
		FROM reviews
		WHERE trip_id = @trip_id
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ReviewRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ReviewRepo.ListByTripID: scan: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ReviewRepo.ListByTripID: rows: %w", err)
	}

	return reviews, nil
}

// scanReview maps a single database row into a domain.Review.
func scanReview(s scanner) (domain.Review, error) {
	var (
		rv     domain.Review
		id     pgtype.UUID
		tripID pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &rv.Rating, &rv.Comment, &rv.ReviewerName, &rv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Review{}, domain.ErrNotFound
		}
		return domain.Review{}, err
	}

	rv.ID = uuid.UUID(id.Bytes)
	rv.TripID = uuid.UUID(tripID.Bytes)

	return rv, nil
}
