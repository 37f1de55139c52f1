// Package repo contains all database access logic for the TripReverie backend.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
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

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated id and created_at populated). Trips are immutable once
	// created — there is deliberately no Update.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// ListAll returns every trip ordered by created_at descending
	// (newest first, for admin and review browsing).
	ListAll(ctx context.Context) ([]domain.Trip, error)

	// ListByOwner returns the trips owned by ownerID, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Trip, error)

	// Delete removes a trip by ID. Reviews cascade at the schema level.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, owner_id, destination, feeling, vibe, must_haves, deal_breakers,
		traveler_type, budget_per_person, budget_display, start_date, end_date,
		user_email, overview, days, packing_suggestions, tips, created_at`

// Create inserts a new trip row and returns the full persisted record.
// The itinerary's day plans and string lists are stored as JSONB; pgx handles
// the marshalling for any Go value bound to a jsonb column.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (owner_id, destination, feeling, vibe, must_haves, deal_breakers,
			traveler_type, budget_per_person, budget_display, start_date, end_date,
			user_email, overview, days, packing_suggestions, tips)
		VALUES (@owner_id, @destination, @feeling, @vibe, @must_haves, @deal_breakers,
			@traveler_type, @budget_per_person, @budget_display, @start_date, @end_date,
			@user_email, @overview, @days, @packing_suggestions, @tips)
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"owner_id":            trip.OwnerID,
		"destination":         trip.Request.Destination,
		"feeling":             trip.Request.Feeling,
		"vibe":                string(trip.Request.Vibe),
		"must_haves":          emptyJSONArray(trip.Request.MustHaves),
		"deal_breakers":       emptyJSONArray(trip.Request.DealBreakers),
		"traveler_type":       string(trip.Request.TravelerType),
		"budget_per_person":   trip.Request.BudgetPerPerson,
		"budget_display":      trip.BudgetDisplay,
		"start_date":          trip.Request.StartDate,
		"end_date":            trip.Request.EndDate,
		"user_email":          trip.Request.UserEmail,
		"overview":            trip.Plan.Overview,
		"days":                trip.Plan.Days,
		"packing_suggestions": emptyJSONArray(trip.Plan.PackingSuggestions),
		"tips":                emptyJSONArray(trip.Plan.Tips),
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListAll returns every trip, newest first.
func (r *pgTripRepo) ListAll(ctx context.Context) ([]domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListAll: %w", err)
	}
	defer rows.Close()

	return collectTrips(rows, "repo.TripRepo.ListAll")
}

// ListByOwner returns the trips owned by ownerID, newest first.
func (r *pgTripRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE owner_id = @owner_id
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListByOwner: %w", err)
	}
	defer rows.Close()

	return collectTrips(rows, "repo.TripRepo.ListByOwner")
}

// Delete removes a trip by primary key. The reviews FK cascades.
func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanTrip to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the UUID, date, and JSONB conversions.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t         domain.Trip
		id        pgtype.UUID
		startDate pgtype.Date
		endDate   pgtype.Date
	)

	err := s.Scan(
		&id,
		&t.OwnerID,
		&t.Request.Destination,
		&t.Request.Feeling,
		&t.Request.Vibe,
		&t.Request.MustHaves,
		&t.Request.DealBreakers,
		&t.Request.TravelerType,
		&t.Request.BudgetPerPerson,
		&t.BudgetDisplay,
		&startDate,
		&endDate,
		&t.Request.UserEmail,
		&t.Plan.Overview,
		&t.Plan.Days,
		&t.Plan.PackingSuggestions,
		&t.Plan.Tips,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.Request.StartDate = startDate.Time
	t.Request.EndDate = endDate.Time

	return t, nil
}

// collectTrips drains rows into a slice, wrapping errors with op.
func collectTrips(rows pgx.Rows, op string) ([]domain.Trip, error) {
	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}
	return trips, nil
}

// emptyJSONArray substitutes an empty slice for nil so jsonb columns store
// [] instead of SQL NULL.
func emptyJSONArray(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
