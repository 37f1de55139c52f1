package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripreverie/backend/internal/domain"
	"github.com/tripreverie/backend/internal/repo"
	"github.com/tripreverie/backend/testutil"
)

// newTestTx opens a transaction against the test database and rolls it back
// when the test finishes, giving free per-test isolation without cleanup SQL.
//
// Requires TEST_DATABASE_URL to be set and migrations applied (TestMain does
// the latter).
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return tx
}

// tripFixture returns a domain.Trip with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func tripFixture() domain.Trip {
	return domain.Trip{
		OwnerID: "user-1",
		Request: domain.TripRequest{
			Destination:     "Kyoto",
			Feeling:         "calm and curious",
			Vibe:            domain.VibeCultural,
			MustHaves:       []string{"onsen", "gardens"},
			DealBreakers:    []string{"long bus rides"},
			TravelerType:    domain.TravelerCouple,
			BudgetPerPerson: 4500,
			StartDate:       time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			EndDate:         time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC),
			UserEmail:       "alice@example.com",
		},
		Plan: domain.Itinerary{
			Overview: "Three quiet days in Kyoto.",
			Days: []domain.DayPlan{
				{
					Day:               "Day 1",
					Date:              "2026-04-01",
					Theme:             "temples",
					Accommodation:     "Ryokan Hana",
					Activities:        []string{"Fushimi Inari at dawn", "tea ceremony"},
					DiningSuggestions: []string{"kaiseki dinner"},
					Notes:             "wear comfortable shoes",
				},
				{
					Day:               "Day 2",
					Date:              "2026-04-02",
					Theme:             "gardens",
					Accommodation:     "Ryokan Hana",
					Activities:        []string{"Arashiyama bamboo grove", "moss garden"},
					DiningSuggestions: []string{"yudofu near Nanzen-ji"},
				},
				{
					Day:               "Day 3",
					Date:              "2026-04-03",
					Theme:             "markets",
					Accommodation:     "Ryokan Hana",
					Activities:        []string{"Nishiki market", "sake tasting"},
					DiningSuggestions: []string{"market street food"},
				},
			},
			PackingSuggestions: []string{"walking shoes"},
			Tips:               []string{"carry cash"},
		},
		BudgetDisplay: "$4,500",
	}
}

func TestTripRepo_Create(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	input := tripFixture()
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, input.OwnerID, got.OwnerID)
	assert.Equal(t, input.Request.Destination, got.Request.Destination)
	assert.Equal(t, input.Request.Vibe, got.Request.Vibe)
	assert.Equal(t, input.Request.MustHaves, got.Request.MustHaves)
	assert.Equal(t, input.Request.DealBreakers, got.Request.DealBreakers)
	assert.Equal(t, input.Request.BudgetPerPerson, got.Request.BudgetPerPerson)
	assert.True(t, got.Request.StartDate.Equal(input.Request.StartDate), "StartDate mismatch")
	assert.True(t, got.Request.EndDate.Equal(input.Request.EndDate), "EndDate mismatch")
	assert.Equal(t, input.BudgetDisplay, got.BudgetDisplay)
	assert.Equal(t, input.Plan.Overview, got.Plan.Overview)
	assert.Equal(t, input.Plan.Days, got.Plan.Days, "day plans should round-trip through jsonb")
	assert.Equal(t, input.Plan.PackingSuggestions, got.Plan.PackingSuggestions)
	assert.Equal(t, input.Plan.Tips, got.Plan.Tips)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
}

func TestTripRepo_Create_NilLists(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	input := tripFixture()
	input.Request.MustHaves = nil
	input.Request.DealBreakers = nil
	input.Plan.PackingSuggestions = nil
	input.Plan.Tips = nil

	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	// nil slices are stored as [] so readers never see SQL NULL.
	assert.Equal(t, []string{}, got.Request.MustHaves)
	assert.Equal(t, []string{}, got.Plan.Tips)
}

func TestTripRepo_GetByID(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Request.Destination, got.Request.Destination)
	assert.Equal(t, created.Plan.Days, got.Plan.Days)
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	_, err := r.GetByID(ctx, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_ListByOwner(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	mine := tripFixture()
	mine.OwnerID = "owner-list-test"
	created, err := r.Create(ctx, mine)
	require.NoError(t, err)

	other := tripFixture()
	other.OwnerID = "someone-else"
	_, err = r.Create(ctx, other)
	require.NoError(t, err)

	trips, err := r.ListByOwner(ctx, "owner-list-test")

	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, created.ID, trips[0].ID)
}

func TestTripRepo_ListAll(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	first, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)
	second, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	trips, err := r.ListAll(ctx)

	require.NoError(t, err)
	require.GreaterOrEqual(t, len(trips), 2)

	var ids []uuid.UUID
	for _, tr := range trips {
		ids = append(ids, tr.ID)
	}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
}

func TestTripRepo_Delete(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	err = r.Delete(ctx, created.ID)
	require.NoError(t, err)

	_, err = r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Delete_NotFound(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	err := r.Delete(ctx, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
