package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripreverie/backend/internal/domain"
	"github.com/tripreverie/backend/internal/repo"
	"github.com/tripreverie/backend/internal/service"
)

// mockReviewRepo is a hand-written mock for repo.ReviewRepo using function fields.
type mockReviewRepo struct {
	createFunc       func(ctx context.Context, review domain.Review) (domain.Review, error)
	listByTripIDFunc func(ctx context.Context, tripID uuid.UUID) ([]domain.Review, error)
}

func (m *mockReviewRepo) Create(ctx context.Context, review domain.Review) (domain.Review, error) {
	return m.createFunc(ctx, review)
}

func (m *mockReviewRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Review, error) {
	return m.listByTripIDFunc(ctx, tripID)
}

var _ repo.ReviewRepo = (*mockReviewRepo)(nil)

// passthroughReviewRepo echoes the review back with id and timestamp set,
// the way the real insert does.
func passthroughReviewRepo() *mockReviewRepo {
	return &mockReviewRepo{
		createFunc: func(_ context.Context, review domain.Review) (domain.Review, error) {
			review.ID = uuid.New()
			review.CreatedAt = time.Now()
			return review, nil
		},
	}
}

func TestReviewService_Submit(t *testing.T) {
	svc := service.NewReviewService(passthroughReviewRepo())
	tripID := uuid.New()

	review, err := svc.Submit(context.Background(), tripID, 4, "Loved the tea ceremony day.", "Maya")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, review.ID)
	assert.Equal(t, tripID, review.TripID)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, "Maya", review.ReviewerName)
	assert.False(t, review.CreatedAt.IsZero())
}

func TestReviewService_Submit_RatingBounds(t *testing.T) {
	svc := service.NewReviewService(passthroughReviewRepo())

	for _, rating := range []int{0, -1, 6, 10} {
		_, err := svc.Submit(context.Background(), uuid.New(), rating, "fine trip", "")
		assert.ErrorIs(t, err, domain.ErrInvalidRating, "rating %d", rating)
	}
	for _, rating := range []int{1, 5} {
		_, err := svc.Submit(context.Background(), uuid.New(), rating, "fine trip", "")
		assert.NoError(t, err, "rating %d", rating)
	}
}

func TestReviewService_Submit_EmptyComment(t *testing.T) {
	svc := service.NewReviewService(passthroughReviewRepo())

	for _, comment := range []string{"", "   ", "\n\t"} {
		_, err := svc.Submit(context.Background(), uuid.New(), 3, comment, "Maya")
		assert.ErrorIs(t, err, domain.ErrEmptyComment, "comment %q", comment)
	}
}

func TestReviewService_Submit_TrimsComment(t *testing.T) {
	svc := service.NewReviewService(passthroughReviewRepo())

	review, err := svc.Submit(context.Background(), uuid.New(), 3, "  great views  ", "Maya")

	require.NoError(t, err)
	assert.Equal(t, "great views", review.Comment)
}

func TestReviewService_Submit_AnonymousDefault(t *testing.T) {
	svc := service.NewReviewService(passthroughReviewRepo())

	for _, name := range []string{"", "   "} {
		review, err := svc.Submit(context.Background(), uuid.New(), 5, "wonderful", name)
		require.NoError(t, err)
		assert.Equal(t, domain.AnonymousReviewer, review.ReviewerName)
	}
}

func TestReviewService_Submit_TripMissing(t *testing.T) {
	repo := &mockReviewRepo{
		createFunc: func(_ context.Context, _ domain.Review) (domain.Review, error) {
			return domain.Review{}, domain.ErrNotFound
		},
	}
	svc := service.NewReviewService(repo)

	_, err := svc.Submit(context.Background(), uuid.New(), 3, "nice", "")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReviewService_List(t *testing.T) {
	tripID := uuid.New()
	repo := &mockReviewRepo{
		listByTripIDFunc: func(_ context.Context, got uuid.UUID) ([]domain.Review, error) {
			assert.Equal(t, tripID, got)
			return []domain.Review{
				{ID: uuid.New(), TripID: tripID, Rating: 5, Comment: "perfect"},
				{ID: uuid.New(), TripID: tripID, Rating: 4, Comment: "great"},
				{ID: uuid.New(), TripID: tripID, Rating: 3, Comment: "fine"},
			}, nil
		},
	}
	svc := service.NewReviewService(repo)

	feed, err := svc.List(context.Background(), tripID)

	require.NoError(t, err)
	assert.Equal(t, 3, feed.Count)
	assert.Len(t, feed.Reviews, 3)
	assert.InDelta(t, 4.0, feed.AverageRating, 1e-9)
}

func TestReviewService_List_Empty(t *testing.T) {
	repo := &mockReviewRepo{
		listByTripIDFunc: func(_ context.Context, _ uuid.UUID) ([]domain.Review, error) {
			return nil, nil
		},
	}
	svc := service.NewReviewService(repo)

	feed, err := svc.List(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.NotNil(t, feed.Reviews)
	assert.Zero(t, feed.Count)
	assert.Zero(t, feed.AverageRating)
}
