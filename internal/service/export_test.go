package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripreverie/backend/internal/domain"
	"github.com/tripreverie/backend/internal/service"
)

func savedKyotoTrip() domain.Trip {
	draft := completeDraft()
	req, err := draft.Snapshot()
	if err != nil {
		panic(err)
	}
	return domain.Trip{
		ID:      uuid.New(),
		OwnerID: alice.UserID,
		Request: req,
		Plan:    threeDayPlan(),
	}
}

func TestExportService_Calendar(t *testing.T) {
	trip := savedKyotoTrip()
	repo := &mockTripRepo{
		getByIDFunc: func(_ context.Context, got uuid.UUID) (domain.Trip, error) {
			assert.Equal(t, trip.ID, got)
			return trip, nil
		},
	}
	svc := service.NewExportService(repo)

	cal, err := svc.Calendar(context.Background(), trip.ID, alice)

	require.NoError(t, err)
	assert.Contains(t, cal, "BEGIN:VCALENDAR")
	assert.Equal(t, 3, strings.Count(cal, "BEGIN:VEVENT"))
	assert.Contains(t, cal, "SUMMARY:Day 1: temples")
	assert.Contains(t, cal, "LOCATION:Kyoto")
	assert.Contains(t, cal, "X-WR-CALNAME:Kyoto (cultural)")
}

func TestExportService_Calendar_Admin(t *testing.T) {
	trip := savedKyotoTrip()
	repo := &mockTripRepo{
		getByIDFunc: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return trip, nil
		},
	}
	svc := service.NewExportService(repo)

	_, err := svc.Calendar(context.Background(), trip.ID, admin)

	assert.NoError(t, err)
}

func TestExportService_Calendar_NotOwner(t *testing.T) {
	trip := savedKyotoTrip()
	repo := &mockTripRepo{
		getByIDFunc: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return trip, nil
		},
	}
	svc := service.NewExportService(repo)

	_, err := svc.Calendar(context.Background(), trip.ID, bob)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestExportService_Calendar_TripMissing(t *testing.T) {
	repo := &mockTripRepo{
		getByIDFunc: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := service.NewExportService(repo)

	_, err := svc.Calendar(context.Background(), uuid.New(), alice)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExportService_Calendar_SkipsUnparseableDates(t *testing.T) {
	trip := savedKyotoTrip()
	trip.Plan.Days[1].Date = "sometime in spring"
	repo := &mockTripRepo{
		getByIDFunc: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return trip, nil
		},
	}
	svc := service.NewExportService(repo)

	cal, err := svc.Calendar(context.Background(), trip.ID, alice)

	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(cal, "BEGIN:VEVENT"))
}
