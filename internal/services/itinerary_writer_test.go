package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/utils"
)

// flakyTripRepo fails on demand so every writer outcome can be exercised.
type flakyTripRepo struct {
	nextID uint
	days   map[uint]db_models.TripDay
	acts   map[uint]db_models.TripActivity

	failActivityAt int // fail the Nth CreateTripActivity call, 0 disables
	activityCalls  int
	failDeleteAt   int // fail the Nth DeleteTripDaysByTripID call, 0 disables
	deleteCalls    int
}

func newFlakyTripRepo() *flakyTripRepo {
	return &flakyTripRepo{
		days: make(map[uint]db_models.TripDay),
		acts: make(map[uint]db_models.TripActivity),
	}
}

var errStorageBroken = errors.New("storage broken")

func (r *flakyTripRepo) CreateTripPlan(ctx context.Context, plan *db_models.TripPlan) error {
	r.nextID++
	plan.ID = r.nextID
	return nil
}

func (r *flakyTripRepo) GetTripPlanByID(ctx context.Context, id uint) (*db_models.TripPlan, error) {
	return nil, nil
}

func (r *flakyTripRepo) CreateTripDay(ctx context.Context, day *db_models.TripDay) error {
	r.nextID++
	day.ID = r.nextID
	r.days[day.ID] = *day
	return nil
}

func (r *flakyTripRepo) CreateTripActivity(ctx context.Context, activity *db_models.TripActivity) error {
	r.activityCalls++
	if r.failActivityAt > 0 && r.activityCalls >= r.failActivityAt {
		return errStorageBroken
	}
	r.nextID++
	activity.ID = r.nextID
	r.acts[activity.ID] = *activity
	return nil
}

func (r *flakyTripRepo) GetTripDaysByTripID(ctx context.Context, tripID uint) ([]db_models.TripDay, error) {
	var days []db_models.TripDay
	for _, day := range r.days {
		if day.TripPlanID == tripID {
			days = append(days, day)
		}
	}
	return days, nil
}

func (r *flakyTripRepo) GetTripActivitiesByDayID(ctx context.Context, dayID uint) ([]response_models.TripActivityDetail, error) {
	return nil, nil
}

func (r *flakyTripRepo) DeleteTripDaysByTripID(ctx context.Context, tripID uint) error {
	r.deleteCalls++
	if r.failDeleteAt > 0 && r.deleteCalls >= r.failDeleteAt {
		return errStorageBroken
	}
	for id, day := range r.days {
		if day.TripPlanID == tripID {
			delete(r.days, id)
		}
	}
	for id, activity := range r.acts {
		if _, ok := r.days[activity.TripDayID]; !ok {
			delete(r.acts, id)
		}
	}
	return nil
}

func plannedDays(count, perDay int) []response_models.GeneratedDay {
	days := make([]response_models.GeneratedDay, 0, count)
	for d := 1; d <= count; d++ {
		day := response_models.GeneratedDay{
			DayNumber:   d,
			Title:       "Day",
			Description: "A day.",
		}
		for i := 0; i < perDay; i++ {
			day.Activities = append(day.Activities, response_models.GeneratedActivity{
				ActivityID: uint(i + 1),
				StartTime:  "09:00",
				EndTime:    "11:00",
				Order:      i + 1,
			})
		}
		days = append(days, day)
	}
	return days
}

func TestWriterCommitsFullPlan(t *testing.T) {
	repo := newFlakyTripRepo()
	writer := NewItineraryWriter(repo)

	outcome, err := writer.Persist(context.Background(), 1, plannedDays(3, 2))
	require.NoError(t, err)
	assert.Equal(t, WriteCommitted, outcome)
	assert.Len(t, repo.days, 3)
	assert.Len(t, repo.acts, 6)
	assert.Equal(t, 1, repo.deleteCalls, "only the pre-write wipe runs on success")
}

func TestWriterReplacesPreviousItinerary(t *testing.T) {
	repo := newFlakyTripRepo()
	writer := NewItineraryWriter(repo)
	ctx := context.Background()

	_, err := writer.Persist(ctx, 1, plannedDays(3, 2))
	require.NoError(t, err)
	_, err = writer.Persist(ctx, 1, plannedDays(3, 2))
	require.NoError(t, err)

	assert.Len(t, repo.days, 3, "regeneration must not stack a second itinerary")
	assert.Len(t, repo.acts, 6)
}

func TestWriterRollsBackOnActivityFailure(t *testing.T) {
	repo := newFlakyTripRepo()
	repo.failActivityAt = 4 // fails midway through day 2
	writer := NewItineraryWriter(repo)

	outcome, err := writer.Persist(context.Background(), 1, plannedDays(3, 2))
	assert.Equal(t, WriteRolledBack, outcome)
	assert.ErrorIs(t, err, utils.ErrPersistenceRolledBack)
	assert.Equal(t, 2, repo.deleteCalls, "pre-write wipe plus the rollback")

	days, repoErr := repo.GetTripDaysByTripID(context.Background(), 1)
	require.NoError(t, repoErr)
	assert.Empty(t, days, "rollback must leave no orphaned days")
}

func TestWriterStopsWritingAfterFirstFailure(t *testing.T) {
	repo := newFlakyTripRepo()
	repo.failActivityAt = 1
	writer := NewItineraryWriter(repo)

	_, err := writer.Persist(context.Background(), 1, plannedDays(3, 2))
	require.Error(t, err)
	assert.Equal(t, 1, repo.activityCalls, "no further writes after the first failure")
}

func TestWriterInconsistentWhenRollbackFails(t *testing.T) {
	repo := newFlakyTripRepo()
	repo.failActivityAt = 2
	repo.failDeleteAt = 2 // wipe succeeds, rollback does not
	writer := NewItineraryWriter(repo)

	outcome, err := writer.Persist(context.Background(), 1, plannedDays(2, 2))
	assert.Equal(t, WriteInconsistent, outcome)
	assert.ErrorIs(t, err, utils.ErrStoreInconsistent)
	assert.NotErrorIs(t, err, utils.ErrPersistenceRolledBack)
}

func TestWriterFailedWipeWritesNothing(t *testing.T) {
	repo := newFlakyTripRepo()
	repo.failDeleteAt = 1
	writer := NewItineraryWriter(repo)

	outcome, err := writer.Persist(context.Background(), 1, plannedDays(2, 2))
	assert.Equal(t, WriteRolledBack, outcome)
	assert.ErrorIs(t, err, utils.ErrPersistenceRolledBack)
	assert.Zero(t, repo.activityCalls)
	assert.Empty(t, repo.days)
}

func TestWriterRejectsMalformedPlan(t *testing.T) {
	repo := newFlakyTripRepo()
	writer := NewItineraryWriter(repo)

	days := plannedDays(1, 2)
	days[0].Activities[1].Order = 5

	outcome, err := writer.Persist(context.Background(), 1, days)
	assert.Equal(t, WriteRolledBack, outcome)
	assert.ErrorIs(t, err, utils.ErrPersistenceRolledBack)
}

func TestWriteOutcomeStrings(t *testing.T) {
	assert.Equal(t, "committed", WriteCommitted.String())
	assert.Equal(t, "rolled_back", WriteRolledBack.String())
	assert.Equal(t, "inconsistent", WriteInconsistent.String())
}
