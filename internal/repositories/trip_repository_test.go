package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/models/db_models"
	"tripplanner/pkg/utils"
)

func TestCreateTripPlanAssignsIDAndDefaultName(t *testing.T) {
	db := newTestDB(t)
	park, _ := seedPark(t, db, 1)
	repo := NewTripRepository(db)

	plan := &db_models.TripPlan{ParkID: park.ID, Month: "July", Days: 3}
	require.NoError(t, repo.CreateTripPlan(context.Background(), plan))

	assert.NotZero(t, plan.ID)
	assert.Equal(t, "My Trip", plan.Name)
	assert.NotZero(t, plan.CreatedAt)

	got, err := repo.GetTripPlanByID(context.Background(), plan.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, plan.ID, got.ID)
}

func TestGetTripPlanByIDMissingReturnsNil(t *testing.T) {
	db := newTestDB(t)
	repo := NewTripRepository(db)

	got, err := repo.GetTripPlanByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetTripDaysSortedByDayNumber(t *testing.T) {
	db := newTestDB(t)
	park, _ := seedPark(t, db, 1)
	repo := NewTripRepository(db)
	ctx := context.Background()

	plan := &db_models.TripPlan{ParkID: park.ID, Month: "July", Days: 3}
	require.NoError(t, repo.CreateTripPlan(ctx, plan))

	// Insert out of order on purpose.
	for _, n := range []int{3, 1, 2} {
		day := &db_models.TripDay{TripPlanID: plan.ID, DayNumber: n, Title: "Day"}
		require.NoError(t, repo.CreateTripDay(ctx, day))
	}

	days, err := repo.GetTripDaysByTripID(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, days, 3)
	for i, day := range days {
		assert.Equal(t, i+1, day.DayNumber)
	}
}

func TestGetTripActivitiesJoinedAndSorted(t *testing.T) {
	db := newTestDB(t)
	park, activities := seedPark(t, db, 2)
	repo := NewTripRepository(db)
	ctx := context.Background()

	plan := &db_models.TripPlan{ParkID: park.ID, Month: "July", Days: 1}
	require.NoError(t, repo.CreateTripPlan(ctx, plan))
	day := &db_models.TripDay{TripPlanID: plan.ID, DayNumber: 1, Title: "Day 1"}
	require.NoError(t, repo.CreateTripDay(ctx, day))

	// Orders inserted reversed.
	require.NoError(t, repo.CreateTripActivity(ctx, &db_models.TripActivity{
		TripDayID: day.ID, ParkActivityID: activities[1].ID, Order: 2, StartTime: "11:00", EndTime: "12:30",
	}))
	require.NoError(t, repo.CreateTripActivity(ctx, &db_models.TripActivity{
		TripDayID: day.ID, ParkActivityID: activities[0].ID, Order: 1, StartTime: "09:00", EndTime: "10:00",
	}))

	details, err := repo.GetTripActivitiesByDayID(ctx, day.ID)
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, 1, details[0].Order)
	assert.Equal(t, activities[0].ID, details[0].ParkActivity.ID)
	assert.Equal(t, activities[0].Name, details[0].ParkActivity.Name)
	assert.Equal(t, 2, details[1].Order)
	assert.Equal(t, activities[1].ID, details[1].ParkActivity.ID)
}

func TestGetTripActivitiesDanglingReferenceFails(t *testing.T) {
	db := newTestDB(t)
	park, _ := seedPark(t, db, 1)
	repo := NewTripRepository(db)
	ctx := context.Background()

	plan := &db_models.TripPlan{ParkID: park.ID, Month: "July", Days: 1}
	require.NoError(t, repo.CreateTripPlan(ctx, plan))
	day := &db_models.TripDay{TripPlanID: plan.ID, DayNumber: 1, Title: "Day 1"}
	require.NoError(t, repo.CreateTripDay(ctx, day))

	// Write-time checks are deliberately absent, so this succeeds.
	require.NoError(t, repo.CreateTripActivity(ctx, &db_models.TripActivity{
		TripDayID: day.ID, ParkActivityID: 4242, Order: 1,
	}))

	_, err := repo.GetTripActivitiesByDayID(ctx, day.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrReferentialIntegrity)
}

func TestDeleteTripDaysRemovesDaysAndActivities(t *testing.T) {
	db := newTestDB(t)
	park, activities := seedPark(t, db, 1)
	repo := NewTripRepository(db)
	ctx := context.Background()

	plan := &db_models.TripPlan{ParkID: park.ID, Month: "July", Days: 2}
	require.NoError(t, repo.CreateTripPlan(ctx, plan))
	for n := 1; n <= 2; n++ {
		day := &db_models.TripDay{TripPlanID: plan.ID, DayNumber: n, Title: "Day"}
		require.NoError(t, repo.CreateTripDay(ctx, day))
		require.NoError(t, repo.CreateTripActivity(ctx, &db_models.TripActivity{
			TripDayID: day.ID, ParkActivityID: activities[0].ID, Order: 1,
		}))
	}

	require.NoError(t, repo.DeleteTripDaysByTripID(ctx, plan.ID))

	days, err := repo.GetTripDaysByTripID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Empty(t, days)

	var activityCount int64
	require.NoError(t, db.Model(&db_models.TripActivity{}).Count(&activityCount).Error)
	assert.Zero(t, activityCount)
}

func TestDeleteTripDaysIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewTripRepository(db)

	// Trip with no days at all; both calls are no-ops.
	require.NoError(t, repo.DeleteTripDaysByTripID(context.Background(), 77))
	require.NoError(t, repo.DeleteTripDaysByTripID(context.Background(), 77))
}
