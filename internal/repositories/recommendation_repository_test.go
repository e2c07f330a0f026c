package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/models/db_models"
)

func TestRecommendationFingerprintExactMatch(t *testing.T) {
	db := newTestDB(t)
	park, _ := seedPark(t, db, 1)
	repo := NewRecommendationRepository(db)
	ctx := context.Background()

	rec := &db_models.AiRecommendation{
		ParkID:         park.ID,
		Month:          "July",
		Preferences:    "easy hikes with waterfalls",
		Recommendation: "Go see the falls.",
	}
	require.NoError(t, repo.Insert(ctx, rec))
	assert.NotZero(t, rec.ID)

	hit, err := repo.GetByFingerprint(ctx, park.ID, "July", "easy hikes with waterfalls")
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, rec.Recommendation, hit.Recommendation)

	// Any character difference is a miss, case included.
	miss, err := repo.GetByFingerprint(ctx, park.ID, "July", "Easy hikes with waterfalls")
	require.NoError(t, err)
	assert.Nil(t, miss)

	miss, err = repo.GetByFingerprint(ctx, park.ID, "August", "easy hikes with waterfalls")
	require.NoError(t, err)
	assert.Nil(t, miss)

	miss, err = repo.GetByFingerprint(ctx, park.ID+1, "July", "easy hikes with waterfalls")
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestRecommendationInsertOverwritesSameFingerprint(t *testing.T) {
	db := newTestDB(t)
	park, _ := seedPark(t, db, 1)
	repo := NewRecommendationRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &db_models.AiRecommendation{
		ParkID: park.ID, Month: "July", Preferences: "easy hikes",
		Recommendation: "Go see the falls.",
	}))
	require.NoError(t, repo.Insert(ctx, &db_models.AiRecommendation{
		ParkID: park.ID, Month: "July", Preferences: "easy hikes",
		Recommendation: "Take the valley loop instead.",
	}))

	hit, err := repo.GetByFingerprint(ctx, park.ID, "July", "easy hikes")
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, "Take the valley loop instead.", hit.Recommendation)

	var count int64
	require.NoError(t, db.Model(&db_models.AiRecommendation{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "one row per fingerprint")
}
