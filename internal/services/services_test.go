package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tripplanner/internal/infra"
	"tripplanner/internal/models/db_models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))

	return db
}

func seedPark(t *testing.T, db *gorm.DB, activities []db_models.ParkActivity) (db_models.Park, []db_models.ParkActivity) {
	t.Helper()

	park := db_models.Park{
		Name:        "Test Park",
		State:       "Test State",
		Description: "A park for tests.",
		MonthlyWeather: map[string]string{
			"July": "Warm and dry",
		},
		BestMonths: []string{"June", "July"},
	}
	require.NoError(t, db.Create(&park).Error)

	seeded := make([]db_models.ParkActivity, 0, len(activities))
	for _, activity := range activities {
		activity.ParkID = park.ID
		require.NoError(t, db.Create(&activity).Error)
		seeded = append(seeded, activity)
	}

	return park, seeded
}

func catalogActivities(n int) []db_models.ParkActivity {
	activities := make([]db_models.ParkActivity, 0, n)
	for i := 0; i < n; i++ {
		activities = append(activities, db_models.ParkActivity{
			Name:            fmt.Sprintf("Activity %d", i+1),
			Description:     "Something to do.",
			Category:        fmt.Sprintf("Category %c", 'A'+i),
			DurationMinutes: 90,
			Difficulty:      db_models.DifficultyModerate,
		})
	}
	return activities
}

// fakeAIClient counts calls and returns canned responses.
type fakeAIClient struct {
	textResp  string
	textErr   error
	jsonResp  string
	jsonErr   error
	textCalls int
	jsonCalls int
}

func (f *fakeAIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.textCalls++
	return f.textResp, f.textErr
}

func (f *fakeAIClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	f.jsonCalls++
	return f.jsonResp, f.jsonErr
}

var errProviderDown = errors.New("provider unavailable")
