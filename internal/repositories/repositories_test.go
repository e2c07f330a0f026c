package repositories

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tripplanner/internal/infra"
	"tripplanner/internal/models/db_models"
)

// Each test gets its own named shared-cache database so the connection pool
// sees one store without tests seeing each other.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))

	return db
}

func seedPark(t *testing.T, db *gorm.DB, activityCount int) (db_models.Park, []db_models.ParkActivity) {
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

	activities := make([]db_models.ParkActivity, 0, activityCount)
	for i := 0; i < activityCount; i++ {
		activity := db_models.ParkActivity{
			ParkID:          park.ID,
			Name:            fmt.Sprintf("Activity %d", i+1),
			Description:     "Something to do.",
			Category:        fmt.Sprintf("Category %c", 'A'+i),
			DurationMinutes: 60 + 30*i,
			Difficulty:      db_models.DifficultyModerate,
		}
		require.NoError(t, db.Create(&activity).Error)
		activities = append(activities, activity)
	}

	return park, activities
}
