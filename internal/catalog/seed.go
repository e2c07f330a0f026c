// Package catalog holds the static set of parks and their activities. The
// data is inserted once at startup and treated as read-only afterwards.
package catalog

import (
	"log"

	"gorm.io/gorm"

	"tripplanner/internal/models/db_models"
)

// Seed loads the catalog into an empty store. A store that already holds
// parks is left untouched so restarts against a file DSN stay idempotent.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&db_models.Park{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, entry := range seedData {
		park := entry.park
		if err := db.Create(&park).Error; err != nil {
			return err
		}
		for _, activity := range entry.activities {
			activity.ParkID = park.ID
			if err := db.Create(&activity).Error; err != nil {
				return err
			}
		}
	}

	log.Printf("Catalog seeded with %d parks", len(seedData))
	return nil
}

type seedEntry struct {
	park       db_models.Park
	activities []db_models.ParkActivity
}

var seedData = []seedEntry{
	{
		park: db_models.Park{
			Name:        "Yosemite National Park",
			State:       "California",
			Description: "Granite cliffs, waterfalls and giant sequoia groves in the Sierra Nevada.",
			MonthlyWeather: map[string]string{
				"January": "Cold, snow at elevation, valley around 8C",
				"April":   "Mild days, peak waterfall flow from snowmelt",
				"July":    "Warm and dry, highs near 32C in the valley",
				"October": "Cool and clear, light crowds",
			},
			BestMonths: []string{"May", "June", "September", "October"},
		},
		activities: []db_models.ParkActivity{
			{Name: "Mist Trail to Vernal Fall", Description: "Steep stone steps alongside a 97m waterfall.", Category: "Hiking", DurationMinutes: 180, Difficulty: db_models.DifficultyModerate, Latitude: 37.7275, Longitude: -119.5580, BestTimeOfDay: "morning", BestMonths: []string{"April", "May", "June"}},
			{Name: "Glacier Point Sunset", Description: "Panoramic overlook of Half Dome and the high country.", Category: "Scenic Viewpoint", DurationMinutes: 90, Difficulty: db_models.DifficultyEasy, Latitude: 37.7304, Longitude: -119.5733, BestTimeOfDay: "evening"},
			{Name: "Mariposa Grove Loop", Description: "Walk among more than 500 mature giant sequoias.", Category: "Nature Walk", DurationMinutes: 120, Difficulty: db_models.DifficultyEasy, Latitude: 37.5143, Longitude: -119.6035},
			{Name: "Half Dome Cables", Description: "Permit-only ascent of Yosemite's signature granite dome.", Category: "Hiking", DurationMinutes: 600, Difficulty: db_models.DifficultyDifficult, Latitude: 37.7459, Longitude: -119.5332, BestTimeOfDay: "morning", BestMonths: []string{"June", "July", "August", "September"}},
			{Name: "Valley Floor Bike Loop", Description: "Flat paved loop past meadows and El Capitan views.", Category: "Cycling", DurationMinutes: 150, Difficulty: db_models.DifficultyEasy, Latitude: 37.7456, Longitude: -119.5936},
			{Name: "Tunnel View Photography", Description: "The classic postcard view of the valley.", Category: "Photography", DurationMinutes: 60, Difficulty: db_models.DifficultyEasy, Latitude: 37.7156, Longitude: -119.6773, BestTimeOfDay: "morning"},
		},
	},
	{
		park: db_models.Park{
			Name:        "Yellowstone National Park",
			State:       "Wyoming",
			Description: "The world's first national park: geysers, hot springs and abundant wildlife.",
			MonthlyWeather: map[string]string{
				"January": "Severe cold, most roads closed to cars",
				"May":     "Cool, wildlife with newborns, some snow lingering",
				"July":    "Pleasant, highs around 25C, afternoon storms",
				"September": "Crisp, elk rut, thinning crowds",
			},
			BestMonths: []string{"May", "June", "July", "August", "September"},
		},
		activities: []db_models.ParkActivity{
			{Name: "Old Faithful Eruption", Description: "Watch the famous geyser erupt on its near-hourly schedule.", Category: "Geothermal", DurationMinutes: 60, Difficulty: db_models.DifficultyEasy, Latitude: 44.4605, Longitude: -110.8281},
			{Name: "Grand Prismatic Overlook", Description: "Short climb to the best view of the rainbow-colored spring.", Category: "Geothermal", DurationMinutes: 90, Difficulty: db_models.DifficultyEasy, Latitude: 44.5251, Longitude: -110.8382, BestTimeOfDay: "midday"},
			{Name: "Lamar Valley Wildlife Drive", Description: "Dawn drive through the park's best wolf and bison habitat.", Category: "Wildlife", DurationMinutes: 240, Difficulty: db_models.DifficultyEasy, Latitude: 44.8977, Longitude: -110.2243, BestTimeOfDay: "morning"},
			{Name: "Uncle Tom's Trail", Description: "Steel stairs descending to the base of Lower Falls.", Category: "Hiking", DurationMinutes: 90, Difficulty: db_models.DifficultyModerate, Latitude: 44.7179, Longitude: -110.4966},
			{Name: "Mount Washburn Summit", Description: "Switchbacks to a fire lookout with 360-degree views.", Category: "Hiking", DurationMinutes: 300, Difficulty: db_models.DifficultyDifficult, Latitude: 44.7977, Longitude: -110.4339, BestMonths: []string{"July", "August", "September"}},
			{Name: "Yellowstone Lake Kayak", Description: "Guided paddle along the thermal shoreline of West Thumb.", Category: "Water", DurationMinutes: 180, Difficulty: db_models.DifficultyModerate, Latitude: 44.4160, Longitude: -110.5730, BestMonths: []string{"June", "July", "August"}},
			{Name: "Mammoth Hot Springs Terraces", Description: "Boardwalks over travertine terraces.", Category: "Geothermal", DurationMinutes: 90, Difficulty: db_models.DifficultyEasy, Latitude: 44.9699, Longitude: -110.7030},
		},
	},
	{
		park: db_models.Park{
			Name:        "Acadia National Park",
			State:       "Maine",
			Description: "Rocky Atlantic coastline, granite peaks and carriage roads on Mount Desert Island.",
			MonthlyWeather: map[string]string{
				"February": "Cold and windy, icy trails",
				"June":     "Mild, fog common on the coast",
				"August":   "Warm, highs around 25C, busiest month",
				"October":  "Cool, peak fall foliage",
			},
			BestMonths: []string{"June", "July", "August", "September", "October"},
		},
		activities: []db_models.ParkActivity{
			{Name: "Cadillac Mountain Sunrise", Description: "First sunrise in the United States for much of the year.", Category: "Scenic Viewpoint", DurationMinutes: 90, Difficulty: db_models.DifficultyEasy, Latitude: 44.3528, Longitude: -68.2247, BestTimeOfDay: "morning"},
			{Name: "Precipice Trail", Description: "Iron rungs and ladders up an exposed cliff face.", Category: "Hiking", DurationMinutes: 180, Difficulty: db_models.DifficultyDifficult, Latitude: 44.3490, Longitude: -68.1880, BestMonths: []string{"August", "September", "October"}},
			{Name: "Jordan Pond Path", Description: "Level loop around a clear glacial pond, popovers after.", Category: "Nature Walk", DurationMinutes: 120, Difficulty: db_models.DifficultyEasy, Latitude: 44.3386, Longitude: -68.2533},
			{Name: "Carriage Road Cycling", Description: "Car-free crushed-stone roads past stone bridges.", Category: "Cycling", DurationMinutes: 180, Difficulty: db_models.DifficultyModerate, Latitude: 44.3611, Longitude: -68.2317},
			{Name: "Thunder Hole", Description: "Waves boom through a narrow inlet near high tide.", Category: "Scenic Viewpoint", DurationMinutes: 45, Difficulty: db_models.DifficultyEasy, Latitude: 44.3204, Longitude: -68.1884, BestTimeOfDay: "afternoon"},
		},
	},
}
