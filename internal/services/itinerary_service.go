package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

const (
	maxActivitiesPerDay = 4
	firstSlotHour       = 9
	slotSpacingHours    = 2

	fallbackNote        = "Suggested activity based on the park's catalog"
	fallbackDescription = "A day of activities selected from the park's catalog."
)

var clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

type ItineraryServiceInterface interface {
	// GenerateItinerary builds, persists and reads back the itinerary for a
	// trip. The response's Source field reports whether the AI plan or the
	// deterministic fallback was used.
	GenerateItinerary(ctx context.Context, tripID uint) (*response_models.ItineraryResponse, error)
}

type ItineraryService struct {
	tripRepo repositories.TripRepository
	parkRepo repositories.ParkRepository
	aiClient utils.AIClientInterface
	writer   *ItineraryWriter
}

func NewItineraryService(
	tripRepo repositories.TripRepository,
	parkRepo repositories.ParkRepository,
	aiClient utils.AIClientInterface,
	writer *ItineraryWriter,
) ItineraryServiceInterface {
	return &ItineraryService{
		tripRepo: tripRepo,
		parkRepo: parkRepo,
		aiClient: aiClient,
		writer:   writer,
	}
}

func (s *ItineraryService) GenerateItinerary(ctx context.Context, tripID uint) (*response_models.ItineraryResponse, error) {
	trip, err := s.tripRepo.GetTripPlanByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	park, err := s.parkRepo.GetParkByID(ctx, trip.ParkID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if park == nil {
		return nil, utils.ErrParkNotFound
	}

	activities, err := s.parkRepo.GetParkActivities(ctx, park.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(activities) == 0 {
		return nil, utils.ErrNoActivities
	}

	plan := s.generatePlan(ctx, trip, park, activities)

	if _, err := s.writer.Persist(ctx, trip.ID, plan.Days); err != nil {
		return nil, err
	}

	itinerary, err := s.readBackItinerary(ctx, trip.ID)
	if err != nil {
		return nil, err
	}

	return &response_models.ItineraryResponse{
		Source:    plan.Source,
		Itinerary: itinerary,
	}, nil
}

// generatePlan tries the AI provider first and degrades silently to the
// deterministic distribution. A degraded itinerary beats no itinerary, so
// generation errors are logged here and never propagated.
func (s *ItineraryService) generatePlan(ctx context.Context, trip *db_models.TripPlan, park *db_models.Park, activities []db_models.ParkActivity) response_models.GeneratedPlan {
	prompt := buildItineraryPrompt(trip, park, activities)

	raw, err := s.aiClient.GenerateJSON(ctx, prompt)
	if err != nil {
		log.Printf("Itinerary generation fallback: provider call failed for trip %d: %v", trip.ID, err)
		return response_models.GeneratedPlan{
			Source: response_models.PlanSourceFallback,
			Days:   BuildFallbackItinerary(activities, trip.Days),
		}
	}

	days, err := parseGeneratedPlan(raw, trip.Days, activities)
	if err != nil {
		log.Printf("Itinerary generation fallback: invalid provider response for trip %d: %v", trip.ID, err)
		return response_models.GeneratedPlan{
			Source: response_models.PlanSourceFallback,
			Days:   BuildFallbackItinerary(activities, trip.Days),
		}
	}

	return response_models.GeneratedPlan{
		Source: response_models.PlanSourceAI,
		Days:   days,
	}
}

func (s *ItineraryService) readBackItinerary(ctx context.Context, tripID uint) ([]response_models.TripDayDetail, error) {
	days, err := s.tripRepo.GetTripDaysByTripID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	details := make([]response_models.TripDayDetail, 0, len(days))
	for _, day := range days {
		activities, err := s.tripRepo.GetTripActivitiesByDayID(ctx, day.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, response_models.TripDayDetail{
			TripDay:    day,
			Activities: activities,
		})
	}
	return details, nil
}

func buildItineraryPrompt(trip *db_models.TripPlan, park *db_models.Park, activities []db_models.ParkActivity) string {
	var prompt strings.Builder

	fmt.Fprintf(&prompt, "Create a %d-day itinerary for a visit to %s (%s) in %s.\n\n",
		trip.Days, park.Name, park.State, trip.Month)
	fmt.Fprintf(&prompt, "About the park: %s\n", park.Description)
	if weather, ok := park.MonthlyWeather[trip.Month]; ok {
		fmt.Fprintf(&prompt, "Weather in %s: %s\n", trip.Month, weather)
	}
	if trip.Preferences != "" {
		fmt.Fprintf(&prompt, "Visitor preferences: %s\n", trip.Preferences)
	}

	prompt.WriteString("\nAvailable activities (use ACTIVITY_ID values exactly):\n")
	for _, a := range activities {
		fmt.Fprintf(&prompt, "- ACTIVITY_ID:%d | Name:%s | Category:%s | Duration:%d min | Difficulty:%s\n",
			a.ID, a.Name, a.Category, a.DurationMinutes, a.Difficulty)
	}

	fmt.Fprintf(&prompt, `
Return JSON only, matching this schema exactly:
{
  "itinerary": [
    {
      "day_number": 1,
      "title": "short day title",
      "description": "one sentence about the day",
      "activities": [
        {"activity_id": 1, "name": "activity name", "start_time": "09:00", "end_time": "11:00", "notes": "tip for the visitor", "order": 1}
      ]
    }
  ]
}

Hard constraints:
- Exactly %d day objects, day_number 1..%d with no gaps.
- 2-4 activities per day, order values 1..N contiguous within each day.
- activity_id must come from the ACTIVITY_ID list above.
- Times formatted HH:MM with start_time before end_time.
Return JSON only. No comments, no markdown.
`, trip.Days, trip.Days)

	return prompt.String()
}

// parseGeneratedPlan validates the provider response against the day-plan
// structure. Any structural problem is an error; the caller falls back.
func parseGeneratedPlan(raw string, dayCount int, catalog []db_models.ParkActivity) ([]response_models.GeneratedDay, error) {
	raw = utils.CleanJSONResponse(raw)

	var parsed struct {
		Itinerary []struct {
			DayNumber   int    `json:"day_number"`
			Title       string `json:"title"`
			Description string `json:"description"`
			Activities  []struct {
				ActivityID uint   `json:"activity_id"`
				Name       string `json:"name"`
				StartTime  string `json:"start_time"`
				EndTime    string `json:"end_time"`
				Notes      string `json:"notes"`
				Order      int    `json:"order"`
			} `json:"activities"`
		} `json:"itinerary"`
	}

	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("invalid itinerary JSON: %w", err)
	}
	if len(parsed.Itinerary) != dayCount {
		return nil, fmt.Errorf("expected %d days, got %d", dayCount, len(parsed.Itinerary))
	}

	known := make(map[uint]bool, len(catalog))
	for _, a := range catalog {
		known[a.ID] = true
	}

	days := make([]response_models.GeneratedDay, 0, dayCount)
	seenDays := make(map[int]bool, dayCount)

	for _, d := range parsed.Itinerary {
		if d.DayNumber < 1 || d.DayNumber > dayCount {
			return nil, fmt.Errorf("day_number %d out of range 1..%d", d.DayNumber, dayCount)
		}
		if seenDays[d.DayNumber] {
			return nil, fmt.Errorf("duplicate day_number %d", d.DayNumber)
		}
		seenDays[d.DayNumber] = true

		if d.Title == "" {
			return nil, fmt.Errorf("day %d has no title", d.DayNumber)
		}
		if len(d.Activities) == 0 {
			return nil, fmt.Errorf("day %d has no activities", d.DayNumber)
		}

		day := response_models.GeneratedDay{
			DayNumber:   d.DayNumber,
			Title:       d.Title,
			Description: d.Description,
		}

		sort.SliceStable(d.Activities, func(i, j int) bool {
			return d.Activities[i].Order < d.Activities[j].Order
		})

		for i, a := range d.Activities {
			if a.Order != i+1 {
				return nil, fmt.Errorf("day %d has non-contiguous order values", d.DayNumber)
			}
			if !known[a.ActivityID] {
				return nil, fmt.Errorf("day %d references unknown activity %d", d.DayNumber, a.ActivityID)
			}
			if !clockPattern.MatchString(a.StartTime) || !clockPattern.MatchString(a.EndTime) {
				return nil, fmt.Errorf("day %d activity %d has malformed times %q..%q",
					d.DayNumber, a.Order, a.StartTime, a.EndTime)
			}
			day.Activities = append(day.Activities, response_models.GeneratedActivity{
				ActivityID: a.ActivityID,
				StartTime:  a.StartTime,
				EndTime:    a.EndTime,
				Notes:      a.Notes,
				Order:      a.Order,
			})
		}

		days = append(days, day)
	}

	sort.SliceStable(days, func(i, j int) bool {
		return days[i].DayNumber < days[j].DayNumber
	})

	return days, nil
}

// BuildFallbackItinerary is the deterministic distribution: a pure function
// of the catalog and the day count. Activities sort by category, each day
// takes perDay consecutive entries starting at (d-1)*perDay, wrapping modulo
// the catalog size. Small catalogs therefore repeat activities across days.
func BuildFallbackItinerary(activities []db_models.ParkActivity, dayCount int) []response_models.GeneratedDay {
	sorted := make([]db_models.ParkActivity, len(activities))
	copy(sorted, activities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Category < sorted[j].Category
	})

	perDay := (len(sorted) + dayCount - 1) / dayCount
	if perDay > maxActivitiesPerDay {
		perDay = maxActivitiesPerDay
	}

	days := make([]response_models.GeneratedDay, 0, dayCount)
	for d := 1; d <= dayCount; d++ {
		day := response_models.GeneratedDay{
			DayNumber:   d,
			Title:       fmt.Sprintf("Day %d: Exploring the Park", d),
			Description: fallbackDescription,
		}

		start := (d - 1) * perDay
		for i := 0; i < perDay; i++ {
			activity := sorted[(start+i)%len(sorted)]

			startHour := firstSlotHour + slotSpacingHours*i
			endHour := startHour + activity.DurationMinutes/60
			endMinute := activity.DurationMinutes % 60

			day.Activities = append(day.Activities, response_models.GeneratedActivity{
				ActivityID: activity.ID,
				StartTime:  utils.FormatClock(startHour, 0),
				EndTime:    utils.FormatClock(endHour, endMinute),
				Notes:      fallbackNote,
				Order:      i + 1,
			})
		}

		days = append(days, day)
	}

	return days
}
