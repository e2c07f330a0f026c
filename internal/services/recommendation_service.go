package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

// FallbackRecommendation is returned when the provider fails; recommendation
// requests degrade to this rather than erroring.
const FallbackRecommendation = "We're sorry, we couldn't generate a recommendation right now. " +
	"Please try again later, or browse the park's activity list for ideas."

type RecommendationServiceInterface interface {
	GetRecommendation(ctx context.Context, parkID uint, month, preferences string) (string, error)
}

type RecommendationService struct {
	recRepo  repositories.RecommendationRepository
	parkRepo repositories.ParkRepository
	aiClient utils.AIClientInterface
}

func NewRecommendationService(
	recRepo repositories.RecommendationRepository,
	parkRepo repositories.ParkRepository,
	aiClient utils.AIClientInterface,
) RecommendationServiceInterface {
	return &RecommendationService{
		recRepo:  recRepo,
		parkRepo: parkRepo,
		aiClient: aiClient,
	}
}

// GetRecommendation serves from the fingerprint cache when the exact
// (park, month, trimmed preferences) tuple has been seen, otherwise generates
// and stores. Provider failures return the apologetic fallback and cache
// nothing, so the next identical request retries generation.
func (s *RecommendationService) GetRecommendation(ctx context.Context, parkID uint, month, preferences string) (string, error) {
	normalizedMonth, ok := utils.NormalizeMonth(month)
	if !ok {
		return "", utils.ErrInvalidMonth
	}

	preferences = strings.TrimSpace(preferences)
	if preferences == "" {
		return "", utils.ErrEmptyPreferences
	}
	if len(preferences) > MaxPreferencesLen {
		return "", utils.ErrPreferencesTooLong
	}

	park, err := s.parkRepo.GetParkByID(ctx, parkID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if park == nil {
		return "", utils.ErrParkNotFound
	}

	cached, err := s.recRepo.GetByFingerprint(ctx, park.ID, normalizedMonth, preferences)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if cached != nil {
		return cached.Recommendation, nil
	}

	text, err := s.aiClient.GenerateText(ctx, buildRecommendationPrompt(park, normalizedMonth, preferences))
	if err != nil {
		log.Printf("Recommendation generation failed for park %d: %v", park.ID, err)
		return FallbackRecommendation, nil
	}
	text = strings.TrimSpace(text)
	if text == "" {
		log.Printf("Recommendation generation returned empty text for park %d", park.ID)
		return FallbackRecommendation, nil
	}

	rec := &db_models.AiRecommendation{
		ParkID:         park.ID,
		Month:          normalizedMonth,
		Preferences:    preferences,
		Recommendation: text,
	}
	if err := s.recRepo.Insert(ctx, rec); err != nil {
		// The text is still good; a failed cache write only costs a regenerate.
		log.Printf("Failed to cache recommendation for park %d: %v", park.ID, err)
	}

	return text, nil
}

func buildRecommendationPrompt(park *db_models.Park, month, preferences string) string {
	var prompt strings.Builder

	fmt.Fprintf(&prompt, "A visitor is planning a trip to %s in %s, %s.\n", park.Name, park.State, month)
	fmt.Fprintf(&prompt, "About the park: %s\n", park.Description)
	if weather, ok := park.MonthlyWeather[month]; ok {
		fmt.Fprintf(&prompt, "Typical %s weather: %s\n", month, weather)
	}
	if len(park.BestMonths) > 0 {
		fmt.Fprintf(&prompt, "Best months to visit: %s\n", strings.Join(park.BestMonths, ", "))
	}
	fmt.Fprintf(&prompt, "Visitor preferences: %s\n\n", preferences)
	prompt.WriteString("Write a short, friendly recommendation (2-3 paragraphs) for this visit. " +
		"Mention how the month's conditions affect the plans and tailor suggestions to the stated preferences.")

	return prompt.String()
}
