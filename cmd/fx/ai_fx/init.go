package ai_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"tripplanner/pkg/utils"
)

var Module = fx.Provide(ProvideAIClient)

// providerEnv maps a provider name to the environment it is configured from.
type providerEnv struct {
	keyVar       string
	modelVar     string
	defaultModel string
}

var providers = map[string]providerEnv{
	"openai": {keyVar: "OPENAI_API_KEY", modelVar: "OPENAI_MODEL", defaultModel: "gpt-4o-mini"},
	"gemini": {keyVar: "GEMINI_API_KEY", modelVar: "GEMINI_MODEL", defaultModel: "gemini-1.5-flash"},
}

// ProvideAIClient builds the generation client selected by AI_PROVIDER.
func ProvideAIClient() (utils.AIClientInterface, error) {
	name := strings.ToLower(envOr("AI_PROVIDER", "gemini"))
	env, ok := providers[name]
	if !ok {
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", name)
	}

	apiKey := os.Getenv(env.keyVar)
	if apiKey == "" {
		return nil, fmt.Errorf("%s is required when AI_PROVIDER=%s", env.keyVar, name)
	}
	model := envOr(env.modelVar, env.defaultModel)

	log.Printf("Initializing %s generation client with model: %s", name, model)

	if name == "openai" {
		return utils.NewOpenAIClient(apiKey, model), nil
	}
	client, err := utils.NewGeminiClient(apiKey, model)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return client, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
