package factory

import (
	"fmt"

	"intelliject-be/pkg/llm"
	"intelliject-be/pkg/llm/ollama"
	"intelliject-be/pkg/llm/openai"
)

func NewLLMProvider(providerType, modelName, baseURL, openAIKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "openai":
		if openAIKey == "" {
			return nil, fmt.Errorf("openai provider requires an API key")
		}
		return openai.NewOpenAIProvider(openAIKey, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
