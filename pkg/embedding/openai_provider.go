package embedding

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// OpenAIProvider implements EmbeddingProvider against the OpenAI
// embeddings endpoint.
type OpenAIProvider struct {
	ApiKey string
	Model  string
}

func NewOpenAIProvider(apiKey string) EmbeddingProvider {
	return &OpenAIProvider{
		ApiKey: apiKey,
		Model:  "text-embedding-3-small",
	}
}

type openAIEmbeddingRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type openAIEmbeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

func (p *OpenAIProvider) Generate(text string, taskType string) (*EmbeddingResponse, error) {
	reqBody := openAIEmbeddingRequest{
		Model: p.Model,
		Input: text,
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", "https://api.openai.com/v1/embeddings", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resByte, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai embedding error: %s", string(resByte))
	}

	var openAIRes openAIEmbeddingResponse
	if err := json.Unmarshal(resByte, &openAIRes); err != nil {
		return nil, err
	}
	if len(openAIRes.Data) == 0 {
		return nil, fmt.Errorf("openai embedding error: empty data")
	}

	return &EmbeddingResponse{
		Embedding: EmbeddingResponseEmbedding{
			Values: openAIRes.Data[0].Embedding,
		},
	}, nil
}
