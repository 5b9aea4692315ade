package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ktagirov/nastroenie/internal/common"
	"github.com/ktagirov/nastroenie/internal/model"
)

const defaultModel = "cardiffnlp/twitter-xlm-roberta-base-sentiment-multilingual"

// huggingFaceClient implements the Client interface for the HuggingFace
// inference API.
type huggingFaceClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// newHuggingFaceClient creates a new HuggingFace inference API client.
func newHuggingFaceClient(cfg Config) (Client, error) {
	modelName := cfg.Model
	if modelName == "" {
		modelName = defaultModel
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api-inference.huggingface.co"
	}

	return &huggingFaceClient{
		apiKey:  cfg.APIKey,
		model:   modelName,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// Predict sends text to the inference API and returns class probabilities.
func (c *huggingFaceClient) Predict(ctx context.Context, text string) (model.ProbabilityVector, error) {
	return c.predict(ctx, text, false)
}

// Warmup forces the remote model container to load by sending a probe input
// with wait_for_model set.
func (c *huggingFaceClient) Warmup(ctx context.Context) error {
	_, err := c.predict(ctx, "ok", true)
	return err
}

func (c *huggingFaceClient) predict(ctx context.Context, text string, waitForModel bool) (model.ProbabilityVector, error) {
	requestBody := map[string]any{
		"inputs": text,
		"options": map[string]any{
			"wait_for_model": waitForModel,
		},
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return model.ProbabilityVector{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(jsonBody)))
	if err != nil {
		return model.ProbabilityVector{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.ProbabilityVector{}, fmt.Errorf("%w: %v", common.ErrClassifierUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.ProbabilityVector{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusServiceUnavailable {
		return model.ProbabilityVector{}, fmt.Errorf("%w: %s", common.ErrModelLoading, c.model)
	}

	if resp.StatusCode != http.StatusOK {
		return model.ProbabilityVector{}, fmt.Errorf("inference API error (status %d): %s", resp.StatusCode, string(body))
	}

	return c.parsePrediction(body)
}

// parsePrediction extracts the three class probabilities from the API
// response. The API returns one list of {label, score} entries per input.
func (c *huggingFaceClient) parsePrediction(body []byte) (model.ProbabilityVector, error) {
	var response [][]struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return model.ProbabilityVector{}, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(response) == 0 || len(response[0]) == 0 {
		return model.ProbabilityVector{}, fmt.Errorf("no predictions returned")
	}

	var probs model.ProbabilityVector
	for _, entry := range response[0] {
		switch strings.ToLower(entry.Label) {
		case "negative", "label_0":
			probs.Negative = entry.Score
		case "neutral", "label_1":
			probs.Neutral = entry.Score
		case "positive", "label_2":
			probs.Positive = entry.Score
		default:
			return model.ProbabilityVector{}, fmt.Errorf("unexpected class label: %s", entry.Label)
		}
	}

	return probs, nil
}
