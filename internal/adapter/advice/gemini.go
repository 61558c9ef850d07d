// Package advice calls the Gemini generateContent API to turn the current
// task set plus a free-text prompt into coaching advice.
package advice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/core/domain"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/core/ports"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	DefaultModel   = "gemini-3-flash-preview"

	requestTimeout = 30 * time.Second
	temperature    = 0.8
)

const systemInstructionFormat = `You are an expert productivity coach and life strategist named Chronos AI.
You help users manage their daily routines, tasks, and habits with extreme precision and empathy.

Current Task Data: %s.

RESPONSE GUIDELINES:
1. Be generous with space and structure.
2. Use Markdown heavily:
   - Use '###' for section headers.
   - Use '**' for emphasis on key actions.
   - Use bullet points or numbered lists for steps.
   - Use horizontal separators if needed.
3. Be actionable: Don't just give theory; give specific steps based on their current task list.
4. Maintain a "Premium/Clean" tone. Professional, encouraging, and highly organized.
5. If they have Gaming/Workout/Work mix, provide advice on "Context Switching" and "Deep Work".`

var ErrMissingAPIKey = errors.New("gemini api key not configured")

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

var _ ports.Advisor = (*GeminiClient)(nil)

func NewGeminiClient(cfg Config) *GeminiClient {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &GeminiClient{
		apiKey:  cfg.APIKey,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents          []geminiContent `json:"contents"`
	SystemInstruction geminiContent   `json:"systemInstruction"`
	GenerationConfig  struct {
		Temperature float64 `json:"temperature"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type geminiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (c *GeminiClient) Advise(ctx context.Context, prompt string, tasks []domain.Task) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	taskData, err := json.Marshal(tasks)
	if err != nil {
		return "", fmt.Errorf("marshal task data: %w", err)
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		SystemInstruction: geminiContent{
			Parts: []geminiPart{{Text: fmt.Sprintf(systemInstructionFormat, taskData)}},
		},
	}
	reqBody.GenerationConfig.Temperature = temperature

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read gemini response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr geminiError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("gemini api %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("gemini api returned status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("parse gemini response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini response contained no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
