// Package suggest implements threshold suggesters: an OpenAI-backed one
// and an offline heuristic fallback.
package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.trai.ch/zerr"
	"go.verdant.dev/verdant/internal/core/domain"
	"go.verdant.dev/verdant/internal/core/ports"
)

// Environment variables configuring the OpenAI suggester. The base URL
// override allows pointing at any OpenAI-compatible local endpoint.
const (
	APIKeyEnv    = "OPENAI_API_KEY"
	ModelEnv     = "VERDANT_OPENAI_MODEL"
	BaseURLEnv   = "VERDANT_OPENAI_BASE_URL"
	DefaultModel = "gpt-4o-mini"
)

const systemPrompt = "You are a horticultural assistant. Given a plant's " +
	"current sensor thresholds and recent readings, respond with a JSON " +
	"object mapping each threshold name to its recommended numeric value. " +
	"Respond with JSON only, no prose."

// OpenAI implements ports.Suggester over a chat completion endpoint.
type OpenAI struct {
	client *openai.Client
	model  string
}

var _ ports.Suggester = (*OpenAI)(nil)

// NewOpenAI creates a suggester from the environment. It fails when no
// API key is configured.
func NewOpenAI() (*OpenAI, error) {
	key := os.Getenv(APIKeyEnv)
	if key == "" {
		return nil, zerr.New(APIKeyEnv + " is not set")
	}

	config := openai.DefaultConfig(key)
	if base := os.Getenv(BaseURLEnv); base != "" {
		config.BaseURL = base
	}

	model := os.Getenv(ModelEnv)
	if model == "" {
		model = DefaultModel
	}

	return &OpenAI{client: openai.NewClientWithConfig(config), model: model}, nil
}

// SuggestThresholds asks the model for revised threshold values.
func (o *OpenAI) SuggestThresholds(ctx context.Context, req domain.SuggestionRequest) (map[string]float64, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(req)},
		},
	})
	if err != nil {
		return nil, zerr.Wrap(err, "threshold suggestion request failed")
	}
	if len(resp.Choices) == 0 {
		return nil, zerr.New("threshold suggestion returned no choices")
	}

	suggested, err := parseThresholds(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	return suggested, nil
}

// buildPrompt renders the request deterministically so identical inputs
// produce identical prompts.
func buildPrompt(req domain.SuggestionRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Plant %q (type %s", req.PlantID, req.PlantType)
	if req.Stage != "" {
		fmt.Fprintf(&b, ", stage %s", req.Stage)
	}
	b.WriteString(")\n\nCurrent thresholds:\n")

	for _, key := range sortedThresholdKeys(req.Thresholds) {
		fmt.Fprintf(&b, "  %s: %g\n", key, req.Thresholds[key])
	}

	metrics := make([]string, 0, len(req.Readings))
	for metric := range req.Readings {
		metrics = append(metrics, metric)
	}
	sort.Strings(metrics)

	b.WriteString("\nRecent readings:\n")
	for _, metric := range metrics {
		fmt.Fprintf(&b, "  %s: %v\n", metric, req.Readings[metric])
	}
	return b.String()
}

func sortedThresholdKeys(thresholds map[string]float64) []string {
	keys := make([]string, 0, len(thresholds))
	for key := range thresholds {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// parseThresholds decodes the model's JSON reply, tolerating a fenced
// code block around the object.
func parseThresholds(content string) (map[string]float64, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
		content = strings.TrimSpace(content)
	}

	var suggested map[string]float64
	if err := json.Unmarshal([]byte(content), &suggested); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse threshold suggestion"), "content", content)
	}
	return suggested, nil
}
