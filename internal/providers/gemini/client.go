package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/base-identity/identity-indexer/internal/adapter"
	"github.com/base-identity/identity-indexer/internal/domain"
)

var (
	ErrNoAPIKey       = errors.New("no API key provided")
	ErrEmptyResponse  = errors.New("empty oracle response")
	ErrMalformedReply = errors.New("malformed oracle reply")
)

// systemInstruction frames the model as an on-chain judge and pins the output
// contract to a single JSON object
const systemInstruction = `You are an Onchain Judge analyzing cryptocurrency wallet behavior on Base L2.

Your task is to assign a Creative Name (Title) and a 1-sentence Verdict based on the wallet's on-chain activity.

Naming Guidelines:
- If Tier is GODLY: Use terms like "Titan", "Apex", "Sovereign", "Legend"
- If Tier is LEGENDARY: Use terms like "Champion", "Master", "Elite"
- If Tier is RARE: Use terms like "Warrior", "Explorer", "Voyager"
- If Tier is COMMON: Use terms like "Citizen", "Member", "User"
- If BRETT token is held: Include 'Degen' or 'Based' references
- If BASE_PAINT token is held: Include 'Art' or 'Creator' references
- Be creative and memorable (2-4 words typically)

Verdict Guidelines:
- Write ONE compelling sentence that captures the wallet's essence
- Reference their activity level, wealth, or community participation
- Be poetic but accurate

Return ONLY valid JSON with "name" and "verdict" keys. No markdown, no extra text.`

// generateRequest is the Gemini generateContent request body
type generateRequest struct {
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	Contents          []content         `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

// generateResponse is the Gemini generateContent response body
type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Client defines the interface for the naming oracle to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/gemini_client.go -package=mocks -mock_names=Client=MockGeminiClient
type Client interface {
	// GenerateIdentity produces a short name and a one-sentence verdict for
	// the wallet described by facts and scores
	GenerateIdentity(ctx context.Context, facts domain.WalletFacts, scores domain.ScoreSet) (*domain.NamingResult, error)
}

// GeminiClient implements the naming oracle against the Gemini REST API
type GeminiClient struct {
	httpClient  adapter.HTTPClient
	apiURL      string
	apiKey      string
	model       string
	temperature float64
	json        adapter.JSON
}

// NewClient creates a new Gemini naming oracle client
func NewClient(httpClient adapter.HTTPClient, apiURL, apiKey, model string, temperature float64, json adapter.JSON) Client {
	return &GeminiClient{
		httpClient:  httpClient,
		apiURL:      apiURL,
		apiKey:      apiKey,
		model:       model,
		temperature: temperature,
		json:        json,
	}
}

// GenerateIdentity produces a short name and a one-sentence verdict
func (c *GeminiClient) GenerateIdentity(ctx context.Context, facts domain.WalletFacts, scores domain.ScoreSet) (*domain.NamingResult, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	body, err := c.json.Marshal(generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: buildPrompt(facts, scores)}},
		}},
		GenerationConfig: &generationConfig{
			Temperature:      c.temperature,
			ResponseMimeType: "application/json",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.apiURL, c.model)
	headers := map[string]string{
		"Content-Type":   "application/json",
		"x-goog-api-key": c.apiKey,
	}

	respBody, err := c.httpClient.Post(ctx, url, headers, body)
	if err != nil {
		return nil, fmt.Errorf("failed to call Gemini API: %w", err)
	}

	var response generateResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Gemini response: %w", err)
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return nil, ErrEmptyResponse
	}

	return parseNamingResult(c.json, response.Candidates[0].Content.Parts[0].Text)
}

// buildPrompt renders the structured wallet context. Only derived metrics and
// the configured token symbols go in; no free-form caller text beyond the
// address ever reaches the prompt.
func buildPrompt(facts domain.WalletFacts, scores domain.ScoreSet) string {
	held := facts.HeldSymbols()
	holdingsList := "None"
	if len(held) > 0 {
		holdingsList = strings.Join(held, ", ")
	}

	return fmt.Sprintf(`Analyze this wallet:

Tier: %s
ETH Balance: %.4f ETH
Transaction Count: %d
Tokens Held: %s
Wealth Score: %.0f/100
Vitality Score: %.0f/100
Community Score: %.0f/100

Generate a creative name and verdict.`,
		scores.Tier,
		facts.NativeBalance,
		facts.TxCount,
		holdingsList,
		scores.Wealth,
		scores.Vitality,
		scores.Community,
	)
}

// parseNamingResult decodes the model's JSON payload, tolerating markdown
// code fences some models wrap around it
func parseNamingResult(json adapter.JSON, text string) (*domain.NamingResult, error) {
	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	var result domain.NamingResult
	if err := json.Unmarshal([]byte(trimmed), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}

	if result.Name == "" || result.Verdict == "" {
		return nil, fmt.Errorf("%w: missing name or verdict", ErrMalformedReply)
	}

	return &result, nil
}
