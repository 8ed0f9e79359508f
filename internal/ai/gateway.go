// Package ai wraps the remote generative-text endpoint that supplies
// flavor content: activity suggestions, day summaries, packing lists and
// travel tips. Every call degrades to a fixed local fallback on network or
// parse failure; callers never see an error from this package.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const requestTimeout = 30 * time.Second

type Gateway struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewGateway(apiKey, endpoint string) *Gateway {
	return &Gateway{
		apiKey:   apiKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: requestTimeout},
	}
}

type Suggestion struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Description   string  `json:"description,omitempty"`
	Duration      int     `json:"duration"`
	EstimatedCost float64 `json:"estimatedCost"`
	BestTime      string  `json:"bestTime,omitempty"`
}

type Tip struct {
	Tip      string `json:"tip"`
	Category string `json:"category"`
}

type PackingList struct {
	Essentials  []string `json:"essentials"`
	Clothing    []string `json:"clothing"`
	Toiletries  []string `json:"toiletries"`
	Electronics []string `json:"electronics"`
	Documents   []string `json:"documents"`
	Misc        []string `json:"misc"`
}

// ActivitySuggestions asks for five activities fitting the city and trip
// style. Falls back to a generic list on any failure.
func (g *Gateway) ActivitySuggestions(ctx context.Context, cityName, country, tripType, budget string) []Suggestion {
	if tripType == "" {
		tripType = "leisure"
	}
	if budget == "" {
		budget = "moderate"
	}

	prompt := fmt.Sprintf(`You are a travel expert. Suggest 5 unique activities for a traveler visiting %s, %s.
Consider: %s trip, %s budget.

Return a JSON array with this exact format:
[
  {
    "name": "Activity Name",
    "type": "sightseeing|food|entertainment|shopping|experience|adventure|wellness",
    "description": "Brief description",
    "duration": 120,
    "estimatedCost": 500,
    "bestTime": "Morning|Afternoon|Evening"
  }
]

Only return the JSON array, no other text.`, cityName, country, tripType, budget)

	text, err := g.generate(ctx, prompt, 0.7, 1024)
	if err != nil {
		slog.Warn("activity suggestions fell back to defaults", "city", cityName, "error", err)
		return defaultSuggestions(cityName)
	}

	var suggestions []Suggestion
	if err := json.Unmarshal(extractJSON(text, '[', ']'), &suggestions); err != nil {
		slog.Warn("activity suggestions unparseable, using defaults", "city", cityName, "error", err)
		return defaultSuggestions(cityName)
	}
	return suggestions
}

// DaySummary produces a two-sentence blurb for one day's plan.
func (g *Gateway) DaySummary(ctx context.Context, cityName string, activityNames []string) string {
	activities := "No activities planned"
	if len(activityNames) > 0 {
		activities = strings.Join(activityNames, ", ")
	}

	prompt := fmt.Sprintf(`Create a brief, engaging 2-sentence summary of this travel day in %s:
Activities: %s

Make it sound exciting and personal. Only return the summary text.`, cityName, activities)

	text, err := g.generate(ctx, prompt, 0.8, 150)
	if err != nil || strings.TrimSpace(text) == "" {
		slog.Warn("day summary fell back to default", "city", cityName, "error", err)
		return defaultDaySummary
	}
	return strings.TrimSpace(text)
}

// PackingList builds a categorized packing list for the trip.
func (g *Gateway) PackingList(ctx context.Context, destinations []string, duration int, tripType string) PackingList {
	dests := "unknown destination"
	if len(destinations) > 0 {
		dests = strings.Join(destinations, ", ")
	}
	if tripType == "" {
		tripType = "leisure"
	}

	prompt := fmt.Sprintf(`Create a packing list for a %d-day %s trip to %s.

Return a JSON object with categories:
{
  "essentials": ["item1", "item2"],
  "clothing": ["item1", "item2"],
  "toiletries": ["item1", "item2"],
  "electronics": ["item1", "item2"],
  "documents": ["item1", "item2"],
  "misc": ["item1", "item2"]
}

Keep each category to 5-8 items. Only return the JSON.`, duration, tripType, dests)

	text, err := g.generate(ctx, prompt, 0.5, 512)
	if err != nil {
		slog.Warn("packing list fell back to default", "error", err)
		return defaultPackingList()
	}

	var list PackingList
	if err := json.Unmarshal(extractJSON(text, '{', '}'), &list); err != nil {
		slog.Warn("packing list unparseable, using default", "error", err)
		return defaultPackingList()
	}
	return list
}

// TravelTips returns destination tips, or an empty list when the call
// fails; there is no canned tip content worth faking.
func (g *Gateway) TravelTips(ctx context.Context, cityName, country string) []Tip {
	prompt := fmt.Sprintf(`Give 5 essential travel tips for visiting %s, %s.

Return a JSON array:
[
  {
    "tip": "Tip text",
    "category": "safety|money|culture|transport|food"
  }
]

Only return the JSON array.`, cityName, country)

	text, err := g.generate(ctx, prompt, 0.6, 512)
	if err != nil {
		slog.Warn("travel tips unavailable", "city", cityName, "error", err)
		return []Tip{}
	}

	var tips []Tip
	if err := json.Unmarshal(extractJSON(text, '[', ']'), &tips); err != nil {
		slog.Warn("travel tips unparseable", "city", cityName, "error", err)
		return []Tip{}
	}
	return tips
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *Gateway) generate(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("gateway api key not configured")
	}

	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{Temperature: temperature, MaxOutputTokens: maxTokens},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint+"?key="+g.apiKey, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", apiError(resp)
	}

	var response generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", err
	}
	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty generation response")
	}
	return response.Candidates[0].Content.Parts[0].Text, nil
}

func apiError(resp *http.Response) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil || len(data) == 0 {
		return fmt.Errorf("generative api error: %s", resp.Status)
	}

	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error.Message != "" {
		return errors.New(payload.Error.Message)
	}
	return fmt.Errorf("generative api error: %s", resp.Status)
}

// extractJSON cuts the first open..last close span out of free-form model
// output, tolerating prose or code fences around the payload.
func extractJSON(text string, open, closing byte) []byte {
	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, closing)
	if start < 0 || end <= start {
		return nil
	}
	return []byte(text[start : end+1])
}
