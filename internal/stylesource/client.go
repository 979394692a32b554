// Package stylesource asks Gemini, with live web search enabled, for a
// mood board of furniture products matching a free-text style query.
package stylesource

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"

	"github.com/TheSupremeTaco/RenderSpace/internal/config"
	"github.com/TheSupremeTaco/RenderSpace/internal/models"
)

type Client struct {
	client *genai.Client
	model  string
}

// NewClient builds a Gemini-backed style sourcer. Init is strict: a
// missing API key is an error here, not a silent stub downstream.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set in the environment")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// SourceStyle performs one GenerateContent call with the GoogleSearch
// tool enabled and parses the answer into a mood board. No retries: a
// failed call surfaces immediately.
func (c *Client) SourceStyle(ctx context.Context, styleQuery string, maxItems int) (*models.MoodBoard, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(userMessage(styleQuery, maxItems)), cfg)
	if err != nil {
		return nil, fmt.Errorf("style source call failed: %w", err)
	}

	text, err := FirstText(resp)
	if err != nil {
		return nil, err
	}

	board, outcome, err := ParseMoodBoard(text, maxItems)
	if err != nil {
		log.Error().Err(err).Str("raw", truncate(text, 500)).Msg("failed to parse style source output")
		return nil, err
	}

	log.Debug().
		Stringer("parse", outcome).
		Int("products", len(board.Products)).
		Str("style", board.Style).
		Msg("style source output parsed")

	return board, nil
}

// FirstText scans all candidates and parts and returns the first
// non-empty text field. Responses routinely contain parts with no text
// at all (search tool invocations, for one), so the scan cannot assume
// text lives in the first part.
func FirstText(resp *genai.GenerateContentResponse) (string, error) {
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil {
				continue
			}
			if text := strings.TrimSpace(part.Text); text != "" {
				return text, nil
			}
		}
	}
	return "", fmt.Errorf("no text content found in model response")
}

// Sourcer applies the configured failure policy around the live client.
type Sourcer struct {
	client *Client
	policy config.StyleSourcePolicy
}

func NewSourcer(client *Client, policy config.StyleSourcePolicy) *Sourcer {
	return &Sourcer{client: client, policy: policy}
}

// SourceStyle returns the live mood board, or, under the stub policy,
// the deterministic placeholder board when the live call fails. Under
// the strict policy every failure propagates.
func (s *Sourcer) SourceStyle(ctx context.Context, styleQuery string, maxItems int) (*models.MoodBoard, error) {
	var board *models.MoodBoard
	var err error
	if s.client == nil {
		err = fmt.Errorf("style sourcing is not configured")
	} else {
		board, err = s.client.SourceStyle(ctx, styleQuery, maxItems)
	}
	if err == nil {
		return board, nil
	}

	if s.policy == config.PolicyStub {
		log.Warn().Err(err).Str("query", styleQuery).Msg("style source failed, substituting stub mood board")
		return Stub(styleQuery, maxItems), nil
	}
	return nil, err
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
