package stylesource_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/TheSupremeTaco/RenderSpace/internal/config"
	"github.com/TheSupremeTaco/RenderSpace/internal/stylesource"
)

func TestStub_ExactItemCountAndQueryTag(t *testing.T) {
	board := stylesource.Stub("postmodern bedroom furniture", 5)

	assert.Equal(t, "postmodern bedroom furniture", board.Style)
	require.Len(t, board.Products, 5)

	for _, p := range board.Products {
		assert.NotEmpty(t, p.Title)
		assert.Contains(t, stylesource.Categories, p.Category)
		assert.Contains(t, p.Tags, "postmodern bedroom furniture")
		assert.Nil(t, p.Price)
	}
}

func TestStub_Deterministic(t *testing.T) {
	a := stylesource.Stub("japandi living room furniture", 3)
	b := stylesource.Stub("japandi living room furniture", 3)
	assert.Equal(t, a, b)
}

func TestSourcer_StrictPolicyPropagatesConfigurationError(t *testing.T) {
	sourcer := stylesource.NewSourcer(nil, config.PolicyStrict)

	_, err := sourcer.SourceStyle(context.Background(), "japandi bedroom furniture", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestSourcer_StubPolicySubstitutesPlaceholder(t *testing.T) {
	sourcer := stylesource.NewSourcer(nil, config.PolicyStub)

	board, err := sourcer.SourceStyle(context.Background(), "japandi bedroom furniture", 5)
	require.NoError(t, err)
	assert.Len(t, board.Products, 5)
	assert.Equal(t, "japandi bedroom furniture", board.Style)
}

func TestFirstText_ScansAllParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: nil},
			{Content: &genai.Content{Parts: []*genai.Part{
				{},
				{Text: "   "},
				{Text: `{"style":"x","products":[]}`},
				{Text: "later text is ignored"},
			}}},
		},
	}

	text, err := stylesource.FirstText(resp)
	require.NoError(t, err)
	assert.Equal(t, `{"style":"x","products":[]}`, text)
}

func TestFirstText_NoTextAnywhere(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{}}}},
		},
	}

	_, err := stylesource.FirstText(resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text content")
}
