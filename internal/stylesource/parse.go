package stylesource

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/TheSupremeTaco/RenderSpace/internal/jsonutil"
	"github.com/TheSupremeTaco/RenderSpace/internal/models"
)

// ParseOutcome records which path recovered the document, so callers can
// log when the model wrapped its JSON in prose.
type ParseOutcome int

const (
	// ParsedDirect means the raw text was valid JSON as-is.
	ParsedDirect ParseOutcome = iota
	// ParsedExtracted means the object had to be cut out of prose.
	ParsedExtracted
)

func (o ParseOutcome) String() string {
	if o == ParsedExtracted {
		return "extracted"
	}
	return "direct"
}

// document mirrors the mood-board JSON shape. Products is a pointer so a
// missing key is distinguishable from an empty list: presence of the
// products list is the one hard invariant on model output.
type document struct {
	Style    string     `json:"style"`
	Products *[]product `json:"products"`
}

type product struct {
	models.Product
}

// UnmarshalJSON decodes a product defensively. The model frequently gets
// individual fields wrong, so each is best-effort: malformed values are
// dropped rather than failing the document. Only a non-object entry is a
// hard error.
func (p *product) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("product entry is not an object: %w", err)
	}

	p.Title = asString(fields["title"])
	p.Retailer = strings.ToLower(asString(fields["retailer"]))
	p.ProductURL = asString(fields["product_url"])
	p.ImageURL = asString(fields["image_url"])
	p.Price = asPrice(fields["price"])
	p.Category = NormalizeCategory(asString(fields["category"]))
	p.Tags = asStrings(fields["tags"])
	return nil
}

// ParseMoodBoard parses model output into a mood board, truncated to
// maxItems products. Strict JSON is tried first; when that fails the
// first brace-delimited object is extracted from the surrounding prose
// and parsed instead. Both failing is a terminal parse error.
func ParseMoodBoard(raw string, maxItems int) (*models.MoodBoard, ParseOutcome, error) {
	text := strings.TrimSpace(jsonutil.StripMarkdownFences(raw))

	outcome := ParsedDirect
	var doc document
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		candidate, exErr := jsonutil.ExtractObject(text)
		if exErr != nil {
			return nil, outcome, fmt.Errorf("model output is not JSON: %w", err)
		}
		if err := json.Unmarshal([]byte(candidate), &doc); err != nil {
			return nil, outcome, fmt.Errorf("extracted object is not valid JSON: %w", err)
		}
		outcome = ParsedExtracted
	}

	if doc.Products == nil {
		return nil, outcome, fmt.Errorf("model output has no products list")
	}

	items := *doc.Products
	if maxItems > 0 && len(items) > maxItems {
		items = items[:maxItems]
	}

	board := &models.MoodBoard{
		Style:    doc.Style,
		Products: make([]models.Product, len(items)),
	}
	for i, it := range items {
		board.Products[i] = it.Product
	}
	return board, outcome, nil
}

// NormalizeCategory maps a category value onto the fixed enumeration,
// falling back to "other" for anything unrecognized.
func NormalizeCategory(category string) string {
	category = strings.ToLower(strings.TrimSpace(category))
	for _, c := range Categories {
		if category == c {
			return c
		}
	}
	return "other"
}

func asString(raw json.RawMessage) string {
	if raw == nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

// asPrice accepts a JSON number, a numeric string, or null.
func asPrice(raw json.RawMessage) *float64 {
	if raw == nil {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimPrefix(strings.TrimSpace(s), "$")
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return &v
		}
	}
	return nil
}

func asStrings(raw json.RawMessage) []string {
	if raw == nil {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	tags := make([]string, 0, len(items))
	for _, it := range items {
		var s string
		if err := json.Unmarshal(it, &s); err == nil && s != "" {
			tags = append(tags, s)
		}
	}
	return tags
}
