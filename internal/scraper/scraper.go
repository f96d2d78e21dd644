// Package scraper extracts recipes from public web pages. It prefers
// schema.org Recipe JSON-LD and falls back to heuristic HTML selectors
// when a page carries no usable structured data.
package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/bursteinalan/fooder/internal/ingredient"
	"github.com/bursteinalan/fooder/internal/model"
)

// Result is the extracted recipe content, ready to prefill a draft. It
// carries no ownership or ids; the caller decides what to save.
type Result struct {
	Title        string             `json:"title"`
	Ingredients  []model.Ingredient `json:"ingredients"`
	Instructions string             `json:"instructions"`
	SourceURL    string             `json:"source_url"`
}

// Service fetches and parses recipe pages.
type Service struct {
	client *http.Client
	logger *slog.Logger
}

func New(logger *slog.Logger) *Service {
	return &Service{
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

// Scrape fetches the page at rawURL and extracts a recipe from it.
// Returns nil when the page cannot be fetched or no recipe is found;
// extraction failure is an expected outcome, not an error.
func (s *Service) Scrape(ctx context.Context, rawURL string) *Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		s.logger.Debug("scrape request build failed", "url", rawURL, "error", err)
		return nil
	}
	req.Header.Set("User-Agent", "fooder/1.0 (+recipe import)")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Debug("scrape fetch failed", "url", rawURL, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Debug("scrape fetch non-200", "url", rawURL, "status", resp.StatusCode)
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		s.logger.Debug("scrape parse failed", "url", rawURL, "error", err)
		return nil
	}

	if result := s.fromJSONLD(doc); result != nil {
		result.SourceURL = rawURL
		return result
	}
	if result := s.fromSelectors(doc); result != nil {
		result.SourceURL = rawURL
		return result
	}

	s.logger.Debug("scrape found no recipe", "url", rawURL)
	return nil
}

// fromJSONLD scans every ld+json script on the page and returns the
// first schema.org Recipe node that yields a title and at least one
// parseable ingredient.
func (s *Service) fromJSONLD(doc *goquery.Document) *Result {
	var result *Result
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		var data any
		if err := json.Unmarshal([]byte(sel.Text()), &data); err != nil {
			return true
		}
		for _, node := range recipeNodes(data) {
			if r := recipeFromNode(node); r != nil {
				result = r
				return false
			}
		}
		return true
	})
	return result
}

// recipeNodes flattens a JSON-LD document into candidate Recipe nodes.
// The payload may be a single object, an array of objects, or an object
// wrapping a @graph array; @graph can also appear inside array elements.
func recipeNodes(data any) []map[string]any {
	var nodes []map[string]any
	switch v := data.(type) {
	case map[string]any:
		if graph, ok := v["@graph"].([]any); ok {
			return append(nodes, recipeNodes(graph)...)
		}
		if isRecipeType(v["@type"]) {
			nodes = append(nodes, v)
		}
	case []any:
		for _, entry := range v {
			nodes = append(nodes, recipeNodes(entry)...)
		}
	}
	return nodes
}

// isRecipeType accepts @type as either a string or an array of strings.
func isRecipeType(t any) bool {
	switch v := t.(type) {
	case string:
		return v == "Recipe"
	case []any:
		for _, entry := range v {
			if s, ok := entry.(string); ok && s == "Recipe" {
				return true
			}
		}
	}
	return false
}

func recipeFromNode(node map[string]any) *Result {
	title, _ := node["name"].(string)
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}

	var ingredients []model.Ingredient
	switch raw := node["recipeIngredient"].(type) {
	case string:
		if ing := ingredient.Parse(raw); ing != nil {
			ingredients = append(ingredients, *ing)
		}
	case []any:
		for _, entry := range raw {
			line, ok := entry.(string)
			if !ok {
				continue
			}
			if ing := ingredient.Parse(line); ing != nil {
				ingredients = append(ingredients, *ing)
			}
		}
	}
	if len(ingredients) == 0 {
		return nil
	}

	return &Result{
		Title:        title,
		Ingredients:  ingredients,
		Instructions: instructionsFromNode(node["recipeInstructions"]),
	}
}

// instructionsFromNode renders recipeInstructions to plain text. A bare
// string passes through unchanged. Arrays join with newlines: plain
// string steps stay as written, HowToStep objects get numbered.
func instructionsFromNode(raw any) string {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v)
	case []any:
		var lines []string
		for i, entry := range v {
			switch item := entry.(type) {
			case string:
				if text := strings.TrimSpace(item); text != "" {
					lines = append(lines, text)
				}
			case map[string]any:
				text, _ := item["text"].(string)
				if text = strings.TrimSpace(text); text != "" {
					// Step numbers follow the position in the array so
					// they stay aligned with any interleaved plain lines.
					lines = append(lines, fmt.Sprintf("%d. %s", i+1, text))
				}
			}
		}
		return strings.Join(lines, "\n")
	}
	return ""
}

// fromSelectors is the heuristic fallback for pages without structured
// data. It keys off class names that recipe themes commonly use.
func (s *Service) fromSelectors(doc *goquery.Document) *Result {
	title := strings.TrimSpace(doc.Find("h1").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find(`[class*="recipe"][class*="title"]`).First().Text())
	}
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if title == "" {
		return nil
	}

	var ingredients []model.Ingredient
	doc.Find(`[class*="ingredient"]`).Each(func(_ int, sel *goquery.Selection) {
		if ing := ingredient.Parse(strings.TrimSpace(sel.Text())); ing != nil {
			ingredients = append(ingredients, *ing)
		}
	})
	if len(ingredients) == 0 {
		return nil
	}

	instructions := strings.TrimSpace(doc.Find(`[class*="instruction"]`).Text())
	if instructions == "" {
		instructions = strings.TrimSpace(doc.Find(`[class*="direction"]`).Text())
	}

	return &Result{
		Title:        title,
		Ingredients:  ingredients,
		Instructions: instructions,
	}
}
