package normalize

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/forkcast/backend/internal/model"
	"github.com/forkcast/backend/internal/types"
)

const legacyIngredientSlots = 20

var (
	stepSplitRe  = regexp.MustCompile(`\n+|\|`)
	ampersandRe  = regexp.MustCompile(`\s*&\s*`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Steps converts an instructions field into an ordered step list. Source
// documents carry either an array of steps, a string blob, or nothing;
// all three resolve here.
func Steps(raw json.RawMessage) []string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return StepsFromList(list)
	}

	var blob string
	if err := json.Unmarshal(raw, &blob); err == nil {
		return StepsFromText(blob)
	}

	// Not valid JSON at all; treat the bytes as a plain text blob.
	return StepsFromText(string(raw))
}

// StepsFromList trims each step and drops empties, preserving order
func StepsFromList(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// StepsFromText splits a free-text instruction blob into steps. A blob
// that parses as a JSON array literal is treated as a list; otherwise it
// is split on newlines and the '|' character.
func StepsFromText(blob string) []string {
	raw := strings.TrimSpace(blob)
	if raw == "" {
		return nil
	}

	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
		var list []string
		if err := json.Unmarshal([]byte(raw), &list); err == nil {
			return StepsFromList(list)
		}
		// Malformed JSON-looking blob falls through to delimiter parsing.
	}

	raw = strings.ReplaceAll(raw, "\r", "\n")
	parts := stepSplitRe.Split(raw, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = ampersandRe.ReplaceAllString(p, " & ")
		p = whitespaceRe.ReplaceAllString(p, " ")
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IngredientPairs extracts the ingredient list from a catalog document.
// The structured list wins when present; otherwise the legacy numbered
// fields are scanned. The two sources are never merged.
func IngredientPairs(doc *model.RecipeDoc) []types.Ingredient {
	modern := make([]types.Ingredient, 0, len(doc.Ingredients))
	for _, ing := range doc.Ingredients {
		name := strings.TrimSpace(ing.Name)
		if name == "" {
			continue
		}
		modern = append(modern, types.Ingredient{Name: name, Measure: strings.TrimSpace(ing.Amount)})
	}
	if len(modern) > 0 {
		return modern
	}

	var legacy []types.Ingredient
	for i := 1; i <= legacyIngredientSlots; i++ {
		name := strings.TrimSpace(doc.Legacy[fmt.Sprintf("strIngredient%d", i)])
		if name == "" {
			continue
		}
		measure := strings.TrimSpace(doc.Legacy[fmt.Sprintf("strMeasure%d", i)])
		legacy = append(legacy, types.Ingredient{Name: name, Measure: measure})
	}
	return legacy
}

// IngredientNames returns the lowercased ingredient names of a recipe
func IngredientNames(r types.Recipe) []string {
	names := make([]string, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		names = append(names, strings.ToLower(ing.Name))
	}
	return names
}

// TextBag builds the lowercase text substrate used by keyword inference:
// title, cuisine, category, ingredient names and steps, space-joined.
func TextBag(r types.Recipe) string {
	parts := make([]string, 0, 3+len(r.Ingredients)+len(r.Steps))
	for _, s := range []string{r.Title, r.Area, r.Category} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	for _, ing := range r.Ingredients {
		parts = append(parts, ing.Name)
	}
	parts = append(parts, r.Steps...)
	return strings.ToLower(strings.Join(parts, " "))
}

// ExtractYouTubeID pulls the video ID out of a YouTube URL, or ""
func ExtractYouTubeID(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if strings.Contains(u.Hostname(), "youtube.com") {
		return u.Query().Get("v")
	}
	if strings.Contains(u.Hostname(), "youtu.be") {
		return strings.TrimPrefix(u.Path, "/")
	}
	return ""
}

// BestImage picks the document image, falling back to the YouTube
// thumbnail when only a video is available
func BestImage(doc *model.RecipeDoc) string {
	if doc.Image != "" {
		return doc.Image
	}
	if id := ExtractYouTubeID(doc.Youtube); id != "" {
		return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", id)
	}
	return ""
}

// FromDoc converts a catalog document into the canonical recipe shape.
// This is the single ingestion boundary; schema quirks (blob vs array
// instructions, legacy ingredient slots) do not leak past it.
func FromDoc(doc *model.RecipeDoc) types.Recipe {
	return types.Recipe{
		ID:          doc.ID,
		Title:       doc.Title,
		Category:    doc.Category,
		Area:        doc.Area,
		Steps:       Steps(json.RawMessage(doc.Instructions)),
		Ingredients: IngredientPairs(doc),
		ImageURL:    BestImage(doc),
		VideoURL:    doc.Youtube,
		PrepMinutes: doc.PrepMinutes,
	}
}
