// Command import loads recipe documents into the catalog from a JSON
// file or URL. It accepts the common meal-database export shape, where
// ingredients may arrive as numbered legacy fields.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/forkcast/backend/config"
	"github.com/forkcast/backend/internal/database"
	"github.com/forkcast/backend/internal/logging"
	"github.com/forkcast/backend/internal/model"
)

const batchSize = 100

// sourceDoc matches both the modern export shape and the legacy
// numbered-field shape; unknown fields are collected for the legacy map.
type sourceDoc struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Name         string          `json:"strMeal"`
	Category     string          `json:"category"`
	CategoryAlt  string          `json:"strCategory"`
	Area         string          `json:"area"`
	AreaAlt      string          `json:"strArea"`
	Instructions json.RawMessage `json:"instructions"`
	Text         string          `json:"strInstructions"`
	Image        string          `json:"image"`
	ImageAlt     string          `json:"strMealThumb"`
	Youtube      string          `json:"youtube"`
	YoutubeAlt   string          `json:"strYoutube"`
	PrepMinutes  int             `json:"prep_minutes"`

	Ingredients []struct {
		Name    string `json:"name"`
		Measure string `json:"measure"`
	} `json:"ingredients"`
}

func main() {
	source := flag.String("source", "", "path or URL of the recipe JSON export")
	flag.Parse()
	if *source == "" {
		log.Fatal("-source is required")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	raw, err := fetch(*source)
	if err != nil {
		logger.Fatal("failed to read source", zap.Error(err))
	}

	docs, err := parse(raw)
	if err != nil {
		logger.Fatal("failed to parse source", zap.Error(err))
	}
	logger.Info("parsed recipes", zap.Int("count", len(docs)))

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.RunMigrations(db, logger); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	if err := db.CreateInBatches(docs, batchSize).Error; err != nil {
		logger.Fatal("insert failed", zap.Error(err))
	}
	logger.Info("import complete", zap.Int("recipes", len(docs)))
}

func fetch(source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := resty.New().R().Get(source)
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("fetch failed with status %s", resp.Status())
		}
		return resp.Body(), nil
	}
	return os.ReadFile(source)
}

func parse(raw []byte) ([]model.RecipeDoc, error) {
	var sources []json.RawMessage
	if err := json.Unmarshal(raw, &sources); err != nil {
		// Some exports wrap the list in a "meals" envelope.
		var envelope struct {
			Meals []json.RawMessage `json:"meals"`
		}
		if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Meals == nil {
			return nil, fmt.Errorf("source is neither a recipe array nor a meals envelope")
		}
		sources = envelope.Meals
	}

	seen := make(map[string]bool, len(sources))
	docs := make([]model.RecipeDoc, 0, len(sources))
	for _, entry := range sources {
		var src sourceDoc
		if err := json.Unmarshal(entry, &src); err != nil {
			return nil, err
		}
		var fields map[string]any
		if err := json.Unmarshal(entry, &fields); err != nil {
			return nil, err
		}

		doc, err := convert(src, fields)
		if err != nil {
			return nil, err
		}
		if seen[doc.ID] {
			continue
		}
		seen[doc.ID] = true
		docs = append(docs, doc)
	}
	return docs, nil
}

func convert(src sourceDoc, fields map[string]any) (model.RecipeDoc, error) {
	title := firstOf(src.Title, src.Name)
	if title == "" {
		return model.RecipeDoc{}, fmt.Errorf("recipe without a title")
	}

	id := src.ID
	if id == "" {
		id = slugify(title)
	}

	doc := model.RecipeDoc{
		ID:          id,
		Title:       title,
		TitleLower:  strings.ToLower(title),
		Category:    firstOf(src.Category, src.CategoryAlt),
		Area:        firstOf(src.Area, src.AreaAlt),
		Image:       firstOf(src.Image, src.ImageAlt),
		Youtube:     firstOf(src.Youtube, src.YoutubeAlt),
		PrepMinutes: src.PrepMinutes,
		Legacy:      legacyFields(fields),
	}

	switch {
	case len(src.Instructions) > 0:
		doc.Instructions = model.JSONBRaw(src.Instructions)
	case src.Text != "":
		encoded, err := json.Marshal(src.Text)
		if err != nil {
			return model.RecipeDoc{}, err
		}
		doc.Instructions = model.JSONBRaw(encoded)
	}

	for _, ing := range src.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			continue
		}
		doc.Ingredients = append(doc.Ingredients, model.IngredientDoc{
			Name:   strings.TrimSpace(ing.Name),
			Amount: strings.TrimSpace(ing.Measure),
		})
	}
	return doc, nil
}

// legacyFields keeps the numbered strIngredient/strMeasure pairs so the
// normalizer can fall back to them for documents without a structured
// ingredient list.
func legacyFields(fields map[string]any) model.JSONBStringMap {
	out := make(model.JSONBStringMap)
	for key, value := range fields {
		if !strings.HasPrefix(key, "strIngredient") && !strings.HasPrefix(key, "strMeasure") {
			continue
		}
		if s, ok := value.(string); ok && strings.TrimSpace(s) != "" {
			out[key] = s
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

var nonSlugRe = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(title string) string {
	slug := nonSlugRe.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
