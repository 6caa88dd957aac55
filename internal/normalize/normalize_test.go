package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forkcast/backend/internal/model"
	"github.com/forkcast/backend/internal/types"
)

func TestStepsFromBlob(t *testing.T) {
	got := StepsFromText("Preheat oven.\nBake for 20 minutes.|Cool.")
	assert.Equal(t, []string{"Preheat oven.", "Bake for 20 minutes.", "Cool."}, got)
}

func TestStepsFromBlobCollapsesWhitespace(t *testing.T) {
	got := StepsFromText("Mix  flour &sugar \r\n\r\n  Rest the  dough ")
	assert.Equal(t, []string{"Mix flour & sugar", "Rest the dough"}, got)
}

func TestStepsFromJSONArrayBlob(t *testing.T) {
	got := StepsFromText(`["Chop onions", " Fry gently ", ""]`)
	assert.Equal(t, []string{"Chop onions", "Fry gently"}, got)
}

func TestStepsMalformedJSONBlobFallsThrough(t *testing.T) {
	// Looks like a JSON array but is not; delimiter parsing takes over.
	got := StepsFromText("[Chop onions|Fry gently]")
	assert.Equal(t, []string{"[Chop onions", "Fry gently]"}, got)
}

func TestStepsDispatch(t *testing.T) {
	assert.Empty(t, Steps(nil))
	assert.Empty(t, Steps(json.RawMessage("null")))
	assert.Equal(t, []string{"One", "Two"}, Steps(json.RawMessage(`["One"," Two ",""]`)))
	assert.Equal(t, []string{"One", "Two"}, Steps(json.RawMessage(`"One\nTwo"`)))
}

func TestStepsIdempotent(t *testing.T) {
	once := StepsFromText("Boil water.\n\nAdd  pasta & salt.|Drain.")
	twice := StepsFromList(once)
	assert.Equal(t, once, twice)
}

func TestIngredientPairsPrefersStructuredList(t *testing.T) {
	doc := &model.RecipeDoc{
		Ingredients: model.JSONBIngredients{
			{Name: "Chicken breast", Amount: "200g"},
			{Name: "  ", Amount: "1 tsp"},
		},
		Legacy: model.JSONBStringMap{"strIngredient1": "ignored", "strMeasure1": "1"},
	}
	got := IngredientPairs(doc)
	assert.Equal(t, []types.Ingredient{{Name: "Chicken breast", Measure: "200g"}}, got)
}

func TestIngredientPairsLegacyFallback(t *testing.T) {
	doc := &model.RecipeDoc{
		Legacy: model.JSONBStringMap{
			"strIngredient1": "Flour",
			"strMeasure1":    "2 cups",
			"strIngredient2": "  ",
			"strIngredient3": "Milk",
		},
	}
	got := IngredientPairs(doc)
	assert.Equal(t, []types.Ingredient{
		{Name: "Flour", Measure: "2 cups"},
		{Name: "Milk"},
	}, got)
}

func TestTextBag(t *testing.T) {
	r := types.Recipe{
		Title:       "Chicken Teriyaki Bowl",
		Area:        "Japanese",
		Ingredients: []types.Ingredient{{Name: "Soy Sauce"}},
		Steps:       []string{"Simmer the sauce."},
	}
	bag := TextBag(r)
	assert.Equal(t, "chicken teriyaki bowl japanese soy sauce simmer the sauce.", bag)
}

func TestExtractYouTubeID(t *testing.T) {
	assert.Equal(t, "abc123", ExtractYouTubeID("https://www.youtube.com/watch?v=abc123"))
	assert.Equal(t, "abc123", ExtractYouTubeID("https://youtu.be/abc123"))
	assert.Equal(t, "", ExtractYouTubeID("https://example.com/watch?v=abc123"))
	assert.Equal(t, "", ExtractYouTubeID(""))
}

func TestBestImageFallsBackToThumbnail(t *testing.T) {
	doc := &model.RecipeDoc{Youtube: "https://www.youtube.com/watch?v=abc123"}
	assert.Equal(t, "https://img.youtube.com/vi/abc123/hqdefault.jpg", BestImage(doc))

	doc.Image = "https://cdn.example.com/p.jpg"
	assert.Equal(t, "https://cdn.example.com/p.jpg", BestImage(doc))
}

func TestFromDoc(t *testing.T) {
	doc := &model.RecipeDoc{
		ID:           "chicken-teriyaki-bowl",
		Title:        "Chicken Teriyaki Bowl",
		Area:         "Japanese",
		Instructions: model.JSONBRaw(`"Marinate.\nGrill.|Serve."`),
		Ingredients:  model.JSONBIngredients{{Name: "Chicken", Amount: "300g"}},
	}
	r := FromDoc(doc)
	assert.Equal(t, "chicken-teriyaki-bowl", r.ID)
	assert.Equal(t, []string{"Marinate.", "Grill.", "Serve."}, r.Steps)
	assert.Len(t, r.Ingredients, 1)
}
