package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/forkcast/backend/internal/model"
)

func setupCatalogDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.RecipeDoc{}))

	docs := []model.RecipeDoc{
		{ID: "carbonara", Title: "Carbonara", TitleLower: "carbonara", Area: "Italian", Category: "Pasta",
			Ingredients: model.JSONBIngredients{{Name: "Spaghetti"}, {Name: "Egg"}}},
		{ID: "carrot-soup", Title: "Carrot Soup", TitleLower: "carrot soup", Area: "French", Category: "Soup",
			Ingredients: model.JSONBIngredients{{Name: "Carrot"}}},
		{ID: "tacos", Title: "Tacos", TitleLower: "tacos", Area: "Mexican", Category: "Dinner",
			Ingredients: model.JSONBIngredients{{Name: "Tortilla"}, {Name: "Beef"}}},
	}
	require.NoError(t, db.Create(&docs).Error)
	return db
}

func TestByID(t *testing.T) {
	c := NewGormCatalog(setupCatalogDB(t))
	r, err := c.ByID(context.Background(), "tacos")
	assert.NoError(t, err)
	assert.Equal(t, "Tacos", r.Title)
	assert.Len(t, r.Ingredients, 2)
}

func TestByIDNotFound(t *testing.T) {
	c := NewGormCatalog(setupCatalogDB(t))
	_, err := c.ByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTitlePrefix(t *testing.T) {
	c := NewGormCatalog(setupCatalogDB(t))
	rs, err := c.TitlePrefix(context.Background(), "Car", 10)
	assert.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, "carbonara", rs[0].ID)
	assert.Equal(t, "carrot-soup", rs[1].ID)
}

func TestTitlePrefixRespectsLimit(t *testing.T) {
	c := NewGormCatalog(setupCatalogDB(t))
	rs, err := c.TitlePrefix(context.Background(), "car", 1)
	assert.NoError(t, err)
	assert.Len(t, rs, 1)
}

func TestTitlePrefixEscapesWildcards(t *testing.T) {
	c := NewGormCatalog(setupCatalogDB(t))
	rs, err := c.TitlePrefix(context.Background(), "%", 10)
	assert.NoError(t, err)
	assert.Empty(t, rs)
}

func TestByAreas(t *testing.T) {
	c := NewGormCatalog(setupCatalogDB(t))
	rs, err := c.ByAreas(context.Background(), []string{"Italian", "Mexican"}, 10)
	assert.NoError(t, err)
	assert.Len(t, rs, 2)
}

func TestByAreasEmptyInput(t *testing.T) {
	c := NewGormCatalog(setupCatalogDB(t))
	rs, err := c.ByAreas(context.Background(), nil, 10)
	assert.NoError(t, err)
	assert.Empty(t, rs)
}

func TestByCategories(t *testing.T) {
	c := NewGormCatalog(setupCatalogDB(t))
	rs, err := c.ByCategories(context.Background(), []string{"Soup"}, 10)
	assert.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, "carrot-soup", rs[0].ID)
}

func TestScan(t *testing.T) {
	c := NewGormCatalog(setupCatalogDB(t))
	rs, err := c.Scan(context.Background(), 2)
	assert.NoError(t, err)
	assert.Len(t, rs, 2)
}
