package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/forkcast/backend/internal/model"
	"github.com/forkcast/backend/internal/normalize"
	"github.com/forkcast/backend/internal/types"
)

// GormCatalog implements Catalog on a GORM-managed recipes table
type GormCatalog struct {
	db *gorm.DB
}

// NewGormCatalog creates a database-backed catalog
func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{db: db}
}

// ByID implements Catalog
func (c *GormCatalog) ByID(ctx context.Context, id string) (*types.Recipe, error) {
	var doc model.RecipeDoc
	err := c.db.WithContext(ctx).First(&doc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe %s: %w", id, err)
	}
	r := normalize.FromDoc(&doc)
	return &r, nil
}

// TitlePrefix implements Catalog
func (c *GormCatalog) TitlePrefix(ctx context.Context, prefix string, limit int) ([]types.Recipe, error) {
	var docs []model.RecipeDoc
	err := c.db.WithContext(ctx).
		Where("title_lower LIKE ?", escapeLike(strings.ToLower(prefix))+"%").
		Order("title_lower").
		Limit(limit).
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("title prefix query failed: %w", err)
	}
	return convert(docs), nil
}

// ByAreas implements Catalog
func (c *GormCatalog) ByAreas(ctx context.Context, areas []string, limit int) ([]types.Recipe, error) {
	return c.byMembership(ctx, "area", areas, limit)
}

// ByCategories implements Catalog
func (c *GormCatalog) ByCategories(ctx context.Context, categories []string, limit int) ([]types.Recipe, error) {
	return c.byMembership(ctx, "category", categories, limit)
}

func (c *GormCatalog) byMembership(ctx context.Context, column string, values []string, limit int) ([]types.Recipe, error) {
	if len(values) == 0 {
		return nil, nil
	}
	if len(values) > MaxMembershipValues {
		values = values[:MaxMembershipValues]
	}
	var docs []model.RecipeDoc
	err := c.db.WithContext(ctx).
		Where(column+" IN ?", values).
		Limit(limit).
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("%s membership query failed: %w", column, err)
	}
	return convert(docs), nil
}

// Scan implements Catalog
func (c *GormCatalog) Scan(ctx context.Context, limit int) ([]types.Recipe, error) {
	var docs []model.RecipeDoc
	err := c.db.WithContext(ctx).Order("title_lower").Limit(limit).Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("catalog scan failed: %w", err)
	}
	return convert(docs), nil
}

func convert(docs []model.RecipeDoc) []types.Recipe {
	out := make([]types.Recipe, 0, len(docs))
	for i := range docs {
		out = append(out, normalize.FromDoc(&docs[i]))
	}
	return out
}

// escapeLike escapes LIKE metacharacters so prefixes match literally
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
