package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JSONBRaw stores a JSONB column as raw bytes. Instructions use it
// because source documents carry either a string blob or an array of
// steps; the normalizer resolves the shape once at ingestion.
type JSONBRaw json.RawMessage

// Value implements the driver.Valuer interface
func (r JSONBRaw) Value() (driver.Value, error) {
	if len(r) == 0 {
		return "null", nil
	}
	return string(r), nil
}

// Scan implements the sql.Scanner interface
func (r *JSONBRaw) Scan(value interface{}) error {
	if value == nil {
		*r = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*r = append((*r)[:0], v...)
	case string:
		*r = JSONBRaw(v)
	default:
		return fmt.Errorf("unsupported type for JSONBRaw: %T", value)
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (r JSONBRaw) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

// UnmarshalJSON implements json.Unmarshaler
func (r *JSONBRaw) UnmarshalJSON(data []byte) error {
	*r = append((*r)[:0], data...)
	return nil
}

// IngredientDoc is one structured ingredient entry as stored in the
// catalog document
type IngredientDoc struct {
	Name   string `json:"name"`
	Amount string `json:"amount,omitempty"`
}

// JSONBIngredients is a custom type for the structured ingredient list
type JSONBIngredients []IngredientDoc

// Value implements the driver.Valuer interface
func (a JSONBIngredients) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBIngredients) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBIngredients{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// JSONBStringMap is a custom type for string-to-string JSONB maps. The
// legacy numbered ingredient fields (strIngredient1..20, strMeasure1..20)
// are kept in one for backward compatibility with old documents.
type JSONBStringMap map[string]string

// Value implements the driver.Valuer interface
func (m JSONBStringMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface
func (m *JSONBStringMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONBStringMap{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, m)
}

// RecipeDoc is a catalog document. ID is a stable title slug assigned at
// import time and is the sole join key for favorites, history, step
// state and achievements.
type RecipeDoc struct {
	ID         string    `gorm:"primaryKey;size:80" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	TitleLower string    `gorm:"size:255;not null;index" json:"title_lower"`
	Category   string    `gorm:"size:80" json:"category,omitempty"`
	Area       string    `gorm:"size:80" json:"area,omitempty"`

	Instructions JSONBRaw         `gorm:"type:jsonb" json:"instructions,omitempty"`
	Ingredients  JSONBIngredients `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Legacy       JSONBStringMap   `gorm:"type:jsonb;not null;default:'{}'" json:"legacy,omitempty"`

	Image       string `gorm:"size:512" json:"image,omitempty"`
	Youtube     string `gorm:"size:512" json:"youtube,omitempty"`
	PrepMinutes int    `json:"prep_minutes,omitempty"`
}

func (RecipeDoc) TableName() string {
	return "recipes"
}
