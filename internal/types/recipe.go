package types

// Ingredient is a single (name, measure) pair from a recipe
type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure,omitempty"`
}

// Recipe is the canonical, post-normalization recipe shape. Catalog
// documents are converted into this exactly once at the ingestion
// boundary; nothing downstream branches on document schema.
type Recipe struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Category    string       `json:"category,omitempty"`
	Area        string       `json:"area,omitempty"`
	Steps       []string     `json:"steps"`
	Ingredients []Ingredient `json:"ingredients"`
	ImageURL    string       `json:"image_url,omitempty"`
	VideoURL    string       `json:"video_url,omitempty"`

	// PrepMinutes is the explicit preparation time when the source
	// document carries one; 0 means absent.
	PrepMinutes int `json:"prep_minutes,omitempty"`
}
