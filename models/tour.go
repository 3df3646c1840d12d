package models

// Tour is the canonical tour entity, normalized from the Catalog Service.
type Tour struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Duration    string   `json:"duration"` // e.g. "3h", "2 days"
	Price       float64  `json:"price"`
	Capacity    int      `json:"capacity"`
	Available   bool     `json:"available"`
	Category    string   `json:"category"`
	Rating      float64  `json:"rating"`
	Images      []string `json:"images"`
	GuideID     string   `json:"guide_id"`
	CreatedAt   string   `json:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`

	// Lazily resolved relationship, nil unless expansion was requested.
	Guide *Guide `json:"guide,omitempty"`
}

// Guide is the canonical guide entity.
type Guide struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Languages  []string `json:"languages"`
	Experience int      `json:"experience"` // years
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Available  bool     `json:"available"`
	Rating     float64  `json:"rating"`
}
