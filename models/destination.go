package models

// Destination is the canonical destination entity from the Identity Service.
type Destination struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Country     string `json:"country"`
	ImagePath   string `json:"image_path,omitempty"`
}

// Recommendation is a user-submitted rating from the Identity Service.
type Recommendation struct {
	ID      string  `json:"id"`
	Date    string  `json:"date"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment,omitempty"`
	UserID  string  `json:"user_id"`

	User *User `json:"user,omitempty"`
}
