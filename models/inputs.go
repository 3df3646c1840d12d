package models

// Input payloads accepted by the gateway's mutating operations. Adapters
// translate these into each upstream's native field naming on egress.

type TourInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Duration    string   `json:"duration"`
	Price       float64  `json:"price" binding:"required"`
	Capacity    int      `json:"capacity"`
	Available   *bool    `json:"available"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	GuideID     string   `json:"guide_id"`
}

type BookingInput struct {
	TourID     string  `json:"tour_id" binding:"required"`
	UserID     string  `json:"user_id" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	PartySize  int     `json:"party_size" binding:"required"`
	TotalPrice float64 `json:"total_price"`
	Comments   string  `json:"comments"`
}

type OfferingInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Price       float64 `json:"price" binding:"required"`
	Destination string  `json:"destination"`
	Duration    string  `json:"duration"`
	Capacity    int     `json:"capacity"`
	Available   *bool   `json:"available"`
}

type ContractInput struct {
	OfferingID  string  `json:"offering_id" binding:"required"`
	ClientName  string  `json:"client_name" binding:"required"`
	ClientEmail string  `json:"client_email" binding:"required,email"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date"`
	Travelers   int     `json:"travelers"`
	Currency    string  `json:"currency"`
	UnitPrice   float64 `json:"unit_price"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`
	Notes       string  `json:"notes"`
}
