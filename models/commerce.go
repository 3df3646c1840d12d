package models

// Contract status vocabulary mirrors bookings.
const (
	ContractActive    = "ACTIVE"
	ContractCancelled = "CANCELLED"
	ContractCompleted = "COMPLETED"
)

// Offering is a paid service sold by the Commerce Service.
type Offering struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	Destination string  `json:"destination,omitempty"`
	Duration    string  `json:"duration,omitempty"`
	Capacity    int     `json:"capacity,omitempty"`
	Available   bool    `json:"available"`
}

// Contract is a purchase of an Offering.
type Contract struct {
	ID           string  `json:"id"`
	OfferingID   string  `json:"offering_id"`
	UserID       string  `json:"user_id,omitempty"`
	ClientName   string  `json:"client_name"`
	ClientEmail  string  `json:"client_email"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Travelers    int     `json:"travelers"`
	Currency     string  `json:"currency"`
	UnitPrice    float64 `json:"unit_price"`
	Discount     float64 `json:"discount"`
	Total        float64 `json:"total"`
	Status       string  `json:"status"`
	Notes        string  `json:"notes,omitempty"`
	ContractedAt string  `json:"contracted_at,omitempty"`

	Offering *Offering `json:"offering,omitempty"`
}

// OfferingStats is the statistics payload the Commerce Service computes itself.
type OfferingStats struct {
	Total      int                `json:"total"`
	ByType     []TypeCount        `json:"by_type"`
	MostBooked []OfferingTopEntry `json:"most_booked"`
}

// ContractStats is the Commerce Service's own filtered revenue total.
type ContractStats struct {
	Total        int           `json:"total"`
	TotalRevenue float64       `json:"total_revenue"`
	ByMonth      []MonthAmount `json:"by_month"`
}

type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type OfferingTopEntry struct {
	OfferingID string `json:"offering_id"`
	Name       string `json:"name"`
	Count      int    `json:"count"`
}

type MonthAmount struct {
	Month  string  `json:"month"` // "YYYY-MM"
	Amount float64 `json:"amount"`
}
