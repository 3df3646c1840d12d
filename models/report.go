package models

// Report entities are always derived, never persisted. Each one is a pure
// function of the collections it was computed from.

// MonthBucket groups booking activity by "YYYY-MM".
type MonthBucket struct {
	Month   string  `json:"month"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// DayBucket groups booking activity by "YYYY-MM-DD".
type DayBucket struct {
	Date    string  `json:"date"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// PopularTour is one row of the popular-tours report.
type PopularTour struct {
	TourID       string        `json:"tour_id"`
	TourName     string        `json:"tour_name"`
	Category     string        `json:"category"`
	Rating       float64       `json:"rating"`
	BookingCount int           `json:"booking_count"`
	TotalRevenue float64       `json:"total_revenue"`
	ByMonth      []MonthBucket `json:"by_month"`
}

// PeriodReport summarizes bookings inside an inclusive date range.
type PeriodReport struct {
	TotalBookings  int         `json:"total_bookings"`
	Pending        int         `json:"pending"`
	Confirmed      int         `json:"confirmed"`
	Cancelled      int         `json:"cancelled"`
	Completed      int         `json:"completed"`
	TotalRevenue   float64     `json:"total_revenue"`
	AverageRevenue float64     `json:"average_revenue"`
	ByDay          []DayBucket `json:"by_day"`
}

// GuidePerformance is one row of the guide-performance report.
type GuidePerformance struct {
	GuideID        string  `json:"guide_id"`
	GuideName      string  `json:"guide_name"`
	Rating         float64 `json:"rating"`
	TourCount      int     `json:"tour_count"`
	BookingCount   int     `json:"booking_count"`
	Revenue        float64 `json:"revenue"`
	AvailableTours int     `json:"available_tours"`
}

// CategoryShare is a category's slice of the tour inventory.
type CategoryShare struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Percent  float64 `json:"percent"`
}

// CountryCount tallies destinations per country.
type CountryCount struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// ConsolidatedReport fans out to every upstream and folds the results into
// one snapshot. Inventory statistics always cover the full collections;
// only booking-derived figures honor the optional date filter.
type ConsolidatedReport struct {
	Tours struct {
		Total        int             `json:"total"`
		Active       int             `json:"active"`
		Inactive     int             `json:"inactive"`
		ByCategory   []CategoryShare `json:"by_category"`
		AveragePrice float64         `json:"average_price"`
	} `json:"tours"`
	Bookings struct {
		Total            int     `json:"total"`
		Pending          int     `json:"pending"`
		Confirmed        int     `json:"confirmed"`
		Cancelled        int     `json:"cancelled"`
		Completed        int     `json:"completed"`
		CancellationRate float64 `json:"cancellation_rate"`
		CompletionRate   float64 `json:"completion_rate"`
	} `json:"bookings"`
	Guides struct {
		Total         int     `json:"total"`
		Active        int     `json:"active"`
		AverageRating float64 `json:"average_rating"`
	} `json:"guides"`
	Destinations struct {
		Total     int            `json:"total"`
		ByCountry []CountryCount `json:"by_country"`
	} `json:"destinations"`
	Offerings struct {
		Total        int         `json:"total"`
		Contracted   int         `json:"contracted"`
		TotalRevenue float64     `json:"total_revenue"`
		ByType       []TypeCount `json:"by_type"`
	} `json:"offerings"`
	TourRevenue  float64      `json:"tour_revenue"`
	TotalRevenue float64      `json:"total_revenue"`
	Period       ReportPeriod `json:"period"`
}

// ReportPeriod echoes the date filter a report was computed with.
type ReportPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MonthlySplit separates tour and offering revenue inside one month.
type MonthlySplit struct {
	Month     string  `json:"month"`
	Tours     float64 `json:"tours"`
	Offerings float64 `json:"offerings"`
	Total     float64 `json:"total"`
}

// CategoryRevenue attributes booking revenue to a tour category.
type CategoryRevenue struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
	Percent  float64 `json:"percent"`
}

// RevenueReport combines booking revenue with the Commerce Service's own
// filtered contract total.
type RevenueReport struct {
	TourRevenue     float64           `json:"tour_revenue"`
	OfferingRevenue float64           `json:"offering_revenue"`
	TotalRevenue    float64           `json:"total_revenue"`
	ByMonth         []MonthlySplit    `json:"by_month"`
	ByCategory      []CategoryRevenue `json:"by_category"`
}

// StatusReport is the whole-collection variant of PeriodReport.
type StatusReport struct {
	TotalBookings  int     `json:"total_bookings"`
	Pending        int     `json:"pending"`
	Confirmed      int     `json:"confirmed"`
	Cancelled      int     `json:"cancelled"`
	Completed      int     `json:"completed"`
	TotalRevenue   float64 `json:"total_revenue"`
	AverageRevenue float64 `json:"average_revenue"`
}

// TopOffering is one row of the most-contracted offerings report.
type TopOffering struct {
	OfferingID    string  `json:"offering_id"`
	OfferingName  string  `json:"offering_name"`
	Type          string  `json:"type"`
	ContractCount int     `json:"contract_count"`
	TotalRevenue  float64 `json:"total_revenue"`
	AveragePrice  float64 `json:"average_price"`
}
