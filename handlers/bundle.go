package handlers

import (
	"github.com/gin-gonic/gin"

	"tourgate/services/report"
	"tourgate/services/resolver"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Resolver resolver.Service
	Reports  report.Service

	// Tour endpoints
	ListToursHandler       gin.HandlerFunc
	GetTourHandler         gin.HandlerFunc
	ToursByCategoryHandler gin.HandlerFunc
	ToursByPriceHandler    gin.HandlerFunc
	AvailableToursHandler  gin.HandlerFunc
	CreateTourHandler      gin.HandlerFunc
	UpdateTourHandler      gin.HandlerFunc
	DeleteTourHandler      gin.HandlerFunc
	ListGuidesHandler      gin.HandlerFunc
	GetGuideHandler        gin.HandlerFunc

	// Booking endpoints
	ListBookingsHandler     gin.HandlerFunc
	GetBookingHandler       gin.HandlerFunc
	BookingsByTourHandler   gin.HandlerFunc
	BookingsByUserHandler   gin.HandlerFunc
	BookingsByStatusHandler gin.HandlerFunc
	BookingsByRangeHandler  gin.HandlerFunc
	CreateBookingHandler    gin.HandlerFunc
	UpdateBookingHandler    gin.HandlerFunc
	CancelBookingHandler    gin.HandlerFunc
	ConfirmBookingHandler   gin.HandlerFunc

	// Identity endpoints
	ListUsersHandler             gin.HandlerFunc
	GetUserHandler               gin.HandlerFunc
	CreateUserHandler            gin.HandlerFunc
	ListDestinationsHandler      gin.HandlerFunc
	GetDestinationHandler        gin.HandlerFunc
	ListRecommendationsHandler   gin.HandlerFunc
	GetRecommendationHandler     gin.HandlerFunc
	RecommendationsByUserHandler gin.HandlerFunc

	// Commerce endpoints
	ListOfferingsHandler   gin.HandlerFunc
	GetOfferingHandler     gin.HandlerFunc
	OfferingsByTypeHandler gin.HandlerFunc
	CreateOfferingHandler  gin.HandlerFunc
	UpdateOfferingHandler  gin.HandlerFunc
	DeleteOfferingHandler  gin.HandlerFunc
	ListContractsHandler   gin.HandlerFunc
	GetContractHandler     gin.HandlerFunc
	ContractsByOffering    gin.HandlerFunc
	ContractsByUserHandler gin.HandlerFunc
	CreateContractHandler  gin.HandlerFunc
	UpdateContractHandler  gin.HandlerFunc
	CancelContractHandler  gin.HandlerFunc
	OfferingStatsHandler   gin.HandlerFunc
	ContractStatsHandler   gin.HandlerFunc

	// Report endpoints
	PopularToursHandler    gin.HandlerFunc
	ToursCategoryReport    gin.HandlerFunc
	BookingsPeriodReport   gin.HandlerFunc
	BookingsStatusReport   gin.HandlerFunc
	GuidePerformanceReport gin.HandlerFunc
	RevenueReportHandler   gin.HandlerFunc
	ConsolidatedReport     gin.HandlerFunc
	TopOfferingsReport     gin.HandlerFunc

	// Maintenance endpoints
	FlushCacheHandler       gin.HandlerFunc
	PurgeReportCacheHandler gin.HandlerFunc
}

// NewHandlerBundle wires every handler to the given services.
func NewHandlerBundle(res resolver.Service, rep report.Service) *HandlerBundle {
	hb := &HandlerBundle{Resolver: res, Reports: rep}

	hb.ListToursHandler = listTours(res)
	hb.GetTourHandler = getTour(res)
	hb.ToursByCategoryHandler = toursByCategory(res)
	hb.ToursByPriceHandler = toursByPrice(res)
	hb.AvailableToursHandler = availableTours(res)
	hb.CreateTourHandler = createTour(res)
	hb.UpdateTourHandler = updateTour(res)
	hb.DeleteTourHandler = deleteTour(res)
	hb.ListGuidesHandler = listGuides(res)
	hb.GetGuideHandler = getGuide(res)

	hb.ListBookingsHandler = listBookings(res)
	hb.GetBookingHandler = getBooking(res)
	hb.BookingsByTourHandler = bookingsByTour(res)
	hb.BookingsByUserHandler = bookingsByUser(res)
	hb.BookingsByStatusHandler = bookingsByStatus(res)
	hb.BookingsByRangeHandler = bookingsByRange(res)
	hb.CreateBookingHandler = createBooking(res)
	hb.UpdateBookingHandler = updateBooking(res)
	hb.CancelBookingHandler = cancelBooking(res)
	hb.ConfirmBookingHandler = confirmBooking(res)

	hb.ListUsersHandler = listUsers(res)
	hb.GetUserHandler = getUser(res)
	hb.CreateUserHandler = createUser(res)
	hb.ListDestinationsHandler = listDestinations(res)
	hb.GetDestinationHandler = getDestination(res)
	hb.ListRecommendationsHandler = listRecommendations(res)
	hb.GetRecommendationHandler = getRecommendation(res)
	hb.RecommendationsByUserHandler = recommendationsByUser(res)

	hb.ListOfferingsHandler = listOfferings(res)
	hb.GetOfferingHandler = getOffering(res)
	hb.OfferingsByTypeHandler = offeringsByType(res)
	hb.CreateOfferingHandler = createOffering(res)
	hb.UpdateOfferingHandler = updateOffering(res)
	hb.DeleteOfferingHandler = deleteOffering(res)
	hb.ListContractsHandler = listContracts(res)
	hb.GetContractHandler = getContract(res)
	hb.ContractsByOffering = contractsByOffering(res)
	hb.ContractsByUserHandler = contractsByUser(res)
	hb.CreateContractHandler = createContract(res)
	hb.UpdateContractHandler = updateContract(res)
	hb.CancelContractHandler = cancelContract(res)
	hb.OfferingStatsHandler = offeringStats(rep)
	hb.ContractStatsHandler = contractStats(rep)

	hb.PopularToursHandler = popularTours(rep)
	hb.ToursCategoryReport = toursCategoryReport(rep)
	hb.BookingsPeriodReport = bookingsPeriodReport(rep)
	hb.BookingsStatusReport = bookingsStatusReport(rep)
	hb.GuidePerformanceReport = guidePerformanceReport(rep)
	hb.RevenueReportHandler = revenueReport(rep)
	hb.ConsolidatedReport = consolidatedReport(rep)
	hb.TopOfferingsReport = topOfferingsReport(rep)

	hb.FlushCacheHandler = flushCache(res)
	hb.PurgeReportCacheHandler = purgeReportCache(res)

	return hb
}
