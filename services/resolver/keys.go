package resolver

import (
	"fmt"
	"strconv"
)

// Cache key families. Mutations purge whole families by prefix, so every
// key derived from a resource must share that resource's prefix.
const (
	PrefixTours    = "tours:"
	PrefixBookings = "bookings:"
	PrefixReports  = "report:"

	keyToursAll       = "tours:all"
	keyToursAvailable = "tours:disponibles"
	keyGuidesAll      = "guias:all"
	keyBookingsAll    = "bookings:all"
	keyOfferingsAll   = "offerings:all"
	keyContractsAll   = "contracts:all"
)

func tourKey(id string) string           { return "tour:" + id }
func guideKey(id string) string          { return "guia:" + id }
func bookingKey(id string) string        { return "booking:" + id }
func offeringKey(id string) string       { return "offering:" + id }
func toursCategoryKey(cat string) string { return "tours:categoria:" + cat }
func bookingsTourKey(id string) string   { return "bookings:tour:" + id }
func bookingsUserKey(id string) string   { return "bookings:user:" + id }
func bookingsStatusKey(s string) string  { return "bookings:estado:" + s }
func offeringsTypeKey(t string) string   { return "offerings:tipo:" + t }

// toursPriceKey builds a deterministic key for a price-range filter: both
// bounds always appear, in min/max order, "-" when unset.
func toursPriceKey(min, max *float64) string {
	format := func(v *float64) string {
		if v == nil {
			return "-"
		}
		return strconv.FormatFloat(*v, 'f', -1, 64)
	}
	return fmt.Sprintf("tours:precio:%s:%s", format(min), format(max))
}

// ReportKey builds a key under the report family from the operation name
// and its arguments in declaration order.
func ReportKey(op string, args ...string) string {
	key := PrefixReports + op
	for _, arg := range args {
		if arg == "" {
			arg = "all"
		}
		key += ":" + arg
	}
	return key
}
