package resolver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tourgate/cache"
	"tourgate/models"
	"tourgate/upstream"
)

// testService wires a resolver to httptest fakes for all three upstreams.
func testService(t *testing.T, catalog, identity, commerce http.Handler) (*DefaultService, *cache.MemoryCache) {
	t.Helper()
	if catalog == nil {
		catalog = http.NotFoundHandler()
	}
	if identity == nil {
		identity = http.NotFoundHandler()
	}
	if commerce == nil {
		commerce = http.NotFoundHandler()
	}
	catalogSrv := httptest.NewServer(catalog)
	identitySrv := httptest.NewServer(identity)
	commerceSrv := httptest.NewServer(commerce)
	t.Cleanup(catalogSrv.Close)
	t.Cleanup(identitySrv.Close)
	t.Cleanup(commerceSrv.Close)

	store := cache.NewMemoryCache(time.Minute)
	t.Cleanup(func() { store.Close() })

	svc := &DefaultService{
		Cache:    store,
		Catalog:  upstream.NewCatalog(catalogSrv.URL, 2*time.Second, zap.NewNop()),
		Identity: upstream.NewIdentity(identitySrv.URL, 2*time.Second, zap.NewNop()),
		Commerce: upstream.NewCommerce(commerceSrv.URL, 2*time.Second, zap.NewNop()),
		TTL:      time.Minute,
		Logger:   zap.NewNop(),
	}
	return svc, store
}

func TestToursCachedAfterFirstRead(t *testing.T) {
	var hits int64
	catalog := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		w.Write([]byte(`{"data": [{"id_tour": 1, "nombre": "Inca Trail", "precio": 100}]}`))
	})
	svc, _ := testService(t, catalog, nil, nil)
	ctx := context.Background()

	first, err := svc.Tours(ctx, nil)
	require.NoError(t, err)
	second, err := svc.Tours(ctx, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), atomic.LoadInt64(&hits), "second read must hit the cache")
}

func TestUpdateTourPurgesTourKeys(t *testing.T) {
	var listHits int64
	catalog := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/tours":
			atomic.AddInt64(&listHits, 1)
			w.Write([]byte(`{"data": [{"id_tour": 1, "nombre": "Inca Trail", "precio": 100}]}`))
		case r.Method == http.MethodPut && r.URL.Path == "/tours/1":
			w.Write([]byte(`{"data": {"id_tour": 1, "nombre": "Inca Trail", "precio": 120}}`))
		default:
			http.NotFound(w, r)
		}
	})
	svc, store := testService(t, catalog, nil, nil)
	ctx := context.Background()

	_, err := svc.Tours(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "bookings:all", []models.Booking{}, 0))

	_, err = svc.UpdateTour(ctx, "1", models.TourInput{Name: "Inca Trail", Price: 120})
	require.NoError(t, err)

	// The tours family is gone, the bookings family survives.
	var bookings []models.Booking
	ok, _ := store.Get(ctx, "bookings:all", &bookings)
	assert.True(t, ok)

	_, err = svc.Tours(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), atomic.LoadInt64(&listHits), "read after purge must refetch")
}

func TestBookingExpansionDeduplicatesTourFetch(t *testing.T) {
	var tourHits int64
	catalog := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/reservas":
			w.Write([]byte(`{"data": [
				{"id_reserva": 1, "id_tour": 7, "precio_total": 100, "estado": "CONFIRMADA"},
				{"id_reserva": 2, "id_tour": 7, "precio_total": 100, "estado": "PENDIENTE"}
			]}`))
		case "/tours/7":
			atomic.AddInt64(&tourHits, 1)
			w.Write([]byte(`{"data": {"id_tour": 7, "nombre": "Inca Trail"}}`))
		default:
			http.NotFound(w, r)
		}
	})
	svc, _ := testService(t, catalog, nil, nil)

	bookings, err := svc.Bookings(context.Background(), []string{"tour"})
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	require.NotNil(t, bookings[0].Tour)
	require.NotNil(t, bookings[1].Tour)
	assert.Equal(t, "Inca Trail", bookings[0].Tour.Name)
	assert.Equal(t, int64(1), atomic.LoadInt64(&tourHits), "same tour must be fetched once")
}

func TestExpansionMissingForeignKeyShortCircuits(t *testing.T) {
	catalog := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/reservas/1" {
			w.Write([]byte(`{"data": {"id_reserva": 1, "precio_total": 50, "estado": "PENDIENTE"}}`))
			return
		}
		t.Errorf("unexpected upstream call: %s", r.URL.Path)
		http.NotFound(w, r)
	})
	svc, _ := testService(t, catalog, nil, nil)

	booking, err := svc.BookingByID(context.Background(), "1", []string{"tour", "user"})
	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.Nil(t, booking.Tour)
	assert.Nil(t, booking.User)
}

func TestExpansionFailureLeavesParentIntact(t *testing.T) {
	catalog := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/reservas/1":
			w.Write([]byte(`{"data": {"id_reserva": 1, "id_tour": 9, "precio_total": 50, "estado": "PENDIENTE"}}`))
		case "/tours/9":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	})
	svc, _ := testService(t, catalog, nil, nil)

	booking, err := svc.BookingByID(context.Background(), "1", []string{"tour"})
	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.Equal(t, "1", booking.ID)
	assert.Nil(t, booking.Tour, "failed expansion nils only the relationship")
}

func TestBookingsByStatusRejectsUnknownStatus(t *testing.T) {
	svc, _ := testService(t, nil, nil, nil)

	_, err := svc.BookingsByStatus(context.Background(), "SHIPPED")
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
}

func TestToursPriceKeyDeterministic(t *testing.T) {
	min := 10.0
	max := 99.5
	assert.Equal(t, "tours:precio:10:99.5", toursPriceKey(&min, &max))
	assert.Equal(t, "tours:precio:-:99.5", toursPriceKey(nil, &max))
	assert.Equal(t, "tours:precio:10:-", toursPriceKey(&min, nil))
}

func TestToursByPriceRangeInclusiveBounds(t *testing.T) {
	catalog := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [
			{"id_tour": 1, "precio": 50},
			{"id_tour": 2, "precio": 100},
			{"id_tour": 3, "precio": 150}
		]}`))
	})
	svc, _ := testService(t, catalog, nil, nil)

	min := 50.0
	max := 100.0
	tours, err := svc.ToursByPriceRange(context.Background(), &min, &max)
	require.NoError(t, err)
	require.Len(t, tours, 2)
	assert.Equal(t, "1", tours[0].ID)
	assert.Equal(t, "2", tours[1].ID)
}

func TestPurgeReportCacheRemovesOnlyReports(t *testing.T) {
	svc, store := testService(t, nil, nil, nil)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, ReportKey("consolidated", "", ""), 1, 0))
	require.NoError(t, store.Set(ctx, ReportKey("offerings:top", "10"), 1, 0))
	require.NoError(t, store.Set(ctx, keyToursAll, 1, 0))

	removed, err := svc.PurgeReportCache(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	var v int
	ok, _ := store.Get(ctx, keyToursAll, &v)
	assert.True(t, ok)
}
