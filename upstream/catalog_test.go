package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tourgate/models"
)

func testCatalog(t *testing.T, handler http.Handler) *Catalog {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewCatalog(srv.URL, 2*time.Second, zap.NewNop())
}

func TestCatalogToursNormalization(t *testing.T) {
	c := testCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tours", r.URL.Path)
		w.Write([]byte(`{
			"success": true,
			"message": "ok",
			"data": [{
				"id_tour": 7,
				"nombre": "Inca Trail",
				"descripcion": "Four days",
				"ubicacion": "Cusco",
				"duracion": "4d",
				"precio": "150.50",
				"capacidad_maxima": 12,
				"disponible": true,
				"categoria": "Adventure",
				"calificacion": 4.8,
				"imagenes": ["a.jpg"],
				"id_guia": 3
			}]
		}`))
	}))

	tours := c.Tours(context.Background())
	require.Len(t, tours, 1)
	tour := tours[0]
	assert.Equal(t, "7", tour.ID, "numeric id must be stringified")
	assert.Equal(t, "Inca Trail", tour.Name)
	assert.Equal(t, 150.50, tour.Price, "numeric string price must be coerced")
	assert.Equal(t, 12, tour.Capacity)
	assert.True(t, tour.Available)
	assert.Equal(t, "Adventure", tour.Category)
	assert.Equal(t, []string{"a.jpg"}, tour.Images)
	assert.Equal(t, "3", tour.GuideID)
}

func TestCatalogToursDegradesToEmpty(t *testing.T) {
	c := testCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	tours := c.Tours(context.Background())
	assert.NotNil(t, tours)
	assert.Empty(t, tours, "read failures degrade to an empty collection")
}

func TestCatalogTourByIDNotFound(t *testing.T) {
	c := testCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	result := c.TourByID(context.Background(), "99")
	assert.False(t, result.Found)
	assert.False(t, result.Degraded, "a 404 is truly absent, not degraded")
}

func TestCatalogTourByIDDegraded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	c := NewCatalog(srv.URL, time.Second, zap.NewNop())

	result := c.TourByID(context.Background(), "1")
	assert.False(t, result.Found)
	assert.True(t, result.Degraded)
	assert.ErrorIs(t, result.Reason, ErrUnreachable)
}

func TestCatalogBookingStatusNormalization(t *testing.T) {
	c := testCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [
			{"id_reserva": 1, "estado": "PENDIENTE", "precio_total": 100},
			{"id_reserva": 2, "estado": "CONFIRMADA", "precio_total": 100},
			{"id_reserva": 3, "estado": "CANCELADA", "precio_total": 100},
			{"id_reserva": 4, "estado": "COMPLETADA", "precio_total": 100},
			{"id_reserva": 5, "estado": "RARA", "precio_total": 100}
		]}`))
	}))

	bookings := c.Bookings(context.Background())
	require.Len(t, bookings, 5)
	assert.Equal(t, models.BookingPending, bookings[0].Status)
	assert.Equal(t, models.BookingConfirmed, bookings[1].Status)
	assert.Equal(t, models.BookingCancelled, bookings[2].Status)
	assert.Equal(t, models.BookingCompleted, bookings[3].Status)
	assert.Equal(t, "RARA", bookings[4].Status, "unknown status passes through raw")
}

func TestCatalogBookingsByStatusTranslatesFilter(t *testing.T) {
	var gotPath string
	c := testCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"data": []}`))
	}))

	c.BookingsByStatus(context.Background(), models.BookingCancelled)
	assert.Equal(t, "/reservas/estado/CANCELADA", gotPath)
}

func TestCatalogCreateTourSendsNativePayload(t *testing.T) {
	var gotBody map[string]any
	c := testCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, jsonDecode(r, &gotBody))
		w.Write([]byte(`{"data": {"id_tour": 1, "nombre": "New"}}`))
	}))

	available := true
	_, err := c.CreateTour(context.Background(), models.TourInput{
		Name:      "New",
		Price:     50,
		Available: &available,
		GuideID:   "3",
	})
	require.NoError(t, err)
	assert.Equal(t, "New", gotBody["nombre"])
	assert.Equal(t, 50.0, gotBody["precio"])
	assert.Equal(t, true, gotBody["disponible"])
	assert.Equal(t, "3", gotBody["id_guia"])
}

func TestCatalogCreateTourValidationError(t *testing.T) {
	c := testCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "nombre requerido"}`))
	}))

	_, err := c.CreateTour(context.Background(), models.TourInput{Name: "x"})
	require.Error(t, err)
	var writeErr *WriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, "catalog", writeErr.Service)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCatalogWriteTimeout(t *testing.T) {
	c := testCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	c.rest.timeout = 50 * time.Millisecond
	c.rest.client.Timeout = 50 * time.Millisecond

	_, err := c.CreateBooking(context.Background(), models.BookingInput{TourID: "1", UserID: "1", Date: "2025-01-01", PartySize: 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
}
