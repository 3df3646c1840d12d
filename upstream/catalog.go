package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tourgate/models"

	"go.uber.org/zap"
)

// Catalog is the typed client for the Catalog Service, which owns tours,
// guides and bookings. Its REST API speaks Spanish field names and wraps
// every payload in a {success, message, data} envelope; both quirks stay
// behind this adapter.
type Catalog struct {
	rest *restClient
}

func NewCatalog(baseURL string, timeout time.Duration, logger *zap.Logger) *Catalog {
	return &Catalog{rest: newRESTClient("catalog", baseURL, timeout, logger)}
}

// --- Tours ---

func (c *Catalog) Tours(ctx context.Context) []models.Tour {
	return c.tourCollection(ctx, "/tours", nil, "tours")
}

func (c *Catalog) ToursByCategory(ctx context.Context, category string) []models.Tour {
	return c.tourCollection(ctx, "/tours/categoria/"+url.PathEscape(category), nil, "tours by category")
}

func (c *Catalog) AvailableTours(ctx context.Context) []models.Tour {
	return c.tourCollection(ctx, "/tours/disponibles", nil, "available tours")
}

func (c *Catalog) TourByID(ctx context.Context, id string) Lookup[models.Tour] {
	raw, err := c.rest.getRaw(ctx, "/tours/"+url.PathEscape(id), nil)
	if err != nil {
		if isNotFound(err) {
			return notFound[models.Tour]()
		}
		c.rest.logDegraded("tour by id", err)
		return degraded[models.Tour](err)
	}
	obj, err := decodeObject(unwrapEnvelope(raw))
	if err != nil {
		c.rest.logDegraded("tour by id", err)
		return degraded[models.Tour](err)
	}
	return found(c.normalizeTour(obj))
}

func (c *Catalog) CreateTour(ctx context.Context, in models.TourInput) (models.Tour, error) {
	var raw map[string]any
	if err := c.rest.do(ctx, http.MethodPost, "/tours", nil, tourPayload(in), &raw); err != nil {
		return models.Tour{}, writeFailed("catalog", "create tour", err)
	}
	return c.normalizeTour(unwrapObject(raw)), nil
}

func (c *Catalog) UpdateTour(ctx context.Context, id string, in models.TourInput) (models.Tour, error) {
	var raw map[string]any
	if err := c.rest.do(ctx, http.MethodPut, "/tours/"+url.PathEscape(id), nil, tourPayload(in), &raw); err != nil {
		return models.Tour{}, writeFailed("catalog", "update tour", err)
	}
	return c.normalizeTour(unwrapObject(raw)), nil
}

func (c *Catalog) DeleteTour(ctx context.Context, id string) error {
	if err := c.rest.do(ctx, http.MethodDelete, "/tours/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return writeFailed("catalog", "delete tour", err)
	}
	return nil
}

// --- Guides ---

func (c *Catalog) Guides(ctx context.Context) []models.Guide {
	raw, err := c.rest.getRaw(ctx, "/guias", nil)
	if err != nil {
		c.rest.logDegraded("guides", err)
		return []models.Guide{}
	}
	items, err := decodeArray(unwrapEnvelope(raw))
	if err != nil {
		c.rest.logDegraded("guides", err)
		return []models.Guide{}
	}
	guides := make([]models.Guide, 0, len(items))
	for _, item := range items {
		guides = append(guides, normalizeGuide(item))
	}
	return guides
}

func (c *Catalog) GuideByID(ctx context.Context, id string) Lookup[models.Guide] {
	raw, err := c.rest.getRaw(ctx, "/guias/"+url.PathEscape(id), nil)
	if err != nil {
		if isNotFound(err) {
			return notFound[models.Guide]()
		}
		c.rest.logDegraded("guide by id", err)
		return degraded[models.Guide](err)
	}
	obj, err := decodeObject(unwrapEnvelope(raw))
	if err != nil {
		c.rest.logDegraded("guide by id", err)
		return degraded[models.Guide](err)
	}
	return found(normalizeGuide(obj))
}

// --- Bookings ---

func (c *Catalog) Bookings(ctx context.Context) []models.Booking {
	return c.bookingCollection(ctx, "/reservas", nil, "bookings")
}

func (c *Catalog) BookingsByTour(ctx context.Context, tourID string) []models.Booking {
	return c.bookingCollection(ctx, "/reservas/tour/"+url.PathEscape(tourID), nil, "bookings by tour")
}

func (c *Catalog) BookingsByUser(ctx context.Context, userID string) []models.Booking {
	return c.bookingCollection(ctx, "/reservas/usuario/"+url.PathEscape(userID), nil, "bookings by user")
}

func (c *Catalog) BookingsByStatus(ctx context.Context, status string) []models.Booking {
	return c.bookingCollection(ctx, "/reservas/estado/"+url.PathEscape(denormalizeStatus(status)), nil, "bookings by status")
}

// BookingsByRange fetches bookings whose date falls inside [start, end],
// inclusive on both ends.
func (c *Catalog) BookingsByRange(ctx context.Context, start, end string) []models.Booking {
	query := url.Values{}
	query.Set("fechaInicio", start)
	query.Set("fechaFin", end)
	return c.bookingCollection(ctx, "/reservas/fecha", query, "bookings by range")
}

func (c *Catalog) BookingByID(ctx context.Context, id string) Lookup[models.Booking] {
	raw, err := c.rest.getRaw(ctx, "/reservas/"+url.PathEscape(id), nil)
	if err != nil {
		if isNotFound(err) {
			return notFound[models.Booking]()
		}
		c.rest.logDegraded("booking by id", err)
		return degraded[models.Booking](err)
	}
	obj, err := decodeObject(unwrapEnvelope(raw))
	if err != nil {
		c.rest.logDegraded("booking by id", err)
		return degraded[models.Booking](err)
	}
	return found(c.normalizeBooking(obj))
}

func (c *Catalog) CreateBooking(ctx context.Context, in models.BookingInput) (models.Booking, error) {
	var raw map[string]any
	if err := c.rest.do(ctx, http.MethodPost, "/reservas", nil, bookingPayload(in), &raw); err != nil {
		return models.Booking{}, writeFailed("catalog", "create booking", err)
	}
	return c.normalizeBooking(unwrapObject(raw)), nil
}

func (c *Catalog) UpdateBooking(ctx context.Context, id string, in models.BookingInput) (models.Booking, error) {
	var raw map[string]any
	if err := c.rest.do(ctx, http.MethodPut, "/reservas/"+url.PathEscape(id), nil, bookingPayload(in), &raw); err != nil {
		return models.Booking{}, writeFailed("catalog", "update booking", err)
	}
	return c.normalizeBooking(unwrapObject(raw)), nil
}

func (c *Catalog) CancelBooking(ctx context.Context, id, reason string) (models.Booking, error) {
	body := map[string]any{"motivo": reason}
	var raw map[string]any
	if err := c.rest.do(ctx, http.MethodPatch, "/reservas/"+url.PathEscape(id)+"/cancelar", nil, body, &raw); err != nil {
		return models.Booking{}, writeFailed("catalog", "cancel booking", err)
	}
	return c.normalizeBooking(unwrapObject(raw)), nil
}

func (c *Catalog) ConfirmBooking(ctx context.Context, id string) (models.Booking, error) {
	var raw map[string]any
	if err := c.rest.do(ctx, http.MethodPatch, "/reservas/"+url.PathEscape(id)+"/confirmar", nil, nil, &raw); err != nil {
		return models.Booking{}, writeFailed("catalog", "confirm booking", err)
	}
	return c.normalizeBooking(unwrapObject(raw)), nil
}

// --- collection plumbing ---

func (c *Catalog) tourCollection(ctx context.Context, path string, query url.Values, op string) []models.Tour {
	raw, err := c.rest.getRaw(ctx, path, query)
	if err != nil {
		c.rest.logDegraded(op, err)
		return []models.Tour{}
	}
	items, err := decodeArray(unwrapEnvelope(raw))
	if err != nil {
		c.rest.logDegraded(op, err)
		return []models.Tour{}
	}
	tours := make([]models.Tour, 0, len(items))
	for _, item := range items {
		tours = append(tours, c.normalizeTour(item))
	}
	return tours
}

func (c *Catalog) bookingCollection(ctx context.Context, path string, query url.Values, op string) []models.Booking {
	raw, err := c.rest.getRaw(ctx, path, query)
	if err != nil {
		c.rest.logDegraded(op, err)
		return []models.Booking{}
	}
	items, err := decodeArray(unwrapEnvelope(raw))
	if err != nil {
		c.rest.logDegraded(op, err)
		return []models.Booking{}
	}
	bookings := make([]models.Booking, 0, len(items))
	for _, item := range items {
		bookings = append(bookings, c.normalizeBooking(item))
	}
	return bookings
}

// --- normalization ---

// normalizeTour maps the Catalog Service's tour shape to the canonical one.
// Alias order is precedence: native id first, generic fallbacks after.
func (c *Catalog) normalizeTour(raw map[string]any) models.Tour {
	return models.Tour{
		ID:          pickString(raw, "id_tour", "id", "_id"),
		Name:        pickString(raw, "nombre", "name"),
		Description: pickString(raw, "descripcion", "description"),
		Location:    pickString(raw, "ubicacion", "location"),
		Duration:    pickString(raw, "duracion", "duration"),
		Price:       pickFloat(raw, "precio", "price"),
		Capacity:    pickInt(raw, "capacidad_maxima", "capacidadMaxima", "capacity"),
		Available:   pickBool(raw, "disponible", "available"),
		Category:    pickString(raw, "categoria", "category"),
		Rating:      pickFloat(raw, "calificacion", "rating"),
		Images:      pickStringSlice(raw, "imagenes", "images"),
		GuideID:     pickString(raw, "id_guia", "guiaId", "guide_id"),
		CreatedAt:   pickString(raw, "createdAt", "created_at"),
		UpdatedAt:   pickString(raw, "updatedAt", "updated_at"),
	}
}

func normalizeGuide(raw map[string]any) models.Guide {
	return models.Guide{
		ID:         pickString(raw, "id_guia", "id", "_id"),
		Name:       strings.TrimSpace(pickString(raw, "nombre", "name") + " " + pickString(raw, "apellido")),
		Languages:  pickStringSlice(raw, "idiomas", "languages"),
		Experience: pickInt(raw, "experiencia", "experience"),
		Email:      pickString(raw, "email"),
		Phone:      pickString(raw, "telefono", "phone"),
		Available:  pickBool(raw, "disponible", "available"),
		Rating:     pickFloat(raw, "calificacion", "rating"),
	}
}

func (c *Catalog) normalizeBooking(raw map[string]any) models.Booking {
	return models.Booking{
		ID:         pickString(raw, "id_reserva", "id", "_id"),
		TourID:     pickString(raw, "id_tour", "tourId", "tour_id"),
		UserID:     pickString(raw, "id_usuario", "usuarioId", "user_id"),
		Date:       pickString(raw, "fecha_reserva", "fechaReserva", "date"),
		PartySize:  pickInt(raw, "cantidad_personas", "cantidadPersonas", "party_size"),
		TotalPrice: pickFloat(raw, "precio_total", "precioTotal", "total_price"),
		Status:     c.normalizeStatus(pickString(raw, "estado", "status")),
		Comments:   pickString(raw, "comentarios", "comments"),
		CreatedAt:  pickString(raw, "createdAt", "created_at"),
		UpdatedAt:  pickString(raw, "updatedAt", "updated_at"),
	}
}

// normalizeStatus validates against the fixed vocabulary. Unrecognized
// values are a data-quality problem, logged and passed through raw rather
// than failing the read.
func (c *Catalog) normalizeStatus(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "PENDIENTE", models.BookingPending:
		return models.BookingPending
	case "CONFIRMADA", models.BookingConfirmed:
		return models.BookingConfirmed
	case "CANCELADA", models.BookingCancelled:
		return models.BookingCancelled
	case "COMPLETADA", models.BookingCompleted:
		return models.BookingCompleted
	case "":
		return ""
	}
	c.rest.logger.Warn("unrecognized booking status",
		zap.String("service", "catalog"),
		zap.String("status", raw),
	)
	return raw
}

// denormalizeStatus translates a canonical status into the Catalog
// Service's native spelling for filter paths.
func denormalizeStatus(status string) string {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case models.BookingPending:
		return "PENDIENTE"
	case models.BookingConfirmed:
		return "CONFIRMADA"
	case models.BookingCancelled:
		return "CANCELADA"
	case models.BookingCompleted:
		return "COMPLETADA"
	}
	return status
}

func tourPayload(in models.TourInput) map[string]any {
	payload := map[string]any{
		"nombre":           in.Name,
		"descripcion":      in.Description,
		"ubicacion":        in.Location,
		"duracion":         in.Duration,
		"precio":           in.Price,
		"capacidad_maxima": in.Capacity,
		"categoria":        in.Category,
		"imagenes":         in.Images,
		"id_guia":          in.GuideID,
	}
	if in.Available != nil {
		payload["disponible"] = *in.Available
	}
	return payload
}

func bookingPayload(in models.BookingInput) map[string]any {
	return map[string]any{
		"id_tour":           in.TourID,
		"id_usuario":        in.UserID,
		"fecha_reserva":     in.Date,
		"cantidad_personas": in.PartySize,
		"precio_total":      in.TotalPrice,
		"comentarios":       in.Comments,
	}
}

func unwrapObject(raw map[string]any) map[string]any {
	if data, ok := raw["data"].(map[string]any); ok {
		return data
	}
	return raw
}
