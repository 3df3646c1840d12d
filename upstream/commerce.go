package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tourgate/models"

	"go.uber.org/zap"
)

// Commerce is the typed client for the Commerce Service, which owns paid
// offerings and their contracts. It returns bare JSON with numeric ids.
type Commerce struct {
	rest *restClient
}

func NewCommerce(baseURL string, timeout time.Duration, logger *zap.Logger) *Commerce {
	return &Commerce{rest: newRESTClient("commerce", baseURL, timeout, logger)}
}

// --- Offerings ---

func (c *Commerce) Offerings(ctx context.Context) []models.Offering {
	return c.offeringCollection(ctx, "/servicios", "offerings")
}

func (c *Commerce) OfferingsByType(ctx context.Context, offeringType string) []models.Offering {
	return c.offeringCollection(ctx, "/servicios/tipo/"+url.PathEscape(offeringType), "offerings by type")
}

func (c *Commerce) OfferingByID(ctx context.Context, id string) Lookup[models.Offering] {
	raw, err := c.rest.getRaw(ctx, "/servicios/"+url.PathEscape(id), nil)
	if err != nil {
		if isNotFound(err) {
			return notFound[models.Offering]()
		}
		c.rest.logDegraded("offering by id", err)
		return degraded[models.Offering](err)
	}
	obj, err := decodeObject(raw)
	if err != nil {
		c.rest.logDegraded("offering by id", err)
		return degraded[models.Offering](err)
	}
	return found(normalizeOffering(obj))
}

// CreateOffering returns the new offering's id; the Commerce Service
// responds 201 with the id in the body.
func (c *Commerce) CreateOffering(ctx context.Context, in models.OfferingInput) (string, error) {
	var raw map[string]any
	if err := c.rest.do(ctx, http.MethodPost, "/servicios", nil, offeringPayload(in), &raw); err != nil {
		return "", writeFailed("commerce", "create offering", err)
	}
	return pickString(raw, "id", "_id"), nil
}

func (c *Commerce) UpdateOffering(ctx context.Context, id string, in models.OfferingInput) (models.Offering, error) {
	var raw map[string]any
	if err := c.rest.do(ctx, http.MethodPut, "/servicios/"+url.PathEscape(id), nil, offeringPayload(in), &raw); err != nil {
		return models.Offering{}, writeFailed("commerce", "update offering", err)
	}
	return normalizeOffering(raw), nil
}

func (c *Commerce) DeleteOffering(ctx context.Context, id string) error {
	if err := c.rest.do(ctx, http.MethodDelete, "/servicios/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return writeFailed("commerce", "delete offering", err)
	}
	return nil
}

// --- Contracts ---

func (c *Commerce) Contracts(ctx context.Context) []models.Contract {
	return c.contractCollection(ctx, "/contrataciones", "contracts")
}

func (c *Commerce) ContractsByOffering(ctx context.Context, offeringID string) []models.Contract {
	return c.contractCollection(ctx, "/contrataciones/servicio/"+url.PathEscape(offeringID), "contracts by offering")
}

func (c *Commerce) ContractsByUser(ctx context.Context, userID string) []models.Contract {
	return c.contractCollection(ctx, "/contrataciones/usuario/"+url.PathEscape(userID), "contracts by user")
}

func (c *Commerce) ContractByID(ctx context.Context, id string) Lookup[models.Contract] {
	raw, err := c.rest.getRaw(ctx, "/contrataciones/"+url.PathEscape(id), nil)
	if err != nil {
		if isNotFound(err) {
			return notFound[models.Contract]()
		}
		c.rest.logDegraded("contract by id", err)
		return degraded[models.Contract](err)
	}
	obj, err := decodeObject(raw)
	if err != nil {
		c.rest.logDegraded("contract by id", err)
		return degraded[models.Contract](err)
	}
	return found(normalizeContract(obj))
}

// CreateContract translates the offering reference into the numeric id the
// Commerce Service expects and returns the new contract's id.
func (c *Commerce) CreateContract(ctx context.Context, in models.ContractInput) (string, error) {
	payload := contractPayload(in)
	if numeric, err := strconv.Atoi(in.OfferingID); err == nil {
		payload["servicio_id"] = numeric
	}
	var raw map[string]any
	if err := c.rest.do(ctx, http.MethodPost, "/contrataciones", nil, payload, &raw); err != nil {
		return "", writeFailed("commerce", "create contract", err)
	}
	return pickString(raw, "id", "_id"), nil
}

func (c *Commerce) UpdateContract(ctx context.Context, id string, in models.ContractInput) (models.Contract, error) {
	var raw map[string]any
	if err := c.rest.do(ctx, http.MethodPut, "/contrataciones/"+url.PathEscape(id), nil, contractPayload(in), &raw); err != nil {
		return models.Contract{}, writeFailed("commerce", "update contract", err)
	}
	return normalizeContract(raw), nil
}

func (c *Commerce) CancelContract(ctx context.Context, id string) (models.Contract, error) {
	var raw map[string]any
	if err := c.rest.do(ctx, http.MethodPatch, "/contrataciones/"+url.PathEscape(id)+"/cancelar", nil, nil, &raw); err != nil {
		return models.Contract{}, writeFailed("commerce", "cancel contract", err)
	}
	return normalizeContract(raw), nil
}

// --- Statistics (computed by the upstream itself) ---

func (c *Commerce) OfferingStats(ctx context.Context) models.OfferingStats {
	raw, err := c.rest.getRaw(ctx, "/servicios/estadisticas", nil)
	if err != nil {
		c.rest.logDegraded("offering stats", err)
		return models.OfferingStats{ByType: []models.TypeCount{}, MostBooked: []models.OfferingTopEntry{}}
	}
	obj, err := decodeObject(raw)
	if err != nil {
		c.rest.logDegraded("offering stats", err)
		return models.OfferingStats{ByType: []models.TypeCount{}, MostBooked: []models.OfferingTopEntry{}}
	}
	stats := models.OfferingStats{
		Total:      pickInt(obj, "total"),
		ByType:     []models.TypeCount{},
		MostBooked: []models.OfferingTopEntry{},
	}
	if entries, ok := obj["porTipo"].([]any); ok {
		for _, entry := range entries {
			if m, ok := entry.(map[string]any); ok {
				stats.ByType = append(stats.ByType, models.TypeCount{
					Type:  pickString(m, "tipo", "type"),
					Count: pickInt(m, "cantidad", "count"),
				})
			}
		}
	}
	if entries, ok := obj["masContratados"].([]any); ok {
		for _, entry := range entries {
			if m, ok := entry.(map[string]any); ok {
				stats.MostBooked = append(stats.MostBooked, models.OfferingTopEntry{
					OfferingID: pickString(m, "servicio_id", "id"),
					Name:       pickString(m, "nombre", "name"),
					Count:      pickInt(m, "cantidad", "count"),
				})
			}
		}
	}
	return stats
}

// ContractStats fetches the upstream's own revenue total for the date
// range. The upstream applies the filter; the gateway does not re-filter.
func (c *Commerce) ContractStats(ctx context.Context, start, end string) models.ContractStats {
	query := url.Values{}
	if start != "" {
		query.Set("fechaInicio", start)
	}
	if end != "" {
		query.Set("fechaFin", end)
	}
	raw, err := c.rest.getRaw(ctx, "/contrataciones/estadisticas", query)
	if err != nil {
		c.rest.logDegraded("contract stats", err)
		return models.ContractStats{ByMonth: []models.MonthAmount{}}
	}
	obj, err := decodeObject(raw)
	if err != nil {
		c.rest.logDegraded("contract stats", err)
		return models.ContractStats{ByMonth: []models.MonthAmount{}}
	}
	stats := models.ContractStats{
		Total:        pickInt(obj, "total"),
		TotalRevenue: pickFloat(obj, "ingresoTotal", "total_revenue"),
		ByMonth:      []models.MonthAmount{},
	}
	if entries, ok := obj["porMes"].([]any); ok {
		for _, entry := range entries {
			if m, ok := entry.(map[string]any); ok {
				stats.ByMonth = append(stats.ByMonth, models.MonthAmount{
					Month:  pickString(m, "mes", "month"),
					Amount: pickFloat(m, "ingreso", "amount"),
				})
			}
		}
	}
	return stats
}

// --- collection plumbing ---

func (c *Commerce) offeringCollection(ctx context.Context, path, op string) []models.Offering {
	raw, err := c.rest.getRaw(ctx, path, nil)
	if err != nil {
		c.rest.logDegraded(op, err)
		return []models.Offering{}
	}
	items, err := decodeArray(raw)
	if err != nil {
		c.rest.logDegraded(op, err)
		return []models.Offering{}
	}
	offerings := make([]models.Offering, 0, len(items))
	for _, item := range items {
		offerings = append(offerings, normalizeOffering(item))
	}
	return offerings
}

func (c *Commerce) contractCollection(ctx context.Context, path, op string) []models.Contract {
	raw, err := c.rest.getRaw(ctx, path, nil)
	if err != nil {
		c.rest.logDegraded(op, err)
		return []models.Contract{}
	}
	items, err := decodeArray(raw)
	if err != nil {
		c.rest.logDegraded(op, err)
		return []models.Contract{}
	}
	contracts := make([]models.Contract, 0, len(items))
	for _, item := range items {
		contracts = append(contracts, normalizeContract(item))
	}
	return contracts
}

// --- normalization ---

func normalizeOffering(raw map[string]any) models.Offering {
	return models.Offering{
		ID:          pickString(raw, "id", "_id", "servicio_id"),
		Name:        pickString(raw, "nombre", "name"),
		Description: pickString(raw, "descripcion", "description"),
		Type:        pickString(raw, "tipo", "type"),
		Price:       pickFloat(raw, "precio", "price"),
		Destination: pickString(raw, "destino", "destination"),
		Duration:    pickString(raw, "duracion", "duration"),
		Capacity:    pickInt(raw, "capacidad", "capacity"),
		Available:   pickBool(raw, "disponible", "available"),
	}
}

func normalizeContract(raw map[string]any) models.Contract {
	return models.Contract{
		ID:           pickString(raw, "id", "_id"),
		OfferingID:   pickString(raw, "servicio_id", "servicioId", "offering_id"),
		UserID:       pickString(raw, "usuario_id", "usuarioId", "user_id"),
		ClientName:   pickString(raw, "cliente_nombre", "clienteNombre", "client_name"),
		ClientEmail:  pickString(raw, "cliente_email", "clienteEmail", "client_email"),
		StartDate:    pickString(raw, "fecha_inicio", "fechaInicio", "start_date"),
		EndDate:      pickString(raw, "fecha_fin", "fechaFin", "end_date"),
		Travelers:    pickInt(raw, "cantidad_personas", "viajeros", "travelers"),
		Currency:     pickString(raw, "moneda", "currency"),
		UnitPrice:    pickFloat(raw, "precio_unitario", "precioUnitario", "unit_price"),
		Discount:     pickFloat(raw, "descuento", "discount"),
		Total:        pickFloat(raw, "total", "precio"),
		Status:       normalizeContractStatus(pickString(raw, "estado", "status")),
		Notes:        pickString(raw, "notas", "notes"),
		ContractedAt: pickString(raw, "fecha_contratacion", "fechaContratacion", "contracted_at"),
	}
}

func normalizeContractStatus(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "ACTIVA", "ACTIVO", models.ContractActive:
		return models.ContractActive
	case "CANCELADA", models.ContractCancelled:
		return models.ContractCancelled
	case "COMPLETADA", models.ContractCompleted:
		return models.ContractCompleted
	}
	return raw
}

func offeringPayload(in models.OfferingInput) map[string]any {
	payload := map[string]any{
		"nombre":      in.Name,
		"descripcion": in.Description,
		"tipo":        in.Type,
		"precio":      in.Price,
		"destino":     in.Destination,
		"duracion":    in.Duration,
		"capacidad":   in.Capacity,
	}
	if in.Available != nil {
		payload["disponible"] = *in.Available
	}
	return payload
}

func contractPayload(in models.ContractInput) map[string]any {
	return map[string]any{
		"servicio_id":       in.OfferingID,
		"cliente_nombre":    in.ClientName,
		"cliente_email":     in.ClientEmail,
		"fecha_inicio":      in.StartDate,
		"fecha_fin":         in.EndDate,
		"cantidad_personas": in.Travelers,
		"moneda":            in.Currency,
		"precio_unitario":   in.UnitPrice,
		"descuento":         in.Discount,
		"total":             in.Total,
		"notas":             in.Notes,
	}
}
