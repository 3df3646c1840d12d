package upstream

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"tourgate/models"

	"go.uber.org/zap"
)

// passwordAlias is the locale-specific spelling the Identity Service uses
// for its credential field. It is renamed to the canonical "password" on
// ingress and back on egress; the canonical model never carries either.
const passwordAlias = "contraseña"

// Identity is the typed client for the Identity Service, which owns users,
// destinations and recommendations.
type Identity struct {
	rest *restClient
}

func NewIdentity(baseURL string, timeout time.Duration, logger *zap.Logger) *Identity {
	return &Identity{rest: newRESTClient("identity", baseURL, timeout, logger)}
}

// --- Users ---

func (c *Identity) Users(ctx context.Context) []models.User {
	raw, err := c.rest.getRaw(ctx, "/usuarios/", nil)
	if err != nil {
		c.rest.logDegraded("users", err)
		return []models.User{}
	}
	items, err := decodeArray(raw)
	if err != nil {
		c.rest.logDegraded("users", err)
		return []models.User{}
	}
	users := make([]models.User, 0, len(items))
	for _, item := range items {
		users = append(users, normalizeUser(item))
	}
	return users
}

func (c *Identity) UserByID(ctx context.Context, id string) Lookup[models.User] {
	raw, err := c.rest.getRaw(ctx, "/usuarios/"+url.PathEscape(id)+"/", nil)
	if err != nil {
		if isNotFound(err) {
			return notFound[models.User]()
		}
		c.rest.logDegraded("user by id", err)
		return degraded[models.User](err)
	}
	obj, err := decodeObject(raw)
	if err != nil {
		c.rest.logDegraded("user by id", err)
		return degraded[models.User](err)
	}
	return found(normalizeUser(obj))
}

func (c *Identity) CreateUser(ctx context.Context, in models.NewUserInput) (models.User, error) {
	payload := map[string]any{
		"nombre":      in.Name,
		"email":       in.Email,
		passwordAlias: in.Password,
	}
	if in.Country != "" {
		payload["pais"] = in.Country
	}
	var raw map[string]any
	if err := c.rest.do(ctx, http.MethodPost, "/usuarios/", nil, payload, &raw); err != nil {
		return models.User{}, writeFailed("identity", "create user", err)
	}
	return normalizeUser(unwrapObject(raw)), nil
}

// normalizeUser strips credential fields entirely: whichever alias the
// upstream used, neither survives into the canonical entity.
func normalizeUser(raw map[string]any) models.User {
	delete(raw, passwordAlias)
	delete(raw, "password")
	delete(raw, "contrasena")
	return models.User{
		ID:      pickString(raw, "id", "_id", "id_usuario"),
		Name:    pickString(raw, "nombre", "name"),
		Email:   pickString(raw, "email"),
		Country: pickString(raw, "pais", "country"),
	}
}

// --- Destinations ---

// Destinations tries the admin-scoped endpoint first (richer payload) and
// transparently falls back to the public one, surfacing a single result.
func (c *Identity) Destinations(ctx context.Context) []models.Destination {
	raw, err := c.rest.getRaw(ctx, "/admin/destinos/", nil)
	if err != nil {
		raw, err = c.rest.getRaw(ctx, "/destinos/", nil)
	}
	if err != nil {
		c.rest.logDegraded("destinations", err)
		return []models.Destination{}
	}
	items, err := decodeArray(raw)
	if err != nil {
		c.rest.logDegraded("destinations", err)
		return []models.Destination{}
	}
	destinations := make([]models.Destination, 0, len(items))
	for _, item := range items {
		destinations = append(destinations, normalizeDestination(item))
	}
	return destinations
}

func (c *Identity) DestinationByID(ctx context.Context, id string) Lookup[models.Destination] {
	raw, err := c.rest.getRaw(ctx, "/admin/destinos/"+url.PathEscape(id)+"/", nil)
	if err != nil && !isNotFound(err) {
		raw, err = c.rest.getRaw(ctx, "/destinos/"+url.PathEscape(id)+"/", nil)
	}
	if err != nil {
		if isNotFound(err) {
			return notFound[models.Destination]()
		}
		c.rest.logDegraded("destination by id", err)
		return degraded[models.Destination](err)
	}
	obj, err := decodeObject(raw)
	if err != nil {
		c.rest.logDegraded("destination by id", err)
		return degraded[models.Destination](err)
	}
	return found(normalizeDestination(obj))
}

// normalizeDestination maps the upstream's id/_id variants to the canonical
// destination id.
func normalizeDestination(raw map[string]any) models.Destination {
	return models.Destination{
		ID:          pickString(raw, "destination_id", "id", "_id", "id_destino"),
		Name:        pickString(raw, "nombre", "name"),
		Description: pickString(raw, "descripcion", "description"),
		Location:    pickString(raw, "ubicacion", "location"),
		Country:     pickString(raw, "pais", "country"),
		ImagePath:   pickString(raw, "ruta_imagen", "imagen", "image_path"),
	}
}

// --- Recommendations ---

func (c *Identity) Recommendations(ctx context.Context) []models.Recommendation {
	return c.recommendationCollection(ctx, "/recomendaciones/", "recommendations")
}

func (c *Identity) RecommendationsByUser(ctx context.Context, userID string) []models.Recommendation {
	return c.recommendationCollection(ctx, "/recomendaciones/usuario/"+url.PathEscape(userID)+"/", "recommendations by user")
}

func (c *Identity) RecommendationByID(ctx context.Context, id string) Lookup[models.Recommendation] {
	raw, err := c.rest.getRaw(ctx, "/recomendaciones/"+url.PathEscape(id)+"/", nil)
	if err != nil {
		if isNotFound(err) {
			return notFound[models.Recommendation]()
		}
		c.rest.logDegraded("recommendation by id", err)
		return degraded[models.Recommendation](err)
	}
	obj, err := decodeObject(raw)
	if err != nil {
		c.rest.logDegraded("recommendation by id", err)
		return degraded[models.Recommendation](err)
	}
	return found(normalizeRecommendation(obj))
}

func (c *Identity) recommendationCollection(ctx context.Context, path, op string) []models.Recommendation {
	raw, err := c.rest.getRaw(ctx, path, nil)
	if err != nil {
		c.rest.logDegraded(op, err)
		return []models.Recommendation{}
	}
	items, err := decodeArray(raw)
	if err != nil {
		c.rest.logDegraded(op, err)
		return []models.Recommendation{}
	}
	recommendations := make([]models.Recommendation, 0, len(items))
	for _, item := range items {
		recommendations = append(recommendations, normalizeRecommendation(item))
	}
	return recommendations
}

func normalizeRecommendation(raw map[string]any) models.Recommendation {
	return models.Recommendation{
		ID:      pickString(raw, "id", "_id", "id_recomendacion"),
		Date:    pickString(raw, "fecha", "date"),
		Rating:  pickFloat(raw, "calificacion", "rating"),
		Comment: pickString(raw, "comentario", "comment"),
		UserID:  pickString(raw, "id_usuario", "usuarioId", "user_id"),
	}
}
