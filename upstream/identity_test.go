package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tourgate/models"
)

func jsonDecode(r *http.Request, dest any) error {
	return json.NewDecoder(r.Body).Decode(dest)
}

func testIdentity(t *testing.T, handler http.Handler) *Identity {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewIdentity(srv.URL, 2*time.Second, zap.NewNop())
}

func TestIdentityUserCredentialStripped(t *testing.T) {
	c := testIdentity(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 1, "nombre": "Ana", "email": "ana@example.com", "contraseña": "secret", "pais": "PE"}]`))
	}))

	users := c.Users(context.Background())
	require.Len(t, users, 1)
	assert.Equal(t, "1", users[0].ID)
	assert.Equal(t, "Ana", users[0].Name)
	assert.Equal(t, "PE", users[0].Country)

	// The canonical entity has no credential field at all; serialize and
	// prove nothing leaked through.
	data, err := json.Marshal(users[0])
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.NotContains(t, string(data), "contra")
}

func TestIdentityCreateUserSendsAliasedPassword(t *testing.T) {
	var gotBody map[string]any
	c := testIdentity(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, jsonDecode(r, &gotBody))
		w.Write([]byte(`{"id": 9, "nombre": "Ana", "email": "ana@example.com"}`))
	}))

	user, err := c.CreateUser(context.Background(), models.NewUserInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "secret", gotBody["contraseña"], "egress must use the upstream's native spelling")
	assert.Equal(t, "9", user.ID)
}

func TestIdentityDestinationsAdminFallback(t *testing.T) {
	var paths []string
	c := testIdentity(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/admin/destinos/" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Write([]byte(`[{"destination_id": 2, "nombre": "Cusco", "pais": "PE", "ruta_imagen": "/img/cusco.jpg"}]`))
	}))

	destinations := c.Destinations(context.Background())
	require.Len(t, destinations, 1)
	assert.Equal(t, []string{"/admin/destinos/", "/destinos/"}, paths)
	assert.Equal(t, "2", destinations[0].ID)
	assert.Equal(t, "PE", destinations[0].Country)
	assert.Equal(t, "/img/cusco.jpg", destinations[0].ImagePath)
}

func TestIdentityRecommendationNormalization(t *testing.T) {
	c := testIdentity(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recomendaciones/usuario/5/", r.URL.Path)
		w.Write([]byte(`[{"id": 4, "fecha": "2025-03-01", "calificacion": 5, "comentario": "great", "id_usuario": 5}]`))
	}))

	recs := c.RecommendationsByUser(context.Background(), "5")
	require.Len(t, recs, 1)
	assert.Equal(t, "4", recs[0].ID)
	assert.Equal(t, 5.0, recs[0].Rating)
	assert.Equal(t, "5", recs[0].UserID)
}
