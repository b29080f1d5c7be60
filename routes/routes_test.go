package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Juan1733/StarWars-REST-API/database/dbtest"
	"github.com/Juan1733/StarWars-REST-API/repositories"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	cache := repositories.NewCacheRepository("", time.Minute, zap.NewNop())
	t.Cleanup(cache.Close)

	return New(Dependencies{
		DB:     dbtest.New(t),
		Cache:  cache,
		Logger: zap.NewNop(),
	})
}

func request(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func message(msg string) string {
	raw, _ := json.Marshal(map[string]string{"message": msg})
	return string(raw)
}

var testUser = map[string]string{"name": "A", "last_name": "B", "email": "a@b.com", "password": "x"}

func TestCreateUserTwice(t *testing.T) {
	r := newTestRouter(t)

	w := request(r, http.MethodPost, "/usuario", testUser)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = request(r, http.MethodPost, "/usuario", testUser)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"user":null}`, w.Body.String())

	w = request(r, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"A","lastname":"B","email":"a@b.com"}]`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "password")
}

func TestEmptyCollections(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/personajes", "/planetas", "/users"} {
		w := request(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.JSONEq(t, message("No se encontro la informacion"), w.Body.String(), path)
	}

	// los favoritos de un usuario sin favoritos son una lista vacía
	require.Equal(t, http.StatusCreated, request(r, http.MethodPost, "/usuario", testUser).Code)
	w := request(r, http.MethodGet, "/1/favoritos", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = request(r, http.MethodGet, "/2/favoritos", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, message("No se encontro el usuario"), w.Body.String())
}

func TestCharacters(t *testing.T) {
	r := newTestRouter(t)

	w := request(r, http.MethodGet, "/personajes/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, message("No se encontro el personaje"), w.Body.String())

	w = request(r, http.MethodPost, "/personajes", map[string]string{"name": "Luke", "gender": "male", "height": "172"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, message("Personaje creado"), w.Body.String())

	w = request(r, http.MethodGet, "/personajes/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Luke","gender":"male","height":"172"}`, w.Body.String())

	w = request(r, http.MethodGet, "/personajes", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Luke","gender":"male","height":"172"}]`, w.Body.String())
}

func TestPlanets(t *testing.T) {
	r := newTestRouter(t)

	w := request(r, http.MethodPost, "/planetas", map[string]string{"name": "Tatooine", "diameter": "10465", "gravity": "1 standard"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, message("Planeta creado"), w.Body.String())

	w = request(r, http.MethodGet, "/planetas/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Tatooine","diameter":"10465","gravity":"1 standard"}`, w.Body.String())

	w = request(r, http.MethodGet, "/planetas/2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, message("No se encontro el planeta"), w.Body.String())
}

func TestInvalidBody(t *testing.T) {
	r := newTestRouter(t)

	w := request(r, http.MethodPost, "/personajes", map[string]string{"name": "Han"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, message("Ha ocurrido un error"), w.Body.String())

	w = request(r, http.MethodPost, "/usuario", map[string]string{"email": "a@b.com"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, message("Ha ocurrido un error"), w.Body.String())
}

func TestPlanetFavoriteLifecycle(t *testing.T) {
	r := newTestRouter(t)

	require.Equal(t, http.StatusCreated, request(r, http.MethodPost, "/usuario", testUser).Code)
	require.Equal(t, http.StatusOK, request(r, http.MethodPost, "/planetas",
		map[string]string{"name": "Hoth", "diameter": "7200", "gravity": "1.1 standard"}).Code)

	w := request(r, http.MethodPost, "/1/favoritos/planeta/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, message("Planeta favorito añadido"), w.Body.String())

	w = request(r, http.MethodPost, "/1/favoritos/planeta/1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, message("el favorito ya existe"), w.Body.String())

	w = request(r, http.MethodGet, "/1/favoritos", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"user_id":1,"personaje_id":null,"planeta_id":1}]`, w.Body.String())

	w = request(r, http.MethodDelete, "/1/favoritos/planeta/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, message("Se elimino el planeta de favoritos"), w.Body.String())

	w = request(r, http.MethodGet, "/1/favoritos", nil)
	assert.JSONEq(t, `[]`, w.Body.String())

	// sin favoritos el borrado responde 200 con un mensaje informativo
	w = request(r, http.MethodDelete, "/1/favoritos/planeta/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, message("No se encontraron favoritos para el usuario seleccionado"), w.Body.String())
}

func TestCharacterFavoriteNotFoundCases(t *testing.T) {
	r := newTestRouter(t)

	w := request(r, http.MethodPost, "/1/favoritos/personaje/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, message("No se encontro la informacion suministrada"), w.Body.String())

	require.Equal(t, http.StatusCreated, request(r, http.MethodPost, "/usuario", testUser).Code)
	require.Equal(t, http.StatusCreated, request(r, http.MethodPost, "/personajes",
		map[string]string{"name": "Yoda", "gender": "male", "height": "66"}).Code)
	require.Equal(t, http.StatusCreated, request(r, http.MethodPost, "/personajes",
		map[string]string{"name": "Leia", "gender": "female", "height": "150"}).Code)

	w = request(r, http.MethodPost, "/1/favoritos/personaje/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, message("Personaje favorito añadido"), w.Body.String())

	// el usuario tiene favoritos pero no a Leia
	w = request(r, http.MethodDelete, "/1/favoritos/personaje/2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, message("No se encontro el personaje favorito"), w.Body.String())

	w = request(r, http.MethodDelete, "/1/favoritos/personaje/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, message("Se elimino el personaje de favoritos"), w.Body.String())
}

func TestNonIntegerParams(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/personajes/abc", "/planetas/-1", "/abc/favoritos", "/1/favoritos/planeta/x"} {
		method := http.MethodGet
		if path == "/1/favoritos/planeta/x" {
			method = http.MethodPost
		}
		w := request(r, method, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.JSONEq(t, `{"message":"Not Found","status_code":404}`, w.Body.String(), path)
	}

	w := request(r, http.MethodGet, "/no/existe/nada", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Not Found","status_code":404}`, w.Body.String())
}

func TestSitemapHelloAndHealth(t *testing.T) {
	r := newTestRouter(t)

	w := request(r, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var routes []map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &routes))
	assert.Contains(t, routes, map[string]string{"method": "GET", "path": "/personajes/:personaje_id"})
	assert.Contains(t, routes, map[string]string{"method": "DELETE", "path": "/:user_id/favoritos/planeta/:planeta_id"})
	assert.Contains(t, routes, map[string]string{"method": "POST", "path": "/usuario"})

	w = request(r, http.MethodGet, "/user", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"msg":"Hello, this is your GET /user response "}`, w.Body.String())

	w = request(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","database":"up"}`, w.Body.String())

	w = request(r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "starwars_http_requests_total")
}

// Solo falta de clave (o null) es un body inválido; un string vacío se acepta
func TestCreateAcceptsEmptyStrings(t *testing.T) {
	r := newTestRouter(t)

	w := request(r, http.MethodPost, "/personajes", map[string]string{"name": "", "gender": "n/a", "height": "66"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, message("Personaje creado"), w.Body.String())

	w = request(r, http.MethodPost, "/planetas", map[string]string{"name": "", "diameter": "", "gravity": ""})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, message("Planeta creado"), w.Body.String())

	w = request(r, http.MethodPost, "/usuario", map[string]string{"name": "", "last_name": "", "email": "x@y.com", "password": ""})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = request(r, http.MethodGet, "/personajes/1", nil)
	assert.JSONEq(t, `{"id":1,"name":"","gender":"n/a","height":"66"}`, w.Body.String())

	w = request(r, http.MethodPost, "/personajes", map[string]interface{}{"name": nil, "gender": "n/a", "height": "66"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, message("Ha ocurrido un error"), w.Body.String())
}

func TestTrailingSlashServedDirectly(t *testing.T) {
	engine := newTestRouter(t)
	h := Handler(engine)

	require.Equal(t, http.StatusCreated, request(h, http.MethodPost, "/personajes/",
		map[string]string{"name": "Luke", "gender": "male", "height": "172"}).Code)

	w := request(h, http.MethodGet, "/personajes/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Luke","gender":"male","height":"172"}]`, w.Body.String())

	w = request(h, http.MethodGet, "/personajes/1/", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = request(h, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// sin el wrapper gin redirige
	w = request(engine, http.MethodGet, "/personajes/", nil)
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
}
