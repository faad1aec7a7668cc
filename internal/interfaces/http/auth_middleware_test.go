package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ucampus/consola-clubes/internal/application/auth"
	"github.com/ucampus/consola-clubes/internal/application/dto"
	"github.com/ucampus/consola-clubes/internal/domain"
	"github.com/ucampus/consola-clubes/internal/domain/entity"
	"github.com/ucampus/consola-clubes/internal/infrastructure/memoria"
	apphttp "github.com/ucampus/consola-clubes/internal/interfaces/http"
	pkgjwt "github.com/ucampus/consola-clubes/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testSecret = "secreto-de-pruebas"

type plataformaFalsa struct{}

func (plataformaFalsa) Login(_ context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	switch in.Email {
	case "a@x.com":
		return &dto.LoginResponse{
			AccessToken: "t1",
			Usuario:     dto.UsuarioPlataforma{ID: 7, Nombre: "Ana", Email: "a@x.com", Rol: "admin"},
		}, nil
	case "b@x.com":
		return &dto.LoginResponse{
			AccessToken: "t2",
			Usuario:     dto.UsuarioPlataforma{ID: 3, Nombre: "Bob", Email: "b@x.com", Rol: "usuario"},
		}, nil
	default:
		return nil, domain.ErrCredencialesInvalidas
	}
}

func (plataformaFalsa) Registrar(context.Context, dto.RegisterRequest) error { return nil }

// buildTestApp arma una consola mínima: middleware de sesión, login y
// logout reales contra un store en memoria, y dos rutas con guard.
func buildTestApp(t *testing.T) (*fiber.App, *memoria.SesionStore) {
	t.Helper()
	store := memoria.NewSesionStore()
	uc := auth.NewUseCase(plataformaFalsa{}, store)

	app := fiber.New()
	app.Use(apphttp.SesionMiddleware(testSecret, uc))

	authHandler := apphttp.NewAuthHandler(uc, apphttp.CookieConfig{
		Secret: testSecret,
		Issuer: "consola-test",
	})
	app.Post("/api/auth/login", authHandler.Login)
	app.Post("/api/auth/logout", apphttp.RequireAutenticado(), authHandler.Logout)
	app.Get("/api/auth/sesion", apphttp.RequireAutenticado(), authHandler.Sesion)

	app.Get("/privada", apphttp.RequireAutenticado(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/solo-admin", apphttp.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app, store
}

// login hace el POST y devuelve la cookie de sesión emitida.
func login(t *testing.T, app *fiber.App, email string) *http.Cookie {
	t.Helper()
	body, _ := json.Marshal(dto.LoginRequest{Email: email, Password: "secreta"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "el login debe aceptarse")

	for _, c := range resp.Cookies() {
		if c.Name == "consola_sesion" {
			return c
		}
	}
	t.Fatal("el login debe emitir la cookie de sesión")
	return nil
}

func get(t *testing.T, app *fiber.App, path string, cookie *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Guards
// ──────────────────────────────────────────────────────────────────────────────

// Proceso recién iniciado, sin cookie: la ruta protegida redirige a /login.
func TestRequireAutenticado_SinSesionRedirigeALogin(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := get(t, app, "/privada", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, apphttp.RutaLogin, resp.Header.Get("Location"))
}

// Sin sesión, la ruta de admin también manda a /login: la autenticación
// se comprueba antes que el rol.
func TestRequireAdmin_SinSesionRedirigeALogin(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := get(t, app, "/solo-admin", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, apphttp.RutaLogin, resp.Header.Get("Location"),
		"un admin deslogueado es 'inicia sesión', no 'acceso denegado'")
}

// Un usuario autenticado no-admin va al aterrizaje de usuario, no a /login.
func TestRequireAdmin_UsuarioRedirigeAClubes(t *testing.T) {
	app, _ := buildTestApp(t)
	cookie := login(t, app, "b@x.com")

	resp := get(t, app, "/solo-admin", cookie)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, apphttp.RutaInicioUsuario, resp.Header.Get("Location"))
}

// Un admin autenticado pasa ambos guards.
func TestRequireAdmin_AdminAccede(t *testing.T) {
	app, _ := buildTestApp(t)
	cookie := login(t, app, "a@x.com")

	resp := get(t, app, "/solo-admin", cookie)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = get(t, app, "/privada", cookie)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Una cookie ilegible se trata como no autenticado, nunca como error.
func TestSesionMiddleware_CookieBasuraEsLoggedOut(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := get(t, app, "/privada", &http.Cookie{Name: "consola_sesion", Value: "no-es-un-jwt"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, apphttp.RutaLogin, resp.Header.Get("Location"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida de la sesión vía HTTP
// ──────────────────────────────────────────────────────────────────────────────

// Tras el login, el store contiene los cinco campos del payload y la
// cookie permite rehidratar la sesión en peticiones posteriores
// (equivalente a recargar la página).
func TestLogin_RoundTripYRehidratacion(t *testing.T) {
	app, store := buildTestApp(t)
	cookie := login(t, app, "a@x.com")

	sesionID, err := pkgjwt.Parse(testSecret, cookie.Value)
	require.NoError(t, err)

	s, err := store.Load(context.Background(), sesionID)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, entity.Sesion{UsuarioID: 7, Token: "t1", Rol: "admin", Nombre: "Ana", Email: "a@x.com"}, *s)

	// "Recarga": una petición nueva con la misma cookie sigue autenticada.
	resp := get(t, app, "/api/auth/sesion", cookie)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.SesionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, dto.SesionResponse{UsuarioID: 7, Nombre: "Ana", Email: "a@x.com", Rol: "admin"}, out)
}

// El logout limpia el store, redirige a /login y las peticiones
// siguientes con la cookie vieja vuelven a estar deslogueadas.
func TestLogout_LimpiaYRedirige(t *testing.T) {
	app, store := buildTestApp(t)
	cookie := login(t, app, "a@x.com")

	sesionID, err := pkgjwt.Parse(testSecret, cookie.Value)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, apphttp.RutaLogin, resp.Header.Get("Location"))

	s, err := store.Load(context.Background(), sesionID)
	require.NoError(t, err)
	assert.Nil(t, s, "el logout debe vaciar el store")

	// La cookie vieja apunta a una sesión inexistente: deslogueado.
	resp = get(t, app, "/privada", cookie)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

// Una sesión parcial en el store (token sin rol) se trata como ausente.
func TestSesionParcialEnStore_EsLoggedOut(t *testing.T) {
	app, store := buildTestApp(t)
	cookie := login(t, app, "a@x.com")

	sesionID, err := pkgjwt.Parse(testSecret, cookie.Value)
	require.NoError(t, err)

	// Simular almacenamiento corrupto: solo credencial, sin rol.
	require.NoError(t, store.Save(context.Background(), sesionID, entity.Sesion{Token: "t2"}))

	resp := get(t, app, "/privada", cookie)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, apphttp.RutaLogin, resp.Header.Get("Location"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Contexto
// ──────────────────────────────────────────────────────────────────────────────

// Los predicados nunca panican, sea cual sea el estado del contexto.
func TestContexto_PredicadosSeguros(t *testing.T) {
	var nulo *apphttp.Contexto
	assert.NotPanics(t, func() {
		assert.False(t, nulo.EstaAutenticado())
		assert.False(t, nulo.EsAdmin())
	})

	vacio := &apphttp.Contexto{}
	assert.False(t, vacio.EstaAutenticado())
	assert.False(t, vacio.EsAdmin())
}

// Usar Current en una ruta sin SesionMiddleware es un bug de cableado y
// debe fallar ruidosamente, no devolver un valor por defecto.
func TestCurrent_SinMiddlewarePanica(t *testing.T) {
	app := fiber.New()
	app.Use(recover.New())
	app.Get("/mal-cableada", func(c *fiber.Ctx) error {
		apphttp.Current(c)
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/mal-cableada", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
