package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ucampus/consola-clubes/internal/application/auth"
	"github.com/ucampus/consola-clubes/internal/application/dto"
	"github.com/ucampus/consola-clubes/internal/infrastructure/memoria"
	"github.com/ucampus/consola-clubes/internal/infrastructure/plataforma"
	apphttp "github.com/ucampus/consola-clubes/internal/interfaces/http"
	pkgjwt "github.com/ucampus/consola-clubes/pkg/jwt"
)

// plataformaDePruebas simula la API remota de clubes: login por email y
// recursos protegidos por bearer token.
func plataformaDePruebas(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var in dto.LoginRequest
		json.NewDecoder(r.Body).Decode(&in)
		switch in.Email {
		case "a@x.com":
			json.NewEncoder(w).Encode(dto.LoginResponse{
				AccessToken: "t1",
				Usuario:     dto.UsuarioPlataforma{ID: 7, Nombre: "Ana", Email: "a@x.com", Rol: "admin"},
			})
		case "b@x.com":
			json.NewEncoder(w).Encode(dto.LoginResponse{
				AccessToken: "t2",
				Usuario:     dto.UsuarioPlataforma{ID: 3, Nombre: "Bob", Email: "b@x.com", Rol: "usuario"},
			})
		default:
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"credenciales incorrectas"}`))
		}
	})

	autorizado := func(r *http.Request) bool {
		tok := r.Header.Get("Authorization")
		return tok == "Bearer t1" || tok == "Bearer t2"
	}

	mux.HandleFunc("GET /club/listar_clubes", func(w http.ResponseWriter, r *http.Request) {
		if !autorizado(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`[{"ID_Club":1,"Nombre":"Ajedrez"},{"ID_Club":2,"Nombre":"Teatro"}]`))
	})

	mux.HandleFunc("POST /club/crear_club", func(w http.ResponseWriter, r *http.Request) {
		if !autorizado(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"el club ya existe"}`))
	})

	mux.HandleFunc("GET /sede/listar_sedes", func(w http.ResponseWriter, r *http.Request) {
		if !autorizado(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`[{"ID_Sede":1,"Ubicacion":"Campus Norte"}]`))
	})

	return httptest.NewServer(mux)
}

// buildConsola arma la consola completa con el Router real.
func buildConsola(t *testing.T, plataformaURL string) (*fiber.App, *memoria.SesionStore) {
	t.Helper()
	store := memoria.NewSesionStore()
	api := plataforma.NewClient(plataformaURL, 5)
	uc := auth.NewUseCase(api, store)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: uc,
		API:    api,
		Cookie: apphttp.CookieConfig{Secret: testSecret, Issuer: "consola-test"},
	})
	return app, store
}

// El proxy reenvía el listado remoto tal cual al cliente autenticado.
func TestProxy_ListarClubes(t *testing.T) {
	srv := plataformaDePruebas(t)
	defer srv.Close()
	app, _ := buildConsola(t, srv.URL)
	cookie := login(t, app, "b@x.com")

	resp := get(t, app, "/api/clubes/", cookie)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `[{"ID_Club":1,"Nombre":"Ajedrez"},{"ID_Club":2,"Nombre":"Teatro"}]`, string(body))
}

// Los errores remotos llegan al cliente con su estado y cuerpo originales.
func TestProxy_ReenviaErrorRemoto(t *testing.T) {
	srv := plataformaDePruebas(t)
	defer srv.Close()
	app, _ := buildConsola(t, srv.URL)
	cookie := login(t, app, "a@x.com")

	req := httptest.NewRequest(http.MethodPost, "/api/clubes/", bytes.NewReader([]byte(`{"Nombre":"Ajedrez"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"error":"el club ya existe"}`, string(body))
}

// Si la plataforma rechaza la credencial (401), la consola cierra la
// sesión y redirige a /login para que su estado no mienta.
func TestProxy_CredencialObsoletaCierraSesion(t *testing.T) {
	srv := plataformaDePruebas(t)
	defer srv.Close()
	app, store := buildConsola(t, srv.URL)
	cookie := login(t, app, "a@x.com")

	sesionID, err := pkgjwt.Parse(testSecret, cookie.Value)
	require.NoError(t, err)

	// La plataforma deja de aceptar el token: lo simulamos corrompiendo
	// la credencial guardada.
	s, err := store.Load(context.Background(), sesionID)
	require.NoError(t, err)
	s.Token = "caducado"
	require.NoError(t, store.Save(context.Background(), sesionID, *s))

	resp := get(t, app, "/api/clubes/", cookie)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, apphttp.RutaLogin, resp.Header.Get("Location"))

	vacia, err := store.Load(context.Background(), sesionID)
	require.NoError(t, err)
	assert.Nil(t, vacia, "la sesión obsoleta debe quedar cerrada")
}

// Los catálogos son solo-admin: un usuario normal aterriza en /clubes.
func TestProxy_CatalogoSoloAdmin(t *testing.T) {
	srv := plataformaDePruebas(t)
	defer srv.Close()
	app, _ := buildConsola(t, srv.URL)

	usuario := login(t, app, "b@x.com")
	resp := get(t, app, "/api/sedes/", usuario)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, apphttp.RutaInicioUsuario, resp.Header.Get("Location"))

	admin := login(t, app, "a@x.com")
	resp = get(t, app, "/api/sedes/", admin)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `[{"ID_Sede":1,"Ubicacion":"Campus Norte"}]`, string(body))
}

// La raíz manda a cada quien a su aterrizaje según sesión y rol.
func TestRaiz_RedirigePorEstado(t *testing.T) {
	srv := plataformaDePruebas(t)
	defer srv.Close()
	app, _ := buildConsola(t, srv.URL)

	resp := get(t, app, "/", nil)
	defer resp.Body.Close()
	assert.Equal(t, apphttp.RutaLogin, resp.Header.Get("Location"))

	admin := login(t, app, "a@x.com")
	resp = get(t, app, "/", admin)
	defer resp.Body.Close()
	assert.Equal(t, apphttp.RutaInicioAdmin, resp.Header.Get("Location"))

	usuario := login(t, app, "b@x.com")
	resp = get(t, app, "/", usuario)
	defer resp.Body.Close()
	assert.Equal(t, apphttp.RutaInicioUsuario, resp.Header.Get("Location"))
}
