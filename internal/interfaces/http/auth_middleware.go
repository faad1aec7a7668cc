package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ucampus/consola-clubes/internal/application/auth"
	"github.com/ucampus/consola-clubes/internal/domain/entity"
	pkgjwt "github.com/ucampus/consola-clubes/pkg/jwt"
)

// Destinos de navegación que los guards deben poder alcanzar.
const (
	RutaLogin         = "/login"
	RutaInicioAdmin   = "/dashboard"
	RutaInicioUsuario = "/clubes" // aterrizaje para no-admin
)

// Local key del contexto de sesión en Fiber.
const localContexto = "contexto_sesion"

// Contexto es la vista de la sesión para una petición: la única fuente
// de verdad sobre "quién está autenticado" que consumen guards y
// handlers. Sesion en nil significa no autenticado.
type Contexto struct {
	SesionID string
	Sesion   *entity.Sesion
}

// EstaAutenticado nunca panica, sea cual sea el estado.
func (cx *Contexto) EstaAutenticado() bool {
	return cx != nil && cx.Sesion != nil
}

// EsAdmin devuelve false (nunca panica) si no hay sesión.
func (cx *Contexto) EsAdmin() bool {
	return cx.EstaAutenticado() && cx.Sesion.EsAdmin()
}

// SesionMiddleware resuelve la cookie de sesión contra el store y deja
// el Contexto en c.Locals antes de que corra cualquier handler: ningún
// handler observa el estado "resolviendo". Una cookie ausente, ilegible
// o que apunte a una sesión parcial se trata como no autenticado, nunca
// como error.
func SesionMiddleware(secret string, uc *auth.UseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cx := &Contexto{}

		if cookie := c.Cookies(cookieSesion); cookie != "" {
			if sesionID, err := pkgjwt.Parse(secret, cookie); err == nil {
				sesion, err := uc.Recuperar(c.Context(), sesionID)
				if err == nil && sesion != nil {
					cx.SesionID = sesionID
					cx.Sesion = sesion
				}
			}
		}

		c.Locals(localContexto, cx)
		return c.Next()
	}
}

// Current devuelve el Contexto de la petición. Usarlo en una ruta sin
// SesionMiddleware es un bug de cableado, no una condición de runtime:
// falla ruidosamente en vez de devolver un valor por defecto.
func Current(c *fiber.Ctx) *Contexto {
	cx, ok := c.Locals(localContexto).(*Contexto)
	if !ok {
		panic("auth: Current llamado en una ruta sin SesionMiddleware")
	}
	return cx
}

// RequireAutenticado redirige a /login cuando no hay sesión. Se evalúa
// en cada petición con el estado actual: no cachea decisiones.
func RequireAutenticado() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !Current(c).EstaAutenticado() {
			return c.Redirect(RutaLogin, fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// RequireAdmin comprueba primero autenticación y después rol: un admin
// deslogueado es "inicia sesión", no "acceso denegado". Un autenticado
// sin rol admin va al aterrizaje de usuario, no a una página de error.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cx := Current(c)
		if !cx.EstaAutenticado() {
			return c.Redirect(RutaLogin, fiber.StatusSeeOther)
		}
		if !cx.EsAdmin() {
			return c.Redirect(RutaInicioUsuario, fiber.StatusSeeOther)
		}
		return c.Next()
	}
}
