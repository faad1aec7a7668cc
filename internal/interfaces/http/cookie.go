package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// cookieSesion transporta la referencia firmada a la sesión server-side.
// El token bearer de la plataforma nunca viaja en esta cookie.
const cookieSesion = "consola_sesion"

// setSesionCookie emite la cookie. Con ttlMinutes en 0 es cookie de
// sesión de navegador sin Expires (la sesión server-side tampoco expira).
func setSesionCookie(c *fiber.Ctx, valor string, ttlMinutes int, secure bool) {
	cookie := &fiber.Cookie{
		Name:     cookieSesion,
		Value:    valor,
		Path:     "/",
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if ttlMinutes > 0 {
		cookie.Expires = time.Now().Add(time.Duration(ttlMinutes) * time.Minute)
	}
	c.Cookie(cookie)
}

// clearSesionCookie borra la cookie en el navegador.
func clearSesionCookie(c *fiber.Ctx, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     cookieSesion,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
