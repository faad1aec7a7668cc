package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la consola (lectura vía Viper desde
// variables de entorno y opcionalmente un archivo .env).
type Config struct {
	App        AppConfig
	HTTP       HTTPConfig
	Plataforma PlataformaConfig
	Redis      RedisConfig
	Sesion     SesionConfig
}

// AppConfig configuración general.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP de la consola.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// PlataformaConfig acceso a la API remota de la plataforma de clubes.
type PlataformaConfig struct {
	BaseURL        string // ej. https://clubes.ucampus.edu/api
	TimeoutSeconds int
}

// RedisConfig conexión al Redis que persiste las sesiones.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SesionConfig política de sesiones de la consola.
// TTLMinutes en 0 significa sin expiración: la consola nunca invalida
// una credencial por su cuenta, la caducidad la decide la plataforma
// rechazando el token (ver DESIGN.md).
type SesionConfig struct {
	Secret       string // firma HS256 de la cookie de sesión
	TTLMinutes   int
	CookieSecure bool
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde .env). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, HTTP_PORT, PLATAFORMA_API_URL, REDIS_ADDR, SESSION_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env en el directorio de trabajo
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "consola-clubes"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Plataforma: PlataformaConfig{
			BaseURL:        getString(v, "PLATAFORMA_API_URL", "http://localhost:3000/api"),
			TimeoutSeconds: getInt(v, "PLATAFORMA_TIMEOUT_SECONDS", 15),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		Sesion: SesionConfig{
			Secret:       getString(v, "SESSION_SECRET", ""),
			TTLMinutes:   getInt(v, "SESSION_TTL_MINUTES", 0),
			CookieSecure: getBool(v, "SESSION_COOKIE_SECURE", false),
		},
	}

	if cfg.Sesion.Secret == "" {
		return nil, fmt.Errorf("config: SESSION_SECRET es obligatorio")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
