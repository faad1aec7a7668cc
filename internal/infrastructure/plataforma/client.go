package plataforma

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ucampus/consola-clubes/internal/application/dto"
	"github.com/ucampus/consola-clubes/internal/domain"
)

// Error conserva el estado y el cuerpo originales de una respuesta no-2xx
// de la plataforma, para que los handlers de la consola puedan reenviarlos
// sin inventar su propia semántica.
type Error struct {
	Status int
	Body   json.RawMessage
}

func (e *Error) Error() string {
	return fmt.Sprintf("plataforma: respuesta %d", e.Status)
}

// Client adaptador HTTP hacia la API remota de la plataforma de clubes.
// Los registros de dominio (clubes, actividades, personas...) viven en la
// plataforma; la consola los trata como payloads opacos y solo adjunta la
// credencial bearer de la sesión.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el adaptador. baseURL sin slash final.
func NewClient(baseURL string, timeoutSeconds int) *Client {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 15
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
	}
}

// ── Autenticación ─────────────────────────────────────────────────────────────

// Login reenvía las credenciales a POST /auth/login. Devuelve el payload
// de éxito exacto de la plataforma; es la única entrada válida para
// construir una sesión de consola.
func (c *Client) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	body, err := c.do(ctx, http.MethodPost, "/auth/login", "", in)
	if err != nil {
		var perr *Error
		if errors.As(err, &perr) {
			switch perr.Status {
			case http.StatusUnauthorized:
				return nil, domain.ErrCredencialesInvalidas
			case http.StatusForbidden:
				return nil, domain.ErrCuentaInactiva
			}
		}
		return nil, err
	}
	var out dto.LoginResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("plataforma: decodificar login: %w", err)
	}
	return &out, nil
}

// Registrar reenvía el alta de usuario a POST /auth/register.
func (c *Client) Registrar(ctx context.Context, in dto.RegisterRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/register", "", in)
	return err
}

// ── Verbos genéricos para el proxy CRUD ───────────────────────────────────────

// Get hace GET autenticado y devuelve el cuerpo tal cual.
func (c *Client) Get(ctx context.Context, token, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, token, nil)
}

// Post hace POST autenticado con cuerpo JSON.
func (c *Client) Post(ctx context.Context, token, path string, body interface{}) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, token, body)
}

// Put hace PUT autenticado con cuerpo JSON.
func (c *Client) Put(ctx context.Context, token, path string, body interface{}) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, token, body)
}

// Delete hace DELETE autenticado.
func (c *Client) Delete(ctx context.Context, token, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, path, token, nil)
}

// do ejecuta la petición y clasifica la respuesta:
//   - 2xx  -> cuerpo crudo
//   - 401  -> domain.ErrNoAutorizado (credencial rechazada por la plataforma)
//   - otro -> *Error con estado y cuerpo originales
//   - fallo de red -> domain.ErrPlataforma
func (c *Client) do(ctx context.Context, method, path, token string, body interface{}) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		raw, ok := body.(json.RawMessage)
		if !ok {
			var err error
			raw, err = json.Marshal(body)
			if err != nil {
				return nil, fmt.Errorf("plataforma: codificar cuerpo: %w", err)
			}
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPlataforma, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: leer respuesta: %v", domain.ErrPlataforma, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return respBody, nil
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, domain.ErrNoAutorizado
	default:
		return nil, &Error{Status: resp.StatusCode, Body: respBody}
	}
}
