package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MensajeResponse respuesta simple con mensaje.
type MensajeResponse struct {
	Mensaje string `json:"mensaje"`
}
