package dto

// ErrorResponse cuerpo de error HTTP. Field solo aplica a errores de validación.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
