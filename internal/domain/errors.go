package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio.
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrUnauthorized           = errors.New("no autorizado")
	ErrForbidden              = errors.New("acceso denegado")
	ErrConflict               = errors.New("conflicto con el estado actual")
	ErrInvalidStateTransition = errors.New("transición de etapa inválida")
	ErrQuantityExceeded       = errors.New("cantidad supera lo pendiente de la orden de trabajo")
	ErrPermissionLookup       = errors.New("no se pudo consultar el directorio de permisos")
)

// ValidationError rechazo de entrada antes de tocar el store; Field indica el campo ofensor.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError atajo para construir un *ValidationError.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// InvalidStateTransitionError la transición pedida no parte de la etapa actual del rollo.
type InvalidStateTransitionError struct {
	RollID string
	From   string
	To     string
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("rollo %s: no se puede pasar de %q a %q", e.RollID, e.From, e.To)
}

func (e *InvalidStateTransitionError) Unwrap() error { return ErrInvalidStateTransition }

// AuthorizationError el actor no tiene permiso sobre la etapa/módulo/acción.
type AuthorizationError struct {
	ActorID  string
	Resource string
	Reason   string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("actor %s sin permiso sobre %s: %s", e.ActorID, e.Resource, e.Reason)
}

func (e *AuthorizationError) Unwrap() error { return ErrForbidden }

// QuantityExceededError solo se devuelve cuando el llamador pidió no aceptar excedentes.
type QuantityExceededError struct {
	JobOrderID string
	Excess     decimal.Decimal
	Remaining  decimal.Decimal
}

func (e *QuantityExceededError) Error() string {
	return fmt.Sprintf("orden de trabajo %s: excedente %s (pendiente %s)", e.JobOrderID, e.Excess, e.Remaining)
}

func (e *QuantityExceededError) Unwrap() error { return ErrQuantityExceeded }
