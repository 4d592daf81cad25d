package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes
const (
	CodeAppError   = "APP_ERROR"
	CodeConfig     = "CONFIG_ERROR"
	CodeService    = "SERVICE_ERROR"
	CodeDecode     = "DECODE_ERROR"
	CodeValidation = "VALIDATION_ERROR"
	CodeBusy       = "BUSY_ERROR"
)

// DefaultUserMessage is shown when an error carries no message of its own.
const DefaultUserMessage = "An unexpected error occurred."

type AppError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		if e.Message == "" {
			return e.Cause.Error()
		}
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// ConfigError is raised before any network activity, e.g. a missing API key
// or an input mode the prompt builder does not know.
type ConfigError struct {
	*AppError
}

func NewConfigError(message string, context map[string]any) *ConfigError {
	return &ConfigError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeConfig,
			StatusCode: 503,
			Context:    context,
		},
	}
}

// ServiceError wraps a failed request to the text generation service.
type ServiceError struct {
	*AppError
	Provider string
	Model    string
}

func NewServiceError(message, provider, model string, cause error) *ServiceError {
	return &ServiceError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeService,
			StatusCode: 502,
			Context: map[string]any{
				"provider": provider,
				"model":    model,
			},
			Cause: cause,
		},
		Provider: provider,
		Model:    model,
	}
}

// DecodeError means the service answered but the body was empty, not JSON,
// or did not match the response schema.
type DecodeError struct {
	*AppError
	Preview string
}

func NewDecodeError(message, preview string, cause error) *DecodeError {
	return &DecodeError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeDecode,
			StatusCode: 502,
			Context: map[string]any{
				"preview": preview,
			},
			Cause: cause,
		},
		Preview: preview,
	}
}

type ValidationError struct {
	*AppError
	Field string
	Value interface{}
}

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: 400,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

// BusyError rejects a submission while another generation is in flight.
type BusyError struct {
	*AppError
	Key string
}

func NewBusyError(key string) *BusyError {
	return &BusyError{
		AppError: &AppError{
			Message:    "a generation is already in progress",
			Code:       CodeBusy,
			StatusCode: 409,
			Context: map[string]any{
				"key": key,
			},
		},
		Key: key,
	}
}

// CodeOf returns the error code carried by err, or CodeAppError.
func CodeOf(err error) string {
	if app := asAppError(err); app != nil && app.Code != "" {
		return app.Code
	}
	return CodeAppError
}

// StatusOf returns the HTTP status carried by err, or 500.
func StatusOf(err error) int {
	if app := asAppError(err); app != nil && app.StatusCode != 0 {
		return app.StatusCode
	}
	return 500
}

// UserMessage returns the text shown in the error slot.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return DefaultUserMessage
}

func asAppError(err error) *AppError {
	if err == nil {
		return nil
	}
	var cfg *ConfigError
	if stderrors.As(err, &cfg) {
		return cfg.AppError
	}
	var svc *ServiceError
	if stderrors.As(err, &svc) {
		return svc.AppError
	}
	var dec *DecodeError
	if stderrors.As(err, &dec) {
		return dec.AppError
	}
	var val *ValidationError
	if stderrors.As(err, &val) {
		return val.AppError
	}
	var busy *BusyError
	if stderrors.As(err, &busy) {
		return busy.AppError
	}
	var app *AppError
	if stderrors.As(err, &app) {
		return app
	}
	return nil
}
