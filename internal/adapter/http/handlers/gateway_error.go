package handlers

import (
	"errors"
	"net/http"

	"vindicia_gateway/internal/domain/entities"
	"vindicia_gateway/internal/infrastructure/soap"
	"vindicia_gateway/internal/mapping"
	"vindicia_gateway/internal/usecase"
	"vindicia_gateway/pkg"
)

// mapGatewayError turns domain errors into the HTTP error envelope. Processor
// messages are deliberately not echoed to the caller; the log line keeps them.
func mapGatewayError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, mapping.ErrInvalidRequest),
		errors.Is(err, entities.ErrInvalidArgument),
		errors.Is(err, entities.ErrInvalidItem),
		errors.Is(err, entities.ErrNoPaymentMethodVariant),
		errors.Is(err, entities.ErrAmbiguousPaymentMethodVariant):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Object not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestFailed):
		return pkg.NewDomainErrorSimple("PROCESSOR_REJECTED", "Processor rejected the request", http.StatusUnprocessableEntity)
	case errors.Is(err, soap.ErrFault), errors.Is(err, mapping.ErrMalformedResponse):
		return pkg.NewDomainErrorSimple("PROCESSOR_FAULT", "Processor returned an invalid response", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrTransportNotConfigured):
		return pkg.NewDomainErrorSimple("PROCESSOR_UNAVAILABLE", "Processor not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
