package handler

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/obolus/obolus-backend/internal/domain"
	"github.com/obolus/obolus-backend/internal/service"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// DisbursementHandler handles disbursement HTTP requests
type DisbursementHandler struct {
	processor *service.ProcessorService
}

// NewDisbursementHandler creates a new DisbursementHandler
func NewDisbursementHandler(processor *service.ProcessorService) *DisbursementHandler {
	return &DisbursementHandler{
		processor: processor,
	}
}

// DisbursementRequest represents the JSON request for running a disbursement.
// Amounts are strings so decimal values survive the wire without float
// rounding. An empty map is valid and disburses a zero total.
type DisbursementRequest struct {
	RevenueSources map[string]string `json:"revenueSources"`
}

// DisbursementResponse represents the JSON response for a successful disbursement
type DisbursementResponse struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Total   string `json:"total"`
}

// Create runs a disbursement over the posted revenue sources
func (h *DisbursementHandler) Create(c echo.Context) error {
	var req DisbursementRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	sources := make(domain.RevenueSources, len(req.RevenueSources))
	var fieldErrors []ValidationError
	for name, raw := range req.RevenueSources {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			fieldErrors = append(fieldErrors, ValidationError{
				Field:   name,
				Message: "must be a decimal amount",
			})
			continue
		}
		sources[name] = amount
	}
	if len(fieldErrors) > 0 {
		// Deterministic ordering for clients; map iteration is not
		sort.Slice(fieldErrors, func(i, j int) bool { return fieldErrors[i].Field < fieldErrors[j].Field })
		return NewValidationError(c, "Invalid revenue amounts", fieldErrors)
	}

	result := h.processor.ProcessPayment(sources)
	if !result.Success {
		log.Warn().
			Str("disbursement_id", result.ID.String()).
			Str("kind", result.Kind.String()).
			Msg("Disbursement request failed")
		return h.handleFailure(c, result)
	}

	return c.JSON(http.StatusCreated, DisbursementResponse{
		ID:      result.ID.String(),
		Success: true,
		Message: result.Message,
		Total:   result.Total.StringFixed(2),
	})
}

// handleFailure maps the result's error kind to an HTTP response. The
// normalized message is preserved as the problem detail.
func (h *DisbursementHandler) handleFailure(c echo.Context, result domain.DisbursementResult) error {
	switch result.Kind {
	case domain.KindValidation:
		return NewUnprocessableError(c, result.Message)
	case domain.KindIO:
		return NewBadGatewayError(c, result.Message)
	default:
		return NewInternalError(c, result.Message)
	}
}
