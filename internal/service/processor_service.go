package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/obolus/obolus-backend/internal/domain"
	"github.com/obolus/obolus-backend/internal/policy"
	"github.com/rs/zerolog/log"
)

// ProcessorService runs the disbursement pipeline: load policies, validate
// them, transfer funds. It is stateless across calls; policies are re-read
// from disk on every call.
type ProcessorService struct {
	loader    *policy.Loader
	validator *policy.Validator
	transfer  *TransferService
}

// NewProcessorService creates a new ProcessorService
func NewProcessorService(loader *policy.Loader, validator *policy.Validator, transfer *TransferService) *ProcessorService {
	return &ProcessorService{
		loader:    loader,
		validator: validator,
		transfer:  transfer,
	}
}

// ProcessPayment runs the three pipeline steps in fixed order and normalizes
// every failure into the result. Nothing escapes this boundary, panics
// included; callers branch on Success and Kind.
func (s *ProcessorService) ProcessPayment(sources domain.RevenueSources) (result domain.DisbursementResult) {
	result.ID = uuid.New()

	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("disbursement_id", result.ID.String()).
				Msg("Disbursement pipeline panicked")
			result = s.failure(result.ID, domain.NewOtherError(fmt.Errorf("unexpected failure: %v", r)))
		}
	}()

	// 1. Load policies from the configured directory
	policies, err := s.loader.Load()
	if err != nil {
		return s.failure(result.ID, err)
	}

	// 2. Validate required policies and their content
	if err := s.validator.Validate(policies); err != nil {
		return s.failure(result.ID, err)
	}

	// 3. Transfer the aggregated funds
	total := s.transfer.Transfer(sources, policies)

	log.Info().
		Str("disbursement_id", result.ID.String()).
		Str("total", total.StringFixed(2)).
		Msg("Payment processed")

	return domain.DisbursementResult{
		ID:      result.ID,
		Success: true,
		Message: domain.MsgPaymentProcessed,
		Total:   total,
		Kind:    domain.KindNone,
	}
}

// failure normalizes a pipeline error into a terminal failure result
func (s *ProcessorService) failure(id uuid.UUID, err error) domain.DisbursementResult {
	kind := domain.KindOf(err)

	log.Warn().
		Err(err).
		Str("disbursement_id", id.String()).
		Str("kind", kind.String()).
		Msg("Disbursement failed")

	return domain.DisbursementResult{
		ID:      id,
		Success: false,
		Message: domain.MsgErrorPrefix + err.Error(),
		Kind:    kind,
	}
}
