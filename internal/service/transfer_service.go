package service

import (
	"fmt"
	"io"

	"github.com/obolus/obolus-backend/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// TransferService disburses the aggregated revenue to the configured
// developer. No real money moves; the observable effect is the transfer
// notice written to out.
type TransferService struct {
	developerName    string
	developerWebsite string
	out              io.Writer
}

// NewTransferService creates a TransferService writing transfer notices to out
func NewTransferService(developerName, developerWebsite string, out io.Writer) *TransferService {
	return &TransferService{
		developerName:    developerName,
		developerWebsite: developerWebsite,
		out:              out,
	}
}

// Transfer sums the revenue sources with exact decimal arithmetic and emits
// the transfer notice. It cannot fail: the sum is pure arithmetic and the
// notice is best-effort output. The validated policies are accepted so the
// signature does not change once transfers start consulting per-policy terms.
func (s *TransferService) Transfer(sources domain.RevenueSources, policies domain.PaymentPolicies) decimal.Decimal {
	total := sources.Total()

	fmt.Fprintf(s.out, "Transferring %s to %s (%s)\n", total.StringFixed(2), s.developerName, s.developerWebsite)

	log.Info().
		Str("total", total.StringFixed(2)).
		Str("developer", s.developerName).
		Int("sources", len(sources)).
		Int("policies", len(policies)).
		Msg("Funds transferred")

	return total
}
