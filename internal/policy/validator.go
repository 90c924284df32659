package policy

import (
	"fmt"

	"github.com/obolus/obolus-backend/internal/domain"
)

// ContentCheck validates the content of a single policy document
type ContentCheck func(p domain.Policy) error

// PassCheck is the default content check; it accepts any content
func PassCheck(domain.Policy) error {
	return nil
}

// Validator confirms required policies are present and runs any registered
// per-policy content checks.
type Validator struct {
	required []string
	checks   map[string]ContentCheck
}

// NewValidator creates a Validator over the fixed required-policy list, with
// the default content check registered for the international money transfer
// policy. No content rules are enforced yet; the registration keeps the hook
// exercised on every run.
func NewValidator() *Validator {
	v := &Validator{
		required: domain.RequiredPolicies(),
		checks:   make(map[string]ContentCheck),
	}
	v.Register(domain.PolicyInternationalMoneyTransfer, PassCheck)
	return v
}

// Register installs a content check for the named policy, replacing any
// previous check for that name.
func (v *Validator) Register(name string, check ContentCheck) {
	v.checks[name] = check
}

// Validate confirms every required policy is present, stopping at the first
// missing name, then runs content checks for the policies that have one
// registered.
func (v *Validator) Validate(policies domain.PaymentPolicies) error {
	for _, name := range v.required {
		if _, ok := policies[name]; !ok {
			return domain.NewValidationError(&domain.MissingPolicyError{Name: name})
		}
	}

	for _, name := range v.required {
		check, ok := v.checks[name]
		if !ok {
			continue
		}
		if err := check(policies[name]); err != nil {
			return domain.NewValidationError(fmt.Errorf("policy %s rejected: %w", name, err))
		}
	}

	return nil
}
