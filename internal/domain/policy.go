package domain

// Policy is a named compliance document that must be present before funds may
// be disbursed. Content is kept as raw text; nothing parses it yet.
type Policy struct {
	Name    string
	Content string
}

// PaymentPolicies maps a policy name (filename minus extension) to its document
type PaymentPolicies map[string]Policy

// Names of the required policies
const (
	PolicyInternationalMoneyTransfer = "international_money_transfer"
	PolicyDataProtection             = "data_protection"
	PolicyInternationalPaymentLegal  = "international_payment_legal"
	PolicySecurityProtection         = "security_protection"
	PolicyMalwareProtection          = "malware_protection"
)

// RequiredPolicies returns the fixed required-policy list in check order.
// A fresh slice is returned so callers cannot mutate the canonical order.
func RequiredPolicies() []string {
	return []string{
		PolicyInternationalMoneyTransfer,
		PolicyDataProtection,
		PolicyInternationalPaymentLegal,
		PolicySecurityProtection,
		PolicyMalwareProtection,
	}
}
