package domain

import "fmt"

// ContractType distinguishes personal and business contract hire quotes.
type ContractType string

const (
	ContractTypePersonal ContractType = "PCH"
	ContractTypeBusiness ContractType = "BCH"
)

// QuoteCell is one raw funder quote as ingested from a rate upload. Immutable;
// uniquely identified by (provider, term, initial months, contract type,
// maintenance flag) within a vehicle+mileage scope.
type QuoteCell struct {
	Provider            string       `json:"provider"`
	Term                int          `json:"term"`
	InitialMonths       int          `json:"initial_months"`
	MonthlyRentalMinor  int64        `json:"monthly_rental_minor"`
	IncludesMaintenance bool         `json:"includes_maintenance"`
	ContractType        ContractType `json:"contract_type"`
}

// PaymentProfile is a (term, initial payment) pair. The initial payment is a
// multiple of the monthly rental paid once at inception; it replaces the first
// regular payment rather than adding to it.
type PaymentProfile struct {
	Term          int `json:"term"`
	InitialMonths int `json:"initial_months"`
}

// TotalPayments returns the number of monthly rentals paid over the contract:
// the upfront multiple plus term-1 subsequent payments.
func (p PaymentProfile) TotalPayments() int {
	return p.InitialMonths + p.Term - 1
}

// Key renders the profile in the industry "initial+term" form, e.g. "3+36".
func (p PaymentProfile) Key() string {
	return fmt.Sprintf("%d+%d", p.InitialMonths, p.Term)
}
