package stripe

import (
	"strings"
	"unicode/utf8"
)

// Charge represents a charge against a payment source.
type Charge struct {
	ID                  string            `json:"id"                             yaml:"id"`
	Object              string            `json:"object"                         yaml:"object"`
	Amount              int64             `json:"amount"                         yaml:"amount"`
	AmountRefunded      int64             `json:"amount_refunded"                yaml:"amount_refunded"`
	Captured            bool              `json:"captured"                       yaml:"captured"`
	Created             Timestamp         `json:"created"                        yaml:"created"`
	Currency            Currency          `json:"currency"                       yaml:"currency"`
	Customer            string            `json:"customer,omitempty"             yaml:"customer,omitempty"`
	Description         string            `json:"description,omitempty"          yaml:"description,omitempty"`
	FailureCode         ErrorCode         `json:"failure_code,omitempty"         yaml:"failure_code,omitempty"`
	FailureMessage      string            `json:"failure_message,omitempty"      yaml:"failure_message,omitempty"`
	Livemode            bool              `json:"livemode"                       yaml:"livemode"`
	Metadata            map[string]string `json:"metadata,omitempty"             yaml:"metadata,omitempty"`
	Paid                bool              `json:"paid"                           yaml:"paid"`
	Refunded            bool              `json:"refunded"                       yaml:"refunded"`
	Source              *PaymentSource    `json:"source,omitempty"               yaml:"source,omitempty"`
	StatementDescriptor string            `json:"statement_descriptor,omitempty" yaml:"statement_descriptor,omitempty"`
	Status              string            `json:"status"                         yaml:"status"`
}

// ObjectID implements Identifiable.
func (c Charge) ObjectID() string { return c.ID }

// Customer represents a customer that charges can be attached to.
type Customer struct {
	ID            string               `json:"id"                       yaml:"id"`
	Object        string               `json:"object"                   yaml:"object"`
	Created       Timestamp            `json:"created"                  yaml:"created"`
	DefaultSource *PaymentSource       `json:"default_source,omitempty" yaml:"default_source,omitempty"`
	Delinquent    bool                 `json:"delinquent"               yaml:"delinquent"`
	Description   string               `json:"description,omitempty"    yaml:"description,omitempty"`
	Email         string               `json:"email,omitempty"          yaml:"email,omitempty"`
	Livemode      bool                 `json:"livemode"                 yaml:"livemode"`
	Metadata      map[string]string    `json:"metadata,omitempty"       yaml:"metadata,omitempty"`
	Sources       *List[PaymentSource] `json:"sources,omitempty"        yaml:"sources,omitempty"`
}

// ObjectID implements Identifiable.
func (c Customer) ObjectID() string { return c.ID }

// Transfer represents a transfer of funds to a connected account or bank
// account.
type Transfer struct {
	ID                  string            `json:"id"                             yaml:"id"`
	Object              string            `json:"object"                         yaml:"object"`
	Amount              int64             `json:"amount"                         yaml:"amount"`
	Created             Timestamp         `json:"created"                        yaml:"created"`
	Currency            Currency          `json:"currency"                       yaml:"currency"`
	Date                Timestamp         `json:"date"                           yaml:"date"`
	Description         string            `json:"description,omitempty"          yaml:"description,omitempty"`
	Destination         string            `json:"destination,omitempty"          yaml:"destination,omitempty"`
	Livemode            bool              `json:"livemode"                       yaml:"livemode"`
	Metadata            map[string]string `json:"metadata,omitempty"             yaml:"metadata,omitempty"`
	Reversed            bool              `json:"reversed"                       yaml:"reversed"`
	StatementDescriptor string            `json:"statement_descriptor,omitempty" yaml:"statement_descriptor,omitempty"`
	Status              string            `json:"status"                         yaml:"status"`
}

// ObjectID implements Identifiable.
func (t Transfer) ObjectID() string { return t.ID }

// Card is the full card shape of a payment source.
type Card struct {
	ID             string `json:"id"                        yaml:"id"`
	Object         string `json:"object"                    yaml:"object"`
	AddressCity    string `json:"address_city,omitempty"    yaml:"address_city,omitempty"`
	AddressCountry string `json:"address_country,omitempty" yaml:"address_country,omitempty"`
	AddressLine1   string `json:"address_line1,omitempty"   yaml:"address_line1,omitempty"`
	AddressZip     string `json:"address_zip,omitempty"     yaml:"address_zip,omitempty"`
	Brand          string `json:"brand"                     yaml:"brand"`
	Country        string `json:"country,omitempty"         yaml:"country,omitempty"`
	Customer       string `json:"customer,omitempty"        yaml:"customer,omitempty"`
	CVCCheck       string `json:"cvc_check,omitempty"       yaml:"cvc_check,omitempty"`
	ExpMonth       int    `json:"exp_month"                 yaml:"exp_month"`
	ExpYear        int    `json:"exp_year"                  yaml:"exp_year"`
	Fingerprint    string `json:"fingerprint,omitempty"     yaml:"fingerprint,omitempty"`
	Funding        string `json:"funding,omitempty"         yaml:"funding,omitempty"`
	Last4          string `json:"last4"                     yaml:"last4"`
	Name           string `json:"name,omitempty"            yaml:"name,omitempty"`
}

// BitcoinReceiver is the bitcoin receiver shape of a payment source.
type BitcoinReceiver struct {
	ID                    string    `json:"id"                      yaml:"id"`
	Object                string    `json:"object"                  yaml:"object"`
	Active                bool      `json:"active"                  yaml:"active"`
	Amount                int64     `json:"amount"                  yaml:"amount"`
	AmountReceived        int64     `json:"amount_received"         yaml:"amount_received"`
	BitcoinAmount         int64     `json:"bitcoin_amount"          yaml:"bitcoin_amount"`
	BitcoinAmountReceived int64     `json:"bitcoin_amount_received" yaml:"bitcoin_amount_received"`
	BitcoinURI            string    `json:"bitcoin_uri,omitempty"   yaml:"bitcoin_uri,omitempty"`
	Created               Timestamp `json:"created"                 yaml:"created"`
	Currency              Currency  `json:"currency"                yaml:"currency"`
	Description           string    `json:"description,omitempty"   yaml:"description,omitempty"`
	Email                 string    `json:"email,omitempty"         yaml:"email,omitempty"`
	Filled                bool      `json:"filled"                  yaml:"filled"`
	InboundAddress        string    `json:"inbound_address"         yaml:"inbound_address"`
	Livemode              bool      `json:"livemode"                yaml:"livemode"`
}

// Balance represents the account balance.
type Balance struct {
	Object    string          `json:"object"    yaml:"object"`
	Available []BalanceAmount `json:"available" yaml:"available"`
	Livemode  bool            `json:"livemode"  yaml:"livemode"`
	Pending   []BalanceAmount `json:"pending"   yaml:"pending"`
}

// BalanceAmount is one currency bucket of a balance.
type BalanceAmount struct {
	Amount   int64    `json:"amount"   yaml:"amount"`
	Currency Currency `json:"currency" yaml:"currency"`
}

// CardParams is the full-card input shape of a source param.
type CardParams struct {
	Number         string `form:"number"`
	ExpMonth       int    `form:"exp_month"`
	ExpYear        int    `form:"exp_year"`
	CVC            string `form:"cvc"`
	Name           string `form:"name"`
	AddressCity    string `form:"address_city"`
	AddressCountry string `form:"address_country"`
	AddressLine1   string `form:"address_line1"`
	AddressZip     string `form:"address_zip"`
}

// ChargeParams describes a charge to create.
type ChargeParams struct {
	Params

	Amount              int64         `form:"amount"`
	Currency            Currency      `form:"currency"`
	Capture             *bool         `form:"capture"`
	Customer            string        `form:"customer"`
	Description         string        `form:"description"`
	Source              *SourceParams `form:"source"`
	StatementDescriptor string        `form:"statement_descriptor"`
}

// Validate checks the params before any request is issued.
func (p *ChargeParams) Validate() error {
	if p.Amount <= 0 {
		return ErrAmountInvalid
	}

	if p.Currency == "" {
		return ErrCurrencyRequired
	}

	return validateStatementDescriptor(p.StatementDescriptor)
}

// ChargeUpdateParams describes an update to a charge.
type ChargeUpdateParams struct {
	Params

	Description string `form:"description"`
}

// CaptureParams describes the capture of a previously uncaptured charge.
type CaptureParams struct {
	Params

	Amount              int64  `form:"amount"`
	StatementDescriptor string `form:"statement_descriptor"`
}

// Validate checks the params before any request is issued.
func (p *CaptureParams) Validate() error {
	return validateStatementDescriptor(p.StatementDescriptor)
}

// ChargeListParams filters a charge list.
type ChargeListParams struct {
	ListParams

	Customer string `form:"customer"`
}

// CustomerParams describes a customer to create or update.
type CustomerParams struct {
	Params

	Description string        `form:"description"`
	Email       string        `form:"email"`
	Source      *SourceParams `form:"source"`
}

// CustomerListParams filters a customer list.
type CustomerListParams struct {
	ListParams
}

// TransferParams describes a transfer to create.
type TransferParams struct {
	Params

	Amount              int64    `form:"amount"`
	Currency            Currency `form:"currency"`
	Destination         string   `form:"destination"`
	Description         string   `form:"description"`
	StatementDescriptor string   `form:"statement_descriptor"`
}

// Validate checks the params before any request is issued.
func (p *TransferParams) Validate() error {
	if p.Amount <= 0 {
		return ErrAmountInvalid
	}

	if p.Currency == "" {
		return ErrCurrencyRequired
	}

	if p.Destination == "" {
		return ErrDestinationRequired
	}

	return validateStatementDescriptor(p.StatementDescriptor)
}

// TransferUpdateParams describes an update to a transfer.
type TransferUpdateParams struct {
	Params

	Description string `form:"description"`
}

// TransferListParams filters a transfer list.
type TransferListParams struct {
	ListParams

	Date   *CreatedFilter `form:"date"`
	Status string         `form:"status"`
}

const statementDescriptorMaxLen = 22

func validateStatementDescriptor(descriptor string) error {
	if descriptor == "" {
		return nil
	}

	if utf8.RuneCountInString(descriptor) > statementDescriptorMaxLen {
		return ErrStatementDescriptorTooLong
	}

	if strings.ContainsAny(descriptor, `<>"'`) {
		return ErrStatementDescriptorInvalidChar
	}

	return nil
}
