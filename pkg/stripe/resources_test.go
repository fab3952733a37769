package stripe_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdedetrich/stripe-go/pkg/stripe"
)

func TestChargeParamsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  stripe.ChargeParams
		wantErr error
	}{
		{"valid", stripe.ChargeParams{Amount: 2000, Currency: stripe.USD}, nil},
		{"zero amount", stripe.ChargeParams{Currency: stripe.USD}, stripe.ErrAmountInvalid},
		{"negative amount", stripe.ChargeParams{Amount: -1, Currency: stripe.USD}, stripe.ErrAmountInvalid},
		{"missing currency", stripe.ChargeParams{Amount: 2000}, stripe.ErrCurrencyRequired},
		{
			"statement descriptor too long",
			stripe.ChargeParams{Amount: 2000, Currency: stripe.USD, StatementDescriptor: strings.Repeat("a", 23)},
			stripe.ErrStatementDescriptorTooLong,
		},
		{
			"statement descriptor at the limit",
			stripe.ChargeParams{Amount: 2000, Currency: stripe.USD, StatementDescriptor: strings.Repeat("a", 22)},
			nil,
		},
		{
			"statement descriptor forbidden character",
			stripe.ChargeParams{Amount: 2000, Currency: stripe.USD, StatementDescriptor: `ACME <shop>`},
			stripe.ErrStatementDescriptorInvalidChar,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := testCase.params.Validate()
			if testCase.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, testCase.wantErr)
			}
		})
	}
}

func TestTransferParamsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  stripe.TransferParams
		wantErr error
	}{
		{"valid", stripe.TransferParams{Amount: 1000, Currency: stripe.EUR, Destination: "acct_1"}, nil},
		{"zero amount", stripe.TransferParams{Currency: stripe.EUR, Destination: "acct_1"}, stripe.ErrAmountInvalid},
		{"missing currency", stripe.TransferParams{Amount: 1000, Destination: "acct_1"}, stripe.ErrCurrencyRequired},
		{"missing destination", stripe.TransferParams{Amount: 1000, Currency: stripe.EUR}, stripe.ErrDestinationRequired},
		{
			"statement descriptor quote",
			stripe.TransferParams{Amount: 1000, Currency: stripe.EUR, Destination: "acct_1", StatementDescriptor: `pay"out`},
			stripe.ErrStatementDescriptorInvalidChar,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := testCase.params.Validate()
			if testCase.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, testCase.wantErr)
			}
		})
	}
}

func TestCaptureParamsValidate(t *testing.T) {
	t.Parallel()

	// capture params are all optional, only the descriptor is checked
	require.NoError(t, (&stripe.CaptureParams{}).Validate())
	require.ErrorIs(t,
		(&stripe.CaptureParams{StatementDescriptor: strings.Repeat("x", 30)}).Validate(),
		stripe.ErrStatementDescriptorTooLong)
}

func TestObjectID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ch_1", stripe.Charge{ID: "ch_1"}.ObjectID())
	assert.Equal(t, "cus_1", stripe.Customer{ID: "cus_1"}.ObjectID())
	assert.Equal(t, "tr_1", stripe.Transfer{ID: "tr_1"}.ObjectID())
}
