package stripe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdedetrich/stripe-go/pkg/stripe"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestEncodeForm(t *testing.T) {
	t.Parallel()
	t.Run("flat scalar fields", func(t *testing.T) {
		t.Parallel()

		params := &stripe.ChargeParams{
			Amount:   2000,
			Currency: stripe.USD,
		}

		values, err := stripe.EncodeForm(params)
		require.NoError(t, err)
		assert.Equal(t, "2000", values.Get("amount"))
		assert.Equal(t, "usd", values.Get("currency"))
	})

	t.Run("absent optional fields produce no key", func(t *testing.T) {
		t.Parallel()

		params := &stripe.ChargeParams{Amount: 500, Currency: stripe.EUR}

		values, err := stripe.EncodeForm(params)
		require.NoError(t, err)
		assert.NotContains(t, values, "description")
		assert.NotContains(t, values, "customer")
		assert.NotContains(t, values, "capture")
		assert.NotContains(t, values, "statement_descriptor")
	})

	t.Run("pointer zero value encodes explicitly", func(t *testing.T) {
		t.Parallel()

		capture := false
		params := &stripe.ChargeParams{Amount: 500, Currency: stripe.EUR, Capture: &capture}

		values, err := stripe.EncodeForm(params)
		require.NoError(t, err)
		assert.Equal(t, "false", values.Get("capture"))
	})

	t.Run("nested struct uses bracket notation", func(t *testing.T) {
		t.Parallel()

		type address struct {
			City string `form:"city"`
			Zip  string `form:"zip"`
		}

		type legalEntity struct {
			Address address `form:"address"`
		}

		type accountParams struct {
			LegalEntity legalEntity `form:"legal_entity"`
		}

		values, err := stripe.EncodeForm(&accountParams{
			LegalEntity: legalEntity{Address: address{City: "Berlin", Zip: "10115"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "Berlin", values.Get("legal_entity[address][city]"))
		assert.Equal(t, "10115", values.Get("legal_entity[address][zip]"))
	})

	t.Run("map entries encode one bracketed key each", func(t *testing.T) {
		t.Parallel()

		params := &stripe.CustomerParams{
			Params: stripe.Params{
				Metadata: map[string]string{"order_id": "6735", "empty": ""},
			},
		}

		values, err := stripe.EncodeForm(params)
		require.NoError(t, err)
		assert.Equal(t, "6735", values.Get("metadata[order_id]"))

		// map entries are explicit even when the value is zero
		_, present := values["metadata[empty]"]
		assert.True(t, present)
	})

	t.Run("scalar slice elements repeat the key", func(t *testing.T) {
		t.Parallel()

		params := &stripe.CustomerParams{
			Params: stripe.Params{Expand: []string{"default_source", "sources"}},
		}

		values, err := stripe.EncodeForm(params)
		require.NoError(t, err)
		assert.Equal(t, []string{"default_source", "sources"}, values["expand[]"])
	})

	t.Run("embedded params flatten at the same level", func(t *testing.T) {
		t.Parallel()

		params := &stripe.ChargeParams{
			Params:   stripe.Params{Metadata: map[string]string{"k": "v"}},
			Amount:   100,
			Currency: stripe.GBP,
		}

		values, err := stripe.EncodeForm(params)
		require.NoError(t, err)
		assert.Equal(t, "v", values.Get("metadata[k]"))
		assert.Equal(t, "100", values.Get("amount"))
	})

	t.Run("idempotency key and account never reach the form", func(t *testing.T) {
		t.Parallel()

		params := &stripe.ChargeParams{
			Params:   stripe.Params{IdempotencyKey: "key-123", StripeAccount: "acct_1"},
			Amount:   100,
			Currency: stripe.USD,
		}

		values, err := stripe.EncodeForm(params)
		require.NoError(t, err)

		for key := range values {
			assert.NotContains(t, values.Get(key), "key-123")
			assert.NotContains(t, values.Get(key), "acct_1")
		}
	})

	t.Run("nil input encodes to empty values", func(t *testing.T) {
		t.Parallel()

		values, err := stripe.EncodeForm(nil)
		require.NoError(t, err)
		assert.Empty(t, values)
	})
}

func TestSourceParamsEncoding(t *testing.T) {
	t.Parallel()
	t.Run("token encodes as a bare pair", func(t *testing.T) {
		t.Parallel()

		params := &stripe.ChargeParams{
			Amount:   2000,
			Currency: stripe.USD,
			Source:   &stripe.SourceParams{Token: "tok_189fqt2eZvKYlo2CTGBeg6Uq"},
		}

		values, err := stripe.EncodeForm(params)
		require.NoError(t, err)
		assert.Equal(t, "tok_189fqt2eZvKYlo2CTGBeg6Uq", values.Get("source"))
		assert.NotContains(t, values, "source[object]")
	})

	t.Run("card encodes as a bracketed sub-map with discriminator", func(t *testing.T) {
		t.Parallel()

		params := &stripe.ChargeParams{
			Amount:   2000,
			Currency: stripe.USD,
			Source: &stripe.SourceParams{Card: &stripe.CardParams{
				Number:   "4242424242424242",
				ExpMonth: 12,
				ExpYear:  2027,
				CVC:      "123",
			}},
		}

		values, err := stripe.EncodeForm(params)
		require.NoError(t, err)
		assert.Equal(t, "card", values.Get("source[object]"))
		assert.Equal(t, "4242424242424242", values.Get("source[number]"))
		assert.Equal(t, "12", values.Get("source[exp_month]"))
		assert.Equal(t, "2027", values.Get("source[exp_year]"))
		assert.Equal(t, "123", values.Get("source[cvc]"))
		assert.NotContains(t, values, "source[name]")
	})

	t.Run("token and card together is a conflict", func(t *testing.T) {
		t.Parallel()

		params := &stripe.ChargeParams{
			Amount:   2000,
			Currency: stripe.USD,
			Source:   &stripe.SourceParams{Token: "tok_1", Card: &stripe.CardParams{Number: "4242"}},
		}

		_, err := stripe.EncodeForm(params)
		require.ErrorIs(t, err, stripe.ErrSourceConflict)
	})

	t.Run("empty source emits nothing", func(t *testing.T) {
		t.Parallel()

		params := &stripe.ChargeParams{
			Amount:   2000,
			Currency: stripe.USD,
			Source:   &stripe.SourceParams{},
		}

		values, err := stripe.EncodeForm(params)
		require.NoError(t, err)
		assert.NotContains(t, values, "source")
	})
}
