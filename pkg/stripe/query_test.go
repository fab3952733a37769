package stripe_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdedetrich/stripe-go/pkg/stripe"
)

func TestListParamsToValues(t *testing.T) {
	t.Parallel()
	t.Run("cursor and limit", func(t *testing.T) {
		t.Parallel()

		params := &stripe.ListParams{Limit: 25, StartingAfter: "ch_100"}

		values, err := params.ToValues()
		require.NoError(t, err)
		assert.Equal(t, "25", values.Get("limit"))
		assert.Equal(t, "ch_100", values.Get("starting_after"))
		assert.NotContains(t, values, "ending_before")
	})

	t.Run("empty params produce no keys", func(t *testing.T) {
		t.Parallel()

		values, err := (&stripe.ListParams{}).ToValues()
		require.NoError(t, err)
		assert.Empty(t, values)
	})

	t.Run("account routing never reaches the query", func(t *testing.T) {
		t.Parallel()

		values, err := (&stripe.ListParams{Limit: 5, StripeAccount: "acct_1"}).ToValues()
		require.NoError(t, err)

		for key := range values {
			assert.NotEqual(t, "acct_1", values.Get(key))
		}
	})
}

func TestCreatedFilter(t *testing.T) {
	t.Parallel()

	at := stripe.NewTimestamp(time.Unix(1700000000, 0))

	t.Run("exact timestamp", func(t *testing.T) {
		t.Parallel()

		params := &stripe.ListParams{Created: &stripe.CreatedFilter{Timestamp: at}}

		values, err := params.ToValues()
		require.NoError(t, err)
		assert.Equal(t, "1700000000", values.Get("created"))
	})

	t.Run("bounded range", func(t *testing.T) {
		t.Parallel()

		params := &stripe.ListParams{Created: &stripe.CreatedFilter{Range: &stripe.TimeRange{
			GreaterThan:     at,
			LessThanOrEqual: stripe.NewTimestamp(time.Unix(1700003600, 0)),
		}}}

		values, err := params.ToValues()
		require.NoError(t, err)
		assert.Equal(t, "1700000000", values.Get("created[gt]"))
		assert.Equal(t, "1700003600", values.Get("created[lte]"))
		assert.NotContains(t, values, "created[gte]")
		assert.NotContains(t, values, "created[lt]")
	})

	t.Run("timestamp and range together is a conflict", func(t *testing.T) {
		t.Parallel()

		params := &stripe.ListParams{Created: &stripe.CreatedFilter{
			Timestamp: at,
			Range:     &stripe.TimeRange{GreaterThan: at},
		}}

		_, err := params.ToValues()
		require.ErrorIs(t, err, stripe.ErrCreatedFilterConflict)
	})

	t.Run("empty filter emits nothing", func(t *testing.T) {
		t.Parallel()

		params := &stripe.ListParams{Created: &stripe.CreatedFilter{}}

		values, err := params.ToValues()
		require.NoError(t, err)
		assert.NotContains(t, values, "created")
	})
}
