// Package stripe provides types, interfaces, and helpers for working with a
// Stripe-style payments API.
//
// # Overview
//
// The stripe package defines the domain types (e.g., Charge, Customer,
// Transfer) and the interfaces for resource-oriented clients (e.g.,
// ChargesClient, CustomersClient). A concrete implementation of these clients
// is provided by the stripeclient package, which wires configuration,
// transport, authentication, idempotency, and retry handling. Most consumers
// should import stripeclient to construct a client and then interact with the
// resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/mdedetrich/stripe-go/pkg/stripe"
//	  "github.com/mdedetrich/stripe-go/pkg/stripeclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := stripeclient.New(&stripe.Config{APIKey: "sk_test_123"})
//	  if err != nil { log.Fatal(err) }
//
//	  ch, err := cli.Charges().Create(ctx, &stripe.ChargeParams{
//	    Amount:   2000,
//	    Currency: stripe.USD,
//	    Source:   &stripe.SourceParams{Token: "tok_visa"},
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = ch
//	}
//
// # Request encoding
//
// Inputs are encoded as application/x-www-form-urlencoded with bracket
// notation for nesting (metadata[order_id]=6735). Absent optional fields are
// omitted entirely. See EncodeForm.
//
// # Errors and retries
//
// Every non-2xx response classifies into a closed taxonomy: the five
// status-keyed request error variants (BadRequestError, UnauthorizedError,
// RequestFailedError, NotFoundError, TooManyRequestsError), ServerError for
// transient 5xx responses, and ProtocolError for anything outside the
// protocol. Transient failures are retried automatically under a single
// Idempotency-Key per logical call; exhausting the retry budget surfaces
// MaxRetriesError wrapping the last classified failure, so "gave up" is
// distinguishable from "definitively rejected".
//
// # Queries and pagination
//
// Use ListParams to express common list options (limit, starting_after,
// ending_before, created). List endpoints return a List[T] envelope; the
// ListIterator walks pages by cursor:
//
//	it := stripe.NewListIterator[stripe.Charge](ctx, pager, &stripe.ListParams{Limit: 100})
//	for it.HasNext() {
//	  ch, err := it.Next()
//	  ...
//	}
package stripe
