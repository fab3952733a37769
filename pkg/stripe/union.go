package stripe

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
)

// UnknownVariantError reports an "object" discriminator outside the fixed
// set of known shapes. Decoding fails closed; it never coerces an unknown
// value into a default variant.
type UnknownVariantError struct {
	Object string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown object variant %q", e.Object)
}

// PaymentSourceType enumerates the known payment source shapes.
type PaymentSourceType string

const (
	PaymentSourceTypeCard            PaymentSourceType = "card"
	PaymentSourceTypeBitcoinReceiver PaymentSourceType = "bitcoin_receiver"
)

// PaymentSource is the union of shapes the API returns for a source field. A
// bare JSON string carries only the source ID (Type is left empty); a JSON
// object is dispatched on its "object" field against a fixed registry of
// decoders.
type PaymentSource struct {
	ID   string
	Type PaymentSourceType

	Card            *Card
	BitcoinReceiver *BitcoinReceiver
}

// paymentSourceDecoders is the fixed decode registry keyed by the "object"
// discriminator value.
var paymentSourceDecoders = map[string]func(data []byte, s *PaymentSource) error{
	"card": func(data []byte, s *PaymentSource) error {
		var card Card

		err := json.Unmarshal(data, &card)
		if err != nil {
			return fmt.Errorf("unmarshalling card source: %w", err)
		}

		*s = PaymentSource{ID: card.ID, Type: PaymentSourceTypeCard, Card: &card}

		return nil
	},
	"bitcoin_receiver": func(data []byte, s *PaymentSource) error {
		var receiver BitcoinReceiver

		err := json.Unmarshal(data, &receiver)
		if err != nil {
			return fmt.Errorf("unmarshalling bitcoin receiver source: %w", err)
		}

		*s = PaymentSource{ID: receiver.ID, Type: PaymentSourceTypeBitcoinReceiver, BitcoinReceiver: &receiver}

		return nil
	},
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *PaymentSource) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*s = PaymentSource{ID: id}

		return nil
	}

	var discriminator struct {
		Object string `json:"object"`
	}

	err := json.Unmarshal(data, &discriminator)
	if err != nil {
		return fmt.Errorf("unmarshalling payment source: %w", err)
	}

	decode, ok := paymentSourceDecoders[discriminator.Object]
	if !ok {
		return &UnknownVariantError{Object: discriminator.Object}
	}

	return decode(data, s)
}

// MarshalJSON implements json.Marshaler. The active variant is marshalled as
// its full object; a bare reference marshals back to its ID string.
func (s PaymentSource) MarshalJSON() ([]byte, error) {
	switch {
	case s.Type == PaymentSourceTypeCard && s.Card != nil:
		return json.Marshal(s.Card)
	case s.Type == PaymentSourceTypeBitcoinReceiver && s.BitcoinReceiver != nil:
		return json.Marshal(s.BitcoinReceiver)
	default:
		return json.Marshal(s.ID)
	}
}

// SourceParams is the input-side union for a source field: either an
// existing token ID or the full card details, never both. A token encodes as
// a bare pair (source=tok_123); card details encode as a bracketed sub-map
// with an explicit object discriminator (source[object]=card,
// source[number]=..., ...).
type SourceParams struct {
	Token string
	Card  *CardParams
}

// EncodeFormValues implements FormEncoder.
func (p SourceParams) EncodeFormValues(values url.Values, key string) error {
	switch {
	case p.Token != "" && p.Card != nil:
		return ErrSourceConflict
	case p.Token != "":
		values.Set(key, p.Token)

		return nil
	case p.Card != nil:
		values.Set(childKey(key, "object"), "card")

		return encodeValue(values, key, reflect.ValueOf(p.Card), false)
	default:
		return nil
	}
}
