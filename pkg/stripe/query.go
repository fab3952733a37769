package stripe

import (
	"net/url"
	"reflect"
	"strconv"
)

// ListParams carries the common options every list endpoint accepts. Cursor
// pagination uses StartingAfter/EndingBefore with the ID of a previously
// seen item.
type ListParams struct {
	Limit         int            `form:"limit"          yaml:"limit,omitempty"`
	StartingAfter string         `form:"starting_after" yaml:"starting_after,omitempty"`
	EndingBefore  string         `form:"ending_before"  yaml:"ending_before,omitempty"`
	Created       *CreatedFilter `form:"created"        yaml:"created,omitempty"`

	// StripeAccount routes the call to a connected account.
	StripeAccount string `form:"-" yaml:"-"`
}

// ToValues renders the params as URL query values.
func (p *ListParams) ToValues() (url.Values, error) {
	return EncodeForm(p)
}

// CreatedFilter is the list filter union: either an exact timestamp
// (created=1700000000) or a bounded range (created[gt]=..., created[lte]=...),
// never both.
type CreatedFilter struct {
	Timestamp Timestamp
	Range     *TimeRange
}

// TimeRange bounds a created filter. Zero bounds are omitted.
type TimeRange struct {
	GreaterThan        Timestamp `form:"gt"`
	GreaterThanOrEqual Timestamp `form:"gte"`
	LessThan           Timestamp `form:"lt"`
	LessThanOrEqual    Timestamp `form:"lte"`
}

// EncodeFormValues implements FormEncoder.
func (f CreatedFilter) EncodeFormValues(values url.Values, key string) error {
	switch {
	case f.Range != nil && !f.Timestamp.IsZero():
		return ErrCreatedFilterConflict
	case f.Range != nil:
		return encodeValue(values, key, reflect.ValueOf(f.Range), false)
	case !f.Timestamp.IsZero():
		values.Set(key, strconv.FormatInt(f.Timestamp.Unix(), 10))

		return nil
	default:
		return nil
	}
}
