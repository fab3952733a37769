package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/mdedetrich/stripe-go/internal/http"
	"github.com/mdedetrich/stripe-go/pkg/stripe"
)

// ChargesClient implements stripe.ChargesClient.
type ChargesClient struct {
	httpClient *http.Client
}

// NewChargesClient creates a new charges client.
func NewChargesClient(httpClient *http.Client) *ChargesClient {
	return &ChargesClient{httpClient: httpClient}
}

// Create implements stripe.ChargesClient.Create.
func (c *ChargesClient) Create(ctx context.Context, params *stripe.ChargeParams) (*stripe.Charge, error) {
	if params == nil {
		return nil, stripe.ErrParamsRequired
	}

	err := params.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating charge params: %w", err)
	}

	form, err := stripe.EncodeForm(params)
	if err != nil {
		return nil, fmt.Errorf("encoding charge params: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, "/v1/charges", form, requestOptions(&params.Params))
	if err != nil {
		return nil, fmt.Errorf("creating charge: %w", err)
	}

	var charge stripe.Charge

	err = json.Unmarshal(resp.Body, &charge)
	if err != nil {
		return nil, stripe.NewProtocolError(resp.StatusCode, resp.Body, err)
	}

	return &charge, nil
}

// Get implements stripe.ChargesClient.Get.
func (c *ChargesClient) Get(ctx context.Context, id string) (*stripe.Charge, error) {
	path := fmt.Sprintf("/v1/charges/%s", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting charge: %w", err)
	}

	var charge stripe.Charge

	err = json.Unmarshal(resp.Body, &charge)
	if err != nil {
		return nil, stripe.NewProtocolError(resp.StatusCode, resp.Body, err)
	}

	return &charge, nil
}

// Update implements stripe.ChargesClient.Update.
func (c *ChargesClient) Update(ctx context.Context, id string, params *stripe.ChargeUpdateParams) (*stripe.Charge, error) {
	if params == nil {
		return nil, stripe.ErrParamsRequired
	}

	form, err := stripe.EncodeForm(params)
	if err != nil {
		return nil, fmt.Errorf("encoding charge update params: %w", err)
	}

	path := fmt.Sprintf("/v1/charges/%s", id)

	resp, err := c.httpClient.Post(ctx, path, form, requestOptions(&params.Params))
	if err != nil {
		return nil, fmt.Errorf("updating charge: %w", err)
	}

	var charge stripe.Charge

	err = json.Unmarshal(resp.Body, &charge)
	if err != nil {
		return nil, stripe.NewProtocolError(resp.StatusCode, resp.Body, err)
	}

	return &charge, nil
}

// Capture implements stripe.ChargesClient.Capture.
func (c *ChargesClient) Capture(ctx context.Context, id string, params *stripe.CaptureParams) (*stripe.Charge, error) {
	var (
		form url.Values
		opts *http.RequestOptions
		err  error
	)

	if params != nil {
		err = params.Validate()
		if err != nil {
			return nil, fmt.Errorf("validating capture params: %w", err)
		}

		form, err = stripe.EncodeForm(params)
		if err != nil {
			return nil, fmt.Errorf("encoding capture params: %w", err)
		}

		opts = requestOptions(&params.Params)
	}

	path := fmt.Sprintf("/v1/charges/%s/capture", id)

	resp, err := c.httpClient.Post(ctx, path, form, opts)
	if err != nil {
		return nil, fmt.Errorf("capturing charge: %w", err)
	}

	var charge stripe.Charge

	err = json.Unmarshal(resp.Body, &charge)
	if err != nil {
		return nil, stripe.NewProtocolError(resp.StatusCode, resp.Body, err)
	}

	return &charge, nil
}

// List implements stripe.ChargesClient.List.
func (c *ChargesClient) List(ctx context.Context, params *stripe.ChargeListParams) (*stripe.List[stripe.Charge], error) {
	var query url.Values

	if params != nil {
		var err error

		query, err = stripe.EncodeForm(params)
		if err != nil {
			return nil, fmt.Errorf("encoding charge list params: %w", err)
		}
	}

	resp, err := c.httpClient.Get(ctx, "/v1/charges", query)
	if err != nil {
		return nil, fmt.Errorf("listing charges: %w", err)
	}

	var result stripe.List[stripe.Charge]

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, stripe.NewProtocolError(resp.StatusCode, resp.Body, err)
	}

	return &result, nil
}

// ListPage implements stripe.ListPager for use with stripe.ListIterator.
func (c *ChargesClient) ListPage(ctx context.Context, params *stripe.ListParams) (*stripe.List[stripe.Charge], error) {
	listParams := &stripe.ChargeListParams{}
	if params != nil {
		listParams.ListParams = *params
	}

	return c.List(ctx, listParams)
}
