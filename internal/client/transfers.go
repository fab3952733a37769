package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/mdedetrich/stripe-go/internal/http"
	"github.com/mdedetrich/stripe-go/pkg/stripe"
)

// TransfersClient implements stripe.TransfersClient.
type TransfersClient struct {
	httpClient *http.Client
}

// NewTransfersClient creates a new transfers client.
func NewTransfersClient(httpClient *http.Client) *TransfersClient {
	return &TransfersClient{httpClient: httpClient}
}

// Create implements stripe.TransfersClient.Create.
func (c *TransfersClient) Create(ctx context.Context, params *stripe.TransferParams) (*stripe.Transfer, error) {
	if params == nil {
		return nil, stripe.ErrParamsRequired
	}

	err := params.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating transfer params: %w", err)
	}

	form, err := stripe.EncodeForm(params)
	if err != nil {
		return nil, fmt.Errorf("encoding transfer params: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, "/v1/transfers", form, requestOptions(&params.Params))
	if err != nil {
		return nil, fmt.Errorf("creating transfer: %w", err)
	}

	var transfer stripe.Transfer

	err = json.Unmarshal(resp.Body, &transfer)
	if err != nil {
		return nil, stripe.NewProtocolError(resp.StatusCode, resp.Body, err)
	}

	return &transfer, nil
}

// Get implements stripe.TransfersClient.Get.
func (c *TransfersClient) Get(ctx context.Context, id string) (*stripe.Transfer, error) {
	path := fmt.Sprintf("/v1/transfers/%s", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting transfer: %w", err)
	}

	var transfer stripe.Transfer

	err = json.Unmarshal(resp.Body, &transfer)
	if err != nil {
		return nil, stripe.NewProtocolError(resp.StatusCode, resp.Body, err)
	}

	return &transfer, nil
}

// Update implements stripe.TransfersClient.Update.
func (c *TransfersClient) Update(ctx context.Context, id string, params *stripe.TransferUpdateParams) (*stripe.Transfer, error) {
	if params == nil {
		return nil, stripe.ErrParamsRequired
	}

	form, err := stripe.EncodeForm(params)
	if err != nil {
		return nil, fmt.Errorf("encoding transfer update params: %w", err)
	}

	path := fmt.Sprintf("/v1/transfers/%s", id)

	resp, err := c.httpClient.Post(ctx, path, form, requestOptions(&params.Params))
	if err != nil {
		return nil, fmt.Errorf("updating transfer: %w", err)
	}

	var transfer stripe.Transfer

	err = json.Unmarshal(resp.Body, &transfer)
	if err != nil {
		return nil, stripe.NewProtocolError(resp.StatusCode, resp.Body, err)
	}

	return &transfer, nil
}

// List implements stripe.TransfersClient.List.
func (c *TransfersClient) List(ctx context.Context, params *stripe.TransferListParams) (*stripe.List[stripe.Transfer], error) {
	var query url.Values

	if params != nil {
		var err error

		query, err = stripe.EncodeForm(params)
		if err != nil {
			return nil, fmt.Errorf("encoding transfer list params: %w", err)
		}
	}

	resp, err := c.httpClient.Get(ctx, "/v1/transfers", query)
	if err != nil {
		return nil, fmt.Errorf("listing transfers: %w", err)
	}

	var result stripe.List[stripe.Transfer]

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, stripe.NewProtocolError(resp.StatusCode, resp.Body, err)
	}

	return &result, nil
}

// ListPage implements stripe.ListPager for use with stripe.ListIterator.
func (c *TransfersClient) ListPage(ctx context.Context, params *stripe.ListParams) (*stripe.List[stripe.Transfer], error) {
	listParams := &stripe.TransferListParams{}
	if params != nil {
		listParams.ListParams = *params
	}

	return c.List(ctx, listParams)
}
