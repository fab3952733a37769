package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/mdedetrich/stripe-go/internal/http"
	"github.com/mdedetrich/stripe-go/pkg/stripe"
)

// CustomersClient implements stripe.CustomersClient.
type CustomersClient struct {
	httpClient *http.Client
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(httpClient *http.Client) *CustomersClient {
	return &CustomersClient{httpClient: httpClient}
}

// Create implements stripe.CustomersClient.Create.
func (c *CustomersClient) Create(ctx context.Context, params *stripe.CustomerParams) (*stripe.Customer, error) {
	var (
		form url.Values
		opts *http.RequestOptions
		err  error
	)

	if params != nil {
		form, err = stripe.EncodeForm(params)
		if err != nil {
			return nil, fmt.Errorf("encoding customer params: %w", err)
		}

		opts = requestOptions(&params.Params)
	}

	resp, err := c.httpClient.Post(ctx, "/v1/customers", form, opts)
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	var customer stripe.Customer

	err = json.Unmarshal(resp.Body, &customer)
	if err != nil {
		return nil, stripe.NewProtocolError(resp.StatusCode, resp.Body, err)
	}

	return &customer, nil
}

// Get implements stripe.CustomersClient.Get.
func (c *CustomersClient) Get(ctx context.Context, id string) (*stripe.Customer, error) {
	path := fmt.Sprintf("/v1/customers/%s", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting customer: %w", err)
	}

	var customer stripe.Customer

	err = json.Unmarshal(resp.Body, &customer)
	if err != nil {
		return nil, stripe.NewProtocolError(resp.StatusCode, resp.Body, err)
	}

	return &customer, nil
}

// Update implements stripe.CustomersClient.Update.
func (c *CustomersClient) Update(ctx context.Context, id string, params *stripe.CustomerParams) (*stripe.Customer, error) {
	if params == nil {
		return nil, stripe.ErrParamsRequired
	}

	form, err := stripe.EncodeForm(params)
	if err != nil {
		return nil, fmt.Errorf("encoding customer params: %w", err)
	}

	path := fmt.Sprintf("/v1/customers/%s", id)

	resp, err := c.httpClient.Post(ctx, path, form, requestOptions(&params.Params))
	if err != nil {
		return nil, fmt.Errorf("updating customer: %w", err)
	}

	var customer stripe.Customer

	err = json.Unmarshal(resp.Body, &customer)
	if err != nil {
		return nil, stripe.NewProtocolError(resp.StatusCode, resp.Body, err)
	}

	return &customer, nil
}

// Delete implements stripe.CustomersClient.Delete.
func (c *CustomersClient) Delete(ctx context.Context, id string, params *stripe.Params) (*stripe.Deleted, error) {
	path := fmt.Sprintf("/v1/customers/%s", id)

	resp, err := c.httpClient.Delete(ctx, path, requestOptions(params))
	if err != nil {
		return nil, fmt.Errorf("deleting customer: %w", err)
	}

	var deleted stripe.Deleted

	err = json.Unmarshal(resp.Body, &deleted)
	if err != nil {
		return nil, stripe.NewProtocolError(resp.StatusCode, resp.Body, err)
	}

	return &deleted, nil
}

// List implements stripe.CustomersClient.List.
func (c *CustomersClient) List(ctx context.Context, params *stripe.CustomerListParams) (*stripe.List[stripe.Customer], error) {
	var query url.Values

	if params != nil {
		var err error

		query, err = stripe.EncodeForm(params)
		if err != nil {
			return nil, fmt.Errorf("encoding customer list params: %w", err)
		}
	}

	resp, err := c.httpClient.Get(ctx, "/v1/customers", query)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}

	var result stripe.List[stripe.Customer]

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, stripe.NewProtocolError(resp.StatusCode, resp.Body, err)
	}

	return &result, nil
}

// ListPage implements stripe.ListPager for use with stripe.ListIterator.
func (c *CustomersClient) ListPage(ctx context.Context, params *stripe.ListParams) (*stripe.List[stripe.Customer], error) {
	listParams := &stripe.CustomerListParams{}
	if params != nil {
		listParams.ListParams = *params
	}

	return c.List(ctx, listParams)
}
