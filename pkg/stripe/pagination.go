package stripe

import (
	"context"
	"errors"
)

// List is the envelope every list endpoint returns: one immutable snapshot
// of a page. HasMore and URL are informational; issuing the next page
// request is the caller's (or the iterator's) job.
type List[T any] struct {
	Object     string  `json:"object"                yaml:"object"`
	URL        string  `json:"url"                   yaml:"url"`
	HasMore    bool    `json:"has_more"              yaml:"has_more"`
	Data       []T     `json:"data"                  yaml:"data"`
	TotalCount *uint64 `json:"total_count,omitempty" yaml:"total_count,omitempty"`
}

// Identifiable is implemented by resources whose ID can act as a pagination
// cursor.
type Identifiable interface {
	ObjectID() string
}

// ListPager fetches one page of T. Resource clients satisfy this; tests can
// supply fakes.
type ListPager[T Identifiable] interface {
	ListPage(ctx context.Context, params *ListParams) (*List[T], error)
}

// ListIterator walks a list endpoint item by item, fetching the next page
// through the pager with a starting_after cursor whenever the current page
// is exhausted. It performs no I/O of its own beyond the pager calls.
type ListIterator[T Identifiable] struct {
	ctx     context.Context
	pager   ListPager[T]
	params  ListParams
	page    *List[T]
	index   int
	fetched bool
	err     error
}

// NewListIterator creates an iterator over a list endpoint.
func NewListIterator[T Identifiable](ctx context.Context, pager ListPager[T], params *ListParams) *ListIterator[T] {
	var p ListParams
	if params != nil {
		p = *params
	}

	return &ListIterator[T]{ctx: ctx, pager: pager, params: p}
}

// HasNext returns true if there are more items to fetch.
func (it *ListIterator[T]) HasNext() bool {
	if it.err != nil {
		return false
	}

	if !it.fetched {
		return true
	}

	return it.index < len(it.page.Data) || it.page.HasMore
}

// Next returns the next item, fetching the next page if needed. Once the
// iterator is exhausted it returns ErrNoMoreItems.
func (it *ListIterator[T]) Next() (T, error) {
	var zero T

	if it.err != nil {
		return zero, it.err
	}

	if !it.fetched || (it.index >= len(it.page.Data) && it.page.HasMore) {
		if it.fetched && len(it.page.Data) > 0 {
			it.params.StartingAfter = it.page.Data[len(it.page.Data)-1].ObjectID()
		}

		page, err := it.pager.ListPage(it.ctx, &it.params)
		if err != nil {
			it.err = err

			return zero, err
		}

		it.page = page
		it.index = 0
		it.fetched = true
	}

	if it.index >= len(it.page.Data) {
		it.err = ErrNoMoreItems

		return zero, ErrNoMoreItems
	}

	item := it.page.Data[it.index]
	it.index++

	return item, nil
}

// Collect drains the iterator into a slice.
func (it *ListIterator[T]) Collect() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				break
			}

			return items, err
		}

		items = append(items, item)
	}

	return items, nil
}
