package leaderboard

import (
	"context"
	"slices"
)

// FetchError is the only failure a Client reports. The message is surfaced
// verbatim to render callers.
type FetchError struct {
	Message string
	Err     error
}

// NewFetchError builds a FetchError with no underlying cause.
func NewFetchError(message string) *FetchError {
	return &FetchError{Message: message}
}

func (e *FetchError) Error() string { return e.Message }

func (e *FetchError) Unwrap() error { return e.Err }

// Client fetches the entries of a single category.
type Client interface {
	FetchCategory(ctx context.Context, category Category) ([]Entry, error)
}

// AllFetcher is implemented by clients that can return every category at once.
type AllFetcher interface {
	FetchAll(ctx context.Context) (Data, error)
}

// Data maps each category to its ordered entries.
type Data struct {
	entries map[Category][]Entry
}

func NewData(entries map[Category][]Entry) Data {
	cp := make(map[Category][]Entry, len(entries))
	for c, list := range entries {
		cp[c] = slices.Clone(list)
	}
	return Data{entries: cp}
}

// EntriesFor returns a copy of the entries for category, or nil when none
// are known.
func (d Data) EntriesFor(category Category) []Entry {
	return slices.Clone(d.entries[category])
}

func (d Data) clone() Data { return NewData(d.entries) }

// FetchAll gathers every category from c. Clients implementing AllFetcher
// answer directly; otherwise each category is fetched in tab order and the
// first failure is returned without partial data.
func FetchAll(ctx context.Context, c Client) (Data, error) {
	if af, ok := c.(AllFetcher); ok {
		return af.FetchAll(ctx)
	}
	out := make(map[Category][]Entry, len(Categories()))
	for _, category := range Categories() {
		list, err := c.FetchCategory(ctx, category)
		if err != nil {
			return Data{}, err
		}
		out[category] = list
	}
	return Data{entries: out}, nil
}

// InMemoryClient serves a fixed dataset.
type InMemoryClient struct {
	data Data
}

func NewInMemoryClient(data Data) *InMemoryClient {
	return &InMemoryClient{data: data}
}

func (c *InMemoryClient) FetchCategory(_ context.Context, category Category) ([]Entry, error) {
	return c.data.EntriesFor(category), nil
}

func (c *InMemoryClient) FetchAll(context.Context) (Data, error) {
	return c.data.clone(), nil
}
