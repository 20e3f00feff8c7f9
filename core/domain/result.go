// ABOUTME: Result is the two-case outcome of a feed load
// ABOUTME: Carries either the decoded items or a typed error, never both

package domain

import "fmt"

// Result holds either a list of feed items or an error of type E.
// The zero value is not a valid result; build one with Success or Failure.
type Result[E error] struct {
	items []FeedItem
	err   E
	ok    bool
}

// Success creates a successful result. A nil slice is stored as empty.
func Success[E error](items []FeedItem) Result[E] {
	if items == nil {
		items = []FeedItem{}
	}
	return Result[E]{items: items, ok: true}
}

// Failure creates a failed result
func Failure[E error](err E) Result[E] {
	return Result[E]{err: err}
}

// IsSuccess reports whether the result carries items
func (r Result[E]) IsSuccess() bool {
	return r.ok
}

// Items returns the decoded items, or nil for a failure
func (r Result[E]) Items() []FeedItem {
	return r.items
}

// Err returns the failure, or the zero E for a success
func (r Result[E]) Err() E {
	return r.err
}

// Get unpacks the result into the usual Go pair
func (r Result[E]) Get() ([]FeedItem, error) {
	if r.ok {
		return r.items, nil
	}
	return nil, r.err
}

// String implements fmt.Stringer
func (r Result[E]) String() string {
	if r.ok {
		return fmt.Sprintf("success(%d items)", len(r.items))
	}
	return fmt.Sprintf("failure(%v)", r.err)
}
