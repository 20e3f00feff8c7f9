// ABOUTME: FeedItem domain model represents a single image entry of a feed
// ABOUTME: Immutable value with structural equality and optional text fields

package domain

import (
	"net/url"

	"github.com/google/uuid"
)

// FeedItem represents an individual item in a feed
type FeedItem struct {
	// ID is the unique identifier for the item
	ID uuid.UUID

	// Description is the optional human-readable description
	Description *string

	// Location is the optional location string
	Location *string

	// ImageURL locates the item's image
	ImageURL url.URL
}

// NewFeedItem builds a FeedItem, copying the optional strings so the item
// does not share memory with the caller.
func NewFeedItem(id uuid.UUID, description, location *string, imageURL url.URL) FeedItem {
	return FeedItem{
		ID:          id,
		Description: cloneString(description),
		Location:    cloneString(location),
		ImageURL:    imageURL,
	}
}

// Equal reports whether two items hold the same values
func (fi FeedItem) Equal(other FeedItem) bool {
	return fi.ID == other.ID &&
		equalString(fi.Description, other.Description) &&
		equalString(fi.Location, other.Location) &&
		fi.ImageURL.String() == other.ImageURL.String()
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func equalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
