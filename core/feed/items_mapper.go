// ABOUTME: Maps a feed HTTP response into domain feed items
// ABOUTME: Only a 200 response with a well-formed items payload yields data

package feed

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"feedloader/core/domain"
	coreerrors "feedloader/core/errors"
	"feedloader/core/interfaces"
	"github.com/google/uuid"
)

// itemsPayload mirrors the wire format: {"items": [ ... ]}
type itemsPayload struct {
	Items []remoteItem `json:"items"`
}

type remoteItem struct {
	ID          uuid.UUID `json:"id"`
	Description *string   `json:"description"`
	Location    *string   `json:"location"`
	ImageURL    string    `json:"image_url"`
}

// MapItems validates the response status and decodes data into feed items.
// Every failure wraps coreerrors.ErrInvalidData; the wrapped message says why.
func MapItems(data []byte, response interfaces.Response) ([]domain.FeedItem, error) {
	if response == nil {
		return nil, fmt.Errorf("missing response: %w", coreerrors.ErrInvalidData)
	}
	if status := response.StatusCode(); status != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %w", status, coreerrors.ErrInvalidData)
	}

	var payload itemsPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode items: %v: %w", err, coreerrors.ErrInvalidData)
	}
	if payload.Items == nil {
		return nil, fmt.Errorf("payload has no items list: %w", coreerrors.ErrInvalidData)
	}

	items := make([]domain.FeedItem, 0, len(payload.Items))
	for i, remote := range payload.Items {
		item, err := remote.toDomain()
		if err != nil {
			return nil, fmt.Errorf("item %d: %v: %w", i, err, coreerrors.ErrInvalidData)
		}
		items = append(items, item)
	}

	return items, nil
}

func (r remoteItem) toDomain() (domain.FeedItem, error) {
	if r.ID == uuid.Nil {
		return domain.FeedItem{}, fmt.Errorf("missing id")
	}
	if r.ImageURL == "" {
		return domain.FeedItem{}, fmt.Errorf("missing image_url")
	}
	imageURL, err := url.Parse(r.ImageURL)
	if err != nil {
		return domain.FeedItem{}, fmt.Errorf("image_url: %w", err)
	}

	return domain.NewFeedItem(r.ID, r.Description, r.Location, *imageURL), nil
}
