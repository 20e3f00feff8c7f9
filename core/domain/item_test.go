package domain

import (
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func mustURL(t *testing.T, raw string) url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("url.Parse(%q) error = %v", raw, err)
	}
	return *u
}

func TestFeedItem_Equal(t *testing.T) {
	id := uuid.New()
	image := mustURL(t, "https://a-url.com/image.png")

	tests := []struct {
		name     string
		a, b     FeedItem
		expected bool
	}{
		{
			name:     "same values in distinct pointers",
			a:        NewFeedItem(id, strPtr("a description"), strPtr("a location"), image),
			b:        NewFeedItem(id, strPtr("a description"), strPtr("a location"), image),
			expected: true,
		},
		{
			name:     "both optional fields absent",
			a:        NewFeedItem(id, nil, nil, image),
			b:        NewFeedItem(id, nil, nil, image),
			expected: true,
		},
		{
			name:     "absent description differs from empty description",
			a:        NewFeedItem(id, nil, nil, image),
			b:        NewFeedItem(id, strPtr(""), nil, image),
			expected: false,
		},
		{
			name:     "different location",
			a:        NewFeedItem(id, nil, strPtr("here"), image),
			b:        NewFeedItem(id, nil, strPtr("there"), image),
			expected: false,
		},
		{
			name:     "different id",
			a:        NewFeedItem(id, nil, nil, image),
			b:        NewFeedItem(uuid.New(), nil, nil, image),
			expected: false,
		},
		{
			name:     "different image",
			a:        NewFeedItem(id, nil, nil, image),
			b:        NewFeedItem(id, nil, nil, mustURL(t, "https://another-url.com/image.png")),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Equal(tt.b))
			assert.Equal(t, tt.expected, tt.b.Equal(tt.a))
		})
	}
}

func TestNewFeedItem_CopiesOptionalFields(t *testing.T) {
	description := "original"
	item := NewFeedItem(uuid.New(), &description, nil, mustURL(t, "https://a-url.com"))

	description = "mutated"

	assert.Equal(t, "original", *item.Description)
	assert.Nil(t, item.Location)
}
