package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kind uint8

func (k kind) Error() string { return "kind" }

func TestResult_Success(t *testing.T) {
	item := NewFeedItem(uuid.New(), nil, nil, mustURL(t, "https://a-url.com"))
	result := Success[kind]([]FeedItem{item})

	assert.True(t, result.IsSuccess())
	assert.Equal(t, []FeedItem{item}, result.Items())
	assert.Equal(t, kind(0), result.Err())

	items, err := result.Get()
	require.NoError(t, err)
	assert.Equal(t, []FeedItem{item}, items)
	assert.Equal(t, "success(1 items)", result.String())
}

func TestResult_SuccessWithNilItemsIsEmpty(t *testing.T) {
	result := Success[kind](nil)

	assert.True(t, result.IsSuccess())
	assert.NotNil(t, result.Items())
	assert.Empty(t, result.Items())
}

func TestResult_Failure(t *testing.T) {
	result := Failure(kind(2))

	assert.False(t, result.IsSuccess())
	assert.Nil(t, result.Items())
	assert.Equal(t, kind(2), result.Err())

	items, err := result.Get()
	assert.Nil(t, items)
	assert.True(t, errors.Is(err, kind(2)))
	assert.Equal(t, "failure(kind)", result.String())
}

func TestResult_StructuralEquality(t *testing.T) {
	assert.Equal(t, Failure(kind(1)), Failure(kind(1)))
	assert.NotEqual(t, Failure(kind(1)), Failure(kind(2)))
	assert.Equal(t, Success[kind](nil), Success[kind]([]FeedItem{}))
}
