package pagination

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginationParamsValidate(t *testing.T) {
	params := &PaginationParams{Page: 0, PerPage: 0}
	params.Validate()
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 15, params.PerPage)

	params = &PaginationParams{Page: 3, PerPage: 500}
	params.Validate()
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 100, params.PerPage)
}

func TestPaginationParamsOffset(t *testing.T) {
	params := &PaginationParams{Page: 1, PerPage: 15}
	assert.Equal(t, 0, params.Offset())

	params = &PaginationParams{Page: 4, PerPage: 20}
	assert.Equal(t, 60, params.Offset())
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 15, 31)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	last := NewPagination(3, 15, 31)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)

	empty := NewPagination(1, 15, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}

func TestEncodeDecodeCursor(t *testing.T) {
	created := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	encoded := EncodeCursor("abc-123", created)

	params := &CursorParams{Cursor: encoded}
	cursor, err := params.DecodeCursor()
	require.NoError(t, err)
	require.NotNil(t, cursor)
	assert.Equal(t, "abc-123", cursor.ID)
	assert.True(t, cursor.CreatedAt.Equal(created))
}

func TestDecodeCursorEmpty(t *testing.T) {
	params := &CursorParams{}
	cursor, err := params.DecodeCursor()
	require.NoError(t, err)
	assert.Nil(t, cursor)
}

func TestDecodeCursorInvalid(t *testing.T) {
	params := &CursorParams{Cursor: "%%%not-base64%%%"}
	_, err := params.DecodeCursor()
	assert.Error(t, err)
}

func TestCursorParamsValidate(t *testing.T) {
	params := &CursorParams{}
	params.Validate()
	assert.Equal(t, 15, params.Limit)
	assert.Equal(t, CursorDirectionNext, params.Direction)

	params = &CursorParams{Limit: 300, Direction: CursorDirectionPrev}
	params.Validate()
	assert.Equal(t, 100, params.Limit)
	assert.Equal(t, CursorDirectionPrev, params.Direction)
}

type cursorItem struct {
	ID        string
	CreatedAt time.Time
}

func makeCursorItems(n int) []cursorItem {
	items := make([]cursorItem, n)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range items {
		items[i] = cursorItem{
			ID:        fmt.Sprintf("item-%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
	}
	return items
}

func TestNewCursorPaginationTrimsOverfetch(t *testing.T) {
	items := makeCursorItems(11)

	pagination, trimmed := NewCursorPagination(items, 10,
		func(i cursorItem) string { return i.ID },
		func(i cursorItem) time.Time { return i.CreatedAt })

	assert.Len(t, trimmed, 10)
	assert.True(t, pagination.HasNext)
	require.NotNil(t, pagination.NextCursor)
	require.NotNil(t, pagination.PrevCursor)

	next, err := (&CursorParams{Cursor: *pagination.NextCursor}).DecodeCursor()
	require.NoError(t, err)
	assert.Equal(t, "item-9", next.ID)
}

func TestNewCursorPaginationLastPage(t *testing.T) {
	items := makeCursorItems(4)

	pagination, trimmed := NewCursorPagination(items, 10,
		func(i cursorItem) string { return i.ID },
		func(i cursorItem) time.Time { return i.CreatedAt })

	assert.Len(t, trimmed, 4)
	assert.False(t, pagination.HasNext)
	require.NotNil(t, pagination.NextCursor)
}

func TestNewCursorPaginationEmpty(t *testing.T) {
	pagination, trimmed := NewCursorPagination(nil, 10,
		func(i cursorItem) string { return i.ID },
		func(i cursorItem) time.Time { return i.CreatedAt })

	assert.Empty(t, trimmed)
	assert.False(t, pagination.HasNext)
	assert.Nil(t, pagination.NextCursor)
	assert.Nil(t, pagination.PrevCursor)
}
