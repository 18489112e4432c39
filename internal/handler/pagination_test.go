package handler

import (
	"context"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatube/backend/internal/database/dbtest"
	"yatube/backend/internal/models"
	"yatube/backend/internal/store"
)

func TestNewPaginationMeta(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		page  int
		size  int
		want  PaginationMeta
	}{
		{
			name: "empty set has one page", total: 0, page: 5, size: 10,
			want: PaginationMeta{TotalItems: 0, TotalPages: 1, CurrentPage: 1, PageSize: 10},
		},
		{
			name: "first of two", total: 15, page: 1, size: 10,
			want: PaginationMeta{TotalItems: 15, TotalPages: 2, CurrentPage: 1, PageSize: 10, HasNext: true, NextPage: 2},
		},
		{
			name: "past the end clamps to last", total: 15, page: 3, size: 10,
			want: PaginationMeta{TotalItems: 15, TotalPages: 2, CurrentPage: 2, PageSize: 10, HasPrevious: true, PreviousPage: 1},
		},
		{
			name: "below one clamps to first", total: 30, page: -4, size: 10,
			want: PaginationMeta{TotalItems: 30, TotalPages: 3, CurrentPage: 1, PageSize: 10, HasNext: true, NextPage: 2},
		},
		{
			name: "middle page", total: 30, page: 2, size: 10,
			want: PaginationMeta{TotalItems: 30, TotalPages: 3, CurrentPage: 2, PageSize: 10, HasNext: true, HasPrevious: true, NextPage: 3, PreviousPage: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPaginationMeta(tt.total, tt.page, tt.size))
		})
	}
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 1, ParsePage("0"))
	assert.Equal(t, 1, ParsePage("-3"))
	assert.Equal(t, 7, ParsePage("7"))
}

// For any item count, page size and requested page, the metadata stays in range
// and the number of items on the page is what the count implies.
func TestProperty_PaginationMetaBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("current page is always within [1, total_pages]", prop.ForAll(
		func(total int64, page, size int) bool {
			meta := NewPaginationMeta(total, page, size)
			return meta.CurrentPage >= 1 &&
				meta.CurrentPage <= meta.TotalPages &&
				meta.HasNext == (meta.CurrentPage < meta.TotalPages) &&
				meta.HasPrevious == (meta.CurrentPage > 1)
		},
		gen.Int64Range(0, 10000),
		gen.IntRange(-50, 2000),
		gen.IntRange(1, 100),
	))

	properties.Property("pages cover every item exactly once", prop.ForAll(
		func(total int64, size int) bool {
			meta := NewPaginationMeta(total, 1, size)
			var sum int64
			for p := 1; p <= meta.TotalPages; p++ {
				sum += int64(pageLength(total, p, size))
			}
			return sum == total
		},
		gen.Int64Range(0, 500),
		gen.IntRange(1, 50),
	))

	properties.TestingRun(t)
}

// pageLength is how many of total items land on page p.
func pageLength(total int64, p, size int) int {
	start := int64((p - 1) * size)
	if start >= total {
		return 0
	}
	if rest := total - start; rest < int64(size) {
		return int(rest)
	}
	return size
}

func TestProperty_PaginateNeverExceedsPageSize(t *testing.T) {
	db := dbtest.Open(t)
	s := store.New(db)
	ctx := context.Background()

	author := &models.User{Username: "auth", Email: "auth@example.com", PasswordHash: "x"}
	require.NoError(t, s.CreateUser(ctx, author))
	const total = 23
	for i := 0; i < total; i++ {
		require.NoError(t, s.CreatePost(ctx, &models.Post{Text: "post " + strconv.Itoa(i), AuthorID: author.ID}))
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("a page holds at most size rows and out-of-range pages clamp", prop.ForAll(
		func(page, size int) bool {
			result, err := Paginate[models.Post](s.PostsQuery(ctx, store.PostFilter{}), strconv.Itoa(page), size, store.WithPostRelations)
			if err != nil {
				return false
			}
			meta := result.Meta
			if len(result.Data) > size || len(result.Data) != pageLength(total, meta.CurrentPage, size) {
				return false
			}
			if page > meta.TotalPages && meta.CurrentPage != meta.TotalPages {
				return false
			}
			for _, p := range result.Data {
				if p.Author.Username != "auth" {
					return false
				}
			}
			return true
		},
		gen.IntRange(-5, 40),
		gen.IntRange(1, 30),
	))

	properties.TestingRun(t)
}

func TestPaginate_PagesAreDisjointAndOrdered(t *testing.T) {
	db := dbtest.Open(t)
	s := store.New(db)
	ctx := context.Background()

	author := &models.User{Username: "auth", Email: "auth@example.com", PasswordHash: "x"}
	require.NoError(t, s.CreateUser(ctx, author))
	for i := 0; i < 15; i++ {
		require.NoError(t, s.CreatePost(ctx, &models.Post{Text: "post", AuthorID: author.ID}))
	}

	seen := map[uint]bool{}
	var lastID uint
	for page := 1; page <= 2; page++ {
		result, err := Paginate[models.Post](s.PostsQuery(ctx, store.PostFilter{}), strconv.Itoa(page), 10)
		require.NoError(t, err)
		for _, p := range result.Data {
			assert.False(t, seen[p.ID], "post %d appears twice", p.ID)
			seen[p.ID] = true
			if lastID != 0 {
				assert.Less(t, p.ID, lastID)
			}
			lastID = p.ID
		}
	}
	assert.Len(t, seen, 15)
}
