package blogposts

import (
	"context"
	"testing"

	"vitrine-backend/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draft(title string) CreateRequest {
	published := false
	return CreateRequest{
		Title:     title,
		Excerpt:   "Short summary",
		Content:   "Long body",
		Author:    "Ada",
		Category:  "News",
		Published: &published,
	}
}

func TestCreateAndGet(t *testing.T) {
	svc := NewService(NewMemoryRepository(), validation.New(), nil)

	id, err := svc.Create(context.Background(), draft("  Launch day  "))
	require.NoError(t, err)

	post, err := svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "Launch day", post.Title)
	assert.False(t, post.Published)
	assert.False(t, post.CreatedAt.IsZero())
}

func TestCreateRequiresPublishedFlag(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, validation.New(), nil)

	req := draft("No flag")
	req.Published = nil
	_, err := svc.Create(context.Background(), req)

	ve, ok := validation.AsError(err)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"published": "required"}, ve.Fields)
	assert.Equal(t, 0, repo.posts.Len())
}

func TestCreateMissingFieldsWritesNothing(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, validation.New(), nil)

	_, err := svc.Create(context.Background(), CreateRequest{Title: "Only a title"})
	ve, ok := validation.AsError(err)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"excerpt", "content", "author", "category", "published"}, ve.FieldNames())
	assert.Equal(t, 0, repo.posts.Len())
}

func TestListNewestFirstIncludesDrafts(t *testing.T) {
	svc := NewService(NewMemoryRepository(), validation.New(), nil)
	published := true
	for i, title := range []string{"First", "Second", "Third"} {
		req := draft(title)
		if i == 1 {
			req.Published = &published
		}
		_, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
	}

	posts, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, []string{"Third", "Second", "First"}, []string{posts[0].Title, posts[1].Title, posts[2].Title})
	assert.True(t, posts[1].Published)
}

func TestGetByIDUnknownIsAbsent(t *testing.T) {
	svc := NewService(NewMemoryRepository(), validation.New(), nil)
	post, err := svc.GetByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, post)
}
